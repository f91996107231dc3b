package modelcopy

import "errors"

// Sentinel errors for poller operations.
var (
	// ErrMissingOperationLocation is returned when the begin-copy response
	// does not include an operation location to poll.
	ErrMissingOperationLocation = errors.New("modelcopy: missing operation location")

	// ErrOperationFailed is returned when the service reports a terminal
	// failure for the copy. The wrapping error carries the raw response body.
	ErrOperationFailed = errors.New("modelcopy: copy operation failed")

	// ErrCancelNotSupported is returned by Cancel; model copy operations
	// cannot be cancelled server-side.
	ErrCancelNotSupported = errors.New("modelcopy: cancel operation is not supported")

	// ErrInvalidResumeToken is returned when a resume token cannot be decoded.
	ErrInvalidResumeToken = errors.New("modelcopy: invalid resume token")

	// ErrMissingService is returned when a poller is constructed without a service.
	ErrMissingService = errors.New("modelcopy: service is required")

	// ErrMissingModelID is returned when a poller is constructed without a
	// source model ID and no resume token supplies one.
	ErrMissingModelID = errors.New("modelcopy: model ID is required")

	// ErrNotDone is returned by Result before the operation has succeeded.
	ErrNotDone = errors.New("modelcopy: operation has not completed")
)
