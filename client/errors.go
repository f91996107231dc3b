package client

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for service responses.
var (
	// ErrNotFound is returned when the model or copy result does not exist.
	ErrNotFound = errors.New("client: not found")

	// ErrUnauthorized is returned when the service rejects the credentials.
	ErrUnauthorized = errors.New("client: authentication failed")
)

// errNilHTTPClient rejects WithHTTPClient(nil).
var errNilHTTPClient = errors.New("client: http client must not be nil")

// responseError maps an unexpected service response to an error, keeping the
// body text for diagnostics.
func responseError(op string, statusCode int, body []byte) error {
	switch statusCode {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, op)
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrUnauthorized, op)
	default:
		return fmt.Errorf("client: %s: unexpected status %d: %s", op, statusCode, body)
	}
}
