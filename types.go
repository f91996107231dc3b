package modelcopy

import (
	"context"
	"time"
)

// OperationStatus is the status reported by the service for a copy operation.
type OperationStatus string

// Copy operation statuses.
const (
	// StatusNotStarted indicates the service has not begun processing the copy.
	StatusNotStarted OperationStatus = "notStarted"

	// StatusRunning indicates the copy is in progress.
	StatusRunning OperationStatus = "running"

	// StatusSucceeded indicates the copy completed successfully.
	StatusSucceeded OperationStatus = "succeeded"

	// StatusFailed indicates the copy terminated with an error.
	StatusFailed OperationStatus = "failed"
)

// Terminal reports whether the status is a terminal state.
func (s OperationStatus) Terminal() bool {
	return s == StatusSucceeded || s == StatusFailed
}

// ModelStatus is the readiness of a copied model.
type ModelStatus string

// ModelReady indicates the copied model is ready for use.
const ModelReady ModelStatus = "ready"

// CopyAuthorization authorizes copying a model into a target resource.
//
// Authorizations are issued by the target resource and identify both the
// destination model slot and the resource that owns it.
type CopyAuthorization struct {
	// ModelID is the identifier the copied model will have in the target resource.
	ModelID string `json:"modelId"`

	// AccessToken grants permission to write the model into the target resource.
	AccessToken string `json:"accessToken"`

	// ExpirationDateTimeTicks is the token expiry in ticks, as issued by the service.
	ExpirationDateTimeTicks int64 `json:"expirationDateTimeTicks"`

	// TargetResourceID is the full resource identifier of the destination.
	TargetResourceID string `json:"targetResourceId"`

	// TargetResourceRegion is the region hosting the destination resource.
	TargetResourceRegion string `json:"targetResourceRegion"`
}

// CopyOptions are pass-through options forwarded to every remote call.
//
// The cancellation signal for remote calls is the context passed to
// [Poller.Poll] and [Poller.PollUntilDone], not a field here.
type CopyOptions struct {
	// ClientRequestID is an optional correlation ID sent with each request.
	// If empty, implementations generate one per request.
	ClientRequestID string `json:"clientRequestId,omitempty"`
}

// CopyResult is one status observation of a copy operation.
type CopyResult struct {
	// Status is the operation status reported by the service.
	Status OperationStatus

	// CreatedOn is when the service created the operation.
	CreatedOn time.Time

	// LastUpdatedOn is when the service last updated the operation.
	LastUpdatedOn time.Time

	// RawBody is the raw response body, retained for failure diagnostics.
	RawBody []byte
}

// ModelInfo describes a successfully copied model.
type ModelInfo struct {
	// Status is the readiness of the model. Always [ModelReady] on success.
	Status ModelStatus `json:"status"`

	// TrainingStartedOn is when the copy operation was created.
	TrainingStartedOn time.Time `json:"trainingStartedOn"`

	// TrainingCompletedOn is when the copy operation last updated.
	TrainingCompletedOn time.Time `json:"trainingCompletedOn"`

	// ModelID is the model's identifier in the target resource.
	ModelID string `json:"modelId"`
}

// Service is the remote capability set a [Poller] drives.
//
// Implementations make the actual service calls; the poller only sequences
// them. Use the client subpackage for the HTTP implementation, or supply a
// custom one.
type Service interface {
	// BeginCopy starts a server-side copy of modelID into the resource named
	// by the authorization. It returns the operation location: a URL-like
	// reference whose final path segment identifies the copy result.
	BeginCopy(ctx context.Context, modelID string, auth CopyAuthorization, opts CopyOptions) (string, error)

	// GetCopyResult fetches the current status of a copy operation.
	GetCopyResult(ctx context.Context, modelID, resultID string, opts CopyOptions) (*CopyResult, error)
}
