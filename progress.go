package modelcopy

// OperationState is a point-in-time snapshot of a copy operation.
//
// Snapshots are passed to progress callbacks and returned by
// [Poller.OperationState]. They do not alias poller-internal state; mutating
// a snapshot has no effect on the poller.
type OperationState struct {
	// ModelID is the source model being copied.
	ModelID string

	// TargetResourceID is the destination resource identifier.
	TargetResourceID string

	// TargetResourceRegion is the destination resource region.
	TargetResourceRegion string

	// ResultID identifies the copy result once the operation has started.
	// Empty until the begin-copy call has returned an operation location.
	ResultID string

	// Status is the last status observed from the service.
	Status OperationStatus

	// Started reports whether the begin-copy call has been issued.
	Started bool

	// Completed reports whether the operation reached successful completion.
	Completed bool

	// Result is the copied model's info, present only after success.
	Result *ModelInfo
}

// ProgressFunc receives operation snapshots while a copy is in a
// non-terminal state. It is invoked once per poll step that observes a
// notStarted or running status, from the goroutine calling Poll.
type ProgressFunc func(OperationState)
