package modelcopy

import (
	"context"
	"fmt"
	"strings"
)

// pollState holds everything needed to resume a copy operation from scratch.
//
// The service reference is injected at construction and never serialized;
// all other fields round-trip through a resume token. A pollState is owned
// by exactly one Poller and mutated only inside update.
type pollState struct {
	service Service

	modelID              string
	targetResourceID     string
	targetResourceRegion string
	auth                 CopyAuthorization

	resultID    string
	status      OperationStatus
	isStarted   bool
	isCompleted bool
	result      *ModelInfo

	copyOpts CopyOptions
}

func newPollState(svc Service, modelID string, auth CopyAuthorization, copyOpts CopyOptions) *pollState {
	return &pollState{
		service:              svc,
		modelID:              modelID,
		targetResourceID:     auth.TargetResourceID,
		targetResourceRegion: auth.TargetResourceRegion,
		auth:                 auth,
		status:               StatusNotStarted,
		copyOpts:             copyOpts,
	}
}

// update performs one step of the polling protocol.
//
// Once the state is completed, update is a no-op: it returns nil without
// issuing any remote calls. Otherwise it starts the operation if needed,
// fetches the current status, and advances the state:
//
//   - notStarted, running: progress is invoked with a snapshot, nothing else changes
//   - succeeded: result is populated and the state is marked completed
//   - failed: returns an error wrapping [ErrOperationFailed] with the response
//     body; the state stays non-completed
//
// Fatal errors abort the step; there are no retries at this layer.
func (s *pollState) update(ctx context.Context, progress ProgressFunc) error {
	if s.isCompleted {
		return nil
	}

	if !s.isStarted {
		// Marked started before the outcome is known; the begin call
		// fires at most once per operation.
		s.isStarted = true
		location, err := s.service.BeginCopy(ctx, s.modelID, s.auth, s.copyOpts)
		if err != nil {
			return fmt.Errorf("begin copy: %w", err)
		}
		resultID, err := resultIDFromLocation(location)
		if err != nil {
			return err
		}
		s.resultID = resultID
	}

	res, err := s.service.GetCopyResult(ctx, s.modelID, s.resultID, s.copyOpts)
	if err != nil {
		return fmt.Errorf("get copy result: %w", err)
	}
	s.status = res.Status

	switch res.Status {
	case StatusSucceeded:
		s.result = &ModelInfo{
			Status:              ModelReady,
			TrainingStartedOn:   res.CreatedOn,
			TrainingCompletedOn: res.LastUpdatedOn,
			ModelID:             s.auth.ModelID,
		}
		s.isCompleted = true
	case StatusFailed:
		return fmt.Errorf("%w: %s", ErrOperationFailed, res.RawBody)
	default:
		if progress != nil {
			progress(s.snapshot())
		}
	}
	return nil
}

// snapshot returns a copy of the state with no aliasing into the pollState.
func (s *pollState) snapshot() OperationState {
	st := OperationState{
		ModelID:              s.modelID,
		TargetResourceID:     s.targetResourceID,
		TargetResourceRegion: s.targetResourceRegion,
		ResultID:             s.resultID,
		Status:               s.status,
		Started:              s.isStarted,
		Completed:            s.isCompleted,
	}
	if s.result != nil {
		result := *s.result
		st.Result = &result
	}
	return st
}

// resultIDFromLocation extracts the result ID from an operation location:
// the segment after the last path separator. A location with no separator is
// taken as the ID itself.
func resultIDFromLocation(location string) (string, error) {
	if location == "" {
		return "", ErrMissingOperationLocation
	}
	return location[strings.LastIndex(location, "/")+1:], nil
}
