package modelcopy

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// DefaultPollingInterval is the delay between poll steps in PollUntilDone
// when no interval is configured.
const DefaultPollingInterval = 5 * time.Second

// errInProgress signals a non-terminal poll step inside PollUntilDone.
var errInProgress = errors.New("modelcopy: copy operation in progress")

// Poller drives a model copy operation to completion.
//
// A Poller owns its state exclusively and advances it one step per Poll call.
// It is not safe for concurrent use: callers must not invoke Poll (or
// PollUntilDone) from multiple goroutines on the same instance. Steps execute
// strictly sequentially, each observing the state left by the previous one.
type Poller struct {
	state    *pollState
	interval time.Duration
	progress ProgressFunc
	logger   *slog.Logger

	// err holds the terminal failure once the service reports one.
	err error
}

// log returns the logger, falling back to a discard logger if nil.
func (p *Poller) log() *slog.Logger {
	if p.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return p.logger
}

// NewPoller creates a poller for copying modelID into the resource named by
// the authorization.
//
// When [WithResumeToken] is supplied, the token's fields override the
// modelID and auth arguments, and a copy already started by the serializing
// poller is not started again. By default the resumed status is reset to
// [StatusNotStarted] for this run's bookkeeping; use [WithResumedStatus] to
// keep the serialized status instead.
func NewPoller(svc Service, modelID string, auth CopyAuthorization, opts ...PollerOption) (*Poller, error) {
	if svc == nil {
		return nil, ErrMissingService
	}

	cfg := pollerConfig{interval: DefaultPollingInterval}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	state := newPollState(svc, modelID, auth, cfg.copyOpts)
	if cfg.token != "" {
		tok, err := unmarshalResumeToken(cfg.token)
		if err != nil {
			return nil, err
		}
		state.applyToken(tok)
		if !cfg.keepResumedStatus {
			state.status = StatusNotStarted
		}
	}
	if state.modelID == "" {
		return nil, ErrMissingModelID
	}

	return &Poller{
		state:    state,
		interval: cfg.interval,
		progress: cfg.progress,
		logger:   cfg.logger,
	}, nil
}

// ResumePoller reconstructs a poller from a resume token produced by
// [Poller.ResumeToken]. The service is re-supplied by the caller; everything
// else comes from the token.
func ResumePoller(svc Service, token string, opts ...PollerOption) (*Poller, error) {
	if token == "" {
		return nil, ErrInvalidResumeToken
	}
	return NewPoller(svc, "", CopyAuthorization{}, append(opts, WithResumeToken(token))...)
}

// Poll performs one update step against the service.
//
// On the first step the copy is started; every step then fetches the current
// status. Non-terminal statuses invoke the progress callback. A succeeded
// status completes the poller; a failed status returns an error wrapping
// [ErrOperationFailed] and marks the poller errored. Errors are never
// swallowed; there are no retries at this layer.
func (p *Poller) Poll(ctx context.Context) error {
	err := p.state.update(ctx, p.progress)
	if err != nil {
		if errors.Is(err, ErrOperationFailed) {
			p.err = err
		}
		return err
	}
	p.log().Debug("poll step",
		"modelId", p.state.modelID,
		"resultId", p.state.resultID,
		"status", p.state.status,
	)
	return nil
}

// PollUntilDone polls repeatedly until the operation reaches a terminal
// state, waiting the configured interval in full between steps.
//
// It returns the copied model's info on success. On failure it returns the
// terminal error; the caller may retry by constructing a new poller,
// optionally resuming from the last serialized state. Cancelling the context
// stops polling and returns the context's error.
func (p *Poller) PollUntilDone(ctx context.Context) (*ModelInfo, error) {
	bo := backoff.WithContext(backoff.NewConstantBackOff(p.interval), ctx)
	err := backoff.Retry(func() error {
		if err := p.Poll(ctx); err != nil {
			return backoff.Permanent(err)
		}
		if p.state.isCompleted {
			return nil
		}
		return errInProgress
	}, bo)
	if err != nil {
		return nil, err
	}
	return p.Result()
}

// Cancel always fails with [ErrCancelNotSupported]: the service offers no
// way to cancel a copy in flight. To stop polling, cancel the context passed
// to Poll or PollUntilDone instead.
func (p *Poller) Cancel(context.Context) error {
	return ErrCancelNotSupported
}

// Done reports whether the operation reached a terminal state: either
// successful completion or a terminal failure observed by Poll.
func (p *Poller) Done() bool {
	return p.state.isCompleted || p.err != nil
}

// Status returns the last operation status observed from the service.
func (p *Poller) Status() OperationStatus {
	return p.state.status
}

// OperationState returns a snapshot of the current operation state.
func (p *Poller) OperationState() OperationState {
	return p.state.snapshot()
}

// Result returns the copied model's info once the operation has succeeded.
// It returns the terminal error after a failure, and [ErrNotDone] while the
// operation is still in flight.
func (p *Poller) Result() (*ModelInfo, error) {
	if p.err != nil {
		return nil, p.err
	}
	if !p.state.isCompleted {
		return nil, ErrNotDone
	}
	result := *p.state.result
	return &result, nil
}

// ResumeToken serializes the poller's state to a string from which polling
// can later be resumed. The token excludes the service reference; supply it
// again via [ResumePoller].
func (p *Poller) ResumeToken() (string, error) {
	return marshalResumeToken(p.state)
}
