package modelcopy

import (
	"errors"
	"log/slog"
	"time"
)

// PollerOption configures a Poller.
type PollerOption func(*pollerConfig) error

type pollerConfig struct {
	interval          time.Duration
	progress          ProgressFunc
	copyOpts          CopyOptions
	token             string
	keepResumedStatus bool
	logger            *slog.Logger
}

// WithPollingInterval sets the delay between poll steps in PollUntilDone.
// The default is [DefaultPollingInterval].
func WithPollingInterval(d time.Duration) PollerOption {
	return func(cfg *pollerConfig) error {
		if d <= 0 {
			return errors.New("modelcopy: polling interval must be positive")
		}
		cfg.interval = d
		return nil
	}
}

// WithProgress registers a callback invoked with a state snapshot on every
// poll step that observes a non-terminal status.
func WithProgress(fn ProgressFunc) PollerOption {
	return func(cfg *pollerConfig) error {
		cfg.progress = fn
		return nil
	}
}

// WithCopyOptions sets pass-through options forwarded to every remote call.
func WithCopyOptions(opts CopyOptions) PollerOption {
	return func(cfg *pollerConfig) error {
		cfg.copyOpts = opts
		return nil
	}
}

// WithResumeToken resumes from a previously serialized state. The token's
// fields take precedence over the constructor arguments.
func WithResumeToken(token string) PollerOption {
	return func(cfg *pollerConfig) error {
		cfg.token = token
		return nil
	}
}

// WithResumedStatus keeps the status recorded in the resume token instead of
// resetting it to [StatusNotStarted].
//
// The reset is the historical default and only affects bookkeeping before
// the first poll; merged fields such as the result ID are honored either way.
func WithResumedStatus() PollerOption {
	return func(cfg *pollerConfig) error {
		cfg.keepResumedStatus = true
		return nil
	}
}

// WithLogger sets a logger for poll steps.
// If nil, logging is disabled (default behavior).
func WithLogger(logger *slog.Logger) PollerOption {
	return func(cfg *pollerConfig) error {
		cfg.logger = logger
		return nil
	}
}
