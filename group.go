package modelcopy

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// GroupOption configures a PollAll call.
type GroupOption func(*groupConfig)

type groupConfig struct {
	concurrency int
}

// WithGroupConcurrency caps how many operations are polled at once.
// Values < 1 remove the cap (the default).
func WithGroupConcurrency(n int) GroupOption {
	return func(cfg *groupConfig) {
		cfg.concurrency = n
	}
}

// PollAll drives several pollers to completion concurrently.
//
// Each poller still advances sequentially; only distinct pollers run in
// parallel. Results are positionally aligned with the input slice. The first
// terminal failure cancels the remaining operations and is returned.
func PollAll(ctx context.Context, pollers []*Poller, opts ...GroupOption) ([]*ModelInfo, error) {
	if len(pollers) == 0 {
		return nil, nil
	}
	for _, p := range pollers {
		if p == nil {
			return nil, errors.New("modelcopy: nil poller in group")
		}
	}

	cfg := groupConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	concurrency := cfg.concurrency
	if concurrency < 1 {
		concurrency = len(pollers)
	}

	results := make([]*ModelInfo, len(pollers))
	sem := semaphore.NewWeighted(int64(concurrency))
	eg, ctx := errgroup.WithContext(ctx)

	for i, p := range pollers {
		eg.Go(func() error {
			if err := sem.Acquire(ctx, 1); err != nil {
				return err
			}
			defer sem.Release(1)

			info, err := p.PollUntilDone(ctx)
			if err != nil {
				return err
			}
			results[i] = info
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
