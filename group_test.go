package modelcopy

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// succeedingPoller builds a poller whose mock succeeds after one running poll.
func succeedingPoller(t *testing.T, modelID string) *Poller {
	t.Helper()

	mock := &mockService{}
	beginSuccess(mock)
	mock.GetCopyResultFunc = func(context.Context, string, string, CopyOptions) (*CopyResult, error) {
		if mock.getCalls < 2 {
			return &CopyResult{Status: StatusRunning}, nil
		}
		return &CopyResult{Status: StatusSucceeded}, nil
	}

	auth := testAuth()
	auth.ModelID = "copied-" + modelID
	poller, err := NewPoller(mock, modelID, auth, WithPollingInterval(time.Millisecond))
	require.NoError(t, err)
	return poller
}

func TestPollAll(t *testing.T) {
	t.Parallel()

	pollers := make([]*Poller, 3)
	for i := range pollers {
		pollers[i] = succeedingPoller(t, fmt.Sprintf("model-%d", i))
	}

	results, err := PollAll(context.Background(), pollers)
	require.NoError(t, err)
	require.Len(t, results, 3)

	for i, info := range results {
		require.NotNil(t, info)
		assert.Equal(t, fmt.Sprintf("copied-model-%d", i), info.ModelID)
	}
}

func TestPollAll_BoundedConcurrency(t *testing.T) {
	t.Parallel()

	pollers := []*Poller{
		succeedingPoller(t, "model-a"),
		succeedingPoller(t, "model-b"),
	}

	results, err := PollAll(context.Background(), pollers, WithGroupConcurrency(1))
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "copied-model-a", results[0].ModelID)
	assert.Equal(t, "copied-model-b", results[1].ModelID)
}

func TestPollAll_FirstFailureWins(t *testing.T) {
	t.Parallel()

	failing := &mockService{}
	beginSuccess(failing)
	failing.GetCopyResultFunc = func(context.Context, string, string, CopyOptions) (*CopyResult, error) {
		return &CopyResult{Status: StatusFailed, RawBody: []byte("target resource unreachable")}, nil
	}
	failer, err := NewPoller(failing, "bad-model", testAuth(), WithPollingInterval(time.Millisecond))
	require.NoError(t, err)

	results, err := PollAll(context.Background(), []*Poller{
		succeedingPoller(t, "model-a"),
		failer,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOperationFailed)
	assert.Nil(t, results)
}

func TestPollAll_Empty(t *testing.T) {
	t.Parallel()

	results, err := PollAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, results)
}

func TestPollAll_NilPoller(t *testing.T) {
	t.Parallel()

	_, err := PollAll(context.Background(), []*Poller{succeedingPoller(t, "m"), nil})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nil poller")
}
