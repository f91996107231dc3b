package modelcopy

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockService is a test mock for Service.
type mockService struct {
	BeginCopyFunc     func(ctx context.Context, modelID string, auth CopyAuthorization, opts CopyOptions) (string, error)
	GetCopyResultFunc func(ctx context.Context, modelID, resultID string, opts CopyOptions) (*CopyResult, error)

	beginCalls int
	getCalls   int
}

func (m *mockService) BeginCopy(ctx context.Context, modelID string, auth CopyAuthorization, opts CopyOptions) (string, error) {
	m.beginCalls++
	if m.BeginCopyFunc != nil {
		return m.BeginCopyFunc(ctx, modelID, auth, opts)
	}
	return "", errors.New("BeginCopy not implemented")
}

func (m *mockService) GetCopyResult(ctx context.Context, modelID, resultID string, opts CopyOptions) (*CopyResult, error) {
	m.getCalls++
	if m.GetCopyResultFunc != nil {
		return m.GetCopyResultFunc(ctx, modelID, resultID, opts)
	}
	return nil, errors.New("GetCopyResult not implemented")
}

// testAuth creates a copy authorization for testing.
func testAuth() CopyAuthorization {
	return CopyAuthorization{
		ModelID:                 "target-model-id",
		AccessToken:             "access-token",
		ExpirationDateTimeTicks: 637500000000000000,
		TargetResourceID:        "/subscriptions/s/resourceGroups/g/providers/p/accounts/target",
		TargetResourceRegion:    "westus2",
	}
}

// beginSuccess configures a BeginCopyFunc returning a valid operation location.
func beginSuccess(m *mockService) {
	m.BeginCopyFunc = func(ctx context.Context, modelID string, auth CopyAuthorization, opts CopyOptions) (string, error) {
		return "https://source.example.com/formrecognizer/v2.1/custom/models/" + modelID + "/copyResults/abc123", nil
	}
}

// getStatus configures a GetCopyResultFunc returning a fixed status.
func getStatus(m *mockService, status OperationStatus) {
	m.GetCopyResultFunc = func(ctx context.Context, modelID, resultID string, opts CopyOptions) (*CopyResult, error) {
		return &CopyResult{Status: status}, nil
	}
}

func TestPollState_Update_BeginIssuedOnce(t *testing.T) {
	t.Parallel()

	mock := &mockService{}
	beginSuccess(mock)
	getStatus(mock, StatusRunning)

	state := newPollState(mock, "source-model", testAuth(), CopyOptions{})

	require.NoError(t, state.update(context.Background(), nil))
	assert.True(t, state.isStarted)
	assert.Equal(t, "abc123", state.resultID)
	assert.Equal(t, 1, mock.beginCalls)

	require.NoError(t, state.update(context.Background(), nil))
	assert.Equal(t, 1, mock.beginCalls, "begin-copy must not be re-issued")
	assert.Equal(t, 2, mock.getCalls)
}

func TestPollState_Update_MissingOperationLocation(t *testing.T) {
	t.Parallel()

	mock := &mockService{}
	mock.BeginCopyFunc = func(context.Context, string, CopyAuthorization, CopyOptions) (string, error) {
		return "", nil
	}

	state := newPollState(mock, "source-model", testAuth(), CopyOptions{})

	err := state.update(context.Background(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingOperationLocation)
	assert.True(t, state.isStarted, "the service accepted the copy even though the location is missing")
	assert.Equal(t, 0, mock.getCalls)

	_ = state.update(context.Background(), nil)
	assert.Equal(t, 1, mock.beginCalls, "begin-copy must not be re-issued after a missing location")
}

func TestPollState_Update_BeginError(t *testing.T) {
	t.Parallel()

	mock := &mockService{}
	mock.BeginCopyFunc = func(context.Context, string, CopyAuthorization, CopyOptions) (string, error) {
		return "", errors.New("boom")
	}

	state := newPollState(mock, "source-model", testAuth(), CopyOptions{})

	err := state.update(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
	assert.True(t, state.isStarted, "begin-copy is attempted at most once")
	assert.Empty(t, state.resultID)

	_ = state.update(context.Background(), nil)
	assert.Equal(t, 1, mock.beginCalls, "begin-copy must not be re-issued after an error")
}

func TestPollState_Update_Succeeded(t *testing.T) {
	t.Parallel()

	created := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	updated := time.Date(2024, 1, 15, 10, 5, 0, 0, time.UTC)

	mock := &mockService{}
	beginSuccess(mock)
	mock.GetCopyResultFunc = func(context.Context, string, string, CopyOptions) (*CopyResult, error) {
		return &CopyResult{Status: StatusSucceeded, CreatedOn: created, LastUpdatedOn: updated}, nil
	}

	state := newPollState(mock, "source-model", testAuth(), CopyOptions{})

	require.NoError(t, state.update(context.Background(), nil))
	assert.True(t, state.isCompleted)
	assert.Equal(t, StatusSucceeded, state.status)
	require.NotNil(t, state.result)
	assert.Equal(t, &ModelInfo{
		Status:              ModelReady,
		TrainingStartedOn:   created,
		TrainingCompletedOn: updated,
		ModelID:             "target-model-id",
	}, state.result)
}

func TestPollState_Update_Failed(t *testing.T) {
	t.Parallel()

	mock := &mockService{}
	beginSuccess(mock)
	mock.GetCopyResultFunc = func(context.Context, string, string, CopyOptions) (*CopyResult, error) {
		return &CopyResult{Status: StatusFailed, RawBody: []byte(`{"error":"copy quota exceeded"}`)}, nil
	}

	state := newPollState(mock, "source-model", testAuth(), CopyOptions{})

	err := state.update(context.Background(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOperationFailed)
	assert.Contains(t, err.Error(), "copy quota exceeded")
	assert.False(t, state.isCompleted, "failed operations never mark completion")
	assert.Nil(t, state.result)
}

func TestPollState_Update_ProgressCallback(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		status    OperationStatus
		wantCalls int
	}{
		{name: "running invokes callback", status: StatusRunning, wantCalls: 1},
		{name: "notStarted invokes callback", status: StatusNotStarted, wantCalls: 1},
		{name: "succeeded does not", status: StatusSucceeded, wantCalls: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock := &mockService{}
			beginSuccess(mock)
			getStatus(mock, tt.status)

			state := newPollState(mock, "source-model", testAuth(), CopyOptions{})

			var snapshots []OperationState
			err := state.update(context.Background(), func(st OperationState) {
				snapshots = append(snapshots, st)
			})
			require.NoError(t, err)
			require.Len(t, snapshots, tt.wantCalls)

			if tt.wantCalls > 0 {
				assert.Equal(t, tt.status, snapshots[0].Status)
				assert.Equal(t, "abc123", snapshots[0].ResultID)
				assert.True(t, snapshots[0].Started)
				assert.False(t, snapshots[0].Completed)
			}
		})
	}
}

func TestPollState_Update_CompletedIsNoOp(t *testing.T) {
	t.Parallel()

	mock := &mockService{}
	beginSuccess(mock)
	getStatus(mock, StatusSucceeded)

	state := newPollState(mock, "source-model", testAuth(), CopyOptions{})
	require.NoError(t, state.update(context.Background(), nil))
	require.True(t, state.isCompleted)

	before := state.snapshot()
	require.NoError(t, state.update(context.Background(), func(OperationState) {
		t.Fatal("progress must not fire on terminal state")
	}))

	assert.Equal(t, before, state.snapshot())
	assert.Equal(t, 1, mock.beginCalls)
	assert.Equal(t, 1, mock.getCalls, "no remote calls after completion")
}

func TestResultIDFromLocation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		location string
		want     string
		wantErr  error
	}{
		{name: "url location", location: "https://x/ops/abc123", want: "abc123"},
		{name: "deep path", location: "https://host/a/b/c/result-7", want: "result-7"},
		{name: "bare id", location: "abc123", want: "abc123"},
		{name: "empty", location: "", wantErr: ErrMissingOperationLocation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := resultIDFromLocation(tt.location)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
