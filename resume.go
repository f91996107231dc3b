package modelcopy

import (
	"encoding/json"
	"fmt"
)

// resumeToken is the wire form of a serialized poller.
//
// The state is nested under a "state" key so the format can grow metadata
// without breaking existing tokens.
type resumeToken struct {
	State stateToken `json:"state"`
}

// stateToken mirrors pollState minus the service reference, which is not
// serializable and must be re-supplied on resume.
type stateToken struct {
	ModelID              string            `json:"modelId"`
	TargetResourceID     string            `json:"targetResourceId"`
	TargetResourceRegion string            `json:"targetResourceRegion"`
	CopyAuthorization    CopyAuthorization `json:"copyAuthorization"`
	ResultID             string            `json:"resultId,omitempty"`
	Status               OperationStatus   `json:"status"`
	IsStarted            bool              `json:"isStarted"`
	IsCompleted          bool              `json:"isCompleted"`
	Result               *ModelInfo        `json:"result,omitempty"`
	CopyOptions          CopyOptions       `json:"copyModelOptions"`
}

// marshalResumeToken serializes a pollState to a resume token string.
func marshalResumeToken(s *pollState) (string, error) {
	tok := resumeToken{State: stateToken{
		ModelID:              s.modelID,
		TargetResourceID:     s.targetResourceID,
		TargetResourceRegion: s.targetResourceRegion,
		CopyAuthorization:    s.auth,
		ResultID:             s.resultID,
		Status:               s.status,
		IsStarted:            s.isStarted,
		IsCompleted:          s.isCompleted,
		Result:               s.result,
		CopyOptions:          s.copyOpts,
	}}
	data, err := json.Marshal(tok)
	if err != nil {
		return "", fmt.Errorf("modelcopy: serialize state: %w", err)
	}
	return string(data), nil
}

// unmarshalResumeToken decodes and validates a resume token string.
func unmarshalResumeToken(token string) (stateToken, error) {
	var tok resumeToken
	if err := json.Unmarshal([]byte(token), &tok); err != nil {
		return stateToken{}, fmt.Errorf("%w: %v", ErrInvalidResumeToken, err)
	}
	// A completed state must carry its result; a token claiming completion
	// without one (truncated or hand-edited) cannot be resumed.
	if tok.State.IsCompleted && tok.State.Result == nil {
		return stateToken{}, fmt.Errorf("%w: completed state has no result", ErrInvalidResumeToken)
	}
	return tok.State, nil
}

// applyToken overwrites the resumable fields of s with the token's fields.
// The service reference and any defaulted status handling are left to the caller.
func (s *pollState) applyToken(tok stateToken) {
	s.modelID = tok.ModelID
	s.targetResourceID = tok.TargetResourceID
	s.targetResourceRegion = tok.TargetResourceRegion
	s.auth = tok.CopyAuthorization
	s.resultID = tok.ResultID
	s.status = tok.Status
	s.isStarted = tok.IsStarted
	s.isCompleted = tok.IsCompleted
	s.result = tok.Result
	s.copyOpts = tok.CopyOptions
}
