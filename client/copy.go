package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/meigma/modelcopy"
)

// copyRequest is the wire form of a begin-copy request body.
type copyRequest struct {
	TargetResourceID     string            `json:"targetResourceId"`
	TargetResourceRegion string            `json:"targetResourceRegion"`
	CopyAuthorization    copyAuthorization `json:"copyAuthorization"`
}

// copyAuthorization is the authorization subset the copy endpoint accepts.
type copyAuthorization struct {
	ModelID                 string `json:"modelId"`
	AccessToken             string `json:"accessToken"`
	ExpirationDateTimeTicks int64  `json:"expirationDateTimeTicks"`
}

// copyResultResponse is the wire form of a copy result status body.
type copyResultResponse struct {
	Status              modelcopy.OperationStatus `json:"status"`
	CreatedDateTime     time.Time                 `json:"createdDateTime"`
	LastUpdatedDateTime time.Time                 `json:"lastUpdatedDateTime"`
}

// BeginCopy starts a server-side copy of modelID into the resource named by
// the authorization. It returns the operation location from the response
// headers; an empty location means the service did not provide one.
func (c *Client) BeginCopy(ctx context.Context, modelID string, auth modelcopy.CopyAuthorization, opts modelcopy.CopyOptions) (string, error) {
	payload := copyRequest{
		TargetResourceID:     auth.TargetResourceID,
		TargetResourceRegion: auth.TargetResourceRegion,
		CopyAuthorization: copyAuthorization{
			ModelID:                 auth.ModelID,
			AccessToken:             auth.AccessToken,
			ExpirationDateTimeTicks: auth.ExpirationDateTimeTicks,
		},
	}

	req, err := c.newRequest(ctx, http.MethodPost, c.url("custom", "models", modelID, "copy"), payload, opts)
	if err != nil {
		return "", err
	}

	resp, body, err := c.do(req)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusAccepted {
		return "", responseError("begin copy", resp.StatusCode, body)
	}

	location := resp.Header.Get("Operation-Location")
	c.log().Debug("copy accepted", "modelId", modelID, "operationLocation", location)
	return location, nil
}

// GetCopyResult fetches the current status of a copy operation.
func (c *Client) GetCopyResult(ctx context.Context, modelID, resultID string, opts modelcopy.CopyOptions) (*modelcopy.CopyResult, error) {
	req, err := c.newRequest(ctx, http.MethodGet, c.url("custom", "models", modelID, "copyResults", resultID), nil, opts)
	if err != nil {
		return nil, err
	}

	resp, body, err := c.do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, responseError("get copy result", resp.StatusCode, body)
	}

	var parsed copyResultResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("client: decode copy result: %w", err)
	}

	c.log().Debug("copy result",
		"modelId", modelID,
		"resultId", resultID,
		"status", parsed.Status,
	)
	return &modelcopy.CopyResult{
		Status:        parsed.Status,
		CreatedOn:     parsed.CreatedDateTime,
		LastUpdatedOn: parsed.LastUpdatedDateTime,
		RawBody:       body,
	}, nil
}
