package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/meigma/modelcopy"
)

// copyAuthorizationResponse is the wire form of a minted authorization.
type copyAuthorizationResponse struct {
	ModelID                 string `json:"modelId"`
	AccessToken             string `json:"accessToken"`
	ExpirationDateTimeTicks int64  `json:"expirationDateTimeTicks"`
}

// GenerateCopyAuthorization asks the resource this client targets to issue
// an authorization for copying a model into it.
//
// The client must target the destination resource; the returned authorization
// is then passed to a poller driving the source resource. targetResourceID
// and targetResourceRegion identify the destination and are echoed into the
// authorization for the copy request.
func (c *Client) GenerateCopyAuthorization(ctx context.Context, targetResourceID, targetResourceRegion string, opts modelcopy.CopyOptions) (modelcopy.CopyAuthorization, error) {
	req, err := c.newRequest(ctx, http.MethodPost, c.url("custom", "models", "copyAuthorization"), struct{}{}, opts)
	if err != nil {
		return modelcopy.CopyAuthorization{}, err
	}

	resp, body, err := c.do(req)
	if err != nil {
		return modelcopy.CopyAuthorization{}, err
	}
	if resp.StatusCode != http.StatusCreated {
		return modelcopy.CopyAuthorization{}, responseError("generate copy authorization", resp.StatusCode, body)
	}

	var parsed copyAuthorizationResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return modelcopy.CopyAuthorization{}, fmt.Errorf("client: decode copy authorization: %w", err)
	}

	c.log().Debug("copy authorization issued", "modelId", parsed.ModelID)
	return modelcopy.CopyAuthorization{
		ModelID:                 parsed.ModelID,
		AccessToken:             parsed.AccessToken,
		ExpirationDateTimeTicks: parsed.ExpirationDateTimeTicks,
		TargetResourceID:        targetResourceID,
		TargetResourceRegion:    targetResourceRegion,
	}, nil
}
