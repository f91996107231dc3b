package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/meigma/modelcopy"
)

// basePath is the service API prefix appended to the resource endpoint.
const basePath = "/formrecognizer/v2.1"

// maxResponseBodySize bounds how much of a response body is read.
const maxResponseBodySize = 1 << 20 // 1MB

// connection pooling limits for long polling sessions
const (
	defaultMaxIdleConns        = 100
	defaultMaxIdleConnsPerHost = 10
	defaultIdleConnTimeout     = 60 * time.Second
)

// Client implements the modelcopy.Service capability set over HTTP.
type Client struct {
	endpoint   string
	apiKey     string
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger
}

var _ modelcopy.Service = (*Client)(nil)

// log returns the logger, falling back to a discard logger if nil.
func (c *Client) log() *slog.Logger {
	if c.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.logger
}

// New creates a client for the resource at endpoint
// (e.g. "https://westus2.api.cognitive.example.com").
//
// If no API key is configured, requests are sent unauthenticated.
func New(endpoint string, opts ...Option) (*Client, error) {
	c := &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        defaultMaxIdleConns,
				MaxIdleConnsPerHost: defaultMaxIdleConnsPerHost,
				IdleConnTimeout:     defaultIdleConnTimeout,
			},
		}
	}
	return c, nil
}

// url joins the endpoint, API prefix, and path segments.
func (c *Client) url(segments ...string) string {
	return c.endpoint + basePath + "/" + strings.Join(segments, "/")
}

// newRequest builds a request with auth and correlation headers applied.
func (c *Client) newRequest(ctx context.Context, method, url string, payload any, opts modelcopy.CopyOptions) (*http.Request, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("client: encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("client: create request: %w", err)
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Ocp-Apim-Subscription-Key", c.apiKey)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	requestID := opts.ClientRequestID
	if requestID == "" {
		requestID = uuid.NewString()
	}
	req.Header.Set("X-Ms-Client-Request-Id", requestID)

	return req, nil
}

// do executes the request and returns the response with its body drained,
// limited to maxResponseBodySize.
func (c *Client) do(req *http.Request) (*http.Response, []byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("client: %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if err != nil {
		return nil, nil, fmt.Errorf("client: read response: %w", err)
	}
	return resp, body, nil
}
