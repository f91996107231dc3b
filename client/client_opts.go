package client

import (
	"log/slog"
	"net/http"
)

// Option configures a Client.
type Option func(*Client) error

// WithAPIKey sets the subscription key sent with every request.
func WithAPIKey(key string) Option {
	return func(c *Client) error {
		c.apiKey = key
		return nil
	}
}

// WithHTTPClient sets a custom HTTP client.
// Useful for tests and for callers with their own transport configuration.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) error {
		if httpClient == nil {
			return errNilHTTPClient
		}
		c.httpClient = httpClient
		return nil
	}
}

// WithUserAgent sets the User-Agent header for service requests.
func WithUserAgent(ua string) Option {
	return func(c *Client) error {
		c.userAgent = ua
		return nil
	}
}

// WithLogger sets a logger for request-level diagnostics.
// If nil, logging is disabled (default behavior).
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) error {
		c.logger = logger
		return nil
	}
}
