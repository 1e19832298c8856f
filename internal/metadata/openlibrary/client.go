// Package openlibrary provides a client for the Open Library search
// API, used to power the title autocomplete suggestions.
package openlibrary

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://openlibrary.org"

// Client provides access to the Open Library search API.
type Client struct {
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	baseURL     string
	logger      *slog.Logger
}

// NewClient creates a new Open Library client.
// Rate limited to roughly one request per second with a small burst,
// which keeps a fast typer's autocomplete under the API's courtesy limits.
func NewClient(baseURL string, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		rateLimiter: rate.NewLimiter(rate.Every(time.Second), 3),
		baseURL:     baseURL,
		logger:      logger,
	}
}

// Close releases resources. Currently a no-op but included for
// interface consistency.
func (c *Client) Close() {
	// No persistent resources to close
}

// wait blocks until the rate limiter allows a request.
func (c *Client) wait(ctx context.Context) error {
	return c.rateLimiter.Wait(ctx)
}
