package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultTimeout bounds a single request.
const DefaultTimeout = 30 * time.Second

// maxBodySize caps the size of a fetched asset.
const maxBodySize = 256 << 20

// Client wraps HTTP operations with minoise-specific configuration.
//
// Example usage:
//
//	client := NewClient()
//	data, err := client.Get(ctx, assetURL)
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// NewClient creates a new HTTP client.
//
// The client is configured with:
//   - DefaultTimeout
//   - "minoise" User-Agent header
func NewClient() *Client {
	return NewClientWith(&http.Client{Timeout: DefaultTimeout})
}

// NewClientWith wraps an existing *http.Client, for tests and custom transports.
func NewClientWith(hc *http.Client) *Client {
	return &Client{
		httpClient: hc,
		userAgent:  "minoise",
	}
}

// StatusError reports a response whose status was not 200 OK.
type StatusError struct {
	URL    string
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d from %s: %s", e.Code, e.URL, e.Status)
}

// Temporary reports whether retrying the request may succeed.
func (e *StatusError) Temporary() bool {
	return e.Code == http.StatusTooManyRequests || e.Code >= 500
}

// Get performs a GET request and returns the response body as bytes.
//
// Returns an error if:
//   - The request fails
//   - The response status is not 200 OK (as *StatusError)
//   - Reading the body fails
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{URL: url, Code: resp.StatusCode, Status: resp.Status}
	}

	return io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
}
