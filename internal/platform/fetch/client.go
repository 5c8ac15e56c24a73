// Package fetch is the outbound HTTP transport shared by the upstream
// clients. It deliberately does not interpret HTTP status codes: both
// upstreams report "not found" inside valid JSON bodies, and that is the
// normalizers' business, not the transport's.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Error is a transport-level failure: DNS, connection, timeout, or a body
// that is not JSON. It is the only error kind this package returns.
type Error struct {
	URL string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Client issues JSON GET requests against the upstream directories.
type Client struct {
	http *http.Client
}

// NewClient returns a Client whose requests time out after the given
// duration. A zero timeout falls back to 10 seconds.
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{http: &http.Client{Timeout: timeout}}
}

// GetJSON performs a GET on url with the supplied headers and returns the
// raw JSON body. Network failures and non-JSON bodies return a *Error;
// HTTP status codes are not inspected. The request is abandoned when ctx
// is cancelled.
func (c *Client) GetJSON(ctx context.Context, url string, headers map[string]string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &Error{URL: url, Err: err}
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &Error{URL: url, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{URL: url, Err: fmt.Errorf("reading body: %w", err)}
	}
	if !json.Valid(body) {
		return nil, &Error{URL: url, Err: fmt.Errorf("response body is not JSON")}
	}
	return json.RawMessage(body), nil
}
