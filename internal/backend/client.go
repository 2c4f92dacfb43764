// Package backend is the HTTP client for the remote inventory service. It
// performs one round trip per call: no retries, no caching, and no client-side
// timeout (the transport default applies).
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/erazemk/konzola/internal/metrics"
)

// RequestError is a failed round trip: a transport error or a non-2xx
// response. Message carries the server-provided text when one was decodable,
// otherwise a generic fallback suitable for display.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("backend: %s (status %d)", e.Message, e.Status)
	}
	return "backend: " + e.Message
}

// Client talks to the remote inventory API.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// New creates a client for the API at baseURL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		// No Timeout on purpose: the transport default applies.
		http: &http.Client{},
	}
}

// WithToken returns a copy of the client that authenticates every request
// with the given bearer token. The receiver is unchanged, so one shared
// client can serve many sessions.
func (c *Client) WithToken(token string) *Client {
	clone := *c
	clone.token = token
	return &clone
}

// do issues a request and decodes a 2xx JSON response into out (skipped when
// out is nil). Non-2xx responses become a *RequestError carrying the server
// message.
func (c *Client) do(ctx context.Context, operation, method, path string, body, out any) error {
	start := time.Now()
	err := c.roundTrip(ctx, method, path, body, out)
	metrics.BackendRequestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.BackendRequestErrors.WithLabelValues(operation).Inc()
	}
	return err
}

func (c *Client) roundTrip(ctx context.Context, method, path string, body, out any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &RequestError{Message: "could not reach the inventory service"}
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &RequestError{Status: resp.StatusCode, Message: serverMessage(data)}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

// serverMessage extracts the error text from a response body. The API uses
// {"message": ...} but some deployments answer {"error": ...}.
func serverMessage(body []byte) string {
	var parsed struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil {
		if parsed.Message != "" {
			return parsed.Message
		}
		if parsed.Error != "" {
			return parsed.Error
		}
	}
	return "something went wrong, please try again"
}
