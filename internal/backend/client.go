// Package backend is the HTTP client for the budget backend API. A Client is
// the session: it owns the base URL, a cookie-preserving http.Client, and the
// bearer token installed after login. Call methods return the backend's
// verbatim status and body; a Go error means the request never completed.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
)

// CallResult carries the raw outcome of one backend call.
type CallResult struct {
	Status int
	Body   []byte
}

// OK reports whether the backend answered 200.
func (r CallResult) OK() bool {
	return r.Status == http.StatusOK
}

// Client is a session against one backend instance. Not safe for concurrent
// use; the seeder is strictly sequential.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient creates a session for the API rooted at baseURL
// (e.g. http://localhost:3000/api). Cookies are preserved across calls.
func NewClient(baseURL string) *Client {
	jar, _ := cookiejar.New(nil)
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Jar: jar},
	}
}

// SetToken installs the bearer token. Every subsequent request carries
// "Authorization: Bearer <token>".
func (c *Client) SetToken(token string) {
	c.token = token
}

// Health probes GET /health at the sibling of the API base. Any response,
// whatever the status, means the backend is reachable.
func (c *Client) Health(ctx context.Context) error {
	url := strings.TrimSuffix(c.baseURL, "/api") + "/health"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("health request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("health probe: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return nil
}

func (c *Client) get(ctx context.Context, path string) (CallResult, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

func (c *Client) post(ctx context.Context, path string, body any) (CallResult, error) {
	return c.do(ctx, http.MethodPost, path, body)
}

func (c *Client) do(ctx context.Context, method, path string, body any) (CallResult, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return CallResult{}, fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return CallResult{}, fmt.Errorf("build %s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return CallResult{}, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return CallResult{}, fmt.Errorf("read %s %s response: %w", method, path, err)
	}

	return CallResult{Status: resp.StatusCode, Body: raw}, nil
}
