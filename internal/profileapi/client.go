// Package profileapi is the HTTP client for the /api/profiles REST service.
//
// Every operation is single-shot: there is no retry, backoff or client-side
// timeout. Any failure is reported as a *RequestFailedError.
package profileapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/nfrund/househarmony/internal/domain"
)

// DefaultBaseURL is the address of the profiles service in local development.
const DefaultBaseURL = "http://localhost:8080"

const profilesPath = "/api/profiles"

// Client translates the four profile operations into JSON-over-HTTP calls.
// It holds no state besides its configuration and is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a client for the service at baseURL. An empty baseURL
// falls back to DefaultBaseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		// No Timeout: calls run until the service answers or ctx is done.
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the service address the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// List returns every profile in the order the service sent them.
func (c *Client) List(ctx context.Context) ([]domain.Profile, error) {
	var profiles []domain.Profile
	if err := c.do(ctx, "list", http.MethodGet, profilesPath, nil, &profiles); err != nil {
		return nil, err
	}
	if profiles == nil {
		profiles = []domain.Profile{}
	}
	return profiles, nil
}

// Create sends the draft and returns the stored profile with its new id.
func (c *Client) Create(ctx context.Context, draft domain.Draft) (domain.Profile, error) {
	var created domain.Profile
	if err := c.do(ctx, "create", http.MethodPost, profilesPath, draft, &created); err != nil {
		return domain.Profile{}, err
	}
	return created, nil
}

// Update replaces the name and icon of profile id.
func (c *Client) Update(ctx context.Context, id int64, patch domain.Draft) (domain.Profile, error) {
	var updated domain.Profile
	if err := c.do(ctx, "update", http.MethodPut, profilePath(id), patch, &updated); err != nil {
		return domain.Profile{}, err
	}
	return updated, nil
}

// Delete removes profile id.
func (c *Client) Delete(ctx context.Context, id int64) error {
	return c.do(ctx, "delete", http.MethodDelete, profilePath(id), nil, nil)
}

func profilePath(id int64) string {
	return fmt.Sprintf("%s/%d", profilesPath, id)
}

// do performs one request. body is JSON-encoded when non-nil and the response
// is decoded into out when out is non-nil.
func (c *Client) do(ctx context.Context, op, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &RequestFailedError{Op: op, Err: fmt.Errorf("encode body: %w", err)}
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return &RequestFailedError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &RequestFailedError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &RequestFailedError{Op: op, StatusCode: resp.StatusCode}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &RequestFailedError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}
