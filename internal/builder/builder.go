// Package builder integrates the externally hosted visual page builder. The
// builder owns the render tree for its pages; this package only fetches the
// tree and decides whether a page defers to it.
package builder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrNotConfigured reports a fetch without a builder API endpoint configured.
var ErrNotConfigured = errors.New("builder api is not configured")

// Content is one externally-authored page: an opaque render tree scoped to a
// named page model. The tree is passed through to the template untouched.
type Content struct {
	ID   string          `json:"id"`
	Name string          `json:"name"`
	Data json.RawMessage `json:"data"`
}

type contentResponse struct {
	Results []Content `json:"results"`
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client fetches builder content over HTTP.
type Client struct {
	httpClient httpDoer
	baseURL    string
	apiKey     string
}

// NewClient constructs a builder client. An empty baseURL leaves the client
// unconfigured; fetches then report ErrNotConfigured.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		apiKey:     strings.TrimSpace(apiKey),
	}
}

// SetHTTPClient swaps the HTTP client, mainly for tests.
func (c *Client) SetHTTPClient(client httpDoer) {
	if client == nil {
		c.httpClient = &http.Client{Timeout: 10 * time.Second}
		return
	}
	c.httpClient = client
}

// FetchContent loads the render tree for a page model and URL path. A
// builder response with no matching entry yields (nil, nil): absence is a
// state for the gate, not an error.
func (c *Client) FetchContent(ctx context.Context, model, urlPath string) (*Content, error) {
	if c.baseURL == "" {
		return nil, ErrNotConfigured
	}

	endpoint := fmt.Sprintf("%s/content/%s?apiKey=%s&url=%s",
		c.baseURL, url.PathEscape(model), url.QueryEscape(c.apiKey), url.QueryEscape(urlPath))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build content request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch builder content: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		msg := strings.TrimSpace(string(body))
		if msg != "" {
			return nil, fmt.Errorf("builder returned %s: %s", resp.Status, msg)
		}
		return nil, fmt.Errorf("builder returned %s", resp.Status)
	}

	var decoded contentResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode builder content: %w", err)
	}
	if len(decoded.Results) == 0 {
		return nil, nil
	}
	return &decoded.Results[0], nil
}

// ShouldRender decides whether a page defers to builder content: true when
// content exists or the request is a preview. When false on a builder-only
// route the page renders its not-found state.
func ShouldRender(content *Content, previewing bool) bool {
	return content != nil || previewing
}
