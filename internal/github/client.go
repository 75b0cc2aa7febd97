// Package github is the upstream adapter's REST client. It owns no protocol
// logic beyond bearer-auth HTTPS calls against the GitHub v3 API and the
// decoding of error bodies into APIError values.
package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultBaseURL = "https://api.github.com"
	apiVersion     = "2022-11-28"
	acceptJSON     = "application/vnd.github+json"
	// acceptTextMatch asks the search endpoint to include fragment snippets.
	acceptTextMatch = "application/vnd.github.text-match+json"
)

// ErrDirectory is returned by Contents when the path resolves to a directory
// listing instead of a single file.
var ErrDirectory = errors.New("path is a directory")

// APIError is a non-2xx upstream response. Message is GitHub's own message
// field, passed through verbatim.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string { return e.Message }

// Client is a shared read-only handle to the GitHub REST API, constructed
// once at startup and injected into every adapter.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL (tests, GitHub Enterprise).
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLimiter overrides the request rate limiter.
func WithLimiter(l *rate.Limiter) Option {
	return func(c *Client) { c.limiter = l }
}

// NewClient creates a Client authorized by token.
func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		token:      token,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		limiter:    rate.NewLimiter(rate.Limit(1), 5),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// get issues one GET against path, decoding the JSON body into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, accept string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	if accept == "" {
		accept = acceptJSON
	}
	req.Header.Set("Accept", accept)
	req.Header.Set("X-GitHub-Api-Version", apiVersion)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var body struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Message != "" {
			apiErr.Message = body.Message
		} else {
			apiErr.Message = resp.Status
		}
		return apiErr
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// Repository fetches repository metadata.
func (c *Client) Repository(ctx context.Context, owner, repo string) (*Repository, error) {
	var r Repository
	path := fmt.Sprintf("/repos/%s/%s", owner, repo)
	if err := c.get(ctx, path, nil, "", &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// Issues fetches issues for a repository filtered by state.
func (c *Client) Issues(ctx context.Context, owner, repo, state string, perPage int) ([]Issue, error) {
	q := url.Values{}
	q.Set("state", state)
	q.Set("per_page", strconv.Itoa(perPage))

	var issues []Issue
	path := fmt.Sprintf("/repos/%s/%s/issues", owner, repo)
	if err := c.get(ctx, path, q, "", &issues); err != nil {
		return nil, err
	}
	return issues, nil
}

// Contents fetches a single file at path on ref. A directory listing (the
// endpoint returns a JSON array) or any non-file entry yields ErrDirectory.
func (c *Client) Contents(ctx context.Context, owner, repo, path, ref string) (*Content, error) {
	q := url.Values{}
	q.Set("ref", ref)

	var raw json.RawMessage
	p := fmt.Sprintf("/repos/%s/%s/contents/%s", owner, repo, path)
	if err := c.get(ctx, p, q, "", &raw); err != nil {
		return nil, err
	}
	if len(raw) > 0 && raw[0] == '[' {
		return nil, ErrDirectory
	}

	var content Content
	if err := json.Unmarshal(raw, &content); err != nil {
		return nil, err
	}
	if content.Type != "file" {
		return nil, ErrDirectory
	}
	return &content, nil
}

// SearchCode issues a code search. When textMatches is set, the response
// items carry fragment snippets.
func (c *Client) SearchCode(ctx context.Context, query string, perPage int, textMatches bool) (*SearchResult, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("per_page", strconv.Itoa(perPage))

	accept := ""
	if textMatches {
		accept = acceptTextMatch
	}

	var result SearchResult
	if err := c.get(ctx, "/search/code", q, accept, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Commits fetches commit history starting from ref.
func (c *Client) Commits(ctx context.Context, owner, repo, ref string, perPage int) ([]Commit, error) {
	q := url.Values{}
	q.Set("sha", ref)
	q.Set("per_page", strconv.Itoa(perPage))

	var commits []Commit
	path := fmt.Sprintf("/repos/%s/%s/commits", owner, repo)
	if err := c.get(ctx, path, q, "", &commits); err != nil {
		return nil, err
	}
	return commits, nil
}

// RateLimit fetches the current API quota.
func (c *Client) RateLimit(ctx context.Context) (*RateLimit, error) {
	var rl RateLimit
	if err := c.get(ctx, "/rate_limit", nil, "", &rl); err != nil {
		return nil, err
	}
	return &rl, nil
}
