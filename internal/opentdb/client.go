// Package opentdb is a client for the Open Trivia Database
// (https://opentdb.com). It implements quiz.QuestionProvider and
// quiz.CategoryDirectory.
package opentdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/billel/trivia/internal/quiz"
)

const (
	DefaultBaseURL = "https://opentdb.com"
	DefaultTimeout = 10 * time.Second

	maxBodyBytes = 1 << 20
)

// Client talks to the OpenTDB HTTP API.
type Client struct {
	baseURL    string
	client     *http.Client
	difficulty string
	sf         singleflight.Group
}

var (
	_ quiz.QuestionProvider  = (*Client)(nil)
	_ quiz.CategoryDirectory = (*Client)(nil)
)

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at another host, e.g. a test server.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = strings.TrimRight(u, "/")
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.client = hc
		}
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.client.Timeout = d
		}
	}
}

// WithDifficulty restricts questions to "easy", "medium" or "hard".
// An empty string means any difficulty.
func WithDifficulty(d string) Option {
	return func(c *Client) { c.difficulty = d }
}

// New creates a Client with the given options.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		client:  &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// getJSON fetches path, validates the body against schema and decodes it into out.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, schema *Schema, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return &StatusError{Code: resp.StatusCode, URL: u}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}

	if err := validate(schema, body); err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &InvalidResponseError{Content: body, Err: err}
	}
	return nil
}
