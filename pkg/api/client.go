// Package api implements the HTTP client for the EsportLab backend REST
// API. All requests carry a correlation ID; reads are retried a bounded
// number of times, writes never are.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/esportlab/elab/pkg/config"
	"github.com/esportlab/elab/pkg/version"
	"github.com/google/uuid"
)

// TokenSource provides the bearer token attached to requests. An empty
// token means the request goes out unauthenticated.
type TokenSource interface {
	Token() (string, error)
}

// TokenSourceFunc adapts a function to a TokenSource.
type TokenSourceFunc func() (string, error)

// Token implements TokenSource.
func (f TokenSourceFunc) Token() (string, error) { return f() }

// Client is an EsportLab API client.
type Client struct {
	baseURL    string
	maxRetries int
	httpClient *http.Client
	tokens     TokenSource
	logger     *log.Logger
}

// NewClient returns a new API client for the configured backend.
func NewClient(cfg *config.Config, tokens TokenSource, logger *log.Logger) *Client {
	return &Client{
		baseURL:    cfg.API.BaseURL,
		maxRetries: cfg.API.MaxRetries,
		tokens:     tokens,
		logger:     logger,
		httpClient: &http.Client{
			Timeout: cfg.API.Timeout.Duration(),
		},
	}
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var r io.Reader
	if body != nil {
		var buf bytes.Buffer
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		r = &buf
	}

	req, err := http.NewRequestWithContext(ctx, method, u, r)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "elab/"+version.Version)
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.tokens != nil {
		token, err := c.tokens.Token()
		if err == nil && token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	return req, nil
}

// do performs the request and decodes a JSON response into out, when out is
// non-nil. Non-2xx responses decode the problem document when one is
// present.
func (c *Client) do(req *http.Request, out any) error {
	start := time.Now()
	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer res.Body.Close() // nolint: errcheck

	if c.logger != nil {
		c.logger.Debug("response",
			"method", req.Method,
			"path", req.URL.Path,
			"status", res.StatusCode,
			"request_id", req.Header.Get("X-Request-ID"),
			"time", time.Since(start))
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		apiErr := &Error{
			StatusCode: res.StatusCode,
			RequestID:  req.Header.Get("X-Request-ID"),
		}

		if strings.Contains(res.Header.Get("Content-Type"), "application/problem+json") {
			var p Problem
			if err := json.NewDecoder(res.Body).Decode(&p); err == nil {
				apiErr.Problem = &p
			}
		}

		return apiErr
	}

	if out == nil || res.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

// get performs a read request, retrying transient failures up to the
// configured bound. 401/403/404 and other client errors are never retried.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Duration(attempt) * 500 * time.Millisecond):
			}
		}

		req, err := c.newRequest(ctx, http.MethodGet, path, query, nil)
		if err != nil {
			return err
		}

		lastErr = c.do(req, out)
		if lastErr == nil || !IsRetryable(lastErr) {
			return lastErr
		}

		if c.logger != nil {
			c.logger.Debug("retrying read", "path", path, "attempt", attempt+1, "err", lastErr)
		}
	}

	return lastErr
}

// write performs a mutation. Mutations fail immediately to the caller on
// any error; no retry.
func (c *Client) write(ctx context.Context, method, path string, body, out any) error {
	req, err := c.newRequest(ctx, method, path, nil, body)
	if err != nil {
		return err
	}

	return c.do(req, out)
}
