// Package fetch provides the polite HTTP client used to pull source
// pages.
//
// Fetches are strictly sequential; a fixed politeness delay is applied
// between consecutive requests so a run never hammers the source servers.
// There is no retry or back-off: a failed fetch means the page is
// unavailable for this run and the caller moves on.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/pfrederiksen/pogo-library/internal/logger"
)

// Getter is the fetch capability consumed by the adapters and the
// library writer.
type Getter interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// Client fetches pages with a fixed politeness delay between requests.
type Client struct {
	http      *http.Client
	limiter   *rate.Limiter
	userAgent string
}

// New creates a Client. A zero or negative delay disables the politeness
// wait, which tests rely on.
func New(userAgent string, timeout, delay time.Duration) *Client {
	limiter := rate.NewLimiter(rate.Inf, 1)
	if delay > 0 {
		limiter = rate.NewLimiter(rate.Every(delay), 1)
	}
	return &Client{
		http:      &http.Client{Timeout: timeout},
		limiter:   limiter,
		userAgent: userAgent,
	}
}

// Get fetches url and returns the response body. Any transport error or
// non-2xx status is returned as an error; callers treat that as the page
// being unavailable, never as a fault.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("waiting for politeness delay: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		logger.IncrCounter("fetch.errors")
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.IncrCounter("fetch.errors")
		return nil, fmt.Errorf("fetching %s: unexpected status code: %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.IncrCounter("fetch.errors")
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	logger.IncrCounter("fetch.success")
	logger.RecordTiming("fetch", time.Since(start))
	return body, nil
}
