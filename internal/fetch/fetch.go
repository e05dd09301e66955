// Package fetch downloads a single case-history page for later parsing.
// It is a transport collaborator for the CLI: the parsing core never
// performs network I/O itself. Session handling, captcha solving, and the
// portal's multi-step search flow are out of scope here; callers supply a
// URL that already resolves to a case-history response.
package fetch

import (
	"context"
	"fmt"
	"time"

	"github.com/gocolly/colly/v2"
)

// Options controls a fetch.
type Options struct {
	UserAgent string
	Timeout   time.Duration
	Headers   map[string]string
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() Options {
	return Options{
		UserAgent: "ecourts/1.0 (+https://github.com/courtline/ecourts)",
		Timeout:   30 * time.Second,
	}
}

// Page retrieves one URL and returns the raw response body as text. A new
// collector is created per request so fetches are independent. Cancellation
// is bounded by the request timeout; ctx is checked before the request
// starts.
func Page(ctx context.Context, targetURL string, opts Options) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultOptions().UserAgent
	}
	if opts.Timeout == 0 {
		opts.Timeout = DefaultOptions().Timeout
	}

	c := colly.NewCollector(
		colly.UserAgent(opts.UserAgent),
	)
	c.SetRequestTimeout(opts.Timeout)

	if len(opts.Headers) > 0 {
		c.OnRequest(func(r *colly.Request) {
			for k, v := range opts.Headers {
				r.Headers.Set(k, v)
			}
		})
	}

	var body string
	var status int
	var fetchErr error

	c.OnResponse(func(r *colly.Response) {
		status = r.StatusCode
		body = string(r.Body)
	})
	c.OnError(func(r *colly.Response, err error) {
		if r != nil {
			status = r.StatusCode
		}
		fetchErr = fmt.Errorf("fetch error: %w", err)
	})

	if err := c.Visit(targetURL); err != nil {
		return "", fmt.Errorf("failed to visit URL: %w", err)
	}
	if fetchErr != nil {
		return "", fetchErr
	}
	if status >= 400 {
		return "", fmt.Errorf("unexpected status %d from %s", status, targetURL)
	}
	return body, nil
}
