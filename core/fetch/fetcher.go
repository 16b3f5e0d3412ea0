// Package fetch implements the Fetcher interface.
// It performs a single HTTP GET per problem page; there are no retries.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gaurav-prasanna/taskmd/core"
	"github.com/gaurav-prasanna/taskmd/core/logging"
)

const (
	DefaultTimeout   = 10 * time.Second
	DefaultUserAgent = "taskmd/1.0 (https://github.com/gaurav-prasanna/taskmd)"
)

// StatusError reports a response whose status was not 200 OK.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d when fetching %s", e.StatusCode, e.URL)
}

// HTTPFetcher fetches problem pages via HTTP.
type HTTPFetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	log       core.Logger
}

// Option configures an HTTPFetcher.
type Option func(*HTTPFetcher)

// WithTimeout overrides DefaultTimeout. Non-positive values are ignored.
// It takes effect regardless of its position relative to WithClient.
func WithTimeout(d time.Duration) Option {
	return func(f *HTTPFetcher) {
		if d > 0 {
			f.timeout = d
		}
	}
}

// WithUserAgent overrides DefaultUserAgent. Empty values are ignored.
func WithUserAgent(ua string) Option {
	return func(f *HTTPFetcher) {
		if ua != "" {
			f.userAgent = ua
		}
	}
}

// WithClient replaces the HTTP client. The client's own Timeout is kept
// unless WithTimeout is also given; the caller's client is never modified.
func WithClient(c *http.Client) Option {
	return func(f *HTTPFetcher) {
		if c != nil {
			f.client = c
		}
	}
}

// WithLogger sets the logger for request tracing.
func WithLogger(l core.Logger) Option {
	return func(f *HTTPFetcher) {
		if l != nil {
			f.log = l
		}
	}
}

// New creates an HTTPFetcher with DefaultTimeout.
func New(opts ...Option) *HTTPFetcher {
	f := &HTTPFetcher{
		client:    &http.Client{Timeout: DefaultTimeout},
		userAgent: DefaultUserAgent,
		log:       logging.Nop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.timeout > 0 && f.client.Timeout != f.timeout {
		c := *f.client
		c.Timeout = f.timeout
		f.client = &c
	}
	return f
}

// Fetch retrieves the HTML content of the given URL. Any status other than
// 200 is returned as a *StatusError.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (*core.FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	f.log.Debug("fetching", "url", url, "timeout", f.client.Timeout)
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	f.log.Debug("fetched", "url", url, "bytes", len(body))

	return &core.FetchResult{
		URL:        url,
		StatusCode: resp.StatusCode,
		HTML:       string(body),
	}, nil
}
