// Package http provides the HTTP implementation of rmguide.Fetcher.
// It performs a single request attempt per call; retry and rate limiting
// are layered on by the crawl package.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"rmguide"
)

// DefaultFetchTimeout bounds a single request, independent of retry backoff.
const DefaultFetchTimeout = 30 * time.Second

// userAgent identifies the scraper to the guide's servers.
const userAgent = "rmguide/1.0 (educational/research)"

// Ensure Fetcher implements rmguide.Fetcher at compile time.
var _ rmguide.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using plain HTTP requests.
// The guide is a static site, so no JavaScript rendering is needed.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-request timeout.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithClient replaces the underlying HTTP client. Used by tests.
func WithClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.client = c
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.client == nil {
		f.client = &http.Client{
			Timeout: f.timeout,
		}
	}

	return f
}

// Fetch retrieves the HTML content of the given URL. All failures are
// reported as *rmguide.FetchError with Attempts set to 1; transport errors
// and timeouts classify as transient, HTTP statuses per
// rmguide.FetchError.Transient.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		// Malformed request target; not worth retrying.
		return "", &rmguide.FetchError{URL: url, Attempts: 1, StatusCode: http.StatusBadRequest, Err: err}
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", &rmguide.FetchError{URL: url, Attempts: 1, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &rmguide.FetchError{URL: url, Attempts: 1, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &rmguide.FetchError{URL: url, Attempts: 1, Err: err}
	}

	return string(body), nil
}
