// Package http provides an HTTP-based implementation of
// litcontest.PageFetcher for the paginated listing site.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	litcontest "github.com/kytalli/lit-contest"
	"golang.org/x/time/rate"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent is sent with every request. The listing site rejects
// requests without a browser-like agent string.
const DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/125.0.0.0 Safari/537.36"

// Ensure Fetcher implements litcontest.PageFetcher at compile time.
var _ litcontest.PageFetcher = (*Fetcher)(nil)

// Fetcher retrieves listing pages over HTTP. The page index is carried in
// the listing URL's "page" query parameter. Timeouts and politeness delays
// are fetcher configuration; the crawler never sleeps on its own.
type Fetcher struct {
	client    *http.Client
	listURL   string
	userAgent string
	timeout   time.Duration
	limiter   *rate.Limiter
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithRateLimit caps requests at rps per second with no bursting.
// Zero or negative rps disables the limiter.
func WithRateLimit(rps float64) Option {
	return func(f *Fetcher) {
		if rps > 0 {
			f.limiter = rate.NewLimiter(rate.Limit(rps), 1)
		}
	}
}

// NewFetcher creates a Fetcher for the given listing URL
// (e.g. "https://www.pw.org/grants").
func NewFetcher(listURL string, opts ...Option) *Fetcher {
	f := &Fetcher{
		listURL:   listURL,
		userAgent: DefaultUserAgent,
		timeout:   DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// FetchPage retrieves the listing page at the given index.
// A non-200 status yields an EUNAVAILABLE error carrying the status code
// and page index.
func (f *Fetcher) FetchPage(ctx context.Context, page int) (string, error) {
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return "", err
		}
	}

	pageURL, err := f.pageURL(page)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", litcontest.Errorf(litcontest.EUNAVAILABLE,
			"HTTP %d fetching page %d", resp.StatusCode, page)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}

// pageURL builds the listing URL for a page index.
func (f *Fetcher) pageURL(page int) (string, error) {
	u, err := url.Parse(f.listURL)
	if err != nil {
		return "", fmt.Errorf("invalid listing URL %q: %w", f.listURL, err)
	}
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	u.RawQuery = q.Encode()
	return u.String(), nil
}
