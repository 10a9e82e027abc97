package registry

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Fetcher retrieves the raw registry document.
type Fetcher interface {
	Fetch(ctx context.Context) ([]byte, error)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context) ([]byte, error)

// Fetch implements Fetcher.
func (f FetcherFunc) Fetch(ctx context.Context) ([]byte, error) {
	return f(ctx)
}

// FileFetcher reads the registry document from a local file.
type FileFetcher struct {
	Path string
}

// Fetch implements Fetcher.
func (f FileFetcher) Fetch(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry file %s: %w", f.Path, err)
	}

	return data, nil
}

// StatusError is returned for non-2xx HTTP responses.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetching %s: unexpected status %d", e.URL, e.StatusCode)
}

// Temporary reports whether a retry may succeed.
func (e *StatusError) Temporary() bool {
	return e.StatusCode >= http.StatusInternalServerError || e.StatusCode == http.StatusTooManyRequests
}

// HTTPFetcher downloads the registry document with a single GET.
type HTTPFetcher struct {
	client *resty.Client
	url    string
}

// HTTPOption configures an HTTPFetcher.
type HTTPOption func(*HTTPFetcher)

// WithRestyClient replaces the underlying client.
func WithRestyClient(c *resty.Client) HTTPOption {
	return func(f *HTTPFetcher) {
		f.client = c
	}
}

// WithTimeout sets the request timeout.
func WithTimeout(d time.Duration) HTTPOption {
	return func(f *HTTPFetcher) {
		f.client.SetTimeout(d)
	}
}

// NewHTTPFetcher creates a fetcher for url.
func NewHTTPFetcher(url string, opts ...HTTPOption) *HTTPFetcher {
	f := &HTTPFetcher{
		client: resty.New(),
		url:    url,
	}

	for _, o := range opts {
		o(f)
	}

	f.client.SetHeader("User-Agent", "schema-typegen")

	return f
}

// Fetch implements Fetcher.
func (f *HTTPFetcher) Fetch(ctx context.Context) ([]byte, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		Get(f.url)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", f.url, err)
	}

	if resp.IsError() {
		return nil, &StatusError{URL: f.url, StatusCode: resp.StatusCode()}
	}

	return resp.Body(), nil
}

// RetryFetcher retries a Fetcher with exponential backoff.
// Non-temporary HTTP statuses are not retried.
type RetryFetcher struct {
	next       Fetcher
	retries    uint64
	newBackOff func() backoff.BackOff
	log        *zap.Logger
}

// RetryOption configures a RetryFetcher.
type RetryOption func(*RetryFetcher)

// WithBackOff sets the backoff policy factory.
func WithBackOff(fn func() backoff.BackOff) RetryOption {
	return func(f *RetryFetcher) {
		f.newBackOff = fn
	}
}

// WithRetryLogger sets the logger used to report failed attempts.
func WithRetryLogger(l *zap.Logger) RetryOption {
	return func(f *RetryFetcher) {
		f.log = l
	}
}

// NewRetryFetcher wraps next with up to retries additional attempts.
func NewRetryFetcher(next Fetcher, retries uint64, opts ...RetryOption) *RetryFetcher {
	f := &RetryFetcher{
		next:    next,
		retries: retries,
		newBackOff: func() backoff.BackOff {
			return backoff.NewExponentialBackOff()
		},
		log: zap.NewNop(),
	}

	for _, o := range opts {
		o(f)
	}

	return f
}

// Fetch implements Fetcher.
func (f *RetryFetcher) Fetch(ctx context.Context) ([]byte, error) {
	var data []byte

	op := func() error {
		var err error

		data, err = f.next.Fetch(ctx)

		var statusErr *StatusError
		if errors.As(err, &statusErr) && !statusErr.Temporary() {
			return backoff.Permanent(err)
		}

		return err
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(f.newBackOff(), f.retries), ctx)

	notify := func(err error, wait time.Duration) {
		f.log.Warn("registry fetch failed, retrying", zap.Error(err), zap.Duration("wait", wait))
	}

	if err := backoff.RetryNotify(op, policy, notify); err != nil {
		return nil, err
	}

	return data, nil
}
