package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . Fetcher

// Fetcher retrieves the raw catalog document found at some URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// DefaultFetchTimeout is used by NewHTTPFetcher when no timeout is given.
const DefaultFetchTimeout = 30 * time.Second

// maxCatalogSize is the biggest catalog document which will be read. Catalogs
// are lists of names and file ids so anything above it is most likely not
// a catalog at all.
const maxCatalogSize = 32 * 1024 * 1024

// ErrCatalogTooBig is returned when a repository serves a document bigger than
// the maximum accepted catalog size.
var ErrCatalogTooBig = errors.New("catalog document is too big")

// HTTPStatusError is returned by the HTTPFetcher when the repository responds
// with anything other than 2xx.
type HTTPStatusError struct {
	URL        string
	StatusCode int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("%s returned HTTP %d", e.URL, e.StatusCode)
}

// HTTPFetcher is a Fetcher which does plain GET requests. It is safe for
// concurrent use.
type HTTPFetcher struct {
	client    *http.Client
	useragent string
}

// NewHTTPFetcher returns a fetcher which identifies itself with `useragent`
// and gives up on requests which take longer than `timeout`.
func NewHTTPFetcher(useragent string, timeout time.Duration) *HTTPFetcher {
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}

	return &HTTPFetcher{
		client:    &http.Client{Timeout: timeout},
		useragent: useragent,
	}
}

// Fetch implements Fetcher.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if f.useragent != "" {
		req.Header.Set("User-Agent", f.useragent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPStatusError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxCatalogSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading catalog body: %w", err)
	}
	if len(body) > maxCatalogSize {
		return nil, ErrCatalogTooBig
	}

	return body, nil
}
