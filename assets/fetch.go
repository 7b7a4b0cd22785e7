// Package assets downloads generated images from the references a provider returns.
package assets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/petal-labs/easel/internal/log"
)

// ErrTooLarge is returned when a body exceeds HTTPFetcher.MaxBytes.
var ErrTooLarge = errors.New("image body exceeds size limit")

// FetchError describes a failed download.
type FetchError struct {
	URL    string
	Status int // Zero when no response was received
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s: status %d %s", e.URL, e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// HTTPFetcher retrieves image bytes with a plain GET.
// The zero value uses http.DefaultClient and no size limit.
type HTTPFetcher struct {
	Client   *http.Client
	MaxBytes int64 // Zero means unlimited
}

// NewHTTPFetcher returns a fetcher using http.DefaultClient.
func NewHTTPFetcher() *HTTPFetcher {
	return &HTTPFetcher{Client: http.DefaultClient}
}

// Fetch downloads uri. Only http and https references are accepted.
func (f *HTTPFetcher) Fetch(ctx context.Context, uri string) ([]byte, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return nil, &FetchError{URL: uri, Err: err}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, &FetchError{URL: uri, Err: fmt.Errorf("unsupported scheme %q", u.Scheme)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, &FetchError{URL: uri, Err: err}
	}

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}

	// Signed CDN links carry credentials in the query, so only host and path are logged.
	logger := log.FromContextOrDiscard(ctx).With(slog.String("host", u.Host), slog.String("path", u.Path))
	logger.Debug("fetching image")

	resp, err := client.Do(req)
	if err != nil {
		logger.Debug("image fetch failed", slog.Any("err", err))
		return nil, &FetchError{URL: uri, Err: err}
	}
	defer resp.Body.Close()
	logger.Debug("image response", slog.Int("status", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		return nil, &FetchError{URL: uri, Status: resp.StatusCode}
	}

	var body io.Reader = resp.Body
	if f.MaxBytes > 0 {
		body = io.LimitReader(resp.Body, f.MaxBytes+1)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, &FetchError{URL: uri, Err: err}
	}
	if f.MaxBytes > 0 && int64(len(data)) > f.MaxBytes {
		return nil, &FetchError{URL: uri, Err: ErrTooLarge}
	}
	return data, nil
}
