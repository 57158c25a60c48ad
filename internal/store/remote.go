package store

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/net/html/charset"
)

// Transport fetches the content of a remote database locator.
// The returned reader yields UTF-8 bytes; the caller closes it.
type Transport interface {
	Fetch(ctx context.Context, url string) (io.ReadCloser, error)
}

// httpTransport is the default Transport backed by net/http.
type httpTransport struct {
	client *http.Client
}

// NewHTTPTransport returns a Transport with a conservative client timeout.
// The original tool could block indefinitely on a slow server; a bounded
// fetch that expires is treated like any other fetch failure.
func NewHTTPTransport(timeout time.Duration) Transport {
	return &httpTransport{client: &http.Client{Timeout: timeout}}
}

func (t *httpTransport) Fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	// Transcode per the declared charset; UTF-8 when none is declared.
	r, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		resp.Body.Close()
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return &readCloser{Reader: r, Closer: resp.Body}, nil
}

// readCloser pairs a transcoding reader with the underlying body's Close.
type readCloser struct {
	io.Reader
	io.Closer
}
