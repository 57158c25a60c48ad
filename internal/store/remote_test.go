package store_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mariotti/bookmark/internal/store"
)

func fetch(t *testing.T, url string) (string, error) {
	t.Helper()
	transport := store.NewHTTPTransport(5 * time.Second)
	body, err := transport.Fetch(context.Background(), url)
	if err != nil {
		return "", err
	}
	defer body.Close()
	data, err := io.ReadAll(body)
	require.NoError(t, err)
	return string(data), nil
}

func TestHTTPTransport_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("http://x:\n  - a\n"))
	}))
	defer srv.Close()

	got, err := fetch(t, srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "http://x:\n  - a\n", got)
}

func TestHTTPTransport_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := fetch(t, srv.URL)
	assert.ErrorContains(t, err, "unexpected status")
}

func TestHTTPTransport_DeclaredCharsetIsTranscoded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=iso-8859-1")
		// "café" in Latin-1: the é is the single byte 0xE9.
		w.Write([]byte("http://x:\n  - caf\xe9\n"))
	}))
	defer srv.Close()

	got, err := fetch(t, srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "http://x:\n  - café\n", got)
}
