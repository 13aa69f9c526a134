package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	litcontest "github.com/kytalli/lit-contest"
	lithttp "github.com/kytalli/lit-contest/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_FetchPage(t *testing.T) {
	t.Parallel()

	t.Run("requests the page query parameter", func(t *testing.T) {
		t.Parallel()

		var gotPage string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPage = r.URL.Query().Get("page")
			_, _ = w.Write([]byte("<html><body>page body</body></html>"))
		}))
		defer server.Close()

		fetcher := lithttp.NewFetcher(server.URL + "/grants")
		defer fetcher.Close()

		html, err := fetcher.FetchPage(context.Background(), 3)
		require.NoError(t, err)
		assert.Equal(t, "3", gotPage)
		assert.Equal(t, "<html><body>page body</body></html>", html)
	})

	t.Run("sends the configured user agent", func(t *testing.T) {
		t.Parallel()

		var gotUA string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
			_, _ = w.Write([]byte("ok"))
		}))
		defer server.Close()

		fetcher := lithttp.NewFetcher(server.URL, lithttp.WithUserAgent("litgrants-test/1.0"))
		defer fetcher.Close()

		_, err := fetcher.FetchPage(context.Background(), 0)
		require.NoError(t, err)
		assert.Equal(t, "litgrants-test/1.0", gotUA)
	})

	t.Run("returns EUNAVAILABLE with status and page for non-200", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		fetcher := lithttp.NewFetcher(server.URL)
		defer fetcher.Close()

		_, err := fetcher.FetchPage(context.Background(), 7)
		require.Error(t, err)
		assert.Equal(t, litcontest.EUNAVAILABLE, litcontest.ErrorCode(err))
		assert.Contains(t, litcontest.ErrorMessage(err), "503")
		assert.Contains(t, litcontest.ErrorMessage(err), "page 7")
	})

	t.Run("respects custom timeout option", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		fetcher := lithttp.NewFetcher(server.URL, lithttp.WithTimeout(10*time.Millisecond))
		defer fetcher.Close()

		_, err := fetcher.FetchPage(context.Background(), 0)
		require.Error(t, err)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		fetcher := lithttp.NewFetcher(server.URL)
		defer fetcher.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel() // Cancel immediately

		_, err := fetcher.FetchPage(ctx, 0)
		require.Error(t, err)
	})

	t.Run("rate limit delays consecutive fetches", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("ok"))
		}))
		defer server.Close()

		fetcher := lithttp.NewFetcher(server.URL, lithttp.WithRateLimit(20))
		defer fetcher.Close()

		start := time.Now()
		for page := 0; page < 3; page++ {
			_, err := fetcher.FetchPage(context.Background(), page)
			require.NoError(t, err)
		}
		// 20 rps with burst 1 forces ~50ms between the three requests.
		assert.GreaterOrEqual(t, time.Since(start), 90*time.Millisecond)
	})

	t.Run("returns error for invalid listing URL", func(t *testing.T) {
		t.Parallel()

		fetcher := lithttp.NewFetcher("://not-a-url")
		defer fetcher.Close()

		_, err := fetcher.FetchPage(context.Background(), 0)
		require.Error(t, err)
	})
}
