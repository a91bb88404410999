package fetcher_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"nadlan_radar/internal/domain"
	"nadlan_radar/internal/infrastructure/fetcher"
	"nadlan_radar/pkg/errcodes"
)

const page = `<html><head>
<style>body { color: red }</style>
<script>var tracking = "noise";</script>
</head><body>
<nav>תפריט</nav>
<div>דירת 4 חדרים בתל אביב</div>
<div>2,500,000 ₪</div>
<noscript>enable js</noscript>
</body></html>`

func newFetcher(timeout time.Duration) *fetcher.Fetcher {
	return fetcher.New(fetcher.Config{
		Timeout:  timeout,
		CacheTTL: time.Minute,
	})
}

func TestFetchTextReducesToVisibleText(t *testing.T) {
	rq := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rq.NotEmpty(r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(page))
	}))
	defer srv.Close()

	text, err := newFetcher(5 * time.Second).FetchText(context.Background(), srv.URL)
	rq.NoError(err)

	rq.Contains(text, "דירת 4 חדרים בתל אביב")
	rq.Contains(text, "2,500,000 ₪")
	rq.NotContains(text, "tracking")
	rq.NotContains(text, "color: red")
	rq.NotContains(text, "enable js")
}

func TestFetchTextInvalidURL(t *testing.T) {
	rq := require.New(t)

	f := newFetcher(time.Second)

	for _, rawURL := range []string{"", "ftp://example.com", "not a url"} {
		_, err := f.FetchText(context.Background(), rawURL)
		rq.Error(err)

		code, ok := domain.GetCode(err)
		rq.True(ok)
		rq.Equal(errcodes.InvalidSourceURL, code)
	}
}

func TestFetchTextUpstreamError(t *testing.T) {
	rq := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := newFetcher(time.Second).FetchText(context.Background(), srv.URL)
	rq.Error(err)

	code, ok := domain.GetCode(err)
	rq.True(ok)
	rq.Equal(errcodes.FetchFailed, code)
}

func TestFetchTextServesFromCache(t *testing.T) {
	rq := require.New(t)

	var hits int

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits++
		_, _ = w.Write([]byte(page))
	}))

	f := newFetcher(time.Second)
	ctx := context.Background()

	first, err := f.FetchText(ctx, srv.URL)
	rq.NoError(err)

	// The origin going away must not matter for a cached page.
	srv.Close()

	second, err := f.FetchText(ctx, srv.URL)
	rq.NoError(err)

	rq.Equal(first, second)
	rq.Equal(1, hits)
}
