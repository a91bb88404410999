package fetcher

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/patrickmn/go-cache"

	"nadlan_radar/internal/domain"
	"nadlan_radar/pkg/errcodes"
	"nadlan_radar/pkg/httpx"
	"nadlan_radar/pkg/logx"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Fetcher pulls a page and reduces it to visible text. Listing sites block
// cloud traffic at will, so a single synchronous GET with a fixed timeout and
// no retry is all this does. An optional scraping-proxy prefix is supported.
type Fetcher struct {
	client      *http.Client
	proxyPrefix string
	pages       *cache.Cache
}

type Config struct {
	ProxyPrefix    string
	Timeout        time.Duration
	CacheTTL       time.Duration
	LogFieldMaxLen int
}

func New(cfg Config) *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: cfg.Timeout,
			Transport: httpx.NewLoggingRoundTripper(
				http.DefaultTransport,
				httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
				httpx.WithLogFieldMaxLen(cfg.LogFieldMaxLen),
			),
		},
		proxyPrefix: cfg.ProxyPrefix,
		pages:       cache.New(cfg.CacheTTL, cfg.CacheTTL),
	}
}

// FetchText GETs the page and returns its visible text. Recently fetched
// pages are served from a short-lived cache.
func (f *Fetcher) FetchText(ctx context.Context, rawURL string) (string, error) {
	if cached, found := f.pages.Get(rawURL); found {
		return cached.(string), nil
	}

	parsed, err := url.Parse(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return "", domain.NewError(errcodes.InvalidSourceURL, "source url must be http(s)")
	}

	target := rawURL
	if f.proxyPrefix != "" {
		target = f.proxyPrefix + url.QueryEscape(rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if err != nil {
		return "", domain.WrapError(err, errcodes.FetchFailed, "failed to build request")
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", domain.WrapError(err, errcodes.FetchFailed, "page fetch failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", domain.NewError(errcodes.FetchFailed,
			fmt.Sprintf("page fetch returned status %d", resp.StatusCode))
	}

	text, err := reduceToText(resp)
	if err != nil {
		return "", domain.WrapError(err, errcodes.FetchFailed, "failed to parse page")
	}

	f.pages.Set(rawURL, text, cache.DefaultExpiration)

	return text, nil
}

// reduceToText strips non-content elements and collapses the remaining
// visible text into newline-separated lines.
func reduceToText(resp *http.Response) (string, error) {
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("goquery.NewDocumentFromReader: %w", err)
	}

	doc.Find("script, style, noscript, svg, iframe").Remove()

	var b strings.Builder

	for _, line := range strings.Split(doc.Find("body").Text(), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		b.WriteString(line)
		b.WriteByte('\n')
	}

	return b.String(), nil
}
