package config

import "time"

type Fetcher struct {
	// ProxyPrefix is an optional scraping-proxy URL prefix the target URL is
	// appended to (query-escaped). Empty means direct fetch.
	ProxyPrefix    string        `env:"FETCHER_PROXY_PREFIX"`
	Timeout        time.Duration `env:"FETCHER_TIMEOUT" envDefault:"20s"`
	CacheTTL       time.Duration `env:"FETCHER_CACHE_TTL" envDefault:"5m"`
	LogFieldMaxLen int           `env:"FETCHER_LOG_FIELD_MAX_LEN" envDefault:"2048"`
}
