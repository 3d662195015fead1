package catalog

import "time"

const (
	DefaultBaseURL        = "https://api.igdb.com/v4"
	DefaultAuthURL        = "https://id.twitch.tv/oauth2/token"
	DefaultRateLimit      = 10
	DefaultBurst          = 10
	DefaultCacheTTL       = 24 * time.Hour
	DefaultCacheLimit     = 10000
	DefaultRequestTimeout = 10 * time.Second
)

// Config holds the remote catalog endpoints, client credentials and local limits.
type Config struct {
	BaseURL      string `json:",optional"`
	AuthURL      string `json:",optional"`
	ClientID     string `json:",optional"`
	ClientSecret string `json:",optional"`
	// RateLimit is the refill rate in requests per second, Burst the bucket capacity.
	RateLimit      float64       `json:",optional"`
	Burst          int           `json:",optional"`
	CacheTTL       time.Duration `json:",optional"`
	CacheLimit     int           `json:",optional"`
	RequestTimeout time.Duration `json:",optional"`
}

func (c Config) withDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.AuthURL == "" {
		c.AuthURL = DefaultAuthURL
	}
	if c.RateLimit <= 0 {
		c.RateLimit = DefaultRateLimit
	}
	if c.Burst <= 0 {
		c.Burst = DefaultBurst
	}
	if c.CacheTTL <= 0 {
		c.CacheTTL = DefaultCacheTTL
	}
	if c.CacheLimit <= 0 {
		c.CacheLimit = DefaultCacheLimit
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = DefaultRequestTimeout
	}
	return c
}
