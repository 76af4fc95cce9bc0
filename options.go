package songlink

import (
	"net/http"
	"time"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	cache     Cache
	cacheSet  bool
	cacheTTL  time.Duration
	userAgent string
	transport transportFunc
}

// WithCache replaces the default in-memory cache backend. Passing nil
// disables response caching entirely.
func WithCache(cache Cache) Option {
	return func(o *clientOptions) {
		o.cache = cache
		o.cacheSet = true
	}
}

// WithCacheTTL sets the time-to-live of the default cache backend. Ignored
// when WithCache supplies a backend of its own.
func WithCacheTTL(ttl time.Duration) Option {
	return func(o *clientOptions) {
		if ttl > 0 {
			o.cacheTTL = ttl
		}
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		o.userAgent = userAgent
	}
}

// WithTransport overrides how per-connection transports are built from a
// proxy URL. The direct connection never goes through this hook.
func WithTransport(fn func(proxyURL string) (http.RoundTripper, error)) Option {
	return func(o *clientOptions) {
		if fn != nil {
			o.transport = fn
		}
	}
}

// QueryOption adjusts the parameters of a single query.
type QueryOption func(*queryOptions)

type queryOptions struct {
	userCountry  string
	songIfSingle bool
}

func newQueryOptions(opts []QueryOption) queryOptions {
	q := queryOptions{userCountry: "US"}
	for _, opt := range opts {
		opt(&q)
	}
	return q
}

// WithUserCountry sets the two-letter country code links are resolved for.
// Defaults to "US".
func WithUserCountry(country string) QueryOption {
	return func(q *queryOptions) {
		if country != "" {
			q.userCountry = country
		}
	}
}

// WithSongIfSingle requests song links instead of album links when the
// entity is a single-track release.
func WithSongIfSingle(songIfSingle bool) QueryOption {
	return func(q *queryOptions) {
		q.songIfSingle = songIfSingle
	}
}
