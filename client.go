package songlink

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	gojson "github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

const (
	// Version is the library version reported in the User-Agent header.
	Version = "0.4.1"

	// DefaultAPIURL is the public song.link API endpoint.
	DefaultAPIURL = "https://api.song.link"

	// DefaultAPIVersion is the API version segment of request URLs.
	DefaultAPIVersion = "v1-alpha.1"

	// DefaultAPITimeout bounds a single request and doubles as the cooldown
	// duration after a rate-limit response.
	DefaultAPITimeout = 60 * time.Second
)

// Upstream error codes recognized by the dispatcher. Anything else falls
// through to APIError.
const (
	codeTooManyRequests = "too_many_requests"
	codeEntityNotFound  = "could_not_fetch_entity_data"
)

// Config holds the client configuration
type Config struct {
	// APIKey is appended to every request as the key query parameter when
	// set. It never becomes part of cache keys.
	APIKey string
	// APIURL is the base API URL. Defaults to DefaultAPIURL.
	APIURL string
	// APIVersion is the API version segment. Defaults to DefaultAPIVersion.
	APIVersion string
	// APITimeout bounds each request and sets the cooldown duration after a
	// rate-limit response. Defaults to DefaultAPITimeout.
	APITimeout time.Duration
	// Proxies lists proxy URLs used as additional egress paths.
	Proxies []string
	// AlwaysUseProxy drops the direct connection from the rotation.
	AlwaysUseProxy bool
	// FastJSON decodes response bodies with goccy/go-json instead of
	// encoding/json.
	FastJSON bool
}

// Client queries the song.link API
type Client struct {
	cfg       Config
	pool      *connectionPool
	cache     Cache
	userAgent string
	unmarshal func([]byte, any) error
	logger    zerolog.Logger
}

// NewClient creates a new song.link client
func NewClient(cfg Config, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	cfg.APIURL = strings.TrimRight(cfg.APIURL, "/")
	if cfg.APIVersion == "" {
		cfg.APIVersion = DefaultAPIVersion
	}
	if cfg.APITimeout <= 0 {
		cfg.APITimeout = DefaultAPITimeout
	}

	options := clientOptions{
		cacheTTL:  DefaultCacheTTL,
		userAgent: "songlink-go/" + Version,
		transport: proxyTransport,
	}
	for _, opt := range opts {
		opt(&options)
	}

	pool, err := newConnectionPool(cfg.Proxies, cfg.AlwaysUseProxy, cfg.APITimeout, options.transport)
	if err != nil {
		return nil, err
	}

	cache := options.cache
	if !options.cacheSet {
		cache = newMemoryCache(defaultCacheSize, options.cacheTTL)
	}

	unmarshal := json.Unmarshal
	if cfg.FastJSON {
		unmarshal = gojson.Unmarshal
	}

	return &Client{
		cfg:       cfg,
		pool:      pool,
		cache:     cache,
		userAgent: options.userAgent,
		unmarshal: unmarshal,
		logger:    logger,
	}, nil
}

// LinksByURL resolves cross-platform links for the song or album behind
// the given streaming URL.
func (c *Client) LinksByURL(ctx context.Context, pageURL string, opts ...QueryOption) (*Response, error) {
	q := newQueryOptions(opts)

	params := url.Values{
		"url":          {pageURL},
		"userCountry":  {strings.ToUpper(q.userCountry)},
		"songIfSingle": {strconv.FormatBool(q.songIfSingle)},
	}

	return c.request(ctx, "links", params)
}

// LinksByID resolves cross-platform links for a platform-native entity ID.
func (c *Client) LinksByID(ctx context.Context, id string, platform PlatformName, entityType EntityType, opts ...QueryOption) (*Response, error) {
	q := newQueryOptions(opts)

	params := url.Values{
		"id":           {id},
		"platform":     {string(platform)},
		"type":         {string(entityType)},
		"userCountry":  {strings.ToUpper(q.userCountry)},
		"songIfSingle": {strconv.FormatBool(q.songIfSingle)},
	}

	return c.request(ctx, "links", params)
}

// request performs exactly one API call: pick a connection, consult the
// cache, issue the GET, and translate failures into typed errors.
func (c *Client) request(ctx context.Context, method string, params url.Values) (*Response, error) {
	conn, err := c.pool.pick()
	if err != nil {
		return nil, err
	}

	// The API key stays out of the cache key so entries are shared across
	// callers differing only by key.
	cacheKey := method + "?" + params.Encode()

	if c.cache != nil {
		if cached, ok := c.cache.Get(cacheKey); ok {
			var envelope apiEnvelope
			if err := c.unmarshal(cached, &envelope); err == nil && !envelope.empty() {
				c.logger.Trace().Str("method", method).Msg("Cache hit")
				return newResponse(&envelope, params.Get("userCountry")), nil
			}
		}
	}

	query := url.Values{}
	for key, values := range params {
		for _, value := range values {
			query.Add(key, value)
		}
	}
	if c.cfg.APIKey != "" {
		query.Set("key", c.cfg.APIKey)
	}

	requestURL := fmt.Sprintf("%s/%s/%s?%s", c.cfg.APIURL, c.cfg.APIVersion, method, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	c.logger.Debug().
		Str("method", method).
		Str("connection", conn.label()).
		Msg("Making song.link API request")

	resp, err := conn.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var envelope apiEnvelope
	if err := c.unmarshal(body, &envelope); err != nil {
		// A malformed body is treated as empty and classified below.
		envelope = apiEnvelope{}
	}

	if resp.StatusCode != http.StatusOK || envelope.empty() {
		switch envelope.Code {
		case codeTooManyRequests:
			c.pool.markCooldown(conn, c.cfg.APITimeout)
			c.logger.Warn().
				Str("connection", conn.label()).
				Dur("cooldown", c.cfg.APITimeout).
				Msg("Rate limited, cooling down connection")
			return nil, ErrTooManyRequests
		case codeEntityNotFound:
			return nil, ErrEntityNotFound
		default:
			return nil, &APIError{StatusCode: resp.StatusCode, Code: envelope.Code}
		}
	}

	if c.cache != nil {
		c.cache.Set(cacheKey, body)
	}

	return newResponse(&envelope, params.Get("userCountry")), nil
}
