package songlink

import (
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"sync"
	"time"
)

// connection is one egress path: the direct route or a single proxy. Each
// connection owns the HTTP client that routes through it.
type connection struct {
	proxyURL string // empty for the direct route
	client   *http.Client

	// cooldownUntil is zero until the connection gets rate limited.
	// Guarded by the pool mutex.
	cooldownUntil time.Time
}

// label returns the connection identifier used in logs
func (c *connection) label() string {
	if c.proxyURL == "" {
		return "direct"
	}
	return c.proxyURL
}

// connectionPool tracks the egress rotation and per-connection cooldowns
type connectionPool struct {
	mu    sync.Mutex
	conns []*connection
	now   func() time.Time
}

// newConnectionPool builds one connection per proxy plus, unless
// alwaysUseProxy is set, the direct route. An empty rotation is a
// configuration error.
func newConnectionPool(proxies []string, alwaysUseProxy bool, timeout time.Duration, transport transportFunc) (*connectionPool, error) {
	pool := &connectionPool{now: time.Now}

	for _, proxy := range proxies {
		rt, err := transport(proxy)
		if err != nil {
			return nil, fmt.Errorf("invalid proxy %q: %w", proxy, err)
		}
		pool.conns = append(pool.conns, &connection{
			proxyURL: proxy,
			client:   &http.Client{Timeout: timeout, Transport: rt},
		})
	}

	if !alwaysUseProxy {
		pool.conns = append(pool.conns, &connection{
			client: &http.Client{Timeout: timeout},
		})
	}

	if len(pool.conns) == 0 {
		return nil, ErrNoConnections
	}

	return pool, nil
}

// pick returns a uniformly random connection whose cooldown has lapsed or
// was never set. It never blocks waiting for a cooldown to expire.
func (p *connectionPool) pick() (*connection, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.now()
	available := make([]*connection, 0, len(p.conns))
	for _, conn := range p.conns {
		if conn.cooldownUntil.IsZero() || !now.Before(conn.cooldownUntil) {
			available = append(available, conn)
		}
	}

	if len(available) == 0 {
		return nil, ErrTooManyRequests
	}

	return available[rand.Intn(len(available))], nil
}

// markCooldown pulls the connection out of rotation until now + d. The
// connection re-enters rotation on its own once the deadline passes.
func (p *connectionPool) markCooldown(conn *connection, d time.Duration) {
	p.mu.Lock()
	conn.cooldownUntil = p.now().Add(d)
	p.mu.Unlock()
}

// transportFunc builds the transport that routes requests through a proxy
type transportFunc func(proxyURL string) (http.RoundTripper, error)

// proxyTransport is the default transportFunc
func proxyTransport(proxyURL string) (http.RoundTripper, error) {
	u, err := url.Parse(proxyURL)
	if err != nil {
		return nil, err
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("proxy URL must include scheme and host")
	}
	return &http.Transport{Proxy: http.ProxyURL(u)}, nil
}
