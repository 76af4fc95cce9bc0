package songlink

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConnectionPool(t *testing.T) {
	tests := []struct {
		name           string
		proxies        []string
		alwaysUseProxy bool
		wantConns      int
		wantErr        error
	}{
		{
			name:      "direct only",
			wantConns: 1,
		},
		{
			name:      "proxies plus direct",
			proxies:   []string{"http://proxy-a:8080", "http://proxy-b:8080"},
			wantConns: 3,
		},
		{
			name:           "proxies only",
			proxies:        []string{"http://proxy-a:8080"},
			alwaysUseProxy: true,
			wantConns:      1,
		},
		{
			name:           "no proxies and no direct",
			alwaysUseProxy: true,
			wantErr:        ErrNoConnections,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool, err := newConnectionPool(tt.proxies, tt.alwaysUseProxy, time.Second, proxyTransport)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, pool.conns, tt.wantConns)
		})
	}

	t.Run("invalid proxy URL", func(t *testing.T) {
		_, err := newConnectionPool([]string{"not a url"}, false, time.Second, proxyTransport)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid proxy")
	})
}

func TestPoolPick(t *testing.T) {
	now := time.Now()

	t.Run("skips cooling connections", func(t *testing.T) {
		pool, err := newConnectionPool([]string{"http://proxy-a:8080"}, false, time.Second, proxyTransport)
		require.NoError(t, err)
		pool.now = func() time.Time { return now }

		proxied := pool.conns[0]
		pool.markCooldown(proxied, time.Minute)

		// Only the direct connection remains selectable.
		for i := 0; i < 20; i++ {
			conn, err := pool.pick()
			require.NoError(t, err)
			assert.Equal(t, "direct", conn.label())
		}
	})

	t.Run("connection returns after cooldown lapses", func(t *testing.T) {
		pool, err := newConnectionPool(nil, false, time.Second, proxyTransport)
		require.NoError(t, err)
		pool.now = func() time.Time { return now }

		pool.markCooldown(pool.conns[0], time.Minute)
		_, err = pool.pick()
		require.ErrorIs(t, err, ErrTooManyRequests)

		// Advance past the deadline.
		pool.now = func() time.Time { return now.Add(time.Minute) }
		conn, err := pool.pick()
		require.NoError(t, err)
		assert.Equal(t, "direct", conn.label())
	})

	t.Run("all connections cooling", func(t *testing.T) {
		pool, err := newConnectionPool([]string{"http://proxy-a:8080", "http://proxy-b:8080"}, true, time.Second, proxyTransport)
		require.NoError(t, err)
		pool.now = func() time.Time { return now }

		for _, conn := range pool.conns {
			pool.markCooldown(conn, time.Minute)
		}

		_, err = pool.pick()
		assert.ErrorIs(t, err, ErrTooManyRequests)
	})
}

func TestMarkCooldown(t *testing.T) {
	pool, err := newConnectionPool(nil, false, time.Second, proxyTransport)
	require.NoError(t, err)

	conn := pool.conns[0]
	assert.True(t, conn.cooldownUntil.IsZero())

	before := time.Now()
	pool.markCooldown(conn, 30*time.Second)

	assert.WithinDuration(t, before.Add(30*time.Second), conn.cooldownUntil, time.Second)
}

func TestConnectionLabel(t *testing.T) {
	direct := &connection{}
	assert.Equal(t, "direct", direct.label())

	proxied := &connection{proxyURL: "http://proxy-a:8080"}
	assert.Equal(t, "http://proxy-a:8080", proxied.label())
}
