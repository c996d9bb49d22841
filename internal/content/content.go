// Package content supplies the text lines the off-season rotation scrolls:
// news headlines, weather, quotes, stocks, overhead flights. Every source
// sits behind the same Provider interface and a TTL cache so segment paints
// never wait on the network.
package content

import (
	"context"
	"net/http"
	"sync"
	"time"
)

// Provider produces the lines one rotation segment displays.
type Provider interface {
	Fetch(ctx context.Context) ([]string, error)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(ctx context.Context) ([]string, error)

func (f ProviderFunc) Fetch(ctx context.Context) ([]string, error) { return f(ctx) }

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

const defaultHTTPTimeout = 10 * time.Second

func resolveHTTPClient(client *http.Client) httpDoer {
	if client != nil {
		return client
	}
	return &http.Client{Timeout: defaultHTTPTimeout}
}

// Cached wraps a provider with a TTL. A fetch failure serves the stale
// lines when any exist, so one bad poll never blanks a segment.
type Cached struct {
	inner Provider
	ttl   time.Duration
	now   func() time.Time

	mu        sync.Mutex
	lines     []string
	fetchedAt time.Time
}

// NewCached wraps inner with the given TTL.
func NewCached(inner Provider, ttl time.Duration) *Cached {
	return &Cached{inner: inner, ttl: ttl, now: time.Now}
}

func (c *Cached) Fetch(ctx context.Context) ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if !c.fetchedAt.IsZero() && now.Sub(c.fetchedAt) < c.ttl {
		return c.lines, nil
	}

	lines, err := c.inner.Fetch(ctx)
	if err != nil {
		if len(c.lines) > 0 {
			return c.lines, nil
		}
		return nil, err
	}
	c.lines = lines
	c.fetchedAt = now
	return lines, nil
}
