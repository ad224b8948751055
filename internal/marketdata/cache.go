package marketdata

import (
	"context"
	"sync"
	"time"

	"github.com/quantive/gauge/internal/core"
)

// cacheEntry holds one cached fetch result.
type cacheEntry struct {
	value    any
	storedAt time.Time
}

// CachedProvider wraps a Provider with an in-memory TTL cache keyed by
// (symbol, data kind). Entities stay request-shaped: only successful
// fetches are cached, errors always pass through.
type CachedProvider struct {
	inner Provider
	ttl   time.Duration

	mu      sync.RWMutex
	entries map[string]cacheEntry

	onHit  func(kind string)
	onMiss func(kind string)
}

// NewCachedProvider wraps inner with a TTL cache. A non-positive TTL
// defaults to one minute.
func NewCachedProvider(inner Provider, ttl time.Duration) *CachedProvider {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &CachedProvider{
		inner:   inner,
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
	}
}

// OnHit and OnMiss install optional observation hooks, used to feed the
// metrics registry.
func (c *CachedProvider) OnHit(fn func(kind string))  { c.onHit = fn }
func (c *CachedProvider) OnMiss(fn func(kind string)) { c.onMiss = fn }

func (c *CachedProvider) Name() string { return c.inner.Name() }

func (c *CachedProvider) PriceHistory(ctx context.Context, symbol string, lookbackDays int) (core.PriceSeries, error) {
	if v, ok := c.get(symbol, KindPrices); ok {
		return v.(core.PriceSeries), nil
	}
	prices, err := c.inner.PriceHistory(ctx, symbol, lookbackDays)
	if err != nil {
		return nil, err
	}
	c.put(symbol, KindPrices, prices)
	return prices, nil
}

func (c *CachedProvider) Statements(ctx context.Context, symbol string) (*core.Statements, error) {
	if v, ok := c.get(symbol, KindStatements); ok {
		return v.(*core.Statements), nil
	}
	stmts, err := c.inner.Statements(ctx, symbol)
	if err != nil {
		return nil, err
	}
	c.put(symbol, KindStatements, stmts)
	return stmts, nil
}

func (c *CachedProvider) Snapshot(ctx context.Context, symbol string) (*core.Snapshot, error) {
	if v, ok := c.get(symbol, KindSnapshot); ok {
		return v.(*core.Snapshot), nil
	}
	snap, err := c.inner.Snapshot(ctx, symbol)
	if err != nil {
		return nil, err
	}
	c.put(symbol, KindSnapshot, snap)
	return snap, nil
}

func (c *CachedProvider) get(symbol, kind string) (any, bool) {
	key := symbol + "|" + kind
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if ok && time.Since(entry.storedAt) <= c.ttl {
		if c.onHit != nil {
			c.onHit(kind)
		}
		return entry.value, true
	}
	if ok {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
	}
	if c.onMiss != nil {
		c.onMiss(kind)
	}
	return nil, false
}

func (c *CachedProvider) put(symbol, kind string, value any) {
	c.mu.Lock()
	c.entries[symbol+"|"+kind] = cacheEntry{value: value, storedAt: time.Now()}
	c.mu.Unlock()
}
