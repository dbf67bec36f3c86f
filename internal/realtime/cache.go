// Package realtime keeps the client's view of market data fresh: a bounded,
// staleness-aware snapshot cache, the prefetch scheduler that feeds it, and
// a per-session insight store.
package realtime

import (
	"context"
	"strings"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"stockswipe/internal/logger"
	"stockswipe/internal/models"
)

const (
	// StalenessThreshold is how long a snapshot is served without refetching.
	StalenessThreshold = 30 * time.Second
	// DefaultCapacity holds several deck windows worth of tickers.
	DefaultCapacity = 32
)

// SnapshotFetcher retrieves a merged snapshot for one ticker.
type SnapshotFetcher interface {
	GetSnapshot(ctx context.Context, ticker string) (models.MarketSnapshot, error)
}

// Cache maps tickers to their latest snapshot. Concurrent refreshes of the
// same ticker share one upstream call.
type Cache struct {
	fetcher   SnapshotFetcher
	entries   *lru.Cache[string, models.MarketSnapshot]
	group     singleflight.Group
	mu        sync.Mutex // serializes compare-and-write on entries
	now       func() time.Time
	threshold time.Duration
	log       *zap.SugaredLogger
}

// CacheOption configures a Cache.
type CacheOption func(*cacheOptions)

type cacheOptions struct {
	capacity  int
	now       func() time.Time
	threshold time.Duration
}

// WithCapacity bounds the number of cached tickers.
func WithCapacity(n int) CacheOption {
	return func(o *cacheOptions) { o.capacity = n }
}

// WithNow sets the clock used for fetch timestamps and staleness checks.
func WithNow(now func() time.Time) CacheOption {
	return func(o *cacheOptions) { o.now = now }
}

// WithThreshold overrides StalenessThreshold.
func WithThreshold(d time.Duration) CacheOption {
	return func(o *cacheOptions) { o.threshold = d }
}

// NewCache creates a cache in front of fetcher.
func NewCache(fetcher SnapshotFetcher, opts ...CacheOption) *Cache {
	o := cacheOptions{capacity: DefaultCapacity, now: time.Now, threshold: StalenessThreshold}
	for _, opt := range opts {
		opt(&o)
	}
	if o.capacity <= 0 {
		o.capacity = DefaultCapacity
	}

	entries, err := lru.New[string, models.MarketSnapshot](o.capacity)
	if err != nil {
		// lru.New only fails for a non-positive size.
		panic(err)
	}
	return &Cache{
		fetcher:   fetcher,
		entries:   entries,
		now:       o.now,
		threshold: o.threshold,
		log:       logger.Named("realtime"),
	}
}

// Get returns the cached snapshot, fresh or not.
func (c *Cache) Get(ticker string) (models.MarketSnapshot, bool) {
	return c.entries.Get(normalizeTicker(ticker))
}

// Len returns the number of cached tickers.
func (c *Cache) Len() int { return c.entries.Len() }

// IsStale reports whether ticker is absent or older than the threshold.
func (c *Cache) IsStale(ticker string) bool {
	snap, ok := c.entries.Peek(normalizeTicker(ticker))
	return !ok || c.stale(snap)
}

func (c *Cache) stale(snap models.MarketSnapshot) bool {
	return c.now().Sub(snap.FetchedAt) > c.threshold
}

// GetOrRefresh returns the cached snapshot when fresh and otherwise fetches
// a new one. It never fails: fetch errors surface in the snapshot's Error.
func (c *Cache) GetOrRefresh(ctx context.Context, ticker string) models.MarketSnapshot {
	key := normalizeTicker(ticker)
	if snap, ok := c.entries.Get(key); ok && !c.stale(snap) {
		return snap
	}
	return c.refresh(ctx, key, false)
}

// Refresh fetches ticker regardless of freshness. The fetch outlives ctx's
// cancellation so callers that move on still populate the cache.
func (c *Cache) Refresh(ctx context.Context, ticker string) models.MarketSnapshot {
	return c.refresh(ctx, normalizeTicker(ticker), true)
}

func (c *Cache) refresh(ctx context.Context, key string, force bool) models.MarketSnapshot {
	v, _, _ := c.group.Do(key, func() (any, error) {
		// A flight that finished between the caller's lookup and Do already
		// stored a fresh entry.
		if !force {
			if snap, ok := c.entries.Peek(key); ok && !c.stale(snap) {
				return snap, nil
			}
		}

		snap, err := c.fetcher.GetSnapshot(context.WithoutCancel(ctx), key)
		if err != nil {
			c.log.Warnw("snapshot refresh failed", "ticker", key, "error", err)
			return c.storeFailure(key, err), nil
		}
		snap.FetchedAt = c.now()
		if snap.Spark == nil {
			snap.Spark = []float64{}
		}
		return c.Put(key, snap), nil
	})
	return v.(models.MarketSnapshot)
}

// Put writes snap unless the cache already holds a newer one for ticker, and
// returns whichever snapshot is now current.
func (c *Cache) Put(ticker string, snap models.MarketSnapshot) models.MarketSnapshot {
	key := normalizeTicker(ticker)
	c.mu.Lock()
	defer c.mu.Unlock()

	if prev, ok := c.entries.Peek(key); ok && snap.FetchedAt.Before(prev.FetchedAt) {
		return prev
	}
	c.entries.Add(key, snap)
	return snap
}

// storeFailure keeps a previous entry untouched and reports it with the
// error attached. Without one it stores an empty snapshot stamped now, so the
// ticker is not retried before the threshold elapses.
func (c *Cache) storeFailure(key string, err error) models.MarketSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	if prev, ok := c.entries.Peek(key); ok {
		prev.Error = err.Error()
		return prev
	}
	failed := models.EmptySnapshot()
	failed.Error = err.Error()
	failed.FetchedAt = c.now()
	c.entries.Add(key, failed)
	return failed
}

func normalizeTicker(t string) string {
	return strings.ToUpper(strings.TrimSpace(t))
}
