package realtime

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"stockswipe/internal/logger"
	"stockswipe/internal/models"
)

const (
	// HighPriorityWindow is the current card plus the next two.
	HighPriorityWindow = 3
	// LowPriorityWindow is the two cards after the high tier.
	LowPriorityWindow = 2
	// LowPriorityDelay defers low tier fetches behind the high tier.
	LowPriorityDelay = 300 * time.Millisecond
)

// Scheduler decides which deck tickers to refresh as the position moves.
type Scheduler struct {
	cache *Cache
	delay time.Duration
	after func(time.Duration) <-chan time.Time
	wg    sync.WaitGroup
	log   *zap.SugaredLogger
}

// SchedulerOption configures a Scheduler.
type SchedulerOption func(*Scheduler)

// WithLowPriorityDelay overrides LowPriorityDelay.
func WithLowPriorityDelay(d time.Duration) SchedulerOption {
	return func(s *Scheduler) { s.delay = d }
}

// WithAfter replaces time.After, letting tests release the low tier on demand.
func WithAfter(after func(time.Duration) <-chan time.Time) SchedulerOption {
	return func(s *Scheduler) { s.after = after }
}

// NewScheduler creates a scheduler that refreshes through cache.
func NewScheduler(cache *Cache, opts ...SchedulerOption) *Scheduler {
	s := &Scheduler{
		cache: cache,
		delay: LowPriorityDelay,
		after: time.After,
		log:   logger.Named("prefetch"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Plan returns the stale tickers to fetch for the card at position. A ticker
// appearing in both windows belongs to the high tier only, and fresh
// tickers are left out.
func (s *Scheduler) Plan(cards []models.StockCard, position int) (high, low []string) {
	if position < 0 {
		position = 0
	}
	seen := make(map[string]bool)
	collect := func(from, to int) []string {
		var out []string
		for i := from; i < to && i < len(cards); i++ {
			t := normalizeTicker(cards[i].Ticker)
			if t == "" || seen[t] {
				continue
			}
			seen[t] = true
			if s.cache.IsStale(t) {
				out = append(out, t)
			}
		}
		return out
	}

	high = collect(position, position+HighPriorityWindow)
	low = collect(position+HighPriorityWindow, position+HighPriorityWindow+LowPriorityWindow)
	return high, low
}

// Schedule starts the fetches planned for position and returns immediately.
// High tier fetches start now; the low tier waits for the delay and is
// dropped if ctx ends first. Started fetches are never cancelled.
func (s *Scheduler) Schedule(ctx context.Context, cards []models.StockCard, position int) {
	high, low := s.Plan(cards, position)
	if len(high)+len(low) > 0 {
		s.log.Debugw("prefetch planned", "position", position, "high", high, "low", low)
	}

	for _, t := range high {
		s.fetch(ctx, t)
	}
	if len(low) == 0 {
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		select {
		case <-s.after(s.delay):
		case <-ctx.Done():
			return
		}
		for _, t := range low {
			s.fetch(ctx, t)
		}
	}()
}

func (s *Scheduler) fetch(ctx context.Context, ticker string) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.cache.GetOrRefresh(ctx, ticker)
	}()
}

// Wait blocks until every scheduled fetch has finished.
func (s *Scheduler) Wait() {
	s.wg.Wait()
}
