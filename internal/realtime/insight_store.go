package realtime

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"

	"stockswipe/internal/models"
)

// InsightFetcher requests a rationale for one instrument.
type InsightFetcher interface {
	FetchRationale(ctx context.Context, req models.RationaleRequest) (*models.AIInsight, error)
}

// InsightStore remembers successful insights for the session. Failures are
// not stored, so asking again retries.
type InsightStore struct {
	fetcher InsightFetcher
	group   singleflight.Group

	mu       sync.RWMutex
	insights map[string]*models.AIInsight
}

// NewInsightStore creates an empty store.
func NewInsightStore(fetcher InsightFetcher) *InsightStore {
	return &InsightStore{fetcher: fetcher, insights: make(map[string]*models.AIInsight)}
}

// Get returns the stored insight for ticker.
func (s *InsightStore) Get(ticker string) (*models.AIInsight, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	in, ok := s.insights[normalizeTicker(ticker)]
	return in, ok
}

// Fetch returns the stored insight or requests one.
func (s *InsightStore) Fetch(ctx context.Context, req models.RationaleRequest) (*models.AIInsight, error) {
	key := normalizeTicker(req.Symbol)
	if in, ok := s.Get(key); ok {
		return in, nil
	}

	v, err, _ := s.group.Do(key, func() (any, error) {
		req.Symbol = key
		in, err := s.fetcher.FetchRationale(ctx, req)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.insights[key] = in
		s.mu.Unlock()
		return in, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*models.AIInsight), nil
}
