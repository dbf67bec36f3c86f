package services

import (
	"context"
	"sync"

	"stockswipe/internal/models"
	"stockswipe/internal/provider"
)

// mockMarketData implements provider.MarketData for testing.
type mockMarketData struct {
	quoteFn   func(ticker string) (*provider.Quote, error)
	chartFn   func(ticker string) (*provider.Chart, error)
	profileFn func(ticker string) (*provider.Profile, error)
}

func (m *mockMarketData) Name() string { return "mock" }

func (m *mockMarketData) FetchQuote(_ context.Context, ticker string) (*provider.Quote, error) {
	return m.quoteFn(ticker)
}

func (m *mockMarketData) FetchChart(_ context.Context, ticker string) (*provider.Chart, error) {
	return m.chartFn(ticker)
}

func (m *mockMarketData) FetchProfile(_ context.Context, ticker string) (*provider.Profile, error) {
	return m.profileFn(ticker)
}

// mockCompleter implements llm.Completer for testing.
type mockCompleter struct {
	mu       sync.Mutex
	prompts  []string
	complete func(system, user string) (string, error)
}

func (m *mockCompleter) Complete(_ context.Context, system, user string) (string, error) {
	m.mu.Lock()
	m.prompts = append(m.prompts, user)
	m.mu.Unlock()
	return m.complete(system, user)
}

// mockMarketDataService implements MarketDataServicer for testing.
type mockMarketDataService struct {
	snapshots map[string]models.MarketSnapshot
}

func (m *mockMarketDataService) FetchSnapshot(_ context.Context, ticker string) models.MarketSnapshot {
	if snap, ok := m.snapshots[ticker]; ok {
		return snap
	}
	snap := models.EmptySnapshot()
	snap.Error = NoUpstreamData
	return snap
}
