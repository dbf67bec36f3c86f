package services

import (
	"context"
	"errors"
	"math"
	"testing"

	"stockswipe/internal/provider"
	"stockswipe/internal/testutil"
)

var errUpstream = errors.New("upstream down")

func TestFetchSnapshot(t *testing.T) {
	t.Run("quote_preferred", func(t *testing.T) {
		svc := NewMarketDataService(&mockMarketData{
			quoteFn: func(string) (*provider.Quote, error) {
				return &provider.Quote{Price: testutil.Float(151), ChangePct: testutil.Float(1.2)}, nil
			},
			chartFn: func(string) (*provider.Chart, error) {
				return &provider.Chart{Price: testutil.Float(150), PreviousClose: testutil.Float(145), Closes: []float64{149, 150}}, nil
			},
			profileFn: func(string) (*provider.Profile, error) {
				return &provider.Profile{Summary: "Designs phones."}, nil
			},
		})

		snap := svc.FetchSnapshot(context.Background(), "aapl")
		if snap.Price == nil || *snap.Price != 151 {
			t.Errorf("expected quote price 151, got %v", snap.Price)
		}
		if snap.ChangePct == nil || *snap.ChangePct != 1.2 {
			t.Errorf("expected quote change 1.2, got %v", snap.ChangePct)
		}
		if len(snap.Spark) != 2 {
			t.Errorf("expected chart series, got %v", snap.Spark)
		}
		if snap.YahooDesc != "Designs phones." {
			t.Errorf("unexpected description %q", snap.YahooDesc)
		}
		if snap.Error != "" {
			t.Errorf("expected no error, got %q", snap.Error)
		}
	})

	t.Run("quote_fails_chart_fallback", func(t *testing.T) {
		svc := NewMarketDataService(&mockMarketData{
			quoteFn: func(string) (*provider.Quote, error) { return nil, errUpstream },
			chartFn: func(string) (*provider.Chart, error) {
				return &provider.Chart{Price: testutil.Float(150), PreviousClose: testutil.Float(145), Closes: []float64{146, 148, 150}}, nil
			},
			profileFn: func(string) (*provider.Profile, error) { return &provider.Profile{}, nil },
		})

		snap := svc.FetchSnapshot(context.Background(), "AAPL")
		if snap.Price == nil || *snap.Price != 150 {
			t.Fatalf("expected chart price 150, got %v", snap.Price)
		}
		if snap.ChangePct == nil || math.Abs(*snap.ChangePct-3.448275862) > 1e-6 {
			t.Errorf("expected derived change ~3.448, got %v", snap.ChangePct)
		}
		if snap.YahooDesc != "" {
			t.Errorf("expected no description, got %q", snap.YahooDesc)
		}
	})

	t.Run("all_sources_fail", func(t *testing.T) {
		fail := &mockMarketData{
			quoteFn:   func(string) (*provider.Quote, error) { return nil, errUpstream },
			chartFn:   func(string) (*provider.Chart, error) { return nil, errUpstream },
			profileFn: func(string) (*provider.Profile, error) { return nil, errUpstream },
		}
		snap := NewMarketDataService(fail).FetchSnapshot(context.Background(), "ZZZZ")
		if snap.Price != nil || snap.ChangePct != nil {
			t.Errorf("expected null numbers, got %v / %v", snap.Price, snap.ChangePct)
		}
		if snap.Spark == nil || len(snap.Spark) != 0 {
			t.Errorf("expected empty non-nil spark, got %v", snap.Spark)
		}
		if snap.Error != NoUpstreamData {
			t.Errorf("expected diagnostic %q, got %q", NoUpstreamData, snap.Error)
		}
	})

	t.Run("uppercases_ticker", func(t *testing.T) {
		var seen string
		svc := NewMarketDataService(&mockMarketData{
			quoteFn: func(ticker string) (*provider.Quote, error) {
				seen = ticker
				return nil, errUpstream
			},
			chartFn:   func(string) (*provider.Chart, error) { return nil, errUpstream },
			profileFn: func(string) (*provider.Profile, error) { return nil, errUpstream },
		})
		svc.FetchSnapshot(context.Background(), "  brk-b ")
		if seen != "BRK-B" {
			t.Errorf("expected BRK-B, got %q", seen)
		}
	})
}

func TestMergeSnapshot(t *testing.T) {
	t.Run("quote_price_missing_uses_chart", func(t *testing.T) {
		snap := mergeSnapshot(&provider.Quote{ChangePct: testutil.Float(-0.5)}, &provider.Chart{Price: testutil.Float(99)}, nil)
		if snap.Price == nil || *snap.Price != 99 {
			t.Errorf("expected chart price, got %v", snap.Price)
		}
		if snap.ChangePct == nil || *snap.ChangePct != -0.5 {
			t.Errorf("expected quote change, got %v", snap.ChangePct)
		}
	})

	t.Run("zero_previous_close_leaves_change_nil", func(t *testing.T) {
		snap := mergeSnapshot(nil, &provider.Chart{Price: testutil.Float(10), PreviousClose: testutil.Float(0)}, nil)
		if snap.ChangePct != nil {
			t.Errorf("expected nil change, got %v", *snap.ChangePct)
		}
	})

	t.Run("profile_only", func(t *testing.T) {
		snap := mergeSnapshot(nil, nil, &provider.Profile{Summary: "Only text."})
		if snap.Error != "" || snap.YahooDesc != "Only text." {
			t.Errorf("unexpected snapshot %+v", snap)
		}
		if snap.Price != nil || len(snap.Spark) != 0 {
			t.Errorf("expected no numeric data, got %+v", snap)
		}
	})
}
