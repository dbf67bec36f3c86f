package services

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"stockswipe/internal/logger"
	"stockswipe/internal/models"
	"stockswipe/internal/provider"
)

// NoUpstreamData is the diagnostic set when every source failed.
const NoUpstreamData = "no upstream data available"

// marketDataService merges the quote, chart and profile views of a ticker.
type marketDataService struct {
	source provider.MarketData
	log    *zap.SugaredLogger
}

// NewMarketDataService creates a new MarketDataServicer.
func NewMarketDataService(source provider.MarketData) MarketDataServicer {
	return &marketDataService{source: source, log: logger.Named("marketdata")}
}

// FetchSnapshot queries all three sources concurrently. A failing source is
// logged and contributes nothing.
func (s *marketDataService) FetchSnapshot(ctx context.Context, ticker string) models.MarketSnapshot {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))

	var (
		quote   *provider.Quote
		chart   *provider.Chart
		profile *provider.Profile
		g       errgroup.Group
	)

	g.Go(func() error {
		q, err := s.source.FetchQuote(ctx, ticker)
		if err != nil {
			s.log.Warnw("quote source failed", "ticker", ticker, "provider", s.source.Name(), "error", err)
			return nil
		}
		quote = q
		return nil
	})
	g.Go(func() error {
		c, err := s.source.FetchChart(ctx, ticker)
		if err != nil {
			s.log.Warnw("chart source failed", "ticker", ticker, "provider", s.source.Name(), "error", err)
			return nil
		}
		chart = c
		return nil
	})
	g.Go(func() error {
		p, err := s.source.FetchProfile(ctx, ticker)
		if err != nil {
			s.log.Warnw("profile source failed", "ticker", ticker, "provider", s.source.Name(), "error", err)
			return nil
		}
		profile = p
		return nil
	})
	_ = g.Wait()

	snap := mergeSnapshot(quote, chart, profile)
	if snap.Error != "" {
		s.log.Errorw("all market data sources failed", "ticker", ticker)
	}
	return snap
}

// mergeSnapshot applies the fallback order: the quote wins for price and
// change, the chart fills gaps and supplies the series, and the profile
// supplies the description. Nil inputs are failed sources.
func mergeSnapshot(quote *provider.Quote, chart *provider.Chart, profile *provider.Profile) models.MarketSnapshot {
	snap := models.EmptySnapshot()
	if quote == nil && chart == nil && profile == nil {
		snap.Error = NoUpstreamData
		return snap
	}

	if quote != nil && quote.Price != nil {
		snap.Price = quote.Price
	} else if chart != nil {
		snap.Price = chart.Price
	}

	if quote != nil && quote.ChangePct != nil {
		snap.ChangePct = quote.ChangePct
	} else if snap.Price != nil && chart != nil && chart.PreviousClose != nil && *chart.PreviousClose > 0 {
		prev := *chart.PreviousClose
		pct := (*snap.Price - prev) / prev * 100
		snap.ChangePct = &pct
	}

	if chart != nil && chart.Closes != nil {
		snap.Spark = chart.Closes
	}
	if profile != nil {
		snap.YahooDesc = profile.Summary
	}
	return snap
}
