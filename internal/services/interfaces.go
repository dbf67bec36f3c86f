package services

import (
	"context"

	"stockswipe/internal/models"
	"stockswipe/internal/pagination"
)

// MarketDataServicer defines the contract for merged market snapshots.
type MarketDataServicer interface {
	// FetchSnapshot never fails; upstream problems surface as nil fields and
	// the snapshot's Error diagnostic.
	FetchSnapshot(ctx context.Context, ticker string) models.MarketSnapshot
}

// InsightServicer defines the contract for AI buy/sell rationales.
type InsightServicer interface {
	FetchInsight(ctx context.Context, req models.RationaleRequest) (*models.AIInsight, error)
	Configured() bool
}

// PicksServicer defines the contract for the weekly popular-stocks list.
type PicksServicer interface {
	// GeneratePicks uses the default provider when provider is empty.
	GeneratePicks(ctx context.Context, provider string) (int, error)
	ListPicks(page pagination.PageRequest) (*pagination.PageResponse[models.Pick], error)
	DailyPicks(ctx context.Context) ([]models.DailyPick, error)
}
