package testutil

import (
	"sync/atomic"
	"testing"
	"time"

	"gorm.io/gorm"

	"stockswipe/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// Float returns a pointer to v.
func Float(v float64) *float64 {
	return &v
}

// CreateTestPick stores a pick generated at the given time.
func CreateTestPick(t *testing.T, db *gorm.DB, ticker string, score int, generatedAt time.Time) *models.Pick {
	t.Helper()

	pick := &models.Pick{
		Ticker:       ticker,
		Name:         ticker + " Corp.",
		BuySellScore: score,
		Reason:       "Test reason for " + ticker,
		GeneratedAt:  generatedAt,
	}
	if err := db.Create(pick).Error; err != nil {
		t.Fatalf("failed to create test pick: %v", err)
	}
	return pick
}

// CreateTestPicks stores one pick per ticker, all generated at the same time,
// with descending scores starting at 90.
func CreateTestPicks(t *testing.T, db *gorm.DB, generatedAt time.Time, tickers ...string) []models.Pick {
	t.Helper()

	picks := make([]models.Pick, 0, len(tickers))
	for i, ticker := range tickers {
		picks = append(picks, *CreateTestPick(t, db, ticker, 90-i, generatedAt))
	}
	return picks
}

// Snapshot builds a market snapshot with the given price and change.
func Snapshot(price, changePct *float64, spark ...float64) models.MarketSnapshot {
	if spark == nil {
		spark = []float64{}
	}
	return models.MarketSnapshot{Price: price, ChangePct: changePct, Spark: spark}
}
