package models

import "time"

// MarketSnapshot is the merged, point-in-time market state for one ticker.
// Nil numeric fields mean the value was unavailable from every source.
type MarketSnapshot struct {
	Price     *float64  `json:"price"`
	ChangePct *float64  `json:"changePct"`
	Spark     []float64 `json:"spark"`
	YahooDesc string    `json:"yahooDesc,omitempty"`

	// Error is a display diagnostic; a snapshot carrying it is still renderable.
	Error string `json:"error,omitempty"`

	// FetchedAt is stamped by the consumer when the snapshot lands in its cache.
	FetchedAt time.Time `json:"-"`
}

// EmptySnapshot returns a snapshot with every nullable field unset and a
// non-nil empty series, so it encodes as "spark": [].
func EmptySnapshot() MarketSnapshot {
	return MarketSnapshot{Spark: []float64{}}
}
