package models

import "time"

// Pick is one entry of the weekly popular-stocks list produced by the LLM.
// Picks live only for the lifetime of the process.
type Pick struct {
	Base
	Ticker       string    `gorm:"not null;index" json:"ticker"`
	Name         string    `gorm:"not null" json:"name"`
	BuySellScore int       `gorm:"not null;default:50" json:"buySellScore"`
	Reason       string    `json:"reason"`
	GeneratedAt  time.Time `gorm:"not null;index" json:"generatedAt"`
}

// DailyPick is a pick merged with its live quote.
type DailyPick struct {
	ID           string   `json:"id"`
	Ticker       string   `json:"ticker"`
	Name         string   `json:"name"`
	BuySellScore int      `json:"buySellScore"`
	Reason       string   `json:"reason"`
	Price        float64  `json:"price"`
	ChangePct    *float64 `json:"changePct"`
}
