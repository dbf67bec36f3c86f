package models

// Instrument is a single catalog row. Instruments are never mutated after load.
type Instrument struct {
	Ticker string `yaml:"ticker" json:"ticker"`
	Name   string `yaml:"name" json:"name"`
}

// StockCard is one entry of a generated deck. Repeated tickers within a batch
// are told apart by ID.
type StockCard struct {
	ID     string `json:"id"`
	Ticker string `json:"ticker"`
	Name   string `json:"name"`
}
