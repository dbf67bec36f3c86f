// Package provider fetches raw market data for a single ticker from upstream
// sources. Each fetch is independent; merging is the caller's job.
package provider

import (
	"bytes"
	"context"
	"encoding/json"
)

// Quote is the latest trade summary for a ticker.
type Quote struct {
	Price     *float64
	ChangePct *float64
	// Name is the listed company name, empty when the source has none.
	Name string
}

// Chart is an intraday series plus the reference values needed to derive a
// change when the quote source is unavailable.
type Chart struct {
	Price         *float64
	PreviousClose *float64
	Closes        []float64
}

// Profile is descriptive company information.
type Profile struct {
	Summary string
}

// MarketData fetches the three upstream views of one ticker.
type MarketData interface {
	// Name returns the provider's display name.
	Name() string

	FetchQuote(ctx context.Context, ticker string) (*Quote, error)
	FetchChart(ctx context.Context, ticker string) (*Chart, error)
	FetchProfile(ctx context.Context, ticker string) (*Profile, error)
}

// flexFloat decodes a JSON number leniently. null, strings and any other
// non-number leave it unset instead of failing the whole payload.
type flexFloat struct {
	value float64
	valid bool
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *flexFloat) UnmarshalJSON(data []byte) error {
	*f = flexFloat{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] == 'n' || data[0] == '"' || data[0] == '{' || data[0] == '[' || data[0] == 't' || data[0] == 'f' {
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return nil
	}
	f.value, f.valid = v, true
	return nil
}

// ptr returns the value as a pointer, or nil when unset.
func (f flexFloat) ptr() *float64 {
	if !f.valid {
		return nil
	}
	v := f.value
	return &v
}
