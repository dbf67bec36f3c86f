package insight

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Normalize turns an untrusted probability pair into one that sums to exactly
// 100. Missing or non-numeric values count as 0 and negatives are clamped to 0.
// A 0/0 pair becomes 50/50. Otherwise buy is rescaled and rounded to one
// decimal, and sell is its complement so the sum survives rounding.
func Normalize(buy, sell any) (float64, float64) {
	b := nonNegative(toFloat(buy))
	s := nonNegative(toFloat(sell))
	if b == 0 && s == 0 {
		return 50, 50
	}

	total := decimal.NewFromFloat(b).Add(decimal.NewFromFloat(s))
	nb := decimal.NewFromFloat(b).Div(total).Mul(hundred).Round(1)
	ns := hundred.Sub(nb)
	return nb.InexactFloat64(), ns.InexactFloat64()
}

func nonNegative(v float64) float64 {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// toFloat accepts JSON-decoded numbers, Go numeric types and numeric strings.
// Anything else reads as 0.
func toFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case int32:
		return float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(n), "%")), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
