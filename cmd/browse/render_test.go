package main

import (
	"strings"
	"testing"

	"stockswipe/internal/models"
)

func floatPtr(v float64) *float64 { return &v }

func TestFormat(t *testing.T) {
	if got := formatPrice(nil); got != "--" {
		t.Errorf("formatPrice(nil) = %q", got)
	}
	if got := formatChange(nil); got != "--" {
		t.Errorf("formatChange(nil) = %q", got)
	}
	if got := formatPrice(floatPtr(189.456)); got != "189.46" {
		t.Errorf("formatPrice = %q", got)
	}
	if got := formatChange(floatPtr(-1.2)); got != "-1.20%" {
		t.Errorf("formatChange = %q", got)
	}
	if got := formatChange(floatPtr(3.448)); got != "+3.45%" {
		t.Errorf("formatChange = %q", got)
	}
}

func TestRenderBlocks(t *testing.T) {
	t.Run("low_to_high", func(t *testing.T) {
		if got := renderBlocks([]float64{1, 8}, 10); got != "▁█" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("too_short", func(t *testing.T) {
		if got := renderBlocks([]float64{1}, 10); got != "" {
			t.Errorf("expected empty line, got %q", got)
		}
	})

	t.Run("sampled_to_width", func(t *testing.T) {
		series := make([]float64, 100)
		for i := range series {
			series[i] = float64(i)
		}
		if got := []rune(renderBlocks(series, 10)); len(got) != 10 {
			t.Errorf("expected 10 columns, got %d", len(got))
		}
	})
}

func TestRenderCard(t *testing.T) {
	t.Run("with_data", func(t *testing.T) {
		out := renderCard(1, models.StockCard{Ticker: "AAPL", Name: "Apple Inc."}, models.MarketSnapshot{
			Price:     floatPtr(150),
			ChangePct: floatPtr(3.448),
			Spark:     []float64{145, 150},
		}, true)
		for _, want := range []string{"AAPL", "150.00", "+3.45%", "path M 0.00,36.00 L 120.00,0.00"} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("without_data", func(t *testing.T) {
		out := renderCard(2, models.StockCard{Ticker: "ZZZZ", Name: "ZZZZ"}, models.MarketSnapshot{Error: "no upstream data available"}, true)
		if !strings.Contains(out, "price --   change --") {
			t.Errorf("expected placeholders:\n%s", out)
		}
		if strings.Contains(out, "path") {
			t.Errorf("expected no sparkline:\n%s", out)
		}
	})

	t.Run("not_loaded", func(t *testing.T) {
		out := renderCard(3, models.StockCard{Ticker: "MSFT", Name: "Microsoft Corporation"}, models.MarketSnapshot{}, false)
		if !strings.Contains(out, "loading quote") || strings.Contains(out, "price") {
			t.Errorf("expected loading line only:\n%s", out)
		}
	})
}

func TestChangeStyle(t *testing.T) {
	if changeStyle(nil).GetForeground() != dimStyle.GetForeground() {
		t.Error("missing change should be dimmed")
	}
	if changeStyle(floatPtr(-0.1)).GetForeground() != lossStyle.GetForeground() {
		t.Error("negative change should use the loss colour")
	}
	if changeStyle(floatPtr(0)).GetForeground() != gainStyle.GetForeground() {
		t.Error("flat change should use the gain colour")
	}
}

func TestRenderPicks(t *testing.T) {
	out := renderPicks([]models.DailyPick{
		{Ticker: "PLTR", Name: "Palantir Technologies Inc.", BuySellScore: 70, Reason: "Contracts.", Price: 25.5},
	})
	for _, want := range []string{"1. PLTR", "25.50", "--", "score 70", "Palantir Technologies Inc.", "Contracts."} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if out := renderPicks(nil); !strings.Contains(out, "no priced picks") {
		t.Errorf("expected empty notice, got %q", out)
	}
}

func TestPadOrTrunc(t *testing.T) {
	if got := padOrTrunc("abc", 5); got != "abc  " {
		t.Errorf("got %q", got)
	}
	if got := padOrTrunc("héllo", 2); got != "hé" {
		t.Errorf("got %q", got)
	}
}
