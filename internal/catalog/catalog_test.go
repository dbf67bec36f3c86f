package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	c := Default()
	if c.Len() == 0 {
		t.Fatal("expected non-empty default catalog")
	}
	seen := make(map[string]bool)
	for _, inst := range c.Instruments() {
		if inst.Ticker == "" || inst.Name == "" {
			t.Errorf("incomplete instrument: %+v", inst)
		}
		if seen[inst.Ticker] {
			t.Errorf("duplicate ticker %s", inst.Ticker)
		}
		seen[inst.Ticker] = true
	}
	if _, ok := c.Lookup("aapl"); !ok {
		t.Error("expected case-insensitive lookup of AAPL")
	}
}

func TestParse(t *testing.T) {
	t.Run("normalizes_tickers_and_names", func(t *testing.T) {
		c, err := Parse([]byte("instruments:\n  - {ticker: ' msft ', name: Microsoft}\n  - {ticker: zzzz}\n"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got := c.Instruments()
		if got[0].Ticker != "MSFT" || got[0].Name != "Microsoft" {
			t.Errorf("unexpected first row: %+v", got[0])
		}
		if got[1].Name != "ZZZZ" {
			t.Errorf("expected name fallback to ticker, got %q", got[1].Name)
		}
	})

	t.Run("rejects_invalid", func(t *testing.T) {
		cases := map[string]string{
			"empty":     "instruments: []",
			"no_ticker": "instruments:\n  - {name: Nameless}",
			"duplicate": "instruments:\n  - {ticker: A}\n  - {ticker: a}",
			"bad_yaml":  "instruments: [",
		}
		for name, doc := range cases {
			if _, err := Parse([]byte(doc)); err == nil {
				t.Errorf("%s: expected error", name)
			}
		}
	})
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	if err := os.WriteFile(path, []byte("instruments:\n  - {ticker: IBM, name: IBM}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inst, ok := c.Lookup("ibm"); c.Len() != 1 || !ok || inst.Name != "IBM" {
		t.Errorf("unexpected catalog: %+v", c.Instruments())
	}
	if _, ok := c.Lookup("nope"); ok {
		t.Errorf("expected unknown ticker to be missing")
	}

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	if err == nil || !strings.Contains(err.Error(), "failed to read catalog") {
		t.Errorf("expected read error, got %v", err)
	}
}
