// Package catalog holds the static, ordered list of tradable instruments the
// deck is drawn from.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"stockswipe/internal/models"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Catalog is an immutable, ordered instrument list with ticker lookup.
type Catalog struct {
	instruments []models.Instrument
	byTicker    map[string]models.Instrument
}

type catalogFile struct {
	Instruments []models.Instrument `yaml:"instruments"`
}

// Default returns the catalog embedded in the binary.
func Default() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
	}
	return c
}

// Load reads a catalog from a YAML file. An empty path returns Default().
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file '%s': %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML catalog. Tickers are upper-cased and
// must be unique; a missing name falls back to the ticker.
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog from YAML: %w", err)
	}
	if len(file.Instruments) == 0 {
		return nil, fmt.Errorf("catalog must contain at least one instrument")
	}

	c := &Catalog{
		instruments: make([]models.Instrument, 0, len(file.Instruments)),
		byTicker:    make(map[string]models.Instrument, len(file.Instruments)),
	}
	for i, inst := range file.Instruments {
		ticker := strings.ToUpper(strings.TrimSpace(inst.Ticker))
		if ticker == "" {
			return nil, fmt.Errorf("instrument %d must have a ticker", i)
		}
		if _, dup := c.byTicker[ticker]; dup {
			return nil, fmt.Errorf("duplicate ticker %q", ticker)
		}
		name := strings.TrimSpace(inst.Name)
		if name == "" {
			name = ticker
		}
		row := models.Instrument{Ticker: ticker, Name: name}
		c.instruments = append(c.instruments, row)
		c.byTicker[ticker] = row
	}
	return c, nil
}

// Instruments returns a copy of the catalog in file order.
func (c *Catalog) Instruments() []models.Instrument {
	out := make([]models.Instrument, len(c.instruments))
	copy(out, c.instruments)
	return out
}

// Len returns the number of instruments.
func (c *Catalog) Len() int { return len(c.instruments) }

// Lookup finds an instrument by ticker, case-insensitively.
func (c *Catalog) Lookup(ticker string) (models.Instrument, bool) {
	inst, ok := c.byTicker[strings.ToUpper(strings.TrimSpace(ticker))]
	return inst, ok
}
