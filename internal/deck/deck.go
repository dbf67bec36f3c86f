// Package deck produces randomized batches of stock cards from the catalog.
package deck

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"stockswipe/internal/models"
)

// DefaultBatchSize is the batch size used when the caller asks for none.
const DefaultBatchSize = 12

const (
	suffixLen      = 6
	suffixAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// Generator draws batches of cards from a fixed instrument pool.
type Generator struct {
	pool []models.Instrument
	now  func() time.Time

	mu  sync.Mutex
	rng *rand.Rand
}

// Option configures a Generator.
type Option func(*Generator)

// WithRand sets the random source, typically a seeded one in tests.
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) { g.rng = r }
}

// WithClock sets the time source used for card IDs.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// NewGenerator creates a generator over the given instruments.
func NewGenerator(instruments []models.Instrument, opts ...Option) *Generator {
	pool := make([]models.Instrument, len(instruments))
	copy(pool, instruments)

	g := &Generator{
		pool: pool,
		now:  time.Now,
		rng:  rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// GenerateBatch returns size cards. The pool is shuffled once per batch and
// walked cyclically, so every instrument appears before any repeats.
// A size of zero or less falls back to DefaultBatchSize.
func (g *Generator) GenerateBatch(size int) []models.StockCard {
	if size <= 0 {
		size = DefaultBatchSize
	}
	if len(g.pool) == 0 {
		return []models.StockCard{}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	shuffled := make([]models.Instrument, len(g.pool))
	copy(shuffled, g.pool)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := g.rng.IntN(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	millis := g.now().UnixMilli()
	cards := make([]models.StockCard, size)
	for i := range cards {
		inst := shuffled[i%len(shuffled)]
		cards[i] = models.StockCard{
			ID:     fmt.Sprintf("%s-%s-%d", inst.Ticker, g.suffix(), millis),
			Ticker: inst.Ticker,
			Name:   inst.Name,
		}
	}
	return cards
}

func (g *Generator) suffix() string {
	var b strings.Builder
	b.Grow(suffixLen)
	for range suffixLen {
		b.WriteByte(suffixAlphabet[g.rng.IntN(len(suffixAlphabet))])
	}
	return b.String()
}
