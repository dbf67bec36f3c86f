package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"stockswipe/internal/catalog"
	apperrors "stockswipe/internal/errors"
	"stockswipe/internal/insight"
	"stockswipe/internal/llm"
	"stockswipe/internal/logger"
	"stockswipe/internal/models"
	"stockswipe/internal/pagination"
	"stockswipe/internal/provider"
	"stockswipe/internal/validator"
)

const (
	defaultPickScore = 50
	// quoteWorkers bounds concurrent upstream fetches per request.
	quoteWorkers = 8
)

const picksSystemPrompt = "You are a financial analyst that returns data in JSON format."

// PicksConfig holds the weekly picks settings.
type PicksConfig struct {
	Count  int
	MaxAge time.Duration
	// Provider is used when a request names none.
	Provider llm.Provider
}

// QuoteSource supplies the quote used to name picks the catalog does not know.
type QuoteSource interface {
	FetchQuote(ctx context.Context, ticker string) (*provider.Quote, error)
}

// picksService generates, stores and serves the weekly picks.
type picksService struct {
	db      *gorm.DB
	models  *llm.Registry
	market  MarketDataServicer
	quotes  QuoteSource
	catalog *catalog.Catalog
	cfg     PicksConfig
	now     func() time.Time
	log     *zap.SugaredLogger
}

// NewPicksService creates a new PicksServicer. Providers missing from the
// registry cannot generate; stored picks can still be served. A nil quotes
// source names unknown tickers by their symbol.
func NewPicksService(db *gorm.DB, registry *llm.Registry, market MarketDataServicer, quotes QuoteSource, cat *catalog.Catalog, cfg PicksConfig) PicksServicer {
	return newPicksService(db, registry, market, quotes, cat, cfg, time.Now)
}

func newPicksService(db *gorm.DB, registry *llm.Registry, market MarketDataServicer, quotes QuoteSource, cat *catalog.Catalog, cfg PicksConfig, now func() time.Time) *picksService {
	if cfg.Count <= 0 {
		cfg.Count = 50
	}
	if cfg.MaxAge <= 0 {
		cfg.MaxAge = 7 * 24 * time.Hour
	}
	if cfg.Provider == "" {
		cfg.Provider = llm.ProviderOpenAI
	}
	return &picksService{
		db:      db,
		models:  registry,
		market:  market,
		quotes:  quotes,
		catalog: cat,
		cfg:     cfg,
		now:     now,
		log:     logger.Named("picks"),
	}
}

type rawPick struct {
	Ticker         string `json:"ticker"`
	BuySellScore   any    `json:"buySellScore"`
	BuySellScoreSC any    `json:"buy_sell_score"`
	Reason         string `json:"reason"`
}

// GeneratePicks asks the named provider's model for the week's most popular
// stocks and replaces any previously stored batch. An empty provider selects
// the configured default.
func (s *picksService) GeneratePicks(ctx context.Context, providerName string) (int, error) {
	p := s.cfg.Provider
	if providerName != "" {
		parsed, err := llm.ParseProvider(providerName)
		if err != nil {
			return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "provider must be one of openai, gemini")
		}
		p = parsed
	}
	completer, ok := s.models.Get(p)
	if !ok {
		return 0, apperrors.WithMessage(apperrors.ErrLLMNotConfigured, fmt.Sprintf("No credentials configured for provider %s", p))
	}

	raw, err := completer.Complete(ctx, picksSystemPrompt, picksPrompt(s.cfg.Count))
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrPicksGeneration, err)
	}

	picks, err := s.parsePicks(raw)
	if err != nil {
		s.log.Warnw("unusable picks output", "provider", p, "error", err)
		return 0, apperrors.Wrap(apperrors.ErrPicksGeneration, err)
	}
	s.resolveNames(ctx, picks)

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Pick{}).Error; err != nil {
			return err
		}
		return tx.Create(&picks).Error
	})
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	s.log.Infow("weekly picks generated", "provider", p, "count", len(picks))
	return len(picks), nil
}

// parsePicks decodes the model's {"stocks": [...]} answer, dropping entries
// without a valid ticker and repeated tickers. Names are filled from the
// catalog only; tickers it does not know are left unnamed.
func (s *picksService) parsePicks(raw string) ([]models.Pick, error) {
	body, err := insight.ExtractJSON(raw)
	if err != nil {
		return nil, err
	}
	var payload struct {
		Stocks []rawPick `json:"stocks"`
	}
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		return nil, fmt.Errorf("failed to decode picks JSON: %w", err)
	}

	generatedAt := s.now().UTC()
	seen := make(map[string]bool, len(payload.Stocks))
	picks := make([]models.Pick, 0, len(payload.Stocks))
	for _, rp := range payload.Stocks {
		ticker := strings.ToUpper(strings.TrimSpace(rp.Ticker))
		if !validator.IsTicker(ticker) || seen[ticker] {
			continue
		}
		seen[ticker] = true

		score := rp.BuySellScore
		if score == nil {
			score = rp.BuySellScoreSC
		}
		picks = append(picks, models.Pick{
			Ticker:       ticker,
			Name:         s.catalogName(ticker),
			BuySellScore: toScore(score),
			Reason:       strings.TrimSpace(rp.Reason),
			GeneratedAt:  generatedAt,
		})
	}
	if len(picks) == 0 {
		return nil, errors.New("model returned no usable picks")
	}
	return picks, nil
}

func (s *picksService) catalogName(ticker string) string {
	if inst, ok := s.catalog.Lookup(ticker); ok {
		return inst.Name
	}
	return ""
}

// resolveNames names the picks the catalog missed from their live quote,
// falling back to the ticker.
func (s *picksService) resolveNames(ctx context.Context, picks []models.Pick) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(quoteWorkers)
	for i := range picks {
		if picks[i].Name != "" {
			continue
		}
		if s.quotes == nil {
			picks[i].Name = picks[i].Ticker
			continue
		}
		g.Go(func() error {
			picks[i].Name = picks[i].Ticker
			q, err := s.quotes.FetchQuote(gctx, picks[i].Ticker)
			if err != nil {
				s.log.Debugw("no quote name for pick", "ticker", picks[i].Ticker, "error", err)
				return nil
			}
			if q.Name != "" {
				picks[i].Name = q.Name
			}
			return nil
		})
	}
	_ = g.Wait()
}

// ListPicks returns stored picks, strongest buy first.
func (s *picksService) ListPicks(page pagination.PageRequest) (*pagination.PageResponse[models.Pick], error) {
	page.Defaults()

	var totalItems int64
	if err := s.db.Model(&models.Pick{}).Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var picks []models.Pick
	if err := s.db.Scopes(pagination.Paginate(page)).
		Order("buy_sell_score DESC, ticker ASC").
		Find(&picks).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	resp := pagination.NewPageResponse(picks, page.Page, page.PageSize, totalItems)
	return &resp, nil
}

// DailyPicks merges stored picks with live quotes. It never regenerates;
// missing or expired picks yield ErrPicksUnavailable. Picks without a live
// price are skipped.
func (s *picksService) DailyPicks(ctx context.Context) ([]models.DailyPick, error) {
	var latest models.Pick
	if err := s.db.Order("generated_at DESC").First(&latest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPicksUnavailable
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	now := s.now()
	if now.Sub(latest.GeneratedAt) > s.cfg.MaxAge {
		return nil, apperrors.ErrPicksUnavailable
	}

	var picks []models.Pick
	if err := s.db.Order("buy_sell_score DESC, ticker ASC").Find(&picks).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	snaps := make([]models.MarketSnapshot, len(picks))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(quoteWorkers)
	for i, p := range picks {
		g.Go(func() error {
			snaps[i] = s.market.FetchSnapshot(gctx, p.Ticker)
			return nil
		})
	}
	_ = g.Wait()

	out := make([]models.DailyPick, 0, len(picks))
	for i, p := range picks {
		snap := snaps[i]
		if snap.Price == nil {
			s.log.Debugw("skipping pick without live price", "ticker", p.Ticker, "error", snap.Error)
			continue
		}
		dp := models.DailyPick{
			ID:           fmt.Sprintf("%s-%d", p.Ticker, now.Unix()),
			Ticker:       p.Ticker,
			Name:         p.Name,
			BuySellScore: p.BuySellScore,
			Reason:       p.Reason,
			Price:        round2(*snap.Price),
		}
		if snap.ChangePct != nil {
			pct := round2(*snap.ChangePct)
			dp.ChangePct = &pct
		}
		out = append(out, dp)
	}
	return out, nil
}

func picksPrompt(n int) string {
	return fmt.Sprintf(`Generate a list of the %d most popular stocks this week. For each stock, provide:
1. The ticker symbol (string)
2. A buySellScore (integer from 0 to 100, where 100 is a strong buy)
3. A brief reason for the preference (string, 1-2 sentences)

Return the data as a single JSON object with a key "stocks" containing a list of these items.
Example format: {"stocks": [{"ticker": "AAPL", "buySellScore": 85, "reason": "..."}]}`, n)
}

// toScore reads a 0..100 integer score from a decoded JSON value. Missing or
// unreadable scores fall back to the neutral default.
func toScore(v any) int {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return defaultPickScore
		}
		f = parsed
	default:
		return defaultPickScore
	}
	if math.IsNaN(f) {
		return defaultPickScore
	}
	return int(math.Round(math.Max(0, math.Min(100, f))))
}

func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
