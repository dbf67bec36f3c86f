package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	apperrors "stockswipe/internal/errors"
	"stockswipe/internal/insight"
	"stockswipe/internal/llm"
	"stockswipe/internal/logger"
	"stockswipe/internal/models"
)

// insightService asks the model for a rationale and normalizes its answer.
type insightService struct {
	llm llm.Completer
	log *zap.SugaredLogger
}

// NewInsightService creates a new InsightServicer. A nil completer means no
// model credentials are configured.
func NewInsightService(completer llm.Completer) InsightServicer {
	return &insightService{llm: completer, log: logger.Named("insight")}
}

// Configured reports whether a model is available.
func (s *insightService) Configured() bool {
	return s.llm != nil
}

// FetchInsight returns a validated insight whose probabilities sum to 100.
// Every upstream or decoding failure maps to ErrInsightUnavailable.
func (s *insightService) FetchInsight(ctx context.Context, req models.RationaleRequest) (*models.AIInsight, error) {
	if s.llm == nil {
		return nil, apperrors.ErrLLMNotConfigured
	}

	symbol := strings.ToUpper(strings.TrimSpace(req.Symbol))
	if symbol == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Symbol is required")
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = symbol
	}

	raw, err := s.llm.Complete(ctx, insight.SystemPrompt, insight.Prompt(symbol, name, req.Price, req.ChangePct))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInsightUnavailable, err)
	}

	result, err := insight.Decode(raw)
	if err != nil {
		s.log.Warnw("unusable model output", "ticker", symbol, "error", err)
		return nil, apperrors.Wrap(apperrors.ErrInsightUnavailable, err)
	}

	s.log.Debugw("insight generated", "ticker", symbol, "buy", result.BuyProbability, "sell", result.SellProbability)
	return result, nil
}
