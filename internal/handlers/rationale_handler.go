package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "stockswipe/internal/errors"
	"stockswipe/internal/models"
	"stockswipe/internal/services"
)

// RationaleHandler serves AI buy/sell insights.
type RationaleHandler struct {
	insightService services.InsightServicer
}

// NewRationaleHandler creates a new RationaleHandler.
func NewRationaleHandler(insightService services.InsightServicer) *RationaleHandler {
	return &RationaleHandler{insightService: insightService}
}

// RationaleRequest represents the request payload for an insight.
type RationaleRequest struct {
	Symbol    string   `json:"symbol" binding:"required,ticker"`
	Name      string   `json:"name" binding:"omitempty,max=200"`
	Price     *float64 `json:"price"`
	ChangePct *float64 `json:"changePct"`
}

// CreateRationale handles generating an insight.
// @Summary     AI rationale
// @Description Company description plus buy and sell cases whose probabilities sum to exactly 100
// @Tags        insight
// @Accept      json
// @Produce     json
// @Param       request body RationaleRequest true "Instrument and its latest quote"
// @Success     200 {object} models.AIInsight "Normalized insight"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     502 {object} ErrorResponse "Model failed; retry"
// @Failure     503 {object} ErrorResponse "No model credentials configured"
// @Router      /rationale [post]
func (h *RationaleHandler) CreateRationale(c *gin.Context) {
	var req RationaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	insight, err := h.insightService.FetchInsight(c.Request.Context(), models.RationaleRequest{
		Symbol:    req.Symbol,
		Name:      req.Name,
		Price:     req.Price,
		ChangePct: req.ChangePct,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, insight)
}
