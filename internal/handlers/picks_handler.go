package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "stockswipe/internal/errors"
	"stockswipe/internal/models"
	"stockswipe/internal/pagination"
	"stockswipe/internal/services"
)

// PicksHandler serves the weekly popular-stocks list.
type PicksHandler struct {
	picksService services.PicksServicer
}

// NewPicksHandler creates a new PicksHandler.
func NewPicksHandler(picksService services.PicksServicer) *PicksHandler {
	return &PicksHandler{picksService: picksService}
}

// GeneratePicksResponse reports a completed generation.
type GeneratePicksResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// DailyPicksResponse is the weekly list merged with live quotes.
type DailyPicksResponse struct {
	Picks []models.DailyPick `json:"picks"`
	Count int                `json:"count"`
}

// GeneratePicks handles regenerating the weekly picks.
// @Summary     Generate weekly picks
// @Description Ask the model for this week's most popular stocks and replace the stored list
// @Tags        picks
// @Produce     json
// @Param       provider query string false "Model provider: openai or gemini (default from PICKS_PROVIDER)"
// @Success     200 {object} GeneratePicksResponse
// @Failure     400 {object} ErrorResponse "Unknown provider"
// @Failure     502 {object} ErrorResponse "Model failed"
// @Failure     503 {object} ErrorResponse "No model credentials configured"
// @Router      /picks/generate [post]
func (h *PicksHandler) GeneratePicks(c *gin.Context) {
	count, err := h.picksService.GeneratePicks(c.Request.Context(), c.Query("provider"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, GeneratePicksResponse{
		Message: "Weekly picks generated",
		Count:   count,
	})
}

// ListPicks handles listing stored picks.
// @Summary     List weekly picks
// @Tags        picks
// @Produce     json
// @Param       page     query int false "Page number (default 1)"
// @Param       pageSize query int false "Items per page (default 25, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Pick] "Paginated picks"
// @Failure     400 {object} ErrorResponse "Invalid pagination"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /picks [get]
func (h *PicksHandler) ListPicks(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.picksService.ListPicks(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// DailyPicks handles serving picks with live prices.
// @Summary     Daily picks
// @Description Stored weekly picks merged with live price and change. Never regenerates.
// @Tags        picks
// @Produce     json
// @Success     200 {object} DailyPicksResponse
// @Failure     404 {object} ErrorResponse "Picks missing or outdated"
// @Router      /picks/daily [get]
func (h *PicksHandler) DailyPicks(c *gin.Context) {
	picks, err := h.picksService.DailyPicks(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, DailyPicksResponse{Picks: picks, Count: len(picks)})
}
