package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stockswipe/internal/services"
)

// MarketHandler serves merged market snapshots.
type MarketHandler struct {
	marketService services.MarketDataServicer
}

// NewMarketHandler creates a new MarketHandler.
func NewMarketHandler(marketService services.MarketDataServicer) *MarketHandler {
	return &MarketHandler{marketService: marketService}
}

// GetSnapshot handles fetching the snapshot for one ticker.
// @Summary     Market snapshot
// @Description Price, percent change, intraday series and description merged from the quote, chart and profile sources. Total upstream failure still answers 200 with null fields and an error diagnostic.
// @Tags        market
// @Produce     json
// @Param       symbol query string true "Ticker symbol, e.g. AAPL or ^GSPC"
// @Success     200 {object} models.MarketSnapshot "Merged snapshot"
// @Failure     400 {object} ErrorResponse "Missing or invalid symbol"
// @Router      /yahoo [get]
func (h *MarketHandler) GetSnapshot(c *gin.Context) {
	symbol, err := parseSymbol(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	snap := h.marketService.FetchSnapshot(c.Request.Context(), symbol)
	c.JSON(http.StatusOK, snap)
}
