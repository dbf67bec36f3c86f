package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthResponse reports liveness and which model providers are configured.
type HealthResponse struct {
	OK           bool `json:"ok"`
	HasOpenAIKey bool `json:"hasOpenAIKey"`
	HasGeminiKey bool `json:"hasGeminiKey"`
}

// Health handles the health check.
// @Summary     Health check
// @Tags        health
// @Produce     json
// @Success     200 {object} HealthResponse
// @Router      /health [get]
func Health(hasOpenAIKey, hasGeminiKey bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, HealthResponse{OK: true, HasOpenAIKey: hasOpenAIKey, HasGeminiKey: hasGeminiKey})
	}
}
