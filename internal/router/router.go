// Package router assembles the HTTP surface: middleware chain, swagger UI and
// the /api routes.
package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "stockswipe/internal/docs" // swagger docs
	"stockswipe/internal/handlers"
	"stockswipe/internal/llm"
	"stockswipe/internal/middleware"
	"stockswipe/internal/services"
)

// Services are the backends the routes delegate to.
type Services struct {
	Market  services.MarketDataServicer
	Insight services.InsightServicer
	Picks   services.PicksServicer
	// Models holds the picks providers that have credentials.
	Models *llm.Registry
}

// New builds the gin engine with every route registered.
func New(svc Services) *gin.Engine {
	marketHandler := handlers.NewMarketHandler(svc.Market)
	rationaleHandler := handlers.NewRationaleHandler(svc.Insight)
	picksHandler := handlers.NewPicksHandler(svc.Picks)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	api.GET("/health", handlers.Health(svc.Insight.Configured(), svc.Models.Configured(llm.ProviderGemini)))
	api.GET("/yahoo", marketHandler.GetSnapshot)
	api.POST("/rationale", rationaleHandler.CreateRationale)

	picks := api.Group("/picks")
	picks.GET("", picksHandler.ListPicks)
	picks.POST("/generate", picksHandler.GeneratePicks)
	picks.GET("/daily", picksHandler.DailyPicks)

	router.NoRoute(handlers.NotFound)

	return router
}
