package main

import (
	"fmt"
	"net/http"
	"os"

	"stockswipe/internal/catalog"
	"stockswipe/internal/config"
	"stockswipe/internal/database"
	"stockswipe/internal/llm"
	"stockswipe/internal/logger"
	"stockswipe/internal/provider"
	"stockswipe/internal/router"
	"stockswipe/internal/services"
	"stockswipe/internal/validator"
)

// @title           Stock Swipe API
// @version         1.0
// @description     Market snapshots, AI buy/sell insights and weekly popular-stock picks for the swipe-to-browse client.

// @host      localhost:8787
// @BasePath  /api

func main() {
	// Load configuration first so .env can set ENV and LOG_LEVEL.
	appConfig, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger.Init(appConfig.Env, appConfig.LogLevel)
	defer logger.Sync()

	if err := run(appConfig); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run(appConfig *config.Config) error {
	log := logger.Get()

	// Instrument catalog
	cat, err := catalog.Load(appConfig.CatalogPath)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(appConfig.DBDSN)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() { _ = dbManager.Close() }()

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Upstream clients
	yahoo := provider.NewYahooProvider(&http.Client{Timeout: appConfig.UpstreamTimeout}, appConfig.YahooBaseURL)

	var completer llm.Completer
	if appConfig.HasOpenAIKey() {
		completer = llm.NewClient(llm.Config{
			APIKey:      appConfig.OpenAIAPIKey,
			Model:       appConfig.OpenAIModel,
			BaseURL:     appConfig.OpenAIBaseURL,
			Timeout:     appConfig.UpstreamTimeout,
			Temperature: 0.1,
		})
	} else {
		log.Warn("OPENAI_API_KEY not set; insights and openai picks are disabled")
	}
	registry := llm.NewRegistry().Register(llm.ProviderOpenAI, completer)
	if appConfig.HasGeminiKey() {
		registry.Register(llm.ProviderGemini, llm.NewGeminiClient(
			appConfig.GeminiAPIKey, appConfig.GeminiModel, appConfig.GeminiBaseURL, appConfig.UpstreamTimeout))
	}
	if !registry.Configured(appConfig.PicksProvider) {
		log.Warnf("default picks provider %s has no API key; pass ?provider= to generate", appConfig.PicksProvider)
	}

	// Initialize services
	marketService := services.NewMarketDataService(yahoo)
	insightService := services.NewInsightService(completer)
	picksService := services.NewPicksService(dbManager.DB(), registry, marketService, yahoo, cat, services.PicksConfig{
		Count:    appConfig.PicksCount,
		MaxAge:   appConfig.PicksMaxAge,
		Provider: appConfig.PicksProvider,
	})

	validator.Register()
	r := router.New(router.Services{
		Market:  marketService,
		Insight: insightService,
		Picks:   picksService,
		Models:  registry,
	})

	log.Infof("Starting Stock Swipe API on port %s (%d instruments)", appConfig.Port, cat.Len())
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return r.Run(":" + appConfig.Port)
}
