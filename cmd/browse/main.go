// Command browse is a terminal swipe deck over the instrument catalog. Each
// card shows the live quote and an intraday sparkline and, when the API has
// model credentials, an AI buy/sell insight. A second view lists the weekly
// picks.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"stockswipe/internal/catalog"
	"stockswipe/internal/client"
	"stockswipe/internal/config"
	"stockswipe/internal/deck"
	"stockswipe/internal/logger"
)

func main() {
	cfg, err := config.LoadClient()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.Env, cfg.LogLevel)
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Get().Fatalf("Browse error: %v", err)
	}
}

func run(cfg *config.ClientConfig) error {
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	api := client.NewAPIClient(cfg.APIURL, &http.Client{Timeout: cfg.Timeout})
	health, err := api.Health(ctx)
	if err != nil {
		return fmt.Errorf("API at %s is unreachable: %w", cfg.APIURL, err)
	}

	m := initialModel(ctx, api, deck.NewGenerator(cat.Instruments()), cfg.DeckSize, health.HasOpenAIKey, cfg.PicksProvider)
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()

	// Drop pending low-priority fetches; started ones finish.
	cancel()
	m.scheduler.Wait()
	if err != nil {
		return fmt.Errorf("terminal UI failed: %w", err)
	}
	return nil
}
