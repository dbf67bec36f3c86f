package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"stockswipe/internal/llm"
)

// Config holds application configuration
type Config struct {
	// Server
	Port     string
	Env      string
	LogLevel string

	// Upstream market data
	YahooBaseURL    string
	UpstreamTimeout time.Duration
	CatalogPath     string

	// Model
	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string
	GeminiAPIKey  string
	GeminiModel   string
	GeminiBaseURL string

	// Weekly picks
	PicksCount    int
	PicksMaxAge   time.Duration
	PicksProvider llm.Provider
	DBDSN         string
}

// HasOpenAIKey reports whether OpenAI credentials are configured.
func (c *Config) HasOpenAIKey() bool {
	return c.OpenAIAPIKey != ""
}

// HasGeminiKey reports whether Gemini credentials are configured.
func (c *Config) HasGeminiKey() bool {
	return c.GeminiAPIKey != ""
}

// Load loads configuration from environment variables, reading a .env file
// first when one is present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Port:     getEnv("PORT", "8787"),
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", ""),

		YahooBaseURL: getEnv("YAHOO_BASE_URL", "https://query1.finance.yahoo.com"),
		CatalogPath:  getEnv("CATALOG_PATH", ""),

		OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAIBaseURL: getEnv("OPENAI_BASE_URL", ""),
		GeminiAPIKey:  getEnv("GEMINI_API_KEY", ""),
		GeminiModel:   getEnv("GEMINI_MODEL", llm.DefaultGeminiModel),
		GeminiBaseURL: getEnv("GEMINI_BASE_URL", llm.GeminiBaseURL),

		DBDSN: getEnv("DB_DSN", "file:stockswipe?mode=memory&cache=shared"),
	}

	var err error
	if config.UpstreamTimeout, err = parseDuration("UPSTREAM_TIMEOUT", "10s"); err != nil {
		return nil, err
	}
	if config.PicksMaxAge, err = parseDuration("PICKS_MAX_AGE", "168h"); err != nil {
		return nil, err
	}
	if config.PicksCount, err = parsePositiveInt("PICKS_COUNT", 50); err != nil {
		return nil, err
	}

	// Picks default to Gemini when its key is present.
	defaultProvider := string(llm.ProviderOpenAI)
	if config.HasGeminiKey() {
		defaultProvider = string(llm.ProviderGemini)
	}
	if config.PicksProvider, err = llm.ParseProvider(getEnv("PICKS_PROVIDER", defaultProvider)); err != nil {
		return nil, fmt.Errorf("invalid PICKS_PROVIDER: %w", err)
	}

	return config, nil
}

// ClientConfig holds settings for the terminal browsing client.
type ClientConfig struct {
	APIURL      string
	DeckSize    int
	CatalogPath string
	Timeout     time.Duration
	// PicksProvider is passed through on generation; empty lets the API choose.
	PicksProvider string

	Env      string
	LogLevel string
}

// LoadClient loads the browsing client's configuration from the environment.
func LoadClient() (*ClientConfig, error) {
	_ = godotenv.Load()

	config := &ClientConfig{
		APIURL:        getEnv("API_URL", "http://localhost:8787"),
		CatalogPath:   getEnv("CATALOG_PATH", ""),
		PicksProvider: getEnv("PICKS_PROVIDER", ""),
		Env:           getEnv("ENV", "development"),
		// The terminal stays quiet unless LOG_LEVEL asks otherwise.
		LogLevel: getEnv("LOG_LEVEL", "warn"),
	}

	var err error
	if config.DeckSize, err = parsePositiveInt("DECK_SIZE", 12); err != nil {
		return nil, err
	}
	if config.Timeout, err = parseDuration("UPSTREAM_TIMEOUT", "10s"); err != nil {
		return nil, err
	}
	return config, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(key, defaultValue string) (time.Duration, error) {
	s := getEnv(key, defaultValue)
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, s, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %v", key, d)
	}
	return d, nil
}

func parsePositiveInt(key string, defaultValue int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, s, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %d", key, n)
	}
	return n, nil
}
