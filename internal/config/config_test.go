package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"stockswipe/internal/llm"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "UPSTREAM_TIMEOUT", "PICKS_MAX_AGE", "PICKS_COUNT", "OPENAI_API_KEY", "OPENAI_MODEL", "GEMINI_API_KEY", "GEMINI_MODEL", "PICKS_PROVIDER"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8787" {
		t.Errorf("expected port 8787, got %s", cfg.Port)
	}
	if cfg.UpstreamTimeout != 10*time.Second {
		t.Errorf("expected 10s timeout, got %v", cfg.UpstreamTimeout)
	}
	if cfg.PicksMaxAge != 7*24*time.Hour {
		t.Errorf("expected 168h picks age, got %v", cfg.PicksMaxAge)
	}
	if cfg.PicksCount != 50 {
		t.Errorf("expected 50 picks, got %d", cfg.PicksCount)
	}
	if cfg.OpenAIModel != "gpt-4o-mini" {
		t.Errorf("expected default model, got %s", cfg.OpenAIModel)
	}
	if cfg.HasOpenAIKey() {
		t.Error("expected HasOpenAIKey() = false without OPENAI_API_KEY")
	}
	if cfg.HasGeminiKey() || cfg.GeminiModel != llm.DefaultGeminiModel {
		t.Errorf("unexpected gemini settings: key=%v model=%s", cfg.HasGeminiKey(), cfg.GeminiModel)
	}
	if cfg.PicksProvider != llm.ProviderOpenAI {
		t.Errorf("expected openai picks without a gemini key, got %s", cfg.PicksProvider)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("UPSTREAM_TIMEOUT", "2s")
	t.Setenv("PICKS_COUNT", "10")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("GEMINI_API_KEY", "gm-test")
	t.Setenv("GEMINI_MODEL", "gemini-2.0-flash")
	t.Setenv("PICKS_PROVIDER", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9000" {
		t.Errorf("expected port 9000, got %s", cfg.Port)
	}
	if cfg.UpstreamTimeout != 2*time.Second {
		t.Errorf("expected 2s, got %v", cfg.UpstreamTimeout)
	}
	if cfg.PicksCount != 10 {
		t.Errorf("expected 10, got %d", cfg.PicksCount)
	}
	if !cfg.HasOpenAIKey() {
		t.Error("expected HasOpenAIKey() = true")
	}
	if !cfg.HasGeminiKey() || cfg.GeminiModel != "gemini-2.0-flash" {
		t.Errorf("unexpected gemini settings: key=%v model=%s", cfg.HasGeminiKey(), cfg.GeminiModel)
	}
	if cfg.PicksProvider != llm.ProviderGemini {
		t.Errorf("expected gemini picks when its key is set, got %s", cfg.PicksProvider)
	}

	t.Setenv("PICKS_PROVIDER", "OpenAI")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.PicksProvider != llm.ProviderOpenAI {
		t.Errorf("expected explicit provider to win, got %s", cfg.PicksProvider)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
		want string
	}{
		{"bad_timeout", "UPSTREAM_TIMEOUT", "soon", "UPSTREAM_TIMEOUT"},
		{"negative_timeout", "UPSTREAM_TIMEOUT", "-1s", "must be positive"},
		{"bad_count", "PICKS_COUNT", "many", "PICKS_COUNT"},
		{"zero_count", "PICKS_COUNT", "0", "must be positive"},
		{"unknown_provider", "PICKS_PROVIDER", "claude", "PICKS_PROVIDER"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := Load()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should contain %q", err.Error(), tt.want)
			}
		})
	}
}

func TestLoadClient(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("API_URL", "")
		t.Setenv("DECK_SIZE", "")
		t.Setenv("UPSTREAM_TIMEOUT", "")
		t.Setenv("LOG_LEVEL", "")
		t.Setenv("PICKS_PROVIDER", "")

		cfg, err := LoadClient()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.APIURL != "http://localhost:8787" || cfg.DeckSize != 12 {
			t.Errorf("unexpected defaults %+v", cfg)
		}
		if cfg.LogLevel != "warn" || cfg.PicksProvider != "" {
			t.Errorf("unexpected logging or provider defaults %+v", cfg)
		}
	})

	t.Run("rejects_bad_deck_size", func(t *testing.T) {
		t.Setenv("DECK_SIZE", "-3")
		if _, err := LoadClient(); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}

func TestLoad_LoggingFromDotEnv(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("ENV=production\nLOG_LEVEL=debug\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)
	for _, key := range []string{"ENV", "LOG_LEVEL"} {
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatal(err)
		}
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Env != "production" || cfg.LogLevel != "debug" {
		t.Errorf("expected .env logging settings, got env=%q level=%q", cfg.Env, cfg.LogLevel)
	}
}
