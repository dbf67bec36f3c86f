package llm

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Provider names a model backend.
type Provider string

const (
	ProviderOpenAI Provider = "openai"
	ProviderGemini Provider = "gemini"
)

const (
	// GeminiBaseURL is Gemini's OpenAI-compatible endpoint.
	GeminiBaseURL      = "https://generativelanguage.googleapis.com/v1beta/openai"
	DefaultGeminiModel = "gemini-2.5-flash"
)

// ErrUnknownProvider is returned for provider names other than openai and gemini.
var ErrUnknownProvider = errors.New("unknown model provider")

// ParseProvider reads a provider name case-insensitively.
func ParseProvider(s string) (Provider, error) {
	switch p := Provider(strings.ToLower(strings.TrimSpace(s))); p {
	case ProviderOpenAI, ProviderGemini:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownProvider, s)
	}
}

// NewGeminiClient creates a Client against Gemini. An empty baseURL uses
// GeminiBaseURL and an empty model uses DefaultGeminiModel.
func NewGeminiClient(apiKey, model, baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = GeminiBaseURL
	}
	if model == "" {
		model = DefaultGeminiModel
	}
	return NewClient(Config{
		APIKey:      apiKey,
		Model:       model,
		BaseURL:     baseURL,
		Timeout:     timeout,
		Temperature: 0.1,
	})
}

// Registry maps providers to configured clients.
type Registry struct {
	clients map[Provider]Completer
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{clients: make(map[Provider]Completer)}
}

// Register adds a client for p. A nil client is ignored so unconfigured
// providers stay absent.
func (r *Registry) Register(p Provider, c Completer) *Registry {
	if c != nil {
		r.clients[p] = c
	}
	return r
}

// Get returns the client for p.
func (r *Registry) Get(p Provider) (Completer, bool) {
	if r == nil {
		return nil, false
	}
	c, ok := r.clients[p]
	return c, ok
}

// Configured reports whether p has a client.
func (r *Registry) Configured(p Provider) bool {
	_, ok := r.Get(p)
	return ok
}
