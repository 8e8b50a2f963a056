package llm

import (
	"fmt"
	"os"
	"time"
)

// Provider names accepted by Config.Provider.
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
)

// Config holds all LLM provider configuration.
type Config struct {
	// Provider selects the backend. See the Provider* constants.
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds a single call including retries. Zero disables it.
	Timeout time.Duration
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string

	// Referer and Title identify the app on openrouter.ai rankings.
	Referer string
	Title   string
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider:   ProviderAnthropic,
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-001", Title: "chesscoach"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 60 * time.Second,
	}
}

// ConfigFromEnv builds a Config from CHESSCOACH_* environment variables,
// falling back to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	setString(&cfg.Provider, "CHESSCOACH_LLM_PROVIDER")

	setString(&cfg.Anthropic.APIKey, "CHESSCOACH_ANTHROPIC_API_KEY")
	setString(&cfg.Anthropic.Model, "CHESSCOACH_ANTHROPIC_MODEL")

	setString(&cfg.OpenAI.APIKey, "CHESSCOACH_OPENAI_API_KEY")
	setString(&cfg.OpenAI.Model, "CHESSCOACH_OPENAI_MODEL")
	setString(&cfg.OpenAI.BaseURL, "CHESSCOACH_OPENAI_BASE_URL")

	setString(&cfg.Gemini.APIKey, "CHESSCOACH_GEMINI_API_KEY")
	setString(&cfg.Gemini.Model, "CHESSCOACH_GEMINI_MODEL")

	setString(&cfg.OpenRouter.APIKey, "CHESSCOACH_OPENROUTER_API_KEY")
	setString(&cfg.OpenRouter.Model, "CHESSCOACH_OPENROUTER_MODEL")
	setString(&cfg.OpenRouter.Referer, "CHESSCOACH_FRONTEND_URL")

	if v := os.Getenv("CHESSCOACH_LLM_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Timeout = d
		}
	}

	return cfg
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// DiscoverConfig probes the vendors' standard API key variables in
// priority order and returns a Config for the first one found.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	switch {
	case os.Getenv("ANTHROPIC_API_KEY") != "":
		cfg.Provider = ProviderAnthropic
		cfg.Anthropic.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	case os.Getenv("OPENAI_API_KEY") != "":
		cfg.Provider = ProviderOpenAI
		cfg.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
	case os.Getenv("GEMINI_API_KEY") != "":
		cfg.Provider = ProviderGemini
		cfg.Gemini.APIKey = os.Getenv("GEMINI_API_KEY")
	case os.Getenv("OPENROUTER_API_KEY") != "":
		cfg.Provider = ProviderOpenRouter
		cfg.OpenRouter.APIKey = os.Getenv("OPENROUTER_API_KEY")
	default:
		return Config{}, false
	}
	return cfg, true
}

// APIKey returns the key configured for the selected provider.
func (c Config) APIKey() string {
	switch c.Provider {
	case ProviderAnthropic:
		return c.Anthropic.APIKey
	case ProviderOpenAI:
		return c.OpenAI.APIKey
	case ProviderGemini:
		return c.Gemini.APIKey
	case ProviderOpenRouter:
		return c.OpenRouter.APIKey
	}
	return ""
}

// Validate checks that the selected provider has its required API key set.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderAnthropic, ProviderOpenAI, ProviderGemini, ProviderOpenRouter:
		if c.APIKey() == "" {
			return fmt.Errorf("an API key is required for the %s provider", c.Provider)
		}
	case ProviderMock:
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if c.Retry.MaxAttempts < 1 {
		return fmt.Errorf("retry max attempts must be at least 1, got %d", c.Retry.MaxAttempts)
	}
	return nil
}
