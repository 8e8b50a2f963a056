package llm

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"CHESSCOACH_LLM_PROVIDER", "CHESSCOACH_ANTHROPIC_API_KEY", "CHESSCOACH_OPENAI_API_KEY",
		"CHESSCOACH_GEMINI_API_KEY", "CHESSCOACH_OPENROUTER_API_KEY", "CHESSCOACH_LLM_TIMEOUT",
		"CHESSCOACH_OPENAI_MODEL", "CHESSCOACH_FRONTEND_URL",
		"ANTHROPIC_API_KEY", "OPENAI_API_KEY", "GEMINI_API_KEY", "OPENROUTER_API_KEY",
	} {
		t.Setenv(k, "")
	}
}

func TestConfigFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("CHESSCOACH_LLM_PROVIDER", "openai")
	t.Setenv("CHESSCOACH_OPENAI_API_KEY", "sk-test")
	t.Setenv("CHESSCOACH_OPENAI_MODEL", "gpt-4.1-mini")
	t.Setenv("CHESSCOACH_LLM_TIMEOUT", "15s")

	cfg := ConfigFromEnv()
	if cfg.Provider != ProviderOpenAI || cfg.OpenAI.APIKey != "sk-test" || cfg.OpenAI.Model != "gpt-4.1-mini" {
		t.Errorf("unexpected config %+v", cfg.OpenAI)
	}
	if cfg.Timeout.String() != "15s" {
		t.Errorf("timeout = %v", cfg.Timeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Error("anthropic without key validated")
	}
	cfg.Provider = ProviderMock
	if err := cfg.Validate(); err != nil {
		t.Errorf("mock: %v", err)
	}
	cfg.Provider = "llama.cpp"
	if err := cfg.Validate(); err == nil {
		t.Error("unknown provider validated")
	}
	cfg = DefaultConfig()
	cfg.Provider = ProviderMock
	cfg.Retry.MaxAttempts = 0
	if err := cfg.Validate(); err == nil {
		t.Error("zero attempts validated")
	}
}

func TestDiscoverConfig(t *testing.T) {
	clearEnv(t)
	if _, ok := DiscoverConfig(); ok {
		t.Fatal("discovered a provider with no keys set")
	}

	t.Setenv("GEMINI_API_KEY", "g")
	t.Setenv("OPENAI_API_KEY", "o")
	cfg, ok := DiscoverConfig()
	if !ok || cfg.Provider != ProviderOpenAI || cfg.OpenAI.APIKey != "o" {
		t.Errorf("got %v %+v", ok, cfg)
	}
}

func TestNewProvider_MockChain(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = ProviderMock
	p, err := NewProvider(context.Background(), cfg, nil, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	if ProviderName(p) != ProviderMock || p.ModelID() != "mock" {
		t.Errorf("name %q model %q", ProviderName(p), p.ModelID())
	}
}

func TestNewProvider_RejectsMissingKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = ProviderOpenRouter
	if _, err := NewProvider(context.Background(), cfg, nil, zerolog.Nop()); err == nil {
		t.Fatal("expected error")
	}
}

func TestNewProviderFromEnv_FallsBackToVendorKeys(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENROUTER_API_KEY", "sk-or")
	p, err := NewProviderFromEnv(context.Background(), nil, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	if ProviderName(p) != ProviderOpenRouter {
		t.Errorf("provider = %q", ProviderName(p))
	}
}
