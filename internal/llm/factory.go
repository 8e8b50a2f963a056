package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// NewProvider builds the configured backend and wraps it so callers see:
// timeout, then retry, then logging, then the backend itself. Each retry
// attempt is therefore logged separately. A nil recorder skips persistence.
func NewProvider(ctx context.Context, cfg Config, events Recorder, log zerolog.Logger) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		base Provider
		err  error
	)
	switch cfg.Provider {
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case ProviderOpenRouter:
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case ProviderMock:
		base = NewMockProvider()
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	p := WithLogging(base, events, log)
	p = WithRetry(p, cfg.Retry)
	if cfg.Timeout > 0 {
		p = WithTimeout(p, cfg.Timeout)
	}
	return p, nil
}

// NewProviderFromEnv reads CHESSCOACH_* settings and falls back to the
// vendors' standard key variables when none is set for the chosen provider.
func NewProviderFromEnv(ctx context.Context, events Recorder, log zerolog.Logger) (Provider, error) {
	cfg := ConfigFromEnv()
	if cfg.Provider != ProviderMock && cfg.APIKey() == "" {
		if found, ok := DiscoverConfig(); ok {
			found.Timeout = cfg.Timeout
			cfg = found
		}
	}
	return NewProvider(ctx, cfg, events, log)
}

// TimeoutProvider bounds every Generate call with a deadline.
type TimeoutProvider struct {
	inner   Provider
	timeout time.Duration
}

// WithTimeout wraps a Provider with a per-call deadline.
func WithTimeout(p Provider, d time.Duration) Provider {
	return &TimeoutProvider{inner: p, timeout: d}
}

func (t *TimeoutProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.inner.Generate(ctx, req)
}

func (t *TimeoutProvider) ModelID() string { return t.inner.ModelID() }

func (t *TimeoutProvider) Name() string { return ProviderName(t.inner) }
