package llm

import (
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

const defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

// NewOpenRouterProvider creates a provider for the OpenRouter API, which
// speaks the OpenAI chat completions protocol.
func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openrouter API key is required")
	}

	conf := openai.DefaultConfig(cfg.APIKey)
	conf.BaseURL = cfg.BaseURL
	if conf.BaseURL == "" {
		conf.BaseURL = defaultOpenRouterBaseURL
	}
	conf.HTTPClient = &http.Client{
		Transport: &attributionTransport{
			base:    http.DefaultTransport,
			referer: cfg.Referer,
			title:   cfg.Title,
		},
	}
	return newOpenAIProvider(conf, cfg.Model, ProviderOpenRouter), nil
}

// attributionTransport adds OpenRouter's optional app attribution headers.
type attributionTransport struct {
	base    http.RoundTripper
	referer string
	title   string
}

func (t *attributionTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	if t.referer == "" && t.title == "" {
		return t.base.RoundTrip(r)
	}
	r = r.Clone(r.Context())
	if t.referer != "" {
		r.Header.Set("HTTP-Referer", t.referer)
	}
	if t.title != "" {
		r.Header.Set("X-Title", t.title)
	}
	return t.base.RoundTrip(r)
}
