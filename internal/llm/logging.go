package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/abhisek/chesscoach/internal/store"
)

// Recorder persists LLM request events. store.EventRepo satisfies it.
type Recorder interface {
	AppendLLMRequest(ctx context.Context, data store.LLMRequestEventData) error
}

// LoggingProvider records every call as an event and a debug log line.
type LoggingProvider struct {
	inner  Provider
	events Recorder
	log    zerolog.Logger
}

// WithLogging wraps a Provider with event logging. events may be nil.
func WithLogging(p Provider, events Recorder, log zerolog.Logger) Provider {
	return &LoggingProvider{inner: p, events: events, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)

	data := store.LLMRequestEventData{
		Provider:    ProviderName(l.inner),
		Model:       l.inner.ModelID(),
		Purpose:     PurposeFrom(ctx),
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: serializeRequest(req),
	}
	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		if resp.Model != "" {
			data.Model = resp.Model
		}
		data.ResponseBody = string(resp.Content)
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	l.log.Debug().
		Str("provider", data.Provider).
		Str("model", data.Model).
		Str("purpose", data.Purpose).
		Int64("latency_ms", data.LatencyMs).
		Int("input_tokens", data.InputTokens).
		Int("output_tokens", data.OutputTokens).
		Err(err).
		Msg("llm request")

	if l.events != nil {
		// The caller's context may already be done; the event is still worth keeping.
		if logErr := l.events.AppendLLMRequest(context.WithoutCancel(ctx), data); logErr != nil {
			l.log.Warn().Err(logErr).Msg("failed to record LLM request event")
		}
	}
	return resp, err
}

func (l *LoggingProvider) ModelID() string { return l.inner.ModelID() }

func (l *LoggingProvider) Name() string { return ProviderName(l.inner) }

// serializeRequest renders a request in a readable transcript form.
func serializeRequest(req Request) string {
	var b strings.Builder
	if req.System != "" {
		fmt.Fprintf(&b, "[system]\n%s\n\n", req.System)
	}
	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s]\n%s\n\n", m.Role, m.Content)
	}
	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			fmt.Fprintf(&b, "[schema: %s]\n%s\n", req.Schema.Name, def)
		}
	}
	return b.String()
}
