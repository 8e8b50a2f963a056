package llm

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

func newTestAnthropic(t *testing.T, handler http.HandlerFunc) *AnthropicProvider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := anthropic.NewClient(
		option.WithAPIKey("test-key"),
		option.WithBaseURL(srv.URL),
		option.WithMaxRetries(0),
	)
	return &AnthropicProvider{client: &client, model: "claude-haiku-4-5-20251001"}
}

func anthropicReply(w http.ResponseWriter, text, stop string) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"id":          "msg_test",
		"type":        "message",
		"role":        "assistant",
		"content":     []map[string]any{{"type": "text", "text": text}},
		"model":       "claude-haiku-4-5-20251001",
		"stop_reason": stop,
		"usage":       map[string]any{"input_tokens": 40, "output_tokens": 20},
	})
}

func TestAnthropicProvider_StructuredReply(t *testing.T) {
	var body map[string]any
	p := newTestAnthropic(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		json.Unmarshal(raw, &body)
		anthropicReply(w, `{"summary":"Wins a pawn","severity":1}`, "end_turn")
	})

	resp, err := p.Generate(context.Background(), Request{
		System:    "You are a chess coach.",
		Messages:  Conversation{}.User("Explain exd5"),
		Schema:    verdictSchema(),
		MaxTokens: 256,
	})
	if err != nil {
		t.Fatal(err)
	}
	if resp.StopReason != "end" || resp.Usage.TotalTokens != 60 {
		t.Errorf("unexpected response %+v", resp)
	}
	if body["model"] != "claude-haiku-4-5-20251001" {
		t.Errorf("sent model %v", body["model"])
	}
	if msgs, _ := body["messages"].([]any); len(msgs) != 1 {
		t.Errorf("sent %d messages", len(msgs))
	}
}

func TestAnthropicProvider_TruncatedStructuredReply(t *testing.T) {
	p := newTestAnthropic(t, func(w http.ResponseWriter, r *http.Request) {
		anthropicReply(w, `{"summary":"Wins a`, "max_tokens")
	})
	_, err := p.Generate(context.Background(), Request{Messages: Conversation{}.User("x"), Schema: verdictSchema(), MaxTokens: 8})
	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Fatalf("got %v", err)
	}
}

func TestAnthropicProvider_ErrorStatuses(t *testing.T) {
	tests := []struct {
		status int
		check  func(error) bool
	}{
		{http.StatusTooManyRequests, func(e error) bool { var x *ErrRateLimit; return errors.As(e, &x) }},
		{http.StatusInternalServerError, func(e error) bool { var x *ErrProviderUnavailable; return errors.As(e, &x) }},
		{http.StatusUnauthorized, func(e error) bool { var x *ErrRequestRejected; return errors.As(e, &x) }},
	}
	for _, tt := range tests {
		p := newTestAnthropic(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(tt.status)
			json.NewEncoder(w).Encode(map[string]any{
				"type":  "error",
				"error": map[string]any{"type": "api_error", "message": "nope"},
			})
		})
		_, err := p.Generate(context.Background(), Request{Messages: Conversation{}.User("x"), MaxTokens: 16})
		if !tt.check(err) {
			t.Errorf("status %d: got %T %v", tt.status, err, err)
		}
	}
}

func TestAnthropicParams(t *testing.T) {
	conv := Conversation{}.User("Explain Qh5").Assistant("It attacks f7.").User("Is it good?")
	params := anthropicParams("claude-x", Request{
		System:      "coach",
		Messages:    conv,
		MaxTokens:   512,
		Temperature: 0.3,
	})
	if len(params.Messages) != 3 || params.Messages[1].Role != anthropic.MessageParamRoleAssistant {
		t.Errorf("messages = %+v", params.Messages)
	}
	if len(params.System) != 1 || params.System[0].Text != "coach" || params.MaxTokens != 512 {
		t.Errorf("unexpected params %+v", params)
	}
}

func TestResolveModel(t *testing.T) {
	if got := resolveModel("claude-haiku", anthropicModels); got != "claude-haiku-4-5-20251001" {
		t.Errorf("got %q", got)
	}
	if got := resolveModel("claude-opus-4-1-20250805", anthropicModels); got != "claude-opus-4-1-20250805" {
		t.Errorf("pass-through got %q", got)
	}
}
