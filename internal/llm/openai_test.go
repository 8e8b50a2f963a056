package llm

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

func openAIReply(w http.ResponseWriter, content string, finish openai.FinishReason) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"id":     "chatcmpl-test",
		"object": "chat.completion",
		"model":  "gpt-4o-mini-2024-07-18",
		"choices": []map[string]any{{
			"index":         0,
			"message":       map[string]any{"role": "assistant", "content": content},
			"finish_reason": finish,
		}},
		"usage": map[string]any{"prompt_tokens": 30, "completion_tokens": 10, "total_tokens": 40},
	})
}

func newTestOpenAI(t *testing.T, handler http.HandlerFunc) *OpenAIProvider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	p, err := NewOpenAIProvider(OpenAIConfig{APIKey: "sk-test", Model: "gpt-4o-mini", BaseURL: srv.URL})
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestOpenAIProvider_StructuredReply(t *testing.T) {
	var sent struct {
		Messages       []openai.ChatCompletionMessage `json:"messages"`
		ResponseFormat *struct {
			Type string `json:"type"`
		} `json:"response_format"`
	}
	p := newTestOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		json.Unmarshal(raw, &sent)
		openAIReply(w, `{"summary":"Develops a piece","severity":0}`, openai.FinishReasonStop)
	})

	resp, err := p.Generate(context.Background(), Request{
		System:   "coach",
		Messages: Conversation{}.User("Explain Nc3"),
		Schema:   verdictSchema(),
	})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Model != "gpt-4o-mini-2024-07-18" || resp.Usage.TotalTokens != 40 || resp.StopReason != "end" {
		t.Errorf("unexpected response %+v", resp)
	}
	if len(sent.Messages) != 2 || sent.Messages[0].Role != openai.ChatMessageRoleSystem {
		t.Errorf("sent messages %+v", sent.Messages)
	}
	if sent.ResponseFormat == nil || sent.ResponseFormat.Type != "json_schema" {
		t.Errorf("response format %+v", sent.ResponseFormat)
	}
}

func TestOpenAIProvider_PlainTextLength(t *testing.T) {
	p := newTestOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
		openAIReply(w, "The bishop pair gives", openai.FinishReasonLength)
	})
	resp, err := p.Generate(context.Background(), Request{Messages: Conversation{}.User("x")})
	if err != nil {
		t.Fatal(err)
	}
	if resp.StopReason != "max_tokens" || resp.Text() != "The bishop pair gives" {
		t.Errorf("unexpected response %+v", resp)
	}
}

func TestOpenAIProvider_NoChoices(t *testing.T) {
	p := newTestOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"x","object":"chat.completion","model":"m","choices":[]}`))
	})
	_, err := p.Generate(context.Background(), Request{Messages: Conversation{}.User("x")})
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("got %v", err)
	}
}

func TestOpenAIProvider_ErrorStatuses(t *testing.T) {
	for status, check := range map[int]func(error) bool{
		http.StatusTooManyRequests:    func(e error) bool { var x *ErrRateLimit; return errors.As(e, &x) },
		http.StatusServiceUnavailable: func(e error) bool { var x *ErrProviderUnavailable; return errors.As(e, &x) },
		http.StatusBadRequest:         func(e error) bool { var x *ErrRequestRejected; return errors.As(e, &x) },
	} {
		p := newTestOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			w.Write([]byte(`{"error":{"message":"nope","type":"invalid_request_error"}}`))
		})
		_, err := p.Generate(context.Background(), Request{Messages: Conversation{}.User("x")})
		if !check(err) {
			t.Errorf("status %d: got %T %v", status, err, err)
		}
	}
}

func TestOpenRouterProvider_SendsAttribution(t *testing.T) {
	var referer, title, auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		referer, title, auth = r.Header.Get("HTTP-Referer"), r.Header.Get("X-Title"), r.Header.Get("Authorization")
		openAIReply(w, "ok", openai.FinishReasonStop)
	}))
	t.Cleanup(srv.Close)

	p, err := NewOpenRouterProvider(OpenRouterConfig{
		APIKey:  "sk-or-test",
		Model:   "google/gemini-2.0-flash-001",
		BaseURL: srv.URL,
		Referer: "https://coach.example",
		Title:   "chesscoach",
	})
	if err != nil {
		t.Fatal(err)
	}
	if p.Name() != ProviderOpenRouter || p.ModelID() != "google/gemini-2.0-flash-001" {
		t.Errorf("name %q model %q", p.Name(), p.ModelID())
	}
	if _, err := p.Generate(context.Background(), Request{Messages: Conversation{}.User("x")}); err != nil {
		t.Fatal(err)
	}
	if referer != "https://coach.example" || title != "chesscoach" || auth != "Bearer sk-or-test" {
		t.Errorf("headers referer=%q title=%q auth=%q", referer, title, auth)
	}
}

func TestOpenRouterProvider_RequiresKey(t *testing.T) {
	if _, err := NewOpenRouterProvider(OpenRouterConfig{Model: "x"}); err == nil {
		t.Fatal("expected error")
	}
}
