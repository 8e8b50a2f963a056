package llm

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/abhisek/chesscoach/internal/store"
)

type memRecorder struct {
	mu     sync.Mutex
	events []store.LLMRequestEventData
	err    error
}

func (m *memRecorder) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, data)
	return m.err
}

func TestLogging_RecordsSuccess(t *testing.T) {
	rec := &memRecorder{}
	mock := NewMockProvider(MockResponse{Content: []byte("Nf3 develops."), Usage: Usage{InputTokens: 12, OutputTokens: 4}})
	p := WithLogging(mock, rec, zerolog.Nop())

	ctx := WithPurpose(context.Background(), PurposeExplainMove)
	if _, err := p.Generate(ctx, Request{System: "coach", Messages: Conversation{}.User("Explain Nf3")}); err != nil {
		t.Fatal(err)
	}

	if len(rec.events) != 1 {
		t.Fatalf("got %d events", len(rec.events))
	}
	ev := rec.events[0]
	if !ev.Success || ev.Purpose != PurposeExplainMove || ev.Provider != ProviderMock || ev.Model != "mock" {
		t.Errorf("unexpected event %+v", ev)
	}
	if ev.InputTokens != 12 || ev.OutputTokens != 4 || ev.ResponseBody != "Nf3 develops." {
		t.Errorf("usage not captured: %+v", ev)
	}
	if !strings.Contains(ev.RequestBody, "[system]\ncoach") || !strings.Contains(ev.RequestBody, "[user]\nExplain Nf3") {
		t.Errorf("request body = %q", ev.RequestBody)
	}
}

func TestLogging_RecordsFailure(t *testing.T) {
	rec := &memRecorder{}
	mock := NewMockProvider(MockResponse{Err: errors.New("boom")})
	_, err := WithLogging(mock, rec, zerolog.Nop()).Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	if rec.events[0].Success || rec.events[0].ErrorMessage != "boom" {
		t.Errorf("unexpected event %+v", rec.events[0])
	}
}

func TestLogging_RecorderFailureIsNotFatal(t *testing.T) {
	rec := &memRecorder{err: errors.New("disk full")}
	mock := NewMockProvider(MockText("fine"))
	resp, err := WithLogging(mock, rec, zerolog.Nop()).Generate(context.Background(), Request{})
	if err != nil || resp.Text() != "fine" {
		t.Fatalf("got %v, %v", resp, err)
	}
}

func TestLogging_NilRecorder(t *testing.T) {
	mock := NewMockProvider(MockText("fine"))
	if _, err := WithLogging(mock, nil, zerolog.Nop()).Generate(context.Background(), Request{}); err != nil {
		t.Fatal(err)
	}
}

func TestLogging_EachRetryIsRecorded(t *testing.T) {
	rec := &memRecorder{}
	mock := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{}}, MockText("ok"))
	p := WithRetry(WithLogging(mock, rec, zerolog.Nop()), fastRetry())
	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatal(err)
	}
	if len(rec.events) != 2 || rec.events[0].Success || !rec.events[1].Success {
		t.Errorf("events = %+v", rec.events)
	}
}

func TestLogging_WritesDebugLine(t *testing.T) {
	var buf strings.Builder
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)
	mock := NewMockProvider(MockText("ok"))
	if _, err := WithLogging(mock, nil, log).Generate(WithPurpose(context.Background(), PurposeAsk), Request{}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"purpose":"ask"`) || !strings.Contains(buf.String(), `"message":"llm request"`) {
		t.Errorf("log = %s", buf.String())
	}
}
