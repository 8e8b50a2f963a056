package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestConversation_AppendsWithoutAliasing(t *testing.T) {
	base := Conversation{}.User("Why is Nf3 good?").Assistant("It develops.")
	a := base.User("And Bc4?")
	b := base.User("And d4?")

	if len(base) != 2 {
		t.Fatalf("base grew to %d messages", len(base))
	}
	if a[2].Content != "And Bc4?" || b[2].Content != "And d4?" {
		t.Fatalf("branches share storage: %q / %q", a[2].Content, b[2].Content)
	}
	if a[1].Role != RoleAssistant || a[0].Role != RoleUser {
		t.Errorf("unexpected roles: %+v", a)
	}
}

func TestResponse_Decode(t *testing.T) {
	resp := &Response{Content: json.RawMessage(`{"summary":"ok","severity":1}`)}
	var v struct {
		Summary  string `json:"summary"`
		Severity int    `json:"severity"`
	}
	if err := resp.Decode(&v); err != nil {
		t.Fatal(err)
	}
	if v.Summary != "ok" || v.Severity != 1 {
		t.Errorf("decoded %+v", v)
	}

	bad := &Response{Content: json.RawMessage(`not json`)}
	var invalid *ErrInvalidResponse
	if err := bad.Decode(&v); !errors.As(err, &invalid) {
		t.Errorf("got %v, want ErrInvalidResponse", err)
	}
}

func TestFinish_TruncatedStructuredOutput(t *testing.T) {
	_, err := finish(Request{Schema: verdictSchema()}, json.RawMessage(`{"summ`), Usage{}, "m", "max_tokens")
	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Fatalf("got %v, want ErrMaxTokensExceeded", err)
	}
}

func TestFinish_TruncatedTextIsKept(t *testing.T) {
	resp, err := finish(Request{}, json.RawMessage(`The knight on f3 controls`), Usage{TotalTokens: 5}, "m", "max_tokens")
	if err != nil {
		t.Fatal(err)
	}
	if resp.StopReason != "max_tokens" || resp.Text() != "The knight on f3 controls" {
		t.Errorf("unexpected response %+v", resp)
	}
}

func TestMockProvider_FIFOAndRecording(t *testing.T) {
	mock := NewMockProvider(MockText("first"), MockJSON(map[string]any{"summary": "second", "severity": 0}))

	r1, err := mock.Generate(context.Background(), Request{Messages: Conversation{}.User("a")})
	if err != nil {
		t.Fatal(err)
	}
	r2, err := mock.Generate(context.Background(), Request{Messages: Conversation{}.User("b"), Schema: verdictSchema()})
	if err != nil {
		t.Fatal(err)
	}
	if r1.Text() != "first" || r2.Model != "mock" {
		t.Errorf("unexpected responses %q %+v", r1.Text(), r2)
	}
	if mock.CallCount() != 2 {
		t.Errorf("call count = %d", mock.CallCount())
	}
	last, ok := mock.LastRequest()
	if !ok || last.Messages[0].Content != "b" {
		t.Errorf("last request = %+v", last)
	}

	_, err = mock.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Errorf("empty queue: got %v", err)
	}
}

func TestMockProvider_ValidatesAgainstSchema(t *testing.T) {
	mock := NewMockProvider(MockText(`{"summary":"x"}`))
	_, err := mock.Generate(context.Background(), Request{Schema: verdictSchema()})
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("got %v, want ErrInvalidResponse", err)
	}
}

func TestProviderName(t *testing.T) {
	if got := ProviderName(NewMockProvider()); got != ProviderMock {
		t.Errorf("got %q", got)
	}
	if got := ProviderName(unnamed{}); got != "bare-model" {
		t.Errorf("unnamed provider: got %q", got)
	}
}

type unnamed struct{}

func (unnamed) Generate(context.Context, Request) (*Response, error) { return nil, nil }
func (unnamed) ModelID() string                                      { return "bare-model" }

func TestPurposeContext(t *testing.T) {
	if got := PurposeFrom(context.Background()); got != "unknown" {
		t.Errorf("default purpose = %q", got)
	}
	ctx := WithPurpose(context.Background(), PurposeExplainMove)
	if got := PurposeFrom(ctx); got != PurposeExplainMove {
		t.Errorf("purpose = %q", got)
	}
}

func TestLookupCost(t *testing.T) {
	c := LookupCost("gpt-4o-mini")
	if c == nil {
		t.Fatal("gpt-4o-mini not priced")
	}
	if got := c.Cost(1_000_000, 1_000_000); got != 0.75 {
		t.Errorf("cost = %v, want 0.75", got)
	}
	if LookupCost("no-such-model") != nil {
		t.Error("unknown model priced")
	}
}
