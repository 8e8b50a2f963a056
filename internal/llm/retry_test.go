package llm

import (
	"context"
	"errors"
	"testing"
	"time"
)

func fastRetry() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2,
	}
}

func TestRetry_TransientThenSuccess(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("502")}},
		MockResponse{Err: &ErrRateLimit{Err: errors.New("429")}},
		MockText("ok"),
	)
	resp, err := WithRetry(mock, fastRetry()).Generate(context.Background(), Request{})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Text() != "ok" || mock.CallCount() != 3 {
		t.Errorf("got %q after %d calls", resp.Text(), mock.CallCount())
	}
}

func TestRetry_GivesUpAfterMaxAttempts(t *testing.T) {
	down := &ErrProviderUnavailable{Err: errors.New("down")}
	mock := NewMockProvider(MockResponse{Err: down}, MockResponse{Err: down}, MockResponse{Err: down}, MockText("late"))
	_, err := WithRetry(mock, fastRetry()).Generate(context.Background(), Request{})
	if !errors.Is(err, down) {
		t.Fatalf("got %v", err)
	}
	if mock.CallCount() != 3 {
		t.Errorf("calls = %d, want 3", mock.CallCount())
	}
}

func TestRetry_NonRetryableErrors(t *testing.T) {
	for name, e := range map[string]error{
		"rejected":   &ErrRequestRejected{StatusCode: 401, Err: errors.New("bad key")},
		"max tokens": &ErrMaxTokensExceeded{},
		"canceled":   context.Canceled,
	} {
		mock := NewMockProvider(MockResponse{Err: e}, MockText("never"))
		if _, err := WithRetry(mock, fastRetry()).Generate(context.Background(), Request{}); err == nil {
			t.Errorf("%s: expected error", name)
		}
		if mock.CallCount() != 1 {
			t.Errorf("%s: calls = %d, want 1", name, mock.CallCount())
		}
	}
}

func TestRetry_InvalidResponseRetriedOnce(t *testing.T) {
	mock := NewMockProvider(
		MockText(`{"summary":"x"}`),
		MockText(`{"summary":"y"}`),
		MockText(`{"summary":"z","severity":1}`),
	)
	_, err := WithRetry(mock, fastRetry()).Generate(context.Background(), Request{Schema: verdictSchema()})
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("got %v, want ErrInvalidResponse", err)
	}
	if mock.CallCount() != 2 {
		t.Errorf("calls = %d, want 2", mock.CallCount())
	}
}

func TestRetry_StopsWhenContextDone(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{}},
		MockText("ok"),
	)
	cfg := fastRetry()
	cfg.InitialWait = time.Hour
	cfg.MaxWait = time.Hour

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := WithRetry(mock, cfg).Generate(ctx, Request{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("got %v", err)
	}
}

func TestRetry_BackoffHonorsRetryAfter(t *testing.T) {
	r := &RetryProvider{config: fastRetry()}
	if got := r.backoff(0, &ErrRateLimit{RetryAfter: 3 * time.Second}); got != 3*time.Second {
		t.Errorf("backoff = %v", got)
	}
	for attempt := range 10 {
		got := r.backoff(attempt, errors.New("x"))
		if got < 0 || got > 6*time.Millisecond {
			t.Errorf("attempt %d: backoff %v outside jittered cap", attempt, got)
		}
	}
}

func TestTimeoutProvider(t *testing.T) {
	p := WithTimeout(blocking{}, 10*time.Millisecond)
	_, err := p.Generate(context.Background(), Request{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("got %v", err)
	}
	if p.ModelID() != "blocking" {
		t.Errorf("model id = %q", p.ModelID())
	}
}

type blocking struct{}

func (blocking) Generate(ctx context.Context, _ Request) (*Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (blocking) ModelID() string { return "blocking" }

func TestClassifyStatus(t *testing.T) {
	base := errors.New("boom")
	tests := []struct {
		status int
		check  func(error) bool
	}{
		{429, func(e error) bool { var x *ErrRateLimit; return errors.As(e, &x) }},
		{500, func(e error) bool { var x *ErrProviderUnavailable; return errors.As(e, &x) }},
		{503, func(e error) bool { var x *ErrProviderUnavailable; return errors.As(e, &x) }},
		{0, func(e error) bool { var x *ErrProviderUnavailable; return errors.As(e, &x) }},
		{400, func(e error) bool { var x *ErrRequestRejected; return errors.As(e, &x) && x.StatusCode == 400 }},
		{404, func(e error) bool { var x *ErrRequestRejected; return errors.As(e, &x) }},
	}
	for _, tt := range tests {
		err := classifyStatus(tt.status, base)
		if !tt.check(err) {
			t.Errorf("status %d mapped to %T", tt.status, err)
		}
		if !errors.Is(err, base) {
			t.Errorf("status %d lost the cause", tt.status)
		}
	}
}
