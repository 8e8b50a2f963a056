package coach

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/abhisek/chesscoach/internal/analysis"
	"github.com/abhisek/chesscoach/internal/llm"
	"github.com/abhisek/chesscoach/internal/store"
)

// ErrNothingToExplain is returned for an empty game or report.
var ErrNothingToExplain = errors.New("nothing to explain")

// Recorder persists explanations. store.EventRepo satisfies it.
type Recorder interface {
	AppendExplanation(ctx context.Context, data store.ExplanationEventData) error
}

// Service turns analysis output into coaching text.
type Service struct {
	provider   llm.Provider
	cfg        Config
	events     Recorder
	log        zerolog.Logger
	analysisID string
}

// NewService creates a coach. events may be nil.
func NewService(provider llm.Provider, cfg Config, events Recorder, log zerolog.Logger) *Service {
	return &Service{provider: provider, cfg: cfg, events: events, log: log}
}

// ForAnalysis returns a copy of the service whose explanations are
// recorded against the given stored analysis.
func (s *Service) ForAnalysis(id string) *Service {
	c := *s
	c.analysisID = id
	return &c
}

// ExplainMove explains one classified move.
func (s *Service) ExplainMove(ctx context.Context, rec analysis.MoveRecord) (*Explanation, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeExplainMove)
	exp, err := s.structured(ctx, buildMoveMessage(rec), MoveExplanationSchema, s.cfg.MoveMaxTokens)
	if err != nil {
		return nil, fmt.Errorf("explain move %s: %w", rec.Move, err)
	}
	s.record(ctx, store.ExplanationEventData{Ply: rec.Ply, Kind: KindMove, Summary: exp.Summary, Body: exp.String()})
	return exp, nil
}

// ExplainGame reviews all tracked moves of a game.
func (s *Service) ExplainGame(ctx context.Context, records []analysis.MoveRecord) (*Explanation, error) {
	if len(records) == 0 {
		return nil, ErrNothingToExplain
	}
	ctx = llm.WithPurpose(ctx, llm.PurposeExplainGame)
	exp, err := s.structured(ctx, buildGameMessage(records, s.cfg.MaxGameMoves), GameExplanationSchema, s.cfg.GameMaxTokens)
	if err != nil {
		return nil, fmt.Errorf("explain game: %w", err)
	}
	s.record(ctx, store.ExplanationEventData{Kind: KindGame, Summary: exp.Summary, Body: exp.String()})
	return exp, nil
}

// ExplainReport explains a free-form analysis report, as sent by clients
// that post their own rendering of the analysis.
func (s *Service) ExplainReport(ctx context.Context, report string) (*Explanation, error) {
	if strings.TrimSpace(report) == "" {
		return nil, ErrNothingToExplain
	}
	ctx = llm.WithPurpose(ctx, llm.PurposeExplainGame)
	exp, err := s.structured(ctx, buildReportMessage(report), GameExplanationSchema, s.cfg.GameMaxTokens)
	if err != nil {
		return nil, fmt.Errorf("explain report: %w", err)
	}
	s.record(ctx, store.ExplanationEventData{Kind: KindReport, Summary: exp.Summary, Body: exp.String()})
	return exp, nil
}

// Ask answers a single question about a move.
func (s *Service) Ask(ctx context.Context, rec analysis.MoveRecord, question string) (string, error) {
	return s.Thread(rec).Ask(ctx, question)
}

func (s *Service) structured(ctx context.Context, msg string, schema *llm.Schema, maxTokens int) (*Explanation, error) {
	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Messages:    llm.Conversation{}.User(msg),
		Schema:      schema,
		MaxTokens:   maxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return nil, err
	}
	var exp Explanation
	if err := resp.Decode(&exp); err != nil {
		return nil, err
	}
	return &exp, nil
}

func (s *Service) record(ctx context.Context, data store.ExplanationEventData) {
	if s.events == nil {
		return
	}
	data.AnalysisID = s.analysisID
	if err := s.events.AppendExplanation(context.WithoutCancel(ctx), data); err != nil {
		s.log.Warn().Err(err).Str("kind", data.Kind).Msg("failed to record explanation")
	}
}

// Thread is a follow-up conversation about one move. Each answer is
// appended to the history sent with the next question.
type Thread struct {
	svc *Service
	rec analysis.MoveRecord

	mu   sync.Mutex
	conv llm.Conversation
}

// Thread starts a conversation about rec.
func (s *Service) Thread(rec analysis.MoveRecord) *Thread {
	return &Thread{svc: s, rec: rec}
}

// Ask sends a question and returns the coach's plain-text answer.
func (t *Thread) Ask(ctx context.Context, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", ErrNothingToExplain
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	conv := t.conv
	if len(conv) == 0 {
		conv = conv.User(buildQuestionContext(t.rec) + "\nQuestion: " + question)
	} else {
		conv = conv.User(question)
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeAsk)
	resp, err := t.svc.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Messages:    conv,
		MaxTokens:   t.svc.cfg.AnswerMaxTokens,
		Temperature: t.svc.cfg.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("ask about %s: %w", t.rec.Move, err)
	}

	answer := strings.TrimSpace(resp.Text())
	t.conv = conv.Assistant(answer)
	t.svc.record(ctx, store.ExplanationEventData{Ply: t.rec.Ply, Kind: KindAnswer, Question: question, Body: answer})
	return answer, nil
}

// History returns the conversation so far.
func (t *Thread) History() llm.Conversation {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append(llm.Conversation(nil), t.conv...)
}
