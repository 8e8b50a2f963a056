package coach

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/chesscoach/internal/analysis"
	"github.com/abhisek/chesscoach/internal/llm"
	"github.com/abhisek/chesscoach/internal/store"
)

type memRecorder struct {
	events []store.ExplanationEventData
	err    error
}

func (m *memRecorder) AppendExplanation(_ context.Context, data store.ExplanationEventData) error {
	m.events = append(m.events, data)
	return m.err
}

func blunder() analysis.MoveRecord {
	return analysis.MoveRecord{
		Ply:            4,
		MoveNumber:     2,
		Move:           "f7f6",
		SAN:            "f6",
		FENBefore:      "rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2",
		EvalBefore:     -0.3,
		EvalAfter:      1.4,
		Classification: analysis.Blunder,
		BestMove:       "b8c6",
		BestReply:      "f3e5",
		CandidatesBefore: []analysis.Candidate{
			{Move: "b8c6", Score: 0.3},
			{Move: "d7d6", Score: 0.2},
		},
	}
}

func explanationJSON() llm.MockResponse {
	return llm.MockJSON(Explanation{
		Summary:     "f6 weakens the king and loses to Nxe5.",
		Why:         "The pawn no longer protects e5 in practice because Nxe5 fxe5 Qh5+ wins.",
		BetterPlan:  "Nc6 defends e5 and develops.",
		KeyConcepts: []string{"king safety", "development"},
	})
}

func TestExplainMove(t *testing.T) {
	mock := llm.NewMockProvider(explanationJSON())
	rec := &memRecorder{}
	svc := NewService(mock, DefaultConfig(), rec, zerolog.Nop()).ForAnalysis("a-1")

	exp, err := svc.ExplainMove(context.Background(), blunder())
	require.NoError(t, err)
	assert.Equal(t, "Nc6 defends e5 and develops.", exp.BetterPlan)
	assert.Len(t, exp.KeyConcepts, 2)

	req, ok := mock.LastRequest()
	require.True(t, ok)
	assert.Equal(t, MoveExplanationSchema, req.Schema)
	assert.Equal(t, systemPrompt, req.System)
	msg := req.Messages[0].Content
	assert.Contains(t, msg, "2... f6 (f7f6)")
	assert.Contains(t, msg, "Classification: Blunder")
	assert.Contains(t, msg, "Player: black")
	assert.Contains(t, msg, "b8c6 (+0.30)")
	assert.Contains(t, msg, "Opponent's best reply: f3e5")

	require.Len(t, rec.events, 1)
	assert.Equal(t, store.ExplanationEventData{
		AnalysisID: "a-1",
		Ply:        4,
		Kind:       KindMove,
		Summary:    exp.Summary,
		Body:       exp.String(),
	}, rec.events[0])
}

func TestExplainMove_InvalidOutput(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockText(`{"summary":"only a summary"}`))
	rec := &memRecorder{}
	_, err := NewService(mock, DefaultConfig(), rec, zerolog.Nop()).ExplainMove(context.Background(), blunder())

	var invalid *llm.ErrInvalidResponse
	require.ErrorAs(t, err, &invalid)
	assert.Empty(t, rec.events)
}

func TestExplainMove_RecorderFailureIgnored(t *testing.T) {
	mock := llm.NewMockProvider(explanationJSON())
	rec := &memRecorder{err: errors.New("locked")}
	_, err := NewService(mock, DefaultConfig(), rec, zerolog.Nop()).ExplainMove(context.Background(), blunder())
	require.NoError(t, err)
}

func TestExplainGame(t *testing.T) {
	good := blunder()
	good.Ply, good.MoveNumber, good.Move, good.SAN, good.Classification = 2, 1, "e7e5", "e5", analysis.Good

	mock := llm.NewMockProvider(explanationJSON())
	exp, err := NewService(mock, DefaultConfig(), nil, zerolog.Nop()).
		ExplainGame(context.Background(), []analysis.MoveRecord{good, blunder()})
	require.NoError(t, err)
	assert.NotEmpty(t, exp.Summary)

	req, _ := mock.LastRequest()
	assert.Equal(t, GameExplanationSchema, req.Schema)
	msg := req.Messages[0].Content
	assert.Contains(t, msg, "Good=1 Blunder=1")
	assert.Less(t, strings.Index(msg, "1... e5"), strings.Index(msg, "2... f6"))
}

func TestExplainGame_Empty(t *testing.T) {
	mock := llm.NewMockProvider()
	_, err := NewService(mock, DefaultConfig(), nil, zerolog.Nop()).ExplainGame(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNothingToExplain)
	assert.Zero(t, mock.CallCount())
}

func TestExplainReport(t *testing.T) {
	mock := llm.NewMockProvider(explanationJSON())
	rec := &memRecorder{}
	svc := NewService(mock, DefaultConfig(), rec, zerolog.Nop())

	_, err := svc.ExplainReport(context.Background(), "Move 12: Blunder, lost the queen")
	require.NoError(t, err)
	req, _ := mock.LastRequest()
	assert.Contains(t, req.Messages[0].Content, "Move 12: Blunder, lost the queen")
	assert.Equal(t, KindReport, rec.events[0].Kind)

	_, err = svc.ExplainReport(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrNothingToExplain)
}

func TestThread_CarriesHistory(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockText(" Because Nxe5 hits the king. "), llm.MockText("Play Nc6."))
	rec := &memRecorder{}
	th := NewService(mock, DefaultConfig(), rec, zerolog.Nop()).Thread(blunder())

	a1, err := th.Ask(context.Background(), "Why is f6 bad?")
	require.NoError(t, err)
	assert.Equal(t, "Because Nxe5 hits the king.", a1)

	_, err = th.Ask(context.Background(), "What instead?")
	require.NoError(t, err)

	req, _ := mock.LastRequest()
	require.Len(t, req.Messages, 3)
	assert.Contains(t, req.Messages[0].Content, "Question: Why is f6 bad?")
	assert.Equal(t, llm.RoleAssistant, req.Messages[1].Role)
	assert.Equal(t, "What instead?", req.Messages[2].Content)
	assert.Nil(t, req.Schema)

	assert.Len(t, th.History(), 4)
	require.Len(t, rec.events, 2)
	assert.Equal(t, "What instead?", rec.events[1].Question)
	assert.Equal(t, KindAnswer, rec.events[1].Kind)
}

func TestThread_FailedAskLeavesHistory(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	th := NewService(mock, DefaultConfig(), nil, zerolog.Nop()).Thread(blunder())

	_, err := th.Ask(context.Background(), "Why?")
	require.Error(t, err)
	assert.Empty(t, th.History())

	_, err = th.Ask(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrNothingToExplain)
}

func TestSelectMoves_KeepsWorstInOrder(t *testing.T) {
	mk := func(ply int, c analysis.Classification) analysis.MoveRecord {
		return analysis.MoveRecord{Ply: ply, Classification: c}
	}
	recs := []analysis.MoveRecord{
		mk(1, analysis.Good), mk(3, analysis.Blunder), mk(5, analysis.Excellent),
		mk(7, analysis.MissedWin), mk(9, analysis.Inaccuracy),
	}
	got := selectMoves(recs, 3)
	require.Len(t, got, 3)
	assert.Equal(t, []int{3, 7, 9}, []int{got[0].Ply, got[1].Ply, got[2].Ply})
	assert.Len(t, selectMoves(recs, 0), 5)
}

func TestExplanation_String(t *testing.T) {
	e := &Explanation{Summary: "S", Why: "W", KeyConcepts: []string{"a", "b"}}
	assert.Equal(t, "S\n\nWhy: W\n\nKey concepts: a, b", e.String())
}
