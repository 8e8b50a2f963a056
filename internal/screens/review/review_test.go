package review

import (
	"context"
	"fmt"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/chesscoach/internal/analysis"
	"github.com/abhisek/chesscoach/internal/coach"
	"github.com/abhisek/chesscoach/internal/llm"
	"github.com/abhisek/chesscoach/internal/store"
)

const analysisID = "a-1"

func openRepo(t *testing.T) store.EventRepo {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	st, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st.EventRepo()
}

func seed(t *testing.T, repo store.EventRepo) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, repo.AppendAnalysis(ctx, store.AnalysisEventData{
		AnalysisID: analysisID,
		Username:   "alice",
		Color:      "white",
		White:      "alice",
		Black:      "bob",
		MoveCount:  2,
	}))
	records := []analysis.MoveRecord{
		{
			Ply: 1, MoveNumber: 1, Move: "e2e4", SAN: "e4",
			FENBefore:        "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
			FENAfter:         "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1",
			EvalBefore:       0.2, EvalAfter: 0.3,
			Classification:   analysis.Good,
			BestMove:         "e2e4",
			CandidatesBefore: []analysis.Candidate{{Move: "e2e4", Score: 0.2}},
		},
		{
			Ply: 3, MoveNumber: 2, Move: "d1h5", SAN: "Qh5",
			FENBefore:        "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2",
			FENAfter:         "rnbqkbnr/pppp1ppp/8/4p2Q/4P3/8/PPPP1PPP/RNB1KBNR b KQkq - 1 2",
			EvalBefore:       0.3, EvalAfter: -0.6,
			Classification:   analysis.Inaccuracy,
			BestMove:         "g1f3",
			BestReply:        "b8c6",
			CandidatesBefore: []analysis.Candidate{{Move: "g1f3", Score: 0.3}},
		},
	}
	require.NoError(t, repo.AppendMoves(ctx, analysisID, analysis.ToMoveEvents(records)))
}

func explanation() llm.MockResponse {
	return llm.MockJSON(coach.Explanation{
		Summary:     "The queen came out too early.",
		Why:         "It can be chased with tempo.",
		BetterPlan:  "Develop the knight first.",
		KeyConcepts: []string{"development"},
	})
}

func loaded(t *testing.T, s *Screen) *Screen {
	t.Helper()
	next, _ := s.Update(s.Init()())
	return next.(*Screen)
}

func TestReview_LoadsMoves(t *testing.T) {
	repo := openRepo(t)
	seed(t, repo)

	s := loaded(t, New(repo, nil, analysisID))
	require.Empty(t, s.errMsg)
	require.Len(t, s.moves, 2)
	assert.Equal(t, "alice vs bob", s.Title())

	view := s.View(120, 30)
	assert.Contains(t, view, "1. e4")
	assert.Contains(t, view, "2. Qh5")
}

func TestReview_MissingAnalysis(t *testing.T) {
	s := loaded(t, New(openRepo(t), nil, "nope"))
	assert.Contains(t, s.errMsg, "not found")
}

func TestReview_ExplainSelectedMove(t *testing.T) {
	repo := openRepo(t)
	seed(t, repo)
	mock := llm.NewMockProvider(explanation())
	svc := coach.NewService(mock, coach.DefaultConfig(), repo, zerolog.Nop())

	s := loaded(t, New(repo, svc, analysisID))
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'e', Text: "e"})
	require.NotNil(t, cmd)
	assert.True(t, s.busy)

	s.Update(cmd())
	assert.False(t, s.busy)
	require.Len(t, s.notes[3], 1)
	assert.Contains(t, s.notes[3][0], "The queen came out too early.")

	req, ok := mock.LastRequest()
	require.True(t, ok)
	assert.Contains(t, req.Messages[0].Content, "Qh5")

	stored, err := repo.QueryExplanations(context.Background(), analysisID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, 3, stored[0].Ply)
	assert.Equal(t, coach.KindMove, stored[0].Kind)

	// Stored explanations come back on the next visit.
	again := loaded(t, New(repo, nil, analysisID))
	assert.Len(t, again.notes[3], 1)
}

func TestReview_ExplainWithoutCoach(t *testing.T) {
	repo := openRepo(t)
	seed(t, repo)

	s := loaded(t, New(repo, nil, analysisID))
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'e', Text: "e"})
	assert.Nil(t, cmd)
	assert.Equal(t, ErrNoCoach.Error(), s.status)
}

func TestReview_AskQuestion(t *testing.T) {
	repo := openRepo(t)
	seed(t, repo)
	mock := llm.NewMockProvider(llm.MockText("Because the knight on b8 can come to c6."))
	svc := coach.NewService(mock, coach.DefaultConfig(), repo, zerolog.Nop())

	s := loaded(t, New(repo, svc, analysisID))
	s.Update(tea.KeyPressMsg{Code: '?', Text: "?"})
	require.True(t, s.Capturing())

	for _, r := range "why?" {
		s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.False(t, s.Capturing())

	s.Update(cmd())
	require.Len(t, s.notes[1], 1)
	assert.Equal(t, "Q: why?\nA: Because the knight on b8 can come to c6.", s.notes[1][0])
	assert.Len(t, s.threads[1].History(), 2)
}

func TestReview_EscCancelsQuestion(t *testing.T) {
	repo := openRepo(t)
	seed(t, repo)
	svc := coach.NewService(llm.NewMockProvider(), coach.DefaultConfig(), nil, zerolog.Nop())

	s := loaded(t, New(repo, svc, analysisID))
	s.Update(tea.KeyPressMsg{Code: '?', Text: "?"})
	require.True(t, s.Capturing())

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Nil(t, cmd)
	assert.False(t, s.Capturing())
}

func TestReview_GameReviewFailureShowsStatus(t *testing.T) {
	repo := openRepo(t)
	seed(t, repo)
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: fmt.Errorf("down")}})
	svc := coach.NewService(mock, coach.DefaultConfig(), nil, zerolog.Nop())

	s := loaded(t, New(repo, svc, analysisID))
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'g', Text: "g"})
	require.NotNil(t, cmd)
	s.Update(cmd())

	assert.Contains(t, s.status, "Explanation failed")
	assert.Empty(t, s.game)
	assert.Contains(t, s.View(120, 30), "No game review yet.")
}

func TestMoveLabel(t *testing.T) {
	black := analysis.MoveRecord{MoveNumber: 2, SAN: "f6", FENBefore: "rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2"}
	assert.Equal(t, "2... f6", moveLabel(black))
}
