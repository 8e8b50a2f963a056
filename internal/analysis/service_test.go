package analysis

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/abhisek/chesscoach/internal/store"
)

type fakeRecorder struct {
	mu       sync.Mutex
	analyses []store.AnalysisEventData
	moves    map[string][]store.MoveEventData
	err      error
}

func newFakeRecorder() *fakeRecorder {
	return &fakeRecorder{moves: make(map[string][]store.MoveEventData)}
}

func (f *fakeRecorder) AppendAnalysisWithMoves(_ context.Context, data store.AnalysisEventData, moves []store.MoveEventData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.analyses = append(f.analyses, data)
	f.moves[data.AnalysisID] = append(f.moves[data.AnalysisID], moves...)
	return nil
}

func TestService_AnalyzeRecords(t *testing.T) {
	fens := gameFENs(t, scholarsGame)
	ev := NewScriptedEvaluator()
	scriptLevel(ev, fens)
	rec := newFakeRecorder()

	svc := NewService(NewAnalyzer(ev), rec, zerolog.Nop())
	res, err := svc.Analyze(context.Background(), Game{Identity: "alice", PGN: scholarsGame, Source: "http"})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if res.ID == "" {
		t.Fatal("expected an analysis id")
	}

	if len(rec.analyses) != 1 {
		t.Fatalf("recorded %d analyses, want 1", len(rec.analyses))
	}
	a := rec.analyses[0]
	if a.AnalysisID != res.ID || a.Source != "http" || a.Color != "white" || a.MoveCount != 2 || a.PGN != scholarsGame {
		t.Errorf("unexpected analysis event: %+v", a)
	}

	moves := rec.moves[res.ID]
	if len(moves) != 2 || moves[1].UCIMove != "d1h5" || moves[1].Classification != string(Good) {
		t.Errorf("unexpected move events: %+v", moves)
	}

	back := FromMoveEvents([]store.MoveRecord{{MoveEventData: moves[0]}})
	if back[0].Move != res.Records[0].Move || len(back[0].CandidatesBefore) != len(res.Records[0].CandidatesBefore) {
		t.Errorf("round trip mismatch: %+v", back[0])
	}
}

func TestService_RecordFailureKeepsResult(t *testing.T) {
	fens := gameFENs(t, scholarsGame)
	ev := NewScriptedEvaluator()
	scriptLevel(ev, fens)
	rec := newFakeRecorder()
	rec.err = errors.New("disk full")

	res, err := NewService(NewAnalyzer(ev), rec, zerolog.Nop()).
		Analyze(context.Background(), Game{Identity: "alice", PGN: scholarsGame})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(res.Records) != 2 {
		t.Errorf("got %d records", len(res.Records))
	}
}

func TestService_NilRecorder(t *testing.T) {
	fens := gameFENs(t, scholarsGame)
	ev := NewScriptedEvaluator()
	scriptLevel(ev, fens)

	if _, err := NewService(NewAnalyzer(ev), nil, zerolog.Nop()).
		Analyze(context.Background(), Game{Identity: "bob", PGN: scholarsGame}); err != nil {
		t.Fatalf("Analyze: %v", err)
	}
}

func TestService_AnalyzeAll(t *testing.T) {
	ev := NewScriptedEvaluator()
	scriptLevel(ev, gameFENs(t, scholarsGame))
	scriptLevel(ev, gameFENs(t, foolsMate)[:4])
	svc := NewService(NewAnalyzer(ev), nil, zerolog.Nop())

	results, err := svc.AnalyzeAll(context.Background(), []Game{
		{Identity: "alice", PGN: scholarsGame},
		{Identity: "dave", PGN: foolsMate},
		{Identity: "bob", PGN: scholarsGame},
	}, 2)
	if err != nil {
		t.Fatalf("AnalyzeAll: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results", len(results))
	}
	wantColors := []Color{White, Black, Black}
	for i, res := range results {
		if res.Color != wantColors[i] {
			t.Errorf("result %d color = %v, want %v", i, res.Color, wantColors[i])
		}
	}

	_, err = svc.AnalyzeAll(context.Background(), []Game{
		{Identity: "alice", PGN: scholarsGame},
		{Identity: "nobody", PGN: scholarsGame},
	}, 0)
	if !errors.Is(err, ErrIdentityNotFound) {
		t.Errorf("got %v, want ErrIdentityNotFound", err)
	}
}
