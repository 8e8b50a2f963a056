package store

import (
	"context"
	"fmt"
	"strings"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}

	first, err := s.seq.Reserve(ctx, 3)
	if err != nil {
		t.Fatalf("reserve: %v", err)
	}
	if first != 6 {
		t.Errorf("reserve returned %d, want 6", first)
	}
	if next, _ := s.seq.Next(ctx); next != 9 {
		t.Errorf("next after reserve = %d, want 9", next)
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"analysis_events", "move_events", "explanation_events", "llm_request_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}

func seedAnalysis(t *testing.T, repo EventRepo, id, user string, labels ...string) {
	t.Helper()
	ctx := context.Background()

	err := repo.AppendAnalysis(ctx, AnalysisEventData{
		AnalysisID: id,
		Username:   user,
		Color:      "white",
		White:      user,
		Black:      "opponent",
		PGN:        "1. e4 e5 *",
		MoveCount:  len(labels),
	})
	if err != nil {
		t.Fatalf("append analysis: %v", err)
	}

	var moves []MoveEventData
	for i, l := range labels {
		mate := 2
		moves = append(moves, MoveEventData{
			Ply:              2*i + 1,
			MoveNumber:       i + 1,
			UCIMove:          "e2e4",
			SAN:              "e4",
			FENBefore:        "before",
			FENAfter:         "after",
			EvalBefore:       0.1,
			EvalAfter:        -0.2,
			Classification:   l,
			BestMove:         "d2d4",
			CandidatesBefore: []Candidate{{Move: "d2d4", Score: 0.3}, {Move: "g1f3", Mate: &mate}},
		})
	}
	if err := repo.AppendMoves(ctx, id, moves); err != nil {
		t.Fatalf("append moves: %v", err)
	}
}

func TestAnalysisRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	seedAnalysis(t, repo, "a-1", "Alice", "Good", "Blunder")

	rec, moves, err := repo.GetAnalysis(ctx, "a-1")
	if err != nil {
		t.Fatalf("get analysis: %v", err)
	}
	if rec == nil {
		t.Fatal("expected analysis record")
	}
	if rec.Username != "Alice" || rec.Source != "cli" || rec.MoveCount != 2 {
		t.Errorf("unexpected record: %+v", rec.AnalysisEventData)
	}
	if len(moves) != 2 {
		t.Fatalf("got %d moves, want 2", len(moves))
	}
	if moves[0].Ply != 1 || moves[1].Ply != 3 {
		t.Errorf("moves out of order: %d, %d", moves[0].Ply, moves[1].Ply)
	}
	if moves[1].Classification != "Blunder" {
		t.Errorf("classification = %q", moves[1].Classification)
	}
	pv := moves[0].CandidatesBefore
	if len(pv) != 2 || pv[1].Mate == nil || *pv[1].Mate != 2 {
		t.Errorf("candidates not preserved: %+v", pv)
	}
}

func TestGetAnalysisMissing(t *testing.T) {
	s := openTestStore(t)
	rec, moves, err := s.EventRepo().GetAnalysis(context.Background(), "nope")
	if err != nil {
		t.Fatalf("get analysis: %v", err)
	}
	if rec != nil || moves != nil {
		t.Error("expected nil for a missing analysis")
	}
}

func TestAppendAnalysisWithMoves(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendAnalysisWithMoves(ctx, AnalysisEventData{
		AnalysisID: "a-tx",
		Username:   "Bob",
		Color:      "black",
		White:      "Alice",
		Black:      "Bob",
		MoveCount:  1,
	}, []MoveEventData{{
		Ply: 2, MoveNumber: 1, UCIMove: "e7e5", SAN: "e5",
		FENBefore: "before", FENAfter: "after", Classification: "Good",
	}})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	rec, moves, err := repo.GetAnalysis(ctx, "a-tx")
	if err != nil {
		t.Fatalf("get analysis: %v", err)
	}
	if rec == nil || len(moves) != 1 || moves[0].UCIMove != "e7e5" {
		t.Fatalf("unexpected analysis: %+v, %+v", rec, moves)
	}
	if moves[0].Sequence <= rec.Sequence {
		t.Errorf("move sequence %d not after analysis sequence %d", moves[0].Sequence, rec.Sequence)
	}
}

func TestAppendAnalysisWithMovesRollsBack(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	// The second move has no UCI move and fails validation.
	err := repo.AppendAnalysisWithMoves(ctx, AnalysisEventData{
		AnalysisID: "a-bad",
		Username:   "Alice",
		Color:      "white",
		White:      "Alice",
		Black:      "Bob",
		MoveCount:  2,
	}, []MoveEventData{
		{Ply: 1, MoveNumber: 1, UCIMove: "e2e4", FENBefore: "before", FENAfter: "after", Classification: "Good"},
		{Ply: 3, MoveNumber: 2, FENBefore: "before", FENAfter: "after", Classification: "Good"},
	})
	if err == nil {
		t.Fatal("expected an error for an invalid move")
	}

	rec, moves, err := repo.GetAnalysis(ctx, "a-bad")
	if err != nil {
		t.Fatalf("get analysis: %v", err)
	}
	if rec != nil || len(moves) != 0 {
		t.Errorf("partial analysis left behind: %+v, %d moves", rec, len(moves))
	}

	// The store stays usable after the rollback.
	seedAnalysis(t, repo, "a-good", "Alice", "Good")
}

func TestQueryAnalysesNewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	seedAnalysis(t, repo, "a-1", "alice", "Good")
	seedAnalysis(t, repo, "a-2", "bob", "Good")
	seedAnalysis(t, repo, "a-3", "Alice", "Mistake")

	all, err := repo.QueryAnalyses(ctx, "", QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(all) != 3 || all[0].AnalysisID != "a-3" {
		t.Fatalf("unexpected order: %+v", all)
	}

	alice, err := repo.QueryAnalyses(ctx, "ALICE", QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query alice: %v", err)
	}
	if len(alice) != 1 || alice[0].AnalysisID != "a-3" {
		t.Errorf("got %+v", alice)
	}
}

func TestClassificationCounts(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	seedAnalysis(t, repo, "a-1", "alice", "Good", "Blunder", "Good")
	seedAnalysis(t, repo, "a-2", "bob", "Brilliant")

	counts, err := repo.ClassificationCounts(ctx, "alice")
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	if counts["Good"] != 2 || counts["Blunder"] != 1 || counts["Brilliant"] != 0 {
		t.Errorf("alice counts = %v", counts)
	}

	all, err := repo.ClassificationCounts(ctx, "")
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	if all["Brilliant"] != 1 || all["Good"] != 2 {
		t.Errorf("all counts = %v", all)
	}

	none, err := repo.ClassificationCounts(ctx, "carol")
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("carol counts = %v", none)
	}
}

func TestExplanations(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, e := range []ExplanationEventData{
		{AnalysisID: "a-1", Ply: 3, Kind: "move", Summary: "Hung the queen"},
		{AnalysisID: "a-1", Ply: 3, Kind: "question", Question: "Why?", Summary: "Because"},
		{AnalysisID: "a-2", Kind: "game", Summary: "Other game"},
	} {
		if err := repo.AppendExplanation(ctx, e); err != nil {
			t.Fatalf("append explanation: %v", err)
		}
	}

	got, err := repo.QueryExplanations(ctx, "a-1")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d explanations, want 2", len(got))
	}
	if got[0].Kind != "move" || got[1].Question != "Why?" {
		t.Errorf("unexpected explanations: %+v", got)
	}
}

func TestLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "mock", Model: "m1", Purpose: "explain-move", InputTokens: 10, OutputTokens: 5, LatencyMs: 100, Success: true, RequestBody: "{}"},
		{Provider: "mock", Model: "m1", Purpose: "explain-move", InputTokens: 20, OutputTokens: 5, LatencyMs: 300, Success: true},
		{Provider: "mock", Model: "m2", Purpose: "ask", InputTokens: 1, OutputTokens: 1, Success: false, ErrorMessage: "boom"},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	list, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(list) != 2 || list[0].Purpose != "ask" {
		t.Fatalf("unexpected list: %+v", list)
	}

	e, err := repo.GetLLMEvent(ctx, list[1].ID)
	if err != nil || e == nil {
		t.Fatalf("get: %v %v", e, err)
	}
	if missing, err := repo.GetLLMEvent(ctx, 9999); err != nil || missing != nil {
		t.Errorf("missing event: %v %v", missing, err)
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("got %d purposes", len(byPurpose))
	}
	explain := byPurpose[1]
	if explain.Purpose != "explain-move" || explain.Calls != 2 || explain.InputTokens != 30 || explain.AvgLatencyMs != 200 {
		t.Errorf("explain usage = %+v", explain)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("model usage: %v", err)
	}
	if len(byModel) != 2 || byModel[0].Model != "m1" || byModel[0].Calls != 2 {
		t.Errorf("model usage = %+v", byModel)
	}
}

func TestReset(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	seedAnalysis(t, repo, "a-1", "alice", "Good")
	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{Provider: "mock", Model: "m", Purpose: "ask", Success: true}); err != nil {
		t.Fatalf("append: %v", err)
	}

	if err := repo.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	all, err := repo.QueryAnalyses(ctx, "", QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("%d analyses survived reset", len(all))
	}
	counts, _ := repo.ClassificationCounts(ctx, "")
	if len(counts) != 0 {
		t.Errorf("moves survived reset: %v", counts)
	}
}
