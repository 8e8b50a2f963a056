package analysis

import (
	"context"
	"errors"
	"math"
	"testing"
)

const scholarsGame = `[Event "Casual"]
[Site "?"]
[Date "2024.03.01"]
[White "Alice"]
[Black "Bob"]
[Result "*"]

1. e4 e5 2. Qh5 Nc6 *`

const foolsMate = `[White "Carol"]
[Black "dave"]
[Result "0-1"]

1. f3 e5 2. g4 Qh4# 0-1`

// gameFENs returns the FEN of every position reached in the game, starting
// with the initial one.
func gameFENs(t *testing.T, pgn string) []string {
	t.Helper()
	game, err := ParseGame(pgn)
	if err != nil {
		t.Fatalf("ParseGame: %v", err)
	}
	var fens []string
	for _, pos := range game.Positions() {
		fens = append(fens, pos.String())
	}
	return fens
}

// scriptLevel gives every position a level score and a fixed candidate list.
func scriptLevel(ev *ScriptedEvaluator, fens []string) {
	for _, fen := range fens {
		ev.Set(fen, ScriptedPosition{
			Eval: Evaluation{Score: 0},
			Candidates: []Candidate{
				{Move: "a2a3", Score: 0},
				{Move: "b2b3", Score: -0.1},
				{Move: "c2c3", Score: -0.2},
				{Move: "d2d3", Score: -0.3},
			},
		})
	}
}

func TestAnalyze_OneRecordPerTrackedMove(t *testing.T) {
	fens := gameFENs(t, scholarsGame)
	ev := NewScriptedEvaluator()
	scriptLevel(ev, fens)

	res, err := NewAnalyzer(ev).Run(context.Background(), "Alice", scholarsGame)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Color != White {
		t.Errorf("color = %v, want white", res.Color)
	}
	if len(res.Records) != 2 {
		t.Fatalf("got %d records, want 2", len(res.Records))
	}

	wantMoves := []string{"e2e4", "d1h5"}
	wantSAN := []string{"e4", "Qh5"}
	wantPly := []int{1, 3}
	for i, rec := range res.Records {
		if rec.Move != wantMoves[i] {
			t.Errorf("record %d move = %q, want %q", i, rec.Move, wantMoves[i])
		}
		if rec.SAN != wantSAN[i] {
			t.Errorf("record %d san = %q, want %q", i, rec.SAN, wantSAN[i])
		}
		if rec.Ply != wantPly[i] {
			t.Errorf("record %d ply = %d, want %d", i, rec.Ply, wantPly[i])
		}
		if rec.MoveNumber != i+1 {
			t.Errorf("record %d move number = %d, want %d", i, rec.MoveNumber, i+1)
		}
		if rec.FENBefore != fens[wantPly[i]-1] || rec.FENAfter != fens[wantPly[i]] {
			t.Errorf("record %d has wrong positions", i)
		}
		if rec.BestMove != "a2a3" || rec.BestReply != "a2a3" {
			t.Errorf("record %d best = %q reply = %q", i, rec.BestMove, rec.BestReply)
		}
		if len(rec.CandidatesBefore) != DefaultCandidates || len(rec.CandidatesAfter) != DefaultCandidates {
			t.Errorf("record %d candidate lists %d/%d, want %d", i, len(rec.CandidatesBefore), len(rec.CandidatesAfter), DefaultCandidates)
		}
		if rec.Classification != Good {
			t.Errorf("record %d classification = %q, want %q", i, rec.Classification, Good)
		}
	}

	if res.White != "Alice" || res.Black != "Bob" || res.Date != "2024.03.01" {
		t.Errorf("unexpected headers: %+v", res)
	}
}

func TestAnalyze_TracksBlack(t *testing.T) {
	fens := gameFENs(t, scholarsGame)
	ev := NewScriptedEvaluator()
	scriptLevel(ev, fens)
	// Black to move and half a pawn up from its own point of view.
	ev.Set(fens[1], ScriptedPosition{Eval: Evaluation{Score: 0.5}, Candidates: []Candidate{{Move: "e7e5", Score: 0.5}}})

	recs, err := NewAnalyzer(ev).Analyze(context.Background(), "bob", scholarsGame)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
	if recs[0].Move != "e7e5" || recs[1].Move != "b8c6" {
		t.Errorf("moves = %q, %q", recs[0].Move, recs[1].Move)
	}
	if recs[0].EvalBefore != -0.5 {
		t.Errorf("eval before = %v, want -0.5 in white's frame", recs[0].EvalBefore)
	}
	// Black gave back its half pawn.
	if recs[0].Classification != Inaccuracy {
		t.Errorf("classification = %q, want %q", recs[0].Classification, Inaccuracy)
	}
}

func TestAnalyze_IdentityCaseInsensitive(t *testing.T) {
	fens := gameFENs(t, scholarsGame)
	ev := NewScriptedEvaluator()
	scriptLevel(ev, fens)

	for _, id := range []string{"alice", "ALICE", " Alice "} {
		res, err := NewAnalyzer(ev).Run(context.Background(), id, scholarsGame)
		if err != nil {
			t.Fatalf("%q: %v", id, err)
		}
		if res.Color != White {
			t.Errorf("%q resolved to %v", id, res.Color)
		}
	}
}

func TestAnalyze_IdentityNotFound(t *testing.T) {
	ev := NewScriptedEvaluator()
	_, err := NewAnalyzer(ev).Analyze(context.Background(), "mallory", scholarsGame)
	if !errors.Is(err, ErrIdentityNotFound) {
		t.Fatalf("got %v, want ErrIdentityNotFound", err)
	}
	if ev.CallCount() != 0 {
		t.Errorf("evaluator called %d times before identity check", ev.CallCount())
	}

	_, err = NewAnalyzer(ev).Analyze(context.Background(), "", scholarsGame)
	if !errors.Is(err, ErrIdentityNotFound) {
		t.Errorf("empty identity: got %v, want ErrIdentityNotFound", err)
	}
}

func TestAnalyze_InvalidGame(t *testing.T) {
	for name, pgn := range map[string]string{
		"empty":   "",
		"blank":   "  \n ",
		"illegal": "[White \"Alice\"]\n[Black \"Bob\"]\n\n1. e4 e4 *",
	} {
		_, err := NewAnalyzer(NewScriptedEvaluator()).Analyze(context.Background(), "Alice", pgn)
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("%s: got %v, want ErrInvalidInput", name, err)
		}
	}
}

func TestAnalyze_EvaluatorErrorPropagates(t *testing.T) {
	fens := gameFENs(t, scholarsGame)
	ev := NewScriptedEvaluator()
	scriptLevel(ev, fens)
	boom := errors.New("engine crashed")
	ev.Set(fens[3], ScriptedPosition{Err: boom})

	_, err := NewAnalyzer(ev).Analyze(context.Background(), "Alice", scholarsGame)
	if !errors.Is(err, boom) {
		t.Fatalf("got %v, want wrapped engine error", err)
	}
}

func TestAnalyze_MissingCandidatesIsError(t *testing.T) {
	fens := gameFENs(t, scholarsGame)
	ev := NewScriptedEvaluator()
	scriptLevel(ev, fens)
	ev.Set(fens[0], ScriptedPosition{Eval: Evaluation{Score: 0.2}})

	if _, err := NewAnalyzer(ev).Analyze(context.Background(), "Alice", scholarsGame); err == nil {
		t.Fatal("expected error when the evaluator returns no candidates")
	}
}

func TestAnalyze_CandidateLimit(t *testing.T) {
	fens := gameFENs(t, scholarsGame)
	ev := NewScriptedEvaluator()
	scriptLevel(ev, fens)

	recs, err := NewAnalyzer(ev, WithCandidates(1)).Analyze(context.Background(), "Alice", scholarsGame)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	for _, rec := range recs {
		if len(rec.CandidatesBefore) != 1 {
			t.Errorf("got %d candidates, want 1", len(rec.CandidatesBefore))
		}
	}
}

func TestAnalyze_MissedWin(t *testing.T) {
	fens := gameFENs(t, scholarsGame)
	ev := NewScriptedEvaluator()
	scriptLevel(ev, fens)
	ev.Set(fens[2], ScriptedPosition{
		Eval:       MateIn(2),
		Candidates: []Candidate{{Move: "f1c4", Mate: intPtr(2)}, {Move: "d1h5", Score: 1}},
	})

	recs, err := NewAnalyzer(ev).Analyze(context.Background(), "Alice", scholarsGame)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if recs[1].Classification != MissedWin {
		t.Errorf("got %q, want %q", recs[1].Classification, MissedWin)
	}
	if recs[1].BestMove != "f1c4" {
		t.Errorf("best move = %q", recs[1].BestMove)
	}
}

func TestAnalyze_CheckmateIsScoredWithoutEngine(t *testing.T) {
	fens := gameFENs(t, foolsMate)
	ev := NewScriptedEvaluator()
	// The final position is left unscripted; asking for it would fail.
	scriptLevel(ev, fens[:len(fens)-1])

	recs, err := NewAnalyzer(ev).Analyze(context.Background(), "Dave", foolsMate)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	last := recs[len(recs)-1]
	if last.Move != "d8h4" {
		t.Fatalf("last move = %q", last.Move)
	}
	if math.Abs(last.EvalAfter-(-MateScorePawns)) > 1e-9 {
		t.Errorf("eval after mate = %v, want %v", last.EvalAfter, -MateScorePawns)
	}
	if len(last.CandidatesAfter) != 0 || last.BestReply != "" {
		t.Errorf("mated position should have no replies, got %v", last.CandidatesAfter)
	}
	if last.Classification != Brilliant {
		t.Errorf("delivering mate got %q", last.Classification)
	}
}

// A two-move game where the tracked player's only move loses material. The
// same loss is judged more leniently when the player was already winning.
func TestAnalyze_LossScalesWithAdvantage(t *testing.T) {
	const game = "[White \"Alice\"]\n[Black \"Bob\"]\n\n1. e4 e5 *"
	fens := gameFENs(t, game)

	run := func(before, drop float64) Classification {
		ev := NewScriptedEvaluator()
		ev.Set(fens[0], ScriptedPosition{Eval: Evaluation{Score: before}, Candidates: []Candidate{{Move: "d2d4", Score: before}}})
		// After the move black is to move, so its score is the negated white score.
		ev.Set(fens[1], ScriptedPosition{Eval: Evaluation{Score: -(before - drop)}, Candidates: []Candidate{{Move: "e7e5"}}})
		recs, err := NewAnalyzer(ev).Analyze(context.Background(), "Alice", game)
		if err != nil {
			t.Fatalf("Analyze: %v", err)
		}
		if len(recs) != 1 {
			t.Fatalf("got %d records, want 1", len(recs))
		}
		return recs[0].Classification
	}

	if got := run(0, 4); got != Blunder {
		t.Errorf("4 pawn drop from level: got %q, want %q", got, Blunder)
	}
	if got := run(0, 2); got != Blunder {
		t.Errorf("2 pawn drop from level: got %q, want %q", got, Blunder)
	}
	if got := run(8, 2); got != Mistake {
		t.Errorf("2 pawn drop from +8: got %q, want %q", got, Mistake)
	}
}

// The tracked player's own advantage sets the scale, whichever color it has.
func TestAnalyze_LossScalesWithOwnAdvantage(t *testing.T) {
	const game = "[White \"Alice\"]\n[Black \"Bob\"]\n\n1. e4 e5 *"
	fens := gameFENs(t, game)

	// run scripts the position before the tracked move and the one after it,
	// both in the side-to-move frame the evaluator reports.
	run := func(identity string, before, drop float64) Classification {
		first := 0
		if identity == "Bob" {
			first = 1
		}
		ev := NewScriptedEvaluator()
		ev.Set(fens[first], ScriptedPosition{Eval: Evaluation{Score: before}, Candidates: []Candidate{{Move: "b1c3", Score: before}}})
		ev.Set(fens[first+1], ScriptedPosition{Eval: Evaluation{Score: -(before - drop)}, Candidates: []Candidate{{Move: "g1f3"}}})
		recs, err := NewAnalyzer(ev).Analyze(context.Background(), identity, game)
		if err != nil {
			t.Fatalf("%s: Analyze: %v", identity, err)
		}
		if len(recs) != 1 {
			t.Fatalf("%s: got %d records, want 1", identity, len(recs))
		}
		return recs[0].Classification
	}

	tests := []struct {
		before, drop float64
		want         Classification
	}{
		{8, 2, Mistake},
		{0, 2, Blunder},
		{-8, 0.3, Mistake},
		{0, 0.3, Inaccuracy},
		{0, 4, Blunder},
		{8, 4, Blunder},
	}
	for _, tt := range tests {
		white := run("Alice", tt.before, tt.drop)
		black := run("Bob", tt.before, tt.drop)
		if white != tt.want {
			t.Errorf("white %+v drop %v: got %q, want %q", tt.before, tt.drop, white, tt.want)
		}
		if black != tt.want {
			t.Errorf("black %+v drop %v: got %q, want %q", tt.before, tt.drop, black, tt.want)
		}
	}
}

func TestResolveColor(t *testing.T) {
	c, err := ResolveColor("BOB", "alice", "bob")
	if err != nil || c != Black {
		t.Errorf("got %v, %v", c, err)
	}
	if _, err := ResolveColor("eve", "alice", "bob"); !errors.Is(err, ErrIdentityNotFound) {
		t.Errorf("got %v", err)
	}
}
