package analysis

import (
	"math"
	"testing"
)

func intPtr(n int) *int { return &n }

func TestClassify_Deterministic(t *testing.T) {
	in := ClassifyInput{
		EvalBefore: 0.4,
		EvalAfter:  -0.3,
		Mover:      White,
		Played:     "e2e4",
		Best:       Candidate{Move: "d2d4", Score: 0.4},
	}
	first := Classify(in)
	for i := 0; i < 100; i++ {
		if got := Classify(in); got != first {
			t.Fatalf("call %d returned %q, first call returned %q", i, got, first)
		}
	}
}

func TestClassify_MissedWin(t *testing.T) {
	got := Classify(ClassifyInput{
		EvalBefore: 0,
		EvalAfter:  -5,
		Mover:      White,
		Played:     "e2e4",
		Best:       Candidate{Move: "d2d4", Mate: intPtr(3)},
	})
	if got != MissedWin {
		t.Errorf("got %q, want %q", got, MissedWin)
	}
}

func TestClassify_MissedWinIgnoresEvaluation(t *testing.T) {
	// Even a huge gain is overridden when a forced mate was skipped.
	got := Classify(ClassifyInput{
		EvalBefore: -3,
		EvalAfter:  20,
		Mover:      White,
		Played:     "g1f3",
		Best:       Candidate{Move: "d1h5", Mate: intPtr(1)},
	})
	if got != MissedWin {
		t.Errorf("got %q, want %q", got, MissedWin)
	}
}

func TestClassify_PlayingTheMateIsNotMissed(t *testing.T) {
	got := Classify(ClassifyInput{
		EvalBefore: 5,
		EvalAfter:  5,
		Mover:      White,
		Played:     "d1h5",
		Best:       Candidate{Move: "d1h5", Mate: intPtr(2)},
	})
	if got == MissedWin {
		t.Errorf("played the best move, got %q", got)
	}
}

func TestClassify_NonPositiveMateDoesNotTrigger(t *testing.T) {
	for _, mate := range []*int{nil, intPtr(0), intPtr(-2)} {
		got := Classify(ClassifyInput{
			EvalBefore: 0,
			EvalAfter:  0,
			Mover:      White,
			Played:     "e2e4",
			Best:       Candidate{Move: "d2d4", Mate: mate},
		})
		if got != Good {
			t.Errorf("mate %v: got %q, want %q", mate, got, Good)
		}
	}
}

func TestClassify_BaseLadder(t *testing.T) {
	tests := []struct {
		diff float64
		want Classification
	}{
		{5, Brilliant},
		{3, Brilliant},
		{2.99, Excellent},
		{1, Excellent},
		{0.5, Good},
		{0, Good},
		{-0.1, Neutral},
		{-0.25, Neutral},
		{-0.5, Inaccuracy},
		{-0.65, Inaccuracy},
		{-0.8, Mistake},
		{-1, Mistake},
		{-1.01, Blunder},
		{-4, Blunder},
	}
	for _, tt := range tests {
		got := Classify(ClassifyInput{EvalBefore: 0, EvalAfter: tt.diff, Mover: White})
		if got != tt.want {
			t.Errorf("diff %v: got %q, want %q", tt.diff, got, tt.want)
		}
	}
}

func TestClassify_BoundaryInclusive(t *testing.T) {
	for _, evalBefore := range []float64{-6, -1.5, 0, 2, 8} {
		th := ThresholdsFor(evalBefore)
		for _, s := range th.ladder() {
			if got := th.Label(s.min); got != s.label {
				t.Errorf("before %v: diff at %s threshold %v got %q", evalBefore, s.label, s.min, got)
			}
		}
	}
}

func TestClassify_Monotonic(t *testing.T) {
	for _, evalBefore := range []float64{-8, -2, 0, 1.5, 8} {
		prev := -1
		for diff := -12.0; diff <= 12.0; diff += 0.05 {
			got := ThresholdsFor(evalBefore).Label(diff)
			if got.Rank() < prev {
				t.Fatalf("before %v: rank dropped to %d (%q) at diff %v", evalBefore, got.Rank(), got, diff)
			}
			prev = got.Rank()
		}
	}
}

func TestClassify_PerspectiveSymmetry(t *testing.T) {
	values := []float64{-8, -2.5, -0.75, 0, 0.5, 1.25, 3, 8}
	for _, before := range values {
		for _, after := range values {
			white := Classify(ClassifyInput{EvalBefore: before, EvalAfter: after, Mover: White, Played: "a", Best: Candidate{Move: "b"}})
			// The same game with colors swapped: every white-frame score flips sign.
			black := Classify(ClassifyInput{EvalBefore: -before, EvalAfter: -after, Mover: Black, Played: "a", Best: Candidate{Move: "b"}})
			if black != white {
				t.Errorf("before %v after %v: white %q, mirrored black %q", before, after, white, black)
			}
		}
	}
}

func TestClassify_BlackScalesWithOwnAdvantage(t *testing.T) {
	// Black is eight pawns up (white frame -8) and gives back two.
	got := Classify(ClassifyInput{EvalBefore: -8, EvalAfter: -6, Mover: Black})
	if got != Mistake {
		t.Errorf("winning black dropping 2: got %q, want %q", got, Mistake)
	}
	// Black is eight pawns down and gives back 0.3.
	got = Classify(ClassifyInput{EvalBefore: 8, EvalAfter: 8.3, Mover: Black})
	if got != Mistake {
		t.Errorf("losing black dropping 0.3: got %q, want %q", got, Mistake)
	}
}

func TestAdvantage(t *testing.T) {
	if got := Advantage(1.5, White); got != 1.5 {
		t.Errorf("white advantage = %v, want 1.5", got)
	}
	if got := Advantage(1.5, Black); got != -1.5 {
		t.Errorf("black advantage = %v, want -1.5", got)
	}
}

func TestEvalDiff(t *testing.T) {
	if got := EvalDiff(1, 3, White); got != 2 {
		t.Errorf("white diff = %v, want 2", got)
	}
	if got := EvalDiff(1, 3, Black); got != -2 {
		t.Errorf("black diff = %v, want -2", got)
	}
}

func TestThresholds_BaseAtZero(t *testing.T) {
	want := []float64{3, 1, 0, -0.25, -0.65, -1}
	got := ThresholdsFor(0).Values()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("threshold %d = %v, want %v", i, got[i], want[i])
		}
	}
	if BaseThresholds() != ThresholdsFor(0) {
		t.Error("BaseThresholds differs from ThresholdsFor(0)")
	}
}

func TestThresholds_Ordered(t *testing.T) {
	for _, evalBefore := range []float64{-50, -8, -1, 0, 1, 8, 50} {
		vals := ThresholdsFor(evalBefore).Values()
		for i := 1; i < len(vals); i++ {
			if vals[i-1] < vals[i] {
				t.Errorf("before %v: threshold %d (%v) < threshold %d (%v)", evalBefore, i-1, vals[i-1], i, vals[i])
			}
		}
	}
}

func TestThresholds_ScaleWithEvaluation(t *testing.T) {
	lo, hi := ThresholdsFor(1).Values(), ThresholdsFor(2).Values()
	for i := range lo {
		if lo[i] == 0 {
			continue
		}
		if math.Abs(hi[i]) <= math.Abs(lo[i]) {
			t.Errorf("threshold %d did not grow: %v -> %v", i, lo[i], hi[i])
		}
		if math.Signbit(hi[i]) != math.Signbit(lo[i]) {
			t.Errorf("threshold %d flipped sign: %v -> %v", i, lo[i], hi[i])
		}
	}

	factor := math.Exp(0.8)
	if got := ThresholdsFor(8).Mistake; math.Abs(got-(-factor)) > 1e-12 {
		t.Errorf("mistake at +8 = %v, want %v", got, -factor)
	}
}

func TestEvaluation_MateSentinel(t *testing.T) {
	tests := []struct {
		mate int
		want float64
	}{
		{1, 99.9},
		{3, 99.7},
		{-3, -99.7},
		{0, -100},
		{250, 90},
		{-250, -90},
	}
	for _, tt := range tests {
		got := MateIn(tt.mate).Pawns()
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("mate %d: got %v, want %v", tt.mate, got, tt.want)
		}
	}

	if got := (Evaluation{Score: 1.5}).Pawns(); got != 1.5 {
		t.Errorf("plain score = %v, want 1.5", got)
	}
}

func TestEvaluation_Negate(t *testing.T) {
	if got := (Evaluation{Score: 0.7}).Negate().Pawns(); got != -0.7 {
		t.Errorf("negated score = %v, want -0.7", got)
	}
	m := MateIn(2).Negate()
	if m.Mate == nil || *m.Mate != -2 {
		t.Errorf("negated mate = %v, want -2", m.Mate)
	}
}

func TestClassification_Rank(t *testing.T) {
	ladder := []Classification{Blunder, Mistake, Inaccuracy, Neutral, Good, Excellent, Brilliant}
	for i, c := range ladder {
		if c.Rank() != i {
			t.Errorf("%q rank = %d, want %d", c, c.Rank(), i)
		}
	}
	if MissedWin.Rank() != -1 {
		t.Errorf("missed win rank = %d, want -1", MissedWin.Rank())
	}
	if Classification("Great").Valid() {
		t.Error("unknown label reported valid")
	}
	for _, c := range AllClassifications() {
		if !c.Valid() {
			t.Errorf("%q reported invalid", c)
		}
	}
}

func TestParseColor(t *testing.T) {
	for in, want := range map[string]Color{"white": White, "Black": Black, " w ": White, "B": Black} {
		got, ok := ParseColor(in)
		if !ok || got != want {
			t.Errorf("ParseColor(%q) = %v, %v", in, got, ok)
		}
	}
	if _, ok := ParseColor("red"); ok {
		t.Error("ParseColor(red) succeeded")
	}
}
