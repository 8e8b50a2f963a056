package analysis

// ClassifyInput holds everything needed to label one move.
//
// EvalBefore and EvalAfter are pawn scores in white's frame, with mates
// already mapped through Evaluation.Pawns. Best is the engine's top
// candidate in the position before the move, with its mate distance from the
// mover's point of view.
type ClassifyInput struct {
	EvalBefore float64
	EvalAfter  float64
	Mover      Color
	Played     string
	Best       Candidate
}

// Classify labels a move. It is pure: the same input always yields the same
// label, and it never fails. Thresholds scale with the mover's own
// advantage before the move.
func Classify(in ClassifyInput) Classification {
	// A forced mate was on the board and the player did something else.
	if in.Played != in.Best.Move && in.Best.Mate != nil && *in.Best.Mate > 0 {
		return MissedWin
	}
	return ThresholdsFor(Advantage(in.EvalBefore, in.Mover)).Label(EvalDiff(in.EvalBefore, in.EvalAfter, in.Mover))
}

// Advantage converts a white-frame score into the mover's frame, so a
// winning black position is positive.
func Advantage(eval float64, mover Color) float64 {
	if mover == Black {
		return -eval
	}
	return eval
}

// EvalDiff is the change in the mover's advantage: the raw difference,
// negated when black moved.
func EvalDiff(before, after float64, mover Color) float64 {
	diff := after - before
	if mover == Black {
		diff = -diff
	}
	return diff
}
