package analysis

import "math"

// baseThresholds are the pawn swings that separate the labels in a level
// position. They must stay sorted from best to worst.
var baseThresholds = Thresholds{
	Brilliant:  3,
	Excellent:  1,
	Good:       0,
	Neutral:    -0.25,
	Inaccuracy: -0.65,
	Mistake:    -1,
}

// thresholdScale is the evaluation (in pawns) over which the thresholds grow
// by a factor of e.
const thresholdScale = 10.0

// Thresholds holds the minimum evaluation swing for each label.
// A swing below Mistake is a Blunder.
type Thresholds struct {
	Brilliant  float64
	Excellent  float64
	Good       float64
	Neutral    float64
	Inaccuracy float64
	Mistake    float64
}

// BaseThresholds returns the thresholds for an evaluation of zero.
func BaseThresholds() Thresholds {
	return baseThresholds
}

// ThresholdsFor scales the base thresholds by exp(evalBefore/10), where
// evalBefore is from the mover's point of view. A position
// that is already winning needs a larger swing to earn the same label; a
// losing one needs less. The factor is always positive, so the order of the
// thresholds is preserved.
func ThresholdsFor(evalBefore float64) Thresholds {
	f := math.Exp(evalBefore / thresholdScale)
	return Thresholds{
		Brilliant:  baseThresholds.Brilliant * f,
		Excellent:  baseThresholds.Excellent * f,
		Good:       baseThresholds.Good * f,
		Neutral:    baseThresholds.Neutral * f,
		Inaccuracy: baseThresholds.Inaccuracy * f,
		Mistake:    baseThresholds.Mistake * f,
	}
}

type step struct {
	min   float64
	label Classification
}

// ladder pairs each threshold with its label, best first.
func (t Thresholds) ladder() []step {
	return []step{
		{t.Brilliant, Brilliant},
		{t.Excellent, Excellent},
		{t.Good, Good},
		{t.Neutral, Neutral},
		{t.Inaccuracy, Inaccuracy},
		{t.Mistake, Mistake},
	}
}

// Label returns the first label whose threshold diff meets or exceeds,
// or Blunder when none do.
func (t Thresholds) Label(diff float64) Classification {
	for _, step := range t.ladder() {
		if diff >= step.min {
			return step.label
		}
	}
	return Blunder
}

// Values returns the thresholds best first.
func (t Thresholds) Values() []float64 {
	return []float64{t.Brilliant, t.Excellent, t.Good, t.Neutral, t.Inaccuracy, t.Mistake}
}
