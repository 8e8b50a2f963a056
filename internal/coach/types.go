package coach

import (
	"fmt"
	"strings"
)

// Explanation kinds as recorded in the store.
const (
	KindMove   = "move"
	KindGame   = "game"
	KindReport = "report"
	KindAnswer = "answer"
)

// Explanation is the coach's structured commentary on a move or a game.
type Explanation struct {
	Summary     string   `json:"summary"`
	Why         string   `json:"why"`
	BetterPlan  string   `json:"better_plan"`
	KeyConcepts []string `json:"key_concepts"`
}

// String renders the explanation as plain text for terminals and the
// HTTP API.
func (e *Explanation) String() string {
	var b strings.Builder
	b.WriteString(e.Summary)
	if e.Why != "" {
		fmt.Fprintf(&b, "\n\nWhy: %s", e.Why)
	}
	if e.BetterPlan != "" {
		fmt.Fprintf(&b, "\n\nBetter plan: %s", e.BetterPlan)
	}
	if len(e.KeyConcepts) > 0 {
		fmt.Fprintf(&b, "\n\nKey concepts: %s", strings.Join(e.KeyConcepts, ", "))
	}
	return b.String()
}
