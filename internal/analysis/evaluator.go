package analysis

import (
	"context"
	"fmt"
	"sync"
)

// Evaluator scores chess positions. Every score is from the perspective of
// the side to move in the given position. Implementations must return an
// error rather than a default score when they cannot evaluate.
type Evaluator interface {
	// Evaluate returns the score of the position described by fen.
	Evaluate(ctx context.Context, fen string) (Evaluation, error)

	// TopCandidates returns up to k moves for the position, best first.
	TopCandidates(ctx context.Context, fen string, k int) ([]Candidate, error)
}

// ScriptedPosition is the canned answer a ScriptedEvaluator gives for a FEN.
type ScriptedPosition struct {
	Eval       Evaluation
	Candidates []Candidate
	Err        error
}

// ScriptedEvaluator is a deterministic Evaluator for tests. It answers from a
// table keyed by FEN and records every FEN it was asked about.
type ScriptedEvaluator struct {
	mu        sync.Mutex
	positions map[string]ScriptedPosition
	Calls     []string
}

// NewScriptedEvaluator creates an empty ScriptedEvaluator.
func NewScriptedEvaluator() *ScriptedEvaluator {
	return &ScriptedEvaluator{positions: make(map[string]ScriptedPosition)}
}

// Set registers the answer for a FEN.
func (s *ScriptedEvaluator) Set(fen string, pos ScriptedPosition) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.positions[fen] = pos
}

func (s *ScriptedEvaluator) lookup(fen string) (ScriptedPosition, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls = append(s.Calls, fen)
	pos, ok := s.positions[fen]
	if !ok {
		return ScriptedPosition{}, fmt.Errorf("no scripted evaluation for %q", fen)
	}
	if pos.Err != nil {
		return ScriptedPosition{}, pos.Err
	}
	return pos, nil
}

func (s *ScriptedEvaluator) Evaluate(_ context.Context, fen string) (Evaluation, error) {
	pos, err := s.lookup(fen)
	if err != nil {
		return Evaluation{}, err
	}
	return pos.Eval, nil
}

func (s *ScriptedEvaluator) TopCandidates(_ context.Context, fen string, k int) ([]Candidate, error) {
	pos, err := s.lookup(fen)
	if err != nil {
		return nil, err
	}
	out := pos.Candidates
	if k > 0 && len(out) > k {
		out = out[:k]
	}
	return append([]Candidate(nil), out...), nil
}

// CallCount returns how many lookups were made.
func (s *ScriptedEvaluator) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Calls)
}
