// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AnalysisEvent is the predicate function for analysisevent builders.
type AnalysisEvent func(*sql.Selector)

// ExplanationEvent is the predicate function for explanationevent builders.
type ExplanationEvent func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// MoveEvent is the predicate function for moveevent builders.
type MoveEvent func(*sql.Selector)
