// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/chesscoach/ent/explanationevent"
)

// ExplanationEvent is the model entity for the ExplanationEvent schema.
type ExplanationEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Empty for ad-hoc explanations
	AnalysisID string `json:"analysis_id,omitempty"`
	// 0 for whole-game explanations
	Ply int `json:"ply,omitempty"`
	// move, game, or question
	Kind string `json:"kind,omitempty"`
	// Question holds the value of the "question" field.
	Question string `json:"question,omitempty"`
	// Summary holds the value of the "summary" field.
	Summary string `json:"summary,omitempty"`
	// Body holds the value of the "body" field.
	Body         string `json:"body,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExplanationEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case explanationevent.FieldID, explanationevent.FieldSequence, explanationevent.FieldPly:
			values[i] = new(sql.NullInt64)
		case explanationevent.FieldAnalysisID, explanationevent.FieldKind, explanationevent.FieldQuestion, explanationevent.FieldSummary, explanationevent.FieldBody:
			values[i] = new(sql.NullString)
		case explanationevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExplanationEvent fields.
func (_m *ExplanationEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case explanationevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case explanationevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case explanationevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case explanationevent.FieldAnalysisID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field analysis_id", values[i])
			} else if value.Valid {
				_m.AnalysisID = value.String
			}
		case explanationevent.FieldPly:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field ply", values[i])
			} else if value.Valid {
				_m.Ply = int(value.Int64)
			}
		case explanationevent.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = value.String
			}
		case explanationevent.FieldQuestion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question", values[i])
			} else if value.Valid {
				_m.Question = value.String
			}
		case explanationevent.FieldSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value.Valid {
				_m.Summary = value.String
			}
		case explanationevent.FieldBody:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field body", values[i])
			} else if value.Valid {
				_m.Body = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ExplanationEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ExplanationEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ExplanationEvent.
// Note that you need to call ExplanationEvent.Unwrap() before calling this method if this ExplanationEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExplanationEvent) Update() *ExplanationEventUpdateOne {
	return NewExplanationEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExplanationEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExplanationEvent) Unwrap() *ExplanationEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExplanationEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExplanationEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ExplanationEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("analysis_id=")
	builder.WriteString(_m.AnalysisID)
	builder.WriteString(", ")
	builder.WriteString("ply=")
	builder.WriteString(fmt.Sprintf("%v", _m.Ply))
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(_m.Kind)
	builder.WriteString(", ")
	builder.WriteString("question=")
	builder.WriteString(_m.Question)
	builder.WriteString(", ")
	builder.WriteString("summary=")
	builder.WriteString(_m.Summary)
	builder.WriteString(", ")
	builder.WriteString("body=")
	builder.WriteString(_m.Body)
	builder.WriteByte(')')
	return builder.String()
}

// ExplanationEvents is a parsable slice of ExplanationEvent.
type ExplanationEvents []*ExplanationEvent
