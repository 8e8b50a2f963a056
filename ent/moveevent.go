// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/chesscoach/ent/moveevent"
	"github.com/abhisek/chesscoach/ent/schema"
)

// MoveEvent is the model entity for the MoveEvent schema.
type MoveEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// AnalysisID holds the value of the "analysis_id" field.
	AnalysisID string `json:"analysis_id,omitempty"`
	// Ply holds the value of the "ply" field.
	Ply int `json:"ply,omitempty"`
	// MoveNumber holds the value of the "move_number" field.
	MoveNumber int `json:"move_number,omitempty"`
	// UciMove holds the value of the "uci_move" field.
	UciMove string `json:"uci_move,omitempty"`
	// San holds the value of the "san" field.
	San string `json:"san,omitempty"`
	// FenBefore holds the value of the "fen_before" field.
	FenBefore string `json:"fen_before,omitempty"`
	// FenAfter holds the value of the "fen_after" field.
	FenAfter string `json:"fen_after,omitempty"`
	// Pawns, white's frame
	EvalBefore float64 `json:"eval_before,omitempty"`
	// Pawns, white's frame
	EvalAfter float64 `json:"eval_after,omitempty"`
	// Classification holds the value of the "classification" field.
	Classification string `json:"classification,omitempty"`
	// BestMove holds the value of the "best_move" field.
	BestMove string `json:"best_move,omitempty"`
	// BestReply holds the value of the "best_reply" field.
	BestReply string `json:"best_reply,omitempty"`
	// PvBefore holds the value of the "pv_before" field.
	PvBefore []schema.CandidateSummary `json:"pv_before,omitempty"`
	// PvAfter holds the value of the "pv_after" field.
	PvAfter      []schema.CandidateSummary `json:"pv_after,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MoveEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case moveevent.FieldPvBefore, moveevent.FieldPvAfter:
			values[i] = new([]byte)
		case moveevent.FieldEvalBefore, moveevent.FieldEvalAfter:
			values[i] = new(sql.NullFloat64)
		case moveevent.FieldID, moveevent.FieldSequence, moveevent.FieldPly, moveevent.FieldMoveNumber:
			values[i] = new(sql.NullInt64)
		case moveevent.FieldAnalysisID, moveevent.FieldUciMove, moveevent.FieldSan, moveevent.FieldFenBefore, moveevent.FieldFenAfter, moveevent.FieldClassification, moveevent.FieldBestMove, moveevent.FieldBestReply:
			values[i] = new(sql.NullString)
		case moveevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MoveEvent fields.
func (_m *MoveEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case moveevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case moveevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case moveevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case moveevent.FieldAnalysisID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field analysis_id", values[i])
			} else if value.Valid {
				_m.AnalysisID = value.String
			}
		case moveevent.FieldPly:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field ply", values[i])
			} else if value.Valid {
				_m.Ply = int(value.Int64)
			}
		case moveevent.FieldMoveNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field move_number", values[i])
			} else if value.Valid {
				_m.MoveNumber = int(value.Int64)
			}
		case moveevent.FieldUciMove:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field uci_move", values[i])
			} else if value.Valid {
				_m.UciMove = value.String
			}
		case moveevent.FieldSan:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field san", values[i])
			} else if value.Valid {
				_m.San = value.String
			}
		case moveevent.FieldFenBefore:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field fen_before", values[i])
			} else if value.Valid {
				_m.FenBefore = value.String
			}
		case moveevent.FieldFenAfter:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field fen_after", values[i])
			} else if value.Valid {
				_m.FenAfter = value.String
			}
		case moveevent.FieldEvalBefore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field eval_before", values[i])
			} else if value.Valid {
				_m.EvalBefore = value.Float64
			}
		case moveevent.FieldEvalAfter:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field eval_after", values[i])
			} else if value.Valid {
				_m.EvalAfter = value.Float64
			}
		case moveevent.FieldClassification:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field classification", values[i])
			} else if value.Valid {
				_m.Classification = value.String
			}
		case moveevent.FieldBestMove:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field best_move", values[i])
			} else if value.Valid {
				_m.BestMove = value.String
			}
		case moveevent.FieldBestReply:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field best_reply", values[i])
			} else if value.Valid {
				_m.BestReply = value.String
			}
		case moveevent.FieldPvBefore:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field pv_before", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PvBefore); err != nil {
					return fmt.Errorf("unmarshal field pv_before: %w", err)
				}
			}
		case moveevent.FieldPvAfter:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field pv_after", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PvAfter); err != nil {
					return fmt.Errorf("unmarshal field pv_after: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MoveEvent.
// This includes values selected through modifiers, order, etc.
func (_m *MoveEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this MoveEvent.
// Note that you need to call MoveEvent.Unwrap() before calling this method if this MoveEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MoveEvent) Update() *MoveEventUpdateOne {
	return NewMoveEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MoveEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MoveEvent) Unwrap() *MoveEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MoveEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MoveEvent) String() string {
	var builder strings.Builder
	builder.WriteString("MoveEvent(")
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
	builder.WriteString("move_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.MoveNumber))
	builder.WriteString(", ")
	builder.WriteString("uci_move=")
	builder.WriteString(_m.UciMove)
	builder.WriteString(", ")
	builder.WriteString("san=")
	builder.WriteString(_m.San)
	builder.WriteString(", ")
	builder.WriteString("fen_before=")
	builder.WriteString(_m.FenBefore)
	builder.WriteString(", ")
	builder.WriteString("fen_after=")
	builder.WriteString(_m.FenAfter)
	builder.WriteString(", ")
	builder.WriteString("eval_before=")
	builder.WriteString(fmt.Sprintf("%v", _m.EvalBefore))
	builder.WriteString(", ")
	builder.WriteString("eval_after=")
	builder.WriteString(fmt.Sprintf("%v", _m.EvalAfter))
	builder.WriteString(", ")
	builder.WriteString("classification=")
	builder.WriteString(_m.Classification)
	builder.WriteString(", ")
	builder.WriteString("best_move=")
	builder.WriteString(_m.BestMove)
	builder.WriteString(", ")
	builder.WriteString("best_reply=")
	builder.WriteString(_m.BestReply)
	builder.WriteString(", ")
	builder.WriteString("pv_before=")
	builder.WriteString(fmt.Sprintf("%v", _m.PvBefore))
	builder.WriteString(", ")
	builder.WriteString("pv_after=")
	builder.WriteString(fmt.Sprintf("%v", _m.PvAfter))
	builder.WriteByte(')')
	return builder.String()
}

// MoveEvents is a parsable slice of MoveEvent.
type MoveEvents []*MoveEvent
