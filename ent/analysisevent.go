// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/chesscoach/ent/analysisevent"
)

// AnalysisEvent is the model entity for the AnalysisEvent schema.
type AnalysisEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID shared with the analysis' move events
	AnalysisID string `json:"analysis_id,omitempty"`
	// Identity the game was analyzed for
	Username string `json:"username,omitempty"`
	// white or black
	Color string `json:"color,omitempty"`
	// White holds the value of the "white" field.
	White string `json:"white,omitempty"`
	// Black holds the value of the "black" field.
	Black string `json:"black,omitempty"`
	// EventName holds the value of the "event_name" field.
	EventName string `json:"event_name,omitempty"`
	// GameDate holds the value of the "game_date" field.
	GameDate string `json:"game_date,omitempty"`
	// Outcome holds the value of the "outcome" field.
	Outcome string `json:"outcome,omitempty"`
	// Game notation as submitted
	Pgn string `json:"pgn,omitempty"`
	// Number of classified moves
	MoveCount int `json:"move_count,omitempty"`
	// cli, http, or lichess
	Source       string `json:"source,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AnalysisEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case analysisevent.FieldID, analysisevent.FieldSequence, analysisevent.FieldMoveCount:
			values[i] = new(sql.NullInt64)
		case analysisevent.FieldAnalysisID, analysisevent.FieldUsername, analysisevent.FieldColor, analysisevent.FieldWhite, analysisevent.FieldBlack, analysisevent.FieldEventName, analysisevent.FieldGameDate, analysisevent.FieldOutcome, analysisevent.FieldPgn, analysisevent.FieldSource:
			values[i] = new(sql.NullString)
		case analysisevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AnalysisEvent fields.
func (_m *AnalysisEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case analysisevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case analysisevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case analysisevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case analysisevent.FieldAnalysisID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field analysis_id", values[i])
			} else if value.Valid {
				_m.AnalysisID = value.String
			}
		case analysisevent.FieldUsername:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field username", values[i])
			} else if value.Valid {
				_m.Username = value.String
			}
		case analysisevent.FieldColor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field color", values[i])
			} else if value.Valid {
				_m.Color = value.String
			}
		case analysisevent.FieldWhite:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field white", values[i])
			} else if value.Valid {
				_m.White = value.String
			}
		case analysisevent.FieldBlack:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field black", values[i])
			} else if value.Valid {
				_m.Black = value.String
			}
		case analysisevent.FieldEventName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_name", values[i])
			} else if value.Valid {
				_m.EventName = value.String
			}
		case analysisevent.FieldGameDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field game_date", values[i])
			} else if value.Valid {
				_m.GameDate = value.String
			}
		case analysisevent.FieldOutcome:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field outcome", values[i])
			} else if value.Valid {
				_m.Outcome = value.String
			}
		case analysisevent.FieldPgn:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pgn", values[i])
			} else if value.Valid {
				_m.Pgn = value.String
			}
		case analysisevent.FieldMoveCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field move_count", values[i])
			} else if value.Valid {
				_m.MoveCount = int(value.Int64)
			}
		case analysisevent.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AnalysisEvent.
// This includes values selected through modifiers, order, etc.
func (_m *AnalysisEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AnalysisEvent.
// Note that you need to call AnalysisEvent.Unwrap() before calling this method if this AnalysisEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AnalysisEvent) Update() *AnalysisEventUpdateOne {
	return NewAnalysisEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AnalysisEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AnalysisEvent) Unwrap() *AnalysisEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AnalysisEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AnalysisEvent) String() string {
	var builder strings.Builder
	builder.WriteString("AnalysisEvent(")
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
	builder.WriteString("username=")
	builder.WriteString(_m.Username)
	builder.WriteString(", ")
	builder.WriteString("color=")
	builder.WriteString(_m.Color)
	builder.WriteString(", ")
	builder.WriteString("white=")
	builder.WriteString(_m.White)
	builder.WriteString(", ")
	builder.WriteString("black=")
	builder.WriteString(_m.Black)
	builder.WriteString(", ")
	builder.WriteString("event_name=")
	builder.WriteString(_m.EventName)
	builder.WriteString(", ")
	builder.WriteString("game_date=")
	builder.WriteString(_m.GameDate)
	builder.WriteString(", ")
	builder.WriteString("outcome=")
	builder.WriteString(_m.Outcome)
	builder.WriteString(", ")
	builder.WriteString("pgn=")
	builder.WriteString(_m.Pgn)
	builder.WriteString(", ")
	builder.WriteString("move_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.MoveCount))
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteByte(')')
	return builder.String()
}

// AnalysisEvents is a parsable slice of AnalysisEvent.
type AnalysisEvents []*AnalysisEvent
