// Code generated by ent, DO NOT EDIT.

package analysisevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the analysisevent type in the database.
	Label = "analysis_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldAnalysisID holds the string denoting the analysis_id field in the database.
	FieldAnalysisID = "analysis_id"
	// FieldUsername holds the string denoting the username field in the database.
	FieldUsername = "username"
	// FieldColor holds the string denoting the color field in the database.
	FieldColor = "color"
	// FieldWhite holds the string denoting the white field in the database.
	FieldWhite = "white"
	// FieldBlack holds the string denoting the black field in the database.
	FieldBlack = "black"
	// FieldEventName holds the string denoting the event_name field in the database.
	FieldEventName = "event_name"
	// FieldGameDate holds the string denoting the game_date field in the database.
	FieldGameDate = "game_date"
	// FieldOutcome holds the string denoting the outcome field in the database.
	FieldOutcome = "outcome"
	// FieldPgn holds the string denoting the pgn field in the database.
	FieldPgn = "pgn"
	// FieldMoveCount holds the string denoting the move_count field in the database.
	FieldMoveCount = "move_count"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// Table holds the table name of the analysisevent in the database.
	Table = "analysis_events"
)

// Columns holds all SQL columns for analysisevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldAnalysisID,
	FieldUsername,
	FieldColor,
	FieldWhite,
	FieldBlack,
	FieldEventName,
	FieldGameDate,
	FieldOutcome,
	FieldPgn,
	FieldMoveCount,
	FieldSource,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// AnalysisIDValidator is a validator for the "analysis_id" field. It is called by the builders before save.
	AnalysisIDValidator func(string) error
	// UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	UsernameValidator func(string) error
	// ColorValidator is a validator for the "color" field. It is called by the builders before save.
	ColorValidator func(string) error
	// DefaultWhite holds the default value on creation for the "white" field.
	DefaultWhite string
	// DefaultBlack holds the default value on creation for the "black" field.
	DefaultBlack string
	// DefaultEventName holds the default value on creation for the "event_name" field.
	DefaultEventName string
	// DefaultGameDate holds the default value on creation for the "game_date" field.
	DefaultGameDate string
	// DefaultOutcome holds the default value on creation for the "outcome" field.
	DefaultOutcome string
	// DefaultMoveCount holds the default value on creation for the "move_count" field.
	DefaultMoveCount int
	// DefaultSource holds the default value on creation for the "source" field.
	DefaultSource string
)

// OrderOption defines the ordering options for the AnalysisEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByAnalysisID orders the results by the analysis_id field.
func ByAnalysisID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnalysisID, opts...).ToFunc()
}

// ByUsername orders the results by the username field.
func ByUsername(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUsername, opts...).ToFunc()
}

// ByColor orders the results by the color field.
func ByColor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldColor, opts...).ToFunc()
}

// ByWhite orders the results by the white field.
func ByWhite(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWhite, opts...).ToFunc()
}

// ByBlack orders the results by the black field.
func ByBlack(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBlack, opts...).ToFunc()
}

// ByEventName orders the results by the event_name field.
func ByEventName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventName, opts...).ToFunc()
}

// ByGameDate orders the results by the game_date field.
func ByGameDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGameDate, opts...).ToFunc()
}

// ByOutcome orders the results by the outcome field.
func ByOutcome(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutcome, opts...).ToFunc()
}

// ByPgn orders the results by the pgn field.
func ByPgn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPgn, opts...).ToFunc()
}

// ByMoveCount orders the results by the move_count field.
func ByMoveCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMoveCount, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}
