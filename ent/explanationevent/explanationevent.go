// Code generated by ent, DO NOT EDIT.

package explanationevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the explanationevent type in the database.
	Label = "explanation_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldAnalysisID holds the string denoting the analysis_id field in the database.
	FieldAnalysisID = "analysis_id"
	// FieldPly holds the string denoting the ply field in the database.
	FieldPly = "ply"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldQuestion holds the string denoting the question field in the database.
	FieldQuestion = "question"
	// FieldSummary holds the string denoting the summary field in the database.
	FieldSummary = "summary"
	// FieldBody holds the string denoting the body field in the database.
	FieldBody = "body"
	// Table holds the table name of the explanationevent in the database.
	Table = "explanation_events"
)

// Columns holds all SQL columns for explanationevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldAnalysisID,
	FieldPly,
	FieldKind,
	FieldQuestion,
	FieldSummary,
	FieldBody,
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
	// DefaultAnalysisID holds the default value on creation for the "analysis_id" field.
	DefaultAnalysisID string
	// DefaultPly holds the default value on creation for the "ply" field.
	DefaultPly int
	// KindValidator is a validator for the "kind" field. It is called by the builders before save.
	KindValidator func(string) error
	// DefaultQuestion holds the default value on creation for the "question" field.
	DefaultQuestion string
	// DefaultBody holds the default value on creation for the "body" field.
	DefaultBody string
)

// OrderOption defines the ordering options for the ExplanationEvent queries.
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

// ByPly orders the results by the ply field.
func ByPly(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPly, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByQuestion orders the results by the question field.
func ByQuestion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestion, opts...).ToFunc()
}

// BySummary orders the results by the summary field.
func BySummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummary, opts...).ToFunc()
}

// ByBody orders the results by the body field.
func ByBody(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBody, opts...).ToFunc()
}
