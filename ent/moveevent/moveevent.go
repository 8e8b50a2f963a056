// Code generated by ent, DO NOT EDIT.

package moveevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the moveevent type in the database.
	Label = "move_event"
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
	// FieldMoveNumber holds the string denoting the move_number field in the database.
	FieldMoveNumber = "move_number"
	// FieldUciMove holds the string denoting the uci_move field in the database.
	FieldUciMove = "uci_move"
	// FieldSan holds the string denoting the san field in the database.
	FieldSan = "san"
	// FieldFenBefore holds the string denoting the fen_before field in the database.
	FieldFenBefore = "fen_before"
	// FieldFenAfter holds the string denoting the fen_after field in the database.
	FieldFenAfter = "fen_after"
	// FieldEvalBefore holds the string denoting the eval_before field in the database.
	FieldEvalBefore = "eval_before"
	// FieldEvalAfter holds the string denoting the eval_after field in the database.
	FieldEvalAfter = "eval_after"
	// FieldClassification holds the string denoting the classification field in the database.
	FieldClassification = "classification"
	// FieldBestMove holds the string denoting the best_move field in the database.
	FieldBestMove = "best_move"
	// FieldBestReply holds the string denoting the best_reply field in the database.
	FieldBestReply = "best_reply"
	// FieldPvBefore holds the string denoting the pv_before field in the database.
	FieldPvBefore = "pv_before"
	// FieldPvAfter holds the string denoting the pv_after field in the database.
	FieldPvAfter = "pv_after"
	// Table holds the table name of the moveevent in the database.
	Table = "move_events"
)

// Columns holds all SQL columns for moveevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldAnalysisID,
	FieldPly,
	FieldMoveNumber,
	FieldUciMove,
	FieldSan,
	FieldFenBefore,
	FieldFenAfter,
	FieldEvalBefore,
	FieldEvalAfter,
	FieldClassification,
	FieldBestMove,
	FieldBestReply,
	FieldPvBefore,
	FieldPvAfter,
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
	// UciMoveValidator is a validator for the "uci_move" field. It is called by the builders before save.
	UciMoveValidator func(string) error
	// DefaultSan holds the default value on creation for the "san" field.
	DefaultSan string
	// FenBeforeValidator is a validator for the "fen_before" field. It is called by the builders before save.
	FenBeforeValidator func(string) error
	// FenAfterValidator is a validator for the "fen_after" field. It is called by the builders before save.
	FenAfterValidator func(string) error
	// ClassificationValidator is a validator for the "classification" field. It is called by the builders before save.
	ClassificationValidator func(string) error
	// DefaultBestMove holds the default value on creation for the "best_move" field.
	DefaultBestMove string
	// DefaultBestReply holds the default value on creation for the "best_reply" field.
	DefaultBestReply string
)

// OrderOption defines the ordering options for the MoveEvent queries.
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

// ByMoveNumber orders the results by the move_number field.
func ByMoveNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMoveNumber, opts...).ToFunc()
}

// ByUciMove orders the results by the uci_move field.
func ByUciMove(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUciMove, opts...).ToFunc()
}

// BySan orders the results by the san field.
func BySan(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSan, opts...).ToFunc()
}

// ByFenBefore orders the results by the fen_before field.
func ByFenBefore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFenBefore, opts...).ToFunc()
}

// ByFenAfter orders the results by the fen_after field.
func ByFenAfter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFenAfter, opts...).ToFunc()
}

// ByEvalBefore orders the results by the eval_before field.
func ByEvalBefore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEvalBefore, opts...).ToFunc()
}

// ByEvalAfter orders the results by the eval_after field.
func ByEvalAfter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEvalAfter, opts...).ToFunc()
}

// ByClassification orders the results by the classification field.
func ByClassification(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClassification, opts...).ToFunc()
}

// ByBestMove orders the results by the best_move field.
func ByBestMove(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBestMove, opts...).ToFunc()
}

// ByBestReply orders the results by the best_reply field.
func ByBestReply(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBestReply, opts...).ToFunc()
}
