// Code generated by ent, DO NOT EDIT.

package moveevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/chesscoach/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldEQ(FieldTimestamp, v))
}

// AnalysisID applies equality check predicate on the "analysis_id" field. It's identical to AnalysisIDEQ.
func AnalysisID(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldEQ(FieldAnalysisID, v))
}

// Ply applies equality check predicate on the "ply" field. It's identical to PlyEQ.
func Ply(v int) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldEQ(FieldPly, v))
}

// MoveNumber applies equality check predicate on the "move_number" field. It's identical to MoveNumberEQ.
func MoveNumber(v int) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldEQ(FieldMoveNumber, v))
}

// UciMove applies equality check predicate on the "uci_move" field. It's identical to UciMoveEQ.
func UciMove(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldEQ(FieldUciMove, v))
}

// San applies equality check predicate on the "san" field. It's identical to SanEQ.
func San(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldEQ(FieldSan, v))
}

// FenBefore applies equality check predicate on the "fen_before" field. It's identical to FenBeforeEQ.
func FenBefore(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldEQ(FieldFenBefore, v))
}

// FenAfter applies equality check predicate on the "fen_after" field. It's identical to FenAfterEQ.
func FenAfter(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldEQ(FieldFenAfter, v))
}

// EvalBefore applies equality check predicate on the "eval_before" field. It's identical to EvalBeforeEQ.
func EvalBefore(v float64) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldEQ(FieldEvalBefore, v))
}

// EvalAfter applies equality check predicate on the "eval_after" field. It's identical to EvalAfterEQ.
func EvalAfter(v float64) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldEQ(FieldEvalAfter, v))
}

// Classification applies equality check predicate on the "classification" field. It's identical to ClassificationEQ.
func Classification(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldEQ(FieldClassification, v))
}

// BestMove applies equality check predicate on the "best_move" field. It's identical to BestMoveEQ.
func BestMove(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldEQ(FieldBestMove, v))
}

// BestReply applies equality check predicate on the "best_reply" field. It's identical to BestReplyEQ.
func BestReply(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldEQ(FieldBestReply, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldLTE(FieldTimestamp, v))
}

// AnalysisIDEQ applies the EQ predicate on the "analysis_id" field.
func AnalysisIDEQ(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldEQ(FieldAnalysisID, v))
}

// AnalysisIDNEQ applies the NEQ predicate on the "analysis_id" field.
func AnalysisIDNEQ(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldNEQ(FieldAnalysisID, v))
}

// AnalysisIDIn applies the In predicate on the "analysis_id" field.
func AnalysisIDIn(vs ...string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldIn(FieldAnalysisID, vs...))
}

// AnalysisIDNotIn applies the NotIn predicate on the "analysis_id" field.
func AnalysisIDNotIn(vs ...string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldNotIn(FieldAnalysisID, vs...))
}

// AnalysisIDGT applies the GT predicate on the "analysis_id" field.
func AnalysisIDGT(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldGT(FieldAnalysisID, v))
}

// AnalysisIDGTE applies the GTE predicate on the "analysis_id" field.
func AnalysisIDGTE(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldGTE(FieldAnalysisID, v))
}

// AnalysisIDLT applies the LT predicate on the "analysis_id" field.
func AnalysisIDLT(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldLT(FieldAnalysisID, v))
}

// AnalysisIDLTE applies the LTE predicate on the "analysis_id" field.
func AnalysisIDLTE(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldLTE(FieldAnalysisID, v))
}

// AnalysisIDContains applies the Contains predicate on the "analysis_id" field.
func AnalysisIDContains(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldContains(FieldAnalysisID, v))
}

// AnalysisIDHasPrefix applies the HasPrefix predicate on the "analysis_id" field.
func AnalysisIDHasPrefix(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldHasPrefix(FieldAnalysisID, v))
}

// AnalysisIDHasSuffix applies the HasSuffix predicate on the "analysis_id" field.
func AnalysisIDHasSuffix(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldHasSuffix(FieldAnalysisID, v))
}

// AnalysisIDEqualFold applies the EqualFold predicate on the "analysis_id" field.
func AnalysisIDEqualFold(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldEqualFold(FieldAnalysisID, v))
}

// AnalysisIDContainsFold applies the ContainsFold predicate on the "analysis_id" field.
func AnalysisIDContainsFold(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldContainsFold(FieldAnalysisID, v))
}

// PlyEQ applies the EQ predicate on the "ply" field.
func PlyEQ(v int) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldEQ(FieldPly, v))
}

// PlyNEQ applies the NEQ predicate on the "ply" field.
func PlyNEQ(v int) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldNEQ(FieldPly, v))
}

// PlyIn applies the In predicate on the "ply" field.
func PlyIn(vs ...int) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldIn(FieldPly, vs...))
}

// PlyNotIn applies the NotIn predicate on the "ply" field.
func PlyNotIn(vs ...int) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldNotIn(FieldPly, vs...))
}

// PlyGT applies the GT predicate on the "ply" field.
func PlyGT(v int) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldGT(FieldPly, v))
}

// PlyGTE applies the GTE predicate on the "ply" field.
func PlyGTE(v int) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldGTE(FieldPly, v))
}

// PlyLT applies the LT predicate on the "ply" field.
func PlyLT(v int) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldLT(FieldPly, v))
}

// PlyLTE applies the LTE predicate on the "ply" field.
func PlyLTE(v int) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldLTE(FieldPly, v))
}

// MoveNumberEQ applies the EQ predicate on the "move_number" field.
func MoveNumberEQ(v int) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldEQ(FieldMoveNumber, v))
}

// MoveNumberNEQ applies the NEQ predicate on the "move_number" field.
func MoveNumberNEQ(v int) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldNEQ(FieldMoveNumber, v))
}

// MoveNumberIn applies the In predicate on the "move_number" field.
func MoveNumberIn(vs ...int) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldIn(FieldMoveNumber, vs...))
}

// MoveNumberNotIn applies the NotIn predicate on the "move_number" field.
func MoveNumberNotIn(vs ...int) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldNotIn(FieldMoveNumber, vs...))
}

// MoveNumberGT applies the GT predicate on the "move_number" field.
func MoveNumberGT(v int) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldGT(FieldMoveNumber, v))
}

// MoveNumberGTE applies the GTE predicate on the "move_number" field.
func MoveNumberGTE(v int) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldGTE(FieldMoveNumber, v))
}

// MoveNumberLT applies the LT predicate on the "move_number" field.
func MoveNumberLT(v int) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldLT(FieldMoveNumber, v))
}

// MoveNumberLTE applies the LTE predicate on the "move_number" field.
func MoveNumberLTE(v int) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldLTE(FieldMoveNumber, v))
}

// UciMoveEQ applies the EQ predicate on the "uci_move" field.
func UciMoveEQ(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldEQ(FieldUciMove, v))
}

// UciMoveNEQ applies the NEQ predicate on the "uci_move" field.
func UciMoveNEQ(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldNEQ(FieldUciMove, v))
}

// UciMoveIn applies the In predicate on the "uci_move" field.
func UciMoveIn(vs ...string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldIn(FieldUciMove, vs...))
}

// UciMoveNotIn applies the NotIn predicate on the "uci_move" field.
func UciMoveNotIn(vs ...string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldNotIn(FieldUciMove, vs...))
}

// UciMoveGT applies the GT predicate on the "uci_move" field.
func UciMoveGT(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldGT(FieldUciMove, v))
}

// UciMoveGTE applies the GTE predicate on the "uci_move" field.
func UciMoveGTE(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldGTE(FieldUciMove, v))
}

// UciMoveLT applies the LT predicate on the "uci_move" field.
func UciMoveLT(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldLT(FieldUciMove, v))
}

// UciMoveLTE applies the LTE predicate on the "uci_move" field.
func UciMoveLTE(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldLTE(FieldUciMove, v))
}

// UciMoveContains applies the Contains predicate on the "uci_move" field.
func UciMoveContains(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldContains(FieldUciMove, v))
}

// UciMoveHasPrefix applies the HasPrefix predicate on the "uci_move" field.
func UciMoveHasPrefix(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldHasPrefix(FieldUciMove, v))
}

// UciMoveHasSuffix applies the HasSuffix predicate on the "uci_move" field.
func UciMoveHasSuffix(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldHasSuffix(FieldUciMove, v))
}

// UciMoveEqualFold applies the EqualFold predicate on the "uci_move" field.
func UciMoveEqualFold(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldEqualFold(FieldUciMove, v))
}

// UciMoveContainsFold applies the ContainsFold predicate on the "uci_move" field.
func UciMoveContainsFold(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldContainsFold(FieldUciMove, v))
}

// SanEQ applies the EQ predicate on the "san" field.
func SanEQ(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldEQ(FieldSan, v))
}

// SanNEQ applies the NEQ predicate on the "san" field.
func SanNEQ(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldNEQ(FieldSan, v))
}

// SanIn applies the In predicate on the "san" field.
func SanIn(vs ...string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldIn(FieldSan, vs...))
}

// SanNotIn applies the NotIn predicate on the "san" field.
func SanNotIn(vs ...string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldNotIn(FieldSan, vs...))
}

// SanGT applies the GT predicate on the "san" field.
func SanGT(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldGT(FieldSan, v))
}

// SanGTE applies the GTE predicate on the "san" field.
func SanGTE(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldGTE(FieldSan, v))
}

// SanLT applies the LT predicate on the "san" field.
func SanLT(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldLT(FieldSan, v))
}

// SanLTE applies the LTE predicate on the "san" field.
func SanLTE(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldLTE(FieldSan, v))
}

// SanContains applies the Contains predicate on the "san" field.
func SanContains(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldContains(FieldSan, v))
}

// SanHasPrefix applies the HasPrefix predicate on the "san" field.
func SanHasPrefix(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldHasPrefix(FieldSan, v))
}

// SanHasSuffix applies the HasSuffix predicate on the "san" field.
func SanHasSuffix(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldHasSuffix(FieldSan, v))
}

// SanEqualFold applies the EqualFold predicate on the "san" field.
func SanEqualFold(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldEqualFold(FieldSan, v))
}

// SanContainsFold applies the ContainsFold predicate on the "san" field.
func SanContainsFold(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldContainsFold(FieldSan, v))
}

// FenBeforeEQ applies the EQ predicate on the "fen_before" field.
func FenBeforeEQ(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldEQ(FieldFenBefore, v))
}

// FenBeforeNEQ applies the NEQ predicate on the "fen_before" field.
func FenBeforeNEQ(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldNEQ(FieldFenBefore, v))
}

// FenBeforeIn applies the In predicate on the "fen_before" field.
func FenBeforeIn(vs ...string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldIn(FieldFenBefore, vs...))
}

// FenBeforeNotIn applies the NotIn predicate on the "fen_before" field.
func FenBeforeNotIn(vs ...string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldNotIn(FieldFenBefore, vs...))
}

// FenBeforeGT applies the GT predicate on the "fen_before" field.
func FenBeforeGT(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldGT(FieldFenBefore, v))
}

// FenBeforeGTE applies the GTE predicate on the "fen_before" field.
func FenBeforeGTE(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldGTE(FieldFenBefore, v))
}

// FenBeforeLT applies the LT predicate on the "fen_before" field.
func FenBeforeLT(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldLT(FieldFenBefore, v))
}

// FenBeforeLTE applies the LTE predicate on the "fen_before" field.
func FenBeforeLTE(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldLTE(FieldFenBefore, v))
}

// FenBeforeContains applies the Contains predicate on the "fen_before" field.
func FenBeforeContains(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldContains(FieldFenBefore, v))
}

// FenBeforeHasPrefix applies the HasPrefix predicate on the "fen_before" field.
func FenBeforeHasPrefix(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldHasPrefix(FieldFenBefore, v))
}

// FenBeforeHasSuffix applies the HasSuffix predicate on the "fen_before" field.
func FenBeforeHasSuffix(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldHasSuffix(FieldFenBefore, v))
}

// FenBeforeEqualFold applies the EqualFold predicate on the "fen_before" field.
func FenBeforeEqualFold(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldEqualFold(FieldFenBefore, v))
}

// FenBeforeContainsFold applies the ContainsFold predicate on the "fen_before" field.
func FenBeforeContainsFold(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldContainsFold(FieldFenBefore, v))
}

// FenAfterEQ applies the EQ predicate on the "fen_after" field.
func FenAfterEQ(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldEQ(FieldFenAfter, v))
}

// FenAfterNEQ applies the NEQ predicate on the "fen_after" field.
func FenAfterNEQ(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldNEQ(FieldFenAfter, v))
}

// FenAfterIn applies the In predicate on the "fen_after" field.
func FenAfterIn(vs ...string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldIn(FieldFenAfter, vs...))
}

// FenAfterNotIn applies the NotIn predicate on the "fen_after" field.
func FenAfterNotIn(vs ...string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldNotIn(FieldFenAfter, vs...))
}

// FenAfterGT applies the GT predicate on the "fen_after" field.
func FenAfterGT(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldGT(FieldFenAfter, v))
}

// FenAfterGTE applies the GTE predicate on the "fen_after" field.
func FenAfterGTE(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldGTE(FieldFenAfter, v))
}

// FenAfterLT applies the LT predicate on the "fen_after" field.
func FenAfterLT(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldLT(FieldFenAfter, v))
}

// FenAfterLTE applies the LTE predicate on the "fen_after" field.
func FenAfterLTE(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldLTE(FieldFenAfter, v))
}

// FenAfterContains applies the Contains predicate on the "fen_after" field.
func FenAfterContains(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldContains(FieldFenAfter, v))
}

// FenAfterHasPrefix applies the HasPrefix predicate on the "fen_after" field.
func FenAfterHasPrefix(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldHasPrefix(FieldFenAfter, v))
}

// FenAfterHasSuffix applies the HasSuffix predicate on the "fen_after" field.
func FenAfterHasSuffix(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldHasSuffix(FieldFenAfter, v))
}

// FenAfterEqualFold applies the EqualFold predicate on the "fen_after" field.
func FenAfterEqualFold(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldEqualFold(FieldFenAfter, v))
}

// FenAfterContainsFold applies the ContainsFold predicate on the "fen_after" field.
func FenAfterContainsFold(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldContainsFold(FieldFenAfter, v))
}

// EvalBeforeEQ applies the EQ predicate on the "eval_before" field.
func EvalBeforeEQ(v float64) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldEQ(FieldEvalBefore, v))
}

// EvalBeforeNEQ applies the NEQ predicate on the "eval_before" field.
func EvalBeforeNEQ(v float64) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldNEQ(FieldEvalBefore, v))
}

// EvalBeforeIn applies the In predicate on the "eval_before" field.
func EvalBeforeIn(vs ...float64) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldIn(FieldEvalBefore, vs...))
}

// EvalBeforeNotIn applies the NotIn predicate on the "eval_before" field.
func EvalBeforeNotIn(vs ...float64) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldNotIn(FieldEvalBefore, vs...))
}

// EvalBeforeGT applies the GT predicate on the "eval_before" field.
func EvalBeforeGT(v float64) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldGT(FieldEvalBefore, v))
}

// EvalBeforeGTE applies the GTE predicate on the "eval_before" field.
func EvalBeforeGTE(v float64) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldGTE(FieldEvalBefore, v))
}

// EvalBeforeLT applies the LT predicate on the "eval_before" field.
func EvalBeforeLT(v float64) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldLT(FieldEvalBefore, v))
}

// EvalBeforeLTE applies the LTE predicate on the "eval_before" field.
func EvalBeforeLTE(v float64) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldLTE(FieldEvalBefore, v))
}

// EvalAfterEQ applies the EQ predicate on the "eval_after" field.
func EvalAfterEQ(v float64) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldEQ(FieldEvalAfter, v))
}

// EvalAfterNEQ applies the NEQ predicate on the "eval_after" field.
func EvalAfterNEQ(v float64) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldNEQ(FieldEvalAfter, v))
}

// EvalAfterIn applies the In predicate on the "eval_after" field.
func EvalAfterIn(vs ...float64) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldIn(FieldEvalAfter, vs...))
}

// EvalAfterNotIn applies the NotIn predicate on the "eval_after" field.
func EvalAfterNotIn(vs ...float64) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldNotIn(FieldEvalAfter, vs...))
}

// EvalAfterGT applies the GT predicate on the "eval_after" field.
func EvalAfterGT(v float64) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldGT(FieldEvalAfter, v))
}

// EvalAfterGTE applies the GTE predicate on the "eval_after" field.
func EvalAfterGTE(v float64) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldGTE(FieldEvalAfter, v))
}

// EvalAfterLT applies the LT predicate on the "eval_after" field.
func EvalAfterLT(v float64) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldLT(FieldEvalAfter, v))
}

// EvalAfterLTE applies the LTE predicate on the "eval_after" field.
func EvalAfterLTE(v float64) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldLTE(FieldEvalAfter, v))
}

// ClassificationEQ applies the EQ predicate on the "classification" field.
func ClassificationEQ(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldEQ(FieldClassification, v))
}

// ClassificationNEQ applies the NEQ predicate on the "classification" field.
func ClassificationNEQ(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldNEQ(FieldClassification, v))
}

// ClassificationIn applies the In predicate on the "classification" field.
func ClassificationIn(vs ...string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldIn(FieldClassification, vs...))
}

// ClassificationNotIn applies the NotIn predicate on the "classification" field.
func ClassificationNotIn(vs ...string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldNotIn(FieldClassification, vs...))
}

// ClassificationGT applies the GT predicate on the "classification" field.
func ClassificationGT(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldGT(FieldClassification, v))
}

// ClassificationGTE applies the GTE predicate on the "classification" field.
func ClassificationGTE(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldGTE(FieldClassification, v))
}

// ClassificationLT applies the LT predicate on the "classification" field.
func ClassificationLT(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldLT(FieldClassification, v))
}

// ClassificationLTE applies the LTE predicate on the "classification" field.
func ClassificationLTE(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldLTE(FieldClassification, v))
}

// ClassificationContains applies the Contains predicate on the "classification" field.
func ClassificationContains(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldContains(FieldClassification, v))
}

// ClassificationHasPrefix applies the HasPrefix predicate on the "classification" field.
func ClassificationHasPrefix(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldHasPrefix(FieldClassification, v))
}

// ClassificationHasSuffix applies the HasSuffix predicate on the "classification" field.
func ClassificationHasSuffix(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldHasSuffix(FieldClassification, v))
}

// ClassificationEqualFold applies the EqualFold predicate on the "classification" field.
func ClassificationEqualFold(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldEqualFold(FieldClassification, v))
}

// ClassificationContainsFold applies the ContainsFold predicate on the "classification" field.
func ClassificationContainsFold(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldContainsFold(FieldClassification, v))
}

// BestMoveEQ applies the EQ predicate on the "best_move" field.
func BestMoveEQ(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldEQ(FieldBestMove, v))
}

// BestMoveNEQ applies the NEQ predicate on the "best_move" field.
func BestMoveNEQ(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldNEQ(FieldBestMove, v))
}

// BestMoveIn applies the In predicate on the "best_move" field.
func BestMoveIn(vs ...string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldIn(FieldBestMove, vs...))
}

// BestMoveNotIn applies the NotIn predicate on the "best_move" field.
func BestMoveNotIn(vs ...string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldNotIn(FieldBestMove, vs...))
}

// BestMoveGT applies the GT predicate on the "best_move" field.
func BestMoveGT(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldGT(FieldBestMove, v))
}

// BestMoveGTE applies the GTE predicate on the "best_move" field.
func BestMoveGTE(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldGTE(FieldBestMove, v))
}

// BestMoveLT applies the LT predicate on the "best_move" field.
func BestMoveLT(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldLT(FieldBestMove, v))
}

// BestMoveLTE applies the LTE predicate on the "best_move" field.
func BestMoveLTE(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldLTE(FieldBestMove, v))
}

// BestMoveContains applies the Contains predicate on the "best_move" field.
func BestMoveContains(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldContains(FieldBestMove, v))
}

// BestMoveHasPrefix applies the HasPrefix predicate on the "best_move" field.
func BestMoveHasPrefix(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldHasPrefix(FieldBestMove, v))
}

// BestMoveHasSuffix applies the HasSuffix predicate on the "best_move" field.
func BestMoveHasSuffix(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldHasSuffix(FieldBestMove, v))
}

// BestMoveEqualFold applies the EqualFold predicate on the "best_move" field.
func BestMoveEqualFold(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldEqualFold(FieldBestMove, v))
}

// BestMoveContainsFold applies the ContainsFold predicate on the "best_move" field.
func BestMoveContainsFold(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldContainsFold(FieldBestMove, v))
}

// BestReplyEQ applies the EQ predicate on the "best_reply" field.
func BestReplyEQ(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldEQ(FieldBestReply, v))
}

// BestReplyNEQ applies the NEQ predicate on the "best_reply" field.
func BestReplyNEQ(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldNEQ(FieldBestReply, v))
}

// BestReplyIn applies the In predicate on the "best_reply" field.
func BestReplyIn(vs ...string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldIn(FieldBestReply, vs...))
}

// BestReplyNotIn applies the NotIn predicate on the "best_reply" field.
func BestReplyNotIn(vs ...string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldNotIn(FieldBestReply, vs...))
}

// BestReplyGT applies the GT predicate on the "best_reply" field.
func BestReplyGT(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldGT(FieldBestReply, v))
}

// BestReplyGTE applies the GTE predicate on the "best_reply" field.
func BestReplyGTE(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldGTE(FieldBestReply, v))
}

// BestReplyLT applies the LT predicate on the "best_reply" field.
func BestReplyLT(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldLT(FieldBestReply, v))
}

// BestReplyLTE applies the LTE predicate on the "best_reply" field.
func BestReplyLTE(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldLTE(FieldBestReply, v))
}

// BestReplyContains applies the Contains predicate on the "best_reply" field.
func BestReplyContains(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldContains(FieldBestReply, v))
}

// BestReplyHasPrefix applies the HasPrefix predicate on the "best_reply" field.
func BestReplyHasPrefix(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldHasPrefix(FieldBestReply, v))
}

// BestReplyHasSuffix applies the HasSuffix predicate on the "best_reply" field.
func BestReplyHasSuffix(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldHasSuffix(FieldBestReply, v))
}

// BestReplyEqualFold applies the EqualFold predicate on the "best_reply" field.
func BestReplyEqualFold(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldEqualFold(FieldBestReply, v))
}

// BestReplyContainsFold applies the ContainsFold predicate on the "best_reply" field.
func BestReplyContainsFold(v string) predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldContainsFold(FieldBestReply, v))
}

// PvBeforeIsNil applies the IsNil predicate on the "pv_before" field.
func PvBeforeIsNil() predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldIsNull(FieldPvBefore))
}

// PvBeforeNotNil applies the NotNil predicate on the "pv_before" field.
func PvBeforeNotNil() predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldNotNull(FieldPvBefore))
}

// PvAfterIsNil applies the IsNil predicate on the "pv_after" field.
func PvAfterIsNil() predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldIsNull(FieldPvAfter))
}

// PvAfterNotNil applies the NotNil predicate on the "pv_after" field.
func PvAfterNotNil() predicate.MoveEvent {
	return predicate.MoveEvent(sql.FieldNotNull(FieldPvAfter))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MoveEvent) predicate.MoveEvent {
	return predicate.MoveEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MoveEvent) predicate.MoveEvent {
	return predicate.MoveEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MoveEvent) predicate.MoveEvent {
	return predicate.MoveEvent(sql.NotPredicates(p))
}
