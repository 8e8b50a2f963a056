// Code generated by ent, DO NOT EDIT.

package explanationevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/chesscoach/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldEQ(FieldTimestamp, v))
}

// AnalysisID applies equality check predicate on the "analysis_id" field. It's identical to AnalysisIDEQ.
func AnalysisID(v string) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldEQ(FieldAnalysisID, v))
}

// Ply applies equality check predicate on the "ply" field. It's identical to PlyEQ.
func Ply(v int) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldEQ(FieldPly, v))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldEQ(FieldKind, v))
}

// Question applies equality check predicate on the "question" field. It's identical to QuestionEQ.
func Question(v string) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldEQ(FieldQuestion, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldEQ(FieldSummary, v))
}

// Body applies equality check predicate on the "body" field. It's identical to BodyEQ.
func Body(v string) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldEQ(FieldBody, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldLTE(FieldTimestamp, v))
}

// AnalysisIDEQ applies the EQ predicate on the "analysis_id" field.
func AnalysisIDEQ(v string) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldEQ(FieldAnalysisID, v))
}

// AnalysisIDNEQ applies the NEQ predicate on the "analysis_id" field.
func AnalysisIDNEQ(v string) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldNEQ(FieldAnalysisID, v))
}

// AnalysisIDIn applies the In predicate on the "analysis_id" field.
func AnalysisIDIn(vs ...string) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldIn(FieldAnalysisID, vs...))
}

// AnalysisIDNotIn applies the NotIn predicate on the "analysis_id" field.
func AnalysisIDNotIn(vs ...string) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldNotIn(FieldAnalysisID, vs...))
}

// AnalysisIDGT applies the GT predicate on the "analysis_id" field.
func AnalysisIDGT(v string) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldGT(FieldAnalysisID, v))
}

// AnalysisIDGTE applies the GTE predicate on the "analysis_id" field.
func AnalysisIDGTE(v string) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldGTE(FieldAnalysisID, v))
}

// AnalysisIDLT applies the LT predicate on the "analysis_id" field.
func AnalysisIDLT(v string) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldLT(FieldAnalysisID, v))
}

// AnalysisIDLTE applies the LTE predicate on the "analysis_id" field.
func AnalysisIDLTE(v string) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldLTE(FieldAnalysisID, v))
}

// AnalysisIDContains applies the Contains predicate on the "analysis_id" field.
func AnalysisIDContains(v string) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldContains(FieldAnalysisID, v))
}

// AnalysisIDHasPrefix applies the HasPrefix predicate on the "analysis_id" field.
func AnalysisIDHasPrefix(v string) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldHasPrefix(FieldAnalysisID, v))
}

// AnalysisIDHasSuffix applies the HasSuffix predicate on the "analysis_id" field.
func AnalysisIDHasSuffix(v string) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldHasSuffix(FieldAnalysisID, v))
}

// AnalysisIDEqualFold applies the EqualFold predicate on the "analysis_id" field.
func AnalysisIDEqualFold(v string) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldEqualFold(FieldAnalysisID, v))
}

// AnalysisIDContainsFold applies the ContainsFold predicate on the "analysis_id" field.
func AnalysisIDContainsFold(v string) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldContainsFold(FieldAnalysisID, v))
}

// PlyEQ applies the EQ predicate on the "ply" field.
func PlyEQ(v int) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldEQ(FieldPly, v))
}

// PlyNEQ applies the NEQ predicate on the "ply" field.
func PlyNEQ(v int) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldNEQ(FieldPly, v))
}

// PlyIn applies the In predicate on the "ply" field.
func PlyIn(vs ...int) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldIn(FieldPly, vs...))
}

// PlyNotIn applies the NotIn predicate on the "ply" field.
func PlyNotIn(vs ...int) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldNotIn(FieldPly, vs...))
}

// PlyGT applies the GT predicate on the "ply" field.
func PlyGT(v int) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldGT(FieldPly, v))
}

// PlyGTE applies the GTE predicate on the "ply" field.
func PlyGTE(v int) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldGTE(FieldPly, v))
}

// PlyLT applies the LT predicate on the "ply" field.
func PlyLT(v int) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldLT(FieldPly, v))
}

// PlyLTE applies the LTE predicate on the "ply" field.
func PlyLTE(v int) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldLTE(FieldPly, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldContainsFold(FieldKind, v))
}

// QuestionEQ applies the EQ predicate on the "question" field.
func QuestionEQ(v string) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldEQ(FieldQuestion, v))
}

// QuestionNEQ applies the NEQ predicate on the "question" field.
func QuestionNEQ(v string) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldNEQ(FieldQuestion, v))
}

// QuestionIn applies the In predicate on the "question" field.
func QuestionIn(vs ...string) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldIn(FieldQuestion, vs...))
}

// QuestionNotIn applies the NotIn predicate on the "question" field.
func QuestionNotIn(vs ...string) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldNotIn(FieldQuestion, vs...))
}

// QuestionGT applies the GT predicate on the "question" field.
func QuestionGT(v string) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldGT(FieldQuestion, v))
}

// QuestionGTE applies the GTE predicate on the "question" field.
func QuestionGTE(v string) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldGTE(FieldQuestion, v))
}

// QuestionLT applies the LT predicate on the "question" field.
func QuestionLT(v string) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldLT(FieldQuestion, v))
}

// QuestionLTE applies the LTE predicate on the "question" field.
func QuestionLTE(v string) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldLTE(FieldQuestion, v))
}

// QuestionContains applies the Contains predicate on the "question" field.
func QuestionContains(v string) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldContains(FieldQuestion, v))
}

// QuestionHasPrefix applies the HasPrefix predicate on the "question" field.
func QuestionHasPrefix(v string) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldHasPrefix(FieldQuestion, v))
}

// QuestionHasSuffix applies the HasSuffix predicate on the "question" field.
func QuestionHasSuffix(v string) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldHasSuffix(FieldQuestion, v))
}

// QuestionEqualFold applies the EqualFold predicate on the "question" field.
func QuestionEqualFold(v string) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldEqualFold(FieldQuestion, v))
}

// QuestionContainsFold applies the ContainsFold predicate on the "question" field.
func QuestionContainsFold(v string) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldContainsFold(FieldQuestion, v))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldContainsFold(FieldSummary, v))
}

// BodyEQ applies the EQ predicate on the "body" field.
func BodyEQ(v string) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldEQ(FieldBody, v))
}

// BodyNEQ applies the NEQ predicate on the "body" field.
func BodyNEQ(v string) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldNEQ(FieldBody, v))
}

// BodyIn applies the In predicate on the "body" field.
func BodyIn(vs ...string) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldIn(FieldBody, vs...))
}

// BodyNotIn applies the NotIn predicate on the "body" field.
func BodyNotIn(vs ...string) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldNotIn(FieldBody, vs...))
}

// BodyGT applies the GT predicate on the "body" field.
func BodyGT(v string) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldGT(FieldBody, v))
}

// BodyGTE applies the GTE predicate on the "body" field.
func BodyGTE(v string) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldGTE(FieldBody, v))
}

// BodyLT applies the LT predicate on the "body" field.
func BodyLT(v string) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldLT(FieldBody, v))
}

// BodyLTE applies the LTE predicate on the "body" field.
func BodyLTE(v string) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldLTE(FieldBody, v))
}

// BodyContains applies the Contains predicate on the "body" field.
func BodyContains(v string) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldContains(FieldBody, v))
}

// BodyHasPrefix applies the HasPrefix predicate on the "body" field.
func BodyHasPrefix(v string) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldHasPrefix(FieldBody, v))
}

// BodyHasSuffix applies the HasSuffix predicate on the "body" field.
func BodyHasSuffix(v string) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldHasSuffix(FieldBody, v))
}

// BodyEqualFold applies the EqualFold predicate on the "body" field.
func BodyEqualFold(v string) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldEqualFold(FieldBody, v))
}

// BodyContainsFold applies the ContainsFold predicate on the "body" field.
func BodyContainsFold(v string) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.FieldContainsFold(FieldBody, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExplanationEvent) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExplanationEvent) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExplanationEvent) predicate.ExplanationEvent {
	return predicate.ExplanationEvent(sql.NotPredicates(p))
}
