// Code generated by ent, DO NOT EDIT.

package analysisevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/chesscoach/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldTimestamp, v))
}

// AnalysisID applies equality check predicate on the "analysis_id" field. It's identical to AnalysisIDEQ.
func AnalysisID(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldAnalysisID, v))
}

// Username applies equality check predicate on the "username" field. It's identical to UsernameEQ.
func Username(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldUsername, v))
}

// Color applies equality check predicate on the "color" field. It's identical to ColorEQ.
func Color(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldColor, v))
}

// White applies equality check predicate on the "white" field. It's identical to WhiteEQ.
func White(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldWhite, v))
}

// Black applies equality check predicate on the "black" field. It's identical to BlackEQ.
func Black(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldBlack, v))
}

// EventName applies equality check predicate on the "event_name" field. It's identical to EventNameEQ.
func EventName(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldEventName, v))
}

// GameDate applies equality check predicate on the "game_date" field. It's identical to GameDateEQ.
func GameDate(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldGameDate, v))
}

// Outcome applies equality check predicate on the "outcome" field. It's identical to OutcomeEQ.
func Outcome(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldOutcome, v))
}

// Pgn applies equality check predicate on the "pgn" field. It's identical to PgnEQ.
func Pgn(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldPgn, v))
}

// MoveCount applies equality check predicate on the "move_count" field. It's identical to MoveCountEQ.
func MoveCount(v int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldMoveCount, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldSource, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLTE(FieldTimestamp, v))
}

// AnalysisIDEQ applies the EQ predicate on the "analysis_id" field.
func AnalysisIDEQ(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldAnalysisID, v))
}

// AnalysisIDNEQ applies the NEQ predicate on the "analysis_id" field.
func AnalysisIDNEQ(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNEQ(FieldAnalysisID, v))
}

// AnalysisIDIn applies the In predicate on the "analysis_id" field.
func AnalysisIDIn(vs ...string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldIn(FieldAnalysisID, vs...))
}

// AnalysisIDNotIn applies the NotIn predicate on the "analysis_id" field.
func AnalysisIDNotIn(vs ...string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNotIn(FieldAnalysisID, vs...))
}

// AnalysisIDGT applies the GT predicate on the "analysis_id" field.
func AnalysisIDGT(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGT(FieldAnalysisID, v))
}

// AnalysisIDGTE applies the GTE predicate on the "analysis_id" field.
func AnalysisIDGTE(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGTE(FieldAnalysisID, v))
}

// AnalysisIDLT applies the LT predicate on the "analysis_id" field.
func AnalysisIDLT(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLT(FieldAnalysisID, v))
}

// AnalysisIDLTE applies the LTE predicate on the "analysis_id" field.
func AnalysisIDLTE(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLTE(FieldAnalysisID, v))
}

// AnalysisIDContains applies the Contains predicate on the "analysis_id" field.
func AnalysisIDContains(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldContains(FieldAnalysisID, v))
}

// AnalysisIDHasPrefix applies the HasPrefix predicate on the "analysis_id" field.
func AnalysisIDHasPrefix(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldHasPrefix(FieldAnalysisID, v))
}

// AnalysisIDHasSuffix applies the HasSuffix predicate on the "analysis_id" field.
func AnalysisIDHasSuffix(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldHasSuffix(FieldAnalysisID, v))
}

// AnalysisIDEqualFold applies the EqualFold predicate on the "analysis_id" field.
func AnalysisIDEqualFold(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEqualFold(FieldAnalysisID, v))
}

// AnalysisIDContainsFold applies the ContainsFold predicate on the "analysis_id" field.
func AnalysisIDContainsFold(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldContainsFold(FieldAnalysisID, v))
}

// UsernameEQ applies the EQ predicate on the "username" field.
func UsernameEQ(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldUsername, v))
}

// UsernameNEQ applies the NEQ predicate on the "username" field.
func UsernameNEQ(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNEQ(FieldUsername, v))
}

// UsernameIn applies the In predicate on the "username" field.
func UsernameIn(vs ...string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldIn(FieldUsername, vs...))
}

// UsernameNotIn applies the NotIn predicate on the "username" field.
func UsernameNotIn(vs ...string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNotIn(FieldUsername, vs...))
}

// UsernameGT applies the GT predicate on the "username" field.
func UsernameGT(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGT(FieldUsername, v))
}

// UsernameGTE applies the GTE predicate on the "username" field.
func UsernameGTE(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGTE(FieldUsername, v))
}

// UsernameLT applies the LT predicate on the "username" field.
func UsernameLT(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLT(FieldUsername, v))
}

// UsernameLTE applies the LTE predicate on the "username" field.
func UsernameLTE(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLTE(FieldUsername, v))
}

// UsernameContains applies the Contains predicate on the "username" field.
func UsernameContains(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldContains(FieldUsername, v))
}

// UsernameHasPrefix applies the HasPrefix predicate on the "username" field.
func UsernameHasPrefix(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldHasPrefix(FieldUsername, v))
}

// UsernameHasSuffix applies the HasSuffix predicate on the "username" field.
func UsernameHasSuffix(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldHasSuffix(FieldUsername, v))
}

// UsernameEqualFold applies the EqualFold predicate on the "username" field.
func UsernameEqualFold(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEqualFold(FieldUsername, v))
}

// UsernameContainsFold applies the ContainsFold predicate on the "username" field.
func UsernameContainsFold(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldContainsFold(FieldUsername, v))
}

// ColorEQ applies the EQ predicate on the "color" field.
func ColorEQ(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldColor, v))
}

// ColorNEQ applies the NEQ predicate on the "color" field.
func ColorNEQ(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNEQ(FieldColor, v))
}

// ColorIn applies the In predicate on the "color" field.
func ColorIn(vs ...string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldIn(FieldColor, vs...))
}

// ColorNotIn applies the NotIn predicate on the "color" field.
func ColorNotIn(vs ...string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNotIn(FieldColor, vs...))
}

// ColorGT applies the GT predicate on the "color" field.
func ColorGT(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGT(FieldColor, v))
}

// ColorGTE applies the GTE predicate on the "color" field.
func ColorGTE(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGTE(FieldColor, v))
}

// ColorLT applies the LT predicate on the "color" field.
func ColorLT(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLT(FieldColor, v))
}

// ColorLTE applies the LTE predicate on the "color" field.
func ColorLTE(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLTE(FieldColor, v))
}

// ColorContains applies the Contains predicate on the "color" field.
func ColorContains(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldContains(FieldColor, v))
}

// ColorHasPrefix applies the HasPrefix predicate on the "color" field.
func ColorHasPrefix(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldHasPrefix(FieldColor, v))
}

// ColorHasSuffix applies the HasSuffix predicate on the "color" field.
func ColorHasSuffix(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldHasSuffix(FieldColor, v))
}

// ColorEqualFold applies the EqualFold predicate on the "color" field.
func ColorEqualFold(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEqualFold(FieldColor, v))
}

// ColorContainsFold applies the ContainsFold predicate on the "color" field.
func ColorContainsFold(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldContainsFold(FieldColor, v))
}

// WhiteEQ applies the EQ predicate on the "white" field.
func WhiteEQ(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldWhite, v))
}

// WhiteNEQ applies the NEQ predicate on the "white" field.
func WhiteNEQ(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNEQ(FieldWhite, v))
}

// WhiteIn applies the In predicate on the "white" field.
func WhiteIn(vs ...string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldIn(FieldWhite, vs...))
}

// WhiteNotIn applies the NotIn predicate on the "white" field.
func WhiteNotIn(vs ...string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNotIn(FieldWhite, vs...))
}

// WhiteGT applies the GT predicate on the "white" field.
func WhiteGT(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGT(FieldWhite, v))
}

// WhiteGTE applies the GTE predicate on the "white" field.
func WhiteGTE(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGTE(FieldWhite, v))
}

// WhiteLT applies the LT predicate on the "white" field.
func WhiteLT(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLT(FieldWhite, v))
}

// WhiteLTE applies the LTE predicate on the "white" field.
func WhiteLTE(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLTE(FieldWhite, v))
}

// WhiteContains applies the Contains predicate on the "white" field.
func WhiteContains(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldContains(FieldWhite, v))
}

// WhiteHasPrefix applies the HasPrefix predicate on the "white" field.
func WhiteHasPrefix(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldHasPrefix(FieldWhite, v))
}

// WhiteHasSuffix applies the HasSuffix predicate on the "white" field.
func WhiteHasSuffix(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldHasSuffix(FieldWhite, v))
}

// WhiteEqualFold applies the EqualFold predicate on the "white" field.
func WhiteEqualFold(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEqualFold(FieldWhite, v))
}

// WhiteContainsFold applies the ContainsFold predicate on the "white" field.
func WhiteContainsFold(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldContainsFold(FieldWhite, v))
}

// BlackEQ applies the EQ predicate on the "black" field.
func BlackEQ(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldBlack, v))
}

// BlackNEQ applies the NEQ predicate on the "black" field.
func BlackNEQ(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNEQ(FieldBlack, v))
}

// BlackIn applies the In predicate on the "black" field.
func BlackIn(vs ...string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldIn(FieldBlack, vs...))
}

// BlackNotIn applies the NotIn predicate on the "black" field.
func BlackNotIn(vs ...string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNotIn(FieldBlack, vs...))
}

// BlackGT applies the GT predicate on the "black" field.
func BlackGT(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGT(FieldBlack, v))
}

// BlackGTE applies the GTE predicate on the "black" field.
func BlackGTE(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGTE(FieldBlack, v))
}

// BlackLT applies the LT predicate on the "black" field.
func BlackLT(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLT(FieldBlack, v))
}

// BlackLTE applies the LTE predicate on the "black" field.
func BlackLTE(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLTE(FieldBlack, v))
}

// BlackContains applies the Contains predicate on the "black" field.
func BlackContains(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldContains(FieldBlack, v))
}

// BlackHasPrefix applies the HasPrefix predicate on the "black" field.
func BlackHasPrefix(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldHasPrefix(FieldBlack, v))
}

// BlackHasSuffix applies the HasSuffix predicate on the "black" field.
func BlackHasSuffix(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldHasSuffix(FieldBlack, v))
}

// BlackEqualFold applies the EqualFold predicate on the "black" field.
func BlackEqualFold(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEqualFold(FieldBlack, v))
}

// BlackContainsFold applies the ContainsFold predicate on the "black" field.
func BlackContainsFold(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldContainsFold(FieldBlack, v))
}

// EventNameEQ applies the EQ predicate on the "event_name" field.
func EventNameEQ(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldEventName, v))
}

// EventNameNEQ applies the NEQ predicate on the "event_name" field.
func EventNameNEQ(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNEQ(FieldEventName, v))
}

// EventNameIn applies the In predicate on the "event_name" field.
func EventNameIn(vs ...string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldIn(FieldEventName, vs...))
}

// EventNameNotIn applies the NotIn predicate on the "event_name" field.
func EventNameNotIn(vs ...string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNotIn(FieldEventName, vs...))
}

// EventNameGT applies the GT predicate on the "event_name" field.
func EventNameGT(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGT(FieldEventName, v))
}

// EventNameGTE applies the GTE predicate on the "event_name" field.
func EventNameGTE(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGTE(FieldEventName, v))
}

// EventNameLT applies the LT predicate on the "event_name" field.
func EventNameLT(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLT(FieldEventName, v))
}

// EventNameLTE applies the LTE predicate on the "event_name" field.
func EventNameLTE(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLTE(FieldEventName, v))
}

// EventNameContains applies the Contains predicate on the "event_name" field.
func EventNameContains(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldContains(FieldEventName, v))
}

// EventNameHasPrefix applies the HasPrefix predicate on the "event_name" field.
func EventNameHasPrefix(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldHasPrefix(FieldEventName, v))
}

// EventNameHasSuffix applies the HasSuffix predicate on the "event_name" field.
func EventNameHasSuffix(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldHasSuffix(FieldEventName, v))
}

// EventNameEqualFold applies the EqualFold predicate on the "event_name" field.
func EventNameEqualFold(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEqualFold(FieldEventName, v))
}

// EventNameContainsFold applies the ContainsFold predicate on the "event_name" field.
func EventNameContainsFold(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldContainsFold(FieldEventName, v))
}

// GameDateEQ applies the EQ predicate on the "game_date" field.
func GameDateEQ(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldGameDate, v))
}

// GameDateNEQ applies the NEQ predicate on the "game_date" field.
func GameDateNEQ(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNEQ(FieldGameDate, v))
}

// GameDateIn applies the In predicate on the "game_date" field.
func GameDateIn(vs ...string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldIn(FieldGameDate, vs...))
}

// GameDateNotIn applies the NotIn predicate on the "game_date" field.
func GameDateNotIn(vs ...string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNotIn(FieldGameDate, vs...))
}

// GameDateGT applies the GT predicate on the "game_date" field.
func GameDateGT(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGT(FieldGameDate, v))
}

// GameDateGTE applies the GTE predicate on the "game_date" field.
func GameDateGTE(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGTE(FieldGameDate, v))
}

// GameDateLT applies the LT predicate on the "game_date" field.
func GameDateLT(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLT(FieldGameDate, v))
}

// GameDateLTE applies the LTE predicate on the "game_date" field.
func GameDateLTE(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLTE(FieldGameDate, v))
}

// GameDateContains applies the Contains predicate on the "game_date" field.
func GameDateContains(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldContains(FieldGameDate, v))
}

// GameDateHasPrefix applies the HasPrefix predicate on the "game_date" field.
func GameDateHasPrefix(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldHasPrefix(FieldGameDate, v))
}

// GameDateHasSuffix applies the HasSuffix predicate on the "game_date" field.
func GameDateHasSuffix(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldHasSuffix(FieldGameDate, v))
}

// GameDateEqualFold applies the EqualFold predicate on the "game_date" field.
func GameDateEqualFold(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEqualFold(FieldGameDate, v))
}

// GameDateContainsFold applies the ContainsFold predicate on the "game_date" field.
func GameDateContainsFold(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldContainsFold(FieldGameDate, v))
}

// OutcomeEQ applies the EQ predicate on the "outcome" field.
func OutcomeEQ(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldOutcome, v))
}

// OutcomeNEQ applies the NEQ predicate on the "outcome" field.
func OutcomeNEQ(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNEQ(FieldOutcome, v))
}

// OutcomeIn applies the In predicate on the "outcome" field.
func OutcomeIn(vs ...string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldIn(FieldOutcome, vs...))
}

// OutcomeNotIn applies the NotIn predicate on the "outcome" field.
func OutcomeNotIn(vs ...string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNotIn(FieldOutcome, vs...))
}

// OutcomeGT applies the GT predicate on the "outcome" field.
func OutcomeGT(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGT(FieldOutcome, v))
}

// OutcomeGTE applies the GTE predicate on the "outcome" field.
func OutcomeGTE(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGTE(FieldOutcome, v))
}

// OutcomeLT applies the LT predicate on the "outcome" field.
func OutcomeLT(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLT(FieldOutcome, v))
}

// OutcomeLTE applies the LTE predicate on the "outcome" field.
func OutcomeLTE(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLTE(FieldOutcome, v))
}

// OutcomeContains applies the Contains predicate on the "outcome" field.
func OutcomeContains(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldContains(FieldOutcome, v))
}

// OutcomeHasPrefix applies the HasPrefix predicate on the "outcome" field.
func OutcomeHasPrefix(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldHasPrefix(FieldOutcome, v))
}

// OutcomeHasSuffix applies the HasSuffix predicate on the "outcome" field.
func OutcomeHasSuffix(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldHasSuffix(FieldOutcome, v))
}

// OutcomeEqualFold applies the EqualFold predicate on the "outcome" field.
func OutcomeEqualFold(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEqualFold(FieldOutcome, v))
}

// OutcomeContainsFold applies the ContainsFold predicate on the "outcome" field.
func OutcomeContainsFold(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldContainsFold(FieldOutcome, v))
}

// PgnEQ applies the EQ predicate on the "pgn" field.
func PgnEQ(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldPgn, v))
}

// PgnNEQ applies the NEQ predicate on the "pgn" field.
func PgnNEQ(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNEQ(FieldPgn, v))
}

// PgnIn applies the In predicate on the "pgn" field.
func PgnIn(vs ...string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldIn(FieldPgn, vs...))
}

// PgnNotIn applies the NotIn predicate on the "pgn" field.
func PgnNotIn(vs ...string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNotIn(FieldPgn, vs...))
}

// PgnGT applies the GT predicate on the "pgn" field.
func PgnGT(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGT(FieldPgn, v))
}

// PgnGTE applies the GTE predicate on the "pgn" field.
func PgnGTE(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGTE(FieldPgn, v))
}

// PgnLT applies the LT predicate on the "pgn" field.
func PgnLT(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLT(FieldPgn, v))
}

// PgnLTE applies the LTE predicate on the "pgn" field.
func PgnLTE(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLTE(FieldPgn, v))
}

// PgnContains applies the Contains predicate on the "pgn" field.
func PgnContains(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldContains(FieldPgn, v))
}

// PgnHasPrefix applies the HasPrefix predicate on the "pgn" field.
func PgnHasPrefix(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldHasPrefix(FieldPgn, v))
}

// PgnHasSuffix applies the HasSuffix predicate on the "pgn" field.
func PgnHasSuffix(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldHasSuffix(FieldPgn, v))
}

// PgnEqualFold applies the EqualFold predicate on the "pgn" field.
func PgnEqualFold(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEqualFold(FieldPgn, v))
}

// PgnContainsFold applies the ContainsFold predicate on the "pgn" field.
func PgnContainsFold(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldContainsFold(FieldPgn, v))
}

// MoveCountEQ applies the EQ predicate on the "move_count" field.
func MoveCountEQ(v int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldMoveCount, v))
}

// MoveCountNEQ applies the NEQ predicate on the "move_count" field.
func MoveCountNEQ(v int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNEQ(FieldMoveCount, v))
}

// MoveCountIn applies the In predicate on the "move_count" field.
func MoveCountIn(vs ...int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldIn(FieldMoveCount, vs...))
}

// MoveCountNotIn applies the NotIn predicate on the "move_count" field.
func MoveCountNotIn(vs ...int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNotIn(FieldMoveCount, vs...))
}

// MoveCountGT applies the GT predicate on the "move_count" field.
func MoveCountGT(v int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGT(FieldMoveCount, v))
}

// MoveCountGTE applies the GTE predicate on the "move_count" field.
func MoveCountGTE(v int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGTE(FieldMoveCount, v))
}

// MoveCountLT applies the LT predicate on the "move_count" field.
func MoveCountLT(v int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLT(FieldMoveCount, v))
}

// MoveCountLTE applies the LTE predicate on the "move_count" field.
func MoveCountLTE(v int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLTE(FieldMoveCount, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldContainsFold(FieldSource, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AnalysisEvent) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AnalysisEvent) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AnalysisEvent) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.NotPredicates(p))
}
