// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/chesscoach/ent/moveevent"
	"github.com/abhisek/chesscoach/ent/predicate"
	"github.com/abhisek/chesscoach/ent/schema"
)

// MoveEventUpdate is the builder for updating MoveEvent entities.
type MoveEventUpdate struct {
	config
	hooks    []Hook
	mutation *MoveEventMutation
}

// Where appends a list predicates to the MoveEventUpdate builder.
func (_u *MoveEventUpdate) Where(ps ...predicate.MoveEvent) *MoveEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAnalysisID sets the "analysis_id" field.
func (_u *MoveEventUpdate) SetAnalysisID(v string) *MoveEventUpdate {
	_u.mutation.SetAnalysisID(v)
	return _u
}

// SetNillableAnalysisID sets the "analysis_id" field if the given value is not nil.
func (_u *MoveEventUpdate) SetNillableAnalysisID(v *string) *MoveEventUpdate {
	if v != nil {
		_u.SetAnalysisID(*v)
	}
	return _u
}

// SetPly sets the "ply" field.
func (_u *MoveEventUpdate) SetPly(v int) *MoveEventUpdate {
	_u.mutation.ResetPly()
	_u.mutation.SetPly(v)
	return _u
}

// SetNillablePly sets the "ply" field if the given value is not nil.
func (_u *MoveEventUpdate) SetNillablePly(v *int) *MoveEventUpdate {
	if v != nil {
		_u.SetPly(*v)
	}
	return _u
}

// AddPly adds value to the "ply" field.
func (_u *MoveEventUpdate) AddPly(v int) *MoveEventUpdate {
	_u.mutation.AddPly(v)
	return _u
}

// SetMoveNumber sets the "move_number" field.
func (_u *MoveEventUpdate) SetMoveNumber(v int) *MoveEventUpdate {
	_u.mutation.ResetMoveNumber()
	_u.mutation.SetMoveNumber(v)
	return _u
}

// SetNillableMoveNumber sets the "move_number" field if the given value is not nil.
func (_u *MoveEventUpdate) SetNillableMoveNumber(v *int) *MoveEventUpdate {
	if v != nil {
		_u.SetMoveNumber(*v)
	}
	return _u
}

// AddMoveNumber adds value to the "move_number" field.
func (_u *MoveEventUpdate) AddMoveNumber(v int) *MoveEventUpdate {
	_u.mutation.AddMoveNumber(v)
	return _u
}

// SetUciMove sets the "uci_move" field.
func (_u *MoveEventUpdate) SetUciMove(v string) *MoveEventUpdate {
	_u.mutation.SetUciMove(v)
	return _u
}

// SetNillableUciMove sets the "uci_move" field if the given value is not nil.
func (_u *MoveEventUpdate) SetNillableUciMove(v *string) *MoveEventUpdate {
	if v != nil {
		_u.SetUciMove(*v)
	}
	return _u
}

// SetSan sets the "san" field.
func (_u *MoveEventUpdate) SetSan(v string) *MoveEventUpdate {
	_u.mutation.SetSan(v)
	return _u
}

// SetNillableSan sets the "san" field if the given value is not nil.
func (_u *MoveEventUpdate) SetNillableSan(v *string) *MoveEventUpdate {
	if v != nil {
		_u.SetSan(*v)
	}
	return _u
}

// SetFenBefore sets the "fen_before" field.
func (_u *MoveEventUpdate) SetFenBefore(v string) *MoveEventUpdate {
	_u.mutation.SetFenBefore(v)
	return _u
}

// SetNillableFenBefore sets the "fen_before" field if the given value is not nil.
func (_u *MoveEventUpdate) SetNillableFenBefore(v *string) *MoveEventUpdate {
	if v != nil {
		_u.SetFenBefore(*v)
	}
	return _u
}

// SetFenAfter sets the "fen_after" field.
func (_u *MoveEventUpdate) SetFenAfter(v string) *MoveEventUpdate {
	_u.mutation.SetFenAfter(v)
	return _u
}

// SetNillableFenAfter sets the "fen_after" field if the given value is not nil.
func (_u *MoveEventUpdate) SetNillableFenAfter(v *string) *MoveEventUpdate {
	if v != nil {
		_u.SetFenAfter(*v)
	}
	return _u
}

// SetEvalBefore sets the "eval_before" field.
func (_u *MoveEventUpdate) SetEvalBefore(v float64) *MoveEventUpdate {
	_u.mutation.ResetEvalBefore()
	_u.mutation.SetEvalBefore(v)
	return _u
}

// SetNillableEvalBefore sets the "eval_before" field if the given value is not nil.
func (_u *MoveEventUpdate) SetNillableEvalBefore(v *float64) *MoveEventUpdate {
	if v != nil {
		_u.SetEvalBefore(*v)
	}
	return _u
}

// AddEvalBefore adds value to the "eval_before" field.
func (_u *MoveEventUpdate) AddEvalBefore(v float64) *MoveEventUpdate {
	_u.mutation.AddEvalBefore(v)
	return _u
}

// SetEvalAfter sets the "eval_after" field.
func (_u *MoveEventUpdate) SetEvalAfter(v float64) *MoveEventUpdate {
	_u.mutation.ResetEvalAfter()
	_u.mutation.SetEvalAfter(v)
	return _u
}

// SetNillableEvalAfter sets the "eval_after" field if the given value is not nil.
func (_u *MoveEventUpdate) SetNillableEvalAfter(v *float64) *MoveEventUpdate {
	if v != nil {
		_u.SetEvalAfter(*v)
	}
	return _u
}

// AddEvalAfter adds value to the "eval_after" field.
func (_u *MoveEventUpdate) AddEvalAfter(v float64) *MoveEventUpdate {
	_u.mutation.AddEvalAfter(v)
	return _u
}

// SetClassification sets the "classification" field.
func (_u *MoveEventUpdate) SetClassification(v string) *MoveEventUpdate {
	_u.mutation.SetClassification(v)
	return _u
}

// SetNillableClassification sets the "classification" field if the given value is not nil.
func (_u *MoveEventUpdate) SetNillableClassification(v *string) *MoveEventUpdate {
	if v != nil {
		_u.SetClassification(*v)
	}
	return _u
}

// SetBestMove sets the "best_move" field.
func (_u *MoveEventUpdate) SetBestMove(v string) *MoveEventUpdate {
	_u.mutation.SetBestMove(v)
	return _u
}

// SetNillableBestMove sets the "best_move" field if the given value is not nil.
func (_u *MoveEventUpdate) SetNillableBestMove(v *string) *MoveEventUpdate {
	if v != nil {
		_u.SetBestMove(*v)
	}
	return _u
}

// SetBestReply sets the "best_reply" field.
func (_u *MoveEventUpdate) SetBestReply(v string) *MoveEventUpdate {
	_u.mutation.SetBestReply(v)
	return _u
}

// SetNillableBestReply sets the "best_reply" field if the given value is not nil.
func (_u *MoveEventUpdate) SetNillableBestReply(v *string) *MoveEventUpdate {
	if v != nil {
		_u.SetBestReply(*v)
	}
	return _u
}

// SetPvBefore sets the "pv_before" field.
func (_u *MoveEventUpdate) SetPvBefore(v []schema.CandidateSummary) *MoveEventUpdate {
	_u.mutation.SetPvBefore(v)
	return _u
}

// AppendPvBefore appends value to the "pv_before" field.
func (_u *MoveEventUpdate) AppendPvBefore(v []schema.CandidateSummary) *MoveEventUpdate {
	_u.mutation.AppendPvBefore(v)
	return _u
}

// ClearPvBefore clears the value of the "pv_before" field.
func (_u *MoveEventUpdate) ClearPvBefore() *MoveEventUpdate {
	_u.mutation.ClearPvBefore()
	return _u
}

// SetPvAfter sets the "pv_after" field.
func (_u *MoveEventUpdate) SetPvAfter(v []schema.CandidateSummary) *MoveEventUpdate {
	_u.mutation.SetPvAfter(v)
	return _u
}

// AppendPvAfter appends value to the "pv_after" field.
func (_u *MoveEventUpdate) AppendPvAfter(v []schema.CandidateSummary) *MoveEventUpdate {
	_u.mutation.AppendPvAfter(v)
	return _u
}

// ClearPvAfter clears the value of the "pv_after" field.
func (_u *MoveEventUpdate) ClearPvAfter() *MoveEventUpdate {
	_u.mutation.ClearPvAfter()
	return _u
}

// Mutation returns the MoveEventMutation object of the builder.
func (_u *MoveEventUpdate) Mutation() *MoveEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MoveEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MoveEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MoveEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MoveEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MoveEventUpdate) check() error {
	if v, ok := _u.mutation.AnalysisID(); ok {
		if err := moveevent.AnalysisIDValidator(v); err != nil {
			return &ValidationError{Name: "analysis_id", err: fmt.Errorf(`ent: validator failed for field "MoveEvent.analysis_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UciMove(); ok {
		if err := moveevent.UciMoveValidator(v); err != nil {
			return &ValidationError{Name: "uci_move", err: fmt.Errorf(`ent: validator failed for field "MoveEvent.uci_move": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FenBefore(); ok {
		if err := moveevent.FenBeforeValidator(v); err != nil {
			return &ValidationError{Name: "fen_before", err: fmt.Errorf(`ent: validator failed for field "MoveEvent.fen_before": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FenAfter(); ok {
		if err := moveevent.FenAfterValidator(v); err != nil {
			return &ValidationError{Name: "fen_after", err: fmt.Errorf(`ent: validator failed for field "MoveEvent.fen_after": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Classification(); ok {
		if err := moveevent.ClassificationValidator(v); err != nil {
			return &ValidationError{Name: "classification", err: fmt.Errorf(`ent: validator failed for field "MoveEvent.classification": %w`, err)}
		}
	}
	return nil
}

func (_u *MoveEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(moveevent.Table, moveevent.Columns, sqlgraph.NewFieldSpec(moveevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AnalysisID(); ok {
		_spec.SetField(moveevent.FieldAnalysisID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Ply(); ok {
		_spec.SetField(moveevent.FieldPly, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPly(); ok {
		_spec.AddField(moveevent.FieldPly, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MoveNumber(); ok {
		_spec.SetField(moveevent.FieldMoveNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMoveNumber(); ok {
		_spec.AddField(moveevent.FieldMoveNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UciMove(); ok {
		_spec.SetField(moveevent.FieldUciMove, field.TypeString, value)
	}
	if value, ok := _u.mutation.San(); ok {
		_spec.SetField(moveevent.FieldSan, field.TypeString, value)
	}
	if value, ok := _u.mutation.FenBefore(); ok {
		_spec.SetField(moveevent.FieldFenBefore, field.TypeString, value)
	}
	if value, ok := _u.mutation.FenAfter(); ok {
		_spec.SetField(moveevent.FieldFenAfter, field.TypeString, value)
	}
	if value, ok := _u.mutation.EvalBefore(); ok {
		_spec.SetField(moveevent.FieldEvalBefore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEvalBefore(); ok {
		_spec.AddField(moveevent.FieldEvalBefore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EvalAfter(); ok {
		_spec.SetField(moveevent.FieldEvalAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEvalAfter(); ok {
		_spec.AddField(moveevent.FieldEvalAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Classification(); ok {
		_spec.SetField(moveevent.FieldClassification, field.TypeString, value)
	}
	if value, ok := _u.mutation.BestMove(); ok {
		_spec.SetField(moveevent.FieldBestMove, field.TypeString, value)
	}
	if value, ok := _u.mutation.BestReply(); ok {
		_spec.SetField(moveevent.FieldBestReply, field.TypeString, value)
	}
	if value, ok := _u.mutation.PvBefore(); ok {
		_spec.SetField(moveevent.FieldPvBefore, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPvBefore(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, moveevent.FieldPvBefore, value)
		})
	}
	if _u.mutation.PvBeforeCleared() {
		_spec.ClearField(moveevent.FieldPvBefore, field.TypeJSON)
	}
	if value, ok := _u.mutation.PvAfter(); ok {
		_spec.SetField(moveevent.FieldPvAfter, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPvAfter(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, moveevent.FieldPvAfter, value)
		})
	}
	if _u.mutation.PvAfterCleared() {
		_spec.ClearField(moveevent.FieldPvAfter, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{moveevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MoveEventUpdateOne is the builder for updating a single MoveEvent entity.
type MoveEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MoveEventMutation
}

// SetAnalysisID sets the "analysis_id" field.
func (_u *MoveEventUpdateOne) SetAnalysisID(v string) *MoveEventUpdateOne {
	_u.mutation.SetAnalysisID(v)
	return _u
}

// SetNillableAnalysisID sets the "analysis_id" field if the given value is not nil.
func (_u *MoveEventUpdateOne) SetNillableAnalysisID(v *string) *MoveEventUpdateOne {
	if v != nil {
		_u.SetAnalysisID(*v)
	}
	return _u
}

// SetPly sets the "ply" field.
func (_u *MoveEventUpdateOne) SetPly(v int) *MoveEventUpdateOne {
	_u.mutation.ResetPly()
	_u.mutation.SetPly(v)
	return _u
}

// SetNillablePly sets the "ply" field if the given value is not nil.
func (_u *MoveEventUpdateOne) SetNillablePly(v *int) *MoveEventUpdateOne {
	if v != nil {
		_u.SetPly(*v)
	}
	return _u
}

// AddPly adds value to the "ply" field.
func (_u *MoveEventUpdateOne) AddPly(v int) *MoveEventUpdateOne {
	_u.mutation.AddPly(v)
	return _u
}

// SetMoveNumber sets the "move_number" field.
func (_u *MoveEventUpdateOne) SetMoveNumber(v int) *MoveEventUpdateOne {
	_u.mutation.ResetMoveNumber()
	_u.mutation.SetMoveNumber(v)
	return _u
}

// SetNillableMoveNumber sets the "move_number" field if the given value is not nil.
func (_u *MoveEventUpdateOne) SetNillableMoveNumber(v *int) *MoveEventUpdateOne {
	if v != nil {
		_u.SetMoveNumber(*v)
	}
	return _u
}

// AddMoveNumber adds value to the "move_number" field.
func (_u *MoveEventUpdateOne) AddMoveNumber(v int) *MoveEventUpdateOne {
	_u.mutation.AddMoveNumber(v)
	return _u
}

// SetUciMove sets the "uci_move" field.
func (_u *MoveEventUpdateOne) SetUciMove(v string) *MoveEventUpdateOne {
	_u.mutation.SetUciMove(v)
	return _u
}

// SetNillableUciMove sets the "uci_move" field if the given value is not nil.
func (_u *MoveEventUpdateOne) SetNillableUciMove(v *string) *MoveEventUpdateOne {
	if v != nil {
		_u.SetUciMove(*v)
	}
	return _u
}

// SetSan sets the "san" field.
func (_u *MoveEventUpdateOne) SetSan(v string) *MoveEventUpdateOne {
	_u.mutation.SetSan(v)
	return _u
}

// SetNillableSan sets the "san" field if the given value is not nil.
func (_u *MoveEventUpdateOne) SetNillableSan(v *string) *MoveEventUpdateOne {
	if v != nil {
		_u.SetSan(*v)
	}
	return _u
}

// SetFenBefore sets the "fen_before" field.
func (_u *MoveEventUpdateOne) SetFenBefore(v string) *MoveEventUpdateOne {
	_u.mutation.SetFenBefore(v)
	return _u
}

// SetNillableFenBefore sets the "fen_before" field if the given value is not nil.
func (_u *MoveEventUpdateOne) SetNillableFenBefore(v *string) *MoveEventUpdateOne {
	if v != nil {
		_u.SetFenBefore(*v)
	}
	return _u
}

// SetFenAfter sets the "fen_after" field.
func (_u *MoveEventUpdateOne) SetFenAfter(v string) *MoveEventUpdateOne {
	_u.mutation.SetFenAfter(v)
	return _u
}

// SetNillableFenAfter sets the "fen_after" field if the given value is not nil.
func (_u *MoveEventUpdateOne) SetNillableFenAfter(v *string) *MoveEventUpdateOne {
	if v != nil {
		_u.SetFenAfter(*v)
	}
	return _u
}

// SetEvalBefore sets the "eval_before" field.
func (_u *MoveEventUpdateOne) SetEvalBefore(v float64) *MoveEventUpdateOne {
	_u.mutation.ResetEvalBefore()
	_u.mutation.SetEvalBefore(v)
	return _u
}

// SetNillableEvalBefore sets the "eval_before" field if the given value is not nil.
func (_u *MoveEventUpdateOne) SetNillableEvalBefore(v *float64) *MoveEventUpdateOne {
	if v != nil {
		_u.SetEvalBefore(*v)
	}
	return _u
}

// AddEvalBefore adds value to the "eval_before" field.
func (_u *MoveEventUpdateOne) AddEvalBefore(v float64) *MoveEventUpdateOne {
	_u.mutation.AddEvalBefore(v)
	return _u
}

// SetEvalAfter sets the "eval_after" field.
func (_u *MoveEventUpdateOne) SetEvalAfter(v float64) *MoveEventUpdateOne {
	_u.mutation.ResetEvalAfter()
	_u.mutation.SetEvalAfter(v)
	return _u
}

// SetNillableEvalAfter sets the "eval_after" field if the given value is not nil.
func (_u *MoveEventUpdateOne) SetNillableEvalAfter(v *float64) *MoveEventUpdateOne {
	if v != nil {
		_u.SetEvalAfter(*v)
	}
	return _u
}

// AddEvalAfter adds value to the "eval_after" field.
func (_u *MoveEventUpdateOne) AddEvalAfter(v float64) *MoveEventUpdateOne {
	_u.mutation.AddEvalAfter(v)
	return _u
}

// SetClassification sets the "classification" field.
func (_u *MoveEventUpdateOne) SetClassification(v string) *MoveEventUpdateOne {
	_u.mutation.SetClassification(v)
	return _u
}

// SetNillableClassification sets the "classification" field if the given value is not nil.
func (_u *MoveEventUpdateOne) SetNillableClassification(v *string) *MoveEventUpdateOne {
	if v != nil {
		_u.SetClassification(*v)
	}
	return _u
}

// SetBestMove sets the "best_move" field.
func (_u *MoveEventUpdateOne) SetBestMove(v string) *MoveEventUpdateOne {
	_u.mutation.SetBestMove(v)
	return _u
}

// SetNillableBestMove sets the "best_move" field if the given value is not nil.
func (_u *MoveEventUpdateOne) SetNillableBestMove(v *string) *MoveEventUpdateOne {
	if v != nil {
		_u.SetBestMove(*v)
	}
	return _u
}

// SetBestReply sets the "best_reply" field.
func (_u *MoveEventUpdateOne) SetBestReply(v string) *MoveEventUpdateOne {
	_u.mutation.SetBestReply(v)
	return _u
}

// SetNillableBestReply sets the "best_reply" field if the given value is not nil.
func (_u *MoveEventUpdateOne) SetNillableBestReply(v *string) *MoveEventUpdateOne {
	if v != nil {
		_u.SetBestReply(*v)
	}
	return _u
}

// SetPvBefore sets the "pv_before" field.
func (_u *MoveEventUpdateOne) SetPvBefore(v []schema.CandidateSummary) *MoveEventUpdateOne {
	_u.mutation.SetPvBefore(v)
	return _u
}

// AppendPvBefore appends value to the "pv_before" field.
func (_u *MoveEventUpdateOne) AppendPvBefore(v []schema.CandidateSummary) *MoveEventUpdateOne {
	_u.mutation.AppendPvBefore(v)
	return _u
}

// ClearPvBefore clears the value of the "pv_before" field.
func (_u *MoveEventUpdateOne) ClearPvBefore() *MoveEventUpdateOne {
	_u.mutation.ClearPvBefore()
	return _u
}

// SetPvAfter sets the "pv_after" field.
func (_u *MoveEventUpdateOne) SetPvAfter(v []schema.CandidateSummary) *MoveEventUpdateOne {
	_u.mutation.SetPvAfter(v)
	return _u
}

// AppendPvAfter appends value to the "pv_after" field.
func (_u *MoveEventUpdateOne) AppendPvAfter(v []schema.CandidateSummary) *MoveEventUpdateOne {
	_u.mutation.AppendPvAfter(v)
	return _u
}

// ClearPvAfter clears the value of the "pv_after" field.
func (_u *MoveEventUpdateOne) ClearPvAfter() *MoveEventUpdateOne {
	_u.mutation.ClearPvAfter()
	return _u
}

// Mutation returns the MoveEventMutation object of the builder.
func (_u *MoveEventUpdateOne) Mutation() *MoveEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the MoveEventUpdate builder.
func (_u *MoveEventUpdateOne) Where(ps ...predicate.MoveEvent) *MoveEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MoveEventUpdateOne) Select(field string, fields ...string) *MoveEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MoveEvent entity.
func (_u *MoveEventUpdateOne) Save(ctx context.Context) (*MoveEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MoveEventUpdateOne) SaveX(ctx context.Context) *MoveEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MoveEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MoveEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MoveEventUpdateOne) check() error {
	if v, ok := _u.mutation.AnalysisID(); ok {
		if err := moveevent.AnalysisIDValidator(v); err != nil {
			return &ValidationError{Name: "analysis_id", err: fmt.Errorf(`ent: validator failed for field "MoveEvent.analysis_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UciMove(); ok {
		if err := moveevent.UciMoveValidator(v); err != nil {
			return &ValidationError{Name: "uci_move", err: fmt.Errorf(`ent: validator failed for field "MoveEvent.uci_move": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FenBefore(); ok {
		if err := moveevent.FenBeforeValidator(v); err != nil {
			return &ValidationError{Name: "fen_before", err: fmt.Errorf(`ent: validator failed for field "MoveEvent.fen_before": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FenAfter(); ok {
		if err := moveevent.FenAfterValidator(v); err != nil {
			return &ValidationError{Name: "fen_after", err: fmt.Errorf(`ent: validator failed for field "MoveEvent.fen_after": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Classification(); ok {
		if err := moveevent.ClassificationValidator(v); err != nil {
			return &ValidationError{Name: "classification", err: fmt.Errorf(`ent: validator failed for field "MoveEvent.classification": %w`, err)}
		}
	}
	return nil
}

func (_u *MoveEventUpdateOne) sqlSave(ctx context.Context) (_node *MoveEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(moveevent.Table, moveevent.Columns, sqlgraph.NewFieldSpec(moveevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MoveEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, moveevent.FieldID)
		for _, f := range fields {
			if !moveevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != moveevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AnalysisID(); ok {
		_spec.SetField(moveevent.FieldAnalysisID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Ply(); ok {
		_spec.SetField(moveevent.FieldPly, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPly(); ok {
		_spec.AddField(moveevent.FieldPly, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MoveNumber(); ok {
		_spec.SetField(moveevent.FieldMoveNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMoveNumber(); ok {
		_spec.AddField(moveevent.FieldMoveNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UciMove(); ok {
		_spec.SetField(moveevent.FieldUciMove, field.TypeString, value)
	}
	if value, ok := _u.mutation.San(); ok {
		_spec.SetField(moveevent.FieldSan, field.TypeString, value)
	}
	if value, ok := _u.mutation.FenBefore(); ok {
		_spec.SetField(moveevent.FieldFenBefore, field.TypeString, value)
	}
	if value, ok := _u.mutation.FenAfter(); ok {
		_spec.SetField(moveevent.FieldFenAfter, field.TypeString, value)
	}
	if value, ok := _u.mutation.EvalBefore(); ok {
		_spec.SetField(moveevent.FieldEvalBefore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEvalBefore(); ok {
		_spec.AddField(moveevent.FieldEvalBefore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EvalAfter(); ok {
		_spec.SetField(moveevent.FieldEvalAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEvalAfter(); ok {
		_spec.AddField(moveevent.FieldEvalAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Classification(); ok {
		_spec.SetField(moveevent.FieldClassification, field.TypeString, value)
	}
	if value, ok := _u.mutation.BestMove(); ok {
		_spec.SetField(moveevent.FieldBestMove, field.TypeString, value)
	}
	if value, ok := _u.mutation.BestReply(); ok {
		_spec.SetField(moveevent.FieldBestReply, field.TypeString, value)
	}
	if value, ok := _u.mutation.PvBefore(); ok {
		_spec.SetField(moveevent.FieldPvBefore, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPvBefore(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, moveevent.FieldPvBefore, value)
		})
	}
	if _u.mutation.PvBeforeCleared() {
		_spec.ClearField(moveevent.FieldPvBefore, field.TypeJSON)
	}
	if value, ok := _u.mutation.PvAfter(); ok {
		_spec.SetField(moveevent.FieldPvAfter, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPvAfter(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, moveevent.FieldPvAfter, value)
		})
	}
	if _u.mutation.PvAfterCleared() {
		_spec.ClearField(moveevent.FieldPvAfter, field.TypeJSON)
	}
	_node = &MoveEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{moveevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
