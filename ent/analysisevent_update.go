// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/chesscoach/ent/analysisevent"
	"github.com/abhisek/chesscoach/ent/predicate"
)

// AnalysisEventUpdate is the builder for updating AnalysisEvent entities.
type AnalysisEventUpdate struct {
	config
	hooks    []Hook
	mutation *AnalysisEventMutation
}

// Where appends a list predicates to the AnalysisEventUpdate builder.
func (_u *AnalysisEventUpdate) Where(ps ...predicate.AnalysisEvent) *AnalysisEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAnalysisID sets the "analysis_id" field.
func (_u *AnalysisEventUpdate) SetAnalysisID(v string) *AnalysisEventUpdate {
	_u.mutation.SetAnalysisID(v)
	return _u
}

// SetNillableAnalysisID sets the "analysis_id" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableAnalysisID(v *string) *AnalysisEventUpdate {
	if v != nil {
		_u.SetAnalysisID(*v)
	}
	return _u
}

// SetUsername sets the "username" field.
func (_u *AnalysisEventUpdate) SetUsername(v string) *AnalysisEventUpdate {
	_u.mutation.SetUsername(v)
	return _u
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableUsername(v *string) *AnalysisEventUpdate {
	if v != nil {
		_u.SetUsername(*v)
	}
	return _u
}

// SetColor sets the "color" field.
func (_u *AnalysisEventUpdate) SetColor(v string) *AnalysisEventUpdate {
	_u.mutation.SetColor(v)
	return _u
}

// SetNillableColor sets the "color" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableColor(v *string) *AnalysisEventUpdate {
	if v != nil {
		_u.SetColor(*v)
	}
	return _u
}

// SetWhite sets the "white" field.
func (_u *AnalysisEventUpdate) SetWhite(v string) *AnalysisEventUpdate {
	_u.mutation.SetWhite(v)
	return _u
}

// SetNillableWhite sets the "white" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableWhite(v *string) *AnalysisEventUpdate {
	if v != nil {
		_u.SetWhite(*v)
	}
	return _u
}

// SetBlack sets the "black" field.
func (_u *AnalysisEventUpdate) SetBlack(v string) *AnalysisEventUpdate {
	_u.mutation.SetBlack(v)
	return _u
}

// SetNillableBlack sets the "black" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableBlack(v *string) *AnalysisEventUpdate {
	if v != nil {
		_u.SetBlack(*v)
	}
	return _u
}

// SetEventName sets the "event_name" field.
func (_u *AnalysisEventUpdate) SetEventName(v string) *AnalysisEventUpdate {
	_u.mutation.SetEventName(v)
	return _u
}

// SetNillableEventName sets the "event_name" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableEventName(v *string) *AnalysisEventUpdate {
	if v != nil {
		_u.SetEventName(*v)
	}
	return _u
}

// SetGameDate sets the "game_date" field.
func (_u *AnalysisEventUpdate) SetGameDate(v string) *AnalysisEventUpdate {
	_u.mutation.SetGameDate(v)
	return _u
}

// SetNillableGameDate sets the "game_date" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableGameDate(v *string) *AnalysisEventUpdate {
	if v != nil {
		_u.SetGameDate(*v)
	}
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *AnalysisEventUpdate) SetOutcome(v string) *AnalysisEventUpdate {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableOutcome(v *string) *AnalysisEventUpdate {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetPgn sets the "pgn" field.
func (_u *AnalysisEventUpdate) SetPgn(v string) *AnalysisEventUpdate {
	_u.mutation.SetPgn(v)
	return _u
}

// SetNillablePgn sets the "pgn" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillablePgn(v *string) *AnalysisEventUpdate {
	if v != nil {
		_u.SetPgn(*v)
	}
	return _u
}

// SetMoveCount sets the "move_count" field.
func (_u *AnalysisEventUpdate) SetMoveCount(v int) *AnalysisEventUpdate {
	_u.mutation.ResetMoveCount()
	_u.mutation.SetMoveCount(v)
	return _u
}

// SetNillableMoveCount sets the "move_count" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableMoveCount(v *int) *AnalysisEventUpdate {
	if v != nil {
		_u.SetMoveCount(*v)
	}
	return _u
}

// AddMoveCount adds value to the "move_count" field.
func (_u *AnalysisEventUpdate) AddMoveCount(v int) *AnalysisEventUpdate {
	_u.mutation.AddMoveCount(v)
	return _u
}

// SetSource sets the "source" field.
func (_u *AnalysisEventUpdate) SetSource(v string) *AnalysisEventUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableSource(v *string) *AnalysisEventUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// Mutation returns the AnalysisEventMutation object of the builder.
func (_u *AnalysisEventUpdate) Mutation() *AnalysisEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnalysisEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnalysisEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisEventUpdate) check() error {
	if v, ok := _u.mutation.AnalysisID(); ok {
		if err := analysisevent.AnalysisIDValidator(v); err != nil {
			return &ValidationError{Name: "analysis_id", err: fmt.Errorf(`ent: validator failed for field "AnalysisEvent.analysis_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Username(); ok {
		if err := analysisevent.UsernameValidator(v); err != nil {
			return &ValidationError{Name: "username", err: fmt.Errorf(`ent: validator failed for field "AnalysisEvent.username": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Color(); ok {
		if err := analysisevent.ColorValidator(v); err != nil {
			return &ValidationError{Name: "color", err: fmt.Errorf(`ent: validator failed for field "AnalysisEvent.color": %w`, err)}
		}
	}
	return nil
}

func (_u *AnalysisEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysisevent.Table, analysisevent.Columns, sqlgraph.NewFieldSpec(analysisevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AnalysisID(); ok {
		_spec.SetField(analysisevent.FieldAnalysisID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Username(); ok {
		_spec.SetField(analysisevent.FieldUsername, field.TypeString, value)
	}
	if value, ok := _u.mutation.Color(); ok {
		_spec.SetField(analysisevent.FieldColor, field.TypeString, value)
	}
	if value, ok := _u.mutation.White(); ok {
		_spec.SetField(analysisevent.FieldWhite, field.TypeString, value)
	}
	if value, ok := _u.mutation.Black(); ok {
		_spec.SetField(analysisevent.FieldBlack, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventName(); ok {
		_spec.SetField(analysisevent.FieldEventName, field.TypeString, value)
	}
	if value, ok := _u.mutation.GameDate(); ok {
		_spec.SetField(analysisevent.FieldGameDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(analysisevent.FieldOutcome, field.TypeString, value)
	}
	if value, ok := _u.mutation.Pgn(); ok {
		_spec.SetField(analysisevent.FieldPgn, field.TypeString, value)
	}
	if value, ok := _u.mutation.MoveCount(); ok {
		_spec.SetField(analysisevent.FieldMoveCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMoveCount(); ok {
		_spec.AddField(analysisevent.FieldMoveCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(analysisevent.FieldSource, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysisevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnalysisEventUpdateOne is the builder for updating a single AnalysisEvent entity.
type AnalysisEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnalysisEventMutation
}

// SetAnalysisID sets the "analysis_id" field.
func (_u *AnalysisEventUpdateOne) SetAnalysisID(v string) *AnalysisEventUpdateOne {
	_u.mutation.SetAnalysisID(v)
	return _u
}

// SetNillableAnalysisID sets the "analysis_id" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableAnalysisID(v *string) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetAnalysisID(*v)
	}
	return _u
}

// SetUsername sets the "username" field.
func (_u *AnalysisEventUpdateOne) SetUsername(v string) *AnalysisEventUpdateOne {
	_u.mutation.SetUsername(v)
	return _u
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableUsername(v *string) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetUsername(*v)
	}
	return _u
}

// SetColor sets the "color" field.
func (_u *AnalysisEventUpdateOne) SetColor(v string) *AnalysisEventUpdateOne {
	_u.mutation.SetColor(v)
	return _u
}

// SetNillableColor sets the "color" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableColor(v *string) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetColor(*v)
	}
	return _u
}

// SetWhite sets the "white" field.
func (_u *AnalysisEventUpdateOne) SetWhite(v string) *AnalysisEventUpdateOne {
	_u.mutation.SetWhite(v)
	return _u
}

// SetNillableWhite sets the "white" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableWhite(v *string) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetWhite(*v)
	}
	return _u
}

// SetBlack sets the "black" field.
func (_u *AnalysisEventUpdateOne) SetBlack(v string) *AnalysisEventUpdateOne {
	_u.mutation.SetBlack(v)
	return _u
}

// SetNillableBlack sets the "black" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableBlack(v *string) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetBlack(*v)
	}
	return _u
}

// SetEventName sets the "event_name" field.
func (_u *AnalysisEventUpdateOne) SetEventName(v string) *AnalysisEventUpdateOne {
	_u.mutation.SetEventName(v)
	return _u
}

// SetNillableEventName sets the "event_name" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableEventName(v *string) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetEventName(*v)
	}
	return _u
}

// SetGameDate sets the "game_date" field.
func (_u *AnalysisEventUpdateOne) SetGameDate(v string) *AnalysisEventUpdateOne {
	_u.mutation.SetGameDate(v)
	return _u
}

// SetNillableGameDate sets the "game_date" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableGameDate(v *string) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetGameDate(*v)
	}
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *AnalysisEventUpdateOne) SetOutcome(v string) *AnalysisEventUpdateOne {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableOutcome(v *string) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetPgn sets the "pgn" field.
func (_u *AnalysisEventUpdateOne) SetPgn(v string) *AnalysisEventUpdateOne {
	_u.mutation.SetPgn(v)
	return _u
}

// SetNillablePgn sets the "pgn" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillablePgn(v *string) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetPgn(*v)
	}
	return _u
}

// SetMoveCount sets the "move_count" field.
func (_u *AnalysisEventUpdateOne) SetMoveCount(v int) *AnalysisEventUpdateOne {
	_u.mutation.ResetMoveCount()
	_u.mutation.SetMoveCount(v)
	return _u
}

// SetNillableMoveCount sets the "move_count" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableMoveCount(v *int) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetMoveCount(*v)
	}
	return _u
}

// AddMoveCount adds value to the "move_count" field.
func (_u *AnalysisEventUpdateOne) AddMoveCount(v int) *AnalysisEventUpdateOne {
	_u.mutation.AddMoveCount(v)
	return _u
}

// SetSource sets the "source" field.
func (_u *AnalysisEventUpdateOne) SetSource(v string) *AnalysisEventUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableSource(v *string) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// Mutation returns the AnalysisEventMutation object of the builder.
func (_u *AnalysisEventUpdateOne) Mutation() *AnalysisEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnalysisEventUpdate builder.
func (_u *AnalysisEventUpdateOne) Where(ps ...predicate.AnalysisEvent) *AnalysisEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnalysisEventUpdateOne) Select(field string, fields ...string) *AnalysisEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnalysisEvent entity.
func (_u *AnalysisEventUpdateOne) Save(ctx context.Context) (*AnalysisEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisEventUpdateOne) SaveX(ctx context.Context) *AnalysisEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnalysisEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisEventUpdateOne) check() error {
	if v, ok := _u.mutation.AnalysisID(); ok {
		if err := analysisevent.AnalysisIDValidator(v); err != nil {
			return &ValidationError{Name: "analysis_id", err: fmt.Errorf(`ent: validator failed for field "AnalysisEvent.analysis_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Username(); ok {
		if err := analysisevent.UsernameValidator(v); err != nil {
			return &ValidationError{Name: "username", err: fmt.Errorf(`ent: validator failed for field "AnalysisEvent.username": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Color(); ok {
		if err := analysisevent.ColorValidator(v); err != nil {
			return &ValidationError{Name: "color", err: fmt.Errorf(`ent: validator failed for field "AnalysisEvent.color": %w`, err)}
		}
	}
	return nil
}

func (_u *AnalysisEventUpdateOne) sqlSave(ctx context.Context) (_node *AnalysisEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysisevent.Table, analysisevent.Columns, sqlgraph.NewFieldSpec(analysisevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnalysisEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, analysisevent.FieldID)
		for _, f := range fields {
			if !analysisevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != analysisevent.FieldID {
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
		_spec.SetField(analysisevent.FieldAnalysisID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Username(); ok {
		_spec.SetField(analysisevent.FieldUsername, field.TypeString, value)
	}
	if value, ok := _u.mutation.Color(); ok {
		_spec.SetField(analysisevent.FieldColor, field.TypeString, value)
	}
	if value, ok := _u.mutation.White(); ok {
		_spec.SetField(analysisevent.FieldWhite, field.TypeString, value)
	}
	if value, ok := _u.mutation.Black(); ok {
		_spec.SetField(analysisevent.FieldBlack, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventName(); ok {
		_spec.SetField(analysisevent.FieldEventName, field.TypeString, value)
	}
	if value, ok := _u.mutation.GameDate(); ok {
		_spec.SetField(analysisevent.FieldGameDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(analysisevent.FieldOutcome, field.TypeString, value)
	}
	if value, ok := _u.mutation.Pgn(); ok {
		_spec.SetField(analysisevent.FieldPgn, field.TypeString, value)
	}
	if value, ok := _u.mutation.MoveCount(); ok {
		_spec.SetField(analysisevent.FieldMoveCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMoveCount(); ok {
		_spec.AddField(analysisevent.FieldMoveCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(analysisevent.FieldSource, field.TypeString, value)
	}
	_node = &AnalysisEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysisevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
