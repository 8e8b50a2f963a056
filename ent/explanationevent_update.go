// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/chesscoach/ent/explanationevent"
	"github.com/abhisek/chesscoach/ent/predicate"
)

// ExplanationEventUpdate is the builder for updating ExplanationEvent entities.
type ExplanationEventUpdate struct {
	config
	hooks    []Hook
	mutation *ExplanationEventMutation
}

// Where appends a list predicates to the ExplanationEventUpdate builder.
func (_u *ExplanationEventUpdate) Where(ps ...predicate.ExplanationEvent) *ExplanationEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAnalysisID sets the "analysis_id" field.
func (_u *ExplanationEventUpdate) SetAnalysisID(v string) *ExplanationEventUpdate {
	_u.mutation.SetAnalysisID(v)
	return _u
}

// SetNillableAnalysisID sets the "analysis_id" field if the given value is not nil.
func (_u *ExplanationEventUpdate) SetNillableAnalysisID(v *string) *ExplanationEventUpdate {
	if v != nil {
		_u.SetAnalysisID(*v)
	}
	return _u
}

// SetPly sets the "ply" field.
func (_u *ExplanationEventUpdate) SetPly(v int) *ExplanationEventUpdate {
	_u.mutation.ResetPly()
	_u.mutation.SetPly(v)
	return _u
}

// SetNillablePly sets the "ply" field if the given value is not nil.
func (_u *ExplanationEventUpdate) SetNillablePly(v *int) *ExplanationEventUpdate {
	if v != nil {
		_u.SetPly(*v)
	}
	return _u
}

// AddPly adds value to the "ply" field.
func (_u *ExplanationEventUpdate) AddPly(v int) *ExplanationEventUpdate {
	_u.mutation.AddPly(v)
	return _u
}

// SetKind sets the "kind" field.
func (_u *ExplanationEventUpdate) SetKind(v string) *ExplanationEventUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ExplanationEventUpdate) SetNillableKind(v *string) *ExplanationEventUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetQuestion sets the "question" field.
func (_u *ExplanationEventUpdate) SetQuestion(v string) *ExplanationEventUpdate {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *ExplanationEventUpdate) SetNillableQuestion(v *string) *ExplanationEventUpdate {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *ExplanationEventUpdate) SetSummary(v string) *ExplanationEventUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *ExplanationEventUpdate) SetNillableSummary(v *string) *ExplanationEventUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *ExplanationEventUpdate) SetBody(v string) *ExplanationEventUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *ExplanationEventUpdate) SetNillableBody(v *string) *ExplanationEventUpdate {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// Mutation returns the ExplanationEventMutation object of the builder.
func (_u *ExplanationEventUpdate) Mutation() *ExplanationEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExplanationEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExplanationEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExplanationEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExplanationEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExplanationEventUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := explanationevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "ExplanationEvent.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *ExplanationEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(explanationevent.Table, explanationevent.Columns, sqlgraph.NewFieldSpec(explanationevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AnalysisID(); ok {
		_spec.SetField(explanationevent.FieldAnalysisID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Ply(); ok {
		_spec.SetField(explanationevent.FieldPly, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPly(); ok {
		_spec.AddField(explanationevent.FieldPly, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(explanationevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(explanationevent.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(explanationevent.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(explanationevent.FieldBody, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{explanationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExplanationEventUpdateOne is the builder for updating a single ExplanationEvent entity.
type ExplanationEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExplanationEventMutation
}

// SetAnalysisID sets the "analysis_id" field.
func (_u *ExplanationEventUpdateOne) SetAnalysisID(v string) *ExplanationEventUpdateOne {
	_u.mutation.SetAnalysisID(v)
	return _u
}

// SetNillableAnalysisID sets the "analysis_id" field if the given value is not nil.
func (_u *ExplanationEventUpdateOne) SetNillableAnalysisID(v *string) *ExplanationEventUpdateOne {
	if v != nil {
		_u.SetAnalysisID(*v)
	}
	return _u
}

// SetPly sets the "ply" field.
func (_u *ExplanationEventUpdateOne) SetPly(v int) *ExplanationEventUpdateOne {
	_u.mutation.ResetPly()
	_u.mutation.SetPly(v)
	return _u
}

// SetNillablePly sets the "ply" field if the given value is not nil.
func (_u *ExplanationEventUpdateOne) SetNillablePly(v *int) *ExplanationEventUpdateOne {
	if v != nil {
		_u.SetPly(*v)
	}
	return _u
}

// AddPly adds value to the "ply" field.
func (_u *ExplanationEventUpdateOne) AddPly(v int) *ExplanationEventUpdateOne {
	_u.mutation.AddPly(v)
	return _u
}

// SetKind sets the "kind" field.
func (_u *ExplanationEventUpdateOne) SetKind(v string) *ExplanationEventUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ExplanationEventUpdateOne) SetNillableKind(v *string) *ExplanationEventUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetQuestion sets the "question" field.
func (_u *ExplanationEventUpdateOne) SetQuestion(v string) *ExplanationEventUpdateOne {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *ExplanationEventUpdateOne) SetNillableQuestion(v *string) *ExplanationEventUpdateOne {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *ExplanationEventUpdateOne) SetSummary(v string) *ExplanationEventUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *ExplanationEventUpdateOne) SetNillableSummary(v *string) *ExplanationEventUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *ExplanationEventUpdateOne) SetBody(v string) *ExplanationEventUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *ExplanationEventUpdateOne) SetNillableBody(v *string) *ExplanationEventUpdateOne {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// Mutation returns the ExplanationEventMutation object of the builder.
func (_u *ExplanationEventUpdateOne) Mutation() *ExplanationEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExplanationEventUpdate builder.
func (_u *ExplanationEventUpdateOne) Where(ps ...predicate.ExplanationEvent) *ExplanationEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExplanationEventUpdateOne) Select(field string, fields ...string) *ExplanationEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExplanationEvent entity.
func (_u *ExplanationEventUpdateOne) Save(ctx context.Context) (*ExplanationEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExplanationEventUpdateOne) SaveX(ctx context.Context) *ExplanationEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExplanationEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExplanationEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExplanationEventUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := explanationevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "ExplanationEvent.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *ExplanationEventUpdateOne) sqlSave(ctx context.Context) (_node *ExplanationEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(explanationevent.Table, explanationevent.Columns, sqlgraph.NewFieldSpec(explanationevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExplanationEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, explanationevent.FieldID)
		for _, f := range fields {
			if !explanationevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != explanationevent.FieldID {
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
		_spec.SetField(explanationevent.FieldAnalysisID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Ply(); ok {
		_spec.SetField(explanationevent.FieldPly, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPly(); ok {
		_spec.AddField(explanationevent.FieldPly, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(explanationevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(explanationevent.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(explanationevent.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(explanationevent.FieldBody, field.TypeString, value)
	}
	_node = &ExplanationEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{explanationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
