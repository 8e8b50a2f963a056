// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/chesscoach/ent/explanationevent"
	"github.com/abhisek/chesscoach/ent/predicate"
)

// ExplanationEventDelete is the builder for deleting a ExplanationEvent entity.
type ExplanationEventDelete struct {
	config
	hooks    []Hook
	mutation *ExplanationEventMutation
}

// Where appends a list predicates to the ExplanationEventDelete builder.
func (_d *ExplanationEventDelete) Where(ps ...predicate.ExplanationEvent) *ExplanationEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ExplanationEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExplanationEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ExplanationEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(explanationevent.Table, sqlgraph.NewFieldSpec(explanationevent.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ExplanationEventDeleteOne is the builder for deleting a single ExplanationEvent entity.
type ExplanationEventDeleteOne struct {
	_d *ExplanationEventDelete
}

// Where appends a list predicates to the ExplanationEventDelete builder.
func (_d *ExplanationEventDeleteOne) Where(ps ...predicate.ExplanationEvent) *ExplanationEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ExplanationEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{explanationevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExplanationEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
