// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/chesscoach/ent/explanationevent"
)

// ExplanationEventCreate is the builder for creating a ExplanationEvent entity.
type ExplanationEventCreate struct {
	config
	mutation *ExplanationEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ExplanationEventCreate) SetSequence(v int64) *ExplanationEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ExplanationEventCreate) SetTimestamp(v time.Time) *ExplanationEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ExplanationEventCreate) SetNillableTimestamp(v *time.Time) *ExplanationEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetAnalysisID sets the "analysis_id" field.
func (_c *ExplanationEventCreate) SetAnalysisID(v string) *ExplanationEventCreate {
	_c.mutation.SetAnalysisID(v)
	return _c
}

// SetNillableAnalysisID sets the "analysis_id" field if the given value is not nil.
func (_c *ExplanationEventCreate) SetNillableAnalysisID(v *string) *ExplanationEventCreate {
	if v != nil {
		_c.SetAnalysisID(*v)
	}
	return _c
}

// SetPly sets the "ply" field.
func (_c *ExplanationEventCreate) SetPly(v int) *ExplanationEventCreate {
	_c.mutation.SetPly(v)
	return _c
}

// SetNillablePly sets the "ply" field if the given value is not nil.
func (_c *ExplanationEventCreate) SetNillablePly(v *int) *ExplanationEventCreate {
	if v != nil {
		_c.SetPly(*v)
	}
	return _c
}

// SetKind sets the "kind" field.
func (_c *ExplanationEventCreate) SetKind(v string) *ExplanationEventCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetQuestion sets the "question" field.
func (_c *ExplanationEventCreate) SetQuestion(v string) *ExplanationEventCreate {
	_c.mutation.SetQuestion(v)
	return _c
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_c *ExplanationEventCreate) SetNillableQuestion(v *string) *ExplanationEventCreate {
	if v != nil {
		_c.SetQuestion(*v)
	}
	return _c
}

// SetSummary sets the "summary" field.
func (_c *ExplanationEventCreate) SetSummary(v string) *ExplanationEventCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetBody sets the "body" field.
func (_c *ExplanationEventCreate) SetBody(v string) *ExplanationEventCreate {
	_c.mutation.SetBody(v)
	return _c
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_c *ExplanationEventCreate) SetNillableBody(v *string) *ExplanationEventCreate {
	if v != nil {
		_c.SetBody(*v)
	}
	return _c
}

// Mutation returns the ExplanationEventMutation object of the builder.
func (_c *ExplanationEventCreate) Mutation() *ExplanationEventMutation {
	return _c.mutation
}

// Save creates the ExplanationEvent in the database.
func (_c *ExplanationEventCreate) Save(ctx context.Context) (*ExplanationEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExplanationEventCreate) SaveX(ctx context.Context) *ExplanationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExplanationEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExplanationEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExplanationEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := explanationevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.AnalysisID(); !ok {
		v := explanationevent.DefaultAnalysisID
		_c.mutation.SetAnalysisID(v)
	}
	if _, ok := _c.mutation.Ply(); !ok {
		v := explanationevent.DefaultPly
		_c.mutation.SetPly(v)
	}
	if _, ok := _c.mutation.Question(); !ok {
		v := explanationevent.DefaultQuestion
		_c.mutation.SetQuestion(v)
	}
	if _, ok := _c.mutation.Body(); !ok {
		v := explanationevent.DefaultBody
		_c.mutation.SetBody(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExplanationEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ExplanationEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ExplanationEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.AnalysisID(); !ok {
		return &ValidationError{Name: "analysis_id", err: errors.New(`ent: missing required field "ExplanationEvent.analysis_id"`)}
	}
	if _, ok := _c.mutation.Ply(); !ok {
		return &ValidationError{Name: "ply", err: errors.New(`ent: missing required field "ExplanationEvent.ply"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "ExplanationEvent.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := explanationevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "ExplanationEvent.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Question(); !ok {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required field "ExplanationEvent.question"`)}
	}
	if _, ok := _c.mutation.Summary(); !ok {
		return &ValidationError{Name: "summary", err: errors.New(`ent: missing required field "ExplanationEvent.summary"`)}
	}
	if _, ok := _c.mutation.Body(); !ok {
		return &ValidationError{Name: "body", err: errors.New(`ent: missing required field "ExplanationEvent.body"`)}
	}
	return nil
}

func (_c *ExplanationEventCreate) sqlSave(ctx context.Context) (*ExplanationEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExplanationEventCreate) createSpec() (*ExplanationEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ExplanationEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(explanationevent.Table, sqlgraph.NewFieldSpec(explanationevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(explanationevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(explanationevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.AnalysisID(); ok {
		_spec.SetField(explanationevent.FieldAnalysisID, field.TypeString, value)
		_node.AnalysisID = value
	}
	if value, ok := _c.mutation.Ply(); ok {
		_spec.SetField(explanationevent.FieldPly, field.TypeInt, value)
		_node.Ply = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(explanationevent.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Question(); ok {
		_spec.SetField(explanationevent.FieldQuestion, field.TypeString, value)
		_node.Question = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(explanationevent.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.Body(); ok {
		_spec.SetField(explanationevent.FieldBody, field.TypeString, value)
		_node.Body = value
	}
	return _node, _spec
}

// ExplanationEventCreateBulk is the builder for creating many ExplanationEvent entities in bulk.
type ExplanationEventCreateBulk struct {
	config
	err      error
	builders []*ExplanationEventCreate
}

// Save creates the ExplanationEvent entities in the database.
func (_c *ExplanationEventCreateBulk) Save(ctx context.Context) ([]*ExplanationEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExplanationEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExplanationEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ExplanationEventCreateBulk) SaveX(ctx context.Context) []*ExplanationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExplanationEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExplanationEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
