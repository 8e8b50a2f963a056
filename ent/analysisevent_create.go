// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/chesscoach/ent/analysisevent"
)

// AnalysisEventCreate is the builder for creating a AnalysisEvent entity.
type AnalysisEventCreate struct {
	config
	mutation *AnalysisEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AnalysisEventCreate) SetSequence(v int64) *AnalysisEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AnalysisEventCreate) SetTimestamp(v time.Time) *AnalysisEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AnalysisEventCreate) SetNillableTimestamp(v *time.Time) *AnalysisEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetAnalysisID sets the "analysis_id" field.
func (_c *AnalysisEventCreate) SetAnalysisID(v string) *AnalysisEventCreate {
	_c.mutation.SetAnalysisID(v)
	return _c
}

// SetUsername sets the "username" field.
func (_c *AnalysisEventCreate) SetUsername(v string) *AnalysisEventCreate {
	_c.mutation.SetUsername(v)
	return _c
}

// SetColor sets the "color" field.
func (_c *AnalysisEventCreate) SetColor(v string) *AnalysisEventCreate {
	_c.mutation.SetColor(v)
	return _c
}

// SetWhite sets the "white" field.
func (_c *AnalysisEventCreate) SetWhite(v string) *AnalysisEventCreate {
	_c.mutation.SetWhite(v)
	return _c
}

// SetNillableWhite sets the "white" field if the given value is not nil.
func (_c *AnalysisEventCreate) SetNillableWhite(v *string) *AnalysisEventCreate {
	if v != nil {
		_c.SetWhite(*v)
	}
	return _c
}

// SetBlack sets the "black" field.
func (_c *AnalysisEventCreate) SetBlack(v string) *AnalysisEventCreate {
	_c.mutation.SetBlack(v)
	return _c
}

// SetNillableBlack sets the "black" field if the given value is not nil.
func (_c *AnalysisEventCreate) SetNillableBlack(v *string) *AnalysisEventCreate {
	if v != nil {
		_c.SetBlack(*v)
	}
	return _c
}

// SetEventName sets the "event_name" field.
func (_c *AnalysisEventCreate) SetEventName(v string) *AnalysisEventCreate {
	_c.mutation.SetEventName(v)
	return _c
}

// SetNillableEventName sets the "event_name" field if the given value is not nil.
func (_c *AnalysisEventCreate) SetNillableEventName(v *string) *AnalysisEventCreate {
	if v != nil {
		_c.SetEventName(*v)
	}
	return _c
}

// SetGameDate sets the "game_date" field.
func (_c *AnalysisEventCreate) SetGameDate(v string) *AnalysisEventCreate {
	_c.mutation.SetGameDate(v)
	return _c
}

// SetNillableGameDate sets the "game_date" field if the given value is not nil.
func (_c *AnalysisEventCreate) SetNillableGameDate(v *string) *AnalysisEventCreate {
	if v != nil {
		_c.SetGameDate(*v)
	}
	return _c
}

// SetOutcome sets the "outcome" field.
func (_c *AnalysisEventCreate) SetOutcome(v string) *AnalysisEventCreate {
	_c.mutation.SetOutcome(v)
	return _c
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_c *AnalysisEventCreate) SetNillableOutcome(v *string) *AnalysisEventCreate {
	if v != nil {
		_c.SetOutcome(*v)
	}
	return _c
}

// SetPgn sets the "pgn" field.
func (_c *AnalysisEventCreate) SetPgn(v string) *AnalysisEventCreate {
	_c.mutation.SetPgn(v)
	return _c
}

// SetMoveCount sets the "move_count" field.
func (_c *AnalysisEventCreate) SetMoveCount(v int) *AnalysisEventCreate {
	_c.mutation.SetMoveCount(v)
	return _c
}

// SetNillableMoveCount sets the "move_count" field if the given value is not nil.
func (_c *AnalysisEventCreate) SetNillableMoveCount(v *int) *AnalysisEventCreate {
	if v != nil {
		_c.SetMoveCount(*v)
	}
	return _c
}

// SetSource sets the "source" field.
func (_c *AnalysisEventCreate) SetSource(v string) *AnalysisEventCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *AnalysisEventCreate) SetNillableSource(v *string) *AnalysisEventCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// Mutation returns the AnalysisEventMutation object of the builder.
func (_c *AnalysisEventCreate) Mutation() *AnalysisEventMutation {
	return _c.mutation
}

// Save creates the AnalysisEvent in the database.
func (_c *AnalysisEventCreate) Save(ctx context.Context) (*AnalysisEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnalysisEventCreate) SaveX(ctx context.Context) *AnalysisEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnalysisEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := analysisevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.White(); !ok {
		v := analysisevent.DefaultWhite
		_c.mutation.SetWhite(v)
	}
	if _, ok := _c.mutation.Black(); !ok {
		v := analysisevent.DefaultBlack
		_c.mutation.SetBlack(v)
	}
	if _, ok := _c.mutation.EventName(); !ok {
		v := analysisevent.DefaultEventName
		_c.mutation.SetEventName(v)
	}
	if _, ok := _c.mutation.GameDate(); !ok {
		v := analysisevent.DefaultGameDate
		_c.mutation.SetGameDate(v)
	}
	if _, ok := _c.mutation.Outcome(); !ok {
		v := analysisevent.DefaultOutcome
		_c.mutation.SetOutcome(v)
	}
	if _, ok := _c.mutation.MoveCount(); !ok {
		v := analysisevent.DefaultMoveCount
		_c.mutation.SetMoveCount(v)
	}
	if _, ok := _c.mutation.Source(); !ok {
		v := analysisevent.DefaultSource
		_c.mutation.SetSource(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnalysisEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AnalysisEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AnalysisEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.AnalysisID(); !ok {
		return &ValidationError{Name: "analysis_id", err: errors.New(`ent: missing required field "AnalysisEvent.analysis_id"`)}
	}
	if v, ok := _c.mutation.AnalysisID(); ok {
		if err := analysisevent.AnalysisIDValidator(v); err != nil {
			return &ValidationError{Name: "analysis_id", err: fmt.Errorf(`ent: validator failed for field "AnalysisEvent.analysis_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Username(); !ok {
		return &ValidationError{Name: "username", err: errors.New(`ent: missing required field "AnalysisEvent.username"`)}
	}
	if v, ok := _c.mutation.Username(); ok {
		if err := analysisevent.UsernameValidator(v); err != nil {
			return &ValidationError{Name: "username", err: fmt.Errorf(`ent: validator failed for field "AnalysisEvent.username": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Color(); !ok {
		return &ValidationError{Name: "color", err: errors.New(`ent: missing required field "AnalysisEvent.color"`)}
	}
	if v, ok := _c.mutation.Color(); ok {
		if err := analysisevent.ColorValidator(v); err != nil {
			return &ValidationError{Name: "color", err: fmt.Errorf(`ent: validator failed for field "AnalysisEvent.color": %w`, err)}
		}
	}
	if _, ok := _c.mutation.White(); !ok {
		return &ValidationError{Name: "white", err: errors.New(`ent: missing required field "AnalysisEvent.white"`)}
	}
	if _, ok := _c.mutation.Black(); !ok {
		return &ValidationError{Name: "black", err: errors.New(`ent: missing required field "AnalysisEvent.black"`)}
	}
	if _, ok := _c.mutation.EventName(); !ok {
		return &ValidationError{Name: "event_name", err: errors.New(`ent: missing required field "AnalysisEvent.event_name"`)}
	}
	if _, ok := _c.mutation.GameDate(); !ok {
		return &ValidationError{Name: "game_date", err: errors.New(`ent: missing required field "AnalysisEvent.game_date"`)}
	}
	if _, ok := _c.mutation.Outcome(); !ok {
		return &ValidationError{Name: "outcome", err: errors.New(`ent: missing required field "AnalysisEvent.outcome"`)}
	}
	if _, ok := _c.mutation.Pgn(); !ok {
		return &ValidationError{Name: "pgn", err: errors.New(`ent: missing required field "AnalysisEvent.pgn"`)}
	}
	if _, ok := _c.mutation.MoveCount(); !ok {
		return &ValidationError{Name: "move_count", err: errors.New(`ent: missing required field "AnalysisEvent.move_count"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "AnalysisEvent.source"`)}
	}
	return nil
}

func (_c *AnalysisEventCreate) sqlSave(ctx context.Context) (*AnalysisEvent, error) {
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

func (_c *AnalysisEventCreate) createSpec() (*AnalysisEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AnalysisEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(analysisevent.Table, sqlgraph.NewFieldSpec(analysisevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(analysisevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(analysisevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.AnalysisID(); ok {
		_spec.SetField(analysisevent.FieldAnalysisID, field.TypeString, value)
		_node.AnalysisID = value
	}
	if value, ok := _c.mutation.Username(); ok {
		_spec.SetField(analysisevent.FieldUsername, field.TypeString, value)
		_node.Username = value
	}
	if value, ok := _c.mutation.Color(); ok {
		_spec.SetField(analysisevent.FieldColor, field.TypeString, value)
		_node.Color = value
	}
	if value, ok := _c.mutation.White(); ok {
		_spec.SetField(analysisevent.FieldWhite, field.TypeString, value)
		_node.White = value
	}
	if value, ok := _c.mutation.Black(); ok {
		_spec.SetField(analysisevent.FieldBlack, field.TypeString, value)
		_node.Black = value
	}
	if value, ok := _c.mutation.EventName(); ok {
		_spec.SetField(analysisevent.FieldEventName, field.TypeString, value)
		_node.EventName = value
	}
	if value, ok := _c.mutation.GameDate(); ok {
		_spec.SetField(analysisevent.FieldGameDate, field.TypeString, value)
		_node.GameDate = value
	}
	if value, ok := _c.mutation.Outcome(); ok {
		_spec.SetField(analysisevent.FieldOutcome, field.TypeString, value)
		_node.Outcome = value
	}
	if value, ok := _c.mutation.Pgn(); ok {
		_spec.SetField(analysisevent.FieldPgn, field.TypeString, value)
		_node.Pgn = value
	}
	if value, ok := _c.mutation.MoveCount(); ok {
		_spec.SetField(analysisevent.FieldMoveCount, field.TypeInt, value)
		_node.MoveCount = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(analysisevent.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	return _node, _spec
}

// AnalysisEventCreateBulk is the builder for creating many AnalysisEvent entities in bulk.
type AnalysisEventCreateBulk struct {
	config
	err      error
	builders []*AnalysisEventCreate
}

// Save creates the AnalysisEvent entities in the database.
func (_c *AnalysisEventCreateBulk) Save(ctx context.Context) ([]*AnalysisEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AnalysisEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnalysisEventMutation)
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
func (_c *AnalysisEventCreateBulk) SaveX(ctx context.Context) []*AnalysisEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
