// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/chesscoach/ent/moveevent"
	"github.com/abhisek/chesscoach/ent/schema"
)

// MoveEventCreate is the builder for creating a MoveEvent entity.
type MoveEventCreate struct {
	config
	mutation *MoveEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *MoveEventCreate) SetSequence(v int64) *MoveEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *MoveEventCreate) SetTimestamp(v time.Time) *MoveEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *MoveEventCreate) SetNillableTimestamp(v *time.Time) *MoveEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetAnalysisID sets the "analysis_id" field.
func (_c *MoveEventCreate) SetAnalysisID(v string) *MoveEventCreate {
	_c.mutation.SetAnalysisID(v)
	return _c
}

// SetPly sets the "ply" field.
func (_c *MoveEventCreate) SetPly(v int) *MoveEventCreate {
	_c.mutation.SetPly(v)
	return _c
}

// SetMoveNumber sets the "move_number" field.
func (_c *MoveEventCreate) SetMoveNumber(v int) *MoveEventCreate {
	_c.mutation.SetMoveNumber(v)
	return _c
}

// SetUciMove sets the "uci_move" field.
func (_c *MoveEventCreate) SetUciMove(v string) *MoveEventCreate {
	_c.mutation.SetUciMove(v)
	return _c
}

// SetSan sets the "san" field.
func (_c *MoveEventCreate) SetSan(v string) *MoveEventCreate {
	_c.mutation.SetSan(v)
	return _c
}

// SetNillableSan sets the "san" field if the given value is not nil.
func (_c *MoveEventCreate) SetNillableSan(v *string) *MoveEventCreate {
	if v != nil {
		_c.SetSan(*v)
	}
	return _c
}

// SetFenBefore sets the "fen_before" field.
func (_c *MoveEventCreate) SetFenBefore(v string) *MoveEventCreate {
	_c.mutation.SetFenBefore(v)
	return _c
}

// SetFenAfter sets the "fen_after" field.
func (_c *MoveEventCreate) SetFenAfter(v string) *MoveEventCreate {
	_c.mutation.SetFenAfter(v)
	return _c
}

// SetEvalBefore sets the "eval_before" field.
func (_c *MoveEventCreate) SetEvalBefore(v float64) *MoveEventCreate {
	_c.mutation.SetEvalBefore(v)
	return _c
}

// SetEvalAfter sets the "eval_after" field.
func (_c *MoveEventCreate) SetEvalAfter(v float64) *MoveEventCreate {
	_c.mutation.SetEvalAfter(v)
	return _c
}

// SetClassification sets the "classification" field.
func (_c *MoveEventCreate) SetClassification(v string) *MoveEventCreate {
	_c.mutation.SetClassification(v)
	return _c
}

// SetBestMove sets the "best_move" field.
func (_c *MoveEventCreate) SetBestMove(v string) *MoveEventCreate {
	_c.mutation.SetBestMove(v)
	return _c
}

// SetNillableBestMove sets the "best_move" field if the given value is not nil.
func (_c *MoveEventCreate) SetNillableBestMove(v *string) *MoveEventCreate {
	if v != nil {
		_c.SetBestMove(*v)
	}
	return _c
}

// SetBestReply sets the "best_reply" field.
func (_c *MoveEventCreate) SetBestReply(v string) *MoveEventCreate {
	_c.mutation.SetBestReply(v)
	return _c
}

// SetNillableBestReply sets the "best_reply" field if the given value is not nil.
func (_c *MoveEventCreate) SetNillableBestReply(v *string) *MoveEventCreate {
	if v != nil {
		_c.SetBestReply(*v)
	}
	return _c
}

// SetPvBefore sets the "pv_before" field.
func (_c *MoveEventCreate) SetPvBefore(v []schema.CandidateSummary) *MoveEventCreate {
	_c.mutation.SetPvBefore(v)
	return _c
}

// SetPvAfter sets the "pv_after" field.
func (_c *MoveEventCreate) SetPvAfter(v []schema.CandidateSummary) *MoveEventCreate {
	_c.mutation.SetPvAfter(v)
	return _c
}

// Mutation returns the MoveEventMutation object of the builder.
func (_c *MoveEventCreate) Mutation() *MoveEventMutation {
	return _c.mutation
}

// Save creates the MoveEvent in the database.
func (_c *MoveEventCreate) Save(ctx context.Context) (*MoveEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MoveEventCreate) SaveX(ctx context.Context) *MoveEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MoveEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MoveEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MoveEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := moveevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.San(); !ok {
		v := moveevent.DefaultSan
		_c.mutation.SetSan(v)
	}
	if _, ok := _c.mutation.BestMove(); !ok {
		v := moveevent.DefaultBestMove
		_c.mutation.SetBestMove(v)
	}
	if _, ok := _c.mutation.BestReply(); !ok {
		v := moveevent.DefaultBestReply
		_c.mutation.SetBestReply(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MoveEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "MoveEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "MoveEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.AnalysisID(); !ok {
		return &ValidationError{Name: "analysis_id", err: errors.New(`ent: missing required field "MoveEvent.analysis_id"`)}
	}
	if v, ok := _c.mutation.AnalysisID(); ok {
		if err := moveevent.AnalysisIDValidator(v); err != nil {
			return &ValidationError{Name: "analysis_id", err: fmt.Errorf(`ent: validator failed for field "MoveEvent.analysis_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Ply(); !ok {
		return &ValidationError{Name: "ply", err: errors.New(`ent: missing required field "MoveEvent.ply"`)}
	}
	if _, ok := _c.mutation.MoveNumber(); !ok {
		return &ValidationError{Name: "move_number", err: errors.New(`ent: missing required field "MoveEvent.move_number"`)}
	}
	if _, ok := _c.mutation.UciMove(); !ok {
		return &ValidationError{Name: "uci_move", err: errors.New(`ent: missing required field "MoveEvent.uci_move"`)}
	}
	if v, ok := _c.mutation.UciMove(); ok {
		if err := moveevent.UciMoveValidator(v); err != nil {
			return &ValidationError{Name: "uci_move", err: fmt.Errorf(`ent: validator failed for field "MoveEvent.uci_move": %w`, err)}
		}
	}
	if _, ok := _c.mutation.San(); !ok {
		return &ValidationError{Name: "san", err: errors.New(`ent: missing required field "MoveEvent.san"`)}
	}
	if _, ok := _c.mutation.FenBefore(); !ok {
		return &ValidationError{Name: "fen_before", err: errors.New(`ent: missing required field "MoveEvent.fen_before"`)}
	}
	if v, ok := _c.mutation.FenBefore(); ok {
		if err := moveevent.FenBeforeValidator(v); err != nil {
			return &ValidationError{Name: "fen_before", err: fmt.Errorf(`ent: validator failed for field "MoveEvent.fen_before": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FenAfter(); !ok {
		return &ValidationError{Name: "fen_after", err: errors.New(`ent: missing required field "MoveEvent.fen_after"`)}
	}
	if v, ok := _c.mutation.FenAfter(); ok {
		if err := moveevent.FenAfterValidator(v); err != nil {
			return &ValidationError{Name: "fen_after", err: fmt.Errorf(`ent: validator failed for field "MoveEvent.fen_after": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EvalBefore(); !ok {
		return &ValidationError{Name: "eval_before", err: errors.New(`ent: missing required field "MoveEvent.eval_before"`)}
	}
	if _, ok := _c.mutation.EvalAfter(); !ok {
		return &ValidationError{Name: "eval_after", err: errors.New(`ent: missing required field "MoveEvent.eval_after"`)}
	}
	if _, ok := _c.mutation.Classification(); !ok {
		return &ValidationError{Name: "classification", err: errors.New(`ent: missing required field "MoveEvent.classification"`)}
	}
	if v, ok := _c.mutation.Classification(); ok {
		if err := moveevent.ClassificationValidator(v); err != nil {
			return &ValidationError{Name: "classification", err: fmt.Errorf(`ent: validator failed for field "MoveEvent.classification": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BestMove(); !ok {
		return &ValidationError{Name: "best_move", err: errors.New(`ent: missing required field "MoveEvent.best_move"`)}
	}
	if _, ok := _c.mutation.BestReply(); !ok {
		return &ValidationError{Name: "best_reply", err: errors.New(`ent: missing required field "MoveEvent.best_reply"`)}
	}
	return nil
}

func (_c *MoveEventCreate) sqlSave(ctx context.Context) (*MoveEvent, error) {
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

func (_c *MoveEventCreate) createSpec() (*MoveEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &MoveEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(moveevent.Table, sqlgraph.NewFieldSpec(moveevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(moveevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(moveevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.AnalysisID(); ok {
		_spec.SetField(moveevent.FieldAnalysisID, field.TypeString, value)
		_node.AnalysisID = value
	}
	if value, ok := _c.mutation.Ply(); ok {
		_spec.SetField(moveevent.FieldPly, field.TypeInt, value)
		_node.Ply = value
	}
	if value, ok := _c.mutation.MoveNumber(); ok {
		_spec.SetField(moveevent.FieldMoveNumber, field.TypeInt, value)
		_node.MoveNumber = value
	}
	if value, ok := _c.mutation.UciMove(); ok {
		_spec.SetField(moveevent.FieldUciMove, field.TypeString, value)
		_node.UciMove = value
	}
	if value, ok := _c.mutation.San(); ok {
		_spec.SetField(moveevent.FieldSan, field.TypeString, value)
		_node.San = value
	}
	if value, ok := _c.mutation.FenBefore(); ok {
		_spec.SetField(moveevent.FieldFenBefore, field.TypeString, value)
		_node.FenBefore = value
	}
	if value, ok := _c.mutation.FenAfter(); ok {
		_spec.SetField(moveevent.FieldFenAfter, field.TypeString, value)
		_node.FenAfter = value
	}
	if value, ok := _c.mutation.EvalBefore(); ok {
		_spec.SetField(moveevent.FieldEvalBefore, field.TypeFloat64, value)
		_node.EvalBefore = value
	}
	if value, ok := _c.mutation.EvalAfter(); ok {
		_spec.SetField(moveevent.FieldEvalAfter, field.TypeFloat64, value)
		_node.EvalAfter = value
	}
	if value, ok := _c.mutation.Classification(); ok {
		_spec.SetField(moveevent.FieldClassification, field.TypeString, value)
		_node.Classification = value
	}
	if value, ok := _c.mutation.BestMove(); ok {
		_spec.SetField(moveevent.FieldBestMove, field.TypeString, value)
		_node.BestMove = value
	}
	if value, ok := _c.mutation.BestReply(); ok {
		_spec.SetField(moveevent.FieldBestReply, field.TypeString, value)
		_node.BestReply = value
	}
	if value, ok := _c.mutation.PvBefore(); ok {
		_spec.SetField(moveevent.FieldPvBefore, field.TypeJSON, value)
		_node.PvBefore = value
	}
	if value, ok := _c.mutation.PvAfter(); ok {
		_spec.SetField(moveevent.FieldPvAfter, field.TypeJSON, value)
		_node.PvAfter = value
	}
	return _node, _spec
}

// MoveEventCreateBulk is the builder for creating many MoveEvent entities in bulk.
type MoveEventCreateBulk struct {
	config
	err      error
	builders []*MoveEventCreate
}

// Save creates the MoveEvent entities in the database.
func (_c *MoveEventCreateBulk) Save(ctx context.Context) ([]*MoveEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MoveEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MoveEventMutation)
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
func (_c *MoveEventCreateBulk) SaveX(ctx context.Context) []*MoveEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MoveEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MoveEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
