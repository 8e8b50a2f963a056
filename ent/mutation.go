// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/chesscoach/ent/analysisevent"
	"github.com/abhisek/chesscoach/ent/explanationevent"
	"github.com/abhisek/chesscoach/ent/llmrequestevent"
	"github.com/abhisek/chesscoach/ent/moveevent"
	"github.com/abhisek/chesscoach/ent/predicate"
	"github.com/abhisek/chesscoach/ent/schema"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAnalysisEvent    = "AnalysisEvent"
	TypeExplanationEvent = "ExplanationEvent"
	TypeLLMRequestEvent  = "LLMRequestEvent"
	TypeMoveEvent        = "MoveEvent"
)

// AnalysisEventMutation represents an operation that mutates the AnalysisEvent nodes in the graph.
type AnalysisEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	sequence      *int64
	addsequence   *int64
	timestamp     *time.Time
	analysis_id   *string
	username      *string
	color         *string
	white         *string
	black         *string
	event_name    *string
	game_date     *string
	outcome       *string
	pgn           *string
	move_count    *int
	addmove_count *int
	source        *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*AnalysisEvent, error)
	predicates    []predicate.AnalysisEvent
}

var _ ent.Mutation = (*AnalysisEventMutation)(nil)

// analysiseventOption allows management of the mutation configuration using functional options.
type analysiseventOption func(*AnalysisEventMutation)

// newAnalysisEventMutation creates new mutation for the AnalysisEvent entity.
func newAnalysisEventMutation(c config, op Op, opts ...analysiseventOption) *AnalysisEventMutation {
	m := &AnalysisEventMutation{
		config:        c,
		op:            op,
		typ:           TypeAnalysisEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnalysisEventID sets the ID field of the mutation.
func withAnalysisEventID(id int) analysiseventOption {
	return func(m *AnalysisEventMutation) {
		var (
			err   error
			once  sync.Once
			value *AnalysisEvent
		)
		m.oldValue = func(ctx context.Context) (*AnalysisEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AnalysisEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnalysisEvent sets the old AnalysisEvent of the mutation.
func withAnalysisEvent(node *AnalysisEvent) analysiseventOption {
	return func(m *AnalysisEventMutation) {
		m.oldValue = func(context.Context) (*AnalysisEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnalysisEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnalysisEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnalysisEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnalysisEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AnalysisEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *AnalysisEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *AnalysisEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the AnalysisEvent entity.
// If the AnalysisEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *AnalysisEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *AnalysisEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *AnalysisEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *AnalysisEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *AnalysisEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the AnalysisEvent entity.
// If the AnalysisEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *AnalysisEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetAnalysisID sets the "analysis_id" field.
func (m *AnalysisEventMutation) SetAnalysisID(s string) {
	m.analysis_id = &s
}

// AnalysisID returns the value of the "analysis_id" field in the mutation.
func (m *AnalysisEventMutation) AnalysisID() (r string, exists bool) {
	v := m.analysis_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAnalysisID returns the old "analysis_id" field's value of the AnalysisEvent entity.
// If the AnalysisEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisEventMutation) OldAnalysisID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnalysisID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnalysisID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnalysisID: %w", err)
	}
	return oldValue.AnalysisID, nil
}

// ResetAnalysisID resets all changes to the "analysis_id" field.
func (m *AnalysisEventMutation) ResetAnalysisID() {
	m.analysis_id = nil
}

// SetUsername sets the "username" field.
func (m *AnalysisEventMutation) SetUsername(s string) {
	m.username = &s
}

// Username returns the value of the "username" field in the mutation.
func (m *AnalysisEventMutation) Username() (r string, exists bool) {
	v := m.username
	if v == nil {
		return
	}
	return *v, true
}

// OldUsername returns the old "username" field's value of the AnalysisEvent entity.
// If the AnalysisEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisEventMutation) OldUsername(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsername is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsername requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsername: %w", err)
	}
	return oldValue.Username, nil
}

// ResetUsername resets all changes to the "username" field.
func (m *AnalysisEventMutation) ResetUsername() {
	m.username = nil
}

// SetColor sets the "color" field.
func (m *AnalysisEventMutation) SetColor(s string) {
	m.color = &s
}

// Color returns the value of the "color" field in the mutation.
func (m *AnalysisEventMutation) Color() (r string, exists bool) {
	v := m.color
	if v == nil {
		return
	}
	return *v, true
}

// OldColor returns the old "color" field's value of the AnalysisEvent entity.
// If the AnalysisEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisEventMutation) OldColor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldColor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldColor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldColor: %w", err)
	}
	return oldValue.Color, nil
}

// ResetColor resets all changes to the "color" field.
func (m *AnalysisEventMutation) ResetColor() {
	m.color = nil
}

// SetWhite sets the "white" field.
func (m *AnalysisEventMutation) SetWhite(s string) {
	m.white = &s
}

// White returns the value of the "white" field in the mutation.
func (m *AnalysisEventMutation) White() (r string, exists bool) {
	v := m.white
	if v == nil {
		return
	}
	return *v, true
}

// OldWhite returns the old "white" field's value of the AnalysisEvent entity.
// If the AnalysisEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisEventMutation) OldWhite(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWhite is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWhite requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWhite: %w", err)
	}
	return oldValue.White, nil
}

// ResetWhite resets all changes to the "white" field.
func (m *AnalysisEventMutation) ResetWhite() {
	m.white = nil
}

// SetBlack sets the "black" field.
func (m *AnalysisEventMutation) SetBlack(s string) {
	m.black = &s
}

// Black returns the value of the "black" field in the mutation.
func (m *AnalysisEventMutation) Black() (r string, exists bool) {
	v := m.black
	if v == nil {
		return
	}
	return *v, true
}

// OldBlack returns the old "black" field's value of the AnalysisEvent entity.
// If the AnalysisEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisEventMutation) OldBlack(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlack is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlack requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlack: %w", err)
	}
	return oldValue.Black, nil
}

// ResetBlack resets all changes to the "black" field.
func (m *AnalysisEventMutation) ResetBlack() {
	m.black = nil
}

// SetEventName sets the "event_name" field.
func (m *AnalysisEventMutation) SetEventName(s string) {
	m.event_name = &s
}

// EventName returns the value of the "event_name" field in the mutation.
func (m *AnalysisEventMutation) EventName() (r string, exists bool) {
	v := m.event_name
	if v == nil {
		return
	}
	return *v, true
}

// OldEventName returns the old "event_name" field's value of the AnalysisEvent entity.
// If the AnalysisEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisEventMutation) OldEventName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventName: %w", err)
	}
	return oldValue.EventName, nil
}

// ResetEventName resets all changes to the "event_name" field.
func (m *AnalysisEventMutation) ResetEventName() {
	m.event_name = nil
}

// SetGameDate sets the "game_date" field.
func (m *AnalysisEventMutation) SetGameDate(s string) {
	m.game_date = &s
}

// GameDate returns the value of the "game_date" field in the mutation.
func (m *AnalysisEventMutation) GameDate() (r string, exists bool) {
	v := m.game_date
	if v == nil {
		return
	}
	return *v, true
}

// OldGameDate returns the old "game_date" field's value of the AnalysisEvent entity.
// If the AnalysisEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisEventMutation) OldGameDate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGameDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGameDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGameDate: %w", err)
	}
	return oldValue.GameDate, nil
}

// ResetGameDate resets all changes to the "game_date" field.
func (m *AnalysisEventMutation) ResetGameDate() {
	m.game_date = nil
}

// SetOutcome sets the "outcome" field.
func (m *AnalysisEventMutation) SetOutcome(s string) {
	m.outcome = &s
}

// Outcome returns the value of the "outcome" field in the mutation.
func (m *AnalysisEventMutation) Outcome() (r string, exists bool) {
	v := m.outcome
	if v == nil {
		return
	}
	return *v, true
}

// OldOutcome returns the old "outcome" field's value of the AnalysisEvent entity.
// If the AnalysisEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisEventMutation) OldOutcome(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutcome is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutcome requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutcome: %w", err)
	}
	return oldValue.Outcome, nil
}

// ResetOutcome resets all changes to the "outcome" field.
func (m *AnalysisEventMutation) ResetOutcome() {
	m.outcome = nil
}

// SetPgn sets the "pgn" field.
func (m *AnalysisEventMutation) SetPgn(s string) {
	m.pgn = &s
}

// Pgn returns the value of the "pgn" field in the mutation.
func (m *AnalysisEventMutation) Pgn() (r string, exists bool) {
	v := m.pgn
	if v == nil {
		return
	}
	return *v, true
}

// OldPgn returns the old "pgn" field's value of the AnalysisEvent entity.
// If the AnalysisEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisEventMutation) OldPgn(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPgn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPgn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPgn: %w", err)
	}
	return oldValue.Pgn, nil
}

// ResetPgn resets all changes to the "pgn" field.
func (m *AnalysisEventMutation) ResetPgn() {
	m.pgn = nil
}

// SetMoveCount sets the "move_count" field.
func (m *AnalysisEventMutation) SetMoveCount(i int) {
	m.move_count = &i
	m.addmove_count = nil
}

// MoveCount returns the value of the "move_count" field in the mutation.
func (m *AnalysisEventMutation) MoveCount() (r int, exists bool) {
	v := m.move_count
	if v == nil {
		return
	}
	return *v, true
}

// OldMoveCount returns the old "move_count" field's value of the AnalysisEvent entity.
// If the AnalysisEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisEventMutation) OldMoveCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMoveCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMoveCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMoveCount: %w", err)
	}
	return oldValue.MoveCount, nil
}

// AddMoveCount adds i to the "move_count" field.
func (m *AnalysisEventMutation) AddMoveCount(i int) {
	if m.addmove_count != nil {
		*m.addmove_count += i
	} else {
		m.addmove_count = &i
	}
}

// AddedMoveCount returns the value that was added to the "move_count" field in this mutation.
func (m *AnalysisEventMutation) AddedMoveCount() (r int, exists bool) {
	v := m.addmove_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetMoveCount resets all changes to the "move_count" field.
func (m *AnalysisEventMutation) ResetMoveCount() {
	m.move_count = nil
	m.addmove_count = nil
}

// SetSource sets the "source" field.
func (m *AnalysisEventMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *AnalysisEventMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the AnalysisEvent entity.
// If the AnalysisEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisEventMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *AnalysisEventMutation) ResetSource() {
	m.source = nil
}

// Where appends a list predicates to the AnalysisEventMutation builder.
func (m *AnalysisEventMutation) Where(ps ...predicate.AnalysisEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnalysisEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnalysisEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AnalysisEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnalysisEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnalysisEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AnalysisEvent).
func (m *AnalysisEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnalysisEventMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.sequence != nil {
		fields = append(fields, analysisevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, analysisevent.FieldTimestamp)
	}
	if m.analysis_id != nil {
		fields = append(fields, analysisevent.FieldAnalysisID)
	}
	if m.username != nil {
		fields = append(fields, analysisevent.FieldUsername)
	}
	if m.color != nil {
		fields = append(fields, analysisevent.FieldColor)
	}
	if m.white != nil {
		fields = append(fields, analysisevent.FieldWhite)
	}
	if m.black != nil {
		fields = append(fields, analysisevent.FieldBlack)
	}
	if m.event_name != nil {
		fields = append(fields, analysisevent.FieldEventName)
	}
	if m.game_date != nil {
		fields = append(fields, analysisevent.FieldGameDate)
	}
	if m.outcome != nil {
		fields = append(fields, analysisevent.FieldOutcome)
	}
	if m.pgn != nil {
		fields = append(fields, analysisevent.FieldPgn)
	}
	if m.move_count != nil {
		fields = append(fields, analysisevent.FieldMoveCount)
	}
	if m.source != nil {
		fields = append(fields, analysisevent.FieldSource)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnalysisEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case analysisevent.FieldSequence:
		return m.Sequence()
	case analysisevent.FieldTimestamp:
		return m.Timestamp()
	case analysisevent.FieldAnalysisID:
		return m.AnalysisID()
	case analysisevent.FieldUsername:
		return m.Username()
	case analysisevent.FieldColor:
		return m.Color()
	case analysisevent.FieldWhite:
		return m.White()
	case analysisevent.FieldBlack:
		return m.Black()
	case analysisevent.FieldEventName:
		return m.EventName()
	case analysisevent.FieldGameDate:
		return m.GameDate()
	case analysisevent.FieldOutcome:
		return m.Outcome()
	case analysisevent.FieldPgn:
		return m.Pgn()
	case analysisevent.FieldMoveCount:
		return m.MoveCount()
	case analysisevent.FieldSource:
		return m.Source()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnalysisEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case analysisevent.FieldSequence:
		return m.OldSequence(ctx)
	case analysisevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case analysisevent.FieldAnalysisID:
		return m.OldAnalysisID(ctx)
	case analysisevent.FieldUsername:
		return m.OldUsername(ctx)
	case analysisevent.FieldColor:
		return m.OldColor(ctx)
	case analysisevent.FieldWhite:
		return m.OldWhite(ctx)
	case analysisevent.FieldBlack:
		return m.OldBlack(ctx)
	case analysisevent.FieldEventName:
		return m.OldEventName(ctx)
	case analysisevent.FieldGameDate:
		return m.OldGameDate(ctx)
	case analysisevent.FieldOutcome:
		return m.OldOutcome(ctx)
	case analysisevent.FieldPgn:
		return m.OldPgn(ctx)
	case analysisevent.FieldMoveCount:
		return m.OldMoveCount(ctx)
	case analysisevent.FieldSource:
		return m.OldSource(ctx)
	}
	return nil, fmt.Errorf("unknown AnalysisEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalysisEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case analysisevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case analysisevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case analysisevent.FieldAnalysisID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnalysisID(v)
		return nil
	case analysisevent.FieldUsername:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsername(v)
		return nil
	case analysisevent.FieldColor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetColor(v)
		return nil
	case analysisevent.FieldWhite:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWhite(v)
		return nil
	case analysisevent.FieldBlack:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlack(v)
		return nil
	case analysisevent.FieldEventName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventName(v)
		return nil
	case analysisevent.FieldGameDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGameDate(v)
		return nil
	case analysisevent.FieldOutcome:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutcome(v)
		return nil
	case analysisevent.FieldPgn:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPgn(v)
		return nil
	case analysisevent.FieldMoveCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMoveCount(v)
		return nil
	case analysisevent.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	}
	return fmt.Errorf("unknown AnalysisEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnalysisEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, analysisevent.FieldSequence)
	}
	if m.addmove_count != nil {
		fields = append(fields, analysisevent.FieldMoveCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnalysisEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case analysisevent.FieldSequence:
		return m.AddedSequence()
	case analysisevent.FieldMoveCount:
		return m.AddedMoveCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalysisEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case analysisevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case analysisevent.FieldMoveCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMoveCount(v)
		return nil
	}
	return fmt.Errorf("unknown AnalysisEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnalysisEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnalysisEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnalysisEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AnalysisEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnalysisEventMutation) ResetField(name string) error {
	switch name {
	case analysisevent.FieldSequence:
		m.ResetSequence()
		return nil
	case analysisevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case analysisevent.FieldAnalysisID:
		m.ResetAnalysisID()
		return nil
	case analysisevent.FieldUsername:
		m.ResetUsername()
		return nil
	case analysisevent.FieldColor:
		m.ResetColor()
		return nil
	case analysisevent.FieldWhite:
		m.ResetWhite()
		return nil
	case analysisevent.FieldBlack:
		m.ResetBlack()
		return nil
	case analysisevent.FieldEventName:
		m.ResetEventName()
		return nil
	case analysisevent.FieldGameDate:
		m.ResetGameDate()
		return nil
	case analysisevent.FieldOutcome:
		m.ResetOutcome()
		return nil
	case analysisevent.FieldPgn:
		m.ResetPgn()
		return nil
	case analysisevent.FieldMoveCount:
		m.ResetMoveCount()
		return nil
	case analysisevent.FieldSource:
		m.ResetSource()
		return nil
	}
	return fmt.Errorf("unknown AnalysisEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnalysisEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnalysisEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnalysisEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnalysisEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnalysisEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnalysisEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnalysisEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AnalysisEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnalysisEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AnalysisEvent edge %s", name)
}

// ExplanationEventMutation represents an operation that mutates the ExplanationEvent nodes in the graph.
type ExplanationEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	sequence      *int64
	addsequence   *int64
	timestamp     *time.Time
	analysis_id   *string
	ply           *int
	addply        *int
	kind          *string
	question      *string
	summary       *string
	body          *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ExplanationEvent, error)
	predicates    []predicate.ExplanationEvent
}

var _ ent.Mutation = (*ExplanationEventMutation)(nil)

// explanationeventOption allows management of the mutation configuration using functional options.
type explanationeventOption func(*ExplanationEventMutation)

// newExplanationEventMutation creates new mutation for the ExplanationEvent entity.
func newExplanationEventMutation(c config, op Op, opts ...explanationeventOption) *ExplanationEventMutation {
	m := &ExplanationEventMutation{
		config:        c,
		op:            op,
		typ:           TypeExplanationEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExplanationEventID sets the ID field of the mutation.
func withExplanationEventID(id int) explanationeventOption {
	return func(m *ExplanationEventMutation) {
		var (
			err   error
			once  sync.Once
			value *ExplanationEvent
		)
		m.oldValue = func(ctx context.Context) (*ExplanationEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExplanationEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExplanationEvent sets the old ExplanationEvent of the mutation.
func withExplanationEvent(node *ExplanationEvent) explanationeventOption {
	return func(m *ExplanationEventMutation) {
		m.oldValue = func(context.Context) (*ExplanationEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExplanationEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExplanationEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExplanationEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExplanationEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExplanationEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *ExplanationEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *ExplanationEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the ExplanationEvent entity.
// If the ExplanationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExplanationEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *ExplanationEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *ExplanationEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *ExplanationEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *ExplanationEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *ExplanationEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the ExplanationEvent entity.
// If the ExplanationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExplanationEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *ExplanationEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetAnalysisID sets the "analysis_id" field.
func (m *ExplanationEventMutation) SetAnalysisID(s string) {
	m.analysis_id = &s
}

// AnalysisID returns the value of the "analysis_id" field in the mutation.
func (m *ExplanationEventMutation) AnalysisID() (r string, exists bool) {
	v := m.analysis_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAnalysisID returns the old "analysis_id" field's value of the ExplanationEvent entity.
// If the ExplanationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExplanationEventMutation) OldAnalysisID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnalysisID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnalysisID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnalysisID: %w", err)
	}
	return oldValue.AnalysisID, nil
}

// ResetAnalysisID resets all changes to the "analysis_id" field.
func (m *ExplanationEventMutation) ResetAnalysisID() {
	m.analysis_id = nil
}

// SetPly sets the "ply" field.
func (m *ExplanationEventMutation) SetPly(i int) {
	m.ply = &i
	m.addply = nil
}

// Ply returns the value of the "ply" field in the mutation.
func (m *ExplanationEventMutation) Ply() (r int, exists bool) {
	v := m.ply
	if v == nil {
		return
	}
	return *v, true
}

// OldPly returns the old "ply" field's value of the ExplanationEvent entity.
// If the ExplanationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExplanationEventMutation) OldPly(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPly is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPly requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPly: %w", err)
	}
	return oldValue.Ply, nil
}

// AddPly adds i to the "ply" field.
func (m *ExplanationEventMutation) AddPly(i int) {
	if m.addply != nil {
		*m.addply += i
	} else {
		m.addply = &i
	}
}

// AddedPly returns the value that was added to the "ply" field in this mutation.
func (m *ExplanationEventMutation) AddedPly() (r int, exists bool) {
	v := m.addply
	if v == nil {
		return
	}
	return *v, true
}

// ResetPly resets all changes to the "ply" field.
func (m *ExplanationEventMutation) ResetPly() {
	m.ply = nil
	m.addply = nil
}

// SetKind sets the "kind" field.
func (m *ExplanationEventMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *ExplanationEventMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the ExplanationEvent entity.
// If the ExplanationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExplanationEventMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *ExplanationEventMutation) ResetKind() {
	m.kind = nil
}

// SetQuestion sets the "question" field.
func (m *ExplanationEventMutation) SetQuestion(s string) {
	m.question = &s
}

// Question returns the value of the "question" field in the mutation.
func (m *ExplanationEventMutation) Question() (r string, exists bool) {
	v := m.question
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestion returns the old "question" field's value of the ExplanationEvent entity.
// If the ExplanationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExplanationEventMutation) OldQuestion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestion: %w", err)
	}
	return oldValue.Question, nil
}

// ResetQuestion resets all changes to the "question" field.
func (m *ExplanationEventMutation) ResetQuestion() {
	m.question = nil
}

// SetSummary sets the "summary" field.
func (m *ExplanationEventMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *ExplanationEventMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the ExplanationEvent entity.
// If the ExplanationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExplanationEventMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ResetSummary resets all changes to the "summary" field.
func (m *ExplanationEventMutation) ResetSummary() {
	m.summary = nil
}

// SetBody sets the "body" field.
func (m *ExplanationEventMutation) SetBody(s string) {
	m.body = &s
}

// Body returns the value of the "body" field in the mutation.
func (m *ExplanationEventMutation) Body() (r string, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the ExplanationEvent entity.
// If the ExplanationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExplanationEventMutation) OldBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ResetBody resets all changes to the "body" field.
func (m *ExplanationEventMutation) ResetBody() {
	m.body = nil
}

// Where appends a list predicates to the ExplanationEventMutation builder.
func (m *ExplanationEventMutation) Where(ps ...predicate.ExplanationEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExplanationEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExplanationEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExplanationEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExplanationEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExplanationEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExplanationEvent).
func (m *ExplanationEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExplanationEventMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.sequence != nil {
		fields = append(fields, explanationevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, explanationevent.FieldTimestamp)
	}
	if m.analysis_id != nil {
		fields = append(fields, explanationevent.FieldAnalysisID)
	}
	if m.ply != nil {
		fields = append(fields, explanationevent.FieldPly)
	}
	if m.kind != nil {
		fields = append(fields, explanationevent.FieldKind)
	}
	if m.question != nil {
		fields = append(fields, explanationevent.FieldQuestion)
	}
	if m.summary != nil {
		fields = append(fields, explanationevent.FieldSummary)
	}
	if m.body != nil {
		fields = append(fields, explanationevent.FieldBody)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExplanationEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case explanationevent.FieldSequence:
		return m.Sequence()
	case explanationevent.FieldTimestamp:
		return m.Timestamp()
	case explanationevent.FieldAnalysisID:
		return m.AnalysisID()
	case explanationevent.FieldPly:
		return m.Ply()
	case explanationevent.FieldKind:
		return m.Kind()
	case explanationevent.FieldQuestion:
		return m.Question()
	case explanationevent.FieldSummary:
		return m.Summary()
	case explanationevent.FieldBody:
		return m.Body()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExplanationEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case explanationevent.FieldSequence:
		return m.OldSequence(ctx)
	case explanationevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case explanationevent.FieldAnalysisID:
		return m.OldAnalysisID(ctx)
	case explanationevent.FieldPly:
		return m.OldPly(ctx)
	case explanationevent.FieldKind:
		return m.OldKind(ctx)
	case explanationevent.FieldQuestion:
		return m.OldQuestion(ctx)
	case explanationevent.FieldSummary:
		return m.OldSummary(ctx)
	case explanationevent.FieldBody:
		return m.OldBody(ctx)
	}
	return nil, fmt.Errorf("unknown ExplanationEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExplanationEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case explanationevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case explanationevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case explanationevent.FieldAnalysisID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnalysisID(v)
		return nil
	case explanationevent.FieldPly:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPly(v)
		return nil
	case explanationevent.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case explanationevent.FieldQuestion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestion(v)
		return nil
	case explanationevent.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case explanationevent.FieldBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	}
	return fmt.Errorf("unknown ExplanationEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExplanationEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, explanationevent.FieldSequence)
	}
	if m.addply != nil {
		fields = append(fields, explanationevent.FieldPly)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExplanationEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case explanationevent.FieldSequence:
		return m.AddedSequence()
	case explanationevent.FieldPly:
		return m.AddedPly()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExplanationEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case explanationevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case explanationevent.FieldPly:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPly(v)
		return nil
	}
	return fmt.Errorf("unknown ExplanationEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExplanationEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExplanationEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExplanationEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ExplanationEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExplanationEventMutation) ResetField(name string) error {
	switch name {
	case explanationevent.FieldSequence:
		m.ResetSequence()
		return nil
	case explanationevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case explanationevent.FieldAnalysisID:
		m.ResetAnalysisID()
		return nil
	case explanationevent.FieldPly:
		m.ResetPly()
		return nil
	case explanationevent.FieldKind:
		m.ResetKind()
		return nil
	case explanationevent.FieldQuestion:
		m.ResetQuestion()
		return nil
	case explanationevent.FieldSummary:
		m.ResetSummary()
		return nil
	case explanationevent.FieldBody:
		m.ResetBody()
		return nil
	}
	return fmt.Errorf("unknown ExplanationEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExplanationEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExplanationEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExplanationEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExplanationEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExplanationEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExplanationEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExplanationEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ExplanationEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExplanationEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ExplanationEvent edge %s", name)
}

// LLMRequestEventMutation represents an operation that mutates the LLMRequestEvent nodes in the graph.
type LLMRequestEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	sequence         *int64
	addsequence      *int64
	timestamp        *time.Time
	provider         *string
	model            *string
	purpose          *string
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	latency_ms       *int64
	addlatency_ms    *int64
	success          *bool
	error_message    *string
	request_body     *string
	response_body    *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*LLMRequestEvent, error)
	predicates       []predicate.LLMRequestEvent
}

var _ ent.Mutation = (*LLMRequestEventMutation)(nil)

// llmrequesteventOption allows management of the mutation configuration using functional options.
type llmrequesteventOption func(*LLMRequestEventMutation)

// newLLMRequestEventMutation creates new mutation for the LLMRequestEvent entity.
func newLLMRequestEventMutation(c config, op Op, opts ...llmrequesteventOption) *LLMRequestEventMutation {
	m := &LLMRequestEventMutation{
		config:        c,
		op:            op,
		typ:           TypeLLMRequestEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLLMRequestEventID sets the ID field of the mutation.
func withLLMRequestEventID(id int) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		var (
			err   error
			once  sync.Once
			value *LLMRequestEvent
		)
		m.oldValue = func(ctx context.Context) (*LLMRequestEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LLMRequestEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLLMRequestEvent sets the old LLMRequestEvent of the mutation.
func withLLMRequestEvent(node *LLMRequestEvent) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		m.oldValue = func(context.Context) (*LLMRequestEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LLMRequestEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LLMRequestEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LLMRequestEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LLMRequestEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LLMRequestEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *LLMRequestEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *LLMRequestEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *LLMRequestEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *LLMRequestEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *LLMRequestEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *LLMRequestEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *LLMRequestEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *LLMRequestEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetProvider sets the "provider" field.
func (m *LLMRequestEventMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *LLMRequestEventMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *LLMRequestEventMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *LLMRequestEventMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *LLMRequestEventMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *LLMRequestEventMutation) ResetModel() {
	m.model = nil
}

// SetPurpose sets the "purpose" field.
func (m *LLMRequestEventMutation) SetPurpose(s string) {
	m.purpose = &s
}

// Purpose returns the value of the "purpose" field in the mutation.
func (m *LLMRequestEventMutation) Purpose() (r string, exists bool) {
	v := m.purpose
	if v == nil {
		return
	}
	return *v, true
}

// OldPurpose returns the old "purpose" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldPurpose(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurpose is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurpose requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurpose: %w", err)
	}
	return oldValue.Purpose, nil
}

// ResetPurpose resets all changes to the "purpose" field.
func (m *LLMRequestEventMutation) ResetPurpose() {
	m.purpose = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *LLMRequestEventMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *LLMRequestEventMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *LLMRequestEventMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *LLMRequestEventMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *LLMRequestEventMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *LLMRequestEventMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *LLMRequestEventMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *LLMRequestEventMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *LLMRequestEventMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *LLMRequestEventMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *LLMRequestEventMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *LLMRequestEventMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *LLMRequestEventMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetSuccess sets the "success" field.
func (m *LLMRequestEventMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *LLMRequestEventMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *LLMRequestEventMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *LLMRequestEventMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *LLMRequestEventMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *LLMRequestEventMutation) ResetErrorMessage() {
	m.error_message = nil
}

// SetRequestBody sets the "request_body" field.
func (m *LLMRequestEventMutation) SetRequestBody(s string) {
	m.request_body = &s
}

// RequestBody returns the value of the "request_body" field in the mutation.
func (m *LLMRequestEventMutation) RequestBody() (r string, exists bool) {
	v := m.request_body
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestBody returns the old "request_body" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldRequestBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestBody: %w", err)
	}
	return oldValue.RequestBody, nil
}

// ResetRequestBody resets all changes to the "request_body" field.
func (m *LLMRequestEventMutation) ResetRequestBody() {
	m.request_body = nil
}

// SetResponseBody sets the "response_body" field.
func (m *LLMRequestEventMutation) SetResponseBody(s string) {
	m.response_body = &s
}

// ResponseBody returns the value of the "response_body" field in the mutation.
func (m *LLMRequestEventMutation) ResponseBody() (r string, exists bool) {
	v := m.response_body
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseBody returns the old "response_body" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldResponseBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseBody: %w", err)
	}
	return oldValue.ResponseBody, nil
}

// ResetResponseBody resets all changes to the "response_body" field.
func (m *LLMRequestEventMutation) ResetResponseBody() {
	m.response_body = nil
}

// Where appends a list predicates to the LLMRequestEventMutation builder.
func (m *LLMRequestEventMutation) Where(ps ...predicate.LLMRequestEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LLMRequestEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LLMRequestEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LLMRequestEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LLMRequestEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LLMRequestEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LLMRequestEvent).
func (m *LLMRequestEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LLMRequestEventMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.sequence != nil {
		fields = append(fields, llmrequestevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, llmrequestevent.FieldTimestamp)
	}
	if m.provider != nil {
		fields = append(fields, llmrequestevent.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, llmrequestevent.FieldModel)
	}
	if m.purpose != nil {
		fields = append(fields, llmrequestevent.FieldPurpose)
	}
	if m.input_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.latency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	if m.success != nil {
		fields = append(fields, llmrequestevent.FieldSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, llmrequestevent.FieldErrorMessage)
	}
	if m.request_body != nil {
		fields = append(fields, llmrequestevent.FieldRequestBody)
	}
	if m.response_body != nil {
		fields = append(fields, llmrequestevent.FieldResponseBody)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LLMRequestEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.Sequence()
	case llmrequestevent.FieldTimestamp:
		return m.Timestamp()
	case llmrequestevent.FieldProvider:
		return m.Provider()
	case llmrequestevent.FieldModel:
		return m.Model()
	case llmrequestevent.FieldPurpose:
		return m.Purpose()
	case llmrequestevent.FieldInputTokens:
		return m.InputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.OutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.LatencyMs()
	case llmrequestevent.FieldSuccess:
		return m.Success()
	case llmrequestevent.FieldErrorMessage:
		return m.ErrorMessage()
	case llmrequestevent.FieldRequestBody:
		return m.RequestBody()
	case llmrequestevent.FieldResponseBody:
		return m.ResponseBody()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LLMRequestEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.OldSequence(ctx)
	case llmrequestevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case llmrequestevent.FieldProvider:
		return m.OldProvider(ctx)
	case llmrequestevent.FieldModel:
		return m.OldModel(ctx)
	case llmrequestevent.FieldPurpose:
		return m.OldPurpose(ctx)
	case llmrequestevent.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case llmrequestevent.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case llmrequestevent.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case llmrequestevent.FieldSuccess:
		return m.OldSuccess(ctx)
	case llmrequestevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case llmrequestevent.FieldRequestBody:
		return m.OldRequestBody(ctx)
	case llmrequestevent.FieldResponseBody:
		return m.OldResponseBody(ctx)
	}
	return nil, fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case llmrequestevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case llmrequestevent.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case llmrequestevent.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case llmrequestevent.FieldPurpose:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurpose(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case llmrequestevent.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case llmrequestevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case llmrequestevent.FieldRequestBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestBody(v)
		return nil
	case llmrequestevent.FieldResponseBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseBody(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LLMRequestEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, llmrequestevent.FieldSequence)
	}
	if m.addinput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LLMRequestEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.AddedSequence()
	case llmrequestevent.FieldInputTokens:
		return m.AddedInputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.AddedOutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LLMRequestEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LLMRequestEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ResetField(name string) error {
	switch name {
	case llmrequestevent.FieldSequence:
		m.ResetSequence()
		return nil
	case llmrequestevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case llmrequestevent.FieldProvider:
		m.ResetProvider()
		return nil
	case llmrequestevent.FieldModel:
		m.ResetModel()
		return nil
	case llmrequestevent.FieldPurpose:
		m.ResetPurpose()
		return nil
	case llmrequestevent.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case llmrequestevent.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case llmrequestevent.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case llmrequestevent.FieldSuccess:
		m.ResetSuccess()
		return nil
	case llmrequestevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case llmrequestevent.FieldRequestBody:
		m.ResetRequestBody()
		return nil
	case llmrequestevent.FieldResponseBody:
		m.ResetResponseBody()
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LLMRequestEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LLMRequestEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LLMRequestEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LLMRequestEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LLMRequestEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LLMRequestEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LLMRequestEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LLMRequestEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent edge %s", name)
}

// MoveEventMutation represents an operation that mutates the MoveEvent nodes in the graph.
type MoveEventMutation struct {
	config
	op              Op
	typ             string
	id              *int
	sequence        *int64
	addsequence     *int64
	timestamp       *time.Time
	analysis_id     *string
	ply             *int
	addply          *int
	move_number     *int
	addmove_number  *int
	uci_move        *string
	san             *string
	fen_before      *string
	fen_after       *string
	eval_before     *float64
	addeval_before  *float64
	eval_after      *float64
	addeval_after   *float64
	classification  *string
	best_move       *string
	best_reply      *string
	pv_before       *[]schema.CandidateSummary
	appendpv_before []schema.CandidateSummary
	pv_after        *[]schema.CandidateSummary
	appendpv_after  []schema.CandidateSummary
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*MoveEvent, error)
	predicates      []predicate.MoveEvent
}

var _ ent.Mutation = (*MoveEventMutation)(nil)

// moveeventOption allows management of the mutation configuration using functional options.
type moveeventOption func(*MoveEventMutation)

// newMoveEventMutation creates new mutation for the MoveEvent entity.
func newMoveEventMutation(c config, op Op, opts ...moveeventOption) *MoveEventMutation {
	m := &MoveEventMutation{
		config:        c,
		op:            op,
		typ:           TypeMoveEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMoveEventID sets the ID field of the mutation.
func withMoveEventID(id int) moveeventOption {
	return func(m *MoveEventMutation) {
		var (
			err   error
			once  sync.Once
			value *MoveEvent
		)
		m.oldValue = func(ctx context.Context) (*MoveEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MoveEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMoveEvent sets the old MoveEvent of the mutation.
func withMoveEvent(node *MoveEvent) moveeventOption {
	return func(m *MoveEventMutation) {
		m.oldValue = func(context.Context) (*MoveEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MoveEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MoveEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MoveEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MoveEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MoveEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *MoveEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *MoveEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the MoveEvent entity.
// If the MoveEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MoveEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *MoveEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *MoveEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *MoveEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *MoveEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *MoveEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the MoveEvent entity.
// If the MoveEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MoveEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *MoveEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetAnalysisID sets the "analysis_id" field.
func (m *MoveEventMutation) SetAnalysisID(s string) {
	m.analysis_id = &s
}

// AnalysisID returns the value of the "analysis_id" field in the mutation.
func (m *MoveEventMutation) AnalysisID() (r string, exists bool) {
	v := m.analysis_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAnalysisID returns the old "analysis_id" field's value of the MoveEvent entity.
// If the MoveEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MoveEventMutation) OldAnalysisID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnalysisID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnalysisID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnalysisID: %w", err)
	}
	return oldValue.AnalysisID, nil
}

// ResetAnalysisID resets all changes to the "analysis_id" field.
func (m *MoveEventMutation) ResetAnalysisID() {
	m.analysis_id = nil
}

// SetPly sets the "ply" field.
func (m *MoveEventMutation) SetPly(i int) {
	m.ply = &i
	m.addply = nil
}

// Ply returns the value of the "ply" field in the mutation.
func (m *MoveEventMutation) Ply() (r int, exists bool) {
	v := m.ply
	if v == nil {
		return
	}
	return *v, true
}

// OldPly returns the old "ply" field's value of the MoveEvent entity.
// If the MoveEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MoveEventMutation) OldPly(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPly is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPly requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPly: %w", err)
	}
	return oldValue.Ply, nil
}

// AddPly adds i to the "ply" field.
func (m *MoveEventMutation) AddPly(i int) {
	if m.addply != nil {
		*m.addply += i
	} else {
		m.addply = &i
	}
}

// AddedPly returns the value that was added to the "ply" field in this mutation.
func (m *MoveEventMutation) AddedPly() (r int, exists bool) {
	v := m.addply
	if v == nil {
		return
	}
	return *v, true
}

// ResetPly resets all changes to the "ply" field.
func (m *MoveEventMutation) ResetPly() {
	m.ply = nil
	m.addply = nil
}

// SetMoveNumber sets the "move_number" field.
func (m *MoveEventMutation) SetMoveNumber(i int) {
	m.move_number = &i
	m.addmove_number = nil
}

// MoveNumber returns the value of the "move_number" field in the mutation.
func (m *MoveEventMutation) MoveNumber() (r int, exists bool) {
	v := m.move_number
	if v == nil {
		return
	}
	return *v, true
}

// OldMoveNumber returns the old "move_number" field's value of the MoveEvent entity.
// If the MoveEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MoveEventMutation) OldMoveNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMoveNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMoveNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMoveNumber: %w", err)
	}
	return oldValue.MoveNumber, nil
}

// AddMoveNumber adds i to the "move_number" field.
func (m *MoveEventMutation) AddMoveNumber(i int) {
	if m.addmove_number != nil {
		*m.addmove_number += i
	} else {
		m.addmove_number = &i
	}
}

// AddedMoveNumber returns the value that was added to the "move_number" field in this mutation.
func (m *MoveEventMutation) AddedMoveNumber() (r int, exists bool) {
	v := m.addmove_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetMoveNumber resets all changes to the "move_number" field.
func (m *MoveEventMutation) ResetMoveNumber() {
	m.move_number = nil
	m.addmove_number = nil
}

// SetUciMove sets the "uci_move" field.
func (m *MoveEventMutation) SetUciMove(s string) {
	m.uci_move = &s
}

// UciMove returns the value of the "uci_move" field in the mutation.
func (m *MoveEventMutation) UciMove() (r string, exists bool) {
	v := m.uci_move
	if v == nil {
		return
	}
	return *v, true
}

// OldUciMove returns the old "uci_move" field's value of the MoveEvent entity.
// If the MoveEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MoveEventMutation) OldUciMove(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUciMove is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUciMove requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUciMove: %w", err)
	}
	return oldValue.UciMove, nil
}

// ResetUciMove resets all changes to the "uci_move" field.
func (m *MoveEventMutation) ResetUciMove() {
	m.uci_move = nil
}

// SetSan sets the "san" field.
func (m *MoveEventMutation) SetSan(s string) {
	m.san = &s
}

// San returns the value of the "san" field in the mutation.
func (m *MoveEventMutation) San() (r string, exists bool) {
	v := m.san
	if v == nil {
		return
	}
	return *v, true
}

// OldSan returns the old "san" field's value of the MoveEvent entity.
// If the MoveEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MoveEventMutation) OldSan(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSan is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSan requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSan: %w", err)
	}
	return oldValue.San, nil
}

// ResetSan resets all changes to the "san" field.
func (m *MoveEventMutation) ResetSan() {
	m.san = nil
}

// SetFenBefore sets the "fen_before" field.
func (m *MoveEventMutation) SetFenBefore(s string) {
	m.fen_before = &s
}

// FenBefore returns the value of the "fen_before" field in the mutation.
func (m *MoveEventMutation) FenBefore() (r string, exists bool) {
	v := m.fen_before
	if v == nil {
		return
	}
	return *v, true
}

// OldFenBefore returns the old "fen_before" field's value of the MoveEvent entity.
// If the MoveEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MoveEventMutation) OldFenBefore(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFenBefore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFenBefore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFenBefore: %w", err)
	}
	return oldValue.FenBefore, nil
}

// ResetFenBefore resets all changes to the "fen_before" field.
func (m *MoveEventMutation) ResetFenBefore() {
	m.fen_before = nil
}

// SetFenAfter sets the "fen_after" field.
func (m *MoveEventMutation) SetFenAfter(s string) {
	m.fen_after = &s
}

// FenAfter returns the value of the "fen_after" field in the mutation.
func (m *MoveEventMutation) FenAfter() (r string, exists bool) {
	v := m.fen_after
	if v == nil {
		return
	}
	return *v, true
}

// OldFenAfter returns the old "fen_after" field's value of the MoveEvent entity.
// If the MoveEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MoveEventMutation) OldFenAfter(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFenAfter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFenAfter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFenAfter: %w", err)
	}
	return oldValue.FenAfter, nil
}

// ResetFenAfter resets all changes to the "fen_after" field.
func (m *MoveEventMutation) ResetFenAfter() {
	m.fen_after = nil
}

// SetEvalBefore sets the "eval_before" field.
func (m *MoveEventMutation) SetEvalBefore(f float64) {
	m.eval_before = &f
	m.addeval_before = nil
}

// EvalBefore returns the value of the "eval_before" field in the mutation.
func (m *MoveEventMutation) EvalBefore() (r float64, exists bool) {
	v := m.eval_before
	if v == nil {
		return
	}
	return *v, true
}

// OldEvalBefore returns the old "eval_before" field's value of the MoveEvent entity.
// If the MoveEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MoveEventMutation) OldEvalBefore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvalBefore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvalBefore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvalBefore: %w", err)
	}
	return oldValue.EvalBefore, nil
}

// AddEvalBefore adds f to the "eval_before" field.
func (m *MoveEventMutation) AddEvalBefore(f float64) {
	if m.addeval_before != nil {
		*m.addeval_before += f
	} else {
		m.addeval_before = &f
	}
}

// AddedEvalBefore returns the value that was added to the "eval_before" field in this mutation.
func (m *MoveEventMutation) AddedEvalBefore() (r float64, exists bool) {
	v := m.addeval_before
	if v == nil {
		return
	}
	return *v, true
}

// ResetEvalBefore resets all changes to the "eval_before" field.
func (m *MoveEventMutation) ResetEvalBefore() {
	m.eval_before = nil
	m.addeval_before = nil
}

// SetEvalAfter sets the "eval_after" field.
func (m *MoveEventMutation) SetEvalAfter(f float64) {
	m.eval_after = &f
	m.addeval_after = nil
}

// EvalAfter returns the value of the "eval_after" field in the mutation.
func (m *MoveEventMutation) EvalAfter() (r float64, exists bool) {
	v := m.eval_after
	if v == nil {
		return
	}
	return *v, true
}

// OldEvalAfter returns the old "eval_after" field's value of the MoveEvent entity.
// If the MoveEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MoveEventMutation) OldEvalAfter(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvalAfter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvalAfter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvalAfter: %w", err)
	}
	return oldValue.EvalAfter, nil
}

// AddEvalAfter adds f to the "eval_after" field.
func (m *MoveEventMutation) AddEvalAfter(f float64) {
	if m.addeval_after != nil {
		*m.addeval_after += f
	} else {
		m.addeval_after = &f
	}
}

// AddedEvalAfter returns the value that was added to the "eval_after" field in this mutation.
func (m *MoveEventMutation) AddedEvalAfter() (r float64, exists bool) {
	v := m.addeval_after
	if v == nil {
		return
	}
	return *v, true
}

// ResetEvalAfter resets all changes to the "eval_after" field.
func (m *MoveEventMutation) ResetEvalAfter() {
	m.eval_after = nil
	m.addeval_after = nil
}

// SetClassification sets the "classification" field.
func (m *MoveEventMutation) SetClassification(s string) {
	m.classification = &s
}

// Classification returns the value of the "classification" field in the mutation.
func (m *MoveEventMutation) Classification() (r string, exists bool) {
	v := m.classification
	if v == nil {
		return
	}
	return *v, true
}

// OldClassification returns the old "classification" field's value of the MoveEvent entity.
// If the MoveEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MoveEventMutation) OldClassification(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClassification is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClassification requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClassification: %w", err)
	}
	return oldValue.Classification, nil
}

// ResetClassification resets all changes to the "classification" field.
func (m *MoveEventMutation) ResetClassification() {
	m.classification = nil
}

// SetBestMove sets the "best_move" field.
func (m *MoveEventMutation) SetBestMove(s string) {
	m.best_move = &s
}

// BestMove returns the value of the "best_move" field in the mutation.
func (m *MoveEventMutation) BestMove() (r string, exists bool) {
	v := m.best_move
	if v == nil {
		return
	}
	return *v, true
}

// OldBestMove returns the old "best_move" field's value of the MoveEvent entity.
// If the MoveEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MoveEventMutation) OldBestMove(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBestMove is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBestMove requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBestMove: %w", err)
	}
	return oldValue.BestMove, nil
}

// ResetBestMove resets all changes to the "best_move" field.
func (m *MoveEventMutation) ResetBestMove() {
	m.best_move = nil
}

// SetBestReply sets the "best_reply" field.
func (m *MoveEventMutation) SetBestReply(s string) {
	m.best_reply = &s
}

// BestReply returns the value of the "best_reply" field in the mutation.
func (m *MoveEventMutation) BestReply() (r string, exists bool) {
	v := m.best_reply
	if v == nil {
		return
	}
	return *v, true
}

// OldBestReply returns the old "best_reply" field's value of the MoveEvent entity.
// If the MoveEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MoveEventMutation) OldBestReply(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBestReply is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBestReply requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBestReply: %w", err)
	}
	return oldValue.BestReply, nil
}

// ResetBestReply resets all changes to the "best_reply" field.
func (m *MoveEventMutation) ResetBestReply() {
	m.best_reply = nil
}

// SetPvBefore sets the "pv_before" field.
func (m *MoveEventMutation) SetPvBefore(ss []schema.CandidateSummary) {
	m.pv_before = &ss
	m.appendpv_before = nil
}

// PvBefore returns the value of the "pv_before" field in the mutation.
func (m *MoveEventMutation) PvBefore() (r []schema.CandidateSummary, exists bool) {
	v := m.pv_before
	if v == nil {
		return
	}
	return *v, true
}

// OldPvBefore returns the old "pv_before" field's value of the MoveEvent entity.
// If the MoveEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MoveEventMutation) OldPvBefore(ctx context.Context) (v []schema.CandidateSummary, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPvBefore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPvBefore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPvBefore: %w", err)
	}
	return oldValue.PvBefore, nil
}

// AppendPvBefore adds ss to the "pv_before" field.
func (m *MoveEventMutation) AppendPvBefore(ss []schema.CandidateSummary) {
	m.appendpv_before = append(m.appendpv_before, ss...)
}

// AppendedPvBefore returns the list of values that were appended to the "pv_before" field in this mutation.
func (m *MoveEventMutation) AppendedPvBefore() ([]schema.CandidateSummary, bool) {
	if len(m.appendpv_before) == 0 {
		return nil, false
	}
	return m.appendpv_before, true
}

// ClearPvBefore clears the value of the "pv_before" field.
func (m *MoveEventMutation) ClearPvBefore() {
	m.pv_before = nil
	m.appendpv_before = nil
	m.clearedFields[moveevent.FieldPvBefore] = struct{}{}
}

// PvBeforeCleared returns if the "pv_before" field was cleared in this mutation.
func (m *MoveEventMutation) PvBeforeCleared() bool {
	_, ok := m.clearedFields[moveevent.FieldPvBefore]
	return ok
}

// ResetPvBefore resets all changes to the "pv_before" field.
func (m *MoveEventMutation) ResetPvBefore() {
	m.pv_before = nil
	m.appendpv_before = nil
	delete(m.clearedFields, moveevent.FieldPvBefore)
}

// SetPvAfter sets the "pv_after" field.
func (m *MoveEventMutation) SetPvAfter(ss []schema.CandidateSummary) {
	m.pv_after = &ss
	m.appendpv_after = nil
}

// PvAfter returns the value of the "pv_after" field in the mutation.
func (m *MoveEventMutation) PvAfter() (r []schema.CandidateSummary, exists bool) {
	v := m.pv_after
	if v == nil {
		return
	}
	return *v, true
}

// OldPvAfter returns the old "pv_after" field's value of the MoveEvent entity.
// If the MoveEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MoveEventMutation) OldPvAfter(ctx context.Context) (v []schema.CandidateSummary, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPvAfter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPvAfter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPvAfter: %w", err)
	}
	return oldValue.PvAfter, nil
}

// AppendPvAfter adds ss to the "pv_after" field.
func (m *MoveEventMutation) AppendPvAfter(ss []schema.CandidateSummary) {
	m.appendpv_after = append(m.appendpv_after, ss...)
}

// AppendedPvAfter returns the list of values that were appended to the "pv_after" field in this mutation.
func (m *MoveEventMutation) AppendedPvAfter() ([]schema.CandidateSummary, bool) {
	if len(m.appendpv_after) == 0 {
		return nil, false
	}
	return m.appendpv_after, true
}

// ClearPvAfter clears the value of the "pv_after" field.
func (m *MoveEventMutation) ClearPvAfter() {
	m.pv_after = nil
	m.appendpv_after = nil
	m.clearedFields[moveevent.FieldPvAfter] = struct{}{}
}

// PvAfterCleared returns if the "pv_after" field was cleared in this mutation.
func (m *MoveEventMutation) PvAfterCleared() bool {
	_, ok := m.clearedFields[moveevent.FieldPvAfter]
	return ok
}

// ResetPvAfter resets all changes to the "pv_after" field.
func (m *MoveEventMutation) ResetPvAfter() {
	m.pv_after = nil
	m.appendpv_after = nil
	delete(m.clearedFields, moveevent.FieldPvAfter)
}

// Where appends a list predicates to the MoveEventMutation builder.
func (m *MoveEventMutation) Where(ps ...predicate.MoveEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MoveEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MoveEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MoveEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MoveEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MoveEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MoveEvent).
func (m *MoveEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MoveEventMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.sequence != nil {
		fields = append(fields, moveevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, moveevent.FieldTimestamp)
	}
	if m.analysis_id != nil {
		fields = append(fields, moveevent.FieldAnalysisID)
	}
	if m.ply != nil {
		fields = append(fields, moveevent.FieldPly)
	}
	if m.move_number != nil {
		fields = append(fields, moveevent.FieldMoveNumber)
	}
	if m.uci_move != nil {
		fields = append(fields, moveevent.FieldUciMove)
	}
	if m.san != nil {
		fields = append(fields, moveevent.FieldSan)
	}
	if m.fen_before != nil {
		fields = append(fields, moveevent.FieldFenBefore)
	}
	if m.fen_after != nil {
		fields = append(fields, moveevent.FieldFenAfter)
	}
	if m.eval_before != nil {
		fields = append(fields, moveevent.FieldEvalBefore)
	}
	if m.eval_after != nil {
		fields = append(fields, moveevent.FieldEvalAfter)
	}
	if m.classification != nil {
		fields = append(fields, moveevent.FieldClassification)
	}
	if m.best_move != nil {
		fields = append(fields, moveevent.FieldBestMove)
	}
	if m.best_reply != nil {
		fields = append(fields, moveevent.FieldBestReply)
	}
	if m.pv_before != nil {
		fields = append(fields, moveevent.FieldPvBefore)
	}
	if m.pv_after != nil {
		fields = append(fields, moveevent.FieldPvAfter)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MoveEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case moveevent.FieldSequence:
		return m.Sequence()
	case moveevent.FieldTimestamp:
		return m.Timestamp()
	case moveevent.FieldAnalysisID:
		return m.AnalysisID()
	case moveevent.FieldPly:
		return m.Ply()
	case moveevent.FieldMoveNumber:
		return m.MoveNumber()
	case moveevent.FieldUciMove:
		return m.UciMove()
	case moveevent.FieldSan:
		return m.San()
	case moveevent.FieldFenBefore:
		return m.FenBefore()
	case moveevent.FieldFenAfter:
		return m.FenAfter()
	case moveevent.FieldEvalBefore:
		return m.EvalBefore()
	case moveevent.FieldEvalAfter:
		return m.EvalAfter()
	case moveevent.FieldClassification:
		return m.Classification()
	case moveevent.FieldBestMove:
		return m.BestMove()
	case moveevent.FieldBestReply:
		return m.BestReply()
	case moveevent.FieldPvBefore:
		return m.PvBefore()
	case moveevent.FieldPvAfter:
		return m.PvAfter()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MoveEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case moveevent.FieldSequence:
		return m.OldSequence(ctx)
	case moveevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case moveevent.FieldAnalysisID:
		return m.OldAnalysisID(ctx)
	case moveevent.FieldPly:
		return m.OldPly(ctx)
	case moveevent.FieldMoveNumber:
		return m.OldMoveNumber(ctx)
	case moveevent.FieldUciMove:
		return m.OldUciMove(ctx)
	case moveevent.FieldSan:
		return m.OldSan(ctx)
	case moveevent.FieldFenBefore:
		return m.OldFenBefore(ctx)
	case moveevent.FieldFenAfter:
		return m.OldFenAfter(ctx)
	case moveevent.FieldEvalBefore:
		return m.OldEvalBefore(ctx)
	case moveevent.FieldEvalAfter:
		return m.OldEvalAfter(ctx)
	case moveevent.FieldClassification:
		return m.OldClassification(ctx)
	case moveevent.FieldBestMove:
		return m.OldBestMove(ctx)
	case moveevent.FieldBestReply:
		return m.OldBestReply(ctx)
	case moveevent.FieldPvBefore:
		return m.OldPvBefore(ctx)
	case moveevent.FieldPvAfter:
		return m.OldPvAfter(ctx)
	}
	return nil, fmt.Errorf("unknown MoveEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MoveEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case moveevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case moveevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case moveevent.FieldAnalysisID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnalysisID(v)
		return nil
	case moveevent.FieldPly:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPly(v)
		return nil
	case moveevent.FieldMoveNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMoveNumber(v)
		return nil
	case moveevent.FieldUciMove:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUciMove(v)
		return nil
	case moveevent.FieldSan:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSan(v)
		return nil
	case moveevent.FieldFenBefore:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFenBefore(v)
		return nil
	case moveevent.FieldFenAfter:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFenAfter(v)
		return nil
	case moveevent.FieldEvalBefore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvalBefore(v)
		return nil
	case moveevent.FieldEvalAfter:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvalAfter(v)
		return nil
	case moveevent.FieldClassification:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClassification(v)
		return nil
	case moveevent.FieldBestMove:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBestMove(v)
		return nil
	case moveevent.FieldBestReply:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBestReply(v)
		return nil
	case moveevent.FieldPvBefore:
		v, ok := value.([]schema.CandidateSummary)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPvBefore(v)
		return nil
	case moveevent.FieldPvAfter:
		v, ok := value.([]schema.CandidateSummary)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPvAfter(v)
		return nil
	}
	return fmt.Errorf("unknown MoveEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MoveEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, moveevent.FieldSequence)
	}
	if m.addply != nil {
		fields = append(fields, moveevent.FieldPly)
	}
	if m.addmove_number != nil {
		fields = append(fields, moveevent.FieldMoveNumber)
	}
	if m.addeval_before != nil {
		fields = append(fields, moveevent.FieldEvalBefore)
	}
	if m.addeval_after != nil {
		fields = append(fields, moveevent.FieldEvalAfter)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MoveEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case moveevent.FieldSequence:
		return m.AddedSequence()
	case moveevent.FieldPly:
		return m.AddedPly()
	case moveevent.FieldMoveNumber:
		return m.AddedMoveNumber()
	case moveevent.FieldEvalBefore:
		return m.AddedEvalBefore()
	case moveevent.FieldEvalAfter:
		return m.AddedEvalAfter()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MoveEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case moveevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case moveevent.FieldPly:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPly(v)
		return nil
	case moveevent.FieldMoveNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMoveNumber(v)
		return nil
	case moveevent.FieldEvalBefore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEvalBefore(v)
		return nil
	case moveevent.FieldEvalAfter:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEvalAfter(v)
		return nil
	}
	return fmt.Errorf("unknown MoveEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MoveEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(moveevent.FieldPvBefore) {
		fields = append(fields, moveevent.FieldPvBefore)
	}
	if m.FieldCleared(moveevent.FieldPvAfter) {
		fields = append(fields, moveevent.FieldPvAfter)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MoveEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MoveEventMutation) ClearField(name string) error {
	switch name {
	case moveevent.FieldPvBefore:
		m.ClearPvBefore()
		return nil
	case moveevent.FieldPvAfter:
		m.ClearPvAfter()
		return nil
	}
	return fmt.Errorf("unknown MoveEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MoveEventMutation) ResetField(name string) error {
	switch name {
	case moveevent.FieldSequence:
		m.ResetSequence()
		return nil
	case moveevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case moveevent.FieldAnalysisID:
		m.ResetAnalysisID()
		return nil
	case moveevent.FieldPly:
		m.ResetPly()
		return nil
	case moveevent.FieldMoveNumber:
		m.ResetMoveNumber()
		return nil
	case moveevent.FieldUciMove:
		m.ResetUciMove()
		return nil
	case moveevent.FieldSan:
		m.ResetSan()
		return nil
	case moveevent.FieldFenBefore:
		m.ResetFenBefore()
		return nil
	case moveevent.FieldFenAfter:
		m.ResetFenAfter()
		return nil
	case moveevent.FieldEvalBefore:
		m.ResetEvalBefore()
		return nil
	case moveevent.FieldEvalAfter:
		m.ResetEvalAfter()
		return nil
	case moveevent.FieldClassification:
		m.ResetClassification()
		return nil
	case moveevent.FieldBestMove:
		m.ResetBestMove()
		return nil
	case moveevent.FieldBestReply:
		m.ResetBestReply()
		return nil
	case moveevent.FieldPvBefore:
		m.ResetPvBefore()
		return nil
	case moveevent.FieldPvAfter:
		m.ResetPvAfter()
		return nil
	}
	return fmt.Errorf("unknown MoveEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MoveEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MoveEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MoveEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MoveEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MoveEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MoveEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MoveEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown MoveEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MoveEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown MoveEvent edge %s", name)
}
