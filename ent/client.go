// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/abhisek/chesscoach/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/chesscoach/ent/analysisevent"
	"github.com/abhisek/chesscoach/ent/explanationevent"
	"github.com/abhisek/chesscoach/ent/llmrequestevent"
	"github.com/abhisek/chesscoach/ent/moveevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AnalysisEvent is the client for interacting with the AnalysisEvent builders.
	AnalysisEvent *AnalysisEventClient
	// ExplanationEvent is the client for interacting with the ExplanationEvent builders.
	ExplanationEvent *ExplanationEventClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// MoveEvent is the client for interacting with the MoveEvent builders.
	MoveEvent *MoveEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AnalysisEvent = NewAnalysisEventClient(c.config)
	c.ExplanationEvent = NewExplanationEventClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.MoveEvent = NewMoveEventClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		AnalysisEvent:    NewAnalysisEventClient(cfg),
		ExplanationEvent: NewExplanationEventClient(cfg),
		LLMRequestEvent:  NewLLMRequestEventClient(cfg),
		MoveEvent:        NewMoveEventClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		AnalysisEvent:    NewAnalysisEventClient(cfg),
		ExplanationEvent: NewExplanationEventClient(cfg),
		LLMRequestEvent:  NewLLMRequestEventClient(cfg),
		MoveEvent:        NewMoveEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AnalysisEvent.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.AnalysisEvent.Use(hooks...)
	c.ExplanationEvent.Use(hooks...)
	c.LLMRequestEvent.Use(hooks...)
	c.MoveEvent.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.AnalysisEvent.Intercept(interceptors...)
	c.ExplanationEvent.Intercept(interceptors...)
	c.LLMRequestEvent.Intercept(interceptors...)
	c.MoveEvent.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AnalysisEventMutation:
		return c.AnalysisEvent.mutate(ctx, m)
	case *ExplanationEventMutation:
		return c.ExplanationEvent.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *MoveEventMutation:
		return c.MoveEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AnalysisEventClient is a client for the AnalysisEvent schema.
type AnalysisEventClient struct {
	config
}

// NewAnalysisEventClient returns a client for the AnalysisEvent from the given config.
func NewAnalysisEventClient(c config) *AnalysisEventClient {
	return &AnalysisEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `analysisevent.Hooks(f(g(h())))`.
func (c *AnalysisEventClient) Use(hooks ...Hook) {
	c.hooks.AnalysisEvent = append(c.hooks.AnalysisEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `analysisevent.Intercept(f(g(h())))`.
func (c *AnalysisEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.AnalysisEvent = append(c.inters.AnalysisEvent, interceptors...)
}

// Create returns a builder for creating a AnalysisEvent entity.
func (c *AnalysisEventClient) Create() *AnalysisEventCreate {
	mutation := newAnalysisEventMutation(c.config, OpCreate)
	return &AnalysisEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AnalysisEvent entities.
func (c *AnalysisEventClient) CreateBulk(builders ...*AnalysisEventCreate) *AnalysisEventCreateBulk {
	return &AnalysisEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AnalysisEventClient) MapCreateBulk(slice any, setFunc func(*AnalysisEventCreate, int)) *AnalysisEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AnalysisEventCreateBulk{err: fmt.Errorf("calling to AnalysisEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AnalysisEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AnalysisEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AnalysisEvent.
func (c *AnalysisEventClient) Update() *AnalysisEventUpdate {
	mutation := newAnalysisEventMutation(c.config, OpUpdate)
	return &AnalysisEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AnalysisEventClient) UpdateOne(_m *AnalysisEvent) *AnalysisEventUpdateOne {
	mutation := newAnalysisEventMutation(c.config, OpUpdateOne, withAnalysisEvent(_m))
	return &AnalysisEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AnalysisEventClient) UpdateOneID(id int) *AnalysisEventUpdateOne {
	mutation := newAnalysisEventMutation(c.config, OpUpdateOne, withAnalysisEventID(id))
	return &AnalysisEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AnalysisEvent.
func (c *AnalysisEventClient) Delete() *AnalysisEventDelete {
	mutation := newAnalysisEventMutation(c.config, OpDelete)
	return &AnalysisEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AnalysisEventClient) DeleteOne(_m *AnalysisEvent) *AnalysisEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AnalysisEventClient) DeleteOneID(id int) *AnalysisEventDeleteOne {
	builder := c.Delete().Where(analysisevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AnalysisEventDeleteOne{builder}
}

// Query returns a query builder for AnalysisEvent.
func (c *AnalysisEventClient) Query() *AnalysisEventQuery {
	return &AnalysisEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAnalysisEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a AnalysisEvent entity by its id.
func (c *AnalysisEventClient) Get(ctx context.Context, id int) (*AnalysisEvent, error) {
	return c.Query().Where(analysisevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AnalysisEventClient) GetX(ctx context.Context, id int) *AnalysisEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AnalysisEventClient) Hooks() []Hook {
	return c.hooks.AnalysisEvent
}

// Interceptors returns the client interceptors.
func (c *AnalysisEventClient) Interceptors() []Interceptor {
	return c.inters.AnalysisEvent
}

func (c *AnalysisEventClient) mutate(ctx context.Context, m *AnalysisEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AnalysisEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AnalysisEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AnalysisEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AnalysisEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AnalysisEvent mutation op: %q", m.Op())
	}
}

// ExplanationEventClient is a client for the ExplanationEvent schema.
type ExplanationEventClient struct {
	config
}

// NewExplanationEventClient returns a client for the ExplanationEvent from the given config.
func NewExplanationEventClient(c config) *ExplanationEventClient {
	return &ExplanationEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `explanationevent.Hooks(f(g(h())))`.
func (c *ExplanationEventClient) Use(hooks ...Hook) {
	c.hooks.ExplanationEvent = append(c.hooks.ExplanationEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `explanationevent.Intercept(f(g(h())))`.
func (c *ExplanationEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExplanationEvent = append(c.inters.ExplanationEvent, interceptors...)
}

// Create returns a builder for creating a ExplanationEvent entity.
func (c *ExplanationEventClient) Create() *ExplanationEventCreate {
	mutation := newExplanationEventMutation(c.config, OpCreate)
	return &ExplanationEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExplanationEvent entities.
func (c *ExplanationEventClient) CreateBulk(builders ...*ExplanationEventCreate) *ExplanationEventCreateBulk {
	return &ExplanationEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExplanationEventClient) MapCreateBulk(slice any, setFunc func(*ExplanationEventCreate, int)) *ExplanationEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExplanationEventCreateBulk{err: fmt.Errorf("calling to ExplanationEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExplanationEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExplanationEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExplanationEvent.
func (c *ExplanationEventClient) Update() *ExplanationEventUpdate {
	mutation := newExplanationEventMutation(c.config, OpUpdate)
	return &ExplanationEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExplanationEventClient) UpdateOne(_m *ExplanationEvent) *ExplanationEventUpdateOne {
	mutation := newExplanationEventMutation(c.config, OpUpdateOne, withExplanationEvent(_m))
	return &ExplanationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExplanationEventClient) UpdateOneID(id int) *ExplanationEventUpdateOne {
	mutation := newExplanationEventMutation(c.config, OpUpdateOne, withExplanationEventID(id))
	return &ExplanationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExplanationEvent.
func (c *ExplanationEventClient) Delete() *ExplanationEventDelete {
	mutation := newExplanationEventMutation(c.config, OpDelete)
	return &ExplanationEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExplanationEventClient) DeleteOne(_m *ExplanationEvent) *ExplanationEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExplanationEventClient) DeleteOneID(id int) *ExplanationEventDeleteOne {
	builder := c.Delete().Where(explanationevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExplanationEventDeleteOne{builder}
}

// Query returns a query builder for ExplanationEvent.
func (c *ExplanationEventClient) Query() *ExplanationEventQuery {
	return &ExplanationEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExplanationEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a ExplanationEvent entity by its id.
func (c *ExplanationEventClient) Get(ctx context.Context, id int) (*ExplanationEvent, error) {
	return c.Query().Where(explanationevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExplanationEventClient) GetX(ctx context.Context, id int) *ExplanationEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ExplanationEventClient) Hooks() []Hook {
	return c.hooks.ExplanationEvent
}

// Interceptors returns the client interceptors.
func (c *ExplanationEventClient) Interceptors() []Interceptor {
	return c.inters.ExplanationEvent
}

func (c *ExplanationEventClient) mutate(ctx context.Context, m *ExplanationEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExplanationEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExplanationEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExplanationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExplanationEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExplanationEvent mutation op: %q", m.Op())
	}
}

// LLMRequestEventClient is a client for the LLMRequestEvent schema.
type LLMRequestEventClient struct {
	config
}

// NewLLMRequestEventClient returns a client for the LLMRequestEvent from the given config.
func NewLLMRequestEventClient(c config) *LLMRequestEventClient {
	return &LLMRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestevent.Hooks(f(g(h())))`.
func (c *LLMRequestEventClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestEvent = append(c.hooks.LLMRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestevent.Intercept(f(g(h())))`.
func (c *LLMRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestEvent = append(c.inters.LLMRequestEvent, interceptors...)
}

// Create returns a builder for creating a LLMRequestEvent entity.
func (c *LLMRequestEventClient) Create() *LLMRequestEventCreate {
	mutation := newLLMRequestEventMutation(c.config, OpCreate)
	return &LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestEvent entities.
func (c *LLMRequestEventClient) CreateBulk(builders ...*LLMRequestEventCreate) *LLMRequestEventCreateBulk {
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestEventClient) MapCreateBulk(slice any, setFunc func(*LLMRequestEventCreate, int)) *LLMRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestEventCreateBulk{err: fmt.Errorf("calling to LLMRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Update() *LLMRequestEventUpdate {
	mutation := newLLMRequestEventMutation(c.config, OpUpdate)
	return &LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestEventClient) UpdateOne(_m *LLMRequestEvent) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEvent(_m))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestEventClient) UpdateOneID(id int) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEventID(id))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Delete() *LLMRequestEventDelete {
	mutation := newLLMRequestEventMutation(c.config, OpDelete)
	return &LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestEventClient) DeleteOne(_m *LLMRequestEvent) *LLMRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestEventClient) DeleteOneID(id int) *LLMRequestEventDeleteOne {
	builder := c.Delete().Where(llmrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestEventDeleteOne{builder}
}

// Query returns a query builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Query() *LLMRequestEventQuery {
	return &LLMRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestEvent entity by its id.
func (c *LLMRequestEventClient) Get(ctx context.Context, id int) (*LLMRequestEvent, error) {
	return c.Query().Where(llmrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestEventClient) GetX(ctx context.Context, id int) *LLMRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestEventClient) Hooks() []Hook {
	return c.hooks.LLMRequestEvent
}

// Interceptors returns the client interceptors.
func (c *LLMRequestEventClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestEvent
}

func (c *LLMRequestEventClient) mutate(ctx context.Context, m *LLMRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestEvent mutation op: %q", m.Op())
	}
}

// MoveEventClient is a client for the MoveEvent schema.
type MoveEventClient struct {
	config
}

// NewMoveEventClient returns a client for the MoveEvent from the given config.
func NewMoveEventClient(c config) *MoveEventClient {
	return &MoveEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `moveevent.Hooks(f(g(h())))`.
func (c *MoveEventClient) Use(hooks ...Hook) {
	c.hooks.MoveEvent = append(c.hooks.MoveEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `moveevent.Intercept(f(g(h())))`.
func (c *MoveEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.MoveEvent = append(c.inters.MoveEvent, interceptors...)
}

// Create returns a builder for creating a MoveEvent entity.
func (c *MoveEventClient) Create() *MoveEventCreate {
	mutation := newMoveEventMutation(c.config, OpCreate)
	return &MoveEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MoveEvent entities.
func (c *MoveEventClient) CreateBulk(builders ...*MoveEventCreate) *MoveEventCreateBulk {
	return &MoveEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MoveEventClient) MapCreateBulk(slice any, setFunc func(*MoveEventCreate, int)) *MoveEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MoveEventCreateBulk{err: fmt.Errorf("calling to MoveEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MoveEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MoveEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MoveEvent.
func (c *MoveEventClient) Update() *MoveEventUpdate {
	mutation := newMoveEventMutation(c.config, OpUpdate)
	return &MoveEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MoveEventClient) UpdateOne(_m *MoveEvent) *MoveEventUpdateOne {
	mutation := newMoveEventMutation(c.config, OpUpdateOne, withMoveEvent(_m))
	return &MoveEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MoveEventClient) UpdateOneID(id int) *MoveEventUpdateOne {
	mutation := newMoveEventMutation(c.config, OpUpdateOne, withMoveEventID(id))
	return &MoveEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MoveEvent.
func (c *MoveEventClient) Delete() *MoveEventDelete {
	mutation := newMoveEventMutation(c.config, OpDelete)
	return &MoveEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MoveEventClient) DeleteOne(_m *MoveEvent) *MoveEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MoveEventClient) DeleteOneID(id int) *MoveEventDeleteOne {
	builder := c.Delete().Where(moveevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MoveEventDeleteOne{builder}
}

// Query returns a query builder for MoveEvent.
func (c *MoveEventClient) Query() *MoveEventQuery {
	return &MoveEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMoveEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a MoveEvent entity by its id.
func (c *MoveEventClient) Get(ctx context.Context, id int) (*MoveEvent, error) {
	return c.Query().Where(moveevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MoveEventClient) GetX(ctx context.Context, id int) *MoveEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MoveEventClient) Hooks() []Hook {
	return c.hooks.MoveEvent
}

// Interceptors returns the client interceptors.
func (c *MoveEventClient) Interceptors() []Interceptor {
	return c.inters.MoveEvent
}

func (c *MoveEventClient) mutate(ctx context.Context, m *MoveEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MoveEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MoveEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MoveEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MoveEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MoveEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AnalysisEvent, ExplanationEvent, LLMRequestEvent, MoveEvent []ent.Hook
	}
	inters struct {
		AnalysisEvent, ExplanationEvent, LLMRequestEvent, MoveEvent []ent.Interceptor
	}
)
