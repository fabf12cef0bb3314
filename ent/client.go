// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/abhisek/lessonforge/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/lessonforge/ent/lessonplanrecord"
	"github.com/abhisek/lessonforge/ent/lessonsessionrecord"
	"github.com/abhisek/lessonforge/ent/llmrequestevent"
	"github.com/abhisek/lessonforge/ent/transcriptrecord"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// LessonPlanRecord is the client for interacting with the LessonPlanRecord builders.
	LessonPlanRecord *LessonPlanRecordClient
	// LessonSessionRecord is the client for interacting with the LessonSessionRecord builders.
	LessonSessionRecord *LessonSessionRecordClient
	// TranscriptRecord is the client for interacting with the TranscriptRecord builders.
	TranscriptRecord *TranscriptRecordClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.LessonPlanRecord = NewLessonPlanRecordClient(c.config)
	c.LessonSessionRecord = NewLessonSessionRecordClient(c.config)
	c.TranscriptRecord = NewTranscriptRecordClient(c.config)
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
		ctx:                 ctx,
		config:              cfg,
		LLMRequestEvent:     NewLLMRequestEventClient(cfg),
		LessonPlanRecord:    NewLessonPlanRecordClient(cfg),
		LessonSessionRecord: NewLessonSessionRecordClient(cfg),
		TranscriptRecord:    NewTranscriptRecordClient(cfg),
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
		ctx:                 ctx,
		config:              cfg,
		LLMRequestEvent:     NewLLMRequestEventClient(cfg),
		LessonPlanRecord:    NewLessonPlanRecordClient(cfg),
		LessonSessionRecord: NewLessonSessionRecordClient(cfg),
		TranscriptRecord:    NewTranscriptRecordClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		LLMRequestEvent.
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
	c.LLMRequestEvent.Use(hooks...)
	c.LessonPlanRecord.Use(hooks...)
	c.LessonSessionRecord.Use(hooks...)
	c.TranscriptRecord.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.LLMRequestEvent.Intercept(interceptors...)
	c.LessonPlanRecord.Intercept(interceptors...)
	c.LessonSessionRecord.Intercept(interceptors...)
	c.TranscriptRecord.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *LessonPlanRecordMutation:
		return c.LessonPlanRecord.mutate(ctx, m)
	case *LessonSessionRecordMutation:
		return c.LessonSessionRecord.mutate(ctx, m)
	case *TranscriptRecordMutation:
		return c.TranscriptRecord.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
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

// LessonPlanRecordClient is a client for the LessonPlanRecord schema.
type LessonPlanRecordClient struct {
	config
}

// NewLessonPlanRecordClient returns a client for the LessonPlanRecord from the given config.
func NewLessonPlanRecordClient(c config) *LessonPlanRecordClient {
	return &LessonPlanRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `lessonplanrecord.Hooks(f(g(h())))`.
func (c *LessonPlanRecordClient) Use(hooks ...Hook) {
	c.hooks.LessonPlanRecord = append(c.hooks.LessonPlanRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `lessonplanrecord.Intercept(f(g(h())))`.
func (c *LessonPlanRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.LessonPlanRecord = append(c.inters.LessonPlanRecord, interceptors...)
}

// Create returns a builder for creating a LessonPlanRecord entity.
func (c *LessonPlanRecordClient) Create() *LessonPlanRecordCreate {
	mutation := newLessonPlanRecordMutation(c.config, OpCreate)
	return &LessonPlanRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LessonPlanRecord entities.
func (c *LessonPlanRecordClient) CreateBulk(builders ...*LessonPlanRecordCreate) *LessonPlanRecordCreateBulk {
	return &LessonPlanRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LessonPlanRecordClient) MapCreateBulk(slice any, setFunc func(*LessonPlanRecordCreate, int)) *LessonPlanRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LessonPlanRecordCreateBulk{err: fmt.Errorf("calling to LessonPlanRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LessonPlanRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LessonPlanRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LessonPlanRecord.
func (c *LessonPlanRecordClient) Update() *LessonPlanRecordUpdate {
	mutation := newLessonPlanRecordMutation(c.config, OpUpdate)
	return &LessonPlanRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LessonPlanRecordClient) UpdateOne(_m *LessonPlanRecord) *LessonPlanRecordUpdateOne {
	mutation := newLessonPlanRecordMutation(c.config, OpUpdateOne, withLessonPlanRecord(_m))
	return &LessonPlanRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LessonPlanRecordClient) UpdateOneID(id int) *LessonPlanRecordUpdateOne {
	mutation := newLessonPlanRecordMutation(c.config, OpUpdateOne, withLessonPlanRecordID(id))
	return &LessonPlanRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LessonPlanRecord.
func (c *LessonPlanRecordClient) Delete() *LessonPlanRecordDelete {
	mutation := newLessonPlanRecordMutation(c.config, OpDelete)
	return &LessonPlanRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LessonPlanRecordClient) DeleteOne(_m *LessonPlanRecord) *LessonPlanRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LessonPlanRecordClient) DeleteOneID(id int) *LessonPlanRecordDeleteOne {
	builder := c.Delete().Where(lessonplanrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LessonPlanRecordDeleteOne{builder}
}

// Query returns a query builder for LessonPlanRecord.
func (c *LessonPlanRecordClient) Query() *LessonPlanRecordQuery {
	return &LessonPlanRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLessonPlanRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a LessonPlanRecord entity by its id.
func (c *LessonPlanRecordClient) Get(ctx context.Context, id int) (*LessonPlanRecord, error) {
	return c.Query().Where(lessonplanrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LessonPlanRecordClient) GetX(ctx context.Context, id int) *LessonPlanRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LessonPlanRecordClient) Hooks() []Hook {
	return c.hooks.LessonPlanRecord
}

// Interceptors returns the client interceptors.
func (c *LessonPlanRecordClient) Interceptors() []Interceptor {
	return c.inters.LessonPlanRecord
}

func (c *LessonPlanRecordClient) mutate(ctx context.Context, m *LessonPlanRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LessonPlanRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LessonPlanRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LessonPlanRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LessonPlanRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LessonPlanRecord mutation op: %q", m.Op())
	}
}

// LessonSessionRecordClient is a client for the LessonSessionRecord schema.
type LessonSessionRecordClient struct {
	config
}

// NewLessonSessionRecordClient returns a client for the LessonSessionRecord from the given config.
func NewLessonSessionRecordClient(c config) *LessonSessionRecordClient {
	return &LessonSessionRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `lessonsessionrecord.Hooks(f(g(h())))`.
func (c *LessonSessionRecordClient) Use(hooks ...Hook) {
	c.hooks.LessonSessionRecord = append(c.hooks.LessonSessionRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `lessonsessionrecord.Intercept(f(g(h())))`.
func (c *LessonSessionRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.LessonSessionRecord = append(c.inters.LessonSessionRecord, interceptors...)
}

// Create returns a builder for creating a LessonSessionRecord entity.
func (c *LessonSessionRecordClient) Create() *LessonSessionRecordCreate {
	mutation := newLessonSessionRecordMutation(c.config, OpCreate)
	return &LessonSessionRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LessonSessionRecord entities.
func (c *LessonSessionRecordClient) CreateBulk(builders ...*LessonSessionRecordCreate) *LessonSessionRecordCreateBulk {
	return &LessonSessionRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LessonSessionRecordClient) MapCreateBulk(slice any, setFunc func(*LessonSessionRecordCreate, int)) *LessonSessionRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LessonSessionRecordCreateBulk{err: fmt.Errorf("calling to LessonSessionRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LessonSessionRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LessonSessionRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LessonSessionRecord.
func (c *LessonSessionRecordClient) Update() *LessonSessionRecordUpdate {
	mutation := newLessonSessionRecordMutation(c.config, OpUpdate)
	return &LessonSessionRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LessonSessionRecordClient) UpdateOne(_m *LessonSessionRecord) *LessonSessionRecordUpdateOne {
	mutation := newLessonSessionRecordMutation(c.config, OpUpdateOne, withLessonSessionRecord(_m))
	return &LessonSessionRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LessonSessionRecordClient) UpdateOneID(id int) *LessonSessionRecordUpdateOne {
	mutation := newLessonSessionRecordMutation(c.config, OpUpdateOne, withLessonSessionRecordID(id))
	return &LessonSessionRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LessonSessionRecord.
func (c *LessonSessionRecordClient) Delete() *LessonSessionRecordDelete {
	mutation := newLessonSessionRecordMutation(c.config, OpDelete)
	return &LessonSessionRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LessonSessionRecordClient) DeleteOne(_m *LessonSessionRecord) *LessonSessionRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LessonSessionRecordClient) DeleteOneID(id int) *LessonSessionRecordDeleteOne {
	builder := c.Delete().Where(lessonsessionrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LessonSessionRecordDeleteOne{builder}
}

// Query returns a query builder for LessonSessionRecord.
func (c *LessonSessionRecordClient) Query() *LessonSessionRecordQuery {
	return &LessonSessionRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLessonSessionRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a LessonSessionRecord entity by its id.
func (c *LessonSessionRecordClient) Get(ctx context.Context, id int) (*LessonSessionRecord, error) {
	return c.Query().Where(lessonsessionrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LessonSessionRecordClient) GetX(ctx context.Context, id int) *LessonSessionRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LessonSessionRecordClient) Hooks() []Hook {
	return c.hooks.LessonSessionRecord
}

// Interceptors returns the client interceptors.
func (c *LessonSessionRecordClient) Interceptors() []Interceptor {
	return c.inters.LessonSessionRecord
}

func (c *LessonSessionRecordClient) mutate(ctx context.Context, m *LessonSessionRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LessonSessionRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LessonSessionRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LessonSessionRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LessonSessionRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LessonSessionRecord mutation op: %q", m.Op())
	}
}

// TranscriptRecordClient is a client for the TranscriptRecord schema.
type TranscriptRecordClient struct {
	config
}

// NewTranscriptRecordClient returns a client for the TranscriptRecord from the given config.
func NewTranscriptRecordClient(c config) *TranscriptRecordClient {
	return &TranscriptRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `transcriptrecord.Hooks(f(g(h())))`.
func (c *TranscriptRecordClient) Use(hooks ...Hook) {
	c.hooks.TranscriptRecord = append(c.hooks.TranscriptRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `transcriptrecord.Intercept(f(g(h())))`.
func (c *TranscriptRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.TranscriptRecord = append(c.inters.TranscriptRecord, interceptors...)
}

// Create returns a builder for creating a TranscriptRecord entity.
func (c *TranscriptRecordClient) Create() *TranscriptRecordCreate {
	mutation := newTranscriptRecordMutation(c.config, OpCreate)
	return &TranscriptRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TranscriptRecord entities.
func (c *TranscriptRecordClient) CreateBulk(builders ...*TranscriptRecordCreate) *TranscriptRecordCreateBulk {
	return &TranscriptRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TranscriptRecordClient) MapCreateBulk(slice any, setFunc func(*TranscriptRecordCreate, int)) *TranscriptRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TranscriptRecordCreateBulk{err: fmt.Errorf("calling to TranscriptRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TranscriptRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TranscriptRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TranscriptRecord.
func (c *TranscriptRecordClient) Update() *TranscriptRecordUpdate {
	mutation := newTranscriptRecordMutation(c.config, OpUpdate)
	return &TranscriptRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TranscriptRecordClient) UpdateOne(_m *TranscriptRecord) *TranscriptRecordUpdateOne {
	mutation := newTranscriptRecordMutation(c.config, OpUpdateOne, withTranscriptRecord(_m))
	return &TranscriptRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TranscriptRecordClient) UpdateOneID(id int) *TranscriptRecordUpdateOne {
	mutation := newTranscriptRecordMutation(c.config, OpUpdateOne, withTranscriptRecordID(id))
	return &TranscriptRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TranscriptRecord.
func (c *TranscriptRecordClient) Delete() *TranscriptRecordDelete {
	mutation := newTranscriptRecordMutation(c.config, OpDelete)
	return &TranscriptRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TranscriptRecordClient) DeleteOne(_m *TranscriptRecord) *TranscriptRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TranscriptRecordClient) DeleteOneID(id int) *TranscriptRecordDeleteOne {
	builder := c.Delete().Where(transcriptrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TranscriptRecordDeleteOne{builder}
}

// Query returns a query builder for TranscriptRecord.
func (c *TranscriptRecordClient) Query() *TranscriptRecordQuery {
	return &TranscriptRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTranscriptRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a TranscriptRecord entity by its id.
func (c *TranscriptRecordClient) Get(ctx context.Context, id int) (*TranscriptRecord, error) {
	return c.Query().Where(transcriptrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TranscriptRecordClient) GetX(ctx context.Context, id int) *TranscriptRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TranscriptRecordClient) Hooks() []Hook {
	return c.hooks.TranscriptRecord
}

// Interceptors returns the client interceptors.
func (c *TranscriptRecordClient) Interceptors() []Interceptor {
	return c.inters.TranscriptRecord
}

func (c *TranscriptRecordClient) mutate(ctx context.Context, m *TranscriptRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TranscriptRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TranscriptRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TranscriptRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TranscriptRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TranscriptRecord mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		LLMRequestEvent, LessonPlanRecord, LessonSessionRecord,
		TranscriptRecord []ent.Hook
	}
	inters struct {
		LLMRequestEvent, LessonPlanRecord, LessonSessionRecord,
		TranscriptRecord []ent.Interceptor
	}
)
