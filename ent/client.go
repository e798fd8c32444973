// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/textloom/textloom/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/textloom/textloom/ent/materialanalysis"
	"github.com/textloom/textloom/ent/mediaitem"
	"github.com/textloom/textloom/ent/persona"
	"github.com/textloom/textloom/ent/prompttemplate"
	"github.com/textloom/textloom/ent/scriptcontent"
	"github.com/textloom/textloom/ent/subvideotask"
	"github.com/textloom/textloom/ent/task"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// MaterialAnalysis is the client for interacting with the MaterialAnalysis builders.
	MaterialAnalysis *MaterialAnalysisClient
	// MediaItem is the client for interacting with the MediaItem builders.
	MediaItem *MediaItemClient
	// Persona is the client for interacting with the Persona builders.
	Persona *PersonaClient
	// PromptTemplate is the client for interacting with the PromptTemplate builders.
	PromptTemplate *PromptTemplateClient
	// ScriptContent is the client for interacting with the ScriptContent builders.
	ScriptContent *ScriptContentClient
	// SubVideoTask is the client for interacting with the SubVideoTask builders.
	SubVideoTask *SubVideoTaskClient
	// Task is the client for interacting with the Task builders.
	Task *TaskClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.MaterialAnalysis = NewMaterialAnalysisClient(c.config)
	c.MediaItem = NewMediaItemClient(c.config)
	c.Persona = NewPersonaClient(c.config)
	c.PromptTemplate = NewPromptTemplateClient(c.config)
	c.ScriptContent = NewScriptContentClient(c.config)
	c.SubVideoTask = NewSubVideoTaskClient(c.config)
	c.Task = NewTaskClient(c.config)
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
		MaterialAnalysis: NewMaterialAnalysisClient(cfg),
		MediaItem:        NewMediaItemClient(cfg),
		Persona:          NewPersonaClient(cfg),
		PromptTemplate:   NewPromptTemplateClient(cfg),
		ScriptContent:    NewScriptContentClient(cfg),
		SubVideoTask:     NewSubVideoTaskClient(cfg),
		Task:             NewTaskClient(cfg),
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
		MaterialAnalysis: NewMaterialAnalysisClient(cfg),
		MediaItem:        NewMediaItemClient(cfg),
		Persona:          NewPersonaClient(cfg),
		PromptTemplate:   NewPromptTemplateClient(cfg),
		ScriptContent:    NewScriptContentClient(cfg),
		SubVideoTask:     NewSubVideoTaskClient(cfg),
		Task:             NewTaskClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		MaterialAnalysis.
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
	for _, n := range []interface{ Use(...Hook) }{
		c.MaterialAnalysis, c.MediaItem, c.Persona, c.PromptTemplate, c.ScriptContent,
		c.SubVideoTask, c.Task,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.MaterialAnalysis, c.MediaItem, c.Persona, c.PromptTemplate, c.ScriptContent,
		c.SubVideoTask, c.Task,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *MaterialAnalysisMutation:
		return c.MaterialAnalysis.mutate(ctx, m)
	case *MediaItemMutation:
		return c.MediaItem.mutate(ctx, m)
	case *PersonaMutation:
		return c.Persona.mutate(ctx, m)
	case *PromptTemplateMutation:
		return c.PromptTemplate.mutate(ctx, m)
	case *ScriptContentMutation:
		return c.ScriptContent.mutate(ctx, m)
	case *SubVideoTaskMutation:
		return c.SubVideoTask.mutate(ctx, m)
	case *TaskMutation:
		return c.Task.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// MaterialAnalysisClient is a client for the MaterialAnalysis schema.
type MaterialAnalysisClient struct {
	config
}

// NewMaterialAnalysisClient returns a client for the MaterialAnalysis from the given config.
func NewMaterialAnalysisClient(c config) *MaterialAnalysisClient {
	return &MaterialAnalysisClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `materialanalysis.Hooks(f(g(h())))`.
func (c *MaterialAnalysisClient) Use(hooks ...Hook) {
	c.hooks.MaterialAnalysis = append(c.hooks.MaterialAnalysis, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `materialanalysis.Intercept(f(g(h())))`.
func (c *MaterialAnalysisClient) Intercept(interceptors ...Interceptor) {
	c.inters.MaterialAnalysis = append(c.inters.MaterialAnalysis, interceptors...)
}

// Create returns a builder for creating a MaterialAnalysis entity.
func (c *MaterialAnalysisClient) Create() *MaterialAnalysisCreate {
	mutation := newMaterialAnalysisMutation(c.config, OpCreate)
	return &MaterialAnalysisCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MaterialAnalysis entities.
func (c *MaterialAnalysisClient) CreateBulk(builders ...*MaterialAnalysisCreate) *MaterialAnalysisCreateBulk {
	return &MaterialAnalysisCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MaterialAnalysisClient) MapCreateBulk(slice any, setFunc func(*MaterialAnalysisCreate, int)) *MaterialAnalysisCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MaterialAnalysisCreateBulk{err: fmt.Errorf("calling to MaterialAnalysisClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MaterialAnalysisCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MaterialAnalysisCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MaterialAnalysis.
func (c *MaterialAnalysisClient) Update() *MaterialAnalysisUpdate {
	mutation := newMaterialAnalysisMutation(c.config, OpUpdate)
	return &MaterialAnalysisUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MaterialAnalysisClient) UpdateOne(_m *MaterialAnalysis) *MaterialAnalysisUpdateOne {
	mutation := newMaterialAnalysisMutation(c.config, OpUpdateOne, withMaterialAnalysis(_m))
	return &MaterialAnalysisUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MaterialAnalysisClient) UpdateOneID(id string) *MaterialAnalysisUpdateOne {
	mutation := newMaterialAnalysisMutation(c.config, OpUpdateOne, withMaterialAnalysisID(id))
	return &MaterialAnalysisUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MaterialAnalysis.
func (c *MaterialAnalysisClient) Delete() *MaterialAnalysisDelete {
	mutation := newMaterialAnalysisMutation(c.config, OpDelete)
	return &MaterialAnalysisDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MaterialAnalysisClient) DeleteOne(_m *MaterialAnalysis) *MaterialAnalysisDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MaterialAnalysisClient) DeleteOneID(id string) *MaterialAnalysisDeleteOne {
	builder := c.Delete().Where(materialanalysis.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MaterialAnalysisDeleteOne{builder}
}

// Query returns a query builder for MaterialAnalysis.
func (c *MaterialAnalysisClient) Query() *MaterialAnalysisQuery {
	return &MaterialAnalysisQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMaterialAnalysis},
		inters: c.Interceptors(),
	}
}

// Get returns a MaterialAnalysis entity by its id.
func (c *MaterialAnalysisClient) Get(ctx context.Context, id string) (*MaterialAnalysis, error) {
	return c.Query().Where(materialanalysis.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MaterialAnalysisClient) GetX(ctx context.Context, id string) *MaterialAnalysis {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTask queries the task edge of a MaterialAnalysis.
func (c *MaterialAnalysisClient) QueryTask(_m *MaterialAnalysis) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(materialanalysis.Table, materialanalysis.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, materialanalysis.TaskTable, materialanalysis.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MaterialAnalysisClient) Hooks() []Hook {
	return c.hooks.MaterialAnalysis
}

// Interceptors returns the client interceptors.
func (c *MaterialAnalysisClient) Interceptors() []Interceptor {
	return c.inters.MaterialAnalysis
}

func (c *MaterialAnalysisClient) mutate(ctx context.Context, m *MaterialAnalysisMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MaterialAnalysisCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MaterialAnalysisUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MaterialAnalysisUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MaterialAnalysisDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MaterialAnalysis mutation op: %q", m.Op())
	}
}

// MediaItemClient is a client for the MediaItem schema.
type MediaItemClient struct {
	config
}

// NewMediaItemClient returns a client for the MediaItem from the given config.
func NewMediaItemClient(c config) *MediaItemClient {
	return &MediaItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `mediaitem.Hooks(f(g(h())))`.
func (c *MediaItemClient) Use(hooks ...Hook) {
	c.hooks.MediaItem = append(c.hooks.MediaItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `mediaitem.Intercept(f(g(h())))`.
func (c *MediaItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.MediaItem = append(c.inters.MediaItem, interceptors...)
}

// Create returns a builder for creating a MediaItem entity.
func (c *MediaItemClient) Create() *MediaItemCreate {
	mutation := newMediaItemMutation(c.config, OpCreate)
	return &MediaItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MediaItem entities.
func (c *MediaItemClient) CreateBulk(builders ...*MediaItemCreate) *MediaItemCreateBulk {
	return &MediaItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MediaItemClient) MapCreateBulk(slice any, setFunc func(*MediaItemCreate, int)) *MediaItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MediaItemCreateBulk{err: fmt.Errorf("calling to MediaItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MediaItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MediaItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MediaItem.
func (c *MediaItemClient) Update() *MediaItemUpdate {
	mutation := newMediaItemMutation(c.config, OpUpdate)
	return &MediaItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MediaItemClient) UpdateOne(_m *MediaItem) *MediaItemUpdateOne {
	mutation := newMediaItemMutation(c.config, OpUpdateOne, withMediaItem(_m))
	return &MediaItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MediaItemClient) UpdateOneID(id string) *MediaItemUpdateOne {
	mutation := newMediaItemMutation(c.config, OpUpdateOne, withMediaItemID(id))
	return &MediaItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MediaItem.
func (c *MediaItemClient) Delete() *MediaItemDelete {
	mutation := newMediaItemMutation(c.config, OpDelete)
	return &MediaItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MediaItemClient) DeleteOne(_m *MediaItem) *MediaItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MediaItemClient) DeleteOneID(id string) *MediaItemDeleteOne {
	builder := c.Delete().Where(mediaitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MediaItemDeleteOne{builder}
}

// Query returns a query builder for MediaItem.
func (c *MediaItemClient) Query() *MediaItemQuery {
	return &MediaItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMediaItem},
		inters: c.Interceptors(),
	}
}

// Get returns a MediaItem entity by its id.
func (c *MediaItemClient) Get(ctx context.Context, id string) (*MediaItem, error) {
	return c.Query().Where(mediaitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MediaItemClient) GetX(ctx context.Context, id string) *MediaItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTask queries the task edge of a MediaItem.
func (c *MediaItemClient) QueryTask(_m *MediaItem) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(mediaitem.Table, mediaitem.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, mediaitem.TaskTable, mediaitem.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MediaItemClient) Hooks() []Hook {
	return c.hooks.MediaItem
}

// Interceptors returns the client interceptors.
func (c *MediaItemClient) Interceptors() []Interceptor {
	return c.inters.MediaItem
}

func (c *MediaItemClient) mutate(ctx context.Context, m *MediaItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MediaItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MediaItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MediaItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MediaItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MediaItem mutation op: %q", m.Op())
	}
}

// PersonaClient is a client for the Persona schema.
type PersonaClient struct {
	config
}

// NewPersonaClient returns a client for the Persona from the given config.
func NewPersonaClient(c config) *PersonaClient {
	return &PersonaClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `persona.Hooks(f(g(h())))`.
func (c *PersonaClient) Use(hooks ...Hook) {
	c.hooks.Persona = append(c.hooks.Persona, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `persona.Intercept(f(g(h())))`.
func (c *PersonaClient) Intercept(interceptors ...Interceptor) {
	c.inters.Persona = append(c.inters.Persona, interceptors...)
}

// Create returns a builder for creating a Persona entity.
func (c *PersonaClient) Create() *PersonaCreate {
	mutation := newPersonaMutation(c.config, OpCreate)
	return &PersonaCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Persona entities.
func (c *PersonaClient) CreateBulk(builders ...*PersonaCreate) *PersonaCreateBulk {
	return &PersonaCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PersonaClient) MapCreateBulk(slice any, setFunc func(*PersonaCreate, int)) *PersonaCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PersonaCreateBulk{err: fmt.Errorf("calling to PersonaClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PersonaCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PersonaCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Persona.
func (c *PersonaClient) Update() *PersonaUpdate {
	mutation := newPersonaMutation(c.config, OpUpdate)
	return &PersonaUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PersonaClient) UpdateOne(_m *Persona) *PersonaUpdateOne {
	mutation := newPersonaMutation(c.config, OpUpdateOne, withPersona(_m))
	return &PersonaUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PersonaClient) UpdateOneID(id string) *PersonaUpdateOne {
	mutation := newPersonaMutation(c.config, OpUpdateOne, withPersonaID(id))
	return &PersonaUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Persona.
func (c *PersonaClient) Delete() *PersonaDelete {
	mutation := newPersonaMutation(c.config, OpDelete)
	return &PersonaDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PersonaClient) DeleteOne(_m *Persona) *PersonaDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PersonaClient) DeleteOneID(id string) *PersonaDeleteOne {
	builder := c.Delete().Where(persona.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PersonaDeleteOne{builder}
}

// Query returns a query builder for Persona.
func (c *PersonaClient) Query() *PersonaQuery {
	return &PersonaQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePersona},
		inters: c.Interceptors(),
	}
}

// Get returns a Persona entity by its id.
func (c *PersonaClient) Get(ctx context.Context, id string) (*Persona, error) {
	return c.Query().Where(persona.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PersonaClient) GetX(ctx context.Context, id string) *Persona {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PersonaClient) Hooks() []Hook {
	return c.hooks.Persona
}

// Interceptors returns the client interceptors.
func (c *PersonaClient) Interceptors() []Interceptor {
	return c.inters.Persona
}

func (c *PersonaClient) mutate(ctx context.Context, m *PersonaMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PersonaCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PersonaUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PersonaUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PersonaDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Persona mutation op: %q", m.Op())
	}
}

// PromptTemplateClient is a client for the PromptTemplate schema.
type PromptTemplateClient struct {
	config
}

// NewPromptTemplateClient returns a client for the PromptTemplate from the given config.
func NewPromptTemplateClient(c config) *PromptTemplateClient {
	return &PromptTemplateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `prompttemplate.Hooks(f(g(h())))`.
func (c *PromptTemplateClient) Use(hooks ...Hook) {
	c.hooks.PromptTemplate = append(c.hooks.PromptTemplate, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `prompttemplate.Intercept(f(g(h())))`.
func (c *PromptTemplateClient) Intercept(interceptors ...Interceptor) {
	c.inters.PromptTemplate = append(c.inters.PromptTemplate, interceptors...)
}

// Create returns a builder for creating a PromptTemplate entity.
func (c *PromptTemplateClient) Create() *PromptTemplateCreate {
	mutation := newPromptTemplateMutation(c.config, OpCreate)
	return &PromptTemplateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PromptTemplate entities.
func (c *PromptTemplateClient) CreateBulk(builders ...*PromptTemplateCreate) *PromptTemplateCreateBulk {
	return &PromptTemplateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PromptTemplateClient) MapCreateBulk(slice any, setFunc func(*PromptTemplateCreate, int)) *PromptTemplateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PromptTemplateCreateBulk{err: fmt.Errorf("calling to PromptTemplateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PromptTemplateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PromptTemplateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PromptTemplate.
func (c *PromptTemplateClient) Update() *PromptTemplateUpdate {
	mutation := newPromptTemplateMutation(c.config, OpUpdate)
	return &PromptTemplateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PromptTemplateClient) UpdateOne(_m *PromptTemplate) *PromptTemplateUpdateOne {
	mutation := newPromptTemplateMutation(c.config, OpUpdateOne, withPromptTemplate(_m))
	return &PromptTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PromptTemplateClient) UpdateOneID(id string) *PromptTemplateUpdateOne {
	mutation := newPromptTemplateMutation(c.config, OpUpdateOne, withPromptTemplateID(id))
	return &PromptTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PromptTemplate.
func (c *PromptTemplateClient) Delete() *PromptTemplateDelete {
	mutation := newPromptTemplateMutation(c.config, OpDelete)
	return &PromptTemplateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PromptTemplateClient) DeleteOne(_m *PromptTemplate) *PromptTemplateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PromptTemplateClient) DeleteOneID(id string) *PromptTemplateDeleteOne {
	builder := c.Delete().Where(prompttemplate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PromptTemplateDeleteOne{builder}
}

// Query returns a query builder for PromptTemplate.
func (c *PromptTemplateClient) Query() *PromptTemplateQuery {
	return &PromptTemplateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePromptTemplate},
		inters: c.Interceptors(),
	}
}

// Get returns a PromptTemplate entity by its id.
func (c *PromptTemplateClient) Get(ctx context.Context, id string) (*PromptTemplate, error) {
	return c.Query().Where(prompttemplate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PromptTemplateClient) GetX(ctx context.Context, id string) *PromptTemplate {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PromptTemplateClient) Hooks() []Hook {
	return c.hooks.PromptTemplate
}

// Interceptors returns the client interceptors.
func (c *PromptTemplateClient) Interceptors() []Interceptor {
	return c.inters.PromptTemplate
}

func (c *PromptTemplateClient) mutate(ctx context.Context, m *PromptTemplateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PromptTemplateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PromptTemplateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PromptTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PromptTemplateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PromptTemplate mutation op: %q", m.Op())
	}
}

// ScriptContentClient is a client for the ScriptContent schema.
type ScriptContentClient struct {
	config
}

// NewScriptContentClient returns a client for the ScriptContent from the given config.
func NewScriptContentClient(c config) *ScriptContentClient {
	return &ScriptContentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `scriptcontent.Hooks(f(g(h())))`.
func (c *ScriptContentClient) Use(hooks ...Hook) {
	c.hooks.ScriptContent = append(c.hooks.ScriptContent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `scriptcontent.Intercept(f(g(h())))`.
func (c *ScriptContentClient) Intercept(interceptors ...Interceptor) {
	c.inters.ScriptContent = append(c.inters.ScriptContent, interceptors...)
}

// Create returns a builder for creating a ScriptContent entity.
func (c *ScriptContentClient) Create() *ScriptContentCreate {
	mutation := newScriptContentMutation(c.config, OpCreate)
	return &ScriptContentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ScriptContent entities.
func (c *ScriptContentClient) CreateBulk(builders ...*ScriptContentCreate) *ScriptContentCreateBulk {
	return &ScriptContentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ScriptContentClient) MapCreateBulk(slice any, setFunc func(*ScriptContentCreate, int)) *ScriptContentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ScriptContentCreateBulk{err: fmt.Errorf("calling to ScriptContentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ScriptContentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ScriptContentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ScriptContent.
func (c *ScriptContentClient) Update() *ScriptContentUpdate {
	mutation := newScriptContentMutation(c.config, OpUpdate)
	return &ScriptContentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ScriptContentClient) UpdateOne(_m *ScriptContent) *ScriptContentUpdateOne {
	mutation := newScriptContentMutation(c.config, OpUpdateOne, withScriptContent(_m))
	return &ScriptContentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ScriptContentClient) UpdateOneID(id string) *ScriptContentUpdateOne {
	mutation := newScriptContentMutation(c.config, OpUpdateOne, withScriptContentID(id))
	return &ScriptContentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ScriptContent.
func (c *ScriptContentClient) Delete() *ScriptContentDelete {
	mutation := newScriptContentMutation(c.config, OpDelete)
	return &ScriptContentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ScriptContentClient) DeleteOne(_m *ScriptContent) *ScriptContentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ScriptContentClient) DeleteOneID(id string) *ScriptContentDeleteOne {
	builder := c.Delete().Where(scriptcontent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ScriptContentDeleteOne{builder}
}

// Query returns a query builder for ScriptContent.
func (c *ScriptContentClient) Query() *ScriptContentQuery {
	return &ScriptContentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeScriptContent},
		inters: c.Interceptors(),
	}
}

// Get returns a ScriptContent entity by its id.
func (c *ScriptContentClient) Get(ctx context.Context, id string) (*ScriptContent, error) {
	return c.Query().Where(scriptcontent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ScriptContentClient) GetX(ctx context.Context, id string) *ScriptContent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTask queries the task edge of a ScriptContent.
func (c *ScriptContentClient) QueryTask(_m *ScriptContent) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(scriptcontent.Table, scriptcontent.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, scriptcontent.TaskTable, scriptcontent.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ScriptContentClient) Hooks() []Hook {
	return c.hooks.ScriptContent
}

// Interceptors returns the client interceptors.
func (c *ScriptContentClient) Interceptors() []Interceptor {
	return c.inters.ScriptContent
}

func (c *ScriptContentClient) mutate(ctx context.Context, m *ScriptContentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ScriptContentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ScriptContentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ScriptContentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ScriptContentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ScriptContent mutation op: %q", m.Op())
	}
}

// SubVideoTaskClient is a client for the SubVideoTask schema.
type SubVideoTaskClient struct {
	config
}

// NewSubVideoTaskClient returns a client for the SubVideoTask from the given config.
func NewSubVideoTaskClient(c config) *SubVideoTaskClient {
	return &SubVideoTaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `subvideotask.Hooks(f(g(h())))`.
func (c *SubVideoTaskClient) Use(hooks ...Hook) {
	c.hooks.SubVideoTask = append(c.hooks.SubVideoTask, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `subvideotask.Intercept(f(g(h())))`.
func (c *SubVideoTaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.SubVideoTask = append(c.inters.SubVideoTask, interceptors...)
}

// Create returns a builder for creating a SubVideoTask entity.
func (c *SubVideoTaskClient) Create() *SubVideoTaskCreate {
	mutation := newSubVideoTaskMutation(c.config, OpCreate)
	return &SubVideoTaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SubVideoTask entities.
func (c *SubVideoTaskClient) CreateBulk(builders ...*SubVideoTaskCreate) *SubVideoTaskCreateBulk {
	return &SubVideoTaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SubVideoTaskClient) MapCreateBulk(slice any, setFunc func(*SubVideoTaskCreate, int)) *SubVideoTaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SubVideoTaskCreateBulk{err: fmt.Errorf("calling to SubVideoTaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SubVideoTaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SubVideoTaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SubVideoTask.
func (c *SubVideoTaskClient) Update() *SubVideoTaskUpdate {
	mutation := newSubVideoTaskMutation(c.config, OpUpdate)
	return &SubVideoTaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SubVideoTaskClient) UpdateOne(_m *SubVideoTask) *SubVideoTaskUpdateOne {
	mutation := newSubVideoTaskMutation(c.config, OpUpdateOne, withSubVideoTask(_m))
	return &SubVideoTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SubVideoTaskClient) UpdateOneID(id string) *SubVideoTaskUpdateOne {
	mutation := newSubVideoTaskMutation(c.config, OpUpdateOne, withSubVideoTaskID(id))
	return &SubVideoTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SubVideoTask.
func (c *SubVideoTaskClient) Delete() *SubVideoTaskDelete {
	mutation := newSubVideoTaskMutation(c.config, OpDelete)
	return &SubVideoTaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SubVideoTaskClient) DeleteOne(_m *SubVideoTask) *SubVideoTaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SubVideoTaskClient) DeleteOneID(id string) *SubVideoTaskDeleteOne {
	builder := c.Delete().Where(subvideotask.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SubVideoTaskDeleteOne{builder}
}

// Query returns a query builder for SubVideoTask.
func (c *SubVideoTaskClient) Query() *SubVideoTaskQuery {
	return &SubVideoTaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSubVideoTask},
		inters: c.Interceptors(),
	}
}

// Get returns a SubVideoTask entity by its id.
func (c *SubVideoTaskClient) Get(ctx context.Context, id string) (*SubVideoTask, error) {
	return c.Query().Where(subvideotask.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SubVideoTaskClient) GetX(ctx context.Context, id string) *SubVideoTask {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTask queries the task edge of a SubVideoTask.
func (c *SubVideoTaskClient) QueryTask(_m *SubVideoTask) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(subvideotask.Table, subvideotask.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, subvideotask.TaskTable, subvideotask.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SubVideoTaskClient) Hooks() []Hook {
	return c.hooks.SubVideoTask
}

// Interceptors returns the client interceptors.
func (c *SubVideoTaskClient) Interceptors() []Interceptor {
	return c.inters.SubVideoTask
}

func (c *SubVideoTaskClient) mutate(ctx context.Context, m *SubVideoTaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SubVideoTaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SubVideoTaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SubVideoTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SubVideoTaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SubVideoTask mutation op: %q", m.Op())
	}
}

// TaskClient is a client for the Task schema.
type TaskClient struct {
	config
}

// NewTaskClient returns a client for the Task from the given config.
func NewTaskClient(c config) *TaskClient {
	return &TaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `task.Hooks(f(g(h())))`.
func (c *TaskClient) Use(hooks ...Hook) {
	c.hooks.Task = append(c.hooks.Task, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `task.Intercept(f(g(h())))`.
func (c *TaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.Task = append(c.inters.Task, interceptors...)
}

// Create returns a builder for creating a Task entity.
func (c *TaskClient) Create() *TaskCreate {
	mutation := newTaskMutation(c.config, OpCreate)
	return &TaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Task entities.
func (c *TaskClient) CreateBulk(builders ...*TaskCreate) *TaskCreateBulk {
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskClient) MapCreateBulk(slice any, setFunc func(*TaskCreate, int)) *TaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskCreateBulk{err: fmt.Errorf("calling to TaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Task.
func (c *TaskClient) Update() *TaskUpdate {
	mutation := newTaskMutation(c.config, OpUpdate)
	return &TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskClient) UpdateOne(_m *Task) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTask(_m))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskClient) UpdateOneID(id string) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTaskID(id))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Task.
func (c *TaskClient) Delete() *TaskDelete {
	mutation := newTaskMutation(c.config, OpDelete)
	return &TaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskClient) DeleteOne(_m *Task) *TaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskClient) DeleteOneID(id string) *TaskDeleteOne {
	builder := c.Delete().Where(task.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskDeleteOne{builder}
}

// Query returns a query builder for Task.
func (c *TaskClient) Query() *TaskQuery {
	return &TaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTask},
		inters: c.Interceptors(),
	}
}

// Get returns a Task entity by its id.
func (c *TaskClient) Get(ctx context.Context, id string) (*Task, error) {
	return c.Query().Where(task.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskClient) GetX(ctx context.Context, id string) *Task {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySubTasks queries the sub_tasks edge of a Task.
func (c *TaskClient) QuerySubTasks(_m *Task) *SubVideoTaskQuery {
	query := (&SubVideoTaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(subvideotask.Table, subvideotask.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, task.SubTasksTable, task.SubTasksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMediaItems queries the media_items edge of a Task.
func (c *TaskClient) QueryMediaItems(_m *Task) *MediaItemQuery {
	query := (&MediaItemClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(mediaitem.Table, mediaitem.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, task.MediaItemsTable, task.MediaItemsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAnalyses queries the analyses edge of a Task.
func (c *TaskClient) QueryAnalyses(_m *Task) *MaterialAnalysisQuery {
	query := (&MaterialAnalysisClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(materialanalysis.Table, materialanalysis.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, task.AnalysesTable, task.AnalysesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryScripts queries the scripts edge of a Task.
func (c *TaskClient) QueryScripts(_m *Task) *ScriptContentQuery {
	query := (&ScriptContentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(scriptcontent.Table, scriptcontent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, task.ScriptsTable, task.ScriptsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TaskClient) Hooks() []Hook {
	return c.hooks.Task
}

// Interceptors returns the client interceptors.
func (c *TaskClient) Interceptors() []Interceptor {
	return c.inters.Task
}

func (c *TaskClient) mutate(ctx context.Context, m *TaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Task mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		MaterialAnalysis, MediaItem, Persona, PromptTemplate, ScriptContent,
		SubVideoTask, Task []ent.Hook
	}
	inters struct {
		MaterialAnalysis, MediaItem, Persona, PromptTemplate, ScriptContent,
		SubVideoTask, Task []ent.Interceptor
	}
)
