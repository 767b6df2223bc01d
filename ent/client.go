// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/jordanlanch/outreachhq/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/jordanlanch/outreachhq/ent/engagement"
	"github.com/jordanlanch/outreachhq/ent/prospect"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Engagement is the client for interacting with the Engagement builders.
	Engagement *EngagementClient
	// Prospect is the client for interacting with the Prospect builders.
	Prospect *ProspectClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Engagement = NewEngagementClient(c.config)
	c.Prospect = NewProspectClient(c.config)
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
		ctx:        ctx,
		config:     cfg,
		Engagement: NewEngagementClient(cfg),
		Prospect:   NewProspectClient(cfg),
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
		ctx:        ctx,
		config:     cfg,
		Engagement: NewEngagementClient(cfg),
		Prospect:   NewProspectClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Engagement.
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
	c.Engagement.Use(hooks...)
	c.Prospect.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Engagement.Intercept(interceptors...)
	c.Prospect.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *EngagementMutation:
		return c.Engagement.mutate(ctx, m)
	case *ProspectMutation:
		return c.Prospect.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// EngagementClient is a client for the Engagement schema.
type EngagementClient struct {
	config
}

// NewEngagementClient returns a client for the Engagement from the given config.
func NewEngagementClient(c config) *EngagementClient {
	return &EngagementClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `engagement.Hooks(f(g(h())))`.
func (c *EngagementClient) Use(hooks ...Hook) {
	c.hooks.Engagement = append(c.hooks.Engagement, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `engagement.Intercept(f(g(h())))`.
func (c *EngagementClient) Intercept(interceptors ...Interceptor) {
	c.inters.Engagement = append(c.inters.Engagement, interceptors...)
}

// Create returns a builder for creating a Engagement entity.
func (c *EngagementClient) Create() *EngagementCreate {
	mutation := newEngagementMutation(c.config, OpCreate)
	return &EngagementCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Engagement entities.
func (c *EngagementClient) CreateBulk(builders ...*EngagementCreate) *EngagementCreateBulk {
	return &EngagementCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EngagementClient) MapCreateBulk(slice any, setFunc func(*EngagementCreate, int)) *EngagementCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EngagementCreateBulk{err: fmt.Errorf("calling to EngagementClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EngagementCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EngagementCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Engagement.
func (c *EngagementClient) Update() *EngagementUpdate {
	mutation := newEngagementMutation(c.config, OpUpdate)
	return &EngagementUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EngagementClient) UpdateOne(_m *Engagement) *EngagementUpdateOne {
	mutation := newEngagementMutation(c.config, OpUpdateOne, withEngagement(_m))
	return &EngagementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EngagementClient) UpdateOneID(id int) *EngagementUpdateOne {
	mutation := newEngagementMutation(c.config, OpUpdateOne, withEngagementID(id))
	return &EngagementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Engagement.
func (c *EngagementClient) Delete() *EngagementDelete {
	mutation := newEngagementMutation(c.config, OpDelete)
	return &EngagementDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EngagementClient) DeleteOne(_m *Engagement) *EngagementDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EngagementClient) DeleteOneID(id int) *EngagementDeleteOne {
	builder := c.Delete().Where(engagement.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EngagementDeleteOne{builder}
}

// Query returns a query builder for Engagement.
func (c *EngagementClient) Query() *EngagementQuery {
	return &EngagementQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEngagement},
		inters: c.Interceptors(),
	}
}

// Get returns a Engagement entity by its id.
func (c *EngagementClient) Get(ctx context.Context, id int) (*Engagement, error) {
	return c.Query().Where(engagement.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EngagementClient) GetX(ctx context.Context, id int) *Engagement {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProspect queries the prospect edge of a Engagement.
func (c *EngagementClient) QueryProspect(_m *Engagement) *ProspectQuery {
	query := (&ProspectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(engagement.Table, engagement.FieldID, id),
			sqlgraph.To(prospect.Table, prospect.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, engagement.ProspectTable, engagement.ProspectColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EngagementClient) Hooks() []Hook {
	return c.hooks.Engagement
}

// Interceptors returns the client interceptors.
func (c *EngagementClient) Interceptors() []Interceptor {
	return c.inters.Engagement
}

func (c *EngagementClient) mutate(ctx context.Context, m *EngagementMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EngagementCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EngagementUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EngagementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EngagementDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Engagement mutation op: %q", m.Op())
	}
}

// ProspectClient is a client for the Prospect schema.
type ProspectClient struct {
	config
}

// NewProspectClient returns a client for the Prospect from the given config.
func NewProspectClient(c config) *ProspectClient {
	return &ProspectClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `prospect.Hooks(f(g(h())))`.
func (c *ProspectClient) Use(hooks ...Hook) {
	c.hooks.Prospect = append(c.hooks.Prospect, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `prospect.Intercept(f(g(h())))`.
func (c *ProspectClient) Intercept(interceptors ...Interceptor) {
	c.inters.Prospect = append(c.inters.Prospect, interceptors...)
}

// Create returns a builder for creating a Prospect entity.
func (c *ProspectClient) Create() *ProspectCreate {
	mutation := newProspectMutation(c.config, OpCreate)
	return &ProspectCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Prospect entities.
func (c *ProspectClient) CreateBulk(builders ...*ProspectCreate) *ProspectCreateBulk {
	return &ProspectCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProspectClient) MapCreateBulk(slice any, setFunc func(*ProspectCreate, int)) *ProspectCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProspectCreateBulk{err: fmt.Errorf("calling to ProspectClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProspectCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProspectCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Prospect.
func (c *ProspectClient) Update() *ProspectUpdate {
	mutation := newProspectMutation(c.config, OpUpdate)
	return &ProspectUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProspectClient) UpdateOne(_m *Prospect) *ProspectUpdateOne {
	mutation := newProspectMutation(c.config, OpUpdateOne, withProspect(_m))
	return &ProspectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProspectClient) UpdateOneID(id int) *ProspectUpdateOne {
	mutation := newProspectMutation(c.config, OpUpdateOne, withProspectID(id))
	return &ProspectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Prospect.
func (c *ProspectClient) Delete() *ProspectDelete {
	mutation := newProspectMutation(c.config, OpDelete)
	return &ProspectDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProspectClient) DeleteOne(_m *Prospect) *ProspectDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProspectClient) DeleteOneID(id int) *ProspectDeleteOne {
	builder := c.Delete().Where(prospect.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProspectDeleteOne{builder}
}

// Query returns a query builder for Prospect.
func (c *ProspectClient) Query() *ProspectQuery {
	return &ProspectQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProspect},
		inters: c.Interceptors(),
	}
}

// Get returns a Prospect entity by its id.
func (c *ProspectClient) Get(ctx context.Context, id int) (*Prospect, error) {
	return c.Query().Where(prospect.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProspectClient) GetX(ctx context.Context, id int) *Prospect {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEngagements queries the engagements edge of a Prospect.
func (c *ProspectClient) QueryEngagements(_m *Prospect) *EngagementQuery {
	query := (&EngagementClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(prospect.Table, prospect.FieldID, id),
			sqlgraph.To(engagement.Table, engagement.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, prospect.EngagementsTable, prospect.EngagementsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProspectClient) Hooks() []Hook {
	return c.hooks.Prospect
}

// Interceptors returns the client interceptors.
func (c *ProspectClient) Interceptors() []Interceptor {
	return c.inters.Prospect
}

func (c *ProspectClient) mutate(ctx context.Context, m *ProspectMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProspectCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProspectUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProspectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProspectDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Prospect mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Engagement, Prospect []ent.Hook
	}
	inters struct {
		Engagement, Prospect []ent.Interceptor
	}
)
