// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jordanlanch/outreachhq/ent/engagement"
	"github.com/jordanlanch/outreachhq/ent/prospect"
)

// EngagementCreate is the builder for creating a Engagement entity.
type EngagementCreate struct {
	config
	mutation *EngagementMutation
	hooks    []Hook
}

// SetProspectID sets the "prospect_id" field.
func (_c *EngagementCreate) SetProspectID(v int) *EngagementCreate {
	_c.mutation.SetProspectID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *EngagementCreate) SetKind(v string) *EngagementCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *EngagementCreate) SetContent(v string) *EngagementCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetSentAt sets the "sent_at" field.
func (_c *EngagementCreate) SetSentAt(v time.Time) *EngagementCreate {
	_c.mutation.SetSentAt(v)
	return _c
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_c *EngagementCreate) SetNillableSentAt(v *time.Time) *EngagementCreate {
	if v != nil {
		_c.SetSentAt(*v)
	}
	return _c
}

// SetOpened sets the "opened" field.
func (_c *EngagementCreate) SetOpened(v bool) *EngagementCreate {
	_c.mutation.SetOpened(v)
	return _c
}

// SetNillableOpened sets the "opened" field if the given value is not nil.
func (_c *EngagementCreate) SetNillableOpened(v *bool) *EngagementCreate {
	if v != nil {
		_c.SetOpened(*v)
	}
	return _c
}

// SetClicked sets the "clicked" field.
func (_c *EngagementCreate) SetClicked(v bool) *EngagementCreate {
	_c.mutation.SetClicked(v)
	return _c
}

// SetNillableClicked sets the "clicked" field if the given value is not nil.
func (_c *EngagementCreate) SetNillableClicked(v *bool) *EngagementCreate {
	if v != nil {
		_c.SetClicked(*v)
	}
	return _c
}

// SetResponded sets the "responded" field.
func (_c *EngagementCreate) SetResponded(v bool) *EngagementCreate {
	_c.mutation.SetResponded(v)
	return _c
}

// SetNillableResponded sets the "responded" field if the given value is not nil.
func (_c *EngagementCreate) SetNillableResponded(v *bool) *EngagementCreate {
	if v != nil {
		_c.SetResponded(*v)
	}
	return _c
}

// SetEngagementScore sets the "engagement_score" field.
func (_c *EngagementCreate) SetEngagementScore(v float64) *EngagementCreate {
	_c.mutation.SetEngagementScore(v)
	return _c
}

// SetNillableEngagementScore sets the "engagement_score" field if the given value is not nil.
func (_c *EngagementCreate) SetNillableEngagementScore(v *float64) *EngagementCreate {
	if v != nil {
		_c.SetEngagementScore(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *EngagementCreate) SetNotes(v string) *EngagementCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *EngagementCreate) SetNillableNotes(v *string) *EngagementCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetProspect sets the "prospect" edge to the Prospect entity.
func (_c *EngagementCreate) SetProspect(v *Prospect) *EngagementCreate {
	return _c.SetProspectID(v.ID)
}

// Mutation returns the EngagementMutation object of the builder.
func (_c *EngagementCreate) Mutation() *EngagementMutation {
	return _c.mutation
}

// Save creates the Engagement in the database.
func (_c *EngagementCreate) Save(ctx context.Context) (*Engagement, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EngagementCreate) SaveX(ctx context.Context) *Engagement {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EngagementCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EngagementCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EngagementCreate) defaults() {
	if _, ok := _c.mutation.SentAt(); !ok {
		v := engagement.DefaultSentAt()
		_c.mutation.SetSentAt(v)
	}
	if _, ok := _c.mutation.Opened(); !ok {
		v := engagement.DefaultOpened
		_c.mutation.SetOpened(v)
	}
	if _, ok := _c.mutation.Clicked(); !ok {
		v := engagement.DefaultClicked
		_c.mutation.SetClicked(v)
	}
	if _, ok := _c.mutation.Responded(); !ok {
		v := engagement.DefaultResponded
		_c.mutation.SetResponded(v)
	}
	if _, ok := _c.mutation.EngagementScore(); !ok {
		v := engagement.DefaultEngagementScore
		_c.mutation.SetEngagementScore(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EngagementCreate) check() error {
	if _, ok := _c.mutation.ProspectID(); !ok {
		return &ValidationError{Name: "prospect_id", err: errors.New(`ent: missing required field "Engagement.prospect_id"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "Engagement.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := engagement.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Engagement.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "Engagement.content"`)}
	}
	if _, ok := _c.mutation.SentAt(); !ok {
		return &ValidationError{Name: "sent_at", err: errors.New(`ent: missing required field "Engagement.sent_at"`)}
	}
	if _, ok := _c.mutation.Opened(); !ok {
		return &ValidationError{Name: "opened", err: errors.New(`ent: missing required field "Engagement.opened"`)}
	}
	if _, ok := _c.mutation.Clicked(); !ok {
		return &ValidationError{Name: "clicked", err: errors.New(`ent: missing required field "Engagement.clicked"`)}
	}
	if _, ok := _c.mutation.Responded(); !ok {
		return &ValidationError{Name: "responded", err: errors.New(`ent: missing required field "Engagement.responded"`)}
	}
	if _, ok := _c.mutation.EngagementScore(); !ok {
		return &ValidationError{Name: "engagement_score", err: errors.New(`ent: missing required field "Engagement.engagement_score"`)}
	}
	if len(_c.mutation.ProspectIDs()) == 0 {
		return &ValidationError{Name: "prospect", err: errors.New(`ent: missing required edge "Engagement.prospect"`)}
	}
	return nil
}

func (_c *EngagementCreate) sqlSave(ctx context.Context) (*Engagement, error) {
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

func (_c *EngagementCreate) createSpec() (*Engagement, *sqlgraph.CreateSpec) {
	var (
		_node = &Engagement{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(engagement.Table, sqlgraph.NewFieldSpec(engagement.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(engagement.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(engagement.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.SentAt(); ok {
		_spec.SetField(engagement.FieldSentAt, field.TypeTime, value)
		_node.SentAt = value
	}
	if value, ok := _c.mutation.Opened(); ok {
		_spec.SetField(engagement.FieldOpened, field.TypeBool, value)
		_node.Opened = value
	}
	if value, ok := _c.mutation.Clicked(); ok {
		_spec.SetField(engagement.FieldClicked, field.TypeBool, value)
		_node.Clicked = value
	}
	if value, ok := _c.mutation.Responded(); ok {
		_spec.SetField(engagement.FieldResponded, field.TypeBool, value)
		_node.Responded = value
	}
	if value, ok := _c.mutation.EngagementScore(); ok {
		_spec.SetField(engagement.FieldEngagementScore, field.TypeFloat64, value)
		_node.EngagementScore = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(engagement.FieldNotes, field.TypeString, value)
		_node.Notes = value
	}
	if nodes := _c.mutation.ProspectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   engagement.ProspectTable,
			Columns: []string{engagement.ProspectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(prospect.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ProspectID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// EngagementCreateBulk is the builder for creating many Engagement entities in bulk.
type EngagementCreateBulk struct {
	config
	err      error
	builders []*EngagementCreate
}

// Save creates the Engagement entities in the database.
func (_c *EngagementCreateBulk) Save(ctx context.Context) ([]*Engagement, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Engagement, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EngagementMutation)
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
func (_c *EngagementCreateBulk) SaveX(ctx context.Context) []*Engagement {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EngagementCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EngagementCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
