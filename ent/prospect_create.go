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

// ProspectCreate is the builder for creating a Prospect entity.
type ProspectCreate struct {
	config
	mutation *ProspectMutation
	hooks    []Hook
}

// SetCompanyName sets the "company_name" field.
func (_c *ProspectCreate) SetCompanyName(v string) *ProspectCreate {
	_c.mutation.SetCompanyName(v)
	return _c
}

// SetIndustry sets the "industry" field.
func (_c *ProspectCreate) SetIndustry(v string) *ProspectCreate {
	_c.mutation.SetIndustry(v)
	return _c
}

// SetWebsite sets the "website" field.
func (_c *ProspectCreate) SetWebsite(v string) *ProspectCreate {
	_c.mutation.SetWebsite(v)
	return _c
}

// SetNillableWebsite sets the "website" field if the given value is not nil.
func (_c *ProspectCreate) SetNillableWebsite(v *string) *ProspectCreate {
	if v != nil {
		_c.SetWebsite(*v)
	}
	return _c
}

// SetContactPerson sets the "contact_person" field.
func (_c *ProspectCreate) SetContactPerson(v string) *ProspectCreate {
	_c.mutation.SetContactPerson(v)
	return _c
}

// SetNillableContactPerson sets the "contact_person" field if the given value is not nil.
func (_c *ProspectCreate) SetNillableContactPerson(v *string) *ProspectCreate {
	if v != nil {
		_c.SetContactPerson(*v)
	}
	return _c
}

// SetEmail sets the "email" field.
func (_c *ProspectCreate) SetEmail(v string) *ProspectCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_c *ProspectCreate) SetNillableEmail(v *string) *ProspectCreate {
	if v != nil {
		_c.SetEmail(*v)
	}
	return _c
}

// SetPhone sets the "phone" field.
func (_c *ProspectCreate) SetPhone(v string) *ProspectCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *ProspectCreate) SetNillablePhone(v *string) *ProspectCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProspectCreate) SetCreatedAt(v time.Time) *ProspectCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProspectCreate) SetNillableCreatedAt(v *time.Time) *ProspectCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProspectCreate) SetUpdatedAt(v time.Time) *ProspectCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProspectCreate) SetNillableUpdatedAt(v *time.Time) *ProspectCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// AddEngagementIDs adds the "engagements" edge to the Engagement entity by IDs.
func (_c *ProspectCreate) AddEngagementIDs(ids ...int) *ProspectCreate {
	_c.mutation.AddEngagementIDs(ids...)
	return _c
}

// AddEngagements adds the "engagements" edges to the Engagement entity.
func (_c *ProspectCreate) AddEngagements(v ...*Engagement) *ProspectCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEngagementIDs(ids...)
}

// Mutation returns the ProspectMutation object of the builder.
func (_c *ProspectCreate) Mutation() *ProspectMutation {
	return _c.mutation
}

// Save creates the Prospect in the database.
func (_c *ProspectCreate) Save(ctx context.Context) (*Prospect, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProspectCreate) SaveX(ctx context.Context) *Prospect {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProspectCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProspectCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProspectCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := prospect.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := prospect.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProspectCreate) check() error {
	if _, ok := _c.mutation.CompanyName(); !ok {
		return &ValidationError{Name: "company_name", err: errors.New(`ent: missing required field "Prospect.company_name"`)}
	}
	if v, ok := _c.mutation.CompanyName(); ok {
		if err := prospect.CompanyNameValidator(v); err != nil {
			return &ValidationError{Name: "company_name", err: fmt.Errorf(`ent: validator failed for field "Prospect.company_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Industry(); !ok {
		return &ValidationError{Name: "industry", err: errors.New(`ent: missing required field "Prospect.industry"`)}
	}
	if v, ok := _c.mutation.Industry(); ok {
		if err := prospect.IndustryValidator(v); err != nil {
			return &ValidationError{Name: "industry", err: fmt.Errorf(`ent: validator failed for field "Prospect.industry": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Prospect.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Prospect.updated_at"`)}
	}
	return nil
}

func (_c *ProspectCreate) sqlSave(ctx context.Context) (*Prospect, error) {
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

func (_c *ProspectCreate) createSpec() (*Prospect, *sqlgraph.CreateSpec) {
	var (
		_node = &Prospect{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(prospect.Table, sqlgraph.NewFieldSpec(prospect.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CompanyName(); ok {
		_spec.SetField(prospect.FieldCompanyName, field.TypeString, value)
		_node.CompanyName = value
	}
	if value, ok := _c.mutation.Industry(); ok {
		_spec.SetField(prospect.FieldIndustry, field.TypeString, value)
		_node.Industry = value
	}
	if value, ok := _c.mutation.Website(); ok {
		_spec.SetField(prospect.FieldWebsite, field.TypeString, value)
		_node.Website = value
	}
	if value, ok := _c.mutation.ContactPerson(); ok {
		_spec.SetField(prospect.FieldContactPerson, field.TypeString, value)
		_node.ContactPerson = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(prospect.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(prospect.FieldPhone, field.TypeString, value)
		_node.Phone = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(prospect.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(prospect.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.EngagementsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   prospect.EngagementsTable,
			Columns: []string{prospect.EngagementsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(engagement.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ProspectCreateBulk is the builder for creating many Prospect entities in bulk.
type ProspectCreateBulk struct {
	config
	err      error
	builders []*ProspectCreate
}

// Save creates the Prospect entities in the database.
func (_c *ProspectCreateBulk) Save(ctx context.Context) ([]*Prospect, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Prospect, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProspectMutation)
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
func (_c *ProspectCreateBulk) SaveX(ctx context.Context) []*Prospect {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProspectCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProspectCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
