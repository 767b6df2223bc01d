// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jordanlanch/outreachhq/ent/engagement"
	"github.com/jordanlanch/outreachhq/ent/predicate"
	"github.com/jordanlanch/outreachhq/ent/prospect"
)

// ProspectUpdate is the builder for updating Prospect entities.
type ProspectUpdate struct {
	config
	hooks    []Hook
	mutation *ProspectMutation
}

// Where appends a list predicates to the ProspectUpdate builder.
func (_u *ProspectUpdate) Where(ps ...predicate.Prospect) *ProspectUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCompanyName sets the "company_name" field.
func (_u *ProspectUpdate) SetCompanyName(v string) *ProspectUpdate {
	_u.mutation.SetCompanyName(v)
	return _u
}

// SetNillableCompanyName sets the "company_name" field if the given value is not nil.
func (_u *ProspectUpdate) SetNillableCompanyName(v *string) *ProspectUpdate {
	if v != nil {
		_u.SetCompanyName(*v)
	}
	return _u
}

// SetIndustry sets the "industry" field.
func (_u *ProspectUpdate) SetIndustry(v string) *ProspectUpdate {
	_u.mutation.SetIndustry(v)
	return _u
}

// SetNillableIndustry sets the "industry" field if the given value is not nil.
func (_u *ProspectUpdate) SetNillableIndustry(v *string) *ProspectUpdate {
	if v != nil {
		_u.SetIndustry(*v)
	}
	return _u
}

// SetWebsite sets the "website" field.
func (_u *ProspectUpdate) SetWebsite(v string) *ProspectUpdate {
	_u.mutation.SetWebsite(v)
	return _u
}

// SetNillableWebsite sets the "website" field if the given value is not nil.
func (_u *ProspectUpdate) SetNillableWebsite(v *string) *ProspectUpdate {
	if v != nil {
		_u.SetWebsite(*v)
	}
	return _u
}

// ClearWebsite clears the value of the "website" field.
func (_u *ProspectUpdate) ClearWebsite() *ProspectUpdate {
	_u.mutation.ClearWebsite()
	return _u
}

// SetContactPerson sets the "contact_person" field.
func (_u *ProspectUpdate) SetContactPerson(v string) *ProspectUpdate {
	_u.mutation.SetContactPerson(v)
	return _u
}

// SetNillableContactPerson sets the "contact_person" field if the given value is not nil.
func (_u *ProspectUpdate) SetNillableContactPerson(v *string) *ProspectUpdate {
	if v != nil {
		_u.SetContactPerson(*v)
	}
	return _u
}

// ClearContactPerson clears the value of the "contact_person" field.
func (_u *ProspectUpdate) ClearContactPerson() *ProspectUpdate {
	_u.mutation.ClearContactPerson()
	return _u
}

// SetEmail sets the "email" field.
func (_u *ProspectUpdate) SetEmail(v string) *ProspectUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ProspectUpdate) SetNillableEmail(v *string) *ProspectUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *ProspectUpdate) ClearEmail() *ProspectUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *ProspectUpdate) SetPhone(v string) *ProspectUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *ProspectUpdate) SetNillablePhone(v *string) *ProspectUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *ProspectUpdate) ClearPhone() *ProspectUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProspectUpdate) SetUpdatedAt(v time.Time) *ProspectUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddEngagementIDs adds the "engagements" edge to the Engagement entity by IDs.
func (_u *ProspectUpdate) AddEngagementIDs(ids ...int) *ProspectUpdate {
	_u.mutation.AddEngagementIDs(ids...)
	return _u
}

// AddEngagements adds the "engagements" edges to the Engagement entity.
func (_u *ProspectUpdate) AddEngagements(v ...*Engagement) *ProspectUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEngagementIDs(ids...)
}

// Mutation returns the ProspectMutation object of the builder.
func (_u *ProspectUpdate) Mutation() *ProspectMutation {
	return _u.mutation
}

// ClearEngagements clears all "engagements" edges to the Engagement entity.
func (_u *ProspectUpdate) ClearEngagements() *ProspectUpdate {
	_u.mutation.ClearEngagements()
	return _u
}

// RemoveEngagementIDs removes the "engagements" edge to Engagement entities by IDs.
func (_u *ProspectUpdate) RemoveEngagementIDs(ids ...int) *ProspectUpdate {
	_u.mutation.RemoveEngagementIDs(ids...)
	return _u
}

// RemoveEngagements removes "engagements" edges to Engagement entities.
func (_u *ProspectUpdate) RemoveEngagements(v ...*Engagement) *ProspectUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEngagementIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProspectUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProspectUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProspectUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProspectUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProspectUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := prospect.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProspectUpdate) check() error {
	if v, ok := _u.mutation.CompanyName(); ok {
		if err := prospect.CompanyNameValidator(v); err != nil {
			return &ValidationError{Name: "company_name", err: fmt.Errorf(`ent: validator failed for field "Prospect.company_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Industry(); ok {
		if err := prospect.IndustryValidator(v); err != nil {
			return &ValidationError{Name: "industry", err: fmt.Errorf(`ent: validator failed for field "Prospect.industry": %w`, err)}
		}
	}
	return nil
}

func (_u *ProspectUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(prospect.Table, prospect.Columns, sqlgraph.NewFieldSpec(prospect.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CompanyName(); ok {
		_spec.SetField(prospect.FieldCompanyName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Industry(); ok {
		_spec.SetField(prospect.FieldIndustry, field.TypeString, value)
	}
	if value, ok := _u.mutation.Website(); ok {
		_spec.SetField(prospect.FieldWebsite, field.TypeString, value)
	}
	if _u.mutation.WebsiteCleared() {
		_spec.ClearField(prospect.FieldWebsite, field.TypeString)
	}
	if value, ok := _u.mutation.ContactPerson(); ok {
		_spec.SetField(prospect.FieldContactPerson, field.TypeString, value)
	}
	if _u.mutation.ContactPersonCleared() {
		_spec.ClearField(prospect.FieldContactPerson, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(prospect.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(prospect.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(prospect.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(prospect.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(prospect.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.EngagementsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEngagementsIDs(); len(nodes) > 0 && !_u.mutation.EngagementsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EngagementsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{prospect.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProspectUpdateOne is the builder for updating a single Prospect entity.
type ProspectUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProspectMutation
}

// SetCompanyName sets the "company_name" field.
func (_u *ProspectUpdateOne) SetCompanyName(v string) *ProspectUpdateOne {
	_u.mutation.SetCompanyName(v)
	return _u
}

// SetNillableCompanyName sets the "company_name" field if the given value is not nil.
func (_u *ProspectUpdateOne) SetNillableCompanyName(v *string) *ProspectUpdateOne {
	if v != nil {
		_u.SetCompanyName(*v)
	}
	return _u
}

// SetIndustry sets the "industry" field.
func (_u *ProspectUpdateOne) SetIndustry(v string) *ProspectUpdateOne {
	_u.mutation.SetIndustry(v)
	return _u
}

// SetNillableIndustry sets the "industry" field if the given value is not nil.
func (_u *ProspectUpdateOne) SetNillableIndustry(v *string) *ProspectUpdateOne {
	if v != nil {
		_u.SetIndustry(*v)
	}
	return _u
}

// SetWebsite sets the "website" field.
func (_u *ProspectUpdateOne) SetWebsite(v string) *ProspectUpdateOne {
	_u.mutation.SetWebsite(v)
	return _u
}

// SetNillableWebsite sets the "website" field if the given value is not nil.
func (_u *ProspectUpdateOne) SetNillableWebsite(v *string) *ProspectUpdateOne {
	if v != nil {
		_u.SetWebsite(*v)
	}
	return _u
}

// ClearWebsite clears the value of the "website" field.
func (_u *ProspectUpdateOne) ClearWebsite() *ProspectUpdateOne {
	_u.mutation.ClearWebsite()
	return _u
}

// SetContactPerson sets the "contact_person" field.
func (_u *ProspectUpdateOne) SetContactPerson(v string) *ProspectUpdateOne {
	_u.mutation.SetContactPerson(v)
	return _u
}

// SetNillableContactPerson sets the "contact_person" field if the given value is not nil.
func (_u *ProspectUpdateOne) SetNillableContactPerson(v *string) *ProspectUpdateOne {
	if v != nil {
		_u.SetContactPerson(*v)
	}
	return _u
}

// ClearContactPerson clears the value of the "contact_person" field.
func (_u *ProspectUpdateOne) ClearContactPerson() *ProspectUpdateOne {
	_u.mutation.ClearContactPerson()
	return _u
}

// SetEmail sets the "email" field.
func (_u *ProspectUpdateOne) SetEmail(v string) *ProspectUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ProspectUpdateOne) SetNillableEmail(v *string) *ProspectUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *ProspectUpdateOne) ClearEmail() *ProspectUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *ProspectUpdateOne) SetPhone(v string) *ProspectUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *ProspectUpdateOne) SetNillablePhone(v *string) *ProspectUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *ProspectUpdateOne) ClearPhone() *ProspectUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProspectUpdateOne) SetUpdatedAt(v time.Time) *ProspectUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddEngagementIDs adds the "engagements" edge to the Engagement entity by IDs.
func (_u *ProspectUpdateOne) AddEngagementIDs(ids ...int) *ProspectUpdateOne {
	_u.mutation.AddEngagementIDs(ids...)
	return _u
}

// AddEngagements adds the "engagements" edges to the Engagement entity.
func (_u *ProspectUpdateOne) AddEngagements(v ...*Engagement) *ProspectUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEngagementIDs(ids...)
}

// Mutation returns the ProspectMutation object of the builder.
func (_u *ProspectUpdateOne) Mutation() *ProspectMutation {
	return _u.mutation
}

// ClearEngagements clears all "engagements" edges to the Engagement entity.
func (_u *ProspectUpdateOne) ClearEngagements() *ProspectUpdateOne {
	_u.mutation.ClearEngagements()
	return _u
}

// RemoveEngagementIDs removes the "engagements" edge to Engagement entities by IDs.
func (_u *ProspectUpdateOne) RemoveEngagementIDs(ids ...int) *ProspectUpdateOne {
	_u.mutation.RemoveEngagementIDs(ids...)
	return _u
}

// RemoveEngagements removes "engagements" edges to Engagement entities.
func (_u *ProspectUpdateOne) RemoveEngagements(v ...*Engagement) *ProspectUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEngagementIDs(ids...)
}

// Where appends a list predicates to the ProspectUpdate builder.
func (_u *ProspectUpdateOne) Where(ps ...predicate.Prospect) *ProspectUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProspectUpdateOne) Select(field string, fields ...string) *ProspectUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Prospect entity.
func (_u *ProspectUpdateOne) Save(ctx context.Context) (*Prospect, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProspectUpdateOne) SaveX(ctx context.Context) *Prospect {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProspectUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProspectUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProspectUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := prospect.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProspectUpdateOne) check() error {
	if v, ok := _u.mutation.CompanyName(); ok {
		if err := prospect.CompanyNameValidator(v); err != nil {
			return &ValidationError{Name: "company_name", err: fmt.Errorf(`ent: validator failed for field "Prospect.company_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Industry(); ok {
		if err := prospect.IndustryValidator(v); err != nil {
			return &ValidationError{Name: "industry", err: fmt.Errorf(`ent: validator failed for field "Prospect.industry": %w`, err)}
		}
	}
	return nil
}

func (_u *ProspectUpdateOne) sqlSave(ctx context.Context) (_node *Prospect, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(prospect.Table, prospect.Columns, sqlgraph.NewFieldSpec(prospect.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Prospect.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, prospect.FieldID)
		for _, f := range fields {
			if !prospect.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != prospect.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CompanyName(); ok {
		_spec.SetField(prospect.FieldCompanyName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Industry(); ok {
		_spec.SetField(prospect.FieldIndustry, field.TypeString, value)
	}
	if value, ok := _u.mutation.Website(); ok {
		_spec.SetField(prospect.FieldWebsite, field.TypeString, value)
	}
	if _u.mutation.WebsiteCleared() {
		_spec.ClearField(prospect.FieldWebsite, field.TypeString)
	}
	if value, ok := _u.mutation.ContactPerson(); ok {
		_spec.SetField(prospect.FieldContactPerson, field.TypeString, value)
	}
	if _u.mutation.ContactPersonCleared() {
		_spec.ClearField(prospect.FieldContactPerson, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(prospect.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(prospect.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(prospect.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(prospect.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(prospect.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.EngagementsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEngagementsIDs(); len(nodes) > 0 && !_u.mutation.EngagementsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EngagementsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Prospect{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{prospect.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
