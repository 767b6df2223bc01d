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

// EngagementUpdate is the builder for updating Engagement entities.
type EngagementUpdate struct {
	config
	hooks    []Hook
	mutation *EngagementMutation
}

// Where appends a list predicates to the EngagementUpdate builder.
func (_u *EngagementUpdate) Where(ps ...predicate.Engagement) *EngagementUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProspectID sets the "prospect_id" field.
func (_u *EngagementUpdate) SetProspectID(v int) *EngagementUpdate {
	_u.mutation.SetProspectID(v)
	return _u
}

// SetNillableProspectID sets the "prospect_id" field if the given value is not nil.
func (_u *EngagementUpdate) SetNillableProspectID(v *int) *EngagementUpdate {
	if v != nil {
		_u.SetProspectID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *EngagementUpdate) SetKind(v string) *EngagementUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *EngagementUpdate) SetNillableKind(v *string) *EngagementUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *EngagementUpdate) SetContent(v string) *EngagementUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *EngagementUpdate) SetNillableContent(v *string) *EngagementUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetSentAt sets the "sent_at" field.
func (_u *EngagementUpdate) SetSentAt(v time.Time) *EngagementUpdate {
	_u.mutation.SetSentAt(v)
	return _u
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_u *EngagementUpdate) SetNillableSentAt(v *time.Time) *EngagementUpdate {
	if v != nil {
		_u.SetSentAt(*v)
	}
	return _u
}

// SetOpened sets the "opened" field.
func (_u *EngagementUpdate) SetOpened(v bool) *EngagementUpdate {
	_u.mutation.SetOpened(v)
	return _u
}

// SetNillableOpened sets the "opened" field if the given value is not nil.
func (_u *EngagementUpdate) SetNillableOpened(v *bool) *EngagementUpdate {
	if v != nil {
		_u.SetOpened(*v)
	}
	return _u
}

// SetClicked sets the "clicked" field.
func (_u *EngagementUpdate) SetClicked(v bool) *EngagementUpdate {
	_u.mutation.SetClicked(v)
	return _u
}

// SetNillableClicked sets the "clicked" field if the given value is not nil.
func (_u *EngagementUpdate) SetNillableClicked(v *bool) *EngagementUpdate {
	if v != nil {
		_u.SetClicked(*v)
	}
	return _u
}

// SetResponded sets the "responded" field.
func (_u *EngagementUpdate) SetResponded(v bool) *EngagementUpdate {
	_u.mutation.SetResponded(v)
	return _u
}

// SetNillableResponded sets the "responded" field if the given value is not nil.
func (_u *EngagementUpdate) SetNillableResponded(v *bool) *EngagementUpdate {
	if v != nil {
		_u.SetResponded(*v)
	}
	return _u
}

// SetEngagementScore sets the "engagement_score" field.
func (_u *EngagementUpdate) SetEngagementScore(v float64) *EngagementUpdate {
	_u.mutation.ResetEngagementScore()
	_u.mutation.SetEngagementScore(v)
	return _u
}

// SetNillableEngagementScore sets the "engagement_score" field if the given value is not nil.
func (_u *EngagementUpdate) SetNillableEngagementScore(v *float64) *EngagementUpdate {
	if v != nil {
		_u.SetEngagementScore(*v)
	}
	return _u
}

// AddEngagementScore adds value to the "engagement_score" field.
func (_u *EngagementUpdate) AddEngagementScore(v float64) *EngagementUpdate {
	_u.mutation.AddEngagementScore(v)
	return _u
}

// SetNotes sets the "notes" field.
func (_u *EngagementUpdate) SetNotes(v string) *EngagementUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *EngagementUpdate) SetNillableNotes(v *string) *EngagementUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *EngagementUpdate) ClearNotes() *EngagementUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetProspect sets the "prospect" edge to the Prospect entity.
func (_u *EngagementUpdate) SetProspect(v *Prospect) *EngagementUpdate {
	return _u.SetProspectID(v.ID)
}

// Mutation returns the EngagementMutation object of the builder.
func (_u *EngagementUpdate) Mutation() *EngagementMutation {
	return _u.mutation
}

// ClearProspect clears the "prospect" edge to the Prospect entity.
func (_u *EngagementUpdate) ClearProspect() *EngagementUpdate {
	_u.mutation.ClearProspect()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EngagementUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EngagementUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EngagementUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EngagementUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EngagementUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := engagement.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Engagement.kind": %w`, err)}
		}
	}
	if _u.mutation.ProspectCleared() && len(_u.mutation.ProspectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Engagement.prospect"`)
	}
	return nil
}

func (_u *EngagementUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(engagement.Table, engagement.Columns, sqlgraph.NewFieldSpec(engagement.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(engagement.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(engagement.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.SentAt(); ok {
		_spec.SetField(engagement.FieldSentAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Opened(); ok {
		_spec.SetField(engagement.FieldOpened, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Clicked(); ok {
		_spec.SetField(engagement.FieldClicked, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Responded(); ok {
		_spec.SetField(engagement.FieldResponded, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EngagementScore(); ok {
		_spec.SetField(engagement.FieldEngagementScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEngagementScore(); ok {
		_spec.AddField(engagement.FieldEngagementScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(engagement.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(engagement.FieldNotes, field.TypeString)
	}
	if _u.mutation.ProspectCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProspectIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{engagement.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EngagementUpdateOne is the builder for updating a single Engagement entity.
type EngagementUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EngagementMutation
}

// SetProspectID sets the "prospect_id" field.
func (_u *EngagementUpdateOne) SetProspectID(v int) *EngagementUpdateOne {
	_u.mutation.SetProspectID(v)
	return _u
}

// SetNillableProspectID sets the "prospect_id" field if the given value is not nil.
func (_u *EngagementUpdateOne) SetNillableProspectID(v *int) *EngagementUpdateOne {
	if v != nil {
		_u.SetProspectID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *EngagementUpdateOne) SetKind(v string) *EngagementUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *EngagementUpdateOne) SetNillableKind(v *string) *EngagementUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *EngagementUpdateOne) SetContent(v string) *EngagementUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *EngagementUpdateOne) SetNillableContent(v *string) *EngagementUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetSentAt sets the "sent_at" field.
func (_u *EngagementUpdateOne) SetSentAt(v time.Time) *EngagementUpdateOne {
	_u.mutation.SetSentAt(v)
	return _u
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_u *EngagementUpdateOne) SetNillableSentAt(v *time.Time) *EngagementUpdateOne {
	if v != nil {
		_u.SetSentAt(*v)
	}
	return _u
}

// SetOpened sets the "opened" field.
func (_u *EngagementUpdateOne) SetOpened(v bool) *EngagementUpdateOne {
	_u.mutation.SetOpened(v)
	return _u
}

// SetNillableOpened sets the "opened" field if the given value is not nil.
func (_u *EngagementUpdateOne) SetNillableOpened(v *bool) *EngagementUpdateOne {
	if v != nil {
		_u.SetOpened(*v)
	}
	return _u
}

// SetClicked sets the "clicked" field.
func (_u *EngagementUpdateOne) SetClicked(v bool) *EngagementUpdateOne {
	_u.mutation.SetClicked(v)
	return _u
}

// SetNillableClicked sets the "clicked" field if the given value is not nil.
func (_u *EngagementUpdateOne) SetNillableClicked(v *bool) *EngagementUpdateOne {
	if v != nil {
		_u.SetClicked(*v)
	}
	return _u
}

// SetResponded sets the "responded" field.
func (_u *EngagementUpdateOne) SetResponded(v bool) *EngagementUpdateOne {
	_u.mutation.SetResponded(v)
	return _u
}

// SetNillableResponded sets the "responded" field if the given value is not nil.
func (_u *EngagementUpdateOne) SetNillableResponded(v *bool) *EngagementUpdateOne {
	if v != nil {
		_u.SetResponded(*v)
	}
	return _u
}

// SetEngagementScore sets the "engagement_score" field.
func (_u *EngagementUpdateOne) SetEngagementScore(v float64) *EngagementUpdateOne {
	_u.mutation.ResetEngagementScore()
	_u.mutation.SetEngagementScore(v)
	return _u
}

// SetNillableEngagementScore sets the "engagement_score" field if the given value is not nil.
func (_u *EngagementUpdateOne) SetNillableEngagementScore(v *float64) *EngagementUpdateOne {
	if v != nil {
		_u.SetEngagementScore(*v)
	}
	return _u
}

// AddEngagementScore adds value to the "engagement_score" field.
func (_u *EngagementUpdateOne) AddEngagementScore(v float64) *EngagementUpdateOne {
	_u.mutation.AddEngagementScore(v)
	return _u
}

// SetNotes sets the "notes" field.
func (_u *EngagementUpdateOne) SetNotes(v string) *EngagementUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *EngagementUpdateOne) SetNillableNotes(v *string) *EngagementUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *EngagementUpdateOne) ClearNotes() *EngagementUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetProspect sets the "prospect" edge to the Prospect entity.
func (_u *EngagementUpdateOne) SetProspect(v *Prospect) *EngagementUpdateOne {
	return _u.SetProspectID(v.ID)
}

// Mutation returns the EngagementMutation object of the builder.
func (_u *EngagementUpdateOne) Mutation() *EngagementMutation {
	return _u.mutation
}

// ClearProspect clears the "prospect" edge to the Prospect entity.
func (_u *EngagementUpdateOne) ClearProspect() *EngagementUpdateOne {
	_u.mutation.ClearProspect()
	return _u
}

// Where appends a list predicates to the EngagementUpdate builder.
func (_u *EngagementUpdateOne) Where(ps ...predicate.Engagement) *EngagementUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EngagementUpdateOne) Select(field string, fields ...string) *EngagementUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Engagement entity.
func (_u *EngagementUpdateOne) Save(ctx context.Context) (*Engagement, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EngagementUpdateOne) SaveX(ctx context.Context) *Engagement {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EngagementUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EngagementUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EngagementUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := engagement.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Engagement.kind": %w`, err)}
		}
	}
	if _u.mutation.ProspectCleared() && len(_u.mutation.ProspectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Engagement.prospect"`)
	}
	return nil
}

func (_u *EngagementUpdateOne) sqlSave(ctx context.Context) (_node *Engagement, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(engagement.Table, engagement.Columns, sqlgraph.NewFieldSpec(engagement.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Engagement.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, engagement.FieldID)
		for _, f := range fields {
			if !engagement.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != engagement.FieldID {
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
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(engagement.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(engagement.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.SentAt(); ok {
		_spec.SetField(engagement.FieldSentAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Opened(); ok {
		_spec.SetField(engagement.FieldOpened, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Clicked(); ok {
		_spec.SetField(engagement.FieldClicked, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Responded(); ok {
		_spec.SetField(engagement.FieldResponded, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EngagementScore(); ok {
		_spec.SetField(engagement.FieldEngagementScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEngagementScore(); ok {
		_spec.AddField(engagement.FieldEngagementScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(engagement.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(engagement.FieldNotes, field.TypeString)
	}
	if _u.mutation.ProspectCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProspectIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Engagement{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{engagement.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
