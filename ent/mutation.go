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
	"github.com/jordanlanch/outreachhq/ent/engagement"
	"github.com/jordanlanch/outreachhq/ent/predicate"
	"github.com/jordanlanch/outreachhq/ent/prospect"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeEngagement = "Engagement"
	TypeProspect   = "Prospect"
)

// EngagementMutation represents an operation that mutates the Engagement nodes in the graph.
type EngagementMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	kind                *string
	content             *string
	sent_at             *time.Time
	opened              *bool
	clicked             *bool
	responded           *bool
	engagement_score    *float64
	addengagement_score *float64
	notes               *string
	clearedFields       map[string]struct{}
	prospect            *int
	clearedprospect     bool
	done                bool
	oldValue            func(context.Context) (*Engagement, error)
	predicates          []predicate.Engagement
}

var _ ent.Mutation = (*EngagementMutation)(nil)

// engagementOption allows management of the mutation configuration using functional options.
type engagementOption func(*EngagementMutation)

// newEngagementMutation creates new mutation for the Engagement entity.
func newEngagementMutation(c config, op Op, opts ...engagementOption) *EngagementMutation {
	m := &EngagementMutation{
		config:        c,
		op:            op,
		typ:           TypeEngagement,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEngagementID sets the ID field of the mutation.
func withEngagementID(id int) engagementOption {
	return func(m *EngagementMutation) {
		var (
			err   error
			once  sync.Once
			value *Engagement
		)
		m.oldValue = func(ctx context.Context) (*Engagement, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Engagement.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEngagement sets the old Engagement of the mutation.
func withEngagement(node *Engagement) engagementOption {
	return func(m *EngagementMutation) {
		m.oldValue = func(context.Context) (*Engagement, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EngagementMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EngagementMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EngagementMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EngagementMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Engagement.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProspectID sets the "prospect_id" field.
func (m *EngagementMutation) SetProspectID(i int) {
	m.prospect = &i
}

// ProspectID returns the value of the "prospect_id" field in the mutation.
func (m *EngagementMutation) ProspectID() (r int, exists bool) {
	v := m.prospect
	if v == nil {
		return
	}
	return *v, true
}

// OldProspectID returns the old "prospect_id" field's value of the Engagement entity.
// If the Engagement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementMutation) OldProspectID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProspectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProspectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProspectID: %w", err)
	}
	return oldValue.ProspectID, nil
}

// ResetProspectID resets all changes to the "prospect_id" field.
func (m *EngagementMutation) ResetProspectID() {
	m.prospect = nil
}

// SetKind sets the "kind" field.
func (m *EngagementMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *EngagementMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Engagement entity.
// If the Engagement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementMutation) OldKind(ctx context.Context) (v string, err error) {
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
func (m *EngagementMutation) ResetKind() {
	m.kind = nil
}

// SetContent sets the "content" field.
func (m *EngagementMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *EngagementMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Engagement entity.
// If the Engagement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *EngagementMutation) ResetContent() {
	m.content = nil
}

// SetSentAt sets the "sent_at" field.
func (m *EngagementMutation) SetSentAt(t time.Time) {
	m.sent_at = &t
}

// SentAt returns the value of the "sent_at" field in the mutation.
func (m *EngagementMutation) SentAt() (r time.Time, exists bool) {
	v := m.sent_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSentAt returns the old "sent_at" field's value of the Engagement entity.
// If the Engagement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementMutation) OldSentAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSentAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSentAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSentAt: %w", err)
	}
	return oldValue.SentAt, nil
}

// ResetSentAt resets all changes to the "sent_at" field.
func (m *EngagementMutation) ResetSentAt() {
	m.sent_at = nil
}

// SetOpened sets the "opened" field.
func (m *EngagementMutation) SetOpened(b bool) {
	m.opened = &b
}

// Opened returns the value of the "opened" field in the mutation.
func (m *EngagementMutation) Opened() (r bool, exists bool) {
	v := m.opened
	if v == nil {
		return
	}
	return *v, true
}

// OldOpened returns the old "opened" field's value of the Engagement entity.
// If the Engagement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementMutation) OldOpened(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOpened is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOpened requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOpened: %w", err)
	}
	return oldValue.Opened, nil
}

// ResetOpened resets all changes to the "opened" field.
func (m *EngagementMutation) ResetOpened() {
	m.opened = nil
}

// SetClicked sets the "clicked" field.
func (m *EngagementMutation) SetClicked(b bool) {
	m.clicked = &b
}

// Clicked returns the value of the "clicked" field in the mutation.
func (m *EngagementMutation) Clicked() (r bool, exists bool) {
	v := m.clicked
	if v == nil {
		return
	}
	return *v, true
}

// OldClicked returns the old "clicked" field's value of the Engagement entity.
// If the Engagement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementMutation) OldClicked(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClicked is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClicked requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClicked: %w", err)
	}
	return oldValue.Clicked, nil
}

// ResetClicked resets all changes to the "clicked" field.
func (m *EngagementMutation) ResetClicked() {
	m.clicked = nil
}

// SetResponded sets the "responded" field.
func (m *EngagementMutation) SetResponded(b bool) {
	m.responded = &b
}

// Responded returns the value of the "responded" field in the mutation.
func (m *EngagementMutation) Responded() (r bool, exists bool) {
	v := m.responded
	if v == nil {
		return
	}
	return *v, true
}

// OldResponded returns the old "responded" field's value of the Engagement entity.
// If the Engagement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementMutation) OldResponded(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponded is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponded requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponded: %w", err)
	}
	return oldValue.Responded, nil
}

// ResetResponded resets all changes to the "responded" field.
func (m *EngagementMutation) ResetResponded() {
	m.responded = nil
}

// SetEngagementScore sets the "engagement_score" field.
func (m *EngagementMutation) SetEngagementScore(f float64) {
	m.engagement_score = &f
	m.addengagement_score = nil
}

// EngagementScore returns the value of the "engagement_score" field in the mutation.
func (m *EngagementMutation) EngagementScore() (r float64, exists bool) {
	v := m.engagement_score
	if v == nil {
		return
	}
	return *v, true
}

// OldEngagementScore returns the old "engagement_score" field's value of the Engagement entity.
// If the Engagement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementMutation) OldEngagementScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEngagementScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEngagementScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEngagementScore: %w", err)
	}
	return oldValue.EngagementScore, nil
}

// AddEngagementScore adds f to the "engagement_score" field.
func (m *EngagementMutation) AddEngagementScore(f float64) {
	if m.addengagement_score != nil {
		*m.addengagement_score += f
	} else {
		m.addengagement_score = &f
	}
}

// AddedEngagementScore returns the value that was added to the "engagement_score" field in this mutation.
func (m *EngagementMutation) AddedEngagementScore() (r float64, exists bool) {
	v := m.addengagement_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetEngagementScore resets all changes to the "engagement_score" field.
func (m *EngagementMutation) ResetEngagementScore() {
	m.engagement_score = nil
	m.addengagement_score = nil
}

// SetNotes sets the "notes" field.
func (m *EngagementMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *EngagementMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the Engagement entity.
// If the Engagement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementMutation) OldNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *EngagementMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[engagement.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *EngagementMutation) NotesCleared() bool {
	_, ok := m.clearedFields[engagement.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *EngagementMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, engagement.FieldNotes)
}

// ClearProspect clears the "prospect" edge to the Prospect entity.
func (m *EngagementMutation) ClearProspect() {
	m.clearedprospect = true
	m.clearedFields[engagement.FieldProspectID] = struct{}{}
}

// ProspectCleared reports if the "prospect" edge to the Prospect entity was cleared.
func (m *EngagementMutation) ProspectCleared() bool {
	return m.clearedprospect
}

// ProspectIDs returns the "prospect" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProspectID instead. It exists only for internal usage by the builders.
func (m *EngagementMutation) ProspectIDs() (ids []int) {
	if id := m.prospect; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProspect resets all changes to the "prospect" edge.
func (m *EngagementMutation) ResetProspect() {
	m.prospect = nil
	m.clearedprospect = false
}

// Where appends a list predicates to the EngagementMutation builder.
func (m *EngagementMutation) Where(ps ...predicate.Engagement) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EngagementMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EngagementMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Engagement, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EngagementMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EngagementMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Engagement).
func (m *EngagementMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EngagementMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.prospect != nil {
		fields = append(fields, engagement.FieldProspectID)
	}
	if m.kind != nil {
		fields = append(fields, engagement.FieldKind)
	}
	if m.content != nil {
		fields = append(fields, engagement.FieldContent)
	}
	if m.sent_at != nil {
		fields = append(fields, engagement.FieldSentAt)
	}
	if m.opened != nil {
		fields = append(fields, engagement.FieldOpened)
	}
	if m.clicked != nil {
		fields = append(fields, engagement.FieldClicked)
	}
	if m.responded != nil {
		fields = append(fields, engagement.FieldResponded)
	}
	if m.engagement_score != nil {
		fields = append(fields, engagement.FieldEngagementScore)
	}
	if m.notes != nil {
		fields = append(fields, engagement.FieldNotes)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EngagementMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case engagement.FieldProspectID:
		return m.ProspectID()
	case engagement.FieldKind:
		return m.Kind()
	case engagement.FieldContent:
		return m.Content()
	case engagement.FieldSentAt:
		return m.SentAt()
	case engagement.FieldOpened:
		return m.Opened()
	case engagement.FieldClicked:
		return m.Clicked()
	case engagement.FieldResponded:
		return m.Responded()
	case engagement.FieldEngagementScore:
		return m.EngagementScore()
	case engagement.FieldNotes:
		return m.Notes()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EngagementMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case engagement.FieldProspectID:
		return m.OldProspectID(ctx)
	case engagement.FieldKind:
		return m.OldKind(ctx)
	case engagement.FieldContent:
		return m.OldContent(ctx)
	case engagement.FieldSentAt:
		return m.OldSentAt(ctx)
	case engagement.FieldOpened:
		return m.OldOpened(ctx)
	case engagement.FieldClicked:
		return m.OldClicked(ctx)
	case engagement.FieldResponded:
		return m.OldResponded(ctx)
	case engagement.FieldEngagementScore:
		return m.OldEngagementScore(ctx)
	case engagement.FieldNotes:
		return m.OldNotes(ctx)
	}
	return nil, fmt.Errorf("unknown Engagement field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EngagementMutation) SetField(name string, value ent.Value) error {
	switch name {
	case engagement.FieldProspectID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProspectID(v)
		return nil
	case engagement.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case engagement.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case engagement.FieldSentAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSentAt(v)
		return nil
	case engagement.FieldOpened:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOpened(v)
		return nil
	case engagement.FieldClicked:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClicked(v)
		return nil
	case engagement.FieldResponded:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponded(v)
		return nil
	case engagement.FieldEngagementScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEngagementScore(v)
		return nil
	case engagement.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	}
	return fmt.Errorf("unknown Engagement field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EngagementMutation) AddedFields() []string {
	var fields []string
	if m.addengagement_score != nil {
		fields = append(fields, engagement.FieldEngagementScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EngagementMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case engagement.FieldEngagementScore:
		return m.AddedEngagementScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EngagementMutation) AddField(name string, value ent.Value) error {
	switch name {
	case engagement.FieldEngagementScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEngagementScore(v)
		return nil
	}
	return fmt.Errorf("unknown Engagement numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EngagementMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(engagement.FieldNotes) {
		fields = append(fields, engagement.FieldNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EngagementMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EngagementMutation) ClearField(name string) error {
	switch name {
	case engagement.FieldNotes:
		m.ClearNotes()
		return nil
	}
	return fmt.Errorf("unknown Engagement nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EngagementMutation) ResetField(name string) error {
	switch name {
	case engagement.FieldProspectID:
		m.ResetProspectID()
		return nil
	case engagement.FieldKind:
		m.ResetKind()
		return nil
	case engagement.FieldContent:
		m.ResetContent()
		return nil
	case engagement.FieldSentAt:
		m.ResetSentAt()
		return nil
	case engagement.FieldOpened:
		m.ResetOpened()
		return nil
	case engagement.FieldClicked:
		m.ResetClicked()
		return nil
	case engagement.FieldResponded:
		m.ResetResponded()
		return nil
	case engagement.FieldEngagementScore:
		m.ResetEngagementScore()
		return nil
	case engagement.FieldNotes:
		m.ResetNotes()
		return nil
	}
	return fmt.Errorf("unknown Engagement field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EngagementMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.prospect != nil {
		edges = append(edges, engagement.EdgeProspect)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EngagementMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case engagement.EdgeProspect:
		if id := m.prospect; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EngagementMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EngagementMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EngagementMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedprospect {
		edges = append(edges, engagement.EdgeProspect)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EngagementMutation) EdgeCleared(name string) bool {
	switch name {
	case engagement.EdgeProspect:
		return m.clearedprospect
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EngagementMutation) ClearEdge(name string) error {
	switch name {
	case engagement.EdgeProspect:
		m.ClearProspect()
		return nil
	}
	return fmt.Errorf("unknown Engagement unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EngagementMutation) ResetEdge(name string) error {
	switch name {
	case engagement.EdgeProspect:
		m.ResetProspect()
		return nil
	}
	return fmt.Errorf("unknown Engagement edge %s", name)
}

// ProspectMutation represents an operation that mutates the Prospect nodes in the graph.
type ProspectMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	company_name       *string
	industry           *string
	website            *string
	contact_person     *string
	email              *string
	phone              *string
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	engagements        map[int]struct{}
	removedengagements map[int]struct{}
	clearedengagements bool
	done               bool
	oldValue           func(context.Context) (*Prospect, error)
	predicates         []predicate.Prospect
}

var _ ent.Mutation = (*ProspectMutation)(nil)

// prospectOption allows management of the mutation configuration using functional options.
type prospectOption func(*ProspectMutation)

// newProspectMutation creates new mutation for the Prospect entity.
func newProspectMutation(c config, op Op, opts ...prospectOption) *ProspectMutation {
	m := &ProspectMutation{
		config:        c,
		op:            op,
		typ:           TypeProspect,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProspectID sets the ID field of the mutation.
func withProspectID(id int) prospectOption {
	return func(m *ProspectMutation) {
		var (
			err   error
			once  sync.Once
			value *Prospect
		)
		m.oldValue = func(ctx context.Context) (*Prospect, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Prospect.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProspect sets the old Prospect of the mutation.
func withProspect(node *Prospect) prospectOption {
	return func(m *ProspectMutation) {
		m.oldValue = func(context.Context) (*Prospect, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProspectMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProspectMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProspectMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProspectMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Prospect.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCompanyName sets the "company_name" field.
func (m *ProspectMutation) SetCompanyName(s string) {
	m.company_name = &s
}

// CompanyName returns the value of the "company_name" field in the mutation.
func (m *ProspectMutation) CompanyName() (r string, exists bool) {
	v := m.company_name
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyName returns the old "company_name" field's value of the Prospect entity.
// If the Prospect object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProspectMutation) OldCompanyName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyName: %w", err)
	}
	return oldValue.CompanyName, nil
}

// ResetCompanyName resets all changes to the "company_name" field.
func (m *ProspectMutation) ResetCompanyName() {
	m.company_name = nil
}

// SetIndustry sets the "industry" field.
func (m *ProspectMutation) SetIndustry(s string) {
	m.industry = &s
}

// Industry returns the value of the "industry" field in the mutation.
func (m *ProspectMutation) Industry() (r string, exists bool) {
	v := m.industry
	if v == nil {
		return
	}
	return *v, true
}

// OldIndustry returns the old "industry" field's value of the Prospect entity.
// If the Prospect object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProspectMutation) OldIndustry(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIndustry is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIndustry requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIndustry: %w", err)
	}
	return oldValue.Industry, nil
}

// ResetIndustry resets all changes to the "industry" field.
func (m *ProspectMutation) ResetIndustry() {
	m.industry = nil
}

// SetWebsite sets the "website" field.
func (m *ProspectMutation) SetWebsite(s string) {
	m.website = &s
}

// Website returns the value of the "website" field in the mutation.
func (m *ProspectMutation) Website() (r string, exists bool) {
	v := m.website
	if v == nil {
		return
	}
	return *v, true
}

// OldWebsite returns the old "website" field's value of the Prospect entity.
// If the Prospect object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProspectMutation) OldWebsite(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWebsite is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWebsite requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWebsite: %w", err)
	}
	return oldValue.Website, nil
}

// ClearWebsite clears the value of the "website" field.
func (m *ProspectMutation) ClearWebsite() {
	m.website = nil
	m.clearedFields[prospect.FieldWebsite] = struct{}{}
}

// WebsiteCleared returns if the "website" field was cleared in this mutation.
func (m *ProspectMutation) WebsiteCleared() bool {
	_, ok := m.clearedFields[prospect.FieldWebsite]
	return ok
}

// ResetWebsite resets all changes to the "website" field.
func (m *ProspectMutation) ResetWebsite() {
	m.website = nil
	delete(m.clearedFields, prospect.FieldWebsite)
}

// SetContactPerson sets the "contact_person" field.
func (m *ProspectMutation) SetContactPerson(s string) {
	m.contact_person = &s
}

// ContactPerson returns the value of the "contact_person" field in the mutation.
func (m *ProspectMutation) ContactPerson() (r string, exists bool) {
	v := m.contact_person
	if v == nil {
		return
	}
	return *v, true
}

// OldContactPerson returns the old "contact_person" field's value of the Prospect entity.
// If the Prospect object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProspectMutation) OldContactPerson(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContactPerson is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContactPerson requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContactPerson: %w", err)
	}
	return oldValue.ContactPerson, nil
}

// ClearContactPerson clears the value of the "contact_person" field.
func (m *ProspectMutation) ClearContactPerson() {
	m.contact_person = nil
	m.clearedFields[prospect.FieldContactPerson] = struct{}{}
}

// ContactPersonCleared returns if the "contact_person" field was cleared in this mutation.
func (m *ProspectMutation) ContactPersonCleared() bool {
	_, ok := m.clearedFields[prospect.FieldContactPerson]
	return ok
}

// ResetContactPerson resets all changes to the "contact_person" field.
func (m *ProspectMutation) ResetContactPerson() {
	m.contact_person = nil
	delete(m.clearedFields, prospect.FieldContactPerson)
}

// SetEmail sets the "email" field.
func (m *ProspectMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *ProspectMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Prospect entity.
// If the Prospect object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProspectMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *ProspectMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[prospect.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *ProspectMutation) EmailCleared() bool {
	_, ok := m.clearedFields[prospect.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *ProspectMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, prospect.FieldEmail)
}

// SetPhone sets the "phone" field.
func (m *ProspectMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *ProspectMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the Prospect entity.
// If the Prospect object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProspectMutation) OldPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *ProspectMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[prospect.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *ProspectMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[prospect.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *ProspectMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, prospect.FieldPhone)
}

// SetCreatedAt sets the "created_at" field.
func (m *ProspectMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProspectMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Prospect entity.
// If the Prospect object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProspectMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProspectMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProspectMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProspectMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Prospect entity.
// If the Prospect object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProspectMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProspectMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddEngagementIDs adds the "engagements" edge to the Engagement entity by ids.
func (m *ProspectMutation) AddEngagementIDs(ids ...int) {
	if m.engagements == nil {
		m.engagements = make(map[int]struct{})
	}
	for i := range ids {
		m.engagements[ids[i]] = struct{}{}
	}
}

// ClearEngagements clears the "engagements" edge to the Engagement entity.
func (m *ProspectMutation) ClearEngagements() {
	m.clearedengagements = true
}

// EngagementsCleared reports if the "engagements" edge to the Engagement entity was cleared.
func (m *ProspectMutation) EngagementsCleared() bool {
	return m.clearedengagements
}

// RemoveEngagementIDs removes the "engagements" edge to the Engagement entity by IDs.
func (m *ProspectMutation) RemoveEngagementIDs(ids ...int) {
	if m.removedengagements == nil {
		m.removedengagements = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.engagements, ids[i])
		m.removedengagements[ids[i]] = struct{}{}
	}
}

// RemovedEngagements returns the removed IDs of the "engagements" edge to the Engagement entity.
func (m *ProspectMutation) RemovedEngagementsIDs() (ids []int) {
	for id := range m.removedengagements {
		ids = append(ids, id)
	}
	return
}

// EngagementsIDs returns the "engagements" edge IDs in the mutation.
func (m *ProspectMutation) EngagementsIDs() (ids []int) {
	for id := range m.engagements {
		ids = append(ids, id)
	}
	return
}

// ResetEngagements resets all changes to the "engagements" edge.
func (m *ProspectMutation) ResetEngagements() {
	m.engagements = nil
	m.clearedengagements = false
	m.removedengagements = nil
}

// Where appends a list predicates to the ProspectMutation builder.
func (m *ProspectMutation) Where(ps ...predicate.Prospect) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProspectMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProspectMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Prospect, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProspectMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProspectMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Prospect).
func (m *ProspectMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProspectMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.company_name != nil {
		fields = append(fields, prospect.FieldCompanyName)
	}
	if m.industry != nil {
		fields = append(fields, prospect.FieldIndustry)
	}
	if m.website != nil {
		fields = append(fields, prospect.FieldWebsite)
	}
	if m.contact_person != nil {
		fields = append(fields, prospect.FieldContactPerson)
	}
	if m.email != nil {
		fields = append(fields, prospect.FieldEmail)
	}
	if m.phone != nil {
		fields = append(fields, prospect.FieldPhone)
	}
	if m.created_at != nil {
		fields = append(fields, prospect.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, prospect.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProspectMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case prospect.FieldCompanyName:
		return m.CompanyName()
	case prospect.FieldIndustry:
		return m.Industry()
	case prospect.FieldWebsite:
		return m.Website()
	case prospect.FieldContactPerson:
		return m.ContactPerson()
	case prospect.FieldEmail:
		return m.Email()
	case prospect.FieldPhone:
		return m.Phone()
	case prospect.FieldCreatedAt:
		return m.CreatedAt()
	case prospect.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProspectMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case prospect.FieldCompanyName:
		return m.OldCompanyName(ctx)
	case prospect.FieldIndustry:
		return m.OldIndustry(ctx)
	case prospect.FieldWebsite:
		return m.OldWebsite(ctx)
	case prospect.FieldContactPerson:
		return m.OldContactPerson(ctx)
	case prospect.FieldEmail:
		return m.OldEmail(ctx)
	case prospect.FieldPhone:
		return m.OldPhone(ctx)
	case prospect.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case prospect.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Prospect field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProspectMutation) SetField(name string, value ent.Value) error {
	switch name {
	case prospect.FieldCompanyName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyName(v)
		return nil
	case prospect.FieldIndustry:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIndustry(v)
		return nil
	case prospect.FieldWebsite:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWebsite(v)
		return nil
	case prospect.FieldContactPerson:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContactPerson(v)
		return nil
	case prospect.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case prospect.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case prospect.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case prospect.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Prospect field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProspectMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProspectMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProspectMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Prospect numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProspectMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(prospect.FieldWebsite) {
		fields = append(fields, prospect.FieldWebsite)
	}
	if m.FieldCleared(prospect.FieldContactPerson) {
		fields = append(fields, prospect.FieldContactPerson)
	}
	if m.FieldCleared(prospect.FieldEmail) {
		fields = append(fields, prospect.FieldEmail)
	}
	if m.FieldCleared(prospect.FieldPhone) {
		fields = append(fields, prospect.FieldPhone)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProspectMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProspectMutation) ClearField(name string) error {
	switch name {
	case prospect.FieldWebsite:
		m.ClearWebsite()
		return nil
	case prospect.FieldContactPerson:
		m.ClearContactPerson()
		return nil
	case prospect.FieldEmail:
		m.ClearEmail()
		return nil
	case prospect.FieldPhone:
		m.ClearPhone()
		return nil
	}
	return fmt.Errorf("unknown Prospect nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProspectMutation) ResetField(name string) error {
	switch name {
	case prospect.FieldCompanyName:
		m.ResetCompanyName()
		return nil
	case prospect.FieldIndustry:
		m.ResetIndustry()
		return nil
	case prospect.FieldWebsite:
		m.ResetWebsite()
		return nil
	case prospect.FieldContactPerson:
		m.ResetContactPerson()
		return nil
	case prospect.FieldEmail:
		m.ResetEmail()
		return nil
	case prospect.FieldPhone:
		m.ResetPhone()
		return nil
	case prospect.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case prospect.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Prospect field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProspectMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.engagements != nil {
		edges = append(edges, prospect.EdgeEngagements)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProspectMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case prospect.EdgeEngagements:
		ids := make([]ent.Value, 0, len(m.engagements))
		for id := range m.engagements {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProspectMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedengagements != nil {
		edges = append(edges, prospect.EdgeEngagements)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProspectMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case prospect.EdgeEngagements:
		ids := make([]ent.Value, 0, len(m.removedengagements))
		for id := range m.removedengagements {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProspectMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedengagements {
		edges = append(edges, prospect.EdgeEngagements)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProspectMutation) EdgeCleared(name string) bool {
	switch name {
	case prospect.EdgeEngagements:
		return m.clearedengagements
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProspectMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Prospect unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProspectMutation) ResetEdge(name string) error {
	switch name {
	case prospect.EdgeEngagements:
		m.ResetEngagements()
		return nil
	}
	return fmt.Errorf("unknown Prospect edge %s", name)
}
