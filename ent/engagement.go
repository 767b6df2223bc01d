// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/jordanlanch/outreachhq/ent/engagement"
	"github.com/jordanlanch/outreachhq/ent/prospect"
)

// Engagement is the model entity for the Engagement schema.
type Engagement struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Owning prospect
	ProspectID int `json:"prospect_id,omitempty"`
	// Engagement kind: email, call, meeting, etc.
	Kind string `json:"kind,omitempty"`
	// Email body or serialized call script
	Content string `json:"content,omitempty"`
	// When the outreach was sent/initiated
	SentAt time.Time `json:"sent_at,omitempty"`
	// Email opened (calls are always opened)
	Opened bool `json:"opened,omitempty"`
	// Email link clicked
	Clicked bool `json:"clicked,omitempty"`
	// Prospect replied or expressed interest
	Responded bool `json:"responded,omitempty"`
	// Cumulative engagement score, increment-only
	EngagementScore float64 `json:"engagement_score,omitempty"`
	// Subject line, script title, call outcome notes
	Notes string `json:"notes,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EngagementQuery when eager-loading is set.
	Edges        EngagementEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EngagementEdges holds the relations/edges for other nodes in the graph.
type EngagementEdges struct {
	// Prospect holds the value of the prospect edge.
	Prospect *Prospect `json:"prospect,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ProspectOrErr returns the Prospect value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EngagementEdges) ProspectOrErr() (*Prospect, error) {
	if e.Prospect != nil {
		return e.Prospect, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: prospect.Label}
	}
	return nil, &NotLoadedError{edge: "prospect"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Engagement) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case engagement.FieldOpened, engagement.FieldClicked, engagement.FieldResponded:
			values[i] = new(sql.NullBool)
		case engagement.FieldEngagementScore:
			values[i] = new(sql.NullFloat64)
		case engagement.FieldID, engagement.FieldProspectID:
			values[i] = new(sql.NullInt64)
		case engagement.FieldKind, engagement.FieldContent, engagement.FieldNotes:
			values[i] = new(sql.NullString)
		case engagement.FieldSentAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Engagement fields.
func (_m *Engagement) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case engagement.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case engagement.FieldProspectID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field prospect_id", values[i])
			} else if value.Valid {
				_m.ProspectID = int(value.Int64)
			}
		case engagement.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = value.String
			}
		case engagement.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case engagement.FieldSentAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field sent_at", values[i])
			} else if value.Valid {
				_m.SentAt = value.Time
			}
		case engagement.FieldOpened:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field opened", values[i])
			} else if value.Valid {
				_m.Opened = value.Bool
			}
		case engagement.FieldClicked:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field clicked", values[i])
			} else if value.Valid {
				_m.Clicked = value.Bool
			}
		case engagement.FieldResponded:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field responded", values[i])
			} else if value.Valid {
				_m.Responded = value.Bool
			}
		case engagement.FieldEngagementScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field engagement_score", values[i])
			} else if value.Valid {
				_m.EngagementScore = value.Float64
			}
		case engagement.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Engagement.
// This includes values selected through modifiers, order, etc.
func (_m *Engagement) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProspect queries the "prospect" edge of the Engagement entity.
func (_m *Engagement) QueryProspect() *ProspectQuery {
	return NewEngagementClient(_m.config).QueryProspect(_m)
}

// Update returns a builder for updating this Engagement.
// Note that you need to call Engagement.Unwrap() before calling this method if this Engagement
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Engagement) Update() *EngagementUpdateOne {
	return NewEngagementClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Engagement entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Engagement) Unwrap() *Engagement {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Engagement is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Engagement) String() string {
	var builder strings.Builder
	builder.WriteString("Engagement(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("prospect_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProspectID))
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(_m.Kind)
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	builder.WriteString("sent_at=")
	builder.WriteString(_m.SentAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("opened=")
	builder.WriteString(fmt.Sprintf("%v", _m.Opened))
	builder.WriteString(", ")
	builder.WriteString("clicked=")
	builder.WriteString(fmt.Sprintf("%v", _m.Clicked))
	builder.WriteString(", ")
	builder.WriteString("responded=")
	builder.WriteString(fmt.Sprintf("%v", _m.Responded))
	builder.WriteString(", ")
	builder.WriteString("engagement_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.EngagementScore))
	builder.WriteString(", ")
	builder.WriteString("notes=")
	builder.WriteString(_m.Notes)
	builder.WriteByte(')')
	return builder.String()
}

// Engagements is a parsable slice of Engagement.
type Engagements []*Engagement
