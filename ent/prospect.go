// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/jordanlanch/outreachhq/ent/prospect"
)

// Prospect is the model entity for the Prospect schema.
type Prospect struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Company name, unique across all prospects
	CompanyName string `json:"company_name,omitempty"`
	// Free-text industry label (e.g. technology, healthcare)
	Industry string `json:"industry,omitempty"`
	// Website URL
	Website string `json:"website,omitempty"`
	// Primary contact name
	ContactPerson string `json:"contact_person,omitempty"`
	// Contact email address
	Email string `json:"email,omitempty"`
	// Contact phone number
	Phone string `json:"phone,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ProspectQuery when eager-loading is set.
	Edges        ProspectEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ProspectEdges holds the relations/edges for other nodes in the graph.
type ProspectEdges struct {
	// Outreach events recorded for this prospect
	Engagements []*Engagement `json:"engagements,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// EngagementsOrErr returns the Engagements value or an error if the edge
// was not loaded in eager-loading.
func (e ProspectEdges) EngagementsOrErr() ([]*Engagement, error) {
	if e.loadedTypes[0] {
		return e.Engagements, nil
	}
	return nil, &NotLoadedError{edge: "engagements"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Prospect) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case prospect.FieldID:
			values[i] = new(sql.NullInt64)
		case prospect.FieldCompanyName, prospect.FieldIndustry, prospect.FieldWebsite, prospect.FieldContactPerson, prospect.FieldEmail, prospect.FieldPhone:
			values[i] = new(sql.NullString)
		case prospect.FieldCreatedAt, prospect.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Prospect fields.
func (_m *Prospect) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case prospect.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case prospect.FieldCompanyName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field company_name", values[i])
			} else if value.Valid {
				_m.CompanyName = value.String
			}
		case prospect.FieldIndustry:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field industry", values[i])
			} else if value.Valid {
				_m.Industry = value.String
			}
		case prospect.FieldWebsite:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field website", values[i])
			} else if value.Valid {
				_m.Website = value.String
			}
		case prospect.FieldContactPerson:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field contact_person", values[i])
			} else if value.Valid {
				_m.ContactPerson = value.String
			}
		case prospect.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case prospect.FieldPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phone", values[i])
			} else if value.Valid {
				_m.Phone = value.String
			}
		case prospect.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case prospect.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Prospect.
// This includes values selected through modifiers, order, etc.
func (_m *Prospect) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryEngagements queries the "engagements" edge of the Prospect entity.
func (_m *Prospect) QueryEngagements() *EngagementQuery {
	return NewProspectClient(_m.config).QueryEngagements(_m)
}

// Update returns a builder for updating this Prospect.
// Note that you need to call Prospect.Unwrap() before calling this method if this Prospect
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Prospect) Update() *ProspectUpdateOne {
	return NewProspectClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Prospect entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Prospect) Unwrap() *Prospect {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Prospect is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Prospect) String() string {
	var builder strings.Builder
	builder.WriteString("Prospect(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("company_name=")
	builder.WriteString(_m.CompanyName)
	builder.WriteString(", ")
	builder.WriteString("industry=")
	builder.WriteString(_m.Industry)
	builder.WriteString(", ")
	builder.WriteString("website=")
	builder.WriteString(_m.Website)
	builder.WriteString(", ")
	builder.WriteString("contact_person=")
	builder.WriteString(_m.ContactPerson)
	builder.WriteString(", ")
	builder.WriteString("email=")
	builder.WriteString(_m.Email)
	builder.WriteString(", ")
	builder.WriteString("phone=")
	builder.WriteString(_m.Phone)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Prospects is a parsable slice of Prospect.
type Prospects []*Prospect
