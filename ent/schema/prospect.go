package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Prospect holds the schema definition for the Prospect entity.
type Prospect struct {
	ent.Schema
}

// Fields of the Prospect.
func (Prospect) Fields() []ent.Field {
	return []ent.Field{
		field.String("company_name").
			NotEmpty().
			Unique().
			Comment("Company name, unique across all prospects"),
		field.String("industry").
			NotEmpty().
			Comment("Free-text industry label (e.g. technology, healthcare)"),
		field.String("website").
			Optional().
			Comment("Website URL"),
		field.String("contact_person").
			Optional().
			Comment("Primary contact name"),
		field.String("email").
			Optional().
			Comment("Contact email address"),
		field.String("phone").
			Optional().
			Comment("Contact phone number"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last update timestamp"),
	}
}

// Edges of the Prospect.
func (Prospect) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("engagements", Engagement.Type).
			Comment("Outreach events recorded for this prospect"),
	}
}

// Indexes of the Prospect.
func (Prospect) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("industry"),
		index.Fields("created_at"),
	}
}
