package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Engagement holds the schema definition for the Engagement entity.
// One row per outreach event (email send, call) and its interaction signals.
type Engagement struct {
	ent.Schema
}

// Fields of the Engagement.
func (Engagement) Fields() []ent.Field {
	return []ent.Field{
		field.Int("prospect_id").
			Comment("Owning prospect"),
		field.String("kind").
			NotEmpty().
			Comment("Engagement kind: email, call, meeting, etc."),
		field.Text("content").
			Comment("Email body or serialized call script"),
		field.Time("sent_at").
			Default(time.Now).
			Comment("When the outreach was sent/initiated"),
		field.Bool("opened").
			Default(false).
			Comment("Email opened (calls are always opened)"),
		field.Bool("clicked").
			Default(false).
			Comment("Email link clicked"),
		field.Bool("responded").
			Default(false).
			Comment("Prospect replied or expressed interest"),
		field.Float("engagement_score").
			Default(0).
			Comment("Cumulative engagement score, increment-only"),
		field.Text("notes").
			Optional().
			Comment("Subject line, script title, call outcome notes"),
	}
}

// Edges of the Engagement.
func (Engagement) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("prospect", Prospect.Type).
			Ref("engagements").
			Field("prospect_id").
			Unique().
			Required(),
	}
}

// Indexes of the Engagement.
func (Engagement) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("prospect_id", "sent_at"),
		index.Fields("kind"),
	}
}
