// Code generated by ent, DO NOT EDIT.

package engagement

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/jordanlanch/outreachhq/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Engagement {
	return predicate.Engagement(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Engagement {
	return predicate.Engagement(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Engagement {
	return predicate.Engagement(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Engagement {
	return predicate.Engagement(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Engagement {
	return predicate.Engagement(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Engagement {
	return predicate.Engagement(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Engagement {
	return predicate.Engagement(sql.FieldLTE(FieldID, id))
}

// ProspectID applies equality check predicate on the "prospect_id" field. It's identical to ProspectIDEQ.
func ProspectID(v int) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldProspectID, v))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldKind, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldContent, v))
}

// SentAt applies equality check predicate on the "sent_at" field. It's identical to SentAtEQ.
func SentAt(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldSentAt, v))
}

// Opened applies equality check predicate on the "opened" field. It's identical to OpenedEQ.
func Opened(v bool) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldOpened, v))
}

// Clicked applies equality check predicate on the "clicked" field. It's identical to ClickedEQ.
func Clicked(v bool) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldClicked, v))
}

// Responded applies equality check predicate on the "responded" field. It's identical to RespondedEQ.
func Responded(v bool) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldResponded, v))
}

// EngagementScore applies equality check predicate on the "engagement_score" field. It's identical to EngagementScoreEQ.
func EngagementScore(v float64) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldEngagementScore, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldNotes, v))
}

// ProspectIDEQ applies the EQ predicate on the "prospect_id" field.
func ProspectIDEQ(v int) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldProspectID, v))
}

// ProspectIDNEQ applies the NEQ predicate on the "prospect_id" field.
func ProspectIDNEQ(v int) predicate.Engagement {
	return predicate.Engagement(sql.FieldNEQ(FieldProspectID, v))
}

// ProspectIDIn applies the In predicate on the "prospect_id" field.
func ProspectIDIn(vs ...int) predicate.Engagement {
	return predicate.Engagement(sql.FieldIn(FieldProspectID, vs...))
}

// ProspectIDNotIn applies the NotIn predicate on the "prospect_id" field.
func ProspectIDNotIn(vs ...int) predicate.Engagement {
	return predicate.Engagement(sql.FieldNotIn(FieldProspectID, vs...))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.Engagement {
	return predicate.Engagement(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.Engagement {
	return predicate.Engagement(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldContainsFold(FieldKind, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.Engagement {
	return predicate.Engagement(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.Engagement {
	return predicate.Engagement(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldContainsFold(FieldContent, v))
}

// SentAtEQ applies the EQ predicate on the "sent_at" field.
func SentAtEQ(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldSentAt, v))
}

// SentAtNEQ applies the NEQ predicate on the "sent_at" field.
func SentAtNEQ(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldNEQ(FieldSentAt, v))
}

// SentAtIn applies the In predicate on the "sent_at" field.
func SentAtIn(vs ...time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldIn(FieldSentAt, vs...))
}

// SentAtNotIn applies the NotIn predicate on the "sent_at" field.
func SentAtNotIn(vs ...time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldNotIn(FieldSentAt, vs...))
}

// SentAtGT applies the GT predicate on the "sent_at" field.
func SentAtGT(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldGT(FieldSentAt, v))
}

// SentAtGTE applies the GTE predicate on the "sent_at" field.
func SentAtGTE(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldGTE(FieldSentAt, v))
}

// SentAtLT applies the LT predicate on the "sent_at" field.
func SentAtLT(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldLT(FieldSentAt, v))
}

// SentAtLTE applies the LTE predicate on the "sent_at" field.
func SentAtLTE(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldLTE(FieldSentAt, v))
}

// OpenedEQ applies the EQ predicate on the "opened" field.
func OpenedEQ(v bool) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldOpened, v))
}

// OpenedNEQ applies the NEQ predicate on the "opened" field.
func OpenedNEQ(v bool) predicate.Engagement {
	return predicate.Engagement(sql.FieldNEQ(FieldOpened, v))
}

// ClickedEQ applies the EQ predicate on the "clicked" field.
func ClickedEQ(v bool) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldClicked, v))
}

// ClickedNEQ applies the NEQ predicate on the "clicked" field.
func ClickedNEQ(v bool) predicate.Engagement {
	return predicate.Engagement(sql.FieldNEQ(FieldClicked, v))
}

// RespondedEQ applies the EQ predicate on the "responded" field.
func RespondedEQ(v bool) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldResponded, v))
}

// RespondedNEQ applies the NEQ predicate on the "responded" field.
func RespondedNEQ(v bool) predicate.Engagement {
	return predicate.Engagement(sql.FieldNEQ(FieldResponded, v))
}

// EngagementScoreEQ applies the EQ predicate on the "engagement_score" field.
func EngagementScoreEQ(v float64) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldEngagementScore, v))
}

// EngagementScoreNEQ applies the NEQ predicate on the "engagement_score" field.
func EngagementScoreNEQ(v float64) predicate.Engagement {
	return predicate.Engagement(sql.FieldNEQ(FieldEngagementScore, v))
}

// EngagementScoreIn applies the In predicate on the "engagement_score" field.
func EngagementScoreIn(vs ...float64) predicate.Engagement {
	return predicate.Engagement(sql.FieldIn(FieldEngagementScore, vs...))
}

// EngagementScoreNotIn applies the NotIn predicate on the "engagement_score" field.
func EngagementScoreNotIn(vs ...float64) predicate.Engagement {
	return predicate.Engagement(sql.FieldNotIn(FieldEngagementScore, vs...))
}

// EngagementScoreGT applies the GT predicate on the "engagement_score" field.
func EngagementScoreGT(v float64) predicate.Engagement {
	return predicate.Engagement(sql.FieldGT(FieldEngagementScore, v))
}

// EngagementScoreGTE applies the GTE predicate on the "engagement_score" field.
func EngagementScoreGTE(v float64) predicate.Engagement {
	return predicate.Engagement(sql.FieldGTE(FieldEngagementScore, v))
}

// EngagementScoreLT applies the LT predicate on the "engagement_score" field.
func EngagementScoreLT(v float64) predicate.Engagement {
	return predicate.Engagement(sql.FieldLT(FieldEngagementScore, v))
}

// EngagementScoreLTE applies the LTE predicate on the "engagement_score" field.
func EngagementScoreLTE(v float64) predicate.Engagement {
	return predicate.Engagement(sql.FieldLTE(FieldEngagementScore, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.Engagement {
	return predicate.Engagement(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.Engagement {
	return predicate.Engagement(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldContainsFold(FieldNotes, v))
}

// HasProspect applies the HasEdge predicate on the "prospect" edge.
func HasProspect() predicate.Engagement {
	return predicate.Engagement(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProspectTable, ProspectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProspectWith applies the HasEdge predicate on the "prospect" edge with a given conditions (other predicates).
func HasProspectWith(preds ...predicate.Prospect) predicate.Engagement {
	return predicate.Engagement(func(s *sql.Selector) {
		step := newProspectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Engagement) predicate.Engagement {
	return predicate.Engagement(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Engagement) predicate.Engagement {
	return predicate.Engagement(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Engagement) predicate.Engagement {
	return predicate.Engagement(sql.NotPredicates(p))
}
