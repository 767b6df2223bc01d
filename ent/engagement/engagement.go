// Code generated by ent, DO NOT EDIT.

package engagement

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the engagement type in the database.
	Label = "engagement"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldProspectID holds the string denoting the prospect_id field in the database.
	FieldProspectID = "prospect_id"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldSentAt holds the string denoting the sent_at field in the database.
	FieldSentAt = "sent_at"
	// FieldOpened holds the string denoting the opened field in the database.
	FieldOpened = "opened"
	// FieldClicked holds the string denoting the clicked field in the database.
	FieldClicked = "clicked"
	// FieldResponded holds the string denoting the responded field in the database.
	FieldResponded = "responded"
	// FieldEngagementScore holds the string denoting the engagement_score field in the database.
	FieldEngagementScore = "engagement_score"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// EdgeProspect holds the string denoting the prospect edge name in mutations.
	EdgeProspect = "prospect"
	// Table holds the table name of the engagement in the database.
	Table = "engagements"
	// ProspectTable is the table that holds the prospect relation/edge.
	ProspectTable = "engagements"
	// ProspectInverseTable is the table name for the Prospect entity.
	// It exists in this package in order to avoid circular dependency with the "prospect" package.
	ProspectInverseTable = "prospects"
	// ProspectColumn is the table column denoting the prospect relation/edge.
	ProspectColumn = "prospect_id"
)

// Columns holds all SQL columns for engagement fields.
var Columns = []string{
	FieldID,
	FieldProspectID,
	FieldKind,
	FieldContent,
	FieldSentAt,
	FieldOpened,
	FieldClicked,
	FieldResponded,
	FieldEngagementScore,
	FieldNotes,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// KindValidator is a validator for the "kind" field. It is called by the builders before save.
	KindValidator func(string) error
	// DefaultSentAt holds the default value on creation for the "sent_at" field.
	DefaultSentAt func() time.Time
	// DefaultOpened holds the default value on creation for the "opened" field.
	DefaultOpened bool
	// DefaultClicked holds the default value on creation for the "clicked" field.
	DefaultClicked bool
	// DefaultResponded holds the default value on creation for the "responded" field.
	DefaultResponded bool
	// DefaultEngagementScore holds the default value on creation for the "engagement_score" field.
	DefaultEngagementScore float64
)

// OrderOption defines the ordering options for the Engagement queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProspectID orders the results by the prospect_id field.
func ByProspectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProspectID, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// BySentAt orders the results by the sent_at field.
func BySentAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSentAt, opts...).ToFunc()
}

// ByOpened orders the results by the opened field.
func ByOpened(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOpened, opts...).ToFunc()
}

// ByClicked orders the results by the clicked field.
func ByClicked(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClicked, opts...).ToFunc()
}

// ByResponded orders the results by the responded field.
func ByResponded(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResponded, opts...).ToFunc()
}

// ByEngagementScore orders the results by the engagement_score field.
func ByEngagementScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEngagementScore, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}

// ByProspectField orders the results by prospect field.
func ByProspectField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProspectStep(), sql.OrderByField(field, opts...))
	}
}
func newProspectStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProspectInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ProspectTable, ProspectColumn),
	)
}
