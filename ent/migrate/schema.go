// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// EngagementsColumns holds the columns for the "engagements" table.
	EngagementsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "kind", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "sent_at", Type: field.TypeTime},
		{Name: "opened", Type: field.TypeBool, Default: false},
		{Name: "clicked", Type: field.TypeBool, Default: false},
		{Name: "responded", Type: field.TypeBool, Default: false},
		{Name: "engagement_score", Type: field.TypeFloat64, Default: 0},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "prospect_id", Type: field.TypeInt},
	}
	// EngagementsTable holds the schema information for the "engagements" table.
	EngagementsTable = &schema.Table{
		Name:       "engagements",
		Columns:    EngagementsColumns,
		PrimaryKey: []*schema.Column{EngagementsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "engagements_prospects_engagements",
				Columns:    []*schema.Column{EngagementsColumns[9]},
				RefColumns: []*schema.Column{ProspectsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "engagement_prospect_id_sent_at",
				Unique:  false,
				Columns: []*schema.Column{EngagementsColumns[9], EngagementsColumns[3]},
			},
			{
				Name:    "engagement_kind",
				Unique:  false,
				Columns: []*schema.Column{EngagementsColumns[1]},
			},
		},
	}
	// ProspectsColumns holds the columns for the "prospects" table.
	ProspectsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "company_name", Type: field.TypeString, Unique: true},
		{Name: "industry", Type: field.TypeString},
		{Name: "website", Type: field.TypeString, Nullable: true},
		{Name: "contact_person", Type: field.TypeString, Nullable: true},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProspectsTable holds the schema information for the "prospects" table.
	ProspectsTable = &schema.Table{
		Name:       "prospects",
		Columns:    ProspectsColumns,
		PrimaryKey: []*schema.Column{ProspectsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "prospect_industry",
				Unique:  false,
				Columns: []*schema.Column{ProspectsColumns[2]},
			},
			{
				Name:    "prospect_created_at",
				Unique:  false,
				Columns: []*schema.Column{ProspectsColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		EngagementsTable,
		ProspectsTable,
	}
)

func init() {
	EngagementsTable.ForeignKeys[0].RefTable = ProspectsTable
}
