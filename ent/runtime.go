// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/jordanlanch/outreachhq/ent/engagement"
	"github.com/jordanlanch/outreachhq/ent/prospect"
	"github.com/jordanlanch/outreachhq/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	engagementFields := schema.Engagement{}.Fields()
	_ = engagementFields
	// engagementDescKind is the schema descriptor for kind field.
	engagementDescKind := engagementFields[1].Descriptor()
	// engagement.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	engagement.KindValidator = engagementDescKind.Validators[0].(func(string) error)
	// engagementDescSentAt is the schema descriptor for sent_at field.
	engagementDescSentAt := engagementFields[3].Descriptor()
	// engagement.DefaultSentAt holds the default value on creation for the sent_at field.
	engagement.DefaultSentAt = engagementDescSentAt.Default.(func() time.Time)
	// engagementDescOpened is the schema descriptor for opened field.
	engagementDescOpened := engagementFields[4].Descriptor()
	// engagement.DefaultOpened holds the default value on creation for the opened field.
	engagement.DefaultOpened = engagementDescOpened.Default.(bool)
	// engagementDescClicked is the schema descriptor for clicked field.
	engagementDescClicked := engagementFields[5].Descriptor()
	// engagement.DefaultClicked holds the default value on creation for the clicked field.
	engagement.DefaultClicked = engagementDescClicked.Default.(bool)
	// engagementDescResponded is the schema descriptor for responded field.
	engagementDescResponded := engagementFields[6].Descriptor()
	// engagement.DefaultResponded holds the default value on creation for the responded field.
	engagement.DefaultResponded = engagementDescResponded.Default.(bool)
	// engagementDescEngagementScore is the schema descriptor for engagement_score field.
	engagementDescEngagementScore := engagementFields[7].Descriptor()
	// engagement.DefaultEngagementScore holds the default value on creation for the engagement_score field.
	engagement.DefaultEngagementScore = engagementDescEngagementScore.Default.(float64)
	prospectFields := schema.Prospect{}.Fields()
	_ = prospectFields
	// prospectDescCompanyName is the schema descriptor for company_name field.
	prospectDescCompanyName := prospectFields[0].Descriptor()
	// prospect.CompanyNameValidator is a validator for the "company_name" field. It is called by the builders before save.
	prospect.CompanyNameValidator = prospectDescCompanyName.Validators[0].(func(string) error)
	// prospectDescIndustry is the schema descriptor for industry field.
	prospectDescIndustry := prospectFields[1].Descriptor()
	// prospect.IndustryValidator is a validator for the "industry" field. It is called by the builders before save.
	prospect.IndustryValidator = prospectDescIndustry.Validators[0].(func(string) error)
	// prospectDescCreatedAt is the schema descriptor for created_at field.
	prospectDescCreatedAt := prospectFields[6].Descriptor()
	// prospect.DefaultCreatedAt holds the default value on creation for the created_at field.
	prospect.DefaultCreatedAt = prospectDescCreatedAt.Default.(func() time.Time)
	// prospectDescUpdatedAt is the schema descriptor for updated_at field.
	prospectDescUpdatedAt := prospectFields[7].Descriptor()
	// prospect.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	prospect.DefaultUpdatedAt = prospectDescUpdatedAt.Default.(func() time.Time)
	// prospect.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	prospect.UpdateDefaultUpdatedAt = prospectDescUpdatedAt.UpdateDefault.(func() time.Time)
}
