// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Engagement is the predicate function for engagement builders.
type Engagement func(*sql.Selector)

// Prospect is the predicate function for prospect builders.
type Prospect func(*sql.Selector)
