// Package schema holds table and column names for every relation, so SQL in
// the repositories is assembled from one source of truth.
package schema

import "strings"

// List joins column names for use in SELECT / RETURNING clauses.
func List(columns []string) string {
	return strings.Join(columns, ", ")
}
