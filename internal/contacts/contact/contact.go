/*
Package contact implements the caller-owned address book: create, read,
full-replace update, delete, and paginated search.

Every lookup is scoped to the authenticated username. A contact owned by
someone else is indistinguishable from one that does not exist.
*/
package contact

// Contact is the public projection of a contacts row. The owning username is
// never serialized.
type Contact struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
}

// Input is the body of create and update. Update replaces every field.
type Input struct {
	FirstName string  `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
}

// Filter narrows a search. Empty fields match everything.
type Filter struct {
	Name  string
	Email string
	Phone string
}

// Field names and limits.
const (
	FieldContactID = "contactId"
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldEmail     = "email"
	FieldPhone     = "phone"
	FieldName      = "name"
	FieldPage      = "page"

	MaxFirstNameLength = 100
	MaxLastNameLength  = 100
	MaxEmailLength     = 200
	MaxPhoneLength     = 20
)

const resourceContact = "Contact"
