package schema

// ContactsTable represents the 'contacts' table
type ContactsTable struct {
	Table     string
	ID        string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Username  string
}

// Contacts is the schema definition for contacts
var Contacts = ContactsTable{
	Table:     "contacts",
	ID:        "id",
	FirstName: "first_name",
	LastName:  "last_name",
	Email:     "email",
	Phone:     "phone",
	Username:  "username",
}

// Columns returns the projected column names, in scan order
func (t ContactsTable) Columns() []string {
	return []string{t.ID, t.FirstName, t.LastName, t.Email, t.Phone}
}
