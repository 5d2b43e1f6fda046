package schema

// AddressesTable represents the 'addresses' table
type AddressesTable struct {
	Table      string
	ID         string
	Street     string
	City       string
	Province   string
	Country    string
	PostalCode string
	ContactID  string
}

// Addresses is the schema definition for addresses
var Addresses = AddressesTable{
	Table:      "addresses",
	ID:         "id",
	Street:     "street",
	City:       "city",
	Province:   "province",
	Country:    "country",
	PostalCode: "postal_code",
	ContactID:  "contact_id",
}

// Columns returns the projected column names, in scan order
func (t AddressesTable) Columns() []string {
	return []string{t.ID, t.Street, t.City, t.Province, t.Country, t.PostalCode}
}
