// Package address manages the postal addresses attached to a contact.
//
// Ownership is transitive: every operation first asks the contact domain
// whether the caller owns the contact, then scopes the address by contact id.
package address

// Address is the public projection of an addresses row.
type Address struct {
	ID         int64   `json:"id"`
	Street     *string `json:"street"`
	City       *string `json:"city"`
	Province   *string `json:"province"`
	Country    string  `json:"country"`
	PostalCode string  `json:"postal_code"`
}

// Input is the body of create and update. Update replaces every field.
type Input struct {
	Street     *string `json:"street"`
	City       *string `json:"city"`
	Province   *string `json:"province"`
	Country    string  `json:"country"`
	PostalCode string  `json:"postal_code"`
}

const (
	FieldContactID  = "contactId"
	FieldAddressID  = "addressId"
	FieldStreet     = "street"
	FieldCity       = "city"
	FieldProvince   = "province"
	FieldCountry    = "country"
	FieldPostalCode = "postal_code"

	MaxStreetLength     = 200
	MaxCityLength       = 200
	MaxProvinceLength   = 200
	MaxCountryLength    = 100
	MaxPostalCodeLength = 10
)

const resourceAddress = "Address"
