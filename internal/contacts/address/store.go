package address

import "context"

// Repository defines data access for addresses, scoped by their contact.
//
// Callers must have verified contact ownership first; the repository only
// guarantees the address belongs to contactID.
type Repository interface {
	Create(context context.Context, contactID int64, input Input) (*Address, error)
	Get(context context.Context, contactID, id int64) (*Address, error)
	Update(context context.Context, contactID, id int64, input Input) (*Address, error)
	Delete(context context.Context, contactID, id int64) error
	List(context context.Context, contactID int64) ([]*Address, error)
}
