package contact

import (
	"context"

	"github.com/taibuivan/contacts/pkg/pagination"
)

// Repository defines the owner-scoped data access contract for contacts.
//
// Every method takes the owning username; rows owned by anyone else are
// reported as apperr.NotFound.
type Repository interface {
	Create(context context.Context, username string, input Input) (*Contact, error)
	Get(context context.Context, username string, id int64) (*Contact, error)

	// Update replaces every mutable column of the owned row in one statement.
	Update(context context.Context, username string, id int64, input Input) (*Contact, error)

	// Delete removes the owned row, failing with apperr.NotFound unless exactly one row went.
	Delete(context context.Context, username string, id int64) error

	Search(context context.Context, username string, filter Filter, params pagination.Params) ([]*Contact, int, error)
	Exists(context context.Context, username string, id int64) (bool, error)
}
