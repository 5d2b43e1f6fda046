package address_test

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"sync"

	"github.com/taibuivan/contacts/internal/contacts/address"
	"github.com/taibuivan/contacts/internal/platform/apperr"
	"github.com/taibuivan/contacts/internal/platform/sec"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// ownedContacts maps contact id → owning username.
type ownedContacts map[int64]string

func (owned ownedContacts) VerifyOwned(_ context.Context, caller *sec.AuthUser, contactID int64) error {
	if owned[contactID] != caller.Username {
		return apperr.NotFound("Contact")
	}
	return nil
}

type row struct {
	contactID int64
	address   address.Address
}

// memoryAddresses is an in-memory [address.Repository].
type memoryAddresses struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]row
}

func newMemoryAddresses() *memoryAddresses {
	return &memoryAddresses{rows: map[int64]row{}}
}

func fromInput(id int64, input address.Input) address.Address {
	return address.Address{
		ID: id, Street: input.Street, City: input.City, Province: input.Province,
		Country: input.Country, PostalCode: input.PostalCode,
	}
}

func (repo *memoryAddresses) Create(_ context.Context, contactID int64, input address.Input) (*address.Address, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.nextID++
	a := fromInput(repo.nextID, input)
	repo.rows[a.ID] = row{contactID: contactID, address: a}
	return &a, nil
}

func (repo *memoryAddresses) Get(_ context.Context, contactID, id int64) (*address.Address, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	r, ok := repo.rows[id]
	if !ok || r.contactID != contactID {
		return nil, apperr.NotFound("Address")
	}
	a := r.address
	return &a, nil
}

func (repo *memoryAddresses) Update(_ context.Context, contactID, id int64, input address.Input) (*address.Address, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	r, ok := repo.rows[id]
	if !ok || r.contactID != contactID {
		return nil, apperr.NotFound("Address")
	}
	r.address = fromInput(id, input)
	repo.rows[id] = r
	a := r.address
	return &a, nil
}

func (repo *memoryAddresses) Delete(_ context.Context, contactID, id int64) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	r, ok := repo.rows[id]
	if !ok || r.contactID != contactID {
		return apperr.NotFound("Address")
	}
	delete(repo.rows, id)
	return nil
}

func (repo *memoryAddresses) List(_ context.Context, contactID int64) ([]*address.Address, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	addresses := []*address.Address{}
	for _, r := range repo.rows {
		if r.contactID == contactID {
			a := r.address
			addresses = append(addresses, &a)
		}
	}
	sort.Slice(addresses, func(i, j int) bool { return addresses[i].ID < addresses[j].ID })
	return addresses, nil
}
