package contact_test

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/taibuivan/contacts/internal/contacts/contact"
	"github.com/taibuivan/contacts/internal/platform/apperr"
	"github.com/taibuivan/contacts/pkg/pagination"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type row struct {
	owner   string
	contact contact.Contact
}

// memoryContacts is an in-memory [contact.Repository].
type memoryContacts struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]row
}

func newMemoryContacts() *memoryContacts {
	return &memoryContacts{rows: map[int64]row{}}
}

func (repo *memoryContacts) Create(_ context.Context, username string, input contact.Input) (*contact.Contact, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.nextID++
	c := contact.Contact{ID: repo.nextID, FirstName: input.FirstName, LastName: input.LastName, Email: input.Email, Phone: input.Phone}
	repo.rows[c.ID] = row{owner: username, contact: c}
	return &c, nil
}

func (repo *memoryContacts) Get(_ context.Context, username string, id int64) (*contact.Contact, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	r, ok := repo.rows[id]
	if !ok || r.owner != username {
		return nil, apperr.NotFound("Contact")
	}
	c := r.contact
	return &c, nil
}

func (repo *memoryContacts) Update(_ context.Context, username string, id int64, input contact.Input) (*contact.Contact, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	r, ok := repo.rows[id]
	if !ok || r.owner != username {
		return nil, apperr.NotFound("Contact")
	}
	r.contact = contact.Contact{ID: id, FirstName: input.FirstName, LastName: input.LastName, Email: input.Email, Phone: input.Phone}
	repo.rows[id] = r
	c := r.contact
	return &c, nil
}

func (repo *memoryContacts) Delete(_ context.Context, username string, id int64) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	r, ok := repo.rows[id]
	if !ok || r.owner != username {
		return apperr.NotFound("Contact")
	}
	delete(repo.rows, id)
	return nil
}

func (repo *memoryContacts) Exists(_ context.Context, username string, id int64) (bool, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	r, ok := repo.rows[id]
	return ok && r.owner == username, nil
}

func (repo *memoryContacts) Search(_ context.Context, username string, filter contact.Filter, params pagination.Params) ([]*contact.Contact, int, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	matched := []*contact.Contact{}
	for _, r := range repo.rows {
		if r.owner != username {
			continue
		}
		c := r.contact
		if filter.Name != "" && !contains(&c.FirstName, filter.Name) && !contains(c.LastName, filter.Name) {
			continue
		}
		if filter.Email != "" && !contains(c.Email, filter.Email) {
			continue
		}
		if filter.Phone != "" && !contains(c.Phone, filter.Phone) {
			continue
		}
		matched = append(matched, &c)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	total := len(matched)
	start := min(params.Offset(), total)
	end := min(start+params.Limit(), total)
	return matched[start:end], total, nil
}

func contains(value *string, term string) bool {
	return value != nil && strings.Contains(strings.ToLower(*value), strings.ToLower(term))
}
