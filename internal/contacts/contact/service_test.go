package contact_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/contacts/internal/contacts/contact"
	"github.com/taibuivan/contacts/internal/platform/apperr"
	"github.com/taibuivan/contacts/internal/platform/sec"
	"github.com/taibuivan/contacts/pkg/pagination"
	"github.com/taibuivan/contacts/pkg/pointer"
)

var (
	owner    = &sec.AuthUser{Username: "test", Name: "test"}
	stranger = &sec.AuthUser{Username: "other", Name: "other"}
)

func validInput() contact.Input {
	return contact.Input{
		FirstName: "test",
		LastName:  pointer.To("test"),
		Email:     pointer.To("test@gmail.com"),
		Phone:     pointer.To("080900000"),
	}
}

func TestService_Create(t *testing.T) {
	service := contact.NewService(newMemoryContacts(), discardLogger)

	created, err := service.Create(context.Background(), owner, validInput())
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "test", created.FirstName)
	assert.Equal(t, "test@gmail.com", *created.Email)
}

func TestService_Create_Validation(t *testing.T) {
	service := contact.NewService(newMemoryContacts(), discardLogger)

	tests := []struct {
		name    string
		input   contact.Input
		message string
	}{
		{"missing_first_name", contact.Input{}, `"first_name" is required`},
		{"bad_email", contact.Input{FirstName: "a", Email: pointer.To("salah")}, `"email" must be a valid email`},
		{"long_phone", contact.Input{FirstName: "a", Phone: pointer.To("012345678901234567890")}, `"phone" length must be less than or equal to 20 characters long`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Create(context.Background(), owner, tt.input)
			appError := apperr.As(err)
			require.NotNil(t, appError)
			assert.Equal(t, http.StatusBadRequest, appError.HTTPStatus)
			assert.Contains(t, appError.Message, tt.message)
		})
	}
}

func TestService_Create_BlankOptionalsAreNull(t *testing.T) {
	service := contact.NewService(newMemoryContacts(), discardLogger)

	created, err := service.Create(context.Background(), owner, contact.Input{FirstName: "a", Email: pointer.To("  ")})
	require.NoError(t, err)
	assert.Nil(t, created.Email)
	assert.Nil(t, created.LastName)
}

func TestService_OwnershipIsHidden(t *testing.T) {
	ctx := context.Background()
	service := contact.NewService(newMemoryContacts(), discardLogger)

	created, err := service.Create(ctx, owner, validInput())
	require.NoError(t, err)

	for _, tt := range []struct {
		name   string
		caller *sec.AuthUser
		id     int64
	}{
		{"next_id", owner, created.ID + 1},
		{"other_owner", stranger, created.ID},
	} {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Get(ctx, tt.caller, tt.id)
			assert.True(t, apperr.IsNotFound(err))
			assert.Equal(t, "Contact is not found", err.Error())

			_, err = service.Update(ctx, tt.caller, tt.id, validInput())
			assert.True(t, apperr.IsNotFound(err))

			err = service.Remove(ctx, tt.caller, tt.id)
			assert.True(t, apperr.IsNotFound(err))

			assert.True(t, apperr.IsNotFound(service.VerifyOwned(ctx, tt.caller, tt.id)))
		})
	}

	// The row survived every foreign attempt.
	_, err = service.Get(ctx, owner, created.ID)
	assert.NoError(t, err)
}

func TestService_Update_FullReplace(t *testing.T) {
	ctx := context.Background()
	service := contact.NewService(newMemoryContacts(), discardLogger)

	created, err := service.Create(ctx, owner, validInput())
	require.NoError(t, err)

	updated, err := service.Update(ctx, owner, created.ID, contact.Input{FirstName: "Eko"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Eko", updated.FirstName)
	assert.Nil(t, updated.LastName)
	assert.Nil(t, updated.Email)
	assert.Nil(t, updated.Phone)
}

func TestService_Remove(t *testing.T) {
	ctx := context.Background()
	service := contact.NewService(newMemoryContacts(), discardLogger)

	created, err := service.Create(ctx, owner, validInput())
	require.NoError(t, err)

	require.NoError(t, service.Remove(ctx, owner, created.ID))
	assert.True(t, apperr.IsNotFound(service.Remove(ctx, owner, created.ID)))
}

func TestService_Search(t *testing.T) {
	ctx := context.Background()
	service := contact.NewService(newMemoryContacts(), discardLogger)

	for i := range 15 {
		_, err := service.Create(ctx, owner, contact.Input{
			FirstName: fmt.Sprintf("test %d", i),
			LastName:  pointer.To(fmt.Sprintf("test %d", i)),
			Email:     pointer.To(fmt.Sprintf("test%d@gmail.com", i)),
			Phone:     pointer.To(fmt.Sprintf("080900000%d", i)),
		})
		require.NoError(t, err)
	}
	_, err := service.Create(ctx, stranger, validInput())
	require.NoError(t, err)

	tests := []struct {
		name   string
		filter contact.Filter
		page   int
		items  int
		meta   pagination.Meta
	}{
		{"no_filter", contact.Filter{}, 1, 10, pagination.Meta{Page: 1, TotalPage: 2, TotalItem: 15}},
		{"second_page", contact.Filter{}, 2, 5, pagination.Meta{Page: 2, TotalPage: 2, TotalItem: 15}},
		{"past_the_end", contact.Filter{}, 3, 0, pagination.Meta{Page: 3, TotalPage: 2, TotalItem: 15}},
		{"by_name", contact.Filter{Name: "TEST 1"}, 1, 6, pagination.Meta{Page: 1, TotalPage: 1, TotalItem: 6}},
		{"by_email", contact.Filter{Email: "test1"}, 1, 6, pagination.Meta{Page: 1, TotalPage: 1, TotalItem: 6}},
		{"by_phone", contact.Filter{Phone: "0809000001"}, 1, 6, pagination.Meta{Page: 1, TotalPage: 1, TotalItem: 6}},
		{"no_match", contact.Filter{Name: "nobody"}, 1, 0, pagination.Meta{Page: 1, TotalPage: 0, TotalItem: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contacts, meta, err := service.Search(ctx, owner, tt.filter, pagination.New(tt.page))
			require.NoError(t, err)
			assert.Len(t, contacts, tt.items)
			assert.Equal(t, tt.meta, meta)
		})
	}
}
