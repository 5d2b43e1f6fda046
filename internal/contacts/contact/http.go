package contact

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/contacts/internal/platform/request"
	"github.com/taibuivan/contacts/internal/platform/respond"
	"github.com/taibuivan/contacts/internal/platform/validate"
	"github.com/taibuivan/contacts/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes binds the contact endpoints onto router, which is mounted at
// /api/contacts behind RequireAuth.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/", handler.createContact)
	router.Get("/", handler.searchContacts)
	router.Get("/{contactId}", handler.getContact)
	router.Put("/{contactId}", handler.updateContact)
	router.Delete("/{contactId}", handler.removeContact)
}

func (handler *Handler) createContact(writer http.ResponseWriter, request *http.Request) {
	caller, err := requestutil.RequiredUser(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.Create(request.Context(), caller, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, created)
}

func (handler *Handler) getContact(writer http.ResponseWriter, request *http.Request) {
	caller, err := requestutil.RequiredUser(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	contactID, err := requestutil.ID(request, FieldContactID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	found, err := handler.service.Get(request.Context(), caller, contactID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, found)
}

func (handler *Handler) updateContact(writer http.ResponseWriter, request *http.Request) {
	caller, err := requestutil.RequiredUser(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	contactID, err := requestutil.ID(request, FieldContactID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.Update(request.Context(), caller, contactID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) removeContact(writer http.ResponseWriter, request *http.Request) {
	caller, err := requestutil.RequiredUser(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	contactID, err := requestutil.ID(request, FieldContactID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Remove(request.Context(), caller, contactID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Done(writer)
}

// GET /api/contacts?name=&email=&phone=&page=
func (handler *Handler) searchContacts(writer http.ResponseWriter, request *http.Request) {
	caller, err := requestutil.RequiredUser(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	query := request.URL.Query()

	page := int64(pagination.DefaultPage)
	if raw, ok := query[FieldPage]; ok {
		validator := &validate.Validator{}
		page = validator.PositiveInt(FieldPage, raw[0])
		validator.Custom(FieldPage, page > pagination.MaxPage, fmt.Sprintf("must be less than or equal to %d", pagination.MaxPage))
		if err := validator.Err(); err != nil {
			respond.Error(writer, request, err)
			return
		}
	}

	filter := Filter{
		Name:  query.Get(FieldName),
		Email: query.Get(FieldEmail),
		Phone: query.Get(FieldPhone),
	}

	contacts, meta, err := handler.service.Search(request.Context(), caller, filter, pagination.New(int(page)))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, contacts, meta)
}
