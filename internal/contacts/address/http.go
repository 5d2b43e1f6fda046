package address

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/contacts/internal/platform/request"
	"github.com/taibuivan/contacts/internal/platform/respond"
	"github.com/taibuivan/contacts/internal/platform/sec"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes binds the address endpoints onto router, which is mounted at
// /api/contacts/{contactId}/addresses behind RequireAuth.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/", handler.createAddress)
	router.Get("/", handler.listAddresses)
	router.Get("/{addressId}", handler.getAddress)
	router.Put("/{addressId}", handler.updateAddress)
	router.Delete("/{addressId}", handler.removeAddress)
}

func (handler *Handler) createAddress(writer http.ResponseWriter, request *http.Request) {
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

	created, err := handler.service.Create(request.Context(), caller, contactID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, created)
}

func (handler *Handler) getAddress(writer http.ResponseWriter, request *http.Request) {
	caller, contactID, addressID, err := addressTarget(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	found, err := handler.service.Get(request.Context(), caller, contactID, addressID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, found)
}

func (handler *Handler) updateAddress(writer http.ResponseWriter, request *http.Request) {
	caller, contactID, addressID, err := addressTarget(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.Update(request.Context(), caller, contactID, addressID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) removeAddress(writer http.ResponseWriter, request *http.Request) {
	caller, contactID, addressID, err := addressTarget(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Remove(request.Context(), caller, contactID, addressID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Done(writer)
}

func (handler *Handler) listAddresses(writer http.ResponseWriter, request *http.Request) {
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

	addresses, err := handler.service.List(request.Context(), caller, contactID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, addresses)
}

// addressTarget extracts the caller and both path identifiers.
func addressTarget(request *http.Request) (*sec.AuthUser, int64, int64, error) {
	caller, err := requestutil.RequiredUser(request)
	if err != nil {
		return nil, 0, 0, err
	}

	contactID, err := requestutil.ID(request, FieldContactID)
	if err != nil {
		return nil, 0, 0, err
	}

	addressID, err := requestutil.ID(request, FieldAddressID)
	if err != nil {
		return nil, 0, 0, err
	}
	return caller, contactID, addressID, nil
}
