package contact

import (
	"context"
	"log/slog"

	"github.com/taibuivan/contacts/internal/platform/apperr"
	"github.com/taibuivan/contacts/internal/platform/sec"
	"github.com/taibuivan/contacts/internal/platform/validate"
	"github.com/taibuivan/contacts/pkg/normalize"
	"github.com/taibuivan/contacts/pkg/pagination"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) Create(context context.Context, caller *sec.AuthUser, input Input) (*Contact, error) {
	input, err := validateInput(input)
	if err != nil {
		return nil, err
	}

	created, err := service.repo.Create(context, caller.Username, input)
	if err != nil {
		return nil, err
	}

	service.logger.Info("contact_created", slog.Int64("contact_id", created.ID), slog.String("username", caller.Username))
	return created, nil
}

func (service *Service) Get(context context.Context, caller *sec.AuthUser, id int64) (*Contact, error) {
	return service.repo.Get(context, caller.Username, id)
}

func (service *Service) Update(context context.Context, caller *sec.AuthUser, id int64, input Input) (*Contact, error) {
	input, err := validateInput(input)
	if err != nil {
		return nil, err
	}

	updated, err := service.repo.Update(context, caller.Username, id, input)
	if err != nil {
		return nil, err
	}

	service.logger.Info("contact_updated", slog.Int64("contact_id", id))
	return updated, nil
}

func (service *Service) Remove(context context.Context, caller *sec.AuthUser, id int64) error {
	if err := service.repo.Delete(context, caller.Username, id); err != nil {
		return err
	}

	service.logger.Warn("contact_removed", slog.Int64("contact_id", id), slog.String("username", caller.Username))
	return nil
}

func (service *Service) Search(context context.Context, caller *sec.AuthUser, filter Filter, params pagination.Params) ([]*Contact, pagination.Meta, error) {
	filter.Name = normalize.Text(filter.Name)
	filter.Email = normalize.Text(filter.Email)
	filter.Phone = normalize.Text(filter.Phone)

	contacts, total, err := service.repo.Search(context, caller.Username, filter, params)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	return contacts, pagination.NewMeta(params, total), nil
}

// VerifyOwned fails with a 404 unless the caller owns contact id.
func (service *Service) VerifyOwned(context context.Context, caller *sec.AuthUser, id int64) error {
	exists, err := service.repo.Exists(context, caller.Username, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound(resourceContact)
	}
	return nil
}

// validateInput normalizes the body and checks every field in one pass.
// Blank optional fields are stored as NULL.
func validateInput(input Input) (Input, error) {
	input.FirstName = normalize.Text(input.FirstName)
	input.LastName = normalize.NullIfEmpty(input.LastName)
	input.Email = normalize.NullIfEmpty(input.Email)
	input.Phone = normalize.NullIfEmpty(input.Phone)

	validator := &validate.Validator{}
	validator.Required(FieldFirstName, input.FirstName).
		MaxLen(FieldFirstName, input.FirstName, MaxFirstNameLength)

	if input.LastName != nil {
		validator.MaxLen(FieldLastName, *input.LastName, MaxLastNameLength)
	}
	if input.Email != nil {
		validator.MaxLen(FieldEmail, *input.Email, MaxEmailLength).
			Email(FieldEmail, *input.Email)
	}
	if input.Phone != nil {
		validator.MaxLen(FieldPhone, *input.Phone, MaxPhoneLength)
	}

	return input, validator.Err()
}
