package address

import (
	"context"
	"log/slog"

	"github.com/taibuivan/contacts/internal/platform/sec"
	"github.com/taibuivan/contacts/internal/platform/validate"
	"github.com/taibuivan/contacts/pkg/normalize"
)

// ContactVerifier reports whether the caller owns a contact.
//
// It is implemented by contact.Service; the address domain never reads the
// contacts table itself.
type ContactVerifier interface {
	VerifyOwned(context context.Context, caller *sec.AuthUser, contactID int64) error
}

type Service struct {
	repo     Repository
	contacts ContactVerifier
	logger   *slog.Logger
}

func NewService(repo Repository, contacts ContactVerifier, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		contacts: contacts,
		logger:   logger,
	}
}

func (service *Service) Create(context context.Context, caller *sec.AuthUser, contactID int64, input Input) (*Address, error) {
	if err := service.contacts.VerifyOwned(context, caller, contactID); err != nil {
		return nil, err
	}

	input, err := validateInput(input)
	if err != nil {
		return nil, err
	}

	created, err := service.repo.Create(context, contactID, input)
	if err != nil {
		return nil, err
	}

	service.logger.Info("address_created", slog.Int64("contact_id", contactID), slog.Int64("address_id", created.ID))
	return created, nil
}

func (service *Service) Get(context context.Context, caller *sec.AuthUser, contactID, id int64) (*Address, error) {
	if err := service.contacts.VerifyOwned(context, caller, contactID); err != nil {
		return nil, err
	}
	return service.repo.Get(context, contactID, id)
}

func (service *Service) Update(context context.Context, caller *sec.AuthUser, contactID, id int64, input Input) (*Address, error) {
	if err := service.contacts.VerifyOwned(context, caller, contactID); err != nil {
		return nil, err
	}

	input, err := validateInput(input)
	if err != nil {
		return nil, err
	}

	updated, err := service.repo.Update(context, contactID, id, input)
	if err != nil {
		return nil, err
	}

	service.logger.Info("address_updated", slog.Int64("contact_id", contactID), slog.Int64("address_id", id))
	return updated, nil
}

func (service *Service) Remove(context context.Context, caller *sec.AuthUser, contactID, id int64) error {
	if err := service.contacts.VerifyOwned(context, caller, contactID); err != nil {
		return err
	}

	if err := service.repo.Delete(context, contactID, id); err != nil {
		return err
	}

	service.logger.Warn("address_removed", slog.Int64("contact_id", contactID), slog.Int64("address_id", id))
	return nil
}

func (service *Service) List(context context.Context, caller *sec.AuthUser, contactID int64) ([]*Address, error) {
	if err := service.contacts.VerifyOwned(context, caller, contactID); err != nil {
		return nil, err
	}
	return service.repo.List(context, contactID)
}

func validateInput(input Input) (Input, error) {
	input.Street = normalize.NullIfEmpty(input.Street)
	input.City = normalize.NullIfEmpty(input.City)
	input.Province = normalize.NullIfEmpty(input.Province)
	input.Country = normalize.Text(input.Country)
	input.PostalCode = normalize.Text(input.PostalCode)

	validator := &validate.Validator{}
	if input.Street != nil {
		validator.MaxLen(FieldStreet, *input.Street, MaxStreetLength)
	}
	if input.City != nil {
		validator.MaxLen(FieldCity, *input.City, MaxCityLength)
	}
	if input.Province != nil {
		validator.MaxLen(FieldProvince, *input.Province, MaxProvinceLength)
	}
	validator.Required(FieldCountry, input.Country).
		MaxLen(FieldCountry, input.Country, MaxCountryLength).
		Required(FieldPostalCode, input.PostalCode).
		MaxLen(FieldPostalCode, input.PostalCode, MaxPostalCodeLength)

	return input, validator.Err()
}
