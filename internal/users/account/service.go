// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taibuivan/contacts/internal/platform/apperr"
	"github.com/taibuivan/contacts/internal/platform/sec"
	"github.com/taibuivan/contacts/internal/platform/validate"
	"github.com/taibuivan/contacts/pkg/normalize"
	"github.com/taibuivan/contacts/pkg/uuid"
)

// Service implements the user account use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, login, or
// token resolution must keep unknown-user and wrong-password failures identical.
type Service struct {
	userRepository UserRepository
	tokenCache     TokenCache
	hasher         PasswordHasher
	newToken       func() (string, error)
	logger         *slog.Logger
}

// NewService constructs a new [Service].
//
// tokenCache may be nil, in which case every token lookup goes to the repository.
func NewService(userRepo UserRepository, tokenCache TokenCache, hasher PasswordHasher, logger *slog.Logger) *Service {
	return &Service{
		userRepository: userRepo,
		tokenCache:     tokenCache,
		hasher:         hasher,
		newToken:       uuid.Random,
		logger:         logger,
	}
}

// # Registration Flow

/*
Register validates, hashes, and persists a brand new user account.

Returns:
  - *UserResponse: Public projection of the created user
  - error: 400 on validation failure or a taken username
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*UserResponse, error) {
	input.Username = normalize.Text(input.Username)
	input.Name = normalize.Text(input.Name)

	validator := &validate.Validator{}
	validator.Required(FieldUsername, input.Username).
		MaxLen(FieldUsername, input.Username, MaxUsernameLength).
		Required(FieldPassword, input.Password).
		MaxLen(FieldPassword, input.Password, MaxPasswordLength).
		Required(FieldName, input.Name).
		MaxLen(FieldName, input.Name, MaxNameLength)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	exists, err := service.userRepository.Exists(context, input.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.BadRequest(msgUsernameTaken)
	}

	hashedPassword, err := service.hasher.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("account_service_hash_failed: %w", err)
	}

	user := &User{
		Username:     input.Username,
		Name:         input.Name,
		PasswordHash: hashedPassword,
	}

	// The insert still guards the race between the existence check and here.
	if err := service.userRepository.Create(context, user); err != nil {
		return nil, err
	}

	service.logger.Info("user_registered", slog.String("username", user.Username))
	return user.Response(), nil
}

// # Authentication Flow

/*
Login verifies credentials and issues a fresh session token.

The previous token, if any, stops resolving immediately.

Returns:
  - *TokenResponse: The new token
  - error: 401 for an unknown user or a wrong password, with the same message
*/
func (service *Service) Login(context context.Context, input LoginInput) (*TokenResponse, error) {
	input.Username = normalize.Text(input.Username)

	validator := &validate.Validator{}
	validator.Required(FieldUsername, input.Username).
		MaxLen(FieldUsername, input.Username, MaxUsernameLength).
		Required(FieldPassword, input.Password).
		MaxLen(FieldPassword, input.Password, MaxPasswordLength)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	user, err := service.userRepository.FindByUsername(context, input.Username)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, apperr.Unauthorized(msgInvalidCredentials)
		}
		return nil, err
	}

	if !service.hasher.CheckPasswordHash(input.Password, user.PasswordHash) {
		return nil, apperr.Unauthorized(msgInvalidCredentials)
	}

	token, err := service.newToken()
	if err != nil {
		return nil, fmt.Errorf("account_service_token_failed: %w", err)
	}

	if err := service.userRepository.SetToken(context, user.Username, &token); err != nil {
		return nil, err
	}

	if user.Token != nil {
		if err := service.evict(context, *user.Token); err != nil {
			return nil, err
		}
	}

	service.logger.Info("user_logged_in", slog.String("username", user.Username))
	return &TokenResponse{Token: token}, nil
}

/*
Logout clears the caller's session token.

Returns:
  - error: apperr.NotFound if the account vanished
*/
func (service *Service) Logout(context context.Context, caller *sec.AuthUser) error {
	user, err := service.userRepository.FindByUsername(context, caller.Username)
	if err != nil {
		return err
	}

	if err := service.userRepository.SetToken(context, user.Username, nil); err != nil {
		return err
	}

	if user.Token != nil {
		if err := service.evict(context, *user.Token); err != nil {
			return err
		}
	}

	service.logger.Info("user_logged_out", slog.String("username", user.Username))
	return nil
}

// # Profile

// Get returns the caller's public profile.
func (service *Service) Get(context context.Context, caller *sec.AuthUser) (*UserResponse, error) {
	user, err := service.userRepository.FindByUsername(context, caller.Username)
	if err != nil {
		return nil, err
	}
	return user.Response(), nil
}

/*
Update changes the caller's name and/or password.

Each field is applied only when present in input; a new password is re-hashed.

Returns:
  - *UserResponse: The stored profile after the change
  - error: 400 on validation failure, 404 if the account vanished
*/
func (service *Service) Update(context context.Context, caller *sec.AuthUser, input UpdateInput) (*UserResponse, error) {
	input.Name = normalize.Optional(input.Name)

	validator := &validate.Validator{}
	validator.NotEmpty(FieldName, input.Name).
		NotEmpty(FieldPassword, input.Password)
	if input.Name != nil {
		validator.MaxLen(FieldName, *input.Name, MaxNameLength)
	}
	if input.Password != nil {
		validator.MaxLen(FieldPassword, *input.Password, MaxPasswordLength)
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	fields := UpdateFields{Name: input.Name}
	if input.Password != nil {
		hashedPassword, err := service.hasher.HashPassword(*input.Password)
		if err != nil {
			return nil, fmt.Errorf("account_service_hash_failed: %w", err)
		}
		fields.PasswordHash = &hashedPassword
	}

	if fields.IsEmpty() {
		return service.Get(context, caller)
	}

	user, err := service.userRepository.Update(context, caller.Username, fields)
	if err != nil {
		return nil, err
	}

	// The cached identity carries the name.
	if fields.Name != nil && user.Token != nil {
		if err := service.evict(context, *user.Token); err != nil {
			service.logger.Warn("token_cache_stale_name", slog.String("username", user.Username), slog.Any("error", err))
		}
	}

	service.logger.Info("user_updated", slog.String("username", user.Username))
	return user.Response(), nil
}

// # Token Resolution

/*
ResolveToken maps a session token to its owner.

The cache is consulted first; a cache failure falls back to the repository.
A freshly cached entry is confirmed against the repository once more, so a
logout that lands between the lookup and the write cannot leave the token
resolvable.

Returns:
  - *sec.AuthUser: The resolved identity
  - error: apperr.NotFound when no account holds the token
*/
func (service *Service) ResolveToken(context context.Context, token string) (*sec.AuthUser, error) {
	if service.tokenCache != nil {
		cached, err := service.tokenCache.Get(context, token)
		if err != nil {
			service.logger.Warn("token_cache_read_failed", slog.Any("error", err))
		} else if cached != nil {
			return cached, nil
		}
	}

	user, err := service.userRepository.FindByToken(context, token)
	if err != nil {
		return nil, err
	}

	identity := user.Identity()
	if service.tokenCache == nil {
		return identity, nil
	}

	if err := service.tokenCache.Set(context, token, identity); err != nil {
		service.logger.Warn("token_cache_write_failed", slog.Any("error", err))
		return identity, nil
	}

	if _, err := service.userRepository.FindByToken(context, token); err != nil {
		if evictErr := service.evict(context, token); evictErr != nil {
			return nil, evictErr
		}
		return nil, err
	}
	return identity, nil
}

// evict drops token from the cache.
func (service *Service) evict(context context.Context, token string) error {
	if service.tokenCache == nil {
		return nil
	}
	if err := service.tokenCache.Delete(context, token); err != nil {
		service.logger.Error("token_cache_evict_failed", slog.Any("error", err))
		return fmt.Errorf("account_service_evict_failed: %w", err)
	}
	return nil
}
