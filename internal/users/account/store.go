// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"

	"github.com/taibuivan/contacts/internal/platform/sec"
)

// # User Data Access

// UserRepository defines the data access contract for user accounts.
type UserRepository interface {

	/*
		FindByUsername returns the account with the given username.

		Returns:
		  - *User: Hydrated entity
		  - error: apperr.NotFound or database retrieval failures
	*/
	FindByUsername(context context.Context, username string) (*User, error)

	/*
		FindByToken returns the account currently holding token.

		Returns:
		  - *User: Hydrated entity
		  - error: apperr.NotFound when no account holds the token
	*/
	FindByToken(context context.Context, token string) (*User, error)

	// Exists reports whether an account with username is present.
	Exists(context context.Context, username string) (bool, error)

	/*
		Create persists a brand-new user account.

		Returns:
		  - error: 400 when the username is taken, persistence failures otherwise
	*/
	Create(context context.Context, user *User) error

	/*
		Update applies the non-nil fields and returns the stored row.

		Returns:
		  - *User: Updated entity
		  - error: apperr.NotFound if the account vanished
	*/
	Update(context context.Context, username string, fields UpdateFields) (*User, error)

	/*
		SetToken replaces the account's session token. A nil token logs out.

		Returns:
		  - error: apperr.NotFound if the account vanished
	*/
	SetToken(context context.Context, username string, token *string) error
}

// # Token Cache

// TokenCache stores token lookups in front of [UserRepository].
//
// A miss is reported as (nil, nil), not as an error.
type TokenCache interface {
	Get(context context.Context, token string) (*sec.AuthUser, error)
	Set(context context.Context, token string, user *sec.AuthUser) error
	Delete(context context.Context, token string) error
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	HashPassword(plainTextPassword string) (string, error)
	CheckPasswordHash(plainTextPassword, existingHash string) bool
}
