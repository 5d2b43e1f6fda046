// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package account implements user identity: registration, login, the current
user's profile, and logout.

Architecture:

  - Entities: User (persistence shape), UserResponse / TokenResponse (wire shapes).
  - Repository: PostgreSQL is the system of record; Redis optionally caches
    token lookups.
  - Security: Passwords are bcrypt hashes and never appear in a response.
    Tokens are opaque UUIDv4 strings, valid until logout or the next login.
*/
package account

import "github.com/taibuivan/contacts/internal/platform/sec"

// # Domain Entities

// User is a registered account as stored in the users table.
type User struct {
	Username     string  `json:"username"`
	Name         string  `json:"name"`
	PasswordHash string  `json:"-"` // Explicitly omitted from JSON for security.
	Token        *string `json:"-"` // nil means logged out.
}

// Identity returns the request-scoped view of the user.
func (user *User) Identity() *sec.AuthUser {
	return &sec.AuthUser{Username: user.Username, Name: user.Name}
}

// Response returns the public projection of the user.
func (user *User) Response() *UserResponse {
	return &UserResponse{Username: user.Username, Name: user.Name}
}

// UserResponse is the public projection returned by register, get, and update.
type UserResponse struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	Token string `json:"token"`
}

// # Inputs

// RegisterInput holds the data required to enroll a new user.
type RegisterInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginInput holds the credentials of a login attempt.
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UpdateInput holds the optional profile changes. Absent fields are left untouched.
type UpdateInput struct {
	Name     *string `json:"name"`
	Password *string `json:"password"`
}

// UpdateFields is the column-level change set of an update.
type UpdateFields struct {
	Name         *string
	PasswordHash *string
}

// IsEmpty reports whether no column would change.
func (fields UpdateFields) IsEmpty() bool {
	return fields.Name == nil && fields.PasswordHash == nil
}

// Field names and limits.
const (
	FieldUsername = "username"
	FieldPassword = "password"
	FieldName     = "name"

	MaxUsernameLength = 100
	MaxPasswordLength = 100
	MaxNameLength     = 100
)

const (
	resourceUser          = "User"
	msgUsernameTaken      = "Username already exist"
	msgInvalidCredentials = "Username or password wrong"
)
