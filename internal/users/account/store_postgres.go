// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"fmt"

	"github.com/taibuivan/contacts/internal/platform/apperr"
	"github.com/taibuivan/contacts/internal/platform/database/schema"
	"github.com/taibuivan/contacts/internal/platform/dberr"
	"github.com/taibuivan/contacts/internal/platform/postgres"
)

// # User Repository

// PostgresUserRepository implements [UserRepository] using pgx.
type PostgresUserRepository struct {
	db postgres.Querier
}

// NewUserRepository creates a new PostgreSQL implementation of the UserRepository.
func NewUserRepository(db postgres.Querier) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

// selectUser is the projection shared by every single-row lookup.
var selectUser = fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s`,
	schema.Users.Username, schema.Users.Name, schema.Users.Password, schema.Users.Token,
	schema.Users.Table,
)

/*
FindByUsername retrieves a user record by primary key.

Returns:
  - *User: Hydrated account entity
  - error: apperr.NotFound or database errors
*/
func (repository *PostgresUserRepository) FindByUsername(context context.Context, username string) (*User, error) {
	query := selectUser + fmt.Sprintf(` WHERE %s = $1`, schema.Users.Username)

	user := &User{}
	err := repository.db.QueryRow(context, query, username).Scan(
		&user.Username, &user.Name, &user.PasswordHash, &user.Token,
	)
	if err != nil {
		return nil, dberr.Wrap(err, resourceUser)
	}
	return user, nil
}

/*
FindByToken retrieves the user currently holding token.

Returns:
  - *User: Hydrated account entity
  - error: apperr.NotFound or database errors
*/
func (repository *PostgresUserRepository) FindByToken(context context.Context, token string) (*User, error) {
	query := selectUser + fmt.Sprintf(` WHERE %s = $1`, schema.Users.Token)

	user := &User{}
	err := repository.db.QueryRow(context, query, token).Scan(
		&user.Username, &user.Name, &user.PasswordHash, &user.Token,
	)
	if err != nil {
		return nil, dberr.Wrap(err, resourceUser)
	}
	return user, nil
}

// Exists reports whether username is registered.
func (repository *PostgresUserRepository) Exists(context context.Context, username string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`,
		schema.Users.Table, schema.Users.Username,
	)

	var exists bool
	if err := repository.db.QueryRow(context, query, username).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, resourceUser)
	}
	return exists, nil
}

/*
Create persists a new user record.

A concurrent registration that loses the race on the primary key surfaces as
the same 400 the service returns for a known duplicate.
*/
func (repository *PostgresUserRepository) Create(context context.Context, user *User) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3)`,
		schema.Users.Table, schema.Users.Username, schema.Users.Password, schema.Users.Name,
	)

	_, err := repository.db.Exec(context, query, user.Username, user.PasswordHash, user.Name)
	if err != nil {
		if dberr.IsUniqueViolation(err) {
			return apperr.BadRequest(msgUsernameTaken)
		}
		return dberr.Wrap(err, resourceUser)
	}
	return nil
}

/*
Update applies the non-nil fields in one statement.

Nil parameters bind as SQL NULL, which COALESCE turns into "keep the current value".
*/
func (repository *PostgresUserRepository) Update(context context.Context, username string, fields UpdateFields) (*User, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = COALESCE($2, %s), %s = COALESCE($3, %s)
		WHERE %s = $1
		RETURNING %s, %s, %s, %s
	`,
		schema.Users.Table,
		schema.Users.Name, schema.Users.Name, schema.Users.Password, schema.Users.Password,
		schema.Users.Username,
		schema.Users.Username, schema.Users.Name, schema.Users.Password, schema.Users.Token,
	)

	user := &User{}
	err := repository.db.QueryRow(context, query, username, fields.Name, fields.PasswordHash).Scan(
		&user.Username, &user.Name, &user.PasswordHash, &user.Token,
	)
	if err != nil {
		return nil, dberr.Wrap(err, resourceUser)
	}
	return user, nil
}

// SetToken stores token for username. A nil token clears the session.
func (repository *PostgresUserRepository) SetToken(context context.Context, username string, token *string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2 WHERE %s = $1`,
		schema.Users.Table, schema.Users.Token, schema.Users.Username,
	)

	tag, err := repository.db.Exec(context, query, username, token)
	if err != nil {
		return dberr.Wrap(err, resourceUser)
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound(resourceUser)
	}
	return nil
}
