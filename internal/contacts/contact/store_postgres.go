package contact

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/taibuivan/contacts/internal/platform/apperr"
	"github.com/taibuivan/contacts/internal/platform/database/schema"
	"github.com/taibuivan/contacts/internal/platform/dberr"
	"github.com/taibuivan/contacts/internal/platform/postgres"
	"github.com/taibuivan/contacts/pkg/pagination"
)

type PostgresRepository struct {
	db postgres.Querier
}

func NewPostgresRepository(db postgres.Querier) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var columns = schema.List(schema.Contacts.Columns())

type scanner interface {
	Scan(dest ...any) error
}

func scanContact(row scanner) (*Contact, error) {
	c := &Contact{}
	if err := row.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone); err != nil {
		return nil, err
	}
	return c, nil
}

func (repository *PostgresRepository) Create(context context.Context, username string, input Input) (*Contact, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s
	`,
		schema.Contacts.Table, schema.Contacts.FirstName, schema.Contacts.LastName, schema.Contacts.Email,
		schema.Contacts.Phone, schema.Contacts.Username,
		columns,
	)

	row := repository.db.QueryRow(context, query, input.FirstName, input.LastName, input.Email, input.Phone, username)
	c, err := scanContact(row)
	return c, dberr.Wrap(err, resourceContact)
}

func (repository *PostgresRepository) Get(context context.Context, username string, id int64) (*Contact, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s = $2`,
		columns, schema.Contacts.Table, schema.Contacts.ID, schema.Contacts.Username,
	)

	c, err := scanContact(repository.db.QueryRow(context, query, id, username))
	return c, dberr.Wrap(err, resourceContact)
}

func (repository *PostgresRepository) Update(context context.Context, username string, id int64, input Input) (*Contact, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $3, %s = $4, %s = $5, %s = $6
		WHERE %s = $1 AND %s = $2
		RETURNING %s
	`,
		schema.Contacts.Table,
		schema.Contacts.FirstName, schema.Contacts.LastName, schema.Contacts.Email, schema.Contacts.Phone,
		schema.Contacts.ID, schema.Contacts.Username,
		columns,
	)

	row := repository.db.QueryRow(context, query, id, username, input.FirstName, input.LastName, input.Email, input.Phone)
	c, err := scanContact(row)
	return c, dberr.Wrap(err, resourceContact)
}

func (repository *PostgresRepository) Delete(context context.Context, username string, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		schema.Contacts.Table, schema.Contacts.ID, schema.Contacts.Username,
	)

	cmd, err := repository.db.Exec(context, query, id, username)
	if err != nil {
		return dberr.Wrap(err, resourceContact)
	}

	if cmd.RowsAffected() != 1 {
		return apperr.NotFound(resourceContact)
	}
	return nil
}

func (repository *PostgresRepository) Exists(context context.Context, username string, id int64) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1 AND %s = $2)`,
		schema.Contacts.Table, schema.Contacts.ID, schema.Contacts.Username,
	)

	var exists bool
	if err := repository.db.QueryRow(context, query, id, username).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, resourceContact)
	}
	return exists, nil
}

// Search runs the filtered count and the page query with the same WHERE clause.
func (repository *PostgresRepository) Search(context context.Context, username string, filter Filter, params pagination.Params) ([]*Contact, int, error) {
	where, args := searchClause(username, filter)

	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s`, schema.Contacts.Table, where)

	var total int
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, resourceContact)
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s ORDER BY %s ASC LIMIT $%s OFFSET $%s`,
		columns, schema.Contacts.Table, where, schema.Contacts.ID,
		itos(len(args)+1), itos(len(args)+2),
	)
	args = append(args, params.Limit(), params.Offset())

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, resourceContact)
	}
	defer rows.Close()

	contacts := []*Contact{}
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, resourceContact)
		}
		contacts = append(contacts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, resourceContact)
	}
	return contacts, total, nil
}

// searchClause builds the owner predicate plus one ILIKE group per non-empty filter.
func searchClause(username string, filter Filter) (string, []any) {
	conditions := []string{schema.Contacts.Username + " = $1"}
	args := []any{username}

	if filter.Name != "" {
		args = append(args, likePattern(filter.Name))
		n := itos(len(args))
		conditions = append(conditions, fmt.Sprintf("(%s ILIKE $%s OR %s ILIKE $%s)",
			schema.Contacts.FirstName, n, schema.Contacts.LastName, n))
	}
	if filter.Email != "" {
		args = append(args, likePattern(filter.Email))
		conditions = append(conditions, fmt.Sprintf("%s ILIKE $%s", schema.Contacts.Email, itos(len(args))))
	}
	if filter.Phone != "" {
		args = append(args, likePattern(filter.Phone))
		conditions = append(conditions, fmt.Sprintf("%s ILIKE $%s", schema.Contacts.Phone, itos(len(args))))
	}

	return strings.Join(conditions, " AND "), args
}

// likeEscaper makes user input match literally inside a LIKE pattern.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func likePattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

func itos(i int) string {
	return strconv.Itoa(i)
}
