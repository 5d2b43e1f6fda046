package address

import (
	"context"
	"fmt"

	"github.com/taibuivan/contacts/internal/platform/apperr"
	"github.com/taibuivan/contacts/internal/platform/database/schema"
	"github.com/taibuivan/contacts/internal/platform/dberr"
	"github.com/taibuivan/contacts/internal/platform/postgres"
)

type PostgresRepository struct {
	db postgres.Querier
}

func NewPostgresRepository(db postgres.Querier) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var columns = schema.List(schema.Addresses.Columns())

type scanner interface {
	Scan(dest ...any) error
}

func scanAddress(row scanner) (*Address, error) {
	a := &Address{}
	if err := row.Scan(&a.ID, &a.Street, &a.City, &a.Province, &a.Country, &a.PostalCode); err != nil {
		return nil, err
	}
	return a, nil
}

func (repository *PostgresRepository) Create(context context.Context, contactID int64, input Input) (*Address, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s
	`,
		schema.Addresses.Table, schema.Addresses.Street, schema.Addresses.City, schema.Addresses.Province,
		schema.Addresses.Country, schema.Addresses.PostalCode, schema.Addresses.ContactID,
		columns,
	)

	row := repository.db.QueryRow(context, query,
		input.Street, input.City, input.Province, input.Country, input.PostalCode, contactID,
	)
	a, err := scanAddress(row)
	return a, dberr.Wrap(err, resourceAddress)
}

func (repository *PostgresRepository) Get(context context.Context, contactID, id int64) (*Address, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s = $2`,
		columns, schema.Addresses.Table, schema.Addresses.ID, schema.Addresses.ContactID,
	)

	a, err := scanAddress(repository.db.QueryRow(context, query, id, contactID))
	return a, dberr.Wrap(err, resourceAddress)
}

func (repository *PostgresRepository) Update(context context.Context, contactID, id int64, input Input) (*Address, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $3, %s = $4, %s = $5, %s = $6, %s = $7
		WHERE %s = $1 AND %s = $2
		RETURNING %s
	`,
		schema.Addresses.Table,
		schema.Addresses.Street, schema.Addresses.City, schema.Addresses.Province,
		schema.Addresses.Country, schema.Addresses.PostalCode,
		schema.Addresses.ID, schema.Addresses.ContactID,
		columns,
	)

	row := repository.db.QueryRow(context, query,
		id, contactID, input.Street, input.City, input.Province, input.Country, input.PostalCode,
	)
	a, err := scanAddress(row)
	return a, dberr.Wrap(err, resourceAddress)
}

func (repository *PostgresRepository) Delete(context context.Context, contactID, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		schema.Addresses.Table, schema.Addresses.ID, schema.Addresses.ContactID,
	)

	cmd, err := repository.db.Exec(context, query, id, contactID)
	if err != nil {
		return dberr.Wrap(err, resourceAddress)
	}

	if cmd.RowsAffected() != 1 {
		return apperr.NotFound(resourceAddress)
	}
	return nil
}

func (repository *PostgresRepository) List(context context.Context, contactID int64) ([]*Address, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s ASC`,
		columns, schema.Addresses.Table, schema.Addresses.ContactID, schema.Addresses.ID,
	)

	rows, err := repository.db.Query(context, query, contactID)
	if err != nil {
		return nil, dberr.Wrap(err, resourceAddress)
	}
	defer rows.Close()

	addresses := []*Address{}
	for rows.Next() {
		a, err := scanAddress(rows)
		if err != nil {
			return nil, dberr.Wrap(err, resourceAddress)
		}
		addresses = append(addresses, a)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, resourceAddress)
	}
	return addresses, nil
}
