package postgres

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"clienthub/internal/model"
	"clienthub/internal/repository"
)

// pgForeignKeyViolation is the PostgreSQL error code for FK violations.
const pgForeignKeyViolation = "23503"

// mapWriteError translates driver-level FK violations into the repository
// sentinel so callers never depend on pgconn.
func mapWriteError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return repository.ErrInvalidReference
	}
	return err
}

// nullDate converts an optional model date to a driver-friendly value.
func nullDate(d *model.Date) any {
	if d == nil {
		return nil
	}
	return d.Time()
}

// dateFromNull converts a scanned nullable DATE back to the model type.
func dateFromNull(nt sql.NullTime) *model.Date {
	if !nt.Valid {
		return nil
	}
	d := model.NewDate(nt.Time)
	return &d
}
