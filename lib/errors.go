package lib

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Request errors, mapped to HTTP statuses by the handlers.
var (
	ErrMissingFields = errors.New("missing required fields")
	ErrNotFound      = errors.New("not found")
	ErrConflict      = errors.New("conflict")
)

// MapPgError translates well-known postgres SQLSTATEs into sentinel errors.
// Everything else passes through unchanged so the underlying message reaches
// the caller as a storage failure.
func MapPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return ErrConflict
		case "P0002": // no_data_found
			return ErrNotFound
		}
	}
	return err
}
