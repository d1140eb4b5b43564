package repositories

import (
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrNotFound replaces sql.ErrNoRows at the repository boundary.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned when an insert loses a unique-constraint race.
	// Callers resolve it by re-reading the winning row.
	ErrConflict = errors.New("unique constraint conflict")
)

const uniqueViolation = "23505"

// mapInsertErr translates a Postgres unique violation into ErrConflict and
// passes everything else through.
func mapInsertErr(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return ErrConflict
	}
	return err
}
