package postgres

import (
	"errors"

	"github.com/lib/pq"
)

// Postgres error code for foreign key constraint violations.
const fkViolationCode = "23503"

// isForeignKeyViolation reports whether err is a Postgres foreign key
// constraint error, i.e. a write referenced a volunteer id that does
// not exist.
func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == fkViolationCode
}
