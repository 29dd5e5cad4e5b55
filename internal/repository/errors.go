package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrDuplicateTrackingID signals a tracking-ID collision on insert. Callers
// retry with a freshly generated ID.
var ErrDuplicateTrackingID = errors.New("duplicate tracking id")

// ErrDuplicateDepartment signals an active (city, issueType) pair already exists.
var ErrDuplicateDepartment = errors.New("duplicate active department")

// ErrDuplicateEmail signals the user email is already registered.
var ErrDuplicateEmail = errors.New("email already registered")

const uniqueViolationCode = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
