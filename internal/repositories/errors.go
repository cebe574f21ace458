package repositories

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is an expected miss on point lookups, not a fault.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateFeedback signals a second write for an interview that
	// already has a feedback record.
	ErrDuplicateFeedback = errors.New("feedback already exists for interview")

	// ErrStoreUnavailable wraps transient infrastructure faults from the
	// underlying store.
	ErrStoreUnavailable = errors.New("store unavailable")
)

const pgUniqueViolationCode = "23505"

// translate maps driver-level failures onto the repository error taxonomy
// so callers never match on gorm or pg internals.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationCode {
		return ErrDuplicateFeedback
	}

	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}
