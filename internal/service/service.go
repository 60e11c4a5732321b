// Package service implements the domain logic for the QHSE supply-chain
// service: suppliers, non-conformities, KPIs, and the audit-log read side.
// Event-producing mutations write their outbox row in the same transaction
// as the business change.
package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflict")
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// ── shared helpers ────────────────────────────────────────────────────────

// validatePage bounds-checks pagination and applies the default limit.
func validatePage(limit, offset int) (int32, int32, error) {
	if limit == 0 {
		limit = defaultPageLimit
	}
	if limit < 1 || limit > maxPageLimit {
		return 0, 0, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidInput, maxPageLimit)
	}
	if offset < 0 {
		return 0, 0, fmt.Errorf("%w: offset must be >= 0", ErrInvalidInput)
	}
	return int32(limit), int32(offset), nil
}

// parseExpiry converts an optional YYYY-MM-DD wire date to a typed column
// value. Malformed strings are rejected rather than stored and compared raw.
func parseExpiry(expiry *string) (pgtype.Date, error) {
	if expiry == nil || *expiry == "" {
		return pgtype.Date{}, nil
	}
	t, err := time.Parse("2006-01-02", *expiry)
	if err != nil {
		return pgtype.Date{}, fmt.Errorf("%w: certification_expiry must be YYYY-MM-DD", ErrInvalidInput)
	}
	return pgtype.Date{Time: t, Valid: true}, nil
}

// today returns the current calendar date as a typed column value.
func today() pgtype.Date {
	return pgtype.Date{Time: time.Now().UTC().Truncate(24 * time.Hour), Valid: true}
}

// isUniqueViolation reports whether err is a Postgres unique-constraint error.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
