package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/booklocker-backend/internal/domain"
)

// Postgres error codes translated by MapError.
const (
	CodeUniqueViolation     = "23505"
	CodeForeignKeyViolation = "23503"
	CodeCheckViolation      = "23514"
)

// MapError converts pgx/pgconn errors to domain errors.
// context.DeadlineExceeded and context.Canceled are NOT mapped, they pass through.
// Mapped pg errors stay in the chain so ConstraintName still sees them.
// An id of 0 is omitted from the message.
func MapError(err error, entity string, id int64) error {
	if err == nil {
		return nil
	}

	subject := entity
	if id != 0 {
		subject = fmt.Sprintf("%s %d", entity, id)
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", subject, err)
	}

	if errors.Is(err, pgx.ErrNoRows) || pgxscan.NotFound(err) {
		return fmt.Errorf("%s: %w", subject, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case CodeUniqueViolation:
			return fmt.Errorf("%s: %w: %w", subject, domain.ErrAlreadyExists, err)
		case CodeForeignKeyViolation:
			return fmt.Errorf("%s: %w: %w", subject, domain.ErrNotFound, err)
		case CodeCheckViolation:
			return fmt.Errorf("%s: %w: %w", subject, domain.ErrValidation, err)
		}
	}

	return fmt.Errorf("%s: %w", subject, err)
}

// ConstraintName returns the violated constraint name of a pg error, or "".
func ConstraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}
