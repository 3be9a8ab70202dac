package e

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func Wrap(message string, err error) error {
	return fmt.Errorf("%s: %w", message, err)
}

var (
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrInvalidState       = errors.New("invalid state")
	ErrForbidden          = errors.New("forbidden")
	ErrOutOfRange         = errors.New("out of range")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInternal           = errors.New("internal error")
	ErrDeadline           = errors.New("deadline exceeded")
	ErrCanceled           = errors.New("context canceled")
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrQueueEmpty         = errors.New("queue is empty")
)

// OutOfRangeError reports a failed geofence check with enough detail for the
// caller to render "you are N m away, must be within M m".
type OutOfRangeError struct {
	DistanceMeters int
	RadiusMeters   int
}

func (o *OutOfRangeError) Error() string {
	return fmt.Sprintf("out of range: %d m away, must be within %d m", o.DistanceMeters, o.RadiusMeters)
}

func (o *OutOfRangeError) Unwrap() error { return ErrOutOfRange }

// WrapError maps driver-level and context errors onto the package sentinels
// so callers can branch with errors.Is without importing pgx.
func WrapError(ctx context.Context, op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, ErrDeadline)
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, ErrCanceled)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return fmt.Errorf("%s: %w", op, ErrConflict)
		case "23503", "23514":
			return fmt.Errorf("%s: %w", op, ErrInvalidInput)
		default:
			return fmt.Errorf("%s: pg error %s: %w", op, pgErr.Code, ErrInternal)
		}
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return fmt.Errorf("%s: %w", op, ErrInternal)
}
