package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"patrolwatch/internal/domain"
	"patrolwatch/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ViolationRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewViolationRepo(pool *pgxpool.Pool, logger *slog.Logger) *ViolationRepo {
	return &ViolationRepo{pool: pool, logger: logger}
}

// Open creates an ongoing violation. A partial unique index on
// (officer_id, type) WHERE ended_at IS NULL backs the coalescing rule: a
// second open of the same type surfaces as ErrConflict.
func (p *ViolationRepo) Open(ctx context.Context, violation *domain.Violation) error {
	const op = "postgres.Violation.Open"

	if violation == nil || violation.OfficerID == uuid.Nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if violation.ID == uuid.Nil {
		violation.ID = uuid.New()
	}
	if violation.StartedAt.IsZero() {
		violation.StartedAt = time.Now().UTC()
	}

	const query = `
		INSERT INTO violations (id, officer_id, station_id, type, started_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := p.pool.Exec(ctx, query,
		violation.ID, violation.OfficerID, violation.StationID,
		violation.Type, violation.StartedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (p *ViolationRepo) Ongoing(ctx context.Context, officerID uuid.UUID, vtype domain.ViolationType) (*domain.Violation, error) {
	const op = "postgres.Violation.Ongoing"

	const query = `
		SELECT id, officer_id, station_id, type, started_at, ended_at, duration_minutes,
		       acknowledged, acknowledged_by, acknowledged_at
		FROM violations
		WHERE officer_id = $1 AND type = $2 AND ended_at IS NULL
		LIMIT 1
	`
	var v domain.Violation
	err := p.pool.QueryRow(ctx, query, officerID, vtype).Scan(
		&v.ID, &v.OfficerID, &v.StationID, &v.Type, &v.StartedAt, &v.EndedAt,
		&v.DurationMinutes, &v.Acknowledged, &v.AcknowledgedBy, &v.AcknowledgedAt,
	)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return &v, nil
}

func (p *ViolationRepo) OngoingAll(ctx context.Context, stationID *uuid.UUID) ([]domain.Violation, error) {
	const op = "postgres.Violation.OngoingAll"

	query := `
		SELECT id, officer_id, station_id, type, started_at, ended_at, duration_minutes,
		       acknowledged, acknowledged_by, acknowledged_at
		FROM violations WHERE ended_at IS NULL
	`
	args := []any{}
	if stationID != nil {
		args = append(args, *stationID)
		query += " AND station_id = $1"
	}
	query += " ORDER BY started_at"

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	out := make([]domain.Violation, 0, 8)
	for rows.Next() {
		var v domain.Violation
		if err := rows.Scan(
			&v.ID, &v.OfficerID, &v.StationID, &v.Type, &v.StartedAt, &v.EndedAt,
			&v.DurationMinutes, &v.Acknowledged, &v.AcknowledgedBy, &v.AcknowledgedAt,
		); err != nil {
			return nil, e.WrapError(ctx, op, err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return out, nil
}

func (p *ViolationRepo) Close(ctx context.Context, id uuid.UUID, endedAt time.Time, durationMinutes float64) error {
	const op = "postgres.Violation.Close"

	tag, err := p.pool.Exec(ctx,
		`UPDATE violations SET ended_at = $2, duration_minutes = $3 WHERE id = $1 AND ended_at IS NULL`,
		id, endedAt, durationMinutes,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return nil
}

func (p *ViolationRepo) Acknowledge(ctx context.Context, id, byOfficer uuid.UUID, at time.Time) error {
	const op = "postgres.Violation.Acknowledge"

	tag, err := p.pool.Exec(ctx,
		`UPDATE violations SET acknowledged = true, acknowledged_by = $2, acknowledged_at = $3 WHERE id = $1`,
		id, byOfficer, at,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return nil
}

func (p *ViolationRepo) CountOpen(ctx context.Context, stationID *uuid.UUID) (int64, error) {
	const op = "postgres.Violation.CountOpen"

	query := `SELECT COUNT(*) FROM violations WHERE ended_at IS NULL`
	args := []any{}
	if stationID != nil {
		args = append(args, *stationID)
		query += " AND station_id = $1"
	}

	var cnt int64
	if err := p.pool.QueryRow(ctx, query, args...).Scan(&cnt); err != nil {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return 0, e.WrapError(ctx, op, err)
	}
	return cnt, nil
}
