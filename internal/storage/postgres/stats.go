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

type NotificationRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewNotificationRepo(pool *pgxpool.Pool, logger *slog.Logger) *NotificationRepo {
	return &NotificationRepo{pool: pool, logger: logger}
}

func (p *NotificationRepo) Create(ctx context.Context, notification *domain.Notification) error {
	const op = "postgres.Notification.Create"

	if notification == nil || notification.Title == "" {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if notification.ID == uuid.Nil {
		notification.ID = uuid.New()
	}
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = time.Now().UTC()
	}

	const query = `
		INSERT INTO notifications (id, officer_id, station_id, title, body, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := p.pool.Exec(ctx, query,
		notification.ID, notification.OfficerID, notification.StationID,
		notification.Title, notification.Body, notification.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

type StatsRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewStatsRepo(pool *pgxpool.Pool, logger *slog.Logger) *StatsRepo {
	return &StatsRepo{pool: pool, logger: logger}
}

// CountActiveOfficers counts distinct officers with a breadcrumb since the
// cutoff, which is the dashboard's "active" signal.
func (p *StatsRepo) CountActiveOfficers(ctx context.Context, stationID *uuid.UUID, since time.Time) (int64, error) {
	const op = "postgres.Stats.CountActiveOfficers"

	query := `
		SELECT COUNT(DISTINCT s.officer_id)
		FROM breadcrumbs b
		JOIN patrol_sessions s ON s.id = b.session_id
		WHERE b.captured_at >= $1
	`
	args := []any{since}
	if stationID != nil {
		args = append(args, *stationID)
		query += " AND s.station_id = $2"
	}

	var cnt int64
	if err := p.pool.QueryRow(ctx, query, args...).Scan(&cnt); err != nil {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return 0, e.WrapError(ctx, op, err)
	}
	return cnt, nil
}

func (p *StatsRepo) CountBreadcrumbs(ctx context.Context, stationID *uuid.UUID, since time.Time) (int64, error) {
	const op = "postgres.Stats.CountBreadcrumbs"

	query := `
		SELECT COUNT(*)
		FROM breadcrumbs b
		JOIN patrol_sessions s ON s.id = b.session_id
		WHERE b.captured_at >= $1
	`
	args := []any{since}
	if stationID != nil {
		args = append(args, *stationID)
		query += " AND s.station_id = $2"
	}

	var cnt int64
	if err := p.pool.QueryRow(ctx, query, args...).Scan(&cnt); err != nil {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return 0, e.WrapError(ctx, op, err)
	}
	return cnt, nil
}
