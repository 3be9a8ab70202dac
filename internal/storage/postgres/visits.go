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

type CheckinRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewCheckinRepo(pool *pgxpool.Pool, logger *slog.Logger) *CheckinRepo {
	return &CheckinRepo{pool: pool, logger: logger}
}

func (p *CheckinRepo) Save(ctx context.Context, event *domain.CheckinEvent) error {
	const op = "postgres.Checkin.Save"

	if event == nil || event.OfficerID == uuid.Nil || !event.Position.Valid() {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.CheckedAt.IsZero() {
		event.CheckedAt = time.Now().UTC()
	}

	const query = `
		INSERT INTO checkins (id, officer_id, zone_id, lat, lng, note, checked_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := p.pool.Exec(ctx, query,
		event.ID, event.OfficerID, event.ZoneID,
		event.Position.Lat, event.Position.Lng,
		event.Note, event.CheckedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (p *CheckinRepo) CountForZone(ctx context.Context, zoneID uuid.UUID, from, to time.Time) (int64, error) {
	const op = "postgres.Checkin.CountForZone"

	const query = `
		SELECT COUNT(*) FROM checkins
		WHERE zone_id = $1 AND checked_at >= $2 AND checked_at < $3
	`
	var cnt int64
	if err := p.pool.QueryRow(ctx, query, zoneID, from, to).Scan(&cnt); err != nil {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return 0, e.WrapError(ctx, op, err)
	}
	return cnt, nil
}

type VisitRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewVisitRepo(pool *pgxpool.Pool, logger *slog.Logger) *VisitRepo {
	return &VisitRepo{pool: pool, logger: logger}
}

func (p *VisitRepo) Create(ctx context.Context, visit *domain.CheckpointVisit) error {
	const op = "postgres.Visit.Create"

	if visit == nil || visit.CheckpointID == uuid.Nil || visit.OfficerID == uuid.Nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if visit.ID == uuid.Nil {
		visit.ID = uuid.New()
	}
	if visit.ArrivedAt.IsZero() {
		visit.ArrivedAt = time.Now().UTC()
	}

	const query = `
		INSERT INTO checkpoint_visits (id, checkpoint_id, officer_id, lat, lng, photo_url, note, arrived_at, left_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULL)
	`
	_, err := p.pool.Exec(ctx, query,
		visit.ID, visit.CheckpointID, visit.OfficerID,
		visit.Position.Lat, visit.Position.Lng,
		visit.PhotoURL, visit.Note, visit.ArrivedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

// MarkLeft closes the officer's most recent open visit at the checkpoint.
func (p *VisitRepo) MarkLeft(ctx context.Context, checkpointID, officerID uuid.UUID, leftAt time.Time) error {
	const op = "postgres.Visit.MarkLeft"

	const query = `
		UPDATE checkpoint_visits SET left_at = $3
		WHERE id = (
			SELECT id FROM checkpoint_visits
			WHERE checkpoint_id = $1 AND officer_id = $2 AND left_at IS NULL
			ORDER BY arrived_at DESC
			LIMIT 1
		)
	`
	tag, err := p.pool.Exec(ctx, query, checkpointID, officerID, leftAt)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return nil
}

func (p *VisitRepo) CountForCheckpoint(ctx context.Context, checkpointID uuid.UUID, from, to time.Time) (int64, error) {
	const op = "postgres.Visit.CountForCheckpoint"

	const query = `
		SELECT COUNT(*) FROM checkpoint_visits
		WHERE checkpoint_id = $1 AND arrived_at >= $2 AND arrived_at < $3
	`
	var cnt int64
	if err := p.pool.QueryRow(ctx, query, checkpointID, from, to).Scan(&cnt); err != nil {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return 0, e.WrapError(ctx, op, err)
	}
	return cnt, nil
}
