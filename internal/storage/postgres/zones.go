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

type ZoneRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewZoneRepo(pool *pgxpool.Pool, logger *slog.Logger) *ZoneRepo {
	return &ZoneRepo{pool: pool, logger: logger}
}

const zoneColumns = `id, name, kind, lat, lng, radius_m, station_id, active, risk_level, required_visits, sequence, timezone, created_at`

func (p *ZoneRepo) Create(ctx context.Context, zone *domain.Zone) error {
	const op = "postgres.Zone.Create"

	if zone == nil || !zone.Center.Valid() || zone.RadiusM <= 0 {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	if zone.ID == uuid.Nil {
		zone.ID = uuid.New()
	}
	if zone.CreatedAt.IsZero() {
		zone.CreatedAt = time.Now().UTC()
	}

	const query = `
		INSERT INTO zones (` + zoneColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err := p.pool.Exec(ctx, query,
		zone.ID, zone.Name, zone.Kind,
		zone.Center.Lat, zone.Center.Lng, zone.RadiusM,
		zone.StationID, zone.Active,
		zone.RiskLevel, zone.RequiredVisits, zone.Sequence,
		zone.Timezone, zone.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (p *ZoneRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Zone, error) {
	const op = "postgres.Zone.Get"

	const query = `SELECT ` + zoneColumns + ` FROM zones WHERE id = $1`

	var z domain.Zone
	err := p.pool.QueryRow(ctx, query, id).Scan(
		&z.ID, &z.Name, &z.Kind,
		&z.Center.Lat, &z.Center.Lng, &z.RadiusM,
		&z.StationID, &z.Active,
		&z.RiskLevel, &z.RequiredVisits, &z.Sequence,
		&z.Timezone, &z.CreatedAt,
	)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return &z, nil
}

func (p *ZoneRepo) Update(ctx context.Context, zone *domain.Zone) error {
	const op = "postgres.Zone.Update"

	if zone == nil || !zone.Center.Valid() || zone.RadiusM <= 0 {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	const query = `
		UPDATE zones
		SET name = $2, lat = $3, lng = $4, radius_m = $5,
		    risk_level = $6, required_visits = $7, sequence = $8
		WHERE id = $1
	`
	tag, err := p.pool.Exec(ctx, query,
		zone.ID, zone.Name,
		zone.Center.Lat, zone.Center.Lng, zone.RadiusM,
		zone.RiskLevel, zone.RequiredVisits, zone.Sequence,
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

// Deactivate flips active off. Zones are never hard-deleted so historical
// visit records keep their reference.
func (p *ZoneRepo) Deactivate(ctx context.Context, id uuid.UUID) error {
	const op = "postgres.Zone.Deactivate"

	tag, err := p.pool.Exec(ctx, `UPDATE zones SET active = false WHERE id = $1`, id)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return nil
}

func (p *ZoneRepo) ListActive(ctx context.Context, stationID *uuid.UUID, kind domain.ZoneKind) ([]domain.Zone, error) {
	const op = "postgres.Zone.ListActive"

	query := `SELECT ` + zoneColumns + ` FROM zones WHERE active = true`
	args := make([]any, 0, 2)
	if stationID != nil {
		args = append(args, *stationID)
		query += fmt.Sprintf(" AND station_id = $%d", len(args))
	}
	if kind != "" {
		args = append(args, kind)
		query += fmt.Sprintf(" AND kind = $%d", len(args))
	}
	query += " ORDER BY created_at"

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	zones := make([]domain.Zone, 0, 16)
	for rows.Next() {
		var z domain.Zone
		if err := rows.Scan(
			&z.ID, &z.Name, &z.Kind,
			&z.Center.Lat, &z.Center.Lng, &z.RadiusM,
			&z.StationID, &z.Active,
			&z.RiskLevel, &z.RequiredVisits, &z.Sequence,
			&z.Timezone, &z.CreatedAt,
		); err != nil {
			return nil, e.WrapError(ctx, op, err)
		}
		zones = append(zones, z)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return zones, nil
}
