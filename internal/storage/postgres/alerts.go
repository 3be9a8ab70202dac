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

type AlertRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewAlertRepo(pool *pgxpool.Pool, logger *slog.Logger) *AlertRepo {
	return &AlertRepo{pool: pool, logger: logger}
}

const alertColumns = `id, officer_id, station_id, type, status, lat, lng, message, created_at, responded_at, responded_by, resolved_at, resolution_note`

func (p *AlertRepo) Create(ctx context.Context, alert *domain.Alert) error {
	const op = "postgres.Alert.Create"

	if alert == nil || alert.OfficerID == uuid.Nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if alert.ID == uuid.Nil {
		alert.ID = uuid.New()
	}
	if alert.CreatedAt.IsZero() {
		alert.CreatedAt = time.Now().UTC()
	}
	if alert.Status == "" {
		alert.Status = domain.AlertActive
	}

	const query = `
		INSERT INTO alerts (id, officer_id, station_id, type, status, lat, lng, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := p.pool.Exec(ctx, query,
		alert.ID, alert.OfficerID, alert.StationID,
		alert.Type, alert.Status,
		alert.Position.Lat, alert.Position.Lng,
		alert.Message, alert.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (p *AlertRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Alert, error) {
	const op = "postgres.Alert.Get"

	var a domain.Alert
	err := p.pool.QueryRow(ctx, `SELECT `+alertColumns+` FROM alerts WHERE id = $1`, id).Scan(
		&a.ID, &a.OfficerID, &a.StationID, &a.Type, &a.Status,
		&a.Position.Lat, &a.Position.Lng, &a.Message, &a.CreatedAt,
		&a.RespondedAt, &a.RespondedBy, &a.ResolvedAt, &a.ResolutionNote,
	)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}

	rows, err := p.pool.Query(ctx, `
		SELECT id, alert_id, officer_id, message, lat, lng, eta_minutes, created_at
		FROM alert_responses WHERE alert_id = $1 ORDER BY created_at
	`, id)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	for rows.Next() {
		var r domain.AlertResponse
		var lat, lng *float64
		if err := rows.Scan(&r.ID, &r.AlertID, &r.OfficerID, &r.Message, &lat, &lng, &r.EtaMinutes, &r.CreatedAt); err != nil {
			return nil, e.WrapError(ctx, op, err)
		}
		if lat != nil && lng != nil {
			r.Position = &domain.Coordinate{Lat: *lat, Lng: *lng}
		}
		a.Responses = append(a.Responses, r)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return &a, nil
}

func (p *AlertRepo) AddResponse(ctx context.Context, response *domain.AlertResponse) error {
	const op = "postgres.Alert.AddResponse"

	if response == nil || response.AlertID == uuid.Nil || response.OfficerID == uuid.Nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if response.ID == uuid.Nil {
		response.ID = uuid.New()
	}
	if response.CreatedAt.IsZero() {
		response.CreatedAt = time.Now().UTC()
	}

	var lat, lng *float64
	if response.Position != nil {
		lat, lng = &response.Position.Lat, &response.Position.Lng
	}

	const query = `
		INSERT INTO alert_responses (id, alert_id, officer_id, message, lat, lng, eta_minutes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := p.pool.Exec(ctx, query,
		response.ID, response.AlertID, response.OfficerID,
		response.Message, lat, lng, response.EtaMinutes, response.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

// MarkResponding transitions ACTIVE to RESPONDING and stamps the first
// responder. The status guard in the WHERE clause makes the transition a
// no-op once a responder is already recorded, so respondedAt is written at
// most once.
func (p *AlertRepo) MarkResponding(ctx context.Context, alertID, responderID uuid.UUID, at time.Time) error {
	const op = "postgres.Alert.MarkResponding"

	const query = `
		UPDATE alerts
		SET status = $4, responded_at = $3, responded_by = $2
		WHERE id = $1 AND status = $5
	`
	_, err := p.pool.Exec(ctx, query, alertID, responderID, at, domain.AlertResponding, domain.AlertActive)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (p *AlertRepo) Close(ctx context.Context, alertID uuid.UUID, status domain.AlertStatus, note string, at time.Time) error {
	const op = "postgres.Alert.Close"

	if !status.Terminal() {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	const query = `
		UPDATE alerts SET status = $2, resolved_at = $3, resolution_note = $4
		WHERE id = $1
	`
	tag, err := p.pool.Exec(ctx, query, alertID, status, at, note)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return nil
}

// RecentResponded returns the most recent alerts carrying a responded_at,
// newest first, for response-time statistics.
func (p *AlertRepo) RecentResponded(ctx context.Context, stationID *uuid.UUID, limit int) ([]domain.Alert, error) {
	const op = "postgres.Alert.RecentResponded"

	if limit <= 0 {
		limit = 100
	}

	query := `SELECT ` + alertColumns + ` FROM alerts WHERE responded_at IS NOT NULL`
	args := []any{}
	if stationID != nil {
		args = append(args, *stationID)
		query += fmt.Sprintf(" AND station_id = $%d", len(args))
	}
	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", len(args))

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	alerts := make([]domain.Alert, 0, limit)
	for rows.Next() {
		var a domain.Alert
		if err := rows.Scan(
			&a.ID, &a.OfficerID, &a.StationID, &a.Type, &a.Status,
			&a.Position.Lat, &a.Position.Lng, &a.Message, &a.CreatedAt,
			&a.RespondedAt, &a.RespondedBy, &a.ResolvedAt, &a.ResolutionNote,
		); err != nil {
			return nil, e.WrapError(ctx, op, err)
		}
		alerts = append(alerts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return alerts, nil
}
