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

type SessionRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewSessionRepo(pool *pgxpool.Pool, logger *slog.Logger) *SessionRepo {
	return &SessionRepo{pool: pool, logger: logger}
}

func (p *SessionRepo) Create(ctx context.Context, session *domain.PatrolSession) error {
	const op = "postgres.Session.Create"

	if session == nil || session.OfficerID == uuid.Nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	if session.StartedAt.IsZero() {
		session.StartedAt = time.Now().UTC()
	}

	const query = `
		INSERT INTO patrol_sessions (id, officer_id, station_id, started_at, ended_at)
		VALUES ($1, $2, $3, $4, NULL)
	`
	_, err := p.pool.Exec(ctx, query, session.ID, session.OfficerID, session.StationID, session.StartedAt)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (p *SessionRepo) ActiveByOfficer(ctx context.Context, officerID uuid.UUID) (*domain.PatrolSession, error) {
	const op = "postgres.Session.ActiveByOfficer"

	const query = `
		SELECT id, officer_id, station_id, started_at, ended_at
		FROM patrol_sessions
		WHERE officer_id = $1 AND ended_at IS NULL
		ORDER BY started_at DESC
		LIMIT 1
	`
	var s domain.PatrolSession
	err := p.pool.QueryRow(ctx, query, officerID).Scan(&s.ID, &s.OfficerID, &s.StationID, &s.StartedAt, &s.EndedAt)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return &s, nil
}

func (p *SessionRepo) End(ctx context.Context, sessionID uuid.UUID, endedAt time.Time) error {
	const op = "postgres.Session.End"

	tag, err := p.pool.Exec(ctx,
		`UPDATE patrol_sessions SET ended_at = $2 WHERE id = $1 AND ended_at IS NULL`,
		sessionID, endedAt,
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

// AppendBreadcrumb relies on the bigserial id for per-session ordering:
// insertion order is capture order, which history views depend on.
func (p *SessionRepo) AppendBreadcrumb(ctx context.Context, crumb *domain.Breadcrumb) error {
	const op = "postgres.Session.AppendBreadcrumb"

	if crumb == nil || !crumb.Position.Valid() {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}
	if crumb.CapturedAt.IsZero() {
		crumb.CapturedAt = time.Now().UTC()
	}

	const query = `
		INSERT INTO breadcrumbs (session_id, lat, lng, accuracy_m, speed_ms, heading_deg, captured_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := p.pool.QueryRow(ctx, query,
		crumb.SessionID,
		crumb.Position.Lat, crumb.Position.Lng,
		crumb.AccuracyM, crumb.SpeedMS, crumb.HeadingDeg,
		crumb.CapturedAt,
	).Scan(&crumb.ID)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

// ActiveSessions returns live sessions with their most recent breadcrumb
// only, for dashboard map views.
func (p *SessionRepo) ActiveSessions(ctx context.Context, stationID *uuid.UUID) ([]domain.ActiveSession, error) {
	const op = "postgres.Session.ActiveSessions"

	query := `
		SELECT s.id, s.officer_id, s.station_id, s.started_at,
		       b.id, b.lat, b.lng, b.accuracy_m, b.speed_ms, b.heading_deg, b.captured_at
		FROM patrol_sessions s
		LEFT JOIN LATERAL (
			SELECT id, lat, lng, accuracy_m, speed_ms, heading_deg, captured_at
			FROM breadcrumbs
			WHERE session_id = s.id
			ORDER BY id DESC
			LIMIT 1
		) b ON true
		WHERE s.ended_at IS NULL
	`
	args := make([]any, 0, 1)
	if stationID != nil {
		args = append(args, *stationID)
		query += " AND s.station_id = $1"
	}
	query += " ORDER BY s.started_at"

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	out := make([]domain.ActiveSession, 0, 16)
	for rows.Next() {
		var a domain.ActiveSession
		var (
			bID         *int64
			lat, lng    *float64
			acc, sp, hd *float64
			capturedAt  *time.Time
		)
		if err := rows.Scan(
			&a.Session.ID, &a.Session.OfficerID, &a.Session.StationID, &a.Session.StartedAt,
			&bID, &lat, &lng, &acc, &sp, &hd, &capturedAt,
		); err != nil {
			return nil, e.WrapError(ctx, op, err)
		}
		if bID != nil {
			a.Latest = &domain.Breadcrumb{
				ID:         *bID,
				SessionID:  a.Session.ID,
				Position:   domain.Coordinate{Lat: *lat, Lng: *lng},
				AccuracyM:  acc,
				SpeedMS:    sp,
				HeadingDeg: hd,
				CapturedAt: *capturedAt,
			}
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return out, nil
}

func (p *SessionRepo) History(ctx context.Context, officerID uuid.UUID, since time.Time) ([]domain.PatrolSession, error) {
	const op = "postgres.Session.History"
	return p.listWithBreadcrumbs(ctx, op,
		`SELECT id, officer_id, station_id, started_at, ended_at
		 FROM patrol_sessions
		 WHERE officer_id = $1 AND started_at >= $2
		 ORDER BY started_at DESC`,
		0,
		officerID, since,
	)
}

func (p *SessionRepo) Recent(ctx context.Context, stationID *uuid.UUID, since time.Time, perSessionCap int) ([]domain.PatrolSession, error) {
	const op = "postgres.Session.Recent"

	query := `SELECT id, officer_id, station_id, started_at, ended_at
	          FROM patrol_sessions WHERE started_at >= $1`
	args := []any{since}
	if stationID != nil {
		args = append(args, *stationID)
		query += " AND station_id = $2"
	}
	query += " ORDER BY started_at DESC"

	return p.listWithBreadcrumbs(ctx, op, query, perSessionCap, args...)
}

func (p *SessionRepo) listWithBreadcrumbs(ctx context.Context, op, query string, perSessionCap int, args ...any) ([]domain.PatrolSession, error) {
	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	sessions := make([]domain.PatrolSession, 0, 8)
	for rows.Next() {
		var s domain.PatrolSession
		if err := rows.Scan(&s.ID, &s.OfficerID, &s.StationID, &s.StartedAt, &s.EndedAt); err != nil {
			rows.Close()
			return nil, e.WrapError(ctx, op, err)
		}
		sessions = append(sessions, s)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}

	for i := range sessions {
		crumbs, err := p.breadcrumbsFor(ctx, op, sessions[i].ID, perSessionCap)
		if err != nil {
			return nil, err
		}
		sessions[i].Breadcrumbs = crumbs
	}
	return sessions, nil
}

func (p *SessionRepo) breadcrumbsFor(ctx context.Context, op string, sessionID uuid.UUID, limit int) ([]domain.Breadcrumb, error) {
	query := `
		SELECT id, session_id, lat, lng, accuracy_m, speed_ms, heading_deg, captured_at
		FROM breadcrumbs WHERE session_id = $1 ORDER BY id
	`
	args := []any{sessionID}
	if limit > 0 {
		args = append(args, limit)
		query += " LIMIT $2"
	}

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	crumbs := make([]domain.Breadcrumb, 0, 32)
	for rows.Next() {
		var b domain.Breadcrumb
		if err := rows.Scan(&b.ID, &b.SessionID, &b.Position.Lat, &b.Position.Lng,
			&b.AccuracyM, &b.SpeedMS, &b.HeadingDeg, &b.CapturedAt); err != nil {
			return nil, e.WrapError(ctx, op, err)
		}
		crumbs = append(crumbs, b)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return crumbs, nil
}
