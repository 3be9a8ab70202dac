package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"patrolwatch/internal/domain"
	"patrolwatch/pkg/e"

	"github.com/google/uuid"
)

type SessionRepository interface {
	Create(ctx context.Context, session *domain.PatrolSession) error
	ActiveByOfficer(ctx context.Context, officerID uuid.UUID) (*domain.PatrolSession, error)
	End(ctx context.Context, sessionID uuid.UUID, endedAt time.Time) error
	AppendBreadcrumb(ctx context.Context, crumb *domain.Breadcrumb) error
	ActiveSessions(ctx context.Context, stationID *uuid.UUID) ([]domain.ActiveSession, error)
	History(ctx context.Context, officerID uuid.UUID, since time.Time) ([]domain.PatrolSession, error)
	Recent(ctx context.Context, stationID *uuid.UUID, since time.Time, perSessionCap int) ([]domain.PatrolSession, error)
}

type PlanRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.PatrolPlan, error)
	Assign(ctx context.Context, assignment *domain.PlanAssignment) error
	ReorderCheckpoints(ctx context.Context, planID uuid.UUID, orderedIDs []uuid.UUID) error
}

type patrolService struct {
	sessions         SessionRepository
	plans            PlanRepository
	events           EventPublisher
	logger           *slog.Logger
	recentSessionCap int
}

func NewPatrolService(sessions SessionRepository, plans PlanRepository, events EventPublisher, logger *slog.Logger, recentSessionCap int) PatrolService {
	if recentSessionCap <= 0 {
		recentSessionCap = 50
	}
	return &patrolService{
		sessions:         sessions,
		plans:            plans,
		events:           events,
		logger:           logger,
		recentSessionCap: recentSessionCap,
	}
}

// StartPatrol always ends with exactly one fresh active session for the
// officer: any prior active session is closed first, never left orphaned.
func (s *patrolService) StartPatrol(ctx context.Context, claim domain.Claim) (*domain.PatrolSession, error) {
	const op = "service.Patrol.Start"

	now := time.Now().UTC()

	prior, err := s.sessions.ActiveByOfficer(ctx, claim.OfficerID)
	switch {
	case err == nil:
		if err := s.sessions.End(ctx, prior.ID, now); err != nil {
			return nil, err
		}
		s.logger.Info("closed prior active session",
			slog.String("officer_id", claim.OfficerID.String()),
			slog.String("session_id", prior.ID.String()),
		)
	case errors.Is(err, e.ErrNotFound):
		// nothing to close
	default:
		return nil, err
	}

	session := &domain.PatrolSession{
		ID:        uuid.New(),
		OfficerID: claim.OfficerID,
		StationID: claim.StationID,
		StartedAt: now,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.logger.Info("patrol started",
		slog.String("officer_id", claim.OfficerID.String()),
		slog.String("session_id", session.ID.String()),
	)
	return session, nil
}

func (s *patrolService) EndPatrol(ctx context.Context, claim domain.Claim) error {
	session, err := s.sessions.ActiveByOfficer(ctx, claim.OfficerID)
	if err != nil {
		return err
	}
	return s.sessions.End(ctx, session.ID, time.Now().UTC())
}

// RecordBreadcrumb auto-creates a session when none is active. Mobile clients
// do not always call start before the GPS fires; this is a documented
// relaxation of the explicit-start rule, not an error path.
func (s *patrolService) RecordBreadcrumb(ctx context.Context, claim domain.Claim, req domain.BreadcrumbRequest) (*domain.Breadcrumb, error) {
	const op = "service.Patrol.RecordBreadcrumb"

	pos := domain.Coordinate{Lat: req.Lat, Lng: req.Lng}
	if !pos.Valid() {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}

	session, err := s.sessions.ActiveByOfficer(ctx, claim.OfficerID)
	if errors.Is(err, e.ErrNotFound) {
		session, err = s.StartPatrol(ctx, claim)
		if err == nil {
			s.logger.Info("session auto-created on first breadcrumb",
				slog.String("officer_id", claim.OfficerID.String()),
			)
		}
	}
	if err != nil {
		return nil, err
	}

	crumb := &domain.Breadcrumb{
		SessionID:  session.ID,
		Position:   pos,
		AccuracyM:  req.AccuracyM,
		SpeedMS:    req.SpeedMS,
		HeadingDeg: req.HeadingDeg,
		CapturedAt: time.Now().UTC(),
	}
	if err := s.sessions.AppendBreadcrumb(ctx, crumb); err != nil {
		return nil, err
	}

	s.publishLocation(ctx, claim, crumb)
	return crumb, nil
}

func (s *patrolService) publishLocation(ctx context.Context, claim domain.Claim, crumb *domain.Breadcrumb) {
	payload, err := json.Marshal(map[string]any{
		"officer_id":  claim.OfficerID,
		"lat":         crumb.Position.Lat,
		"lng":         crumb.Position.Lng,
		"accuracy_m":  crumb.AccuracyM,
		"speed_ms":    crumb.SpeedMS,
		"heading_deg": crumb.HeadingDeg,
		"captured_at": crumb.CapturedAt,
	})
	if err != nil {
		return
	}
	ev := domain.Event{
		Type:     domain.EventLocationUpdated,
		Channels: []string{domain.StationChannel(claim.StationID), domain.BroadcastChannel},
		Data:     payload,
	}
	if err := s.events.Publish(ctx, ev); err != nil {
		// Location pushes are perishable; losing one is cheaper than
		// failing the breadcrumb write.
		s.logger.Warn("location event publish failed", slog.Any("error", err))
	}
}

func (s *patrolService) ActiveSessions(ctx context.Context, stationID *uuid.UUID) ([]domain.ActiveSession, error) {
	return s.sessions.ActiveSessions(ctx, stationID)
}

func (s *patrolService) History(ctx context.Context, officerID uuid.UUID, days int) ([]domain.PatrolSession, error) {
	if days <= 0 {
		days = 7
	}
	since := time.Now().UTC().AddDate(0, 0, -days)
	return s.sessions.History(ctx, officerID, since)
}

func (s *patrolService) Recent(ctx context.Context, stationID *uuid.UUID, hours int) ([]domain.PatrolSession, error) {
	if hours <= 0 {
		hours = 24
	}
	since := time.Now().UTC().Add(-time.Duration(hours) * time.Hour)
	return s.sessions.Recent(ctx, stationID, since, s.recentSessionCap)
}

func (s *patrolService) AssignPlan(ctx context.Context, claim domain.Claim, planID, officerID uuid.UUID, day string) (*domain.PlanAssignment, error) {
	const op = "service.Patrol.AssignPlan"

	if !claim.StationScope() {
		return nil, fmt.Errorf("%s: %w", op, e.ErrForbidden)
	}
	if _, err := time.Parse("2006-01-02", day); err != nil {
		return nil, fmt.Errorf("%s: day must be YYYY-MM-DD: %w", op, e.ErrInvalidInput)
	}

	plan, err := s.plans.Get(ctx, planID)
	if err != nil {
		return nil, err
	}
	if plan.StationID != claim.StationID {
		return nil, fmt.Errorf("%s: %w", op, e.ErrForbidden)
	}

	assignment := &domain.PlanAssignment{
		ID:        uuid.New(),
		PlanID:    planID,
		OfficerID: officerID,
		Day:       day,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.plans.Assign(ctx, assignment); err != nil {
		return nil, err
	}
	return assignment, nil
}

func (s *patrolService) ReorderCheckpoints(ctx context.Context, claim domain.Claim, planID uuid.UUID, orderedIDs []uuid.UUID) error {
	const op = "service.Patrol.ReorderCheckpoints"

	if !claim.StationScope() {
		return fmt.Errorf("%s: %w", op, e.ErrForbidden)
	}
	plan, err := s.plans.Get(ctx, planID)
	if err != nil {
		return err
	}
	if plan.StationID != claim.StationID {
		return fmt.Errorf("%s: %w", op, e.ErrForbidden)
	}
	if len(orderedIDs) != len(plan.CheckpointIDs) {
		return fmt.Errorf("%s: order must cover all %d checkpoints: %w", op, len(plan.CheckpointIDs), e.ErrInvalidInput)
	}
	return s.plans.ReorderCheckpoints(ctx, planID, orderedIDs)
}
