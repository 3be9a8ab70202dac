package postgres

import (
	"context"
	"time"

	"patrolwatch/internal/domain"

	"github.com/google/uuid"
)

type ZoneRepository interface {
	Create(ctx context.Context, zone *domain.Zone) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Zone, error)
	Update(ctx context.Context, zone *domain.Zone) error
	Deactivate(ctx context.Context, id uuid.UUID) error // soft delete only
	ListActive(ctx context.Context, stationID *uuid.UUID, kind domain.ZoneKind) ([]domain.Zone, error)
}

type SessionRepository interface {
	Create(ctx context.Context, session *domain.PatrolSession) error
	ActiveByOfficer(ctx context.Context, officerID uuid.UUID) (*domain.PatrolSession, error)
	End(ctx context.Context, sessionID uuid.UUID, endedAt time.Time) error
	AppendBreadcrumb(ctx context.Context, crumb *domain.Breadcrumb) error
	ActiveSessions(ctx context.Context, stationID *uuid.UUID) ([]domain.ActiveSession, error)
	History(ctx context.Context, officerID uuid.UUID, since time.Time) ([]domain.PatrolSession, error)
	Recent(ctx context.Context, stationID *uuid.UUID, since time.Time, perSessionCap int) ([]domain.PatrolSession, error)
}

type CheckinRepository interface {
	Save(ctx context.Context, event *domain.CheckinEvent) error
	CountForZone(ctx context.Context, zoneID uuid.UUID, from, to time.Time) (int64, error)
}

type VisitRepository interface {
	Create(ctx context.Context, visit *domain.CheckpointVisit) error
	MarkLeft(ctx context.Context, checkpointID, officerID uuid.UUID, leftAt time.Time) error
	CountForCheckpoint(ctx context.Context, checkpointID uuid.UUID, from, to time.Time) (int64, error)
}

type PlanRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.PatrolPlan, error)
	Assign(ctx context.Context, assignment *domain.PlanAssignment) error
	ReorderCheckpoints(ctx context.Context, planID uuid.UUID, orderedIDs []uuid.UUID) error
}

type AlertRepository interface {
	Create(ctx context.Context, alert *domain.Alert) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Alert, error)
	AddResponse(ctx context.Context, response *domain.AlertResponse) error
	MarkResponding(ctx context.Context, alertID, responderID uuid.UUID, at time.Time) error
	Close(ctx context.Context, alertID uuid.UUID, status domain.AlertStatus, note string, at time.Time) error
	RecentResponded(ctx context.Context, stationID *uuid.UUID, limit int) ([]domain.Alert, error)
}

type ViolationRepository interface {
	Open(ctx context.Context, violation *domain.Violation) error
	Ongoing(ctx context.Context, officerID uuid.UUID, vtype domain.ViolationType) (*domain.Violation, error)
	OngoingAll(ctx context.Context, stationID *uuid.UUID) ([]domain.Violation, error)
	Close(ctx context.Context, id uuid.UUID, endedAt time.Time, durationMinutes float64) error
	Acknowledge(ctx context.Context, id, byOfficer uuid.UUID, at time.Time) error
	CountOpen(ctx context.Context, stationID *uuid.UUID) (int64, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, notification *domain.Notification) error
}

type StatsRepository interface {
	CountActiveOfficers(ctx context.Context, stationID *uuid.UUID, since time.Time) (int64, error)
	CountBreadcrumbs(ctx context.Context, stationID *uuid.UUID, since time.Time) (int64, error)
}
