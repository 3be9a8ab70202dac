package service

import (
	"context"

	"patrolwatch/internal/domain"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go
type PatrolService interface {
	StartPatrol(ctx context.Context, claim domain.Claim) (*domain.PatrolSession, error)
	EndPatrol(ctx context.Context, claim domain.Claim) error
	RecordBreadcrumb(ctx context.Context, claim domain.Claim, req domain.BreadcrumbRequest) (*domain.Breadcrumb, error)
	ActiveSessions(ctx context.Context, stationID *uuid.UUID) ([]domain.ActiveSession, error)
	History(ctx context.Context, officerID uuid.UUID, days int) ([]domain.PatrolSession, error)
	Recent(ctx context.Context, stationID *uuid.UUID, hours int) ([]domain.PatrolSession, error)
	AssignPlan(ctx context.Context, claim domain.Claim, planID, officerID uuid.UUID, day string) (*domain.PlanAssignment, error)
	ReorderCheckpoints(ctx context.Context, claim domain.Claim, planID uuid.UUID, orderedIDs []uuid.UUID) error
}

type ComplianceService interface {
	CheckIn(ctx context.Context, claim domain.Claim, req domain.CheckinRequest) (*domain.CheckinEvent, error)
	RecordCheckpointVisit(ctx context.Context, claim domain.Claim, checkpointID uuid.UUID, req domain.CheckpointVisitRequest) (*domain.CheckpointVisit, error)
	MarkCheckpointLeft(ctx context.Context, claim domain.Claim, checkpointID uuid.UUID) error
	Window(ctx context.Context, zoneID uuid.UUID, day string) (*domain.ComplianceWindow, error)
	AcknowledgeViolation(ctx context.Context, claim domain.Claim, violationID uuid.UUID) error
	OngoingViolations(ctx context.Context, stationID *uuid.UUID) ([]domain.Violation, error)
	EvaluateField(ctx context.Context) error
}

type AlertService interface {
	Create(ctx context.Context, claim domain.Claim, req domain.CreateAlertRequest) (*domain.Alert, error)
	Respond(ctx context.Context, claim domain.Claim, alertID uuid.UUID, req domain.RespondAlertRequest) (*domain.Alert, error)
	Resolve(ctx context.Context, alertID uuid.UUID, note string) (*domain.Alert, error)
	MarkFalseAlarm(ctx context.Context, alertID uuid.UUID, note string) (*domain.Alert, error)
	Cancel(ctx context.Context, claim domain.Claim, alertID uuid.UUID) (*domain.Alert, error)
	AverageResponseMinutes(ctx context.Context, stationID *uuid.UUID, sampleSize int) (float64, error)
}

type ZoneService interface {
	Create(ctx context.Context, claim domain.Claim, req domain.CreateZoneRequest) (*domain.Zone, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Zone, error)
	Update(ctx context.Context, claim domain.Claim, id uuid.UUID, req domain.UpdateZoneRequest) (*domain.Zone, error)
	Deactivate(ctx context.Context, claim domain.Claim, id uuid.UUID) error
	ActiveZones(ctx context.Context, stationID *uuid.UUID, kind domain.ZoneKind) ([]domain.Zone, error)
	Nearby(ctx context.Context, point domain.Coordinate, radiusKm float64, kind domain.ZoneKind) ([]domain.ZoneMatch, error)
}

type StatsService interface {
	GetStats(ctx context.Context, req domain.StatsRequest) (*domain.Stats, error)
}

// EventPublisher hands realtime events to the fan-out path. Implementations
// must not block the caller on slow observers.
type EventPublisher interface {
	Publish(ctx context.Context, ev domain.Event) error
}

type Service struct {
	Patrol     PatrolService
	Compliance ComplianceService
	Alerts     AlertService
	Zones      ZoneService
	Stats      StatsService
}

func NewService(
	patrol PatrolService,
	compliance ComplianceService,
	alerts AlertService,
	zones ZoneService,
	stats StatsService,
) *Service {
	return &Service{
		Patrol:     patrol,
		Compliance: compliance,
		Alerts:     alerts,
		Zones:      zones,
		Stats:      stats,
	}
}
