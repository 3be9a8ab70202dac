package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"patrolwatch/internal/domain"
	"patrolwatch/internal/service"
	mock_service "patrolwatch/internal/service/mocks"
	"patrolwatch/pkg/e"
)

type complianceMocks struct {
	zones         *mock_service.MockZoneSource
	checkins      *mock_service.MockCheckinRepository
	visits        *mock_service.MockVisitRepository
	violations    *mock_service.MockViolationRepository
	sessions      *mock_service.MockSessionRepository
	notifications *mock_service.MockNotificationRepository
	events        *mock_service.MockEventPublisher
}

func newComplianceService(t *testing.T, staleAfter time.Duration) (service.ComplianceService, complianceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := complianceMocks{
		zones:         mock_service.NewMockZoneSource(ctrl),
		checkins:      mock_service.NewMockCheckinRepository(ctrl),
		visits:        mock_service.NewMockVisitRepository(ctrl),
		violations:    mock_service.NewMockViolationRepository(ctrl),
		sessions:      mock_service.NewMockSessionRepository(ctrl),
		notifications: mock_service.NewMockNotificationRepository(ctrl),
		events:        mock_service.NewMockEventPublisher(ctrl),
	}
	svc := service.NewComplianceService(
		m.zones, m.checkins, m.visits, m.violations,
		m.sessions, m.notifications, m.events,
		newTestLogger(), staleAfter,
	)
	return svc, m
}

func TestCheckIn_AutoAssignsEnclosingRiskZone(t *testing.T) {
	t.Parallel()

	svc, m := newComplianceService(t, 5*time.Minute)
	claim := officerClaim()

	zone := domain.Zone{
		ID:      uuid.New(),
		Kind:    domain.ZoneRisk,
		Center:  domain.Coordinate{Lat: 55.7500, Lng: 37.6100},
		RadiusM: 500,
		Active:  true,
	}
	m.zones.EXPECT().
		ActiveZones(gomock.Any(), gomock.Any(), domain.ZoneRisk).
		Return([]domain.Zone{zone}, nil).
		Times(1)

	var saved *domain.CheckinEvent
	m.checkins.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ev *domain.CheckinEvent) error {
			saved = ev
			return nil
		}).
		Times(1)

	_, err := svc.CheckIn(context.Background(), claim, domain.CheckinRequest{Lat: 55.7501, Lng: 37.6101})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if saved.ZoneID == nil || *saved.ZoneID != zone.ID {
		t.Fatal("check-in not credited to the enclosing risk zone")
	}
}

func TestCheckIn_UnassignedStillPersisted(t *testing.T) {
	t.Parallel()

	svc, m := newComplianceService(t, 5*time.Minute)
	claim := officerClaim()

	// nearest zone exists but the officer is far outside its radius
	zone := domain.Zone{
		ID:      uuid.New(),
		Kind:    domain.ZoneRisk,
		Center:  domain.Coordinate{Lat: 55.7500, Lng: 37.6100},
		RadiusM: 100,
		Active:  true,
	}
	m.zones.EXPECT().
		ActiveZones(gomock.Any(), gomock.Any(), domain.ZoneRisk).
		Return([]domain.Zone{zone}, nil).
		Times(1)

	var saved *domain.CheckinEvent
	m.checkins.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ev *domain.CheckinEvent) error {
			saved = ev
			return nil
		}).
		Times(1)

	_, err := svc.CheckIn(context.Background(), claim, domain.CheckinRequest{Lat: 55.8500, Lng: 37.6100})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if saved.ZoneID != nil {
		t.Fatal("out-of-zone check-in should stay unassigned")
	}
}

func TestCheckpointVisit_OutOfRange(t *testing.T) {
	t.Parallel()

	svc, m := newComplianceService(t, 5*time.Minute)
	claim := officerClaim()

	checkpoint := &domain.Zone{
		ID:      uuid.New(),
		Kind:    domain.ZoneCheckpoint,
		Center:  domain.Coordinate{Lat: 55.7500, Lng: 37.6100},
		RadiusM: 50,
		Active:  true,
	}
	m.zones.EXPECT().Get(gomock.Any(), checkpoint.ID).Return(checkpoint, nil).Times(1)
	// no Create expectation: nothing may be persisted out of range

	_, err := svc.RecordCheckpointVisit(context.Background(), claim, checkpoint.ID, domain.CheckpointVisitRequest{
		Lat: 55.7600, Lng: 37.6100, // roughly 1.1 km north
	})

	var oor *e.OutOfRangeError
	if !errors.As(err, &oor) {
		t.Fatalf("expected OutOfRangeError, got %v", err)
	}
	if oor.RadiusMeters != 50 || oor.DistanceMeters <= 50 {
		t.Fatalf("bad range report: distance=%d radius=%d", oor.DistanceMeters, oor.RadiusMeters)
	}
}

func TestCheckpointVisit_InsideRadius(t *testing.T) {
	t.Parallel()

	svc, m := newComplianceService(t, 5*time.Minute)
	claim := officerClaim()

	checkpoint := &domain.Zone{
		ID:      uuid.New(),
		Kind:    domain.ZoneCheckpoint,
		Center:  domain.Coordinate{Lat: 55.7500, Lng: 37.6100},
		RadiusM: 75,
		Active:  true,
	}
	m.zones.EXPECT().Get(gomock.Any(), checkpoint.ID).Return(checkpoint, nil).Times(1)
	m.visits.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	visit, err := svc.RecordCheckpointVisit(context.Background(), claim, checkpoint.ID, domain.CheckpointVisitRequest{
		Lat: 55.7500, Lng: 37.6100,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if visit.CheckpointID != checkpoint.ID || visit.OfficerID != claim.OfficerID {
		t.Fatal("visit attribution wrong")
	}
}

func TestWindow_PercentageCapsAtHundred(t *testing.T) {
	t.Parallel()

	svc, m := newComplianceService(t, 5*time.Minute)

	zone := &domain.Zone{
		ID:             uuid.New(),
		Kind:           domain.ZoneRisk,
		RequiredVisits: 3,
		Timezone:       "UTC",
		Active:         true,
	}
	m.zones.EXPECT().Get(gomock.Any(), zone.ID).Return(zone, nil).Times(1)
	m.checkins.EXPECT().
		CountForZone(gomock.Any(), zone.ID, gomock.Any(), gomock.Any()).
		Return(int64(7), nil).
		Times(1)

	win, err := svc.Window(context.Background(), zone.ID, "2026-08-30")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if win.Percentage != 100 {
		t.Fatalf("percentage = %f, want capped 100", win.Percentage)
	}
	if win.Status != domain.ComplianceComplete {
		t.Fatalf("status = %s, want COMPLETE", win.Status)
	}
	if win.ActualVisits != 7 || win.RequiredVisits != 3 {
		t.Fatalf("counts = %d/%d", win.ActualVisits, win.RequiredVisits)
	}
}

func TestWindow_PendingBelowQuota(t *testing.T) {
	t.Parallel()

	svc, m := newComplianceService(t, 5*time.Minute)

	checkpoint := &domain.Zone{
		ID:             uuid.New(),
		Kind:           domain.ZoneCheckpoint,
		RequiredVisits: 4,
		Timezone:       "UTC",
		Active:         true,
	}
	m.zones.EXPECT().Get(gomock.Any(), checkpoint.ID).Return(checkpoint, nil).Times(1)
	m.visits.EXPECT().
		CountForCheckpoint(gomock.Any(), checkpoint.ID, gomock.Any(), gomock.Any()).
		Return(int64(1), nil).
		Times(1)

	win, err := svc.Window(context.Background(), checkpoint.ID, "2026-08-30")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if win.Percentage != 25 {
		t.Fatalf("percentage = %f, want 25", win.Percentage)
	}
	if win.Status != domain.CompliancePending {
		t.Fatalf("status = %s, want PENDING", win.Status)
	}
}

func TestWindow_BadDay(t *testing.T) {
	t.Parallel()

	svc, m := newComplianceService(t, 5*time.Minute)

	zone := &domain.Zone{ID: uuid.New(), Kind: domain.ZoneRisk, Timezone: "UTC", Active: true}
	m.zones.EXPECT().Get(gomock.Any(), zone.ID).Return(zone, nil).Times(1)

	_, err := svc.Window(context.Background(), zone.ID, "30-08-2026")
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAcknowledgeViolation_OfficerForbidden(t *testing.T) {
	t.Parallel()

	svc, _ := newComplianceService(t, 5*time.Minute)

	err := svc.AcknowledgeViolation(context.Background(), officerClaim(), uuid.New())
	if !errors.Is(err, e.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestEvaluateField_OpensStaleViolationOnce(t *testing.T) {
	t.Parallel()

	svc, m := newComplianceService(t, 5*time.Minute)

	officerID := uuid.New()
	stationID := uuid.New()
	m.sessions.EXPECT().
		ActiveSessions(gomock.Any(), gomock.Nil()).
		Return([]domain.ActiveSession{{
			Session: domain.PatrolSession{
				ID:        uuid.New(),
				OfficerID: officerID,
				StationID: stationID,
				StartedAt: time.Now().UTC().Add(-time.Hour),
			},
			// no breadcrumb at all: last seen is the session start
		}}, nil).
		Times(1)

	m.violations.EXPECT().
		Ongoing(gomock.Any(), officerID, domain.ViolationStalePosition).
		Return(nil, e.ErrNotFound).
		Times(1)
	m.violations.EXPECT().
		Open(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, v *domain.Violation) error {
			if v.Type != domain.ViolationStalePosition || v.OfficerID != officerID {
				t.Errorf("wrong violation opened: %+v", v)
			}
			return nil
		}).
		Times(1)
	m.notifications.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	m.events.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	if err := svc.EvaluateField(context.Background()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestEvaluateField_ExistingViolationNotDuplicated(t *testing.T) {
	t.Parallel()

	svc, m := newComplianceService(t, 5*time.Minute)

	officerID := uuid.New()
	m.sessions.EXPECT().
		ActiveSessions(gomock.Any(), gomock.Nil()).
		Return([]domain.ActiveSession{{
			Session: domain.PatrolSession{
				ID:        uuid.New(),
				OfficerID: officerID,
				StationID: uuid.New(),
				StartedAt: time.Now().UTC().Add(-time.Hour),
			},
		}}, nil).
		Times(1)

	// lookup succeeds: the open record is extended, not duplicated
	m.violations.EXPECT().
		Ongoing(gomock.Any(), officerID, domain.ViolationStalePosition).
		Return(&domain.Violation{ID: uuid.New(), OfficerID: officerID, Type: domain.ViolationStalePosition}, nil).
		Times(1)

	if err := svc.EvaluateField(context.Background()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestEvaluateField_ClosesClearedViolations(t *testing.T) {
	t.Parallel()

	svc, m := newComplianceService(t, 5*time.Minute)

	officerID := uuid.New()
	stationID := uuid.New()
	started := time.Now().UTC().Add(-30 * time.Minute)

	duty := domain.Zone{
		ID:      uuid.New(),
		Kind:    domain.ZoneDuty,
		Center:  domain.Coordinate{Lat: 55.7500, Lng: 37.6100},
		RadiusM: 1000,
		Active:  true,
	}

	m.sessions.EXPECT().
		ActiveSessions(gomock.Any(), gomock.Nil()).
		Return([]domain.ActiveSession{{
			Session: domain.PatrolSession{
				ID:        uuid.New(),
				OfficerID: officerID,
				StationID: stationID,
				StartedAt: started,
			},
			Latest: &domain.Breadcrumb{
				Position:   duty.Center,
				CapturedAt: time.Now().UTC(),
			},
		}}, nil).
		Times(1)

	// fresh breadcrumb clears an earlier stale-position record
	stale := &domain.Violation{ID: uuid.New(), OfficerID: officerID, Type: domain.ViolationStalePosition, StartedAt: started}
	m.violations.EXPECT().
		Ongoing(gomock.Any(), officerID, domain.ViolationStalePosition).
		Return(stale, nil).
		Times(1)
	m.violations.EXPECT().
		Close(gomock.Any(), stale.ID, gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)

	m.zones.EXPECT().
		ActiveZones(gomock.Any(), gomock.Any(), domain.ZoneDuty).
		Return([]domain.Zone{duty}, nil).
		Times(1)

	// inside the duty zone: any out-of-zone record would be closed too
	m.violations.EXPECT().
		Ongoing(gomock.Any(), officerID, domain.ViolationOutOfZone).
		Return(nil, e.ErrNotFound).
		Times(1)

	if err := svc.EvaluateField(context.Background()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}
