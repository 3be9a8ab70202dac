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

func newZoneService(t *testing.T) (service.ZoneService, *mock_service.MockZoneRepository, *mock_service.MockZoneCache) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mock_service.NewMockZoneRepository(ctrl)
	cache := mock_service.NewMockZoneCache(ctrl)
	return service.NewZoneService(repo, cache, newTestLogger(), 300, "UTC"), repo, cache
}

func TestZoneCreate_OfficerForbidden(t *testing.T) {
	t.Parallel()

	svc, _, _ := newZoneService(t)

	_, err := svc.Create(context.Background(), officerClaim(), domain.CreateZoneRequest{
		Name: "harbor",
		Kind: domain.ZoneRisk,
		Lat:  55.75, Lng: 37.61,
		RequiredVisits: 2,
	})
	if !errors.Is(err, e.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestZoneCreate_DefaultsRadiusAndTimezone(t *testing.T) {
	t.Parallel()

	svc, repo, cache := newZoneService(t)
	claim := stationClaim()

	var created *domain.Zone
	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, z *domain.Zone) error {
			created = z
			return nil
		}).
		Times(1)
	cache.EXPECT().Invalidate(gomock.Any(), claim.StationID).Return(nil).Times(1)

	zone, err := svc.Create(context.Background(), claim, domain.CreateZoneRequest{
		Name: "harbor",
		Kind: domain.ZoneRisk,
		Lat:  55.75, Lng: 37.61,
		RequiredVisits: 2,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if zone.RadiusM != 300 {
		t.Fatalf("radius = %f, want the configured risk default", zone.RadiusM)
	}
	if zone.Timezone != "UTC" {
		t.Fatalf("timezone = %q, want UTC default", zone.Timezone)
	}
	if !created.Active {
		t.Fatal("new zone must start active")
	}
}

func TestZoneCreate_CheckpointRadiusDefault(t *testing.T) {
	t.Parallel()

	svc, repo, cache := newZoneService(t)
	claim := stationClaim()

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	cache.EXPECT().Invalidate(gomock.Any(), claim.StationID).Return(nil).Times(1)

	zone, err := svc.Create(context.Background(), claim, domain.CreateZoneRequest{
		Name: "gate 4",
		Kind: domain.ZoneCheckpoint,
		Lat:  55.75, Lng: 37.61,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if zone.RadiusM != domain.DefaultCheckpointRadiusM {
		t.Fatalf("radius = %f, want checkpoint default %f", zone.RadiusM, domain.DefaultCheckpointRadiusM)
	}
}

func TestZoneCreate_RiskZoneNeedsQuota(t *testing.T) {
	t.Parallel()

	svc, _, _ := newZoneService(t)

	_, err := svc.Create(context.Background(), stationClaim(), domain.CreateZoneRequest{
		Name: "harbor",
		Kind: domain.ZoneRisk,
		Lat:  55.75, Lng: 37.61,
	})
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestZoneUpdate_ForeignStationForbidden(t *testing.T) {
	t.Parallel()

	svc, repo, _ := newZoneService(t)

	zoneID := uuid.New()
	repo.EXPECT().
		Get(gomock.Any(), zoneID).
		Return(&domain.Zone{ID: zoneID, StationID: uuid.New(), Kind: domain.ZoneRisk}, nil).
		Times(1)

	name := "renamed"
	_, err := svc.Update(context.Background(), stationClaim(), zoneID, domain.UpdateZoneRequest{Name: &name})
	if !errors.Is(err, e.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestActiveZones_CacheMissFillsCache(t *testing.T) {
	t.Parallel()

	svc, repo, cache := newZoneService(t)

	stationID := uuid.New()
	stored := []domain.Zone{
		{ID: uuid.New(), Kind: domain.ZoneRisk, StationID: stationID, Active: true},
		{ID: uuid.New(), Kind: domain.ZoneCheckpoint, StationID: stationID, Active: true},
	}

	gomock.InOrder(
		cache.EXPECT().GetActive(gomock.Any(), stationID).Return(nil, nil),
		repo.EXPECT().ListActive(gomock.Any(), gomock.Any(), domain.ZoneKind("")).Return(stored, nil),
		cache.EXPECT().SetActive(gomock.Any(), stationID, stored).Return(nil),
	)

	zones, err := svc.ActiveZones(context.Background(), &stationID, domain.ZoneRisk)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(zones) != 1 || zones[0].Kind != domain.ZoneRisk {
		t.Fatalf("kind filter broken: %+v", zones)
	}
}

func TestActiveZones_CacheHitSkipsStorage(t *testing.T) {
	t.Parallel()

	svc, _, cache := newZoneService(t)

	stationID := uuid.New()
	cached := []domain.Zone{{ID: uuid.New(), Kind: domain.ZoneDuty, StationID: stationID, Active: true}}
	cache.EXPECT().GetActive(gomock.Any(), stationID).Return(cached, nil).Times(1)

	zones, err := svc.ActiveZones(context.Background(), &stationID, "")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(zones) != 1 {
		t.Fatalf("got %d zones from cache, want 1", len(zones))
	}
}

func TestNearby_SortedByDistance(t *testing.T) {
	t.Parallel()

	svc, repo, _ := newZoneService(t)

	point := domain.Coordinate{Lat: 55.7500, Lng: 37.6100}
	near := domain.Zone{ID: uuid.New(), Kind: domain.ZoneRisk, Center: domain.Coordinate{Lat: 55.7510, Lng: 37.6100}, RadiusM: 100, Active: true}
	far := domain.Zone{ID: uuid.New(), Kind: domain.ZoneRisk, Center: domain.Coordinate{Lat: 55.7700, Lng: 37.6100}, RadiusM: 100, Active: true}
	outside := domain.Zone{ID: uuid.New(), Kind: domain.ZoneRisk, Center: domain.Coordinate{Lat: 56.7500, Lng: 37.6100}, RadiusM: 100, Active: true}

	repo.EXPECT().
		ListActive(gomock.Any(), gomock.Nil(), domain.ZoneRisk).
		Return([]domain.Zone{far, outside, near}, nil).
		Times(1)

	matches, err := svc.Nearby(context.Background(), point, 5, domain.ZoneRisk)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2 within 5 km", len(matches))
	}
	if matches[0].Zone.ID != near.ID {
		t.Fatal("matches not ordered nearest first")
	}
	if matches[0].DistanceM >= matches[1].DistanceM {
		t.Fatal("distances not ascending")
	}
}

func TestStats_Composes(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mock_service.NewMockStatsRepository(ctrl)
	violations := mock_service.NewMockViolationCounter(ctrl)
	alerts := mock_service.NewMockResponseTimer(ctrl)
	svc := service.NewStatsService(repo, violations, alerts, newTestLogger(), 0)

	stationID := uuid.New()
	before := time.Now().UTC().Add(-15 * time.Minute)

	repo.EXPECT().
		CountActiveOfficers(gomock.Any(), &stationID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *uuid.UUID, since time.Time) (int64, error) {
			if since.Before(before) || since.After(time.Now().UTC()) {
				t.Errorf("since window wrong: %s", since)
			}
			return 12, nil
		}).
		Times(1)
	repo.EXPECT().CountBreadcrumbs(gomock.Any(), &stationID, gomock.Any()).Return(int64(4801), nil).Times(1)
	violations.EXPECT().CountOpen(gomock.Any(), &stationID).Return(int64(3), nil).Times(1)
	alerts.EXPECT().AverageResponseMinutes(gomock.Any(), &stationID, 100).Return(6.5, nil).Times(1)

	stats, err := svc.GetStats(context.Background(), domain.StatsRequest{StationID: &stationID, Minutes: 15})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if stats.ActiveOfficers != 12 || stats.TotalBreadcrumbs != 4801 || stats.OpenViolations != 3 {
		t.Fatalf("composition wrong: %+v", stats)
	}
	if stats.AverageResponseMinutes != 6.5 || stats.Minutes != 15 {
		t.Fatalf("composition wrong: %+v", stats)
	}
}

func TestStats_ActiveWindowIndependentOfRequestedWindow(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mock_service.NewMockStatsRepository(ctrl)
	violations := mock_service.NewMockViolationCounter(ctrl)
	alerts := mock_service.NewMockResponseTimer(ctrl)
	svc := service.NewStatsService(repo, violations, alerts, newTestLogger(), 5*time.Minute)

	repo.EXPECT().
		CountActiveOfficers(gomock.Any(), gomock.Nil(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *uuid.UUID, since time.Time) (int64, error) {
			// active cutoff follows the 5m knob, not the 120m stats window
			if time.Since(since) > 6*time.Minute {
				t.Errorf("active cutoff too old: %s", since)
			}
			return 3, nil
		}).
		Times(1)
	repo.EXPECT().
		CountBreadcrumbs(gomock.Any(), gomock.Nil(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *uuid.UUID, since time.Time) (int64, error) {
			if time.Since(since) < 119*time.Minute {
				t.Errorf("breadcrumb window too narrow: %s", since)
			}
			return 900, nil
		}).
		Times(1)
	violations.EXPECT().CountOpen(gomock.Any(), gomock.Nil()).Return(int64(0), nil).Times(1)
	alerts.EXPECT().AverageResponseMinutes(gomock.Any(), gomock.Nil(), 100).Return(0.0, nil).Times(1)

	stats, err := svc.GetStats(context.Background(), domain.StatsRequest{Minutes: 120})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if stats.ActiveOfficers != 3 || stats.TotalBreadcrumbs != 900 {
		t.Fatalf("composition wrong: %+v", stats)
	}
}
