package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"patrolwatch/internal/domain"
	"patrolwatch/internal/geo"
	"patrolwatch/pkg/e"

	"github.com/google/uuid"
)

// ZoneRepository is the persistence surface the registry needs.
type ZoneRepository interface {
	Create(ctx context.Context, zone *domain.Zone) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Zone, error)
	Update(ctx context.Context, zone *domain.Zone) error
	Deactivate(ctx context.Context, id uuid.UUID) error
	ListActive(ctx context.Context, stationID *uuid.UUID, kind domain.ZoneKind) ([]domain.Zone, error)
}

// ZoneCache keeps the per-station active set hot; a nil-result read is a miss.
type ZoneCache interface {
	GetActive(ctx context.Context, stationID uuid.UUID) ([]domain.Zone, error)
	SetActive(ctx context.Context, stationID uuid.UUID, zones []domain.Zone) error
	Invalidate(ctx context.Context, stationID uuid.UUID) error
}

type zoneService struct {
	repo               ZoneRepository
	cache              ZoneCache
	logger             *slog.Logger
	defaultRiskRadiusM float64
	defaultTimezone    string
}

func NewZoneService(repo ZoneRepository, cache ZoneCache, logger *slog.Logger, defaultRiskRadiusM float64, defaultTimezone string) ZoneService {
	if defaultRiskRadiusM <= 0 {
		defaultRiskRadiusM = 300
	}
	if defaultTimezone == "" {
		defaultTimezone = "UTC"
	}
	return &zoneService{
		repo:               repo,
		cache:              cache,
		logger:             logger,
		defaultRiskRadiusM: defaultRiskRadiusM,
		defaultTimezone:    defaultTimezone,
	}
}

func (s *zoneService) Create(ctx context.Context, claim domain.Claim, req domain.CreateZoneRequest) (*domain.Zone, error) {
	const op = "service.Zone.Create"

	if !claim.StationScope() {
		return nil, fmt.Errorf("%s: %w", op, e.ErrForbidden)
	}
	center := domain.Coordinate{Lat: req.Lat, Lng: req.Lng}
	if !center.Valid() {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}

	radius := s.defaultRadius(req.Kind)
	if req.RadiusM != nil {
		radius = *req.RadiusM
	}
	if radius <= 0 {
		return nil, fmt.Errorf("%s: radius must be positive: %w", op, e.ErrInvalidInput)
	}

	required := req.RequiredVisits
	if req.Kind == domain.ZoneRisk {
		if required < 1 {
			return nil, fmt.Errorf("%s: risk zones require at least one visit per day: %w", op, e.ErrInvalidInput)
		}
	}

	tz := req.Timezone
	if tz == "" {
		tz = s.defaultTimezone
	}
	if _, err := time.LoadLocation(tz); err != nil {
		return nil, fmt.Errorf("%s: bad timezone %q: %w", op, tz, e.ErrInvalidInput)
	}

	zone := &domain.Zone{
		ID:             uuid.New(),
		Name:           req.Name,
		Kind:           req.Kind,
		Center:         center,
		RadiusM:        radius,
		StationID:      claim.StationID,
		Active:         true,
		RiskLevel:      req.RiskLevel,
		RequiredVisits: required,
		Timezone:       tz,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, zone); err != nil {
		return nil, err
	}
	s.dropCache(ctx, zone.StationID)

	s.logger.Info("zone created",
		slog.String("zone_id", zone.ID.String()),
		slog.String("kind", string(zone.Kind)),
		slog.Float64("radius_m", zone.RadiusM),
	)
	return zone, nil
}

func (s *zoneService) defaultRadius(kind domain.ZoneKind) float64 {
	if kind == domain.ZoneCheckpoint {
		return domain.DefaultCheckpointRadiusM
	}
	return s.defaultRiskRadiusM
}

func (s *zoneService) Get(ctx context.Context, id uuid.UUID) (*domain.Zone, error) {
	return s.repo.Get(ctx, id)
}

func (s *zoneService) Update(ctx context.Context, claim domain.Claim, id uuid.UUID, req domain.UpdateZoneRequest) (*domain.Zone, error) {
	const op = "service.Zone.Update"

	zone, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !claim.StationScope() || zone.StationID != claim.StationID {
		return nil, fmt.Errorf("%s: %w", op, e.ErrForbidden)
	}

	if req.Name != nil {
		zone.Name = *req.Name
	}
	if req.Lat != nil {
		zone.Center.Lat = *req.Lat
	}
	if req.Lng != nil {
		zone.Center.Lng = *req.Lng
	}
	if req.RadiusM != nil {
		zone.RadiusM = *req.RadiusM
	}
	if req.RiskLevel != nil {
		zone.RiskLevel = *req.RiskLevel
	}
	if req.RequiredVisits != nil {
		zone.RequiredVisits = *req.RequiredVisits
	}

	if !zone.Center.Valid() {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}
	if zone.RadiusM <= 0 {
		return nil, fmt.Errorf("%s: radius must be positive: %w", op, e.ErrInvalidInput)
	}
	if zone.Kind == domain.ZoneRisk && zone.RequiredVisits < 1 {
		return nil, fmt.Errorf("%s: risk zones require at least one visit per day: %w", op, e.ErrInvalidInput)
	}

	if err := s.repo.Update(ctx, zone); err != nil {
		return nil, err
	}
	s.dropCache(ctx, zone.StationID)
	return zone, nil
}

// Deactivate is the only delete: zones are soft-deleted so visit history
// keeps resolving.
func (s *zoneService) Deactivate(ctx context.Context, claim domain.Claim, id uuid.UUID) error {
	const op = "service.Zone.Deactivate"

	zone, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if !claim.StationScope() || zone.StationID != claim.StationID {
		return fmt.Errorf("%s: %w", op, e.ErrForbidden)
	}

	if err := s.repo.Deactivate(ctx, id); err != nil {
		return err
	}
	s.dropCache(ctx, zone.StationID)
	return nil
}

// ActiveZones is cache-aside per station; the untargeted (all stations) read
// goes straight to storage.
func (s *zoneService) ActiveZones(ctx context.Context, stationID *uuid.UUID, kind domain.ZoneKind) ([]domain.Zone, error) {
	if stationID == nil || s.cache == nil {
		return s.repo.ListActive(ctx, stationID, kind)
	}

	cached, err := s.cache.GetActive(ctx, *stationID)
	if err != nil {
		s.logger.Warn("zone cache read failed", slog.Any("error", err))
	}
	if cached == nil {
		cached, err = s.repo.ListActive(ctx, stationID, "")
		if err != nil {
			return nil, err
		}
		if err := s.cache.SetActive(ctx, *stationID, cached); err != nil {
			s.logger.Warn("zone cache write failed", slog.Any("error", err))
		}
	}

	if kind == "" {
		return cached, nil
	}
	filtered := make([]domain.Zone, 0, len(cached))
	for _, z := range cached {
		if z.Kind == kind {
			filtered = append(filtered, z)
		}
	}
	return filtered, nil
}

func (s *zoneService) Nearby(ctx context.Context, point domain.Coordinate, radiusKm float64, kind domain.ZoneKind) ([]domain.ZoneMatch, error) {
	const op = "service.Zone.Nearby"

	if !point.Valid() || radiusKm <= 0 {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}

	zones, err := s.repo.ListActive(ctx, nil, kind)
	if err != nil {
		return nil, err
	}

	found := geo.FindWithinRadius(point, radiusKm*1000, zones)
	out := make([]domain.ZoneMatch, 0, len(found))
	for _, f := range found {
		out = append(out, domain.ZoneMatch{Zone: f.Zone, DistanceM: f.DistanceM})
	}
	return out, nil
}

func (s *zoneService) dropCache(ctx context.Context, stationID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, stationID); err != nil {
		s.logger.Warn("zone cache invalidate failed", slog.Any("error", err))
	}
}
