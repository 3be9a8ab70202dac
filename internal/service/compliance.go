package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"patrolwatch/internal/domain"
	"patrolwatch/internal/geo"
	"patrolwatch/pkg/e"

	"github.com/google/uuid"
)

type CheckinRepository interface {
	Save(ctx context.Context, event *domain.CheckinEvent) error
	CountForZone(ctx context.Context, zoneID uuid.UUID, from, to time.Time) (int64, error)
}

type VisitRepository interface {
	Create(ctx context.Context, visit *domain.CheckpointVisit) error
	MarkLeft(ctx context.Context, checkpointID, officerID uuid.UUID, leftAt time.Time) error
	CountForCheckpoint(ctx context.Context, checkpointID uuid.UUID, from, to time.Time) (int64, error)
}

type ViolationRepository interface {
	Open(ctx context.Context, violation *domain.Violation) error
	Ongoing(ctx context.Context, officerID uuid.UUID, vtype domain.ViolationType) (*domain.Violation, error)
	OngoingAll(ctx context.Context, stationID *uuid.UUID) ([]domain.Violation, error)
	Close(ctx context.Context, id uuid.UUID, endedAt time.Time, durationMinutes float64) error
	Acknowledge(ctx context.Context, id, byOfficer uuid.UUID, at time.Time) error
}

type NotificationRepository interface {
	Create(ctx context.Context, notification *domain.Notification) error
}

// ZoneSource is the slice of the registry the evaluator consults.
type ZoneSource interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Zone, error)
	ActiveZones(ctx context.Context, stationID *uuid.UUID, kind domain.ZoneKind) ([]domain.Zone, error)
}

type complianceService struct {
	zones         ZoneSource
	checkins      CheckinRepository
	visits        VisitRepository
	violations    ViolationRepository
	sessions      SessionRepository
	notifications NotificationRepository
	events        EventPublisher
	logger        *slog.Logger
	staleAfter    time.Duration
}

func NewComplianceService(
	zones ZoneSource,
	checkins CheckinRepository,
	visits VisitRepository,
	violations ViolationRepository,
	sessions SessionRepository,
	notifications NotificationRepository,
	events EventPublisher,
	logger *slog.Logger,
	staleAfter time.Duration,
) ComplianceService {
	if staleAfter <= 0 {
		staleAfter = 5 * time.Minute
	}
	return &complianceService{
		zones:         zones,
		checkins:      checkins,
		visits:        visits,
		violations:    violations,
		sessions:      sessions,
		notifications: notifications,
		events:        events,
		logger:        logger,
		staleAfter:    staleAfter,
	}
}

// CheckIn credits the event to an explicit zone when given, else to the
// nearest enclosing risk zone of the officer's station. When no zone
// encloses the position the check-in is still persisted, just unassigned:
// the breadcrumb matters for audit even when it earns no quota credit.
func (s *complianceService) CheckIn(ctx context.Context, claim domain.Claim, req domain.CheckinRequest) (*domain.CheckinEvent, error) {
	const op = "service.Compliance.CheckIn"

	pos := domain.Coordinate{Lat: req.Lat, Lng: req.Lng}
	if !pos.Valid() {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}

	var zoneID *uuid.UUID
	if req.ZoneID != nil {
		zone, err := s.zones.Get(ctx, *req.ZoneID)
		if err != nil {
			return nil, err
		}
		zoneID = &zone.ID
	} else {
		stationID := claim.StationID
		candidates, err := s.zones.ActiveZones(ctx, &stationID, domain.ZoneRisk)
		if err != nil {
			return nil, err
		}
		if zone, _, ok := geo.Nearest(pos, candidates); ok && geo.IsWithin(pos, zone) {
			id := zone.ID
			zoneID = &id
		}
	}

	event := &domain.CheckinEvent{
		ID:        uuid.New(),
		OfficerID: claim.OfficerID,
		ZoneID:    zoneID,
		Position:  pos,
		Note:      req.Note,
		CheckedAt: time.Now().UTC(),
	}
	if err := s.checkins.Save(ctx, event); err != nil {
		return nil, err
	}

	if zoneID == nil {
		s.logger.Info("unassigned check-in recorded",
			slog.String("officer_id", claim.OfficerID.String()),
		)
	}
	return event, nil
}

// RecordCheckpointVisit enforces the geofence at creation time: nothing is
// persisted when the reported coordinate falls outside the checkpoint radius.
func (s *complianceService) RecordCheckpointVisit(ctx context.Context, claim domain.Claim, checkpointID uuid.UUID, req domain.CheckpointVisitRequest) (*domain.CheckpointVisit, error) {
	const op = "service.Compliance.RecordCheckpointVisit"

	pos := domain.Coordinate{Lat: req.Lat, Lng: req.Lng}
	if !pos.Valid() {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}

	checkpoint, err := s.zones.Get(ctx, checkpointID)
	if err != nil {
		return nil, err
	}
	if checkpoint.Kind != domain.ZoneCheckpoint || !checkpoint.Active {
		return nil, fmt.Errorf("%s: %s is not an active checkpoint: %w", op, checkpointID, e.ErrNotFound)
	}

	dist := geo.DistanceMeters(pos, checkpoint.Center)
	if dist > checkpoint.RadiusM {
		return nil, fmt.Errorf("%s: %w", op, &e.OutOfRangeError{
			DistanceMeters: int(math.Round(dist)),
			RadiusMeters:   int(math.Round(checkpoint.RadiusM)),
		})
	}

	visit := &domain.CheckpointVisit{
		ID:           uuid.New(),
		CheckpointID: checkpointID,
		OfficerID:    claim.OfficerID,
		Position:     pos,
		PhotoURL:     req.PhotoURL,
		Note:         req.Note,
		ArrivedAt:    time.Now().UTC(),
	}
	if err := s.visits.Create(ctx, visit); err != nil {
		return nil, err
	}
	return visit, nil
}

func (s *complianceService) MarkCheckpointLeft(ctx context.Context, claim domain.Claim, checkpointID uuid.UUID) error {
	return s.visits.MarkLeft(ctx, checkpointID, claim.OfficerID, time.Now().UTC())
}

// Window counts visits within the zone's reporting day [00:00, 24:00) and
// caps the percentage at 100 even when actual exceeds required.
func (s *complianceService) Window(ctx context.Context, zoneID uuid.UUID, day string) (*domain.ComplianceWindow, error) {
	const op = "service.Compliance.Window"

	zone, err := s.zones.Get(ctx, zoneID)
	if err != nil {
		return nil, err
	}

	loc, err := time.LoadLocation(zone.Timezone)
	if err != nil {
		loc = time.UTC
	}
	dayStart, err := time.ParseInLocation("2006-01-02", day, loc)
	if err != nil {
		return nil, fmt.Errorf("%s: day must be YYYY-MM-DD: %w", op, e.ErrInvalidInput)
	}
	dayEnd := dayStart.AddDate(0, 0, 1)

	var actual int64
	switch zone.Kind {
	case domain.ZoneCheckpoint:
		actual, err = s.visits.CountForCheckpoint(ctx, zoneID, dayStart, dayEnd)
	default:
		actual, err = s.checkins.CountForZone(ctx, zoneID, dayStart, dayEnd)
	}
	if err != nil {
		return nil, err
	}

	required := zone.RequiredVisits
	if required < 1 {
		required = 1
	}

	pct := math.Min(100, float64(actual)/float64(required)*100)
	status := windowStatus(actual, required)

	return &domain.ComplianceWindow{
		ZoneID:         zoneID,
		Day:            day,
		ActualVisits:   int(actual),
		RequiredVisits: required,
		Percentage:     pct,
		Status:         status,
	}, nil
}

func windowStatus(actual int64, required int) domain.ComplianceStatus {
	if actual >= int64(required) {
		return domain.ComplianceComplete
	}
	return domain.CompliancePending
}

func (s *complianceService) AcknowledgeViolation(ctx context.Context, claim domain.Claim, violationID uuid.UUID) error {
	const op = "service.Compliance.AcknowledgeViolation"

	if !claim.StationScope() {
		return fmt.Errorf("%s: %w", op, e.ErrForbidden)
	}
	return s.violations.Acknowledge(ctx, violationID, claim.OfficerID, time.Now().UTC())
}

func (s *complianceService) OngoingViolations(ctx context.Context, stationID *uuid.UUID) ([]domain.Violation, error) {
	return s.violations.OngoingAll(ctx, stationID)
}

// EvaluateField runs one pass of duty-zone and staleness detection over all
// live sessions. It keeps no timers of its own: every pass re-reads the
// ongoing violation set from storage, so stopping and restarting the caller
// cannot corrupt open records.
func (s *complianceService) EvaluateField(ctx context.Context) error {
	const op = "service.Compliance.EvaluateField"

	active, err := s.sessions.ActiveSessions(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now().UTC()
	dutyByStation := make(map[uuid.UUID][]domain.Zone)

	for _, entry := range active {
		officerID := entry.Session.OfficerID
		stationID := entry.Session.StationID

		// staleness: no position report within the threshold while on duty
		lastSeen := entry.Session.StartedAt
		if entry.Latest != nil {
			lastSeen = entry.Latest.CapturedAt
		}
		if now.Sub(lastSeen) > s.staleAfter {
			s.openViolation(ctx, officerID, stationID, domain.ViolationStalePosition, now)
		} else {
			s.closeViolation(ctx, officerID, domain.ViolationStalePosition, now)
		}

		// out-of-zone: at least one assigned duty zone and the latest
		// position inside none of them
		if entry.Latest == nil {
			continue
		}
		duty, ok := dutyByStation[stationID]
		if !ok {
			sid := stationID
			duty, err = s.zones.ActiveZones(ctx, &sid, domain.ZoneDuty)
			if err != nil {
				s.logger.Error("duty zone load failed", slog.String("op", op), slog.Any("error", err))
				continue
			}
			dutyByStation[stationID] = duty
		}
		if len(duty) == 0 {
			continue
		}

		inside := false
		for _, z := range duty {
			if geo.IsWithin(entry.Latest.Position, z) {
				inside = true
				break
			}
		}
		if inside {
			s.closeViolation(ctx, officerID, domain.ViolationOutOfZone, now)
		} else {
			s.openViolation(ctx, officerID, stationID, domain.ViolationOutOfZone, now)
		}
	}
	return nil
}

// openViolation opens an ongoing record unless one of the same type already
// exists; repeated detections extend the open record rather than duplicate
// it, keeping station dashboards quiet.
func (s *complianceService) openViolation(ctx context.Context, officerID, stationID uuid.UUID, vtype domain.ViolationType, now time.Time) {
	_, err := s.violations.Ongoing(ctx, officerID, vtype)
	if err == nil {
		return // already ongoing, nothing to add
	}
	if !errors.Is(err, e.ErrNotFound) {
		s.logger.Error("ongoing violation lookup failed", slog.Any("error", err))
		return
	}

	v := &domain.Violation{
		ID:        uuid.New(),
		OfficerID: officerID,
		StationID: stationID,
		Type:      vtype,
		StartedAt: now,
	}
	if err := s.violations.Open(ctx, v); err != nil {
		if errors.Is(err, e.ErrConflict) {
			return // lost a race with a concurrent evaluation pass
		}
		s.logger.Error("violation open failed", slog.Any("error", err))
		return
	}

	s.logger.Warn("violation opened",
		slog.String("officer_id", officerID.String()),
		slog.String("type", string(vtype)),
	)
	s.notifyViolation(ctx, v)
}

func (s *complianceService) closeViolation(ctx context.Context, officerID uuid.UUID, vtype domain.ViolationType, now time.Time) {
	ongoing, err := s.violations.Ongoing(ctx, officerID, vtype)
	if err != nil {
		if !errors.Is(err, e.ErrNotFound) {
			s.logger.Error("ongoing violation lookup failed", slog.Any("error", err))
		}
		return
	}

	duration := now.Sub(ongoing.StartedAt).Minutes()
	if err := s.violations.Close(ctx, ongoing.ID, now, duration); err != nil {
		s.logger.Error("violation close failed", slog.Any("error", err))
		return
	}
	s.logger.Info("violation cleared",
		slog.String("officer_id", officerID.String()),
		slog.String("type", string(vtype)),
		slog.Float64("duration_minutes", duration),
	)
}

func (s *complianceService) notifyViolation(ctx context.Context, v *domain.Violation) {
	stationID := v.StationID
	n := &domain.Notification{
		ID:        uuid.New(),
		StationID: &stationID,
		Title:     fmt.Sprintf("compliance violation: %s", v.Type),
		Body:      fmt.Sprintf("officer %s, since %s", v.OfficerID, v.StartedAt.Format(time.RFC3339)),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.notifications.Create(ctx, n); err != nil {
		s.logger.Error("violation notification save failed", slog.Any("error", err))
		return
	}

	payload, err := json.Marshal(n)
	if err != nil {
		return
	}
	ev := domain.Event{
		Type:     domain.EventNotificationCreated,
		Channels: domain.NotificationChannels(*n),
		Data:     payload,
	}
	if err := s.events.Publish(ctx, ev); err != nil {
		s.logger.Warn("violation event publish failed", slog.Any("error", err))
	}
}
