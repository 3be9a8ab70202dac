package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"patrolwatch/internal/domain"
	"patrolwatch/pkg/e"

	"github.com/google/uuid"
)

type AlertRepository interface {
	Create(ctx context.Context, alert *domain.Alert) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Alert, error)
	AddResponse(ctx context.Context, response *domain.AlertResponse) error
	MarkResponding(ctx context.Context, alertID, responderID uuid.UUID, at time.Time) error
	Close(ctx context.Context, alertID uuid.UUID, status domain.AlertStatus, note string, at time.Time) error
	RecentResponded(ctx context.Context, stationID *uuid.UUID, limit int) ([]domain.Alert, error)
}

// AlertWebhookEnqueuer hands finished alert mutations to the control-room
// integration queue. Failures there never fail the alert write.
type AlertWebhookEnqueuer interface {
	EnqueueAlert(ctx context.Context, alert domain.Alert, eventKey string) error
}

type alertService struct {
	repo     AlertRepository
	events   EventPublisher
	webhooks AlertWebhookEnqueuer
	logger   *slog.Logger

	// locks serializes transitions per alert so "first response wins
	// respondedAt" holds under concurrent responders.
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func NewAlertService(repo AlertRepository, events EventPublisher, webhooks AlertWebhookEnqueuer, logger *slog.Logger) AlertService {
	return &alertService{
		repo:     repo,
		events:   events,
		webhooks: webhooks,
		logger:   logger,
		locks:    make(map[uuid.UUID]*sync.Mutex),
	}
}

func (s *alertService) lockFor(alertID uuid.UUID) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[alertID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[alertID] = l
	}
	return l
}

func (s *alertService) dropLock(alertID uuid.UUID) {
	s.mu.Lock()
	delete(s.locks, alertID)
	s.mu.Unlock()
}

// Create never blocks an emergency beyond basic type checks. Station defaults
// to the reporting officer's home station.
func (s *alertService) Create(ctx context.Context, claim domain.Claim, req domain.CreateAlertRequest) (*domain.Alert, error) {
	const op = "service.Alert.Create"

	if !req.Type.Valid() {
		return nil, fmt.Errorf("%s: unknown alert type %q: %w", op, req.Type, e.ErrInvalidInput)
	}

	stationID := claim.StationID
	if req.StationID != nil {
		stationID = *req.StationID
	}

	alert := &domain.Alert{
		ID:        uuid.New(),
		OfficerID: claim.OfficerID,
		StationID: stationID,
		Type:      req.Type,
		Status:    domain.AlertActive,
		Position:  domain.Coordinate{Lat: req.Lat, Lng: req.Lng},
		Message:   req.Message,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, alert); err != nil {
		// alert writes surface failure immediately and loudly, never a
		// silent retry
		s.logger.Error("ALERT WRITE FAILED",
			slog.String("op", op),
			slog.String("officer_id", claim.OfficerID.String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.Info("alert created",
		slog.String("alert_id", alert.ID.String()),
		slog.String("type", string(alert.Type)),
		slog.String("station_id", stationID.String()),
	)
	s.emit(ctx, domain.EventAlertCreated, alert)
	return alert, nil
}

// Respond records a responder message and, on the first call for the alert,
// transitions ACTIVE to RESPONDING with an immutable respondedAt/By stamp.
func (s *alertService) Respond(ctx context.Context, claim domain.Claim, alertID uuid.UUID, req domain.RespondAlertRequest) (*domain.Alert, error) {
	const op = "service.Alert.Respond"

	l := s.lockFor(alertID)
	l.Lock()
	defer l.Unlock()

	alert, err := s.repo.Get(ctx, alertID)
	if err != nil {
		return nil, err
	}
	if alert.Status.Terminal() {
		return nil, fmt.Errorf("%s: alert is %s: %w", op, alert.Status, e.ErrInvalidState)
	}

	now := time.Now().UTC()
	response := &domain.AlertResponse{
		ID:         uuid.New(),
		AlertID:    alertID,
		OfficerID:  claim.OfficerID,
		Message:    req.Message,
		Position:   req.Position,
		EtaMinutes: req.EtaMinutes,
		CreatedAt:  now,
	}
	if err := s.repo.AddResponse(ctx, response); err != nil {
		return nil, err
	}

	if alert.Status == domain.AlertActive {
		if err := s.repo.MarkResponding(ctx, alertID, claim.OfficerID, now); err != nil {
			return nil, err
		}
	}

	updated, err := s.repo.Get(ctx, alertID)
	if err != nil {
		return nil, err
	}
	s.emit(ctx, domain.EventAlertUpdated, updated)
	return updated, nil
}

func (s *alertService) Resolve(ctx context.Context, alertID uuid.UUID, note string) (*domain.Alert, error) {
	return s.close(ctx, alertID, domain.AlertResolved, note)
}

func (s *alertService) MarkFalseAlarm(ctx context.Context, alertID uuid.UUID, note string) (*domain.Alert, error) {
	return s.close(ctx, alertID, domain.AlertFalseAlarm, note)
}

// Cancel is allowed only for the officer who raised the alert.
func (s *alertService) Cancel(ctx context.Context, claim domain.Claim, alertID uuid.UUID) (*domain.Alert, error) {
	const op = "service.Alert.Cancel"

	l := s.lockFor(alertID)
	l.Lock()
	defer l.Unlock()

	alert, err := s.repo.Get(ctx, alertID)
	if err != nil {
		return nil, err
	}
	if alert.OfficerID != claim.OfficerID {
		return nil, fmt.Errorf("%s: only the reporting officer may cancel: %w", op, e.ErrForbidden)
	}
	return s.closeLocked(ctx, alert, domain.AlertCancelled, "")
}

func (s *alertService) close(ctx context.Context, alertID uuid.UUID, status domain.AlertStatus, note string) (*domain.Alert, error) {
	l := s.lockFor(alertID)
	l.Lock()
	defer l.Unlock()

	alert, err := s.repo.Get(ctx, alertID)
	if err != nil {
		return nil, err
	}
	return s.closeLocked(ctx, alert, status, note)
}

func (s *alertService) closeLocked(ctx context.Context, alert *domain.Alert, status domain.AlertStatus, note string) (*domain.Alert, error) {
	const op = "service.Alert.close"

	if alert.Status.Terminal() {
		return nil, fmt.Errorf("%s: alert is %s: %w", op, alert.Status, e.ErrInvalidState)
	}

	if err := s.repo.Close(ctx, alert.ID, status, note, time.Now().UTC()); err != nil {
		return nil, err
	}
	s.dropLock(alert.ID)

	updated, err := s.repo.Get(ctx, alert.ID)
	if err != nil {
		return nil, err
	}
	s.emit(ctx, domain.EventAlertUpdated, updated)
	return updated, nil
}

// AverageResponseMinutes reports the mean respondedAt-createdAt over the most
// recent responded alerts. An empty sample yields 0, a displayable "no data".
func (s *alertService) AverageResponseMinutes(ctx context.Context, stationID *uuid.UUID, sampleSize int) (float64, error) {
	if sampleSize <= 0 {
		sampleSize = 100
	}

	alerts, err := s.repo.RecentResponded(ctx, stationID, sampleSize)
	if err != nil {
		return 0, err
	}

	var total float64
	var n int
	for _, a := range alerts {
		if a.RespondedAt == nil {
			continue
		}
		total += a.RespondedAt.Sub(a.CreatedAt).Minutes()
		n++
	}
	if n == 0 {
		return 0, nil
	}
	return total / float64(n), nil
}

func (s *alertService) emit(ctx context.Context, eventType domain.EventType, alert *domain.Alert) {
	payload, err := json.Marshal(alert)
	if err != nil {
		return
	}
	ev := domain.Event{
		Type:     eventType,
		Channels: []string{domain.StationChannel(alert.StationID)},
		Data:     payload,
	}
	if err := s.events.Publish(ctx, ev); err != nil {
		s.logger.Warn("alert event publish failed", slog.Any("error", err))
	}

	if s.webhooks != nil {
		if err := s.webhooks.EnqueueAlert(ctx, *alert, string(eventType)); err != nil {
			s.logger.Warn("alert webhook enqueue failed", slog.Any("error", err))
		}
	}
}
