package service

import (
	"context"
	"log/slog"
	"time"

	"patrolwatch/internal/domain"

	"github.com/google/uuid"
)

type StatsRepository interface {
	CountActiveOfficers(ctx context.Context, stationID *uuid.UUID, since time.Time) (int64, error)
	CountBreadcrumbs(ctx context.Context, stationID *uuid.UUID, since time.Time) (int64, error)
}

type ViolationCounter interface {
	CountOpen(ctx context.Context, stationID *uuid.UUID) (int64, error)
}

type ResponseTimer interface {
	AverageResponseMinutes(ctx context.Context, stationID *uuid.UUID, sampleSize int) (float64, error)
}

type statsService struct {
	repo       StatsRepository
	violations ViolationCounter
	alerts     ResponseTimer
	logger     *slog.Logger

	// activeWindow is the breadcrumb age under which an officer counts as
	// active. It is a separate knob from the requested stats window.
	activeWindow time.Duration
}

func NewStatsService(repo StatsRepository, violations ViolationCounter, alerts ResponseTimer, logger *slog.Logger, activeWindow time.Duration) StatsService {
	return &statsService{repo: repo, violations: violations, alerts: alerts, logger: logger, activeWindow: activeWindow}
}

func (s *statsService) GetStats(ctx context.Context, req domain.StatsRequest) (*domain.Stats, error) {
	minutes := req.Minutes
	if minutes <= 0 {
		minutes = 60
	}
	now := time.Now().UTC()
	since := now.Add(-time.Duration(minutes) * time.Minute)

	activeSince := since
	if s.activeWindow > 0 {
		activeSince = now.Add(-s.activeWindow)
	}

	officers, err := s.repo.CountActiveOfficers(ctx, req.StationID, activeSince)
	if err != nil {
		return nil, err
	}
	crumbs, err := s.repo.CountBreadcrumbs(ctx, req.StationID, since)
	if err != nil {
		return nil, err
	}
	open, err := s.violations.CountOpen(ctx, req.StationID)
	if err != nil {
		return nil, err
	}
	avg, err := s.alerts.AverageResponseMinutes(ctx, req.StationID, 100)
	if err != nil {
		return nil, err
	}

	return &domain.Stats{
		ActiveOfficers:         officers,
		TotalBreadcrumbs:       crumbs,
		OpenViolations:         open,
		AverageResponseMinutes: avg,
		Minutes:                minutes,
	}, nil
}
