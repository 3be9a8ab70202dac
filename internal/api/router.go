package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"patrolwatch/internal/api/handlers/http/alerts"
	"patrolwatch/internal/api/handlers/http/patrol"
	"patrolwatch/internal/api/handlers/http/realtime"
	"patrolwatch/internal/api/handlers/http/system"
	"patrolwatch/internal/api/handlers/http/zones"
	"patrolwatch/internal/config"
	"patrolwatch/internal/hub"
	"patrolwatch/internal/middleware"
	"patrolwatch/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(cfg *config.Config, logger *slog.Logger, svc *service.Service, h *hub.Hub) *Server {
	patrolHandler := patrol.NewHandler(logger, svc.Patrol, svc.Compliance)
	alertsHandler := alerts.NewHandler(logger, svc.Alerts)
	zonesHandler := zones.NewHandler(logger, svc.Zones, svc.Compliance, svc.Stats)
	realtimeHandler := realtime.NewHandler(logger, h)
	systemHandler := system.NewHandler(logger, h)

	r := InitRouter(patrolHandler, alertsHandler, zonesHandler, realtimeHandler, systemHandler, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(
	patrolHandler *patrol.Handler,
	alertsHandler *alerts.Handler,
	zonesHandler *zones.Handler,
	realtimeHandler *realtime.Handler,
	systemHandler *system.Handler,
	logger *slog.Logger,
) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	r.Route("/api/v1", func(api chi.Router) {
		api.Route("/patrol", func(pr chi.Router) {
			pr.Use(middleware.Identity)
			// breadcrumbs come every few seconds from every device
			pr.Use(middleware.Limit(30, 60, 5*time.Minute, logger))

			pr.Post("/start", patrolHandler.PatrolStart)
			pr.Post("/end", patrolHandler.PatrolEnd)
			pr.Post("/breadcrumb", patrolHandler.Breadcrumb)
			pr.Post("/checkin", patrolHandler.CheckIn)

			pr.Route("/checkpoints/{id}", func(cr chi.Router) {
				cr.Post("/visit", patrolHandler.CheckpointVisit)
				cr.Post("/leave", patrolHandler.CheckpointLeave)
			})

			pr.Get("/sessions/active", patrolHandler.SessionsActive)
			pr.Get("/sessions/recent", patrolHandler.SessionsRecent)
			pr.Get("/history", patrolHandler.History)
		})

		api.Route("/alerts", func(ar chi.Router) {
			ar.Use(middleware.Identity)
			ar.Use(middleware.Limit(10, 20, 5*time.Minute, logger))

			ar.Post("/", alertsHandler.AlertCreate)

			ar.Route("/{id}", func(rr chi.Router) {
				rr.Post("/respond", alertsHandler.AlertRespond)
				rr.Post("/resolve", alertsHandler.AlertResolve)
				rr.Post("/false-alarm", alertsHandler.AlertFalseAlarm)
				rr.Post("/cancel", alertsHandler.AlertCancel)
			})
		})

		api.Route("/zones", func(zr chi.Router) {
			zr.Use(middleware.Identity)
			zr.Use(middleware.Limit(10, 20, 5*time.Minute, logger))

			zr.Post("/", zonesHandler.ZoneCreate)
			zr.Get("/", zonesHandler.ZoneList)
			zr.Get("/nearby", zonesHandler.ZoneNearby)

			zr.Route("/{id}", func(rr chi.Router) {
				rr.Get("/", zonesHandler.ZoneGet)
				rr.Put("/", zonesHandler.ZoneUpdate)
				rr.Delete("/", zonesHandler.ZoneDeactivate)
				rr.Get("/compliance", zonesHandler.ComplianceWindow)
			})
		})

		api.Route("/plans/{id}", func(plr chi.Router) {
			plr.Use(middleware.Identity)
			plr.Post("/assign", patrolHandler.PlanAssign)
			plr.Put("/checkpoints/order", patrolHandler.PlanReorder)
		})

		api.Route("/violations", func(vr chi.Router) {
			vr.Use(middleware.Identity)
			vr.Get("/", patrolHandler.ViolationsList)
			vr.Post("/{id}/ack", patrolHandler.ViolationAck)
		})

		api.Route("/stats", func(sr chi.Router) {
			sr.Use(middleware.Identity)
			sr.Get("/", zonesHandler.StationStats)
		})

		api.With(middleware.Identity).Get("/ws", realtimeHandler.Attach)

		api.Get("/health", systemHandler.SystemHealth)
	})

	return r
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
