package patrol

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"patrolwatch/internal/domain"
	"patrolwatch/internal/middleware"
	"patrolwatch/pkg/validator"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type PatrolOps interface {
	StartPatrol(ctx context.Context, claim domain.Claim) (*domain.PatrolSession, error)
	EndPatrol(ctx context.Context, claim domain.Claim) error
	RecordBreadcrumb(ctx context.Context, claim domain.Claim, req domain.BreadcrumbRequest) (*domain.Breadcrumb, error)
	ActiveSessions(ctx context.Context, stationID *uuid.UUID) ([]domain.ActiveSession, error)
	History(ctx context.Context, officerID uuid.UUID, days int) ([]domain.PatrolSession, error)
	Recent(ctx context.Context, stationID *uuid.UUID, hours int) ([]domain.PatrolSession, error)
	AssignPlan(ctx context.Context, claim domain.Claim, planID, officerID uuid.UUID, day string) (*domain.PlanAssignment, error)
	ReorderCheckpoints(ctx context.Context, claim domain.Claim, planID uuid.UUID, orderedIDs []uuid.UUID) error
}

type ComplianceOps interface {
	CheckIn(ctx context.Context, claim domain.Claim, req domain.CheckinRequest) (*domain.CheckinEvent, error)
	RecordCheckpointVisit(ctx context.Context, claim domain.Claim, checkpointID uuid.UUID, req domain.CheckpointVisitRequest) (*domain.CheckpointVisit, error)
	MarkCheckpointLeft(ctx context.Context, claim domain.Claim, checkpointID uuid.UUID) error
	AcknowledgeViolation(ctx context.Context, claim domain.Claim, violationID uuid.UUID) error
	OngoingViolations(ctx context.Context, stationID *uuid.UUID) ([]domain.Violation, error)
}

type Handler struct {
	logger     *slog.Logger
	Patrol     PatrolOps
	Compliance ComplianceOps
}

func NewHandler(logger *slog.Logger, patrol PatrolOps, compliance ComplianceOps) *Handler {
	return &Handler{
		logger:     logger,
		Patrol:     patrol,
		Compliance: compliance,
	}
}

func (h *Handler) PatrolStart(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	claim, ok := middleware.ClaimFrom(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "no identity"})
		return
	}

	session, err := h.Patrol.StartPatrol(r.Context(), claim)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("patrol started",
		slog.String("session_id", session.ID.String()),
		slog.String("officer_id", claim.OfficerID.String()),
	)
	h.writeJSON(w, http.StatusCreated, session)
}

func (h *Handler) PatrolEnd(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	claim, ok := middleware.ClaimFrom(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "no identity"})
		return
	}

	if err := h.Patrol.EndPatrol(r.Context(), claim); err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("patrol ended", slog.String("officer_id", claim.OfficerID.String()))
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ended"})
}

func (h *Handler) Breadcrumb(w http.ResponseWriter, r *http.Request) {
	claim, ok := middleware.ClaimFrom(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "no identity"})
		return
	}

	var req domain.BreadcrumbRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	crumb, err := h.Patrol.RecordBreadcrumb(r.Context(), claim, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, crumb)
}

func (h *Handler) CheckIn(w http.ResponseWriter, r *http.Request) {
	claim, ok := middleware.ClaimFrom(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "no identity"})
		return
	}

	var req domain.CheckinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	event, err := h.Compliance.CheckIn(r.Context(), claim, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, event)
}

func (h *Handler) CheckpointVisit(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	claim, ok := middleware.ClaimFrom(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "no identity"})
		return
	}

	checkpointID, err := parseID(r)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	var req domain.CheckpointVisitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	visit, err := h.Compliance.RecordCheckpointVisit(r.Context(), claim, checkpointID, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("checkpoint visited",
		slog.String("checkpoint_id", checkpointID.String()),
		slog.String("officer_id", claim.OfficerID.String()),
	)
	h.writeJSON(w, http.StatusCreated, visit)
}

func (h *Handler) CheckpointLeave(w http.ResponseWriter, r *http.Request) {
	claim, ok := middleware.ClaimFrom(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "no identity"})
		return
	}

	checkpointID, err := parseID(r)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	if err := h.Compliance.MarkCheckpointLeft(r.Context(), claim, checkpointID); err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"status": "left"})
}

func (h *Handler) SessionsActive(w http.ResponseWriter, r *http.Request) {
	stationID, err := parseOptionalUUID(r.URL.Query().Get("station_id"))
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid station_id"})
		return
	}

	sessions, err := h.Patrol.ActiveSessions(r.Context(), stationID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"sessions": sessions,
		"count":    len(sessions),
	})
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	claim, ok := middleware.ClaimFrom(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "no identity"})
		return
	}

	officerID := claim.OfficerID
	if s := r.URL.Query().Get("officer_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid officer_id"})
			return
		}
		officerID = id
	}
	days := parseInt(r.URL.Query().Get("days"), 7)

	sessions, err := h.Patrol.History(r.Context(), officerID, days)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"sessions": sessions,
		"days":     days,
	})
}

func (h *Handler) SessionsRecent(w http.ResponseWriter, r *http.Request) {
	stationID, err := parseOptionalUUID(r.URL.Query().Get("station_id"))
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid station_id"})
		return
	}
	hours := parseInt(r.URL.Query().Get("hours"), 24)

	sessions, err := h.Patrol.Recent(r.Context(), stationID, hours)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"sessions": sessions,
		"hours":    hours,
	})
}

func (h *Handler) PlanAssign(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	claim, ok := middleware.ClaimFrom(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "no identity"})
		return
	}

	planID, err := parseID(r)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	var req domain.AssignPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	assignment, err := h.Patrol.AssignPlan(r.Context(), claim, planID, req.OfficerID, req.Day)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("plan assigned",
		slog.String("plan_id", planID.String()),
		slog.String("officer_id", req.OfficerID.String()),
		slog.String("day", req.Day),
	)
	h.writeJSON(w, http.StatusCreated, assignment)
}

func (h *Handler) PlanReorder(w http.ResponseWriter, r *http.Request) {
	claim, ok := middleware.ClaimFrom(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "no identity"})
		return
	}

	planID, err := parseID(r)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	var req domain.ReorderCheckpointsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	if err := h.Patrol.ReorderCheckpoints(r.Context(), claim, planID, req.CheckpointIDs); err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"status": "reordered"})
}

func (h *Handler) ViolationsList(w http.ResponseWriter, r *http.Request) {
	stationID, err := parseOptionalUUID(r.URL.Query().Get("station_id"))
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid station_id"})
		return
	}

	violations, err := h.Compliance.OngoingViolations(r.Context(), stationID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"violations": violations,
		"count":      len(violations),
	})
}

func (h *Handler) ViolationAck(w http.ResponseWriter, r *http.Request) {
	claim, ok := middleware.ClaimFrom(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "no identity"})
		return
	}

	violationID, err := parseID(r)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	if err := h.Compliance.AcknowledgeViolation(r.Context(), claim, violationID); err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"status": "acknowledged"})
}

func parseID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "id"))
}

func parseOptionalUUID(s string) (*uuid.UUID, error) {
	if s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
