package alerts

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
type AlertOps interface {
	Create(ctx context.Context, claim domain.Claim, req domain.CreateAlertRequest) (*domain.Alert, error)
	Respond(ctx context.Context, claim domain.Claim, alertID uuid.UUID, req domain.RespondAlertRequest) (*domain.Alert, error)
	Resolve(ctx context.Context, alertID uuid.UUID, note string) (*domain.Alert, error)
	MarkFalseAlarm(ctx context.Context, alertID uuid.UUID, note string) (*domain.Alert, error)
	Cancel(ctx context.Context, claim domain.Claim, alertID uuid.UUID) (*domain.Alert, error)
}

type Handler struct {
	logger *slog.Logger
	Alerts AlertOps
}

func NewHandler(logger *slog.Logger, alerts AlertOps) *Handler {
	return &Handler{logger: logger, Alerts: alerts}
}

func (h *Handler) AlertCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	claim, ok := middleware.ClaimFrom(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "no identity"})
		return
	}

	var req domain.CreateAlertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	alert, err := h.Alerts.Create(r.Context(), claim, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("alert created",
		slog.String("alert_id", alert.ID.String()),
		slog.String("type", string(alert.Type)),
	)
	h.writeJSON(w, http.StatusCreated, alert)
}

func (h *Handler) AlertRespond(w http.ResponseWriter, r *http.Request) {
	claim, ok := middleware.ClaimFrom(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "no identity"})
		return
	}

	alertID, err := parseID(r)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	var req domain.RespondAlertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	alert, err := h.Alerts.Respond(r.Context(), claim, alertID, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, alert)
}

func (h *Handler) AlertResolve(w http.ResponseWriter, r *http.Request) {
	h.closeAlert(w, r, func(ctx context.Context, alertID uuid.UUID, note string) (*domain.Alert, error) {
		return h.Alerts.Resolve(ctx, alertID, note)
	})
}

func (h *Handler) AlertFalseAlarm(w http.ResponseWriter, r *http.Request) {
	h.closeAlert(w, r, func(ctx context.Context, alertID uuid.UUID, note string) (*domain.Alert, error) {
		return h.Alerts.MarkFalseAlarm(ctx, alertID, note)
	})
}

func (h *Handler) AlertCancel(w http.ResponseWriter, r *http.Request) {
	claim, ok := middleware.ClaimFrom(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "no identity"})
		return
	}

	alertID, err := parseID(r)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	alert, err := h.Alerts.Cancel(r.Context(), claim, alertID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, alert)
}

func (h *Handler) closeAlert(w http.ResponseWriter, r *http.Request, fn func(context.Context, uuid.UUID, string) (*domain.Alert, error)) {
	alertID, err := parseID(r)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	var req domain.ResolveAlertRequest
	if r.Body != nil {
		// note body is optional
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	alert, err := fn(r.Context(), alertID, req.Note)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, alert)
}

func parseID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "id"))
}
