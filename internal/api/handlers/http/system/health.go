package system

import (
	"encoding/json"
	"net/http"

	"log/slog"
)

type HubStatus interface {
	ClientCount() int
}

type Handler struct {
	logger *slog.Logger
	hub    HubStatus
}

func NewHandler(logger *slog.Logger, hub HubStatus) *Handler {
	return &Handler{logger: logger, hub: hub}
}

func (h *Handler) SystemHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":  "ok",
		"clients": h.hub.ClientCount(),
	})
}
