package realtime

import (
	"log/slog"
	"net/http"

	"patrolwatch/internal/hub"
	"patrolwatch/internal/middleware"

	"github.com/coder/websocket"
)

type Handler struct {
	logger *slog.Logger
	hub    *hub.Hub
}

func NewHandler(logger *slog.Logger, h *hub.Hub) *Handler {
	return &Handler{logger: logger, hub: h}
}

// Attach upgrades the request and hands the connection to the hub. Identity
// must already be in context, the route sits behind the identity middleware.
func (h *Handler) Attach(w http.ResponseWriter, r *http.Request) {
	claim, ok := middleware.ClaimFrom(r.Context())
	if !ok {
		http.Error(w, "no identity", http.StatusUnauthorized)
		return
	}

	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket accept failed",
			slog.String("officer_id", claim.OfficerID.String()),
			slog.Any("error", err),
		)
		return
	}

	client := hub.NewClient(claim, conn, h.hub)
	client.Start()
}
