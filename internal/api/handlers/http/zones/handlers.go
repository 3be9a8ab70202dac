package zones

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"patrolwatch/internal/domain"
	"patrolwatch/internal/middleware"
	"patrolwatch/pkg/validator"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type ZoneOps interface {
	Create(ctx context.Context, claim domain.Claim, req domain.CreateZoneRequest) (*domain.Zone, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Zone, error)
	Update(ctx context.Context, claim domain.Claim, id uuid.UUID, req domain.UpdateZoneRequest) (*domain.Zone, error)
	Deactivate(ctx context.Context, claim domain.Claim, id uuid.UUID) error
	ActiveZones(ctx context.Context, stationID *uuid.UUID, kind domain.ZoneKind) ([]domain.Zone, error)
	Nearby(ctx context.Context, point domain.Coordinate, radiusKm float64, kind domain.ZoneKind) ([]domain.ZoneMatch, error)
}

type WindowOps interface {
	Window(ctx context.Context, zoneID uuid.UUID, day string) (*domain.ComplianceWindow, error)
}

type StatsOps interface {
	GetStats(ctx context.Context, req domain.StatsRequest) (*domain.Stats, error)
}

type Handler struct {
	logger     *slog.Logger
	Zones      ZoneOps
	Compliance WindowOps
	Stats      StatsOps
}

func NewHandler(logger *slog.Logger, zones ZoneOps, compliance WindowOps, stats StatsOps) *Handler {
	return &Handler{
		logger:     logger,
		Zones:      zones,
		Compliance: compliance,
		Stats:      stats,
	}
}

func (h *Handler) ZoneCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	claim, ok := middleware.ClaimFrom(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "no identity"})
		return
	}

	var req domain.CreateZoneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	zone, err := h.Zones.Create(r.Context(), claim, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("zone created",
		slog.String("zone_id", zone.ID.String()),
		slog.String("kind", string(zone.Kind)),
		slog.String("name", zone.Name),
	)
	h.writeJSON(w, http.StatusCreated, zone)
}

func (h *Handler) ZoneGet(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	zone, err := h.Zones.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, zone)
}

func (h *Handler) ZoneUpdate(w http.ResponseWriter, r *http.Request) {
	claim, ok := middleware.ClaimFrom(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "no identity"})
		return
	}

	id, err := parseID(r)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	var req domain.UpdateZoneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	zone, err := h.Zones.Update(r.Context(), claim, id, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, zone)
}

func (h *Handler) ZoneDeactivate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	claim, ok := middleware.ClaimFrom(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "no identity"})
		return
	}

	id, err := parseID(r)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	if err := h.Zones.Deactivate(r.Context(), claim, id); err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("zone deactivated", slog.String("zone_id", id.String()))
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "deactivated"})
}

func (h *Handler) ZoneList(w http.ResponseWriter, r *http.Request) {
	stationID, err := parseOptionalUUID(r.URL.Query().Get("station_id"))
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid station_id"})
		return
	}
	kind := domain.ZoneKind(r.URL.Query().Get("kind"))

	zones, err := h.Zones.ActiveZones(r.Context(), stationID, kind)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"zones": zones,
		"count": len(zones),
	})
}

func (h *Handler) ZoneNearby(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	lat, err1 := strconv.ParseFloat(q.Get("lat"), 64)
	lng, err2 := strconv.ParseFloat(q.Get("lng"), 64)
	if err1 != nil || err2 != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "lat and lng are required"})
		return
	}

	radiusKm := 5.0
	if s := q.Get("radius_km"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || v <= 0 {
			h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid radius_km"})
			return
		}
		radiusKm = v
	}
	kind := domain.ZoneKind(q.Get("kind"))

	matches, err := h.Zones.Nearby(r.Context(), domain.Coordinate{Lat: lat, Lng: lng}, radiusKm, kind)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"zones":     matches,
		"count":     len(matches),
		"radius_km": radiusKm,
	})
}

func (h *Handler) ComplianceWindow(w http.ResponseWriter, r *http.Request) {
	zoneID, err := parseID(r)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	day := r.URL.Query().Get("day")

	window, err := h.Compliance.Window(r.Context(), zoneID, day)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, window)
}

func (h *Handler) StationStats(w http.ResponseWriter, r *http.Request) {
	stationID, err := parseOptionalUUID(r.URL.Query().Get("station_id"))
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid station_id"})
		return
	}
	minutes := parseInt(r.URL.Query().Get("minutes"), 60)

	stats, err := h.Stats.GetStats(r.Context(), domain.StatsRequest{
		StationID: stationID,
		Minutes:   minutes,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, stats)
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
