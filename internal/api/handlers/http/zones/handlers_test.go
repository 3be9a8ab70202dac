package zones_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"patrolwatch/internal/api/handlers/http/zones"
	mock_zones "patrolwatch/internal/api/handlers/http/zones/mocks"
	"patrolwatch/internal/domain"
	"patrolwatch/internal/middleware"
	"patrolwatch/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func addChiURLParam(r *http.Request, key, val string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, val)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func withClaim(r *http.Request, claim domain.Claim) *http.Request {
	return r.WithContext(middleware.WithClaim(r.Context(), claim))
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v, body=%s", err, rr.Body.String())
	}
	return out
}

func newZoneHandler(ctrl *gomock.Controller) (*zones.Handler, *mock_zones.MockZoneOps, *mock_zones.MockWindowOps, *mock_zones.MockStatsOps) {
	zoneSvc := mock_zones.NewMockZoneOps(ctrl)
	windowSvc := mock_zones.NewMockWindowOps(ctrl)
	statsSvc := mock_zones.NewMockStatsOps(ctrl)
	return zones.NewHandler(newTestLogger(), zoneSvc, windowSvc, statsSvc), zoneSvc, windowSvc, statsSvc
}

func TestZoneCreate_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, zoneSvc, _, _ := newZoneHandler(ctrl)

	claim := domain.Claim{OfficerID: uuid.New(), StationID: uuid.New(), Role: domain.RoleStation}

	reqBody := `{"name":"Market Square","kind":"risk","lat":55.75,"lng":37.61,"risk_level":3,"required_visits":4}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/zones/", bytes.NewBufferString(reqBody))
	req.Header.Set("Content-Type", "application/json")
	req = withClaim(req, claim)
	rr := httptest.NewRecorder()

	want := &domain.Zone{
		ID:        uuid.New(),
		StationID: claim.StationID,
		Name:      "Market Square",
		Kind:      domain.ZoneRisk,
		Center:    domain.Coordinate{Lat: 55.75, Lng: 37.61},
		RadiusM:   300,
		Active:    true,
	}

	zoneSvc.EXPECT().
		Create(gomock.Any(), claim, domain.CreateZoneRequest{
			Name:           "Market Square",
			Kind:           domain.ZoneRisk,
			Lat:            55.75,
			Lng:            37.61,
			RiskLevel:      3,
			RequiredVisits: 4,
		}).
		Return(want, nil).
		Times(1)

	h.ZoneCreate(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d, body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}

	got := decodeJSON[map[string]any](t, rr)
	if got["id"] != want.ID.String() {
		t.Fatalf("expected id=%s got=%v", want.ID.String(), got["id"])
	}
}

func TestZoneCreate_NoIdentity_401(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, _ := newZoneHandler(ctrl)

	reqBody := `{"name":"Market Square","kind":"risk","lat":55.75,"lng":37.61}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/zones/", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	h.ZoneCreate(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected %d got %d, body=%s", http.StatusUnauthorized, rr.Code, rr.Body.String())
	}
}

func TestZoneCreate_BadKind_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, _ := newZoneHandler(ctrl)

	reqBody := `{"name":"Market Square","kind":"volcano","lat":55.75,"lng":37.61}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/zones/", bytes.NewBufferString(reqBody))
	req = withClaim(req, domain.Claim{OfficerID: uuid.New(), Role: domain.RoleStation})
	rr := httptest.NewRecorder()

	h.ZoneCreate(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestZoneDeactivate_Forbidden_403(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, zoneSvc, _, _ := newZoneHandler(ctrl)

	claim := domain.Claim{OfficerID: uuid.New(), Role: domain.RoleOfficer}
	zoneID := uuid.New()

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/zones/"+zoneID.String(), nil)
	req = addChiURLParam(req, "id", zoneID.String())
	req = withClaim(req, claim)
	rr := httptest.NewRecorder()

	zoneSvc.EXPECT().
		Deactivate(gomock.Any(), claim, zoneID).
		Return(e.ErrForbidden).
		Times(1)

	h.ZoneDeactivate(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected %d got %d, body=%s", http.StatusForbidden, rr.Code, rr.Body.String())
	}
}

func TestZoneList_InvalidStationID_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, _ := newZoneHandler(ctrl)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/zones/?station_id=not-a-uuid", nil)
	rr := httptest.NewRecorder()

	h.ZoneList(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestZoneNearby_DefaultRadius(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, zoneSvc, _, _ := newZoneHandler(ctrl)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/zones/nearby?lat=55.75&lng=37.61", nil)
	rr := httptest.NewRecorder()

	zoneSvc.EXPECT().
		Nearby(gomock.Any(), domain.Coordinate{Lat: 55.75, Lng: 37.61}, 5.0, domain.ZoneKind("")).
		Return([]domain.ZoneMatch{
			{Zone: domain.Zone{ID: uuid.New(), Name: "Market Square"}, DistanceM: 120},
		}, nil).
		Times(1)

	h.ZoneNearby(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	got := decodeJSON[map[string]any](t, rr)
	if got["radius_km"] != float64(5) {
		t.Fatalf("expected radius_km=5 got=%v", got["radius_km"])
	}
	if got["count"] != float64(1) {
		t.Fatalf("expected count=1 got=%v", got["count"])
	}
}

func TestZoneNearby_MissingCoords_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, _ := newZoneHandler(ctrl)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/zones/nearby?lat=55.75", nil)
	rr := httptest.NewRecorder()

	h.ZoneNearby(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestComplianceWindow_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, windowSvc, _ := newZoneHandler(ctrl)

	zoneID := uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/zones/"+zoneID.String()+"/compliance?day=2026-08-31", nil)
	req = addChiURLParam(req, "id", zoneID.String())
	rr := httptest.NewRecorder()

	windowSvc.EXPECT().
		Window(gomock.Any(), zoneID, "2026-08-31").
		Return(&domain.ComplianceWindow{
			ZoneID:         zoneID,
			Day:            "2026-08-31",
			ActualVisits:   2,
			RequiredVisits: 4,
			Percentage:     50,
			Status:         domain.CompliancePending,
		}, nil).
		Times(1)

	h.ComplianceWindow(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	got := decodeJSON[map[string]any](t, rr)
	if got["percentage"] != float64(50) {
		t.Fatalf("expected percentage=50 got=%v", got["percentage"])
	}
}

func TestStationStats_DefaultMinutes(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, statsSvc := newZoneHandler(ctrl)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil)
	rr := httptest.NewRecorder()

	statsSvc.EXPECT().
		GetStats(gomock.Any(), domain.StatsRequest{Minutes: 60}).
		Return(&domain.Stats{
			ActiveOfficers:         8,
			TotalBreadcrumbs:       1204,
			OpenViolations:         2,
			AverageResponseMinutes: 5.5,
			Minutes:                60,
		}, nil).
		Times(1)

	h.StationStats(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	got := decodeJSON[map[string]any](t, rr)
	if got["active_officers"] != float64(8) {
		t.Fatalf("expected active_officers=8 got=%v", got["active_officers"])
	}
	if got["minutes"] != float64(60) {
		t.Fatalf("expected minutes=60 got=%v", got["minutes"])
	}
}
