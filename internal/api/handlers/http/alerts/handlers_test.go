package alerts_test

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

	"patrolwatch/internal/api/handlers/http/alerts"
	mock_alerts "patrolwatch/internal/api/handlers/http/alerts/mocks"
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

func TestAlertCreate_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	alertSvc := mock_alerts.NewMockAlertOps(ctrl)
	h := alerts.NewHandler(newTestLogger(), alertSvc)

	claim := domain.Claim{OfficerID: uuid.New(), StationID: uuid.New(), Role: domain.RoleOfficer}

	reqBody := `{"type":"medical","lat":55.75,"lng":37.61,"message":"need a medic"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/alerts/", bytes.NewBufferString(reqBody))
	req.Header.Set("Content-Type", "application/json")
	req = withClaim(req, claim)
	rr := httptest.NewRecorder()

	want := &domain.Alert{
		ID:        uuid.New(),
		OfficerID: claim.OfficerID,
		StationID: claim.StationID,
		Type:      domain.AlertMedical,
		Status:    domain.AlertActive,
		Position:  domain.Coordinate{Lat: 55.75, Lng: 37.61},
		Message:   "need a medic",
	}

	alertSvc.EXPECT().
		Create(gomock.Any(), claim, domain.CreateAlertRequest{
			Type:    domain.AlertMedical,
			Lat:     55.75,
			Lng:     37.61,
			Message: "need a medic",
		}).
		Return(want, nil).
		Times(1)

	h.AlertCreate(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d, body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}

	got := decodeJSON[map[string]any](t, rr)
	if got["id"] != want.ID.String() {
		t.Fatalf("expected id=%s got=%v", want.ID.String(), got["id"])
	}
	if got["status"] != string(domain.AlertActive) {
		t.Fatalf("expected status=%s got=%v", domain.AlertActive, got["status"])
	}
}

func TestAlertCreate_NoIdentity_401(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := alerts.NewHandler(newTestLogger(), mock_alerts.NewMockAlertOps(ctrl))

	reqBody := `{"type":"medical","lat":55.75,"lng":37.61}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/alerts/", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	h.AlertCreate(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected %d got %d, body=%s", http.StatusUnauthorized, rr.Code, rr.Body.String())
	}
}

func TestAlertCreate_InvalidJSON_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := alerts.NewHandler(newTestLogger(), mock_alerts.NewMockAlertOps(ctrl))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/alerts/", bytes.NewBufferString("{bad json"))
	req = withClaim(req, domain.Claim{OfficerID: uuid.New(), Role: domain.RoleOfficer})
	rr := httptest.NewRecorder()

	h.AlertCreate(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestAlertRespond_InvalidID_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := alerts.NewHandler(newTestLogger(), mock_alerts.NewMockAlertOps(ctrl))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/alerts/not-a-uuid/respond", bytes.NewBufferString(`{}`))
	req = addChiURLParam(req, "id", "not-a-uuid")
	req = withClaim(req, domain.Claim{OfficerID: uuid.New(), Role: domain.RoleOfficer})
	rr := httptest.NewRecorder()

	h.AlertRespond(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestAlertRespond_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	alertSvc := mock_alerts.NewMockAlertOps(ctrl)
	h := alerts.NewHandler(newTestLogger(), alertSvc)

	claim := domain.Claim{OfficerID: uuid.New(), StationID: uuid.New(), Role: domain.RoleOfficer}
	alertID := uuid.New()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/alerts/"+alertID.String()+"/respond",
		bytes.NewBufferString(`{"message":"on my way"}`))
	req = addChiURLParam(req, "id", alertID.String())
	req = withClaim(req, claim)
	rr := httptest.NewRecorder()

	alertSvc.EXPECT().
		Respond(gomock.Any(), claim, alertID, domain.RespondAlertRequest{Message: "on my way"}).
		Return(&domain.Alert{ID: alertID, Status: domain.AlertResponding}, nil).
		Times(1)

	h.AlertRespond(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	got := decodeJSON[map[string]any](t, rr)
	if got["status"] != string(domain.AlertResponding) {
		t.Fatalf("expected status=%s got=%v", domain.AlertResponding, got["status"])
	}
}

func TestAlertResolve_PassesNote(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	alertSvc := mock_alerts.NewMockAlertOps(ctrl)
	h := alerts.NewHandler(newTestLogger(), alertSvc)

	alertID := uuid.New()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/alerts/"+alertID.String()+"/resolve",
		bytes.NewBufferString(`{"note":"handled on scene"}`))
	req = addChiURLParam(req, "id", alertID.String())
	rr := httptest.NewRecorder()

	alertSvc.EXPECT().
		Resolve(gomock.Any(), alertID, "handled on scene").
		Return(&domain.Alert{ID: alertID, Status: domain.AlertResolved}, nil).
		Times(1)

	h.AlertResolve(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
}

func TestAlertCancel_Forbidden_403(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	alertSvc := mock_alerts.NewMockAlertOps(ctrl)
	h := alerts.NewHandler(newTestLogger(), alertSvc)

	claim := domain.Claim{OfficerID: uuid.New(), Role: domain.RoleOfficer}
	alertID := uuid.New()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/alerts/"+alertID.String()+"/cancel", nil)
	req = addChiURLParam(req, "id", alertID.String())
	req = withClaim(req, claim)
	rr := httptest.NewRecorder()

	alertSvc.EXPECT().
		Cancel(gomock.Any(), claim, alertID).
		Return(nil, e.ErrForbidden).
		Times(1)

	h.AlertCancel(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected %d got %d, body=%s", http.StatusForbidden, rr.Code, rr.Body.String())
	}
}
