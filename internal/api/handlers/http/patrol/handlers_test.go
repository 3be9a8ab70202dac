package patrol_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"patrolwatch/internal/api/handlers/http/patrol"
	mock_patrol "patrolwatch/internal/api/handlers/http/patrol/mocks"
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

func newPatrolHandler(ctrl *gomock.Controller) (*patrol.Handler, *mock_patrol.MockPatrolOps, *mock_patrol.MockComplianceOps) {
	patrolSvc := mock_patrol.NewMockPatrolOps(ctrl)
	complianceSvc := mock_patrol.NewMockComplianceOps(ctrl)
	return patrol.NewHandler(newTestLogger(), patrolSvc, complianceSvc), patrolSvc, complianceSvc
}

func TestPatrolStart_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, patrolSvc, _ := newPatrolHandler(ctrl)

	claim := domain.Claim{OfficerID: uuid.New(), StationID: uuid.New(), Role: domain.RoleOfficer}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/patrol/start", nil)
	req = withClaim(req, claim)
	rr := httptest.NewRecorder()

	want := &domain.PatrolSession{
		ID:        uuid.New(),
		OfficerID: claim.OfficerID,
		StationID: claim.StationID,
		StartedAt: time.Now().UTC(),
	}

	patrolSvc.EXPECT().
		StartPatrol(gomock.Any(), claim).
		Return(want, nil).
		Times(1)

	h.PatrolStart(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d, body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}

	got := decodeJSON[map[string]any](t, rr)
	if got["id"] != want.ID.String() {
		t.Fatalf("expected id=%s got=%v", want.ID.String(), got["id"])
	}
}

func TestPatrolEnd_NoIdentity_401(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _ := newPatrolHandler(ctrl)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/patrol/end", nil)
	rr := httptest.NewRecorder()

	h.PatrolEnd(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected %d got %d, body=%s", http.StatusUnauthorized, rr.Code, rr.Body.String())
	}
}

func TestPatrolEnd_NoActiveSession_404(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, patrolSvc, _ := newPatrolHandler(ctrl)

	claim := domain.Claim{OfficerID: uuid.New(), Role: domain.RoleOfficer}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/patrol/end", nil)
	req = withClaim(req, claim)
	rr := httptest.NewRecorder()

	patrolSvc.EXPECT().
		EndPatrol(gomock.Any(), claim).
		Return(e.ErrNotFound).
		Times(1)

	h.PatrolEnd(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected %d got %d, body=%s", http.StatusNotFound, rr.Code, rr.Body.String())
	}
}

func TestBreadcrumb_BadLatitude_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _ := newPatrolHandler(ctrl)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/patrol/breadcrumbs",
		bytes.NewBufferString(`{"lat":95,"lng":37.61}`))
	req = withClaim(req, domain.Claim{OfficerID: uuid.New(), Role: domain.RoleOfficer})
	rr := httptest.NewRecorder()

	h.Breadcrumb(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestCheckpointVisit_OutOfRange_422(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, complianceSvc := newPatrolHandler(ctrl)

	claim := domain.Claim{OfficerID: uuid.New(), Role: domain.RoleOfficer}
	checkpointID := uuid.New()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkpoints/"+checkpointID.String()+"/visit",
		bytes.NewBufferString(`{"lat":55.75,"lng":37.61}`))
	req = addChiURLParam(req, "id", checkpointID.String())
	req = withClaim(req, claim)
	rr := httptest.NewRecorder()

	complianceSvc.EXPECT().
		RecordCheckpointVisit(gomock.Any(), claim, checkpointID, domain.CheckpointVisitRequest{Lat: 55.75, Lng: 37.61}).
		Return(nil, &e.OutOfRangeError{DistanceMeters: 480, RadiusMeters: 50}).
		Times(1)

	h.CheckpointVisit(rr, req)

	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected %d got %d, body=%s", http.StatusUnprocessableEntity, rr.Code, rr.Body.String())
	}

	got := decodeJSON[map[string]any](t, rr)
	if got["distance_m"] != float64(480) {
		t.Fatalf("expected distance_m=480 got=%v", got["distance_m"])
	}
}

func TestCheckpointLeave_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, complianceSvc := newPatrolHandler(ctrl)

	claim := domain.Claim{OfficerID: uuid.New(), Role: domain.RoleOfficer}
	checkpointID := uuid.New()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkpoints/"+checkpointID.String()+"/leave", nil)
	req = addChiURLParam(req, "id", checkpointID.String())
	req = withClaim(req, claim)
	rr := httptest.NewRecorder()

	complianceSvc.EXPECT().
		MarkCheckpointLeft(gomock.Any(), claim, checkpointID).
		Return(nil).
		Times(1)

	h.CheckpointLeave(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	got := decodeJSON[map[string]string](t, rr)
	if got["status"] != "left" {
		t.Fatalf("expected status=left got=%s", got["status"])
	}
}

func TestHistory_DefaultsToSevenDays(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, patrolSvc, _ := newPatrolHandler(ctrl)

	claim := domain.Claim{OfficerID: uuid.New(), Role: domain.RoleOfficer}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/patrol/history", nil)
	req = withClaim(req, claim)
	rr := httptest.NewRecorder()

	patrolSvc.EXPECT().
		History(gomock.Any(), claim.OfficerID, 7).
		Return([]domain.PatrolSession{{ID: uuid.New(), OfficerID: claim.OfficerID}}, nil).
		Times(1)

	h.History(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	got := decodeJSON[map[string]any](t, rr)
	if got["days"] != float64(7) {
		t.Fatalf("expected days=7 got=%v", got["days"])
	}
}

func TestSessionsActive_InvalidStationID_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _ := newPatrolHandler(ctrl)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/patrol/active?station_id=xyz", nil)
	rr := httptest.NewRecorder()

	h.SessionsActive(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestPlanAssign_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, patrolSvc, _ := newPatrolHandler(ctrl)

	claim := domain.Claim{OfficerID: uuid.New(), StationID: uuid.New(), Role: domain.RoleStation}
	planID := uuid.New()
	officerID := uuid.New()

	reqBody := `{"officer_id":"` + officerID.String() + `","day":"2026-08-31"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/plans/"+planID.String()+"/assign",
		bytes.NewBufferString(reqBody))
	req = addChiURLParam(req, "id", planID.String())
	req = withClaim(req, claim)
	rr := httptest.NewRecorder()

	patrolSvc.EXPECT().
		AssignPlan(gomock.Any(), claim, planID, officerID, "2026-08-31").
		Return(&domain.PlanAssignment{
			ID:        uuid.New(),
			PlanID:    planID,
			OfficerID: officerID,
			Day:       "2026-08-31",
		}, nil).
		Times(1)

	h.PlanAssign(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d, body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}

	got := decodeJSON[map[string]any](t, rr)
	if got["day"] != "2026-08-31" {
		t.Fatalf("expected day=2026-08-31 got=%v", got["day"])
	}
}

func TestPlanReorder_EmptyList_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _ := newPatrolHandler(ctrl)

	planID := uuid.New()

	req := httptest.NewRequest(http.MethodPut, "/api/v1/plans/"+planID.String()+"/checkpoints",
		bytes.NewBufferString(`{"checkpoint_ids":[]}`))
	req = addChiURLParam(req, "id", planID.String())
	req = withClaim(req, domain.Claim{OfficerID: uuid.New(), Role: domain.RoleStation})
	rr := httptest.NewRecorder()

	h.PlanReorder(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestViolationAck_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, complianceSvc := newPatrolHandler(ctrl)

	claim := domain.Claim{OfficerID: uuid.New(), StationID: uuid.New(), Role: domain.RoleStation}
	violationID := uuid.New()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/violations/"+violationID.String()+"/ack", nil)
	req = addChiURLParam(req, "id", violationID.String())
	req = withClaim(req, claim)
	rr := httptest.NewRecorder()

	complianceSvc.EXPECT().
		AcknowledgeViolation(gomock.Any(), claim, violationID).
		Return(nil).
		Times(1)

	h.ViolationAck(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	got := decodeJSON[map[string]string](t, rr)
	if got["status"] != "acknowledged" {
		t.Fatalf("expected status=acknowledged got=%s", got["status"])
	}
}
