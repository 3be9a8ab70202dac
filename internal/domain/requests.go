package domain

import "github.com/google/uuid"

type CreateZoneRequest struct {
	Name           string   `json:"name" validate:"required"`
	Kind           ZoneKind `json:"kind" validate:"required,oneof=risk duty checkpoint poi"`
	Lat            float64  `json:"lat" validate:"lat"`
	Lng            float64  `json:"lng" validate:"lng"`
	RadiusM        *float64 `json:"radius_m,omitempty" validate:"omitempty,radius_m"`
	RiskLevel      int      `json:"risk_level,omitempty" validate:"min=0,max=5"`
	RequiredVisits int      `json:"required_visits,omitempty"`
	Timezone       string   `json:"timezone,omitempty"`
}

type UpdateZoneRequest struct {
	Name           *string  `json:"name,omitempty"`
	Lat            *float64 `json:"lat,omitempty" validate:"omitempty,lat"`
	Lng            *float64 `json:"lng,omitempty" validate:"omitempty,lng"`
	RadiusM        *float64 `json:"radius_m,omitempty" validate:"omitempty,radius_m"`
	RiskLevel      *int     `json:"risk_level,omitempty"`
	RequiredVisits *int     `json:"required_visits,omitempty"`
}

type BreadcrumbRequest struct {
	Lat        float64  `json:"lat" validate:"lat"`
	Lng        float64  `json:"lng" validate:"lng"`
	AccuracyM  *float64 `json:"accuracy_m,omitempty"`
	SpeedMS    *float64 `json:"speed_ms,omitempty"`
	HeadingDeg *float64 `json:"heading_deg,omitempty"`
}

type CheckinRequest struct {
	Lat    float64    `json:"lat" validate:"lat"`
	Lng    float64    `json:"lng" validate:"lng"`
	ZoneID *uuid.UUID `json:"zone_id,omitempty"`
	Note   string     `json:"note,omitempty"`
}

type CheckpointVisitRequest struct {
	Lat      float64 `json:"lat" validate:"lat"`
	Lng      float64 `json:"lng" validate:"lng"`
	PhotoURL string  `json:"photo_url,omitempty"`
	Note     string  `json:"note,omitempty"`
}

type AssignPlanRequest struct {
	OfficerID uuid.UUID `json:"officer_id" validate:"required"`
	Day       string    `json:"day" validate:"required"`
}

type ReorderCheckpointsRequest struct {
	CheckpointIDs []uuid.UUID `json:"checkpoint_ids" validate:"required,min=1"`
}

type CreateAlertRequest struct {
	Type      AlertType  `json:"type" validate:"required"`
	Lat       float64    `json:"lat" validate:"lat"`
	Lng       float64    `json:"lng" validate:"lng"`
	Message   string     `json:"message,omitempty"`
	StationID *uuid.UUID `json:"station_id,omitempty"`
}

type RespondAlertRequest struct {
	Message    string      `json:"message,omitempty"`
	Position   *Coordinate `json:"position,omitempty"`
	EtaMinutes *int        `json:"eta_minutes,omitempty"`
}

type ResolveAlertRequest struct {
	Note string `json:"note,omitempty"`
}

type StatsRequest struct {
	StationID *uuid.UUID `json:"station_id,omitempty"`
	Minutes   int        `json:"minutes" validate:"min=1,max=1440"`
}

type Stats struct {
	ActiveOfficers         int64   `json:"active_officers"`
	TotalBreadcrumbs       int64   `json:"total_breadcrumbs"`
	OpenViolations         int64   `json:"open_violations"`
	AverageResponseMinutes float64 `json:"average_response_minutes"`
	Minutes                int     `json:"minutes"`
}
