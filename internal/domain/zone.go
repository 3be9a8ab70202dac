package domain

import (
	"time"

	"github.com/google/uuid"
)

type ZoneKind string

const (
	ZoneRisk       ZoneKind = "risk"
	ZoneDuty       ZoneKind = "duty"
	ZoneCheckpoint ZoneKind = "checkpoint"
	ZonePOI        ZoneKind = "poi"
)

// DefaultCheckpointRadiusM applies when a checkpoint is created without an
// explicit radius. The risk-zone default comes from config.
const DefaultCheckpointRadiusM = 50.0

type Zone struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	Kind           ZoneKind   `json:"kind"`
	Center         Coordinate `json:"center"`
	RadiusM        float64    `json:"radius_m"`
	StationID      uuid.UUID  `json:"station_id"`
	Active         bool       `json:"active"`
	RiskLevel      int        `json:"risk_level,omitempty"`
	RequiredVisits int        `json:"required_visits,omitempty"` // per reporting day, risk zones only
	Sequence       int        `json:"sequence,omitempty"`        // checkpoint order within a plan
	Timezone       string     `json:"timezone"`                  // IANA name of the reporting calendar
	CreatedAt      time.Time  `json:"created_at"`
}

// ZoneMatch pairs a zone with its distance from a query point, for nearby
// lookups.
type ZoneMatch struct {
	Zone      Zone    `json:"zone"`
	DistanceM float64 `json:"distance_m"`
}

type ComplianceStatus string

const (
	ComplianceComplete ComplianceStatus = "COMPLETE"
	CompliancePending  ComplianceStatus = "PENDING"
)

// ComplianceWindow is derived per zone and calendar day, never persisted.
type ComplianceWindow struct {
	ZoneID         uuid.UUID        `json:"zone_id"`
	Day            string           `json:"day"` // YYYY-MM-DD in the zone's reporting timezone
	ActualVisits   int              `json:"actual_visits"`
	RequiredVisits int              `json:"required_visits"`
	Percentage     float64          `json:"percentage"`
	Status         ComplianceStatus `json:"status"`
}
