package domain

import (
	"time"

	"github.com/google/uuid"
)

// PatrolSession tracks one officer shift. EndedAt nil means the session is
// active; at most one active session exists per officer.
type PatrolSession struct {
	ID          uuid.UUID    `json:"id"`
	OfficerID   uuid.UUID    `json:"officer_id"`
	StationID   uuid.UUID    `json:"station_id"`
	StartedAt   time.Time    `json:"started_at"`
	EndedAt     *time.Time   `json:"ended_at,omitempty"`
	Breadcrumbs []Breadcrumb `json:"breadcrumbs,omitempty"`
}

func (s *PatrolSession) IsActive() bool { return s.EndedAt == nil }

// Breadcrumb is one timestamped GPS sample within a patrol session.
type Breadcrumb struct {
	ID         int64      `json:"id"`
	SessionID  uuid.UUID  `json:"session_id"`
	Position   Coordinate `json:"position"`
	AccuracyM  *float64   `json:"accuracy_m,omitempty"`
	SpeedMS    *float64   `json:"speed_ms,omitempty"`
	HeadingDeg *float64   `json:"heading_deg,omitempty"`
	CapturedAt time.Time  `json:"captured_at"`
}

// ActiveSession pairs an officer's live session with its latest breadcrumb
// only, to bound dashboard response sizes.
type ActiveSession struct {
	Session PatrolSession `json:"session"`
	Latest  *Breadcrumb   `json:"latest,omitempty"`
}

// CheckinEvent records a manual or automatic zone check-in. ZoneID is nil for
// an unassigned check-in (no enclosing zone found at the reported position).
type CheckinEvent struct {
	ID        uuid.UUID  `json:"id"`
	OfficerID uuid.UUID  `json:"officer_id"`
	ZoneID    *uuid.UUID `json:"zone_id,omitempty"`
	Position  Coordinate `json:"position"`
	Note      string     `json:"note,omitempty"`
	CheckedAt time.Time  `json:"checked_at"`
}
