package domain

import (
	"time"

	"github.com/google/uuid"
)

type ViolationType string

const (
	ViolationOutOfZone     ViolationType = "out_of_zone"
	ViolationStalePosition ViolationType = "stale_position"
)

// Violation is a compliance breach detected by the evaluator. EndedAt nil
// means ongoing; an officer has at most one ongoing violation per type, and
// a repeated detection extends the open record instead of duplicating it.
type Violation struct {
	ID              uuid.UUID     `json:"id"`
	OfficerID       uuid.UUID     `json:"officer_id"`
	StationID       uuid.UUID     `json:"station_id"`
	Type            ViolationType `json:"type"`
	StartedAt       time.Time     `json:"started_at"`
	EndedAt         *time.Time    `json:"ended_at,omitempty"`
	DurationMinutes *float64      `json:"duration_minutes,omitempty"`
	Acknowledged    bool          `json:"acknowledged"`
	AcknowledgedBy  *uuid.UUID    `json:"acknowledged_by,omitempty"`
	AcknowledgedAt  *time.Time    `json:"acknowledged_at,omitempty"`
}
