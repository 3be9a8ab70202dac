package domain

import (
	"time"

	"github.com/google/uuid"
)

// CheckpointVisit is only created once the reported coordinate is inside the
// checkpoint radius; the geofence check is enforced at creation time.
type CheckpointVisit struct {
	ID           uuid.UUID  `json:"id"`
	CheckpointID uuid.UUID  `json:"checkpoint_id"`
	OfficerID    uuid.UUID  `json:"officer_id"`
	Position     Coordinate `json:"position"`
	PhotoURL     string     `json:"photo_url,omitempty"`
	Note         string     `json:"note,omitempty"`
	ArrivedAt    time.Time  `json:"arrived_at"`
	LeftAt       *time.Time `json:"left_at,omitempty"`
}

// PatrolPlan is an ordered checkpoint route assignable to an officer for a
// calendar day.
type PatrolPlan struct {
	ID            uuid.UUID   `json:"id"`
	Name          string      `json:"name"`
	StationID     uuid.UUID   `json:"station_id"`
	CheckpointIDs []uuid.UUID `json:"checkpoint_ids"`
	CreatedAt     time.Time   `json:"created_at"`
}

type PlanAssignment struct {
	ID        uuid.UUID `json:"id"`
	PlanID    uuid.UUID `json:"plan_id"`
	OfficerID uuid.UUID `json:"officer_id"`
	Day       string    `json:"day"` // YYYY-MM-DD
	CreatedAt time.Time `json:"created_at"`
}
