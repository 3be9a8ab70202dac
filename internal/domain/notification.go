package domain

import (
	"time"

	"github.com/google/uuid"
)

// Notification targets one officer, one station, or everyone. Both target
// fields nil means broadcast-to-all.
type Notification struct {
	ID        uuid.UUID  `json:"id"`
	OfficerID *uuid.UUID `json:"officer_id,omitempty"`
	StationID *uuid.UUID `json:"station_id,omitempty"`
	Title     string     `json:"title"`
	Body      string     `json:"body,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
