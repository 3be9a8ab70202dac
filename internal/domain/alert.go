package domain

import (
	"time"

	"github.com/google/uuid"
)

type AlertType string

const (
	AlertGeneral       AlertType = "general"
	AlertUnderAttack   AlertType = "under_attack"
	AlertNeedBackup    AlertType = "need_backup"
	AlertMedical       AlertType = "medical"
	AlertVehicleBreak  AlertType = "vehicle_breakdown"
	AlertSuspectChase  AlertType = "suspect_pursuit"
)

func (t AlertType) Valid() bool {
	switch t {
	case AlertGeneral, AlertUnderAttack, AlertNeedBackup, AlertMedical, AlertVehicleBreak, AlertSuspectChase:
		return true
	}
	return false
}

type AlertStatus string

const (
	AlertActive     AlertStatus = "ACTIVE"
	AlertResponding AlertStatus = "RESPONDING"
	AlertResolved   AlertStatus = "RESOLVED"
	AlertFalseAlarm AlertStatus = "FALSE_ALARM"
	AlertCancelled  AlertStatus = "CANCELLED"
)

// Terminal reports whether the status permits no further transitions.
func (s AlertStatus) Terminal() bool {
	switch s {
	case AlertResolved, AlertFalseAlarm, AlertCancelled:
		return true
	}
	return false
}

// Alert is an SOS raised by an officer. RespondedAt/RespondedBy are set
// exactly once, on the first response, and never overwritten.
type Alert struct {
	ID             uuid.UUID       `json:"id"`
	OfficerID      uuid.UUID       `json:"officer_id"`
	StationID      uuid.UUID       `json:"station_id"`
	Type           AlertType       `json:"type"`
	Status         AlertStatus     `json:"status"`
	Position       Coordinate      `json:"position"`
	Message        string          `json:"message,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	RespondedAt    *time.Time      `json:"responded_at,omitempty"`
	RespondedBy    *uuid.UUID      `json:"responded_by,omitempty"`
	ResolvedAt     *time.Time      `json:"resolved_at,omitempty"`
	ResolutionNote string          `json:"resolution_note,omitempty"`
	Responses      []AlertResponse `json:"responses,omitempty"`
}

type AlertResponse struct {
	ID         uuid.UUID   `json:"id"`
	AlertID    uuid.UUID   `json:"alert_id"`
	OfficerID  uuid.UUID   `json:"officer_id"`
	Message    string      `json:"message,omitempty"`
	Position   *Coordinate `json:"position,omitempty"`
	EtaMinutes *int        `json:"eta_minutes,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
}
