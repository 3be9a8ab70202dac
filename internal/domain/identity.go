package domain

import "github.com/google/uuid"

type Role string

const (
	RoleOfficer Role = "officer"
	RoleStation Role = "station"
	RoleAdmin   Role = "admin"
)

// Claim is the verified identity of the caller. It is issued and verified by
// the external auth gateway; this system only consumes it.
type Claim struct {
	OfficerID uuid.UUID `json:"officer_id"`
	Role      Role      `json:"role"`
	StationID uuid.UUID `json:"station_id"`
}

// StationScope reports whether the claim may manage station-owned resources.
func (c Claim) StationScope() bool {
	return c.Role == RoleStation || c.Role == RoleAdmin
}
