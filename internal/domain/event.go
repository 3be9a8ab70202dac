package domain

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

type EventType string

const (
	EventLocationUpdated     EventType = "location.updated"
	EventAlertCreated        EventType = "alert.created"
	EventAlertUpdated        EventType = "alert.updated"
	EventNotificationCreated EventType = "notification.created"
)

// Event is one realtime push, tagged with the logical channels it should be
// delivered to. Delivery is at-most-once, best-effort.
type Event struct {
	Type     EventType       `json:"type"`
	Channels []string        `json:"channels"`
	Data     json.RawMessage `json:"data"`
}

func UserChannel(officerID uuid.UUID) string  { return fmt.Sprintf("user:%s", officerID) }
func StationChannel(stationID uuid.UUID) string { return fmt.Sprintf("station:%s", stationID) }

const BroadcastChannel = "broadcast"

// NotificationChannels resolves a notification's target fields to the
// channel set it should be pushed on. No target means broadcast-to-all.
func NotificationChannels(n Notification) []string {
	switch {
	case n.OfficerID != nil:
		return []string{UserChannel(*n.OfficerID)}
	case n.StationID != nil:
		return []string{StationChannel(*n.StationID)}
	default:
		return []string{BroadcastChannel}
	}
}
