package model

import (
	"time"

	"github.com/google/uuid"
)

// Reminder is a maintenance task tied to a vehicle, due by odometer reading
// and/or calendar date. Either due field may be absent; a reminder with
// neither never becomes urgent or overdue.
//
// The engine mutates only LastNotificationSent; completion fields are
// written by the owning application. The update is field-level, so the two
// writers never clobber each other.
type Reminder struct {
	ID                   uuid.UUID  `json:"id"`
	VehicleID            uuid.UUID  `json:"vehicle_id"`
	ServiceType          string     `json:"service_type"`
	DueOdometerKm        *int       `json:"due_odometer_km,omitempty"`
	DueDate              *time.Time `json:"due_date,omitempty"`
	IsCompleted          bool       `json:"is_completed"`
	LastNotificationSent *time.Time `json:"last_notification_sent,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
}
