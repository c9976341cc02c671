package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Vehicle is a tracked vehicle. Owned by the store; the engine only reads it.
type Vehicle struct {
	ID        uuid.UUID `json:"id"`
	Make      string    `json:"make"`
	Model     string    `json:"model"`
	Year      int       `json:"year"`
	CreatedAt time.Time `json:"created_at"`
}

// DisplayName returns the human-readable vehicle name used in notifications.
func (v Vehicle) DisplayName() string {
	return fmt.Sprintf("%s %s", v.Make, v.Model)
}

// FuelLog is a single refuelling record with the odometer reading at fill-up time.
type FuelLog struct {
	ID         uuid.UUID `json:"id"`
	VehicleID  uuid.UUID `json:"vehicle_id"`
	OdometerKm int       `json:"odometer_km"`
	Liters     float64   `json:"liters"`
	LoggedAt   time.Time `json:"logged_at"`
}

// Trip statuses.
const (
	TripInProgress = "in_progress"
	TripCompleted  = "completed"
)

// Trip is a recorded drive. Only completed trips carry a usable end odometer.
type Trip struct {
	ID              uuid.UUID `json:"id"`
	VehicleID       uuid.UUID `json:"vehicle_id"`
	StartOdometerKm int       `json:"start_odometer_km"`
	EndOdometerKm   int       `json:"end_odometer_km"`
	Status          string    `json:"status"`
	StartedAt       time.Time `json:"started_at"`
	EndedAt         time.Time `json:"ended_at"`
}
