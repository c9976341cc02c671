package odometer

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type vehicleReadings interface {
	LatestFuelOdometer(ctx context.Context, vehicleID uuid.UUID) (int, error)
	LatestTripEndOdometer(ctx context.Context, vehicleID uuid.UUID) (int, error)
}

// Resolver derives a vehicle's current odometer reading from its two
// sources: the most recent fuel log and the most recent completed trip.
// The higher of the two wins. A result of 0 means the vehicle has no usable
// data and cannot be evaluated.
//
// Resolved readings are cached for the remainder of the run. The cache must
// be reset between runs because both sources change in the meantime; the
// orchestrator owns that lifecycle.
type Resolver struct {
	readings vehicleReadings
	cache    map[uuid.UUID]int
}

// NewResolver creates a resolver with an empty run-scoped cache.
func NewResolver(readings vehicleReadings) *Resolver {
	return &Resolver{
		readings: readings,
		cache:    make(map[uuid.UUID]int),
	}
}

// Resolve returns the vehicle's latest known odometer reading in kilometers.
func (r *Resolver) Resolve(ctx context.Context, vehicleID uuid.UUID) (int, error) {
	if km, ok := r.cache[vehicleID]; ok {
		return km, nil
	}

	fuelKm, err := r.readings.LatestFuelOdometer(ctx, vehicleID)
	if err != nil {
		return 0, fmt.Errorf("latest fuel odometer: %w", err)
	}

	tripKm, err := r.readings.LatestTripEndOdometer(ctx, vehicleID)
	if err != nil {
		return 0, fmt.Errorf("latest trip end odometer: %w", err)
	}

	km := fuelKm
	if tripKm > km {
		km = tripKm
	}

	// 0 is "unknown" and must be re-checked on the next lookup.
	if km > 0 {
		r.cache[vehicleID] = km
	}

	return km, nil
}

// Reset clears the run-scoped cache.
func (r *Resolver) Reset() {
	r.cache = make(map[uuid.UUID]int)
}
