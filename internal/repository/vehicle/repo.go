package vehicle

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aletkin/carminder/internal/model"
)

// Repository provides read access to vehicles and their odometer sources.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new vehicle repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// ListVehicles retrieves every tracked vehicle.
func (r *Repository) ListVehicles(ctx context.Context) ([]model.Vehicle, error) {
	query := `
		SELECT id, make, model, year, created_at
		FROM vehicles
		ORDER BY created_at;
    `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	defer rows.Close()

	var vehicles []model.Vehicle
	for rows.Next() {
		var v model.Vehicle
		if err := rows.Scan(&v.ID, &v.Make, &v.Model, &v.Year, &v.CreatedAt); err != nil {
			return nil, err
		}

		vehicles = append(vehicles, v)
	}

	return vehicles, rows.Err()
}

// LatestFuelOdometer retrieves the highest odometer reading among the
// vehicle's fuel logs. It returns 0 when the vehicle has no fuel logs.
func (r *Repository) LatestFuelOdometer(ctx context.Context, vehicleID uuid.UUID) (int, error) {
	query := `
		SELECT odometer_km
		FROM fuel_logs
		WHERE vehicle_id = $1
		ORDER BY odometer_km DESC
		LIMIT 1;
    `

	var km int
	err := r.db.QueryRowContext(ctx, query, vehicleID).Scan(&km)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}

		return 0, fmt.Errorf("failed to get latest fuel odometer: %w", err)
	}

	return km, nil
}

// LatestTripEndOdometer retrieves the highest end odometer among the
// vehicle's completed trips. It returns 0 when no completed trips exist.
func (r *Repository) LatestTripEndOdometer(ctx context.Context, vehicleID uuid.UUID) (int, error) {
	query := `
		SELECT end_odometer_km
		FROM trips
		WHERE vehicle_id = $1 AND status = 'completed'
		ORDER BY end_odometer_km DESC
		LIMIT 1;
    `

	var km int
	err := r.db.QueryRowContext(ctx, query, vehicleID).Scan(&km)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}

		return 0, fmt.Errorf("failed to get latest trip end odometer: %w", err)
	}

	return km, nil
}
