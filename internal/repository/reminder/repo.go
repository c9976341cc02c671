package reminder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aletkin/carminder/internal/model"
)

// ErrReminderNotFound is returned when an update targets a missing reminder.
var ErrReminderNotFound = errors.New("reminder not found")

// Repository provides methods to interact with the reminders table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new reminder repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// ListPendingByVehicle retrieves the vehicle's reminders that are not yet
// completed. An empty result is normal and carries no error.
func (r *Repository) ListPendingByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]model.Reminder, error) {
	query := `
		SELECT id, vehicle_id, service_type, due_odometer_km, due_date,
		       is_completed, last_notification_sent, created_at
		FROM reminders
		WHERE vehicle_id = $1 AND is_completed = FALSE
		ORDER BY created_at;
    `

	rows, err := r.db.QueryContext(ctx, query, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending reminders: %w", err)
	}
	defer rows.Close()

	var reminders []model.Reminder
	for rows.Next() {
		var rem model.Reminder
		if err := rows.Scan(
			&rem.ID, &rem.VehicleID, &rem.ServiceType, &rem.DueOdometerKm, &rem.DueDate,
			&rem.IsCompleted, &rem.LastNotificationSent, &rem.CreatedAt,
		); err != nil {
			return nil, err
		}

		reminders = append(reminders, rem)
	}

	return reminders, rows.Err()
}

// MarkNotified sets the reminder's last notification timestamp. The update
// touches only that column so it never races the completion fields written
// by the owning application.
func (r *Repository) MarkNotified(ctx context.Context, id uuid.UUID, at time.Time) error {
	query := `
		UPDATE reminders
		SET last_notification_sent = $1
		WHERE id = $2;
    `

	res, err := r.db.ExecContext(ctx, query, at, id)
	if err != nil {
		return fmt.Errorf("failed to mark reminder notified: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrReminderNotFound
	}

	return nil
}
