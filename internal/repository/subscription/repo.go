package subscription

import (
	"context"
	"errors"
	"fmt"

	"github.com/wb-go/wbf/dbpg"

	"github.com/aletkin/carminder/internal/model"
)

// ErrSubscriptionNotFound is returned when a delete targets a missing endpoint.
var ErrSubscriptionNotFound = errors.New("subscription not found")

// Repository provides methods to interact with the push_subscriptions table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new subscription repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// GetAll retrieves every registered push subscription.
func (r *Repository) GetAll(ctx context.Context) ([]model.PushSubscription, error) {
	query := `
		SELECT endpoint, p256dh, auth, user_id, created_at
		FROM push_subscriptions
		ORDER BY created_at;
    `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get subscriptions: %w", err)
	}
	defer rows.Close()

	var subs []model.PushSubscription
	for rows.Next() {
		var s model.PushSubscription
		if err := rows.Scan(&s.Endpoint, &s.P256dh, &s.Auth, &s.UserID, &s.CreatedAt); err != nil {
			return nil, err
		}

		subs = append(subs, s)
	}

	return subs, rows.Err()
}

// Upsert inserts a subscription or, when the endpoint is already registered,
// overwrites its keys and owner. The endpoint is the natural key.
func (r *Repository) Upsert(ctx context.Context, sub model.PushSubscription) error {
	query := `
		INSERT INTO push_subscriptions (endpoint, p256dh, auth, user_id)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (endpoint) DO UPDATE
		SET p256dh = EXCLUDED.p256dh,
		    auth = EXCLUDED.auth,
		    user_id = EXCLUDED.user_id;
    `

	if _, err := r.db.ExecContext(ctx, query, sub.Endpoint, sub.P256dh, sub.Auth, sub.UserID); err != nil {
		return fmt.Errorf("failed to upsert subscription: %w", err)
	}

	return nil
}

// Delete removes the subscription registered for the endpoint.
func (r *Repository) Delete(ctx context.Context, endpoint string) error {
	query := `
		DELETE FROM push_subscriptions
		WHERE endpoint = $1;
    `

	res, err := r.db.ExecContext(ctx, query, endpoint)
	if err != nil {
		return fmt.Errorf("failed to delete subscription: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrSubscriptionNotFound
	}

	return nil
}
