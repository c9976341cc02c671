package model

import "time"

// PushSubscription is a registered web-push endpoint together with its
// encryption material. The endpoint URL is the natural key: registering the
// same endpoint twice overwrites the previous record instead of duplicating it.
type PushSubscription struct {
	Endpoint  string    `json:"endpoint"`
	P256dh    string    `json:"p256dh"`
	Auth      string    `json:"auth"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
