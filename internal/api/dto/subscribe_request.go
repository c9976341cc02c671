package dto

// SubscribeRequest mirrors the subscription object produced by the browser's
// push manager: the endpoint URL plus the client's encryption keys.
type SubscribeRequest struct {
	Endpoint string        `json:"endpoint" validate:"required,url"`
	Keys     SubscribeKeys `json:"keys" validate:"required"`
	UserID   string        `json:"user_id"`
}

// SubscribeKeys carries the client key material for payload encryption.
type SubscribeKeys struct {
	P256dh string `json:"p256dh" validate:"required"`
	Auth   string `json:"auth" validate:"required"`
}
