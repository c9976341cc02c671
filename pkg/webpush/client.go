// Package webpush provides a client for delivering encrypted push messages
// to browser push-service endpoints using VAPID signing.
//
// It wraps the endpoint-addressed Web Push protocol and maps the push
// service's permanent-invalidity responses to ErrEndpointGone so callers can
// distinguish dead endpoints from transient delivery failures.
package webpush

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	wp "github.com/SherClockHolmes/webpush-go"

	"github.com/aletkin/carminder/internal/model"
)

// ErrEndpointGone reports that the push service no longer knows the endpoint.
// The subscription behind it is dead and should be removed.
var ErrEndpointGone = errors.New("push endpoint no longer valid")

// ErrNotConfigured reports a missing VAPID key pair.
var ErrNotConfigured = errors.New("VAPID key pair is not configured")

// Client represents a web-push client used to send notifications.
type Client struct {
	publicKey  string
	privateKey string
	subscriber string       // contact address reported to the push service
	ttl        int          // message retention at the push service, seconds
	client     *http.Client // HTTP client used to make requests
}

// NewClient creates a new web-push Client with the given VAPID material.
func NewClient(publicKey, privateKey, subscriber string, ttl int) *Client {
	return &Client{
		publicKey:  publicKey,
		privateKey: privateKey,
		subscriber: subscriber,
		ttl:        ttl,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

// Validate reports whether the client holds a usable VAPID key pair.
func (c *Client) Validate() error {
	if c.publicKey == "" || c.privateKey == "" {
		return ErrNotConfigured
	}

	return nil
}

// Send encrypts the payload for the subscription and delivers it to the
// subscription's endpoint.
//
// It returns ErrEndpointGone when the push service reports the endpoint as
// permanently invalid (404 or 410); any other non-2xx response is a plain
// error and should be treated as transient.
func (c *Client) Send(ctx context.Context, sub model.PushSubscription, payload []byte) error {
	resp, err := wp.SendNotificationWithContext(ctx, payload, &wp.Subscription{
		Endpoint: sub.Endpoint,
		Keys: wp.Keys{
			P256dh: sub.P256dh,
			Auth:   sub.Auth,
		},
	}, &wp.Options{
		Subscriber:      c.subscriber,
		VAPIDPublicKey:  c.publicKey,
		VAPIDPrivateKey: c.privateKey,
		TTL:             c.ttl,
		HTTPClient:      c.client,
	})
	if err != nil {
		return fmt.Errorf("send push: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return ErrEndpointGone
	case resp.StatusCode >= http.StatusBadRequest:
		return fmt.Errorf("push service responded %s", resp.Status)
	}

	return nil
}
