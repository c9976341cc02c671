package subscription

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aletkin/carminder/internal/api/dto"
	"github.com/aletkin/carminder/internal/api/respond"
	"github.com/aletkin/carminder/internal/config"
	"github.com/aletkin/carminder/internal/model"
)

type subscriptionRegistry interface {
	Register(ctx context.Context, strategy retry.Strategy, sub model.PushSubscription) error
	Remove(ctx context.Context, strategy retry.Strategy, endpoint string) error
}

// Handler manages push subscription registration.
type Handler struct {
	registry  subscriptionRegistry
	validator *validator.Validate
	cfg       *config.Config
}

// NewHandler creates a new subscription handler.
func NewHandler(r subscriptionRegistry, v *validator.Validate, cfg *config.Config) *Handler {
	return &Handler{registry: r, validator: v, cfg: cfg}
}

// Register upserts a push subscription keyed by its endpoint. Registering
// the same endpoint again overwrites the stored keys instead of duplicating
// the subscription.
func (h *Handler) Register(c *ginext.Context) {
	var req dto.SubscribeRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	sub := model.PushSubscription{
		Endpoint: req.Endpoint,
		P256dh:   req.Keys.P256dh,
		Auth:     req.Keys.Auth,
		UserID:   req.UserID,
	}

	if err := h.registry.Register(c.Request.Context(), h.cfg.Retry, sub); err != nil {
		zlog.Logger.Error().Err(err).Str("endpoint", sub.Endpoint).Msg("failed to register subscription")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, sub.Endpoint)
}

// Unregister removes the subscription for the URL-encoded endpoint passed as
// the "endpoint" query parameter.
func (h *Handler) Unregister(c *ginext.Context) {
	raw := c.Query("endpoint")
	if raw == "" {
		zlog.Logger.Warn().Msg("missing endpoint")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("missing endpoint"))
		return
	}

	endpoint, err := url.QueryUnescape(raw)
	if err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to unescape endpoint")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid endpoint"))
		return
	}

	if err := h.registry.Remove(c.Request.Context(), h.cfg.Retry, endpoint); err != nil {
		zlog.Logger.Error().Err(err).Str("endpoint", endpoint).Msg("failed to remove subscription")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, "subscription removed")
}
