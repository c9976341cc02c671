package subscription

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aletkin/carminder/internal/model"
	subrepo "github.com/aletkin/carminder/internal/repository/subscription"
)

const cacheKey = "subscriptions:all"

type subscriptionRepo interface {
	GetAll(context.Context) ([]model.PushSubscription, error)
	Upsert(context.Context, model.PushSubscription) error
	Delete(ctx context.Context, endpoint string) error
}

type cache interface {
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
}

// cacheEntry is the cached subscription set together with its fetch time.
// A read is served from cache iff now - FetchedAt < TTL.
type cacheEntry struct {
	Subscriptions []model.PushSubscription `json:"subscriptions"`
	FetchedAt     time.Time                `json:"fetched_at"`
}

// Registry serves the full push-subscription set, caching it with a
// wall-clock TTL so a scheduler that fires more often than subscriptions
// change does not pay a full collection read every run.
//
// Cache failures are logged and never escalated: the store is the source of
// truth and a stale subscription simply fails delivery again next run.
type Registry struct {
	repo  subscriptionRepo
	cache cache
	ttl   time.Duration
}

// NewRegistry creates a new subscription registry.
func NewRegistry(repo subscriptionRepo, cache cache, ttl time.Duration) *Registry {
	return &Registry{repo: repo, cache: cache, ttl: ttl}
}

// GetAll returns every registered subscription, served from cache when the
// cached set is still fresh.
func (g *Registry) GetAll(ctx context.Context, strategy retry.Strategy) ([]model.PushSubscription, error) {
	raw, err := g.cache.GetWithRetry(ctx, strategy, cacheKey)
	if err != nil && !errors.Is(err, redis.Nil) {
		zlog.Logger.Warn().Err(err).Msg("failed to read subscription cache")
	}

	if err == nil {
		var entry cacheEntry
		if jsonErr := json.Unmarshal([]byte(raw), &entry); jsonErr == nil && time.Since(entry.FetchedAt) < g.ttl {
			return entry.Subscriptions, nil
		}
	}

	subs, err := g.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get subscriptions: %w", err)
	}

	g.store(ctx, strategy, cacheEntry{Subscriptions: subs, FetchedAt: time.Now()})

	return subs, nil
}

// Register upserts the subscription keyed by its endpoint and refreshes the
// cached set so the next run sees the new endpoint immediately.
func (g *Registry) Register(ctx context.Context, strategy retry.Strategy, sub model.PushSubscription) error {
	if err := g.repo.Upsert(ctx, sub); err != nil {
		return fmt.Errorf("register subscription: %w", err)
	}

	subs, err := g.repo.GetAll(ctx)
	if err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to refresh subscription cache after register")
		return nil
	}

	g.store(ctx, strategy, cacheEntry{Subscriptions: subs, FetchedAt: time.Now()})

	return nil
}

// Remove deletes the subscription registered for the endpoint and rewrites
// the cached set so the rest of the current run no longer dispatches to it.
// A missing endpoint is not an error; a concurrent run may have pruned it
// already.
func (g *Registry) Remove(ctx context.Context, strategy retry.Strategy, endpoint string) error {
	if err := g.repo.Delete(ctx, endpoint); err != nil {
		if !errors.Is(err, subrepo.ErrSubscriptionNotFound) {
			return fmt.Errorf("remove subscription: %w", err)
		}
	}

	g.evict(ctx, strategy, endpoint)

	return nil
}

// evict drops the endpoint from the cached set, keeping the original fetch
// time so the entry's TTL is unaffected.
func (g *Registry) evict(ctx context.Context, strategy retry.Strategy, endpoint string) {
	raw, err := g.cache.GetWithRetry(ctx, strategy, cacheKey)
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			zlog.Logger.Warn().Err(err).Msg("failed to read subscription cache for eviction")
		}
		return
	}

	var entry cacheEntry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		return
	}

	kept := entry.Subscriptions[:0]
	for _, s := range entry.Subscriptions {
		if s.Endpoint != endpoint {
			kept = append(kept, s)
		}
	}
	entry.Subscriptions = kept

	g.store(ctx, strategy, entry)
}

func (g *Registry) store(ctx context.Context, strategy retry.Strategy, entry cacheEntry) {
	raw, err := json.Marshal(entry)
	if err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to marshal subscription cache entry")
		return
	}

	if err := g.cache.SetWithRetry(ctx, strategy, cacheKey, string(raw)); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to write subscription cache")
	}
}
