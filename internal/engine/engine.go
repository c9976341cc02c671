// Package engine drives one reminder-evaluation run: enumerate vehicles,
// resolve odometers, classify pending reminders, gate re-notification, and
// dispatch push notifications.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aletkin/carminder/internal/model"
	"github.com/aletkin/carminder/internal/service/notify"
	"github.com/aletkin/carminder/internal/service/urgency"
)

type vehicleLister interface {
	ListVehicles(ctx context.Context) ([]model.Vehicle, error)
}

type reminderSource interface {
	ListPendingByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]model.Reminder, error)
}

type odometerResolver interface {
	Resolve(ctx context.Context, vehicleID uuid.UUID) (int, error)
	Reset()
}

type subscriptionSource interface {
	GetAll(ctx context.Context, strategy retry.Strategy) ([]model.PushSubscription, error)
}

type classifier interface {
	Classify(r model.Reminder, currentKm int, now time.Time) urgency.Classification
}

type gate interface {
	ShouldSend(r model.Reminder, cls urgency.Classification, now time.Time) bool
}

type dispatcher interface {
	Dispatch(
		ctx context.Context,
		strategy retry.Strategy,
		r model.Reminder,
		v model.Vehicle,
		cls urgency.Classification,
		subs []model.PushSubscription,
		now time.Time,
	) (notify.Result, error)
}

type transport interface {
	Validate() error
}

// Summary is the terminal report of one run.
type Summary struct {
	VehiclesConsidered  int `json:"vehicles_considered"`
	VehiclesSkipped     int `json:"vehicles_skipped"`
	VehiclesFailed      int `json:"vehicles_failed"`
	RemindersEvaluated  int `json:"reminders_evaluated"`
	NotificationsSent   int `json:"notifications_sent"`
	SubscriptionsPruned int `json:"subscriptions_pruned"`
}

func (s Summary) String() string {
	return fmt.Sprintf(
		"considered %d vehicles (%d skipped, %d failed), evaluated %d reminders, sent %d notifications, pruned %d subscriptions",
		s.VehiclesConsidered, s.VehiclesSkipped, s.VehiclesFailed,
		s.RemindersEvaluated, s.NotificationsSent, s.SubscriptionsPruned,
	)
}

// Engine orchestrates a single evaluation run. It is safe to reuse across
// runs: the odometer cache it drives is reset at the end of every run, and
// the subscription set it reads is TTL-bounded by the registry.
type Engine struct {
	vehicles      vehicleLister
	reminders     reminderSource
	odometers     odometerResolver
	subscriptions subscriptionSource
	classifier    classifier
	gate          gate
	dispatcher    dispatcher
	transport     transport
	strategy      retry.Strategy
}

// New creates an engine.
func New(
	vehicles vehicleLister,
	reminders reminderSource,
	odometers odometerResolver,
	subscriptions subscriptionSource,
	c classifier,
	g gate,
	d dispatcher,
	t transport,
	strategy retry.Strategy,
) *Engine {
	return &Engine{
		vehicles:      vehicles,
		reminders:     reminders,
		odometers:     odometers,
		subscriptions: subscriptions,
		classifier:    c,
		gate:          g,
		dispatcher:    d,
		transport:     t,
		strategy:      strategy,
	}
}

// Run evaluates every vehicle once and returns the run summary.
//
// A missing transport configuration aborts the whole run before any work.
// Per-vehicle failures are recoverable: they are logged, counted, and the
// run moves on to the next vehicle.
func (e *Engine) Run(ctx context.Context) (Summary, error) {
	var s Summary

	if err := e.transport.Validate(); err != nil {
		return s, fmt.Errorf("push transport not configured: %w", err)
	}

	// The odometer cache must not leak into the next run.
	defer e.odometers.Reset()

	now := time.Now()

	vehicles, err := e.vehicles.ListVehicles(ctx)
	if err != nil {
		return s, fmt.Errorf("list vehicles: %w", err)
	}

	for _, v := range vehicles {
		s.VehiclesConsidered++
		e.runVehicle(ctx, v, now, &s)
	}

	zlog.Logger.Info().Str("summary", s.String()).Msg("engine run finished")

	return s, nil
}

func (e *Engine) runVehicle(ctx context.Context, v model.Vehicle, now time.Time, s *Summary) {
	km, err := e.odometers.Resolve(ctx, v.ID)
	if err != nil {
		zlog.Logger.Warn().Err(err).Str("vehicle_id", v.ID.String()).Msg("failed to resolve odometer")
		s.VehiclesFailed++
		return
	}

	// No usable odometer data: urgency cannot be classified without a baseline.
	if km == 0 {
		s.VehiclesSkipped++
		return
	}

	reminders, err := e.reminders.ListPendingByVehicle(ctx, v.ID)
	if err != nil {
		zlog.Logger.Warn().Err(err).Str("vehicle_id", v.ID.String()).Msg("failed to load reminders")
		s.VehiclesFailed++
		return
	}

	if len(reminders) == 0 {
		s.VehiclesSkipped++
		return
	}

	for _, r := range reminders {
		s.RemindersEvaluated++

		cls := e.classifier.Classify(r, km, now)
		if !e.gate.ShouldSend(r, cls, now) {
			continue
		}

		subs, err := e.subscriptions.GetAll(ctx, e.strategy)
		if err != nil {
			zlog.Logger.Warn().Err(err).Str("vehicle_id", v.ID.String()).Msg("failed to load subscriptions")
			s.VehiclesFailed++
			return
		}

		if len(subs) == 0 {
			continue
		}

		res, err := e.dispatcher.Dispatch(ctx, e.strategy, r, v, cls, subs, now)
		if err != nil {
			zlog.Logger.Warn().Err(err).Str("reminder_id", r.ID.String()).Msg("dispatch failed")
			continue
		}

		s.NotificationsSent += res.Sent
		s.SubscriptionsPruned += res.Pruned
	}
}
