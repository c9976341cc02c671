package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"
	"golang.org/x/sync/semaphore"

	"github.com/aletkin/carminder/internal/model"
	"github.com/aletkin/carminder/internal/service/urgency"
	"github.com/aletkin/carminder/pkg/webpush"
)

type sender interface {
	Send(ctx context.Context, sub model.PushSubscription, payload []byte) error
}

type subscriptionRemover interface {
	Remove(ctx context.Context, strategy retry.Strategy, endpoint string) error
}

type reminderMarker interface {
	MarkNotified(ctx context.Context, id uuid.UUID, at time.Time) error
}

// outcome is the settled result of one delivery attempt. Errors never cross
// the fan-out join; each task reports exactly one outcome.
type outcome int

const (
	outcomeDelivered outcome = iota
	outcomeGone
	outcomeFailed
)

// Result aggregates what a dispatch did: endpoints delivered to and dead
// subscriptions pruned from the registry.
type Result struct {
	Sent   int
	Pruned int
}

// Dispatcher renders one payload per reminder and fans it out to every
// subscription concurrently. Deliveries are independent: one failure never
// aborts the others, and all of them settle before the reminder's
// last-notified timestamp is written back.
type Dispatcher struct {
	sender    sender
	registry  subscriptionRemover
	reminders reminderMarker

	iconURL     string
	maxInFlight int64
}

// NewDispatcher creates a dispatcher capping concurrent deliveries at
// maxInFlight per reminder.
func NewDispatcher(s sender, registry subscriptionRemover, reminders reminderMarker, iconURL string, maxInFlight int64) *Dispatcher {
	if maxInFlight < 1 {
		maxInFlight = 1
	}

	return &Dispatcher{
		sender:      s,
		registry:    registry,
		reminders:   reminders,
		iconURL:     iconURL,
		maxInFlight: maxInFlight,
	}
}

// Dispatch delivers the reminder's notification to every subscription and
// settles the side effects:
//
//   - at least one delivery succeeded: the reminder is marked notified at
//     "now", starting its cooldown;
//   - an endpoint is reported gone by the push service: its subscription is
//     removed from the registry, fire-and-forget;
//   - zero deliveries succeeded: the timestamp stays untouched so the next
//     run retries once a valid subscription exists.
func (d *Dispatcher) Dispatch(
	ctx context.Context,
	strategy retry.Strategy,
	r model.Reminder,
	v model.Vehicle,
	cls urgency.Classification,
	subs []model.PushSubscription,
	now time.Time,
) (Result, error) {
	payload := buildPayload(r, v, cls, d.iconURL)

	body, err := json.Marshal(payload)
	if err != nil {
		return Result{}, fmt.Errorf("marshal payload: %w", err)
	}

	outcomes := make([]outcome, len(subs))
	sem := semaphore.NewWeighted(d.maxInFlight)

	var wg sync.WaitGroup
	for i, sub := range subs {
		if err := sem.Acquire(ctx, 1); err != nil {
			outcomes[i] = outcomeFailed
			continue
		}

		wg.Add(1)
		go func(i int, sub model.PushSubscription) {
			defer wg.Done()
			defer sem.Release(1)

			err := d.sender.Send(ctx, sub, body)
			switch {
			case err == nil:
				outcomes[i] = outcomeDelivered
			case errors.Is(err, webpush.ErrEndpointGone):
				outcomes[i] = outcomeGone
			default:
				outcomes[i] = outcomeFailed
				zlog.Logger.Warn().
					Err(err).
					Str("reminder_id", r.ID.String()).
					Str("endpoint", sub.Endpoint).
					Msg("push delivery failed")
			}
		}(i, sub)
	}

	// Every delivery must settle before the write-back below.
	wg.Wait()

	var res Result
	for i, o := range outcomes {
		switch o {
		case outcomeDelivered:
			res.Sent++
		case outcomeGone:
			if err := d.registry.Remove(ctx, strategy, subs[i].Endpoint); err != nil {
				// The endpoint will fail again next run and be retried then.
				zlog.Logger.Warn().
					Err(err).
					Str("endpoint", subs[i].Endpoint).
					Msg("failed to prune dead subscription")
				continue
			}
			res.Pruned++
		}
	}

	if res.Sent > 0 {
		if err := d.reminders.MarkNotified(ctx, r.ID, now); err != nil {
			return res, fmt.Errorf("mark reminder notified: %w", err)
		}
	}

	return res, nil
}
