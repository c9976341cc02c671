package notify

import (
	"time"

	"github.com/aletkin/carminder/internal/model"
	"github.com/aletkin/carminder/internal/service/urgency"
)

// Gate decides whether a classified reminder may be (re)notified. It is
// stateless: the only persisted state is the reminder's own
// LastNotificationSent timestamp.
type Gate struct {
	cooldown time.Duration
}

// NewGate creates a gate with the given cooldown in hours.
func NewGate(cooldownHours int) *Gate {
	return &Gate{cooldown: time.Duration(cooldownHours) * time.Hour}
}

// ShouldSend reports whether a notification must fire. It fires only for
// urgent or overdue reminders that have never been notified or whose last
// notification is at least one cooldown old, so a persisting condition does
// not re-alert on every scheduler tick.
func (g *Gate) ShouldSend(r model.Reminder, cls urgency.Classification, now time.Time) bool {
	if cls.Kind == urgency.None {
		return false
	}

	if r.LastNotificationSent == nil {
		return true
	}

	return now.Sub(*r.LastNotificationSent) >= g.cooldown
}
