package urgency

import (
	"time"

	"github.com/aletkin/carminder/internal/model"
)

// Kind is the urgency of a reminder relative to the current odometer and date.
type Kind int

const (
	// None means neither axis is overdue or within its threshold.
	None Kind = iota
	// Urgent means at least one axis is within its threshold but none is negative.
	Urgent
	// Overdue means at least one axis is already past due.
	Overdue
)

func (k Kind) String() string {
	switch k {
	case Urgent:
		return "urgent"
	case Overdue:
		return "overdue"
	default:
		return "none"
	}
}

// Classification is the outcome of evaluating one reminder. The remaining
// fields are nil when the corresponding due field is absent on the reminder.
type Classification struct {
	Kind          Kind
	KmRemaining   *int
	DaysRemaining *int
}

// Classifier maps a reminder plus the current odometer and date to a
// Classification. It is pure: all state lives in its inputs.
type Classifier struct {
	thresholdKm   int
	thresholdDays int
}

// NewClassifier creates a classifier with the given urgency thresholds.
func NewClassifier(thresholdKm, thresholdDays int) *Classifier {
	return &Classifier{thresholdKm: thresholdKm, thresholdDays: thresholdDays}
}

// Classify evaluates both due axes independently. A reminder is overdue when
// either axis is negative, urgent when no axis is negative and either axis is
// within its threshold, and none otherwise. A reminder with neither due field
// always classifies as none.
func (c *Classifier) Classify(r model.Reminder, currentKm int, now time.Time) Classification {
	var cls Classification

	if r.DueOdometerKm != nil {
		km := *r.DueOdometerKm - currentKm
		cls.KmRemaining = &km
	}

	if r.DueDate != nil {
		days := daysUntil(now, *r.DueDate)
		cls.DaysRemaining = &days
	}

	switch {
	case (cls.KmRemaining != nil && *cls.KmRemaining < 0) ||
		(cls.DaysRemaining != nil && *cls.DaysRemaining < 0):
		cls.Kind = Overdue
	case (cls.KmRemaining != nil && *cls.KmRemaining <= c.thresholdKm) ||
		(cls.DaysRemaining != nil && *cls.DaysRemaining <= c.thresholdDays):
		cls.Kind = Urgent
	default:
		cls.Kind = None
	}

	return cls
}

// daysUntil returns whole calendar days from now to due, negative when due is
// in the past. Both timestamps are truncated to their calendar date first, so
// a reminder due today counts as 0 days regardless of the time of day.
func daysUntil(now, due time.Time) int {
	ny, nm, nd := now.Date()
	dy, dm, dd := due.Date()

	nowDay := time.Date(ny, nm, nd, 0, 0, 0, 0, time.UTC)
	dueDay := time.Date(dy, dm, dd, 0, 0, 0, 0, time.UTC)

	return int(dueDay.Sub(nowDay).Hours() / 24)
}
