package urgency

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aletkin/carminder/internal/model"
)

func intPtr(v int) *int { return &v }

func timePtr(v time.Time) *time.Time { return &v }

func TestClassifier_NoDueFields_AlwaysNone(t *testing.T) {
	c := NewClassifier(1000, 15)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	for _, km := range []int{0, 1, 49500, 1000000} {
		cls := c.Classify(model.Reminder{ServiceType: "inspection"}, km, now)

		assert.Equal(t, None, cls.Kind)
		assert.Nil(t, cls.KmRemaining)
		assert.Nil(t, cls.DaysRemaining)
	}
}

func TestClassifier_OdometerAxis(t *testing.T) {
	c := NewClassifier(1000, 15)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		dueKm       int
		currentKm   int
		wantKind    Kind
		wantKmLeft  int
	}{
		{name: "far away", dueKm: 60000, currentKm: 50000, wantKind: None, wantKmLeft: 10000},
		{name: "within threshold", dueKm: 50000, currentKm: 49500, wantKind: Urgent, wantKmLeft: 500},
		{name: "exactly at threshold", dueKm: 51000, currentKm: 50000, wantKind: Urgent, wantKmLeft: 1000},
		{name: "due now", dueKm: 50000, currentKm: 50000, wantKind: Urgent, wantKmLeft: 0},
		{name: "past due", dueKm: 50000, currentKm: 50200, wantKind: Overdue, wantKmLeft: -200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := model.Reminder{ServiceType: "oil change", DueOdometerKm: intPtr(tt.dueKm)}

			cls := c.Classify(r, tt.currentKm, now)

			assert.Equal(t, tt.wantKind, cls.Kind)
			require.NotNil(t, cls.KmRemaining)
			assert.Equal(t, tt.wantKmLeft, *cls.KmRemaining)
			assert.Nil(t, cls.DaysRemaining)
		})
	}
}

func TestClassifier_DateAxis(t *testing.T) {
	c := NewClassifier(1000, 15)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		due          time.Time
		wantKind     Kind
		wantDaysLeft int
	}{
		{name: "far away", due: now.AddDate(0, 2, 0), wantKind: None, wantDaysLeft: 61},
		{name: "within threshold", due: now.AddDate(0, 0, 10), wantKind: Urgent, wantDaysLeft: 10},
		{name: "exactly at threshold", due: now.AddDate(0, 0, 15), wantKind: Urgent, wantDaysLeft: 15},
		{name: "due today earlier hour", due: time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC), wantKind: Urgent, wantDaysLeft: 0},
		{name: "yesterday", due: now.AddDate(0, 0, -1), wantKind: Overdue, wantDaysLeft: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := model.Reminder{ServiceType: "insurance renewal", DueDate: timePtr(tt.due)}

			cls := c.Classify(r, 0, now)

			assert.Equal(t, tt.wantKind, cls.Kind)
			require.NotNil(t, cls.DaysRemaining)
			assert.Equal(t, tt.wantDaysLeft, *cls.DaysRemaining)
			assert.Nil(t, cls.KmRemaining)
		})
	}
}

func TestClassifier_OverdueDateWinsOverDistantOdometer(t *testing.T) {
	c := NewClassifier(1000, 15)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// Plenty of kilometers left, but the date has already passed: either
	// negative axis makes the reminder overdue.
	r := model.Reminder{
		ServiceType:   "inspection",
		DueOdometerKm: intPtr(80000),
		DueDate:       timePtr(now.AddDate(0, 0, -1)),
	}

	cls := c.Classify(r, 50000, now)

	assert.Equal(t, Overdue, cls.Kind)
	require.NotNil(t, cls.KmRemaining)
	assert.Equal(t, 30000, *cls.KmRemaining)
	require.NotNil(t, cls.DaysRemaining)
	assert.Equal(t, -1, *cls.DaysRemaining)
}

func TestClassifier_UrgentOnEitherAxis(t *testing.T) {
	c := NewClassifier(1000, 15)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// Date is distant, odometer is close: urgent via the km axis.
	r := model.Reminder{
		ServiceType:   "oil change",
		DueOdometerKm: intPtr(50000),
		DueDate:       timePtr(now.AddDate(1, 0, 0)),
	}

	cls := c.Classify(r, 49500, now)

	assert.Equal(t, Urgent, cls.Kind)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "none", None.String())
	assert.Equal(t, "urgent", Urgent.String())
	assert.Equal(t, "overdue", Overdue.String())
}
