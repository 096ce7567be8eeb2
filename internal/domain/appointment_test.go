package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Salon-AnalyticsService/pkg/ptr"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestWeekStartOf(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{
			name: "monday maps to previous sunday",
			date: date(2024, time.January, 1),
			want: "2023-12-31",
		},
		{
			name: "wednesday maps to same sunday as monday",
			date: date(2024, time.January, 3),
			want: "2023-12-31",
		},
		{
			name: "sunday maps to itself",
			date: date(2024, time.January, 7),
			want: "2024-01-07",
		},
		{
			name: "saturday maps to sunday six days back",
			date: date(2024, time.January, 13),
			want: "2024-01-07",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WeekStartOf(tt.date))
		})
	}
}

func TestWeekStartOf_AlwaysSundayOnOrBefore(t *testing.T) {
	// Неделя начинается с воскресенья не позже самой даты
	day := date(2024, time.March, 1)
	for i := 0; i < 60; i++ {
		current := day.AddDate(0, 0, i)

		weekStart, err := time.Parse(DateFormat, WeekStartOf(current))
		require.NoError(t, err)

		assert.Equal(t, time.Sunday, weekStart.Weekday())
		assert.False(t, weekStart.After(current))
		assert.Less(t, current.Sub(weekStart).Hours(), float64(7*24))
	}
}

func TestLineItem_Revenue(t *testing.T) {
	service := LineItem{Type: LineItemService, Name: "Haircut", UnitPrice: 50, DurationMinutes: 30}
	assert.Equal(t, 50.0, service.Revenue())

	product := LineItem{Type: LineItemProduct, Name: "Shampoo", UnitPrice: 15, Quantity: 3}
	assert.Equal(t, 45.0, product.Revenue())
}

func TestAppointmentSnapshot_Revenue(t *testing.T) {
	snap := &AppointmentSnapshot{
		Items: []LineItem{
			{Type: LineItemService, Name: "Haircut", UnitPrice: 50},
			{Type: LineItemProduct, Name: "Shampoo", UnitPrice: 15, Quantity: 2},
		},
	}
	assert.Equal(t, 80.0, snap.Revenue())

	empty := &AppointmentSnapshot{}
	assert.Equal(t, 0.0, empty.Revenue())
}

func TestAppointmentSnapshot_CustomerKey(t *testing.T) {
	tests := []struct {
		name string
		snap AppointmentSnapshot
		want string
	}{
		{
			name: "email wins over user ref",
			snap: AppointmentSnapshot{ID: 1, CustomerEmail: ptr.Ptr("a@b.com"), UserRef: ptr.Ptr(int64(7))},
			want: "a@b.com",
		},
		{
			name: "user ref when email missing",
			snap: AppointmentSnapshot{ID: 2, UserRef: ptr.Ptr(int64(7))},
			want: "user:7",
		},
		{
			name: "empty email falls through to user ref",
			snap: AppointmentSnapshot{ID: 3, CustomerEmail: ptr.Ptr(""), UserRef: ptr.Ptr(int64(9))},
			want: "user:9",
		},
		{
			name: "anonymous singleton keyed by appointment id",
			snap: AppointmentSnapshot{ID: 42},
			want: "anon:42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.snap.CustomerKey())
		})
	}
}

func TestAppointmentSnapshot_LeadTimeDays(t *testing.T) {
	bookingDate := date(2024, time.May, 10)

	t.Run("partial day rounds up", func(t *testing.T) {
		created := time.Date(2024, time.May, 7, 18, 0, 0, 0, time.UTC)
		snap := &AppointmentSnapshot{Date: &bookingDate, CreatedAt: &created}

		lead, ok := snap.LeadTimeDays()
		require.True(t, ok)
		assert.Equal(t, 3, lead)
	})

	t.Run("created after booking date is negative", func(t *testing.T) {
		created := date(2024, time.May, 15)
		snap := &AppointmentSnapshot{Date: &bookingDate, CreatedAt: &created}

		lead, ok := snap.LeadTimeDays()
		require.True(t, ok)
		assert.Negative(t, lead)
	})

	t.Run("missing created_at", func(t *testing.T) {
		snap := &AppointmentSnapshot{Date: &bookingDate}
		_, ok := snap.LeadTimeDays()
		assert.False(t, ok)
	})

	t.Run("missing date", func(t *testing.T) {
		created := date(2024, time.May, 1)
		snap := &AppointmentSnapshot{CreatedAt: &created}
		_, ok := snap.LeadTimeDays()
		assert.False(t, ok)
	})
}

func TestAppointmentSnapshot_IsCancellation(t *testing.T) {
	assert.True(t, (&AppointmentSnapshot{Status: StatusCancelled}).IsCancellation())
	assert.True(t, (&AppointmentSnapshot{Status: StatusNoShow}).IsCancellation())
	assert.False(t, (&AppointmentSnapshot{Status: StatusConfirmed}).IsCancellation())
	assert.False(t, (&AppointmentSnapshot{Status: StatusPending}).IsCancellation())
}
