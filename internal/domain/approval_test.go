package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanReject(t *testing.T) {
	now := time.Date(2026, time.July, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		tourStart time.Time
		want      bool
	}{
		{"49 hours before", now.Add(49 * time.Hour), true},
		{"exactly 48 hours before", now.Add(48 * time.Hour), true},
		{"47 hours before", now.Add(47 * time.Hour), false},
		{"one hour before", now.Add(time.Hour), false},
		{"tour already started", now.Add(-time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanReject(tt.tourStart, now))
		})
	}
}

func TestScheduledTask_IsDue(t *testing.T) {
	now := time.Date(2026, time.July, 10, 9, 0, 0, 0, time.UTC)

	assert.True(t, (&ScheduledTask{ScheduledFor: now}).IsDue(now))
	assert.True(t, (&ScheduledTask{ScheduledFor: now.Add(-time.Minute)}).IsDue(now))
	assert.False(t, (&ScheduledTask{ScheduledFor: now.Add(time.Minute)}).IsDue(now))
	assert.False(t, (&ScheduledTask{ScheduledFor: now, Executed: true}).IsDue(now))
}

func TestReservationTokenFor(t *testing.T) {
	// Токен детерминирован: release работает после рестарта процесса
	assert.Equal(t, "rsv-YYD-3F2A0B1C", ReservationTokenFor("YYD-3F2A0B1C"))
	assert.Equal(t, ReservationTokenFor("YYD-A"), ReservationTokenFor("YYD-A"))
}

func TestBooking_StatusPredicates(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusConfirmed}).IsActive())
	assert.True(t, (&Booking{Status: StatusCompleted}).IsActive())
	assert.False(t, (&Booking{Status: StatusCancelledByUser}).IsActive())
	assert.False(t, (&Booking{Status: StatusNoShow}).IsActive())

	assert.True(t, (&Booking{Status: StatusPending}).CanBeCancelled())
	assert.True(t, (&Booking{Status: StatusConfirmed}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusCompleted}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusCancelledByStaff}).CanBeCancelled())
}
