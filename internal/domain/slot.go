package domain

import (
	"time"

	"github.com/yydtours/YYD-BookingService/pkg/types"
)

// SlotStatus represents the state of an availability slot
type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotBooked    SlotStatus = "booked"
	SlotBlocked   SlotStatus = "blocked"
)

// AvailabilitySlot is the capacity counter for one tour date+time.
// Invariant: 0 <= BookedSlots <= MaxSlots. A blocked slot has MaxSlots = 0
// and accepts no reservations; blocked is sticky until explicitly reversed
// by staff. The (TourID, Date, StartTime) tuple is unique.
type AvailabilitySlot struct {
	ID          int64
	TourID      int64
	Date        time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString
	MaxSlots    int
	BookedSlots int
	Status      SlotStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsBlocked reports whether the slot is closed by a staff blackout
func (s *AvailabilitySlot) IsBlocked() bool {
	return s.Status == SlotBlocked
}

// AvailableSpots returns the remaining capacity
func (s *AvailabilitySlot) AvailableSpots() int {
	if s.IsBlocked() {
		return 0
	}
	spots := s.MaxSlots - s.BookedSlots
	if spots < 0 {
		return 0
	}
	return spots
}

// HasCapacity reports whether count more reservations fit into the slot
func (s *AvailabilitySlot) HasCapacity(count int) bool {
	return !s.IsBlocked() && s.BookedSlots+count <= s.MaxSlots
}

// StatusForOccupancy returns the status a non-blocked slot should carry
// for its current counters. Blocked status is never derived - only staff
// actions set or clear it.
func (s *AvailabilitySlot) StatusForOccupancy() SlotStatus {
	if s.Status == SlotBlocked {
		return SlotBlocked
	}
	if s.BookedSlots >= s.MaxSlots {
		return SlotBooked
	}
	return SlotAvailable
}
