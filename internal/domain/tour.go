package domain

import "time"

// Tour represents a bookable tour product
type Tour struct {
	ID            int64
	Slug          string
	DurationHours int
	MaxGroupSize  int
	// DefaultSlotCapacity is used when a date has no configured slot row:
	// such dates are open with this many spots (lazy slot materialization)
	DefaultSlotCapacity int
	Active              bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// IsBookable returns true if the tour accepts new bookings
func (t *Tour) IsBookable() bool {
	return t.Active
}

// SlotCapacity returns the capacity for an unconfigured date
func (t *Tour) SlotCapacity() int {
	if t.DefaultSlotCapacity > 0 {
		return t.DefaultSlotCapacity
	}
	return DefaultSlotCapacity
}
