package domain

import (
	"time"

	"github.com/yydtours/YYD-BookingService/pkg/money"
)

// AddonPriceType determines how an add-on price is applied to a booking
type AddonPriceType string

const (
	AddonPerPerson  AddonPriceType = "per_person"
	AddonPerBooking AddonPriceType = "per_booking"
)

// IsValid reports whether t is a recognized price type
func (t AddonPriceType) IsValid() bool {
	return t == AddonPerPerson || t == AddonPerBooking
}

// Addon is an optional paid extra attached to a booking.
// The authoritative price is always read from this record at resolution
// time, never from client input.
type Addon struct {
	ID        int64
	Code      string // e.g. "wine-tasting"
	Price     money.Cents
	PriceType AddonPriceType
	Category  string // e.g. "experience", "food", "transport"
	Active    bool
	SortOrder int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Total returns the add-on cost for a party of the given size
func (a *Addon) Total(numberOfPeople int) money.Cents {
	if a.PriceType == AddonPerPerson {
		return a.Price.MulInt(numberOfPeople)
	}
	return a.Price
}
