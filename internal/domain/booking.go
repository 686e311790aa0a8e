package domain

import (
	"time"

	"github.com/yydtours/YYD-BookingService/pkg/money"
	"github.com/yydtours/YYD-BookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending          BookingStatus = "pending"
	StatusConfirmed        BookingStatus = "confirmed"
	StatusCompleted        BookingStatus = "completed"
	StatusCancelledByUser  BookingStatus = "cancelled_by_user"
	StatusCancelledByStaff BookingStatus = "cancelled_by_staff"
	StatusNoShow           BookingStatus = "no_show"
)

// Booking represents a confirmed tour reservation. The accepted price
// quote is denormalized onto the record so history survives later tier
// or add-on edits.
type Booking struct {
	ID             int64
	BookingNumber  string
	CustomerID     int64
	TourID         int64
	Date           time.Time
	StartTime      types.TimeString
	NumberOfPeople int
	Status         BookingStatus

	// Accepted quote snapshot
	Season      Season
	TierLabel   string
	BasePrice   money.Cents
	AddonsTotal money.Cents
	TotalPrice  money.Cents
	AddonCodes  []string

	// Guide assignment
	GuideID             *int64
	GuideApproval       ApprovalStatus
	GuideApprovedAt     *time.Time
	GuideObservations   *string

	PickupLocation  *string
	SpecialRequests *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies slot capacity
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelledByUser &&
		b.Status != StatusCancelledByStaff &&
		b.Status != StatusNoShow
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelledByUser || b.Status == StatusCancelledByStaff
}

// StartsAt combines the booking date and start time
func (b *Booking) StartsAt() (time.Time, error) {
	return b.StartTime.OnDate(b.Date)
}

// InactiveStatuses bookings in these statuses do not occupy capacity
var InactiveStatuses = []BookingStatus{
	StatusCancelledByUser,
	StatusCancelledByStaff,
	StatusNoShow,
}
