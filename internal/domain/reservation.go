package domain

import "time"

// ReservationTokenPrefix prefix of derived reservation tokens
const ReservationTokenPrefix = "rsv-"

// ReservationTokenFor derives the durable reservation token for a booking.
// The token is a pure function of the booking number so it can be
// re-derived after a process restart (cancellation and payment-failure
// paths must be able to release without any in-memory handle).
func ReservationTokenFor(bookingNumber string) string {
	return ReservationTokenPrefix + bookingNumber
}

// Reservation is a durable capacity reservation on one availability slot.
// Release is idempotent: ReleasedAt set means the capacity was already
// returned and further releases are no-ops.
type Reservation struct {
	Token         string
	SlotID        int64
	BookingNumber string
	Count         int
	ReleasedAt    *time.Time
	CreatedAt     time.Time
}

// IsReleased reports whether the reservation was already released
func (r *Reservation) IsReleased() bool {
	return r.ReleasedAt != nil
}
