package domain

// Default configuration values
const (
	// DefaultSlotCapacity capacity of a lazily created slot when the tour
	// itself does not configure one
	DefaultSlotCapacity = 8
)

// Business validation constants
const (
	MinPartySize              = 1
	MaxPartySize              = 50
	MaxAddonsPerBooking       = 10
	MaxAddonCodeLength        = 64
	MaxSpecialRequestsLength  = 500
	MaxCancellationReasonLen  = 500
	MaxGuideObservationsLen   = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
