package domain

import (
	"time"

	"github.com/yydtours/YYD-BookingService/pkg/money"
)

// Season represents a calendar-driven pricing bucket
type Season string

const (
	SeasonLow     Season = "low"
	SeasonHigh    Season = "high"
	SeasonPeak    Season = "peak"
	SeasonSpecial Season = "special"
)

// ValidSeasons all recognized seasons
var ValidSeasons = []Season{SeasonLow, SeasonHigh, SeasonPeak, SeasonSpecial}

// IsValid reports whether s is a recognized season
func (s Season) IsValid() bool {
	for _, v := range ValidSeasons {
		if s == v {
			return true
		}
	}
	return false
}

// SeasonPriceTier maps a (season, party-size range) to a price for one tour.
// MaxPeople = 0 means the range is open-ended (no upper bound).
type SeasonPriceTier struct {
	ID        int64
	TourID    int64
	Season    Season
	Label     string // e.g. "2-people"
	MinPeople int
	MaxPeople int
	Price     money.Cents
	// PricePerPerson: true = Price is multiplied by party size,
	// false = Price is a flat group rate
	PricePerPerson bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Matches reports whether the party size falls into this tier's range
func (t *SeasonPriceTier) Matches(numberOfPeople int) bool {
	if numberOfPeople < t.MinPeople {
		return false
	}
	return t.MaxPeople == 0 || numberOfPeople <= t.MaxPeople
}

// OpenEnded reports whether the tier has no upper party-size bound
func (t *SeasonPriceTier) OpenEnded() bool {
	return t.MaxPeople == 0
}

// Overlaps reports whether two tiers' party-size ranges intersect
func (t *SeasonPriceTier) Overlaps(other *SeasonPriceTier) bool {
	if t.OpenEnded() && other.OpenEnded() {
		return true
	}
	if t.OpenEnded() {
		return other.MaxPeople >= t.MinPeople
	}
	if other.OpenEnded() {
		return t.MaxPeople >= other.MinPeople
	}
	return t.MinPeople <= other.MaxPeople && other.MinPeople <= t.MaxPeople
}
