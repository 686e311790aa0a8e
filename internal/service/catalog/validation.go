package catalog

import (
	"fmt"
	"sort"

	"github.com/yydtours/YYD-BookingService/internal/domain"
)

// ValidateTierTable проверяет tier-таблицу одного сезона: каждый tier
// корректен сам по себе, диапазоны не перекрываются и покрывают все
// размеры групп от 1 до maxGroupSize без разрывов. Последний tier может
// быть открытым (MaxPeople == 0).
func ValidateTierTable(tiers []*domain.SeasonPriceTier, season domain.Season, maxGroupSize int) error {
	if len(tiers) == 0 {
		return ErrEmptyTierTable
	}

	for _, t := range tiers {
		if err := validateTier(t, season); err != nil {
			return err
		}
	}

	sorted := make([]*domain.SeasonPriceTier, len(tiers))
	copy(sorted, tiers)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].MinPeople < sorted[j].MinPeople
	})

	if sorted[0].MinPeople > 1 {
		return fmt.Errorf("%w: group sizes 1-%d are not covered", ErrTierGap, sorted[0].MinPeople-1)
	}

	for i := 1; i < len(sorted); i++ {
		prev, cur := sorted[i-1], sorted[i]
		if prev.OpenEnded() {
			return fmt.Errorf("%w: open-ended tier %q is followed by tier %q", ErrTierOverlap, prev.Label, cur.Label)
		}
		if cur.MinPeople <= prev.MaxPeople {
			return fmt.Errorf("%w: tiers %q and %q both cover %d people", ErrTierOverlap, prev.Label, cur.Label, cur.MinPeople)
		}
		if cur.MinPeople > prev.MaxPeople+1 {
			return fmt.Errorf("%w: group sizes %d-%d are not covered", ErrTierGap, prev.MaxPeople+1, cur.MinPeople-1)
		}
	}

	last := sorted[len(sorted)-1]
	if !last.OpenEnded() && last.MaxPeople < maxGroupSize {
		return fmt.Errorf("%w: group sizes %d-%d are not covered", ErrTierGap, last.MaxPeople+1, maxGroupSize)
	}

	return nil
}

func validateTier(t *domain.SeasonPriceTier, season domain.Season) error {
	if t == nil {
		return fmt.Errorf("%w: nil tier", ErrInvalidTier)
	}
	if t.Season != season {
		return fmt.Errorf("%w: tier %q has season %q, expected %q", ErrInvalidTier, t.Label, t.Season, season)
	}
	if t.Label == "" {
		return fmt.Errorf("%w: tier label is empty", ErrInvalidTier)
	}
	if t.MinPeople < domain.MinPartySize {
		return fmt.Errorf("%w: tier %q has min people %d", ErrInvalidTier, t.Label, t.MinPeople)
	}
	if !t.OpenEnded() && t.MaxPeople < t.MinPeople {
		return fmt.Errorf("%w: tier %q has max people %d below min %d", ErrInvalidTier, t.Label, t.MaxPeople, t.MinPeople)
	}
	if t.Price < 0 {
		return fmt.Errorf("%w: tier %q has negative price", ErrInvalidTier, t.Label)
	}
	return nil
}

func validateAddon(a *domain.Addon) error {
	if a == nil {
		return fmt.Errorf("%w: nil addon", ErrInvalidAddon)
	}
	if a.Code == "" || len(a.Code) > domain.MaxAddonCodeLength {
		return fmt.Errorf("%w: bad code %q", ErrInvalidAddon, a.Code)
	}
	if a.PriceType != domain.AddonPerPerson && a.PriceType != domain.AddonPerBooking {
		return fmt.Errorf("%w: addon %q has price type %q", ErrInvalidAddon, a.Code, a.PriceType)
	}
	if a.Price < 0 {
		return fmt.Errorf("%w: addon %q has negative price", ErrInvalidAddon, a.Code)
	}
	return nil
}
