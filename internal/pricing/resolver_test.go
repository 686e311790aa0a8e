package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yydtours/YYD-BookingService/internal/domain"
	"github.com/yydtours/YYD-BookingService/pkg/money"
)

type testLogger struct {
	warns int
}

func (l *testLogger) Warn(format string, v ...interface{}) { l.warns++ }

type testCounter struct {
	count int
}

func (c *testCounter) Inc() { c.count++ }

func highSeasonTiers() []*domain.SeasonPriceTier {
	return []*domain.SeasonPriceTier{
		{TourID: 1, Season: domain.SeasonHigh, Label: "1-2-people", MinPeople: 1, MaxPeople: 2, Price: money.FromEur(250), PricePerPerson: false},
		{TourID: 1, Season: domain.SeasonHigh, Label: "3-4-people", MinPeople: 3, MaxPeople: 4, Price: money.FromEur(400), PricePerPerson: false},
		{TourID: 1, Season: domain.SeasonHigh, Label: "5-plus", MinPeople: 5, MaxPeople: 0, Price: money.FromEur(95), PricePerPerson: true},
		{TourID: 1, Season: domain.SeasonLow, Label: "1-4-people", MinPeople: 1, MaxPeople: 4, Price: money.FromEur(300), PricePerPerson: false},
	}
}

func newTestResolver() (*Resolver, *testLogger, *testCounter) {
	log := &testLogger{}
	counter := &testCounter{}
	return NewResolver(DefaultCalendar(), log, counter), log, counter
}

func TestResolveTier_PicksSeasonAndRange(t *testing.T) {
	r, _, _ := newTestResolver()
	july := date(2026, time.July, 14)

	tier, season, err := r.ResolveTier(highSeasonTiers(), july, 4)
	require.NoError(t, err)
	assert.Equal(t, domain.SeasonHigh, season)
	assert.Equal(t, "3-4-people", tier.Label)
}

func TestResolveTier_OpenEndedTier(t *testing.T) {
	r, _, _ := newTestResolver()

	tier, _, err := r.ResolveTier(highSeasonTiers(), date(2026, time.July, 14), 30)
	require.NoError(t, err)
	assert.Equal(t, "5-plus", tier.Label)
}

func TestResolveTier_NoTierIsAnError(t *testing.T) {
	r, _, _ := newTestResolver()

	// Низкий сезон покрыт только до 4 человек: никакой цены по умолчанию
	_, season, err := r.ResolveTier(highSeasonTiers(), date(2026, time.February, 10), 6)
	require.ErrorIs(t, err, ErrTierNotFound)
	assert.Equal(t, domain.SeasonLow, season)
}

func TestResolveTier_OverlapPicksSmallestMinPeople(t *testing.T) {
	r, log, counter := newTestResolver()

	tiers := []*domain.SeasonPriceTier{
		{Season: domain.SeasonHigh, Label: "wide", MinPeople: 1, MaxPeople: 10, Price: money.FromEur(100)},
		{Season: domain.SeasonHigh, Label: "narrow", MinPeople: 3, MaxPeople: 5, Price: money.FromEur(200)},
	}

	tier, _, err := r.ResolveTier(tiers, date(2026, time.July, 14), 4)
	require.NoError(t, err)
	assert.Equal(t, "wide", tier.Label)
	assert.Equal(t, 1, log.warns)
	assert.Equal(t, 1, counter.count)
}

func TestResolveTier_InvalidPartySize(t *testing.T) {
	r, _, _ := newTestResolver()

	_, _, err := r.ResolveTier(highSeasonTiers(), date(2026, time.July, 14), 0)
	assert.ErrorIs(t, err, ErrInvalidPartySize)
}

func TestComputeTotal_FlatGroupRate(t *testing.T) {
	r, _, _ := newTestResolver()
	tier := &domain.SeasonPriceTier{Season: domain.SeasonHigh, Label: "3-4-people", Price: money.FromEur(400)}

	quote, lines, err := r.ComputeTotal(tier, 4, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, lines)
	assert.Equal(t, money.FromEur(400), quote.BasePrice)
	assert.Equal(t, money.Cents(0), quote.AddonsTotal)
	assert.Equal(t, money.FromEur(400), quote.Total)
}

func TestComputeTotal_PerPersonAddon(t *testing.T) {
	r, _, _ := newTestResolver()
	tier := &domain.SeasonPriceTier{Season: domain.SeasonHigh, Label: "3-4-people", Price: money.FromEur(400)}
	catalog := []*domain.Addon{
		{Code: "wine-tasting", Price: money.FromEur(24), PriceType: domain.AddonPerPerson, Active: true},
	}

	quote, lines, err := r.ComputeTotal(tier, 3, []string{"wine-tasting"}, catalog)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, money.FromEur(72), lines[0].Total)
	assert.Equal(t, money.FromEur(472), quote.Total)
}

func TestComputeTotal_PerBookingAddon(t *testing.T) {
	r, _, _ := newTestResolver()
	tier := &domain.SeasonPriceTier{Season: domain.SeasonHigh, Label: "1-2-people", Price: money.FromEur(250)}
	catalog := []*domain.Addon{
		{Code: "lisbon-transfer", Price: money.FromEur(45), PriceType: domain.AddonPerBooking, Active: true},
	}

	quote, _, err := r.ComputeTotal(tier, 2, []string{"lisbon-transfer"}, catalog)
	require.NoError(t, err)
	assert.Equal(t, money.FromEur(45), quote.AddonsTotal)
	assert.Equal(t, money.FromEur(295), quote.Total)
}

func TestComputeTotal_PerPersonBase(t *testing.T) {
	r, _, _ := newTestResolver()
	tier := &domain.SeasonPriceTier{Season: domain.SeasonHigh, Label: "5-plus", Price: money.FromEur(95), PricePerPerson: true}

	quote, _, err := r.ComputeTotal(tier, 6, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, money.FromEur(570), quote.Total)
}

func TestComputeTotal_Deterministic(t *testing.T) {
	// Повторный расчёт с теми же входами обязан дать идентичные центы:
	// котировка и подтверждение брони сверяются точным равенством
	r, _, _ := newTestResolver()
	tier := &domain.SeasonPriceTier{Season: domain.SeasonHigh, Label: "3-4-people", Price: money.FromEur(400)}
	catalog := []*domain.Addon{
		{Code: "wine-tasting", Price: money.FromEur(24), PriceType: domain.AddonPerPerson, Active: true},
		{Code: "portuguese-lunch", Price: money.FromEur(35), PriceType: domain.AddonPerPerson, Active: true},
	}
	codes := []string{"wine-tasting", "portuguese-lunch"}

	first, _, err := r.ComputeTotal(tier, 3, codes, catalog)
	require.NoError(t, err)
	second, _, err := r.ComputeTotal(tier, 3, codes, catalog)
	require.NoError(t, err)
	assert.Equal(t, first.Total, second.Total)
	assert.Equal(t, first.BasePrice, second.BasePrice)
	assert.Equal(t, first.AddonsTotal, second.AddonsTotal)
}

func TestComputeTotal_RejectsBadAddons(t *testing.T) {
	r, _, _ := newTestResolver()
	tier := &domain.SeasonPriceTier{Season: domain.SeasonHigh, Label: "1-2-people", Price: money.FromEur(250)}
	catalog := []*domain.Addon{
		{Code: "wine-tasting", Price: money.FromEur(24), PriceType: domain.AddonPerPerson, Active: true},
		{Code: "retired", Price: money.FromEur(10), PriceType: domain.AddonPerBooking, Active: false},
	}

	_, _, err := r.ComputeTotal(tier, 2, []string{"no-such-addon"}, catalog)
	assert.ErrorIs(t, err, ErrUnknownAddon)

	_, _, err = r.ComputeTotal(tier, 2, []string{"retired"}, catalog)
	assert.ErrorIs(t, err, ErrInactiveAddon)

	_, _, err = r.ComputeTotal(tier, 2, []string{"wine-tasting", "wine-tasting"}, catalog)
	assert.ErrorIs(t, err, ErrDuplicateAddon)
}

func TestPriceRange(t *testing.T) {
	min, max, ok := PriceRange(highSeasonTiers(), domain.SeasonHigh)
	require.True(t, ok)
	assert.Equal(t, money.FromEur(95), min)
	assert.Equal(t, money.FromEur(400), max)

	_, _, ok = PriceRange(highSeasonTiers(), domain.SeasonPeak)
	assert.False(t, ok)
}
