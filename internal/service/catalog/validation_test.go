package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yydtours/YYD-BookingService/internal/domain"
	addonsRepo "github.com/yydtours/YYD-BookingService/internal/infra/storage/addons"
	toursRepo "github.com/yydtours/YYD-BookingService/internal/infra/storage/tours"
	"github.com/yydtours/YYD-BookingService/pkg/money"
)

func tier(season domain.Season, label string, min, max int, eur float64) *domain.SeasonPriceTier {
	return &domain.SeasonPriceTier{
		Season:    season,
		Label:     label,
		MinPeople: min,
		MaxPeople: max,
		Price:     money.FromEur(eur),
	}
}

func TestValidateTierTable(t *testing.T) {
	tests := []struct {
		name    string
		tiers   []*domain.SeasonPriceTier
		maxSize int
		wantErr error
	}{
		{
			name: "well-formed table",
			tiers: []*domain.SeasonPriceTier{
				tier("high", "1-2-people", 1, 2, 250),
				tier("high", "3-4-people", 3, 4, 400),
				tier("high", "5-8-people", 5, 8, 95),
			},
			maxSize: 8,
		},
		{
			name: "open-ended last tier",
			tiers: []*domain.SeasonPriceTier{
				tier("high", "1-4-people", 1, 4, 300),
				tier("high", "5-plus", 5, 0, 95),
			},
			maxSize: 12,
		},
		{
			name: "out of order input is sorted before checking",
			tiers: []*domain.SeasonPriceTier{
				tier("high", "3-4-people", 3, 4, 400),
				tier("high", "1-2-people", 1, 2, 250),
			},
			maxSize: 4,
		},
		{
			name:    "empty table",
			tiers:   nil,
			maxSize: 8,
			wantErr: ErrEmptyTierTable,
		},
		{
			name: "overlapping ranges",
			tiers: []*domain.SeasonPriceTier{
				tier("high", "1-3-people", 1, 3, 250),
				tier("high", "3-8-people", 3, 8, 400),
			},
			maxSize: 8,
			wantErr: ErrTierOverlap,
		},
		{
			name: "open-ended tier followed by another",
			tiers: []*domain.SeasonPriceTier{
				tier("high", "1-plus", 1, 0, 250),
				tier("high", "5-8-people", 5, 8, 400),
			},
			maxSize: 8,
			wantErr: ErrTierOverlap,
		},
		{
			name: "gap between tiers",
			tiers: []*domain.SeasonPriceTier{
				tier("high", "1-2-people", 1, 2, 250),
				tier("high", "5-8-people", 5, 8, 400),
			},
			maxSize: 8,
			wantErr: ErrTierGap,
		},
		{
			name: "first tier starts above one",
			tiers: []*domain.SeasonPriceTier{
				tier("high", "2-8-people", 2, 8, 250),
			},
			maxSize: 8,
			wantErr: ErrTierGap,
		},
		{
			name: "table stops short of max group size",
			tiers: []*domain.SeasonPriceTier{
				tier("high", "1-6-people", 1, 6, 250),
			},
			maxSize: 8,
			wantErr: ErrTierGap,
		},
		{
			name: "season mismatch",
			tiers: []*domain.SeasonPriceTier{
				tier("low", "1-8-people", 1, 8, 250),
			},
			maxSize: 8,
			wantErr: ErrInvalidTier,
		},
		{
			name: "negative price",
			tiers: []*domain.SeasonPriceTier{
				tier("high", "1-8-people", 1, 8, -1),
			},
			maxSize: 8,
			wantErr: ErrInvalidTier,
		},
		{
			name: "max below min",
			tiers: []*domain.SeasonPriceTier{
				tier("high", "bad", 4, 2, 250),
			},
			maxSize: 8,
			wantErr: ErrInvalidTier,
		},
		{
			name: "empty label",
			tiers: []*domain.SeasonPriceTier{
				tier("high", "", 1, 8, 250),
			},
			maxSize: 8,
			wantErr: ErrInvalidTier,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTierTable(tt.tiers, "high", tt.maxSize)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

type fakeTierRepo struct {
	stored   []*domain.SeasonPriceTier
	replaced bool
}

func (f *fakeTierRepo) ListByTour(context.Context, int64) ([]*domain.SeasonPriceTier, error) {
	return f.stored, nil
}

func (f *fakeTierRepo) ReplaceForSeason(_ context.Context, _ int64, _ domain.Season, tiers []*domain.SeasonPriceTier) error {
	f.replaced = true
	f.stored = tiers
	return nil
}

type fakeAddonRepo struct {
	byCode map[string]*domain.Addon
}

func newFakeAddonRepo() *fakeAddonRepo {
	return &fakeAddonRepo{byCode: make(map[string]*domain.Addon)}
}

func (f *fakeAddonRepo) ListActive(context.Context) ([]*domain.Addon, error) {
	var out []*domain.Addon
	for _, a := range f.byCode {
		if a.Active {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAddonRepo) Create(_ context.Context, addon *domain.Addon) (*domain.Addon, error) {
	if _, ok := f.byCode[addon.Code]; ok {
		return nil, addonsRepo.ErrCodeExists
	}
	copied := *addon
	copied.Active = true
	f.byCode[addon.Code] = &copied
	return &copied, nil
}

func (f *fakeAddonRepo) SetActive(_ context.Context, code string, active bool) error {
	a, ok := f.byCode[code]
	if !ok {
		return addonsRepo.ErrAddonNotFound
	}
	a.Active = active
	return nil
}

type fakeTourRepo struct {
	tour *domain.Tour
}

func (f *fakeTourRepo) GetByID(_ context.Context, id int64) (*domain.Tour, error) {
	if f.tour == nil || f.tour.ID != id {
		return nil, toursRepo.ErrTourNotFound
	}
	return f.tour, nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type catalogLogger struct{}

func (catalogLogger) Info(string, ...interface{})  {}
func (catalogLogger) Warn(string, ...interface{})  {}
func (catalogLogger) Error(string, ...interface{}) {}

func newCatalogService(tiers *fakeTierRepo, addons *fakeAddonRepo, tours *fakeTourRepo) *Service {
	return New(tiers, addons, tours, passthroughTxManager{}, catalogLogger{})
}

func TestReplaceTierTable(t *testing.T) {
	tiers := &fakeTierRepo{}
	tours := &fakeTourRepo{tour: &domain.Tour{ID: 7, MaxGroupSize: 8, Active: true}}
	svc := newCatalogService(tiers, newFakeAddonRepo(), tours)

	err := svc.ReplaceTierTable(context.Background(), 7, "high", []*domain.SeasonPriceTier{
		tier("high", "1-4-people", 1, 4, 300),
		tier("high", "5-8-people", 5, 8, 95),
	})
	require.NoError(t, err)
	assert.True(t, tiers.replaced)
	assert.Len(t, tiers.stored, 2)
}

func TestReplaceTierTable_RejectsInvalidTable(t *testing.T) {
	tiers := &fakeTierRepo{}
	tours := &fakeTourRepo{tour: &domain.Tour{ID: 7, MaxGroupSize: 8, Active: true}}
	svc := newCatalogService(tiers, newFakeAddonRepo(), tours)

	err := svc.ReplaceTierTable(context.Background(), 7, "high", []*domain.SeasonPriceTier{
		tier("high", "1-2-people", 1, 2, 250),
		tier("high", "5-8-people", 5, 8, 95),
	})
	assert.ErrorIs(t, err, ErrTierGap)
	assert.False(t, tiers.replaced, "invalid table must not reach storage")
}

func TestReplaceTierTable_UnknownSeasonAndTour(t *testing.T) {
	svc := newCatalogService(&fakeTierRepo{}, newFakeAddonRepo(), &fakeTourRepo{})

	err := svc.ReplaceTierTable(context.Background(), 7, "monsoon", nil)
	assert.ErrorIs(t, err, ErrInvalidSeason)

	err = svc.ReplaceTierTable(context.Background(), 404, "high", nil)
	assert.ErrorIs(t, err, ErrTourNotFound)
}

func TestCreateAddon(t *testing.T) {
	svc := newCatalogService(&fakeTierRepo{}, newFakeAddonRepo(), &fakeTourRepo{})

	created, err := svc.CreateAddon(context.Background(), &domain.Addon{
		Code:      "wine-tasting",
		Price:     money.FromEur(18),
		PriceType: domain.AddonPerPerson,
		Category:  "experience",
	})
	require.NoError(t, err)
	assert.True(t, created.Active)

	_, err = svc.CreateAddon(context.Background(), &domain.Addon{
		Code:      "wine-tasting",
		Price:     money.FromEur(20),
		PriceType: domain.AddonPerPerson,
	})
	assert.ErrorIs(t, err, ErrAddonExists)
}

func TestCreateAddon_Invalid(t *testing.T) {
	svc := newCatalogService(&fakeTierRepo{}, newFakeAddonRepo(), &fakeTourRepo{})

	_, err := svc.CreateAddon(context.Background(), &domain.Addon{
		Code:      "",
		Price:     money.FromEur(18),
		PriceType: domain.AddonPerPerson,
	})
	assert.ErrorIs(t, err, ErrInvalidAddon)

	_, err = svc.CreateAddon(context.Background(), &domain.Addon{
		Code:      "boat-trip",
		Price:     money.FromEur(18),
		PriceType: "per_group",
	})
	assert.ErrorIs(t, err, ErrInvalidAddon)
}

func TestDeactivateAddon(t *testing.T) {
	addons := newFakeAddonRepo()
	svc := newCatalogService(&fakeTierRepo{}, addons, &fakeTourRepo{})

	_, err := svc.CreateAddon(context.Background(), &domain.Addon{
		Code:      "lisbon-transfer",
		Price:     money.FromEur(45),
		PriceType: domain.AddonPerBooking,
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeactivateAddon(context.Background(), "lisbon-transfer"))

	// Запись остаётся в хранилище ради снапшотов исторических броней
	stored, ok := addons.byCode["lisbon-transfer"]
	require.True(t, ok)
	assert.False(t, stored.Active)

	err = svc.DeactivateAddon(context.Background(), "no-such-addon")
	assert.ErrorIs(t, err, ErrAddonNotFound)
}

func TestListAddons_SortedBySortOrderThenCode(t *testing.T) {
	addons := newFakeAddonRepo()
	addons.byCode["zz-late"] = &domain.Addon{Code: "zz-late", SortOrder: 1, Active: true}
	addons.byCode["aa-early"] = &domain.Addon{Code: "aa-early", SortOrder: 1, Active: true}
	addons.byCode["first"] = &domain.Addon{Code: "first", SortOrder: 0, Active: true}
	addons.byCode["hidden"] = &domain.Addon{Code: "hidden", SortOrder: 0, Active: false}

	svc := newCatalogService(&fakeTierRepo{}, addons, &fakeTourRepo{})

	out, err := svc.ListAddons(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "first", out[0].Code)
	assert.Equal(t, "aa-early", out[1].Code)
	assert.Equal(t, "zz-late", out[2].Code)

	var codes []string
	for _, a := range out {
		codes = append(codes, a.Code)
	}
	assert.NotContains(t, codes, "hidden")
}

func TestTierTable_GroupsBySeason(t *testing.T) {
	tiers := &fakeTierRepo{stored: []*domain.SeasonPriceTier{
		tier("high", "1-4-people", 1, 4, 300),
		tier("low", "1-4-people", 1, 4, 250),
		tier("high", "5-8-people", 5, 8, 95),
	}}
	tours := &fakeTourRepo{tour: &domain.Tour{ID: 7, MaxGroupSize: 8}}
	svc := newCatalogService(tiers, newFakeAddonRepo(), tours)

	table, err := svc.TierTable(context.Background(), 7)
	require.NoError(t, err)
	assert.Len(t, table[domain.Season("high")], 2)
	assert.Len(t, table[domain.Season("low")], 1)

	_, err = svc.TierTable(context.Background(), 404)
	assert.True(t, errors.Is(err, ErrTourNotFound))
}
