package create_booking

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yydtours/YYD-BookingService/internal/domain"
	toursRepo "github.com/yydtours/YYD-BookingService/internal/infra/storage/tours"
	"github.com/yydtours/YYD-BookingService/internal/pricing"
	availability "github.com/yydtours/YYD-BookingService/internal/service/availability"
	"github.com/yydtours/YYD-BookingService/pkg/money"
	"github.com/yydtours/YYD-BookingService/pkg/ptr"
	"github.com/yydtours/YYD-BookingService/pkg/types"
)

type fakeTourRepo struct {
	tour *domain.Tour
}

func (f *fakeTourRepo) GetByID(_ context.Context, id int64) (*domain.Tour, error) {
	if f.tour == nil || f.tour.ID != id {
		return nil, toursRepo.ErrTourNotFound
	}
	return f.tour, nil
}

type fakeTierRepo struct {
	tiers []*domain.SeasonPriceTier
}

func (f *fakeTierRepo) ListByTour(context.Context, int64) ([]*domain.SeasonPriceTier, error) {
	return f.tiers, nil
}

type fakeAddonRepo struct {
	catalog []*domain.Addon
}

func (f *fakeAddonRepo) GetByCodes(_ context.Context, codes []string) ([]*domain.Addon, error) {
	var out []*domain.Addon
	for _, a := range f.catalog {
		for _, code := range codes {
			if a.Code == code {
				out = append(out, a)
			}
		}
	}
	return out, nil
}

type fakeBookingRepo struct {
	created *domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	copied := *booking
	copied.ID = 11
	copied.CreatedAt = time.Date(2026, time.January, 15, 10, 0, 0, 0, time.UTC)
	f.created = &copied
	return &copied, nil
}

type fakeTaskRepo struct {
	tasks []*domain.ScheduledTask
}

func (f *fakeTaskRepo) Create(_ context.Context, task *domain.ScheduledTask) (*domain.ScheduledTask, error) {
	copied := *task
	copied.ID = int64(len(f.tasks) + 1)
	f.tasks = append(f.tasks, &copied)
	return &copied, nil
}

type fakeLedger struct {
	err         error
	reserved    int
	lastKey     string
	invalidated int
}

func (f *fakeLedger) Reserve(_ context.Context, _ *domain.Tour, _ time.Time, startTime types.TimeString, count int, bookingNumber string) (*domain.Reservation, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.reserved += count
	f.lastKey = string(startTime)
	return &domain.Reservation{
		Token:         domain.ReservationTokenFor(bookingNumber),
		SlotID:        42,
		BookingNumber: bookingNumber,
		Count:         count,
	}, nil
}

func (f *fakeLedger) InvalidateDay(context.Context, int64, time.Time) {
	f.invalidated++
}

type passthroughTxManager struct {
	calls int
}

func (m *passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type bookingFixture struct {
	uc       *UseCase
	bookings *fakeBookingRepo
	tasks    *fakeTaskRepo
	ledger   *fakeLedger
	tx       *passthroughTxManager
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()

	tours := &fakeTourRepo{tour: &domain.Tour{ID: 7, MaxGroupSize: 8, DefaultSlotCapacity: 8, DurationHours: 4, Active: true}}
	tiers := &fakeTierRepo{tiers: []*domain.SeasonPriceTier{
		{TourID: 7, Season: domain.SeasonHigh, Label: "1-4-people", MinPeople: 1, MaxPeople: 4, Price: money.FromEur(400)},
		{TourID: 7, Season: domain.SeasonHigh, Label: "5-8-people", MinPeople: 5, MaxPeople: 8, Price: money.FromEur(95), PricePerPerson: true},
	}}
	addons := &fakeAddonRepo{catalog: []*domain.Addon{
		{Code: "wine-tasting", Price: money.FromEur(24), PriceType: domain.AddonPerPerson, Active: true},
	}}

	f := &bookingFixture{
		bookings: &fakeBookingRepo{},
		tasks:    &fakeTaskRepo{},
		ledger:   &fakeLedger{},
		tx:       &passthroughTxManager{},
	}

	resolver := pricing.NewResolver(pricing.DefaultCalendar(), nopLogger{}, nil)
	f.uc = NewUseCase(tours, tiers, addons, f.bookings, f.tasks, f.ledger, resolver, f.tx, nopLogger{})
	f.uc.timeProvider = fixedTime{now: time.Date(2026, time.January, 15, 10, 0, 0, 0, time.UTC)}

	return f
}

func validRequest() *Request {
	return &Request{
		CustomerID:     100,
		TourID:         7,
		Date:           time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC),
		StartTime:      "09:30",
		NumberOfPeople: 3,
		AddonCodes:     []string{"wine-tasting"},
	}
}

func TestExecute_CreatesBookingWithServerSideQuote(t *testing.T) {
	f := newBookingFixture(t)

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(11), resp.ID)
	assert.True(t, strings.HasPrefix(resp.BookingNumber, "YYD-"), "got %q", resp.BookingNumber)
	assert.Len(t, resp.BookingNumber, 12)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, "high", resp.Season)
	assert.Equal(t, "1-4-people", resp.TierLabel)

	// Снапшот котировки: 400 + 24*3 = 472 евро
	assert.Equal(t, money.FromEur(400), resp.BasePrice)
	assert.Equal(t, money.FromEur(72), resp.AddonsTotal)
	assert.Equal(t, money.FromEur(472), resp.TotalPrice)
	assert.Equal(t, "EUR", resp.Currency)

	assert.Equal(t, 3, f.ledger.reserved)
	assert.Equal(t, "09:30", f.ledger.lastKey)
	assert.Equal(t, 1, f.tx.calls)

	// Кэш дня сбрасывается один раз, после коммита
	assert.Equal(t, 1, f.ledger.invalidated)

	require.NotNil(t, f.bookings.created)
	assert.Equal(t, resp.BookingNumber, f.bookings.created.BookingNumber)
	assert.Equal(t, domain.ApprovalPending, f.bookings.created.GuideApproval)
}

func TestExecute_NoGuideNoAutoApprovalTask(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Empty(t, f.tasks.tasks)
}

func TestExecute_GuideAssignedSchedulesAutoApproval(t *testing.T) {
	f := newBookingFixture(t)
	req := validRequest()
	req.GuideID = ptr.Ptr(int64(55))

	_, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, f.tasks.tasks, 1)
	task := f.tasks.tasks[0]
	assert.Equal(t, domain.TaskTypeTourAutoApproval, task.TaskType)
	assert.Equal(t, int64(11), task.EntityID)
	assert.Equal(t,
		time.Date(2026, time.January, 15, 10, 0, 0, 0, time.UTC).Add(domain.AutoApprovalDelay),
		task.ScheduledFor)
}

func TestExecute_NoCapacity(t *testing.T) {
	f := newBookingFixture(t)
	f.ledger.err = availability.ErrNoCapacity

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrNoCapacity)
	assert.Nil(t, f.bookings.created, "booking must not be written without a reservation")
	assert.Zero(t, f.ledger.invalidated, "failed transaction must not touch the cache")
}

func TestExecute_DateBlocked(t *testing.T) {
	f := newBookingFixture(t)
	f.ledger.err = availability.ErrSlotBlocked

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDateBlocked)
	assert.Nil(t, f.bookings.created)
}

func TestExecute_NoMatchingTier(t *testing.T) {
	f := newBookingFixture(t)
	req := validRequest()
	// Февраль - низкий сезон, для которого tier-таблица пуста
	req.Date = time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC)

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrNoMatchingTier)
	assert.Zero(t, f.ledger.reserved, "no reservation without a resolved tier")
}

func TestExecute_UnknownAddon(t *testing.T) {
	f := newBookingFixture(t)
	req := validRequest()
	req.AddonCodes = []string{"no-such-addon"}

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrUnknownAddon)
	assert.Zero(t, f.ledger.reserved)
}

func TestExecute_TourNotFound(t *testing.T) {
	f := newBookingFixture(t)
	req := validRequest()
	req.TourID = 404

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrTourNotFound)
}

func TestExecute_TourInactive(t *testing.T) {
	f := newBookingFixture(t)
	tours := &fakeTourRepo{tour: &domain.Tour{ID: 7, Active: false}}
	f.uc.tourRepo = tours

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrTourInactive)
}

func TestExecute_ValidationFailures(t *testing.T) {
	f := newBookingFixture(t)

	req := validRequest()
	req.Date = time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest()
	req.NumberOfPeople = 0
	_, err = f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest()
	req.StartTime = "25:99"
	_, err = f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest()
	req.CustomerID = 0
	_, err = f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

// Открытый последний tier (maxPeople=0) не должен позволять бронировать
// группу больше лимита самого тура.
func TestExecute_RejectsPartyAboveTourMaxGroupSize(t *testing.T) {
	f := newBookingFixture(t)
	f.uc.tourRepo = &fakeTourRepo{tour: &domain.Tour{ID: 7, MaxGroupSize: 4, DefaultSlotCapacity: 20, DurationHours: 4, Active: true}}
	f.uc.tierRepo = &fakeTierRepo{tiers: []*domain.SeasonPriceTier{
		{TourID: 7, Season: domain.SeasonHigh, Label: "3-plus", MinPeople: 3, MaxPeople: 0, Price: money.FromEur(95), PricePerPerson: true},
	}}

	req := validRequest()
	req.NumberOfPeople = 10
	req.AddonCodes = nil

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Zero(t, f.ledger.reserved, "no reservation for an oversized party")
	assert.Nil(t, f.bookings.created)
}

func TestNewBookingNumber_Format(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		n := newBookingNumber()
		assert.True(t, strings.HasPrefix(n, "YYD-"))
		assert.Len(t, n, 12)
		assert.Equal(t, strings.ToUpper(n), n)
		assert.False(t, seen[n], "booking numbers must not repeat: %s", n)
		seen[n] = true
	}
}
