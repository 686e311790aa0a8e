package block_dates

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yydtours/YYD-BookingService/internal/domain"
	toursRepo "github.com/yydtours/YYD-BookingService/internal/infra/storage/tours"
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

type fakeLedger struct {
	activeBookings int

	blockedDates  int
	blockedRanges int
	unblocked     int
	invalidated   int
	lastFrom      types.TimeString
	lastTo        types.TimeString
}

func (f *fakeLedger) InvalidateDay(context.Context, int64, time.Time) {
	f.invalidated++
}

func (f *fakeLedger) BlockDate(context.Context, *domain.Tour, time.Time) (int, error) {
	f.blockedDates++
	return f.activeBookings, nil
}

func (f *fakeLedger) BlockTimeRange(_ context.Context, _ *domain.Tour, _ time.Time, from, to types.TimeString) (int, error) {
	f.blockedRanges++
	f.lastFrom, f.lastTo = from, to
	return f.activeBookings, nil
}

func (f *fakeLedger) UnblockDate(context.Context, *domain.Tour, time.Time) error {
	f.unblocked++
	return nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newBlockFixture(active int) (*UseCase, *fakeLedger) {
	tours := &fakeTourRepo{tour: &domain.Tour{ID: 7, Active: true}}
	ledger := &fakeLedger{activeBookings: active}
	return NewUseCase(tours, ledger, passthroughTxManager{}, nopLogger{}), ledger
}

func TestExecute_BlockWholeDay(t *testing.T) {
	uc, ledger := newBlockFixture(2)
	date := time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC)

	resp, err := uc.Execute(context.Background(), &Request{TourID: 7, Date: date})
	require.NoError(t, err)

	assert.True(t, resp.Blocked)
	assert.Equal(t, 2, resp.ActiveBookings)
	assert.Equal(t, 1, ledger.blockedDates)
	assert.Zero(t, ledger.blockedRanges)

	// Кэш дня сбрасывается после коммита
	assert.Equal(t, 1, ledger.invalidated)
}

func TestExecute_BlockTimeRange(t *testing.T) {
	uc, ledger := newBlockFixture(0)
	date := time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC)

	resp, err := uc.Execute(context.Background(), &Request{
		TourID: 7,
		Date:   date,
		From:   ptr.Ptr[types.TimeString]("09:00"),
		To:     ptr.Ptr[types.TimeString]("12:00"),
	})
	require.NoError(t, err)

	assert.True(t, resp.Blocked)
	assert.Equal(t, 1, ledger.blockedRanges)
	assert.Equal(t, types.TimeString("09:00"), ledger.lastFrom)
	assert.Equal(t, types.TimeString("12:00"), ledger.lastTo)
	assert.Zero(t, ledger.blockedDates)
}

func TestExecute_Unblock(t *testing.T) {
	uc, ledger := newBlockFixture(0)
	date := time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC)

	resp, err := uc.Execute(context.Background(), &Request{TourID: 7, Date: date, Unblock: true})
	require.NoError(t, err)

	assert.False(t, resp.Blocked)
	assert.Equal(t, 1, ledger.unblocked)
}

func TestExecute_TourNotFound(t *testing.T) {
	uc, _ := newBlockFixture(0)
	date := time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), &Request{TourID: 404, Date: date})
	assert.ErrorIs(t, err, ErrTourNotFound)
}

func TestExecute_Validation(t *testing.T) {
	uc, _ := newBlockFixture(0)
	date := time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC)

	// From без To
	_, err := uc.Execute(context.Background(), &Request{TourID: 7, Date: date, From: ptr.Ptr[types.TimeString]("09:00")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	// From после To
	_, err = uc.Execute(context.Background(), &Request{
		TourID: 7, Date: date, From: ptr.Ptr[types.TimeString]("15:00"), To: ptr.Ptr[types.TimeString]("12:00"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Unblock с диапазоном не поддерживается
	_, err = uc.Execute(context.Background(), &Request{
		TourID: 7, Date: date, Unblock: true, From: ptr.Ptr[types.TimeString]("09:00"), To: ptr.Ptr[types.TimeString]("12:00"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{TourID: 0, Date: date})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
