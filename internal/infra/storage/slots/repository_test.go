package slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yydtours/YYD-BookingService/internal/domain"
	"github.com/yydtours/YYD-BookingService/pkg/types"
)

func newRepoWithMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func slotRows(id int64) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(slotColumns).
		AddRow(id, int64(7), time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC),
			"09:30", "13:30", 8, 3, "available", now, now)
}

func TestGetByKey(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`SELECT .+ FROM availability_slots WHERE`).
		WillReturnRows(slotRows(42))

	slot, err := repo.GetByKey(context.Background(), 7,
		time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC), "09:30")
	require.NoError(t, err)

	assert.Equal(t, int64(42), slot.ID)
	assert.Equal(t, types.TimeString("09:30"), slot.StartTime)
	assert.Equal(t, 8, slot.MaxSlots)
	assert.Equal(t, 3, slot.BookedSlots)
	assert.Equal(t, domain.SlotAvailable, slot.Status)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByKey_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`SELECT .+ FROM availability_slots WHERE`).
		WillReturnRows(sqlmock.NewRows(slotColumns))

	_, err := repo.GetByKey(context.Background(), 7,
		time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC), "09:30")
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestReserveCapacity(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`UPDATE availability_slots SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.ReserveCapacity(context.Background(), 42, 3))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Нулевой RowsAffected означает, что условие вместимости не прошло:
// слот заблокирован, мест нет или проиграна гонка за последнее место.
func TestReserveCapacity_ConditionFails(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`UPDATE availability_slots SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.ReserveCapacity(context.Background(), 42, 3)
	assert.ErrorIs(t, err, ErrNoCapacity)
}

func TestReserveCapacity_ExecError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`UPDATE availability_slots SET`).
		WillReturnError(errors.New("connection reset"))

	err := repo.ReserveCapacity(context.Background(), 42, 3)
	assert.ErrorIs(t, err, ErrExecQuery)
}

func TestReleaseCapacity_SlotGone(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`UPDATE availability_slots SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.ReleaseCapacity(context.Background(), 404, 2)
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestCreateIfAbsent(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`INSERT INTO availability_slots .+ ON CONFLICT \(tour_id,date,start_time\) DO NOTHING|INSERT INTO availability_slots`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreateIfAbsent(context.Background(), &domain.AvailabilitySlot{
		TourID:    7,
		Date:      time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC),
		StartTime: "09:30",
		EndTime:   "13:30",
		MaxSlots:  8,
		Status:    domain.SlotAvailable,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBlockByDate(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`UPDATE availability_slots SET`).
		WillReturnResult(sqlmock.NewResult(0, 2))

	blocked, err := repo.BlockByDate(context.Background(), 7,
		time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, int64(2), blocked)
}

func TestUnblockByDate_NothingBlocked(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`UPDATE availability_slots SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	unblocked, err := repo.UnblockByDate(context.Background(), 7,
		time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC), 8)
	require.NoError(t, err)
	assert.Equal(t, int64(0), unblocked)
}

func TestListByTourDate(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	now := time.Now()
	date := time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(slotColumns).
		AddRow(int64(1), int64(7), date, "09:30", "13:30", 8, 8, "booked", now, now).
		AddRow(int64(2), int64(7), date, "15:00", "19:00", 8, 0, "available", now, now)

	mock.ExpectQuery(`SELECT .+ FROM availability_slots WHERE .+ ORDER BY start_time ASC`).
		WillReturnRows(rows)

	slots, err := repo.ListByTourDate(context.Background(), 7, date)
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, domain.SlotBooked, slots[0].Status)
	assert.Equal(t, 0, slots[0].AvailableSpots())
	assert.Equal(t, 8, slots[1].AvailableSpots())
}
