package availability

import (
	"context"
	"time"

	"github.com/yydtours/YYD-BookingService/internal/domain"
	"github.com/yydtours/YYD-BookingService/pkg/types"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetByKey(ctx context.Context, tourID int64, date time.Time, startTime types.TimeString) (*domain.AvailabilitySlot, error)
	ListByTourDate(ctx context.Context, tourID int64, date time.Time) ([]*domain.AvailabilitySlot, error)
	CreateIfAbsent(ctx context.Context, slot *domain.AvailabilitySlot) error
	ReserveCapacity(ctx context.Context, slotID int64, count int) error
	ReleaseCapacity(ctx context.Context, slotID int64, count int) error
	BlockByDate(ctx context.Context, tourID int64, date time.Time) (int64, error)
	BlockByTimeRange(ctx context.Context, tourID int64, date time.Time, from, to types.TimeString) (int64, error)
	UnblockByDate(ctx context.Context, tourID int64, date time.Time, maxSlots int) (int64, error)
}

// ReservationRepository интерфейс репозитория резерваций
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) error
	GetByToken(ctx context.Context, token string) (*domain.Reservation, error)
	MarkReleased(ctx context.Context, token string) (bool, error)
}

// BookingCounter считает активные бронирования (для отчёта при блокировке)
type BookingCounter interface {
	CountActiveByTourDate(ctx context.Context, tourID int64, date time.Time) (int, error)
}

// DayCache кэш дневной доступности. Может быть nil-безопасной заглушкой,
// когда Redis выключен.
type DayCache interface {
	GetDay(ctx context.Context, tourID int64, date time.Time) ([]*domain.AvailabilitySlot, bool, error)
	SetDay(ctx context.Context, tourID int64, date time.Time, slots []*domain.AvailabilitySlot) error
	InvalidateDay(ctx context.Context, tourID int64, date time.Time) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// ReservationMetrics счётчик результатов резервирования (prometheus)
type ReservationMetrics interface {
	ObserveReservation(result string)
}

// NopCache заглушка кэша, когда Redis не сконфигурирован
type NopCache struct{}

func (NopCache) GetDay(context.Context, int64, time.Time) ([]*domain.AvailabilitySlot, bool, error) {
	return nil, false, nil
}

func (NopCache) SetDay(context.Context, int64, time.Time, []*domain.AvailabilitySlot) error {
	return nil
}

func (NopCache) InvalidateDay(context.Context, int64, time.Time) error {
	return nil
}

// NopMetrics заглушка метрик, когда метрики выключены
type NopMetrics struct{}

func (NopMetrics) ObserveReservation(string) {}

func (NopMetrics) ObserveQuote(string) {}
