package create_booking

import (
	"context"
	"time"

	"github.com/yydtours/YYD-BookingService/internal/domain"
	"github.com/yydtours/YYD-BookingService/pkg/types"
)

// TourRepository интерфейс репозитория туров
type TourRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Tour, error)
}

// TierRepository интерфейс репозитория ценовых tier-ов
type TierRepository interface {
	ListByTour(ctx context.Context, tourID int64) ([]*domain.SeasonPriceTier, error)
}

// AddonRepository интерфейс репозитория дополнений
type AddonRepository interface {
	GetByCodes(ctx context.Context, codes []string) ([]*domain.Addon, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// TaskRepository интерфейс репозитория отложенных задач
type TaskRepository interface {
	Create(ctx context.Context, task *domain.ScheduledTask) (*domain.ScheduledTask, error)
}

// AvailabilityLedger интерфейс сервиса учёта мест
type AvailabilityLedger interface {
	Reserve(ctx context.Context, tour *domain.Tour, date time.Time, startTime types.TimeString, count int, bookingNumber string) (*domain.Reservation, error)
	InvalidateDay(ctx context.Context, tourID int64, date time.Time)
}

// PriceResolver интерфейс движка расчёта цены
type PriceResolver interface {
	ResolveTier(tiers []*domain.SeasonPriceTier, date time.Time, numberOfPeople int) (*domain.SeasonPriceTier, domain.Season, error)
	ComputeTotal(tier *domain.SeasonPriceTier, numberOfPeople int, selectedCodes []string, catalog []*domain.Addon) (*domain.PriceQuote, []domain.QuotedAddon, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
