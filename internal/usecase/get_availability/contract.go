package get_availability

import (
	"context"
	"time"

	"github.com/yydtours/YYD-BookingService/internal/domain"
)

// TourRepository интерфейс репозитория туров
type TourRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Tour, error)
}

// TierRepository интерфейс репозитория ценовых tier-ов
type TierRepository interface {
	ListByTour(ctx context.Context, tourID int64) ([]*domain.SeasonPriceTier, error)
}

// AvailabilityLedger интерфейс сервиса учёта мест
type AvailabilityLedger interface {
	DayAvailability(ctx context.Context, tour *domain.Tour, date time.Time) ([]*domain.AvailabilitySlot, error)
}

// SeasonResolver интерфейс определения сезона по дате
type SeasonResolver interface {
	SeasonFor(date time.Time) domain.Season
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
