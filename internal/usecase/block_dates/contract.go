package block_dates

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

// AvailabilityLedger интерфейс сервиса учёта мест
type AvailabilityLedger interface {
	BlockDate(ctx context.Context, tour *domain.Tour, date time.Time) (activeBookings int, err error)
	BlockTimeRange(ctx context.Context, tour *domain.Tour, date time.Time, from, to types.TimeString) (activeBookings int, err error)
	UnblockDate(ctx context.Context, tour *domain.Tour, date time.Time) error
	InvalidateDay(ctx context.Context, tourID int64, date time.Time)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
