package catalog

import (
	"context"

	"github.com/yydtours/YYD-BookingService/internal/domain"
)

// TierRepository интерфейс репозитория ценовых tier-ов
type TierRepository interface {
	ListByTour(ctx context.Context, tourID int64) ([]*domain.SeasonPriceTier, error)
	ReplaceForSeason(ctx context.Context, tourID int64, season domain.Season, tiers []*domain.SeasonPriceTier) error
}

// AddonRepository интерфейс репозитория дополнений
type AddonRepository interface {
	ListActive(ctx context.Context) ([]*domain.Addon, error)
	Create(ctx context.Context, addon *domain.Addon) (*domain.Addon, error)
	SetActive(ctx context.Context, code string, active bool) error
}

// TourRepository интерфейс репозитория туров
type TourRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Tour, error)
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