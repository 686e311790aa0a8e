package quote_price

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

// AddonRepository интерфейс репозитория дополнений
type AddonRepository interface {
	GetByCodes(ctx context.Context, codes []string) ([]*domain.Addon, error)
}

// PriceResolver интерфейс движка расчёта цены
type PriceResolver interface {
	ResolveTier(tiers []*domain.SeasonPriceTier, date time.Time, numberOfPeople int) (*domain.SeasonPriceTier, domain.Season, error)
	ComputeTotal(tier *domain.SeasonPriceTier, numberOfPeople int, selectedCodes []string, catalog []*domain.Addon) (*domain.PriceQuote, []domain.QuotedAddon, error)
}

// QuoteMetrics интерфейс счётчика расчётов котировок
type QuoteMetrics interface {
	ObserveQuote(result string)
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
