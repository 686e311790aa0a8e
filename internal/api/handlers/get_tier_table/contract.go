package get_tier_table

import (
	"context"

	"github.com/yydtours/YYD-BookingService/internal/domain"
)

type CatalogService interface {
	TierTable(ctx context.Context, tourID int64) (map[domain.Season][]*domain.SeasonPriceTier, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
