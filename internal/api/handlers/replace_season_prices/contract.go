package replace_season_prices

import (
	"context"

	"github.com/yydtours/YYD-BookingService/internal/domain"
)

type CatalogService interface {
	ReplaceTierTable(ctx context.Context, tourID int64, season domain.Season, tiers []*domain.SeasonPriceTier) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
