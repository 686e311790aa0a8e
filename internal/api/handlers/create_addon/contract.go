package create_addon

import (
	"context"

	"github.com/yydtours/YYD-BookingService/internal/domain"
)

type CatalogService interface {
	CreateAddon(ctx context.Context, addon *domain.Addon) (*domain.Addon, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
