package list_addons

import (
	"context"

	"github.com/yydtours/YYD-BookingService/internal/domain"
)

type CatalogService interface {
	ListAddons(ctx context.Context) ([]*domain.Addon, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
