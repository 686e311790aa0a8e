package deactivate_addon

import "context"

type CatalogService interface {
	DeactivateAddon(ctx context.Context, code string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
