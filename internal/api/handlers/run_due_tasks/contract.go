package run_due_tasks

import (
	"context"

	processTasks "github.com/yydtours/YYD-BookingService/internal/usecase/process_scheduled_tasks"
)

type ProcessScheduledTasksUseCase interface {
	Execute(ctx context.Context, req *processTasks.Request) (*processTasks.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
