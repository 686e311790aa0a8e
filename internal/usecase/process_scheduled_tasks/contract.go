package process_scheduled_tasks

import (
	"context"
	"time"

	"github.com/yydtours/YYD-BookingService/internal/domain"
)

// TaskRepository интерфейс репозитория отложенных задач
type TaskRepository interface {
	ListDue(ctx context.Context, taskType string, now time.Time, limit uint64) ([]*domain.ScheduledTask, error)
	MarkExecuted(ctx context.Context, id int64) (bool, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	SetGuideApproval(ctx context.Context, id int64, from, to domain.ApprovalStatus, observations *string) (bool, error)
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
