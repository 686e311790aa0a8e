package process_scheduled_tasks

import (
	"context"
	"fmt"

	"github.com/yydtours/YYD-BookingService/internal/domain"
)

// UseCase use case внешнего poller-а отложенных задач. Ядро не держит
// таймеров: эндпоинт дергается снаружи (cron, k8s CronJob), здесь только
// выборка назревших задач и чистые переходы статусов.
type UseCase struct {
	taskRepo     TaskRepository
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(taskRepo TaskRepository, bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		taskRepo:     taskRepo,
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute исполняет назревшие задачи автоподтверждения. Каждая задача
// сначала условно помечается исполненной (перехват между конкурентными
// poller-ами), затем назначение условно переводится pending -> approved:
// уже принятое гидом решение никогда не перезаписывается.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	limit := req.Limit
	if limit == 0 {
		limit = DefaultBatchLimit
	}

	now := uc.timeProvider.Now()
	uc.logger.Info("ProcessScheduledTasks: polling due tasks, limit=%d", limit)

	tasks, err := uc.taskRepo.ListDue(ctx, domain.TaskTypeTourAutoApproval, now, limit)
	if err != nil {
		uc.logger.Error("ProcessScheduledTasks: failed to list due tasks: %v", err)
		return nil, fmt.Errorf("%w: failed to list due tasks: %v", ErrInternal, err)
	}

	resp := &Response{}

	for _, task := range tasks {
		// Условный перехват задачи: второй poller получит false и пропустит
		claimed, err := uc.taskRepo.MarkExecuted(ctx, task.ID)
		if err != nil {
			uc.logger.Error("ProcessScheduledTasks: failed to mark task id=%d executed: %v", task.ID, err)
			return resp, fmt.Errorf("%w: failed to mark task executed: %v", ErrInternal, err)
		}
		if !claimed {
			resp.Skipped++
			continue
		}
		resp.Processed++

		// Автоподтверждение трогает только pending назначения
		flipped, err := uc.bookingRepo.SetGuideApproval(ctx, task.EntityID,
			domain.ApprovalPending, domain.ApprovalApproved, nil)
		if err != nil {
			uc.logger.Error("ProcessScheduledTasks: failed to auto-approve booking id=%d: %v",
				task.EntityID, err)
			return resp, fmt.Errorf("%w: failed to auto-approve: %v", ErrInternal, err)
		}

		if flipped {
			resp.Approved++
			uc.logger.Info("ProcessScheduledTasks: booking id=%d auto-approved", task.EntityID)
		} else {
			resp.Skipped++
			uc.logger.Info("ProcessScheduledTasks: booking id=%d already decided, skipped", task.EntityID)
		}
	}

	uc.logger.Info("ProcessScheduledTasks: done, processed=%d approved=%d skipped=%d",
		resp.Processed, resp.Approved, resp.Skipped)
	return resp, nil
}
