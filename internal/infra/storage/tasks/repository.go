package tasks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/yydtours/YYD-BookingService/internal/domain"
	"github.com/yydtours/YYD-BookingService/pkg/dbmetrics"
	"github.com/yydtours/YYD-BookingService/pkg/psqlbuilder"
)

var (
	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("tasks.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("tasks.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("tasks.repository: failed to scan row")
)

type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий отложенных задач. Сам таймер живёт во внешнем
// poller-е: ядро только создаёт записи и помечает выполненные.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория задач
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает отложенную задачу
func (r *Repository) Create(ctx context.Context, task *domain.ScheduledTask) (*domain.ScheduledTask, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("scheduled_tasks").
		Columns("task_type", "entity_id", "scheduled_for").
		Values(task.TaskType, task.EntityID, task.ScheduledFor).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&task.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	task.CreatedAt = createdAt.Time
	return task, nil
}

// ListDue получает невыполненные задачи, срок которых наступил
func (r *Repository) ListDue(ctx context.Context, taskType string, now time.Time, limit uint64) ([]*domain.ScheduledTask, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"task_type",
		"entity_id",
		"scheduled_for",
		"executed",
		"executed_at",
		"created_at",
	).
		From("scheduled_tasks").
		Where(squirrel.Eq{"task_type": taskType, "executed": false}).
		Where(squirrel.LtOrEq{"scheduled_for": now}).
		OrderBy("scheduled_for ASC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListDue - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListDue - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.ScheduledTask, 0)
	for rows.Next() {
		var task domain.ScheduledTask
		var executedAt sql.NullTime
		var createdAt sql.NullTime

		if err := rows.Scan(
			&task.ID,
			&task.TaskType,
			&task.EntityID,
			&task.ScheduledFor,
			&task.Executed,
			&executedAt,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("%w: ListDue - scan row: %v", ErrScanRow, err)
		}

		if executedAt.Valid {
			task.ExecutedAt = &executedAt.Time
		}
		task.CreatedAt = createdAt.Time
		result = append(result, &task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListDue - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// MarkExecuted условно помечает задачу выполненной.
// false = задачу уже забрал конкурентный poller.
func (r *Repository) MarkExecuted(ctx context.Context, id int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("scheduled_tasks").
		Set("executed", true).
		Set("executed_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "executed": false}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: MarkExecuted - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: MarkExecuted - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: MarkExecuted - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected > 0, nil
}
