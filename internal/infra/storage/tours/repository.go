package tours

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/yydtours/YYD-BookingService/internal/domain"
	"github.com/yydtours/YYD-BookingService/pkg/dbmetrics"
	"github.com/yydtours/YYD-BookingService/pkg/psqlbuilder"
)

var (
	// ErrTourNotFound возвращается, когда тур не найден
	ErrTourNotFound = errors.New("tours.repository: tour not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("tours.repository: failed to build query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("tours.repository: failed to scan row")
)

type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий туров (каталог читается ядром только на чтение)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория туров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает тур по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Tour, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"slug",
		"duration_hours",
		"max_group_size",
		"default_slot_capacity",
		"active",
		"created_at",
		"updated_at",
	).
		From("tours").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var tour domain.Tour
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&tour.ID,
		&tour.Slug,
		&tour.DurationHours,
		&tour.MaxGroupSize,
		&tour.DefaultSlotCapacity,
		&tour.Active,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrTourNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan tour: %v", ErrScanRow, err)
	}

	tour.CreatedAt = createdAt.Time
	tour.UpdatedAt = updatedAt.Time

	return &tour, nil
}
