package addons

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/yydtours/YYD-BookingService/internal/domain"
	"github.com/yydtours/YYD-BookingService/pkg/dbmetrics"
	"github.com/yydtours/YYD-BookingService/pkg/psqlbuilder"
)

const pgUniqueViolation = "23505"

var addonColumns = []string{
	"id",
	"code",
	"price_cents",
	"price_type",
	"category",
	"active",
	"sort_order",
	"created_at",
	"updated_at",
}

type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий каталога дополнений
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория дополнений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListActive получает все активные дополнения, отсортированные для витрины
func (r *Repository) ListActive(ctx context.Context) ([]*domain.Addon, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(addonColumns...).
		From("addons").
		Where(squirrel.Eq{"active": true}).
		OrderBy("sort_order ASC, code ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAddons(rows, "ListActive")
}

// GetByCodes получает дополнения по кодам (включая неактивные - resolver
// сам отличает неизвестный код от деактивированного)
func (r *Repository) GetByCodes(ctx context.Context, codes []string) ([]*domain.Addon, error) {
	if len(codes) == 0 {
		return []*domain.Addon{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(addonColumns...).
		From("addons").
		Where(squirrel.Eq{"code": codes}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCodes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCodes - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAddons(rows, "GetByCodes")
}

// Create создает новое дополнение
func (r *Repository) Create(ctx context.Context, addon *domain.Addon) (*domain.Addon, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("addons").
		Columns("code", "price_cents", "price_type", "category", "active", "sort_order").
		Values(addon.Code, addon.Price, addon.PriceType, addon.Category, addon.Active, addon.SortOrder).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&addon.ID, &createdAt, &updatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			return nil, ErrCodeExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	addon.CreatedAt = createdAt.Time
	addon.UpdatedAt = updatedAt.Time

	return addon, nil
}

// SetActive активирует или деактивирует дополнение по коду.
// Деактивация не удаляет запись: история бронирований ссылается на код.
func (r *Repository) SetActive(ctx context.Context, code string, active bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("addons").
		Set("active", active).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"code": code}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetActive - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetActive - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetActive - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAddonNotFound
	}

	return nil
}

func (r *Repository) scanAddons(rows *sql.Rows, op string) ([]*domain.Addon, error) {
	result := make([]*domain.Addon, 0)

	for rows.Next() {
		var addon domain.Addon
		var createdAt, updatedAt sql.NullTime

		if err := rows.Scan(
			&addon.ID,
			&addon.Code,
			&addon.Price,
			&addon.PriceType,
			&addon.Category,
			&addon.Active,
			&addon.SortOrder,
			&createdAt,
			&updatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}

		addon.CreatedAt = createdAt.Time
		addon.UpdatedAt = updatedAt.Time
		result = append(result, &addon)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return result, nil
}
