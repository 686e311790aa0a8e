package reservations

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

// pgUniqueViolation код нарушения уникальности PostgreSQL
const pgUniqueViolation = "23505"

type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий долговечных токенов резервации
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория резерваций
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет резервацию. Токен уникален: повторная вставка того же
// токена возвращает ErrTokenExists.
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns("token", "slot_id", "booking_number", "reserved_count").
		Values(res.Token, res.SlotID, res.BookingNumber, res.Count).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&res.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			return ErrTokenExists
		}
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByToken получает резервацию по токену. Внутри транзакции блокирует
// строку (FOR UPDATE), чтобы конкурентные release сериализовались.
func (r *Repository) GetByToken(ctx context.Context, token string) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"token",
		"slot_id",
		"booking_number",
		"reserved_count",
		"released_at",
		"created_at",
	).
		From("reservations").
		Where(squirrel.Eq{"token": token})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByToken - build select query: %v", ErrBuildQuery, err)
	}

	var res domain.Reservation
	var releasedAt sql.NullTime
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&res.Token,
		&res.SlotID,
		&res.BookingNumber,
		&res.Count,
		&releasedAt,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByToken - scan reservation: %v", ErrScanRow, err)
	}

	if releasedAt.Valid {
		res.ReleasedAt = &releasedAt.Time
	}
	res.CreatedAt = createdAt.Time

	return &res, nil
}

// MarkReleased помечает резервацию освобождённой. Условное обновление:
// false означает, что токен уже был освобождён (или не существует) -
// повторный release становится no-op у вызывающего кода.
func (r *Repository) MarkReleased(ctx context.Context, token string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("released_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"token": token}).
		Where("released_at IS NULL").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: MarkReleased - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: MarkReleased - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: MarkReleased - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected > 0, nil
}
