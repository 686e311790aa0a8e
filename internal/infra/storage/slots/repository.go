package slots

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/yydtours/YYD-BookingService/internal/domain"
	"github.com/yydtours/YYD-BookingService/pkg/dbmetrics"
	"github.com/yydtours/YYD-BookingService/pkg/psqlbuilder"
	"github.com/yydtours/YYD-BookingService/pkg/types"
)

var slotColumns = []string{
	"id",
	"tour_id",
	"date",
	"start_time",
	"end_time",
	"max_slots",
	"booked_slots",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий слотов доступности.
// Единственный писатель счётчиков занятости: все изменения booked_slots
// идут через условные UPDATE с проверкой RowsAffected.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByKey получает слот по уникальному ключу (tour_id, date, start_time).
// Внутри транзакции добавляет FOR UPDATE.
func (r *Repository) GetByKey(ctx context.Context, tourID int64, date time.Time, startTime types.TimeString) (*domain.AvailabilitySlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(slotColumns...).
		From("availability_slots").
		Where(squirrel.Eq{
			"tour_id":    tourID,
			"date":       date,
			"start_time": startTime,
		})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByKey - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanSlot(executor.QueryRowContext(ctx, query, args...), "GetByKey")
}

// ListByTourDate получает все слоты тура на дату, отсортированные по времени
func (r *Repository) ListByTourDate(ctx context.Context, tourID int64, date time.Time) ([]*domain.AvailabilitySlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns...).
		From("availability_slots").
		Where(squirrel.Eq{"tour_id": tourID, "date": date}).
		OrderBy("start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByTourDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByTourDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.AvailabilitySlot, 0)
	for rows.Next() {
		var slot domain.AvailabilitySlot
		var createdAt, updatedAt sql.NullTime
		if err := rows.Scan(
			&slot.ID,
			&slot.TourID,
			&slot.Date,
			&slot.StartTime,
			&slot.EndTime,
			&slot.MaxSlots,
			&slot.BookedSlots,
			&slot.Status,
			&createdAt,
			&updatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: ListByTourDate - scan row: %v", ErrScanRow, err)
		}
		slot.CreatedAt = createdAt.Time
		slot.UpdatedAt = updatedAt.Time
		result = append(result, &slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByTourDate - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// CreateIfAbsent лениво материализует слот. При конкурентной вставке того
// же ключа молча выигрывает первая (ON CONFLICT DO NOTHING) - вызывающий
// код перечитывает слот по ключу.
func (r *Repository) CreateIfAbsent(ctx context.Context, slot *domain.AvailabilitySlot) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("availability_slots").
		Columns("tour_id", "date", "start_time", "end_time", "max_slots", "booked_slots", "status").
		Values(slot.TourID, slot.Date, slot.StartTime, slot.EndTime, slot.MaxSlots, slot.BookedSlots, slot.Status).
		Suffix("ON CONFLICT (tour_id, date, start_time) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: CreateIfAbsent - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: CreateIfAbsent - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// ReserveCapacity атомарно занимает count мест в слоте.
// Проверка вместимости и инкремент - одно условное обновление: при
// конкурентных попытках на последнее место побеждает ровно одна,
// остальные получают ErrNoCapacity по нулевому RowsAffected.
func (r *Repository) ReserveCapacity(ctx context.Context, slotID int64, count int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("availability_slots").
		Set("booked_slots", squirrel.Expr("booked_slots + ?", count)).
		Set("status", squirrel.Expr(
			"CASE WHEN booked_slots + ? >= max_slots THEN 'booked' ELSE 'available' END", count)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": slotID}).
		Where(squirrel.NotEq{"status": domain.SlotBlocked}).
		Where(squirrel.Expr("booked_slots + ? <= max_slots", count)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReserveCapacity - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: ReserveCapacity - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: ReserveCapacity - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrNoCapacity
	}

	return nil
}

// ReleaseCapacity возвращает count мест слоту. Заблокированный слот
// остаётся заблокированным - освобождение меняет только счётчик.
func (r *Repository) ReleaseCapacity(ctx context.Context, slotID int64, count int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("availability_slots").
		Set("booked_slots", squirrel.Expr("GREATEST(booked_slots - ?, 0)", count)).
		Set("status", squirrel.Expr(
			"CASE WHEN status = 'blocked' THEN 'blocked' "+
				"WHEN GREATEST(booked_slots - ?, 0) >= max_slots THEN 'booked' "+
				"ELSE 'available' END", count)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": slotID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReleaseCapacity - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: ReleaseCapacity - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: ReleaseCapacity - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotNotFound
	}

	return nil
}

// BlockByDate блокирует все слоты тура на дату: max_slots = 0, статус
// blocked. booked_slots не трогаем - существующие подтверждённые
// бронирования не отменяются автоматически. Возвращает число
// затронутых слотов.
func (r *Repository) BlockByDate(ctx context.Context, tourID int64, date time.Time) (int64, error) {
	return r.block(ctx, squirrel.Eq{"tour_id": tourID, "date": date}, "BlockByDate")
}

// BlockByTimeRange блокирует слоты тура на дату со временем начала в
// диапазоне [from, to)
func (r *Repository) BlockByTimeRange(ctx context.Context, tourID int64, date time.Time, from, to types.TimeString) (int64, error) {
	cond := squirrel.And{
		squirrel.Eq{"tour_id": tourID, "date": date},
		squirrel.GtOrEq{"start_time": from},
		squirrel.Lt{"start_time": to},
	}
	return r.block(ctx, cond, "BlockByTimeRange")
}

func (r *Repository) block(ctx context.Context, cond squirrel.Sqlizer, op string) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("availability_slots").
		Set("max_slots", 0).
		Set("status", domain.SlotBlocked).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(cond).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, op, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	return rowsAffected, nil
}

// UnblockByDate снимает блокировку со слотов тура на дату, восстанавливая
// вместимость maxSlots. Статус выводится из счётчиков. Блокировка
// снимается только этим явным действием персонала.
func (r *Repository) UnblockByDate(ctx context.Context, tourID int64, date time.Time, maxSlots int) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("availability_slots").
		Set("max_slots", maxSlots).
		Set("status", squirrel.Expr(
			"CASE WHEN booked_slots >= ? THEN 'booked' ELSE 'available' END", maxSlots)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"tour_id": tourID,
			"date":    date,
			"status":  domain.SlotBlocked,
		}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: UnblockByDate - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: UnblockByDate - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: UnblockByDate - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

func (r *Repository) scanSlot(row *sql.Row, op string) (*domain.AvailabilitySlot, error) {
	var slot domain.AvailabilitySlot
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&slot.ID,
		&slot.TourID,
		&slot.Date,
		&slot.StartTime,
		&slot.EndTime,
		&slot.MaxSlots,
		&slot.BookedSlots,
		&slot.Status,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan slot: %v", ErrScanRow, op, err)
	}

	slot.CreatedAt = createdAt.Time
	slot.UpdatedAt = updatedAt.Time

	return &slot, nil
}
