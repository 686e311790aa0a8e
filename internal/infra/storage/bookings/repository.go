package bookings

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/yydtours/YYD-BookingService/internal/domain"
	"github.com/yydtours/YYD-BookingService/pkg/dbmetrics"
	"github.com/yydtours/YYD-BookingService/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"id",
	"booking_number",
	"customer_id",
	"tour_id",
	"date",
	"start_time",
	"number_of_people",
	"status",
	"season",
	"tier_label",
	"base_price_cents",
	"addons_total_cents",
	"total_price_cents",
	"addon_codes",
	"guide_id",
	"guide_approval",
	"guide_approved_at",
	"guide_observations",
	"pickup_location",
	"special_requests",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий бронирований. Бронирование хранит снимок
// принятой котировки - последующие правки tier-ов и дополнений историю
// не меняют.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает бронирование со снимком котировки
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"booking_number",
			"customer_id",
			"tour_id",
			"date",
			"start_time",
			"number_of_people",
			"status",
			"season",
			"tier_label",
			"base_price_cents",
			"addons_total_cents",
			"total_price_cents",
			"addon_codes",
			"guide_id",
			"pickup_location",
			"special_requests",
		).
		Values(
			booking.BookingNumber,
			booking.CustomerID,
			booking.TourID,
			booking.Date,
			booking.StartTime,
			booking.NumberOfPeople,
			booking.Status,
			booking.Season,
			booking.TierLabel,
			booking.BasePrice,
			booking.AddonsTotal,
			booking.TotalPrice,
			pq.Array(booking.AddonCodes),
			booking.GuideID,
			booking.PickupLocation,
			booking.SpecialRequests,
		).
		Suffix("RETURNING id, guide_approval, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.GuideApproval,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return r.getByCond(ctx, squirrel.Eq{"id": id}, "GetByID")
}

// GetByNumber получает бронирование по номеру
func (r *Repository) GetByNumber(ctx context.Context, number string) (*domain.Booking, error) {
	return r.getByCond(ctx, squirrel.Eq{"booking_number": number}, "GetByNumber")
}

func (r *Repository) getByCond(ctx context.Context, cond squirrel.Sqlizer, op string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(cond)

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var booking domain.Booking
	if err := r.scanBooking(executor.QueryRowContext(ctx, query, args...), &booking); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("%w: %s - scan booking: %v", ErrScanRow, op, err)
	}

	return &booking, nil
}

// CountActiveByTourDate считает активные бронирования тура на дату.
// Используется при блокировке дат: ledger не отменяет их сам, а
// сообщает количество вызывающему коду.
func (r *Repository) CountActiveByTourDate(ctx context.Context, tourID int64, date time.Time) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	inactive := make([]string, len(domain.InactiveStatuses))
	for i, s := range domain.InactiveStatuses {
		inactive[i] = string(s)
	}

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("bookings").
		Where(squirrel.Eq{"tour_id": tourID, "date": date}).
		Where(squirrel.NotEq{"status": inactive}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountActiveByTourDate - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountActiveByTourDate - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// Cancel отменяет бронирование с указанием причины
func (r *Repository) Cancel(ctx context.Context, id int64, status domain.BookingStatus, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// SetGuideApproval записывает решение гида (или авто-одобрение).
// expectCurrent задаёт условный переход: обновление проходит только из
// указанного статуса. false = статус уже изменился, перехода не было.
func (r *Repository) SetGuideApproval(
	ctx context.Context,
	id int64,
	from domain.ApprovalStatus,
	to domain.ApprovalStatus,
	observations *string,
) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("guide_approval", to).
		Set("guide_approved_at", squirrel.Expr("NOW()")).
		Set("guide_observations", observations).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "guide_approval": from}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: SetGuideApproval - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: SetGuideApproval - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: SetGuideApproval - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected > 0, nil
}

func (r *Repository) scanBooking(row *sql.Row, booking *domain.Booking) error {
	var createdAt, updatedAt sql.NullTime
	var addonCodes pq.StringArray

	err := row.Scan(
		&booking.ID,
		&booking.BookingNumber,
		&booking.CustomerID,
		&booking.TourID,
		&booking.Date,
		&booking.StartTime,
		&booking.NumberOfPeople,
		&booking.Status,
		&booking.Season,
		&booking.TierLabel,
		&booking.BasePrice,
		&booking.AddonsTotal,
		&booking.TotalPrice,
		&addonCodes,
		&booking.GuideID,
		&booking.GuideApproval,
		&booking.GuideApprovedAt,
		&booking.GuideObservations,
		&booking.PickupLocation,
		&booking.SpecialRequests,
		&booking.CancellationReason,
		&booking.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return err
	}

	booking.AddonCodes = addonCodes
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return nil
}
