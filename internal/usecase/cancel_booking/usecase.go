package cancel_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/yydtours/YYD-BookingService/internal/domain"
	bookingsRepo "github.com/yydtours/YYD-BookingService/internal/infra/storage/bookings"
	availability "github.com/yydtours/YYD-BookingService/internal/service/availability"
)

// UseCase use case для отмены бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	ledger       AvailabilityLedger
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	ledger AvailabilityLedger,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		ledger:       ledger,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case отмены бронирования. Возврат мест и смена
// статуса - в одной сериализуемой транзакции; release идемпотентен,
// поэтому повторная отмена (дубль запроса) безопасна.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelBooking: booking=%d, actor=%d, byStaff=%t", req.BookingID, req.ActorID, req.ByStaff)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CancelBooking: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	// 2. Отмена в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем бронь с блокировкой (FOR UPDATE)
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingsRepo.ErrBookingNotFound) {
				uc.logger.Warn("CancelBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("CancelBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 2.2. Проверяем владельца (персонал отменяет любую бронь)
		if !req.ByStaff && booking.CustomerID != req.ActorID {
			uc.logger.Warn("CancelBooking: booking id=%d belongs to customer=%d, actor=%d",
				req.BookingID, booking.CustomerID, req.ActorID)
			return ErrNotOwner
		}

		// 2.3. Проверяем, что бронь ещё можно отменить
		if !booking.CanBeCancelled() {
			uc.logger.Warn("CancelBooking: booking id=%d has status %s", req.BookingID, booking.Status)
			return ErrNotCancellable
		}

		// 2.4. Возвращаем места слоту. Токен восстановим из номера
		// брони, резервация переживает рестарты процесса.
		token := domain.ReservationTokenFor(booking.BookingNumber)
		if err := uc.ledger.Release(txCtx, token); err != nil {
			if errors.Is(err, availability.ErrUnknownToken) {
				// Брони без резервации (исторические данные) отменяем без возврата мест
				uc.logger.Warn("CancelBooking: no reservation for booking number=%s", booking.BookingNumber)
			} else {
				uc.logger.Error("CancelBooking: failed to release reservation: %v", err)
				return fmt.Errorf("%w: failed to release reservation: %v", ErrInternal, err)
			}
		}

		// 2.5. Меняем статус
		status := domain.StatusCancelledByUser
		if req.ByStaff {
			status = domain.StatusCancelledByStaff
		}

		reason := ""
		if req.Reason != nil {
			reason = *req.Reason
		}

		if err := uc.bookingRepo.Cancel(txCtx, booking.ID, status, reason); err != nil {
			uc.logger.Error("CancelBooking: failed to cancel booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to cancel booking: %v", ErrInternal, err)
		}

		booking.Status = status
		result = booking
		return nil
	})

	if err != nil {
		return nil, err
	}

	// 3. Сбрасываем кэш доступности дня после коммита, чтобы
	// конкурентный читатель не перезаписал его данными открытой
	// транзакции
	uc.ledger.InvalidateDay(ctx, result.TourID, result.Date)

	uc.logger.Info("CancelBooking: booking id=%d number=%s cancelled (%s)",
		result.ID, result.BookingNumber, result.Status)

	return &Response{
		ID:            result.ID,
		BookingNumber: result.BookingNumber,
		Status:        string(result.Status),
		CancelledAt:   uc.timeProvider.Now(),
	}, nil
}
