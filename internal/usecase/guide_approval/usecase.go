package guide_approval

import (
	"context"
	"errors"
	"fmt"

	"github.com/yydtours/YYD-BookingService/internal/domain"
	bookingsRepo "github.com/yydtours/YYD-BookingService/internal/infra/storage/bookings"
)

// UseCase use case для решения гида по назначению на тур
type UseCase struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case решения гида. Отклонение разрешено только
// пока до начала тура остаётся не меньше 48 часов; переход статуса
// условный (pending -> решение), гонка с автоподтверждением разрешается
// на уровне БД.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GuideApproval: booking=%d, guide=%d, approve=%t", req.BookingID, req.GuideID, req.Approve)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GuideApproval: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем бронь
	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingsRepo.ErrBookingNotFound) {
			uc.logger.Warn("GuideApproval: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("GuideApproval: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	// 3. Проверяем, что решение принимает назначенный гид
	if booking.GuideID == nil || *booking.GuideID != req.GuideID {
		uc.logger.Warn("GuideApproval: guide=%d is not assigned to booking id=%d", req.GuideID, req.BookingID)
		return nil, ErrNotAssignedGuide
	}

	if booking.GuideApproval != domain.ApprovalPending {
		uc.logger.Warn("GuideApproval: booking id=%d already decided (%s)", req.BookingID, booking.GuideApproval)
		return nil, ErrAlreadyDecided
	}

	// 4. Отклонение гейтится чистой проверкой времени (>= 48ч до начала)
	now := uc.timeProvider.Now()
	tourStart, err := booking.StartsAt()
	if err != nil {
		uc.logger.Error("GuideApproval: failed to compute tour start for booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to compute tour start: %v", ErrInternal, err)
	}

	hoursUntil := domain.HoursUntil(tourStart, now)

	decision := domain.ApprovalApproved
	if !req.Approve {
		if !domain.CanReject(tourStart, now) {
			uc.logger.Warn("GuideApproval: booking id=%d starts in %.1fh, rejection window closed",
				req.BookingID, hoursUntil)
			return nil, fmt.Errorf("%w: tour starts in %.1f hours", ErrTooLateToReject, hoursUntil)
		}
		decision = domain.ApprovalRejected
	}

	// 5. Условный переход pending -> решение
	applied, err := uc.bookingRepo.SetGuideApproval(ctx, booking.ID, domain.ApprovalPending, decision, req.Observations)
	if err != nil {
		uc.logger.Error("GuideApproval: failed to set approval for booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to set approval: %v", ErrInternal, err)
	}
	if !applied {
		// Статус изменился между чтением и записью (например, автоподтверждение)
		uc.logger.Warn("GuideApproval: booking id=%d decided concurrently", req.BookingID)
		return nil, ErrAlreadyDecided
	}

	uc.logger.Info("GuideApproval: booking id=%d number=%s -> %s (%.1fh before start)",
		booking.ID, booking.BookingNumber, decision, hoursUntil)

	return &Response{
		BookingID:     booking.ID,
		BookingNumber: booking.BookingNumber,
		GuideApproval: string(decision),
		HoursUntil:    hoursUntil,
	}, nil
}
