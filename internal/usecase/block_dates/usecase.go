package block_dates

import (
	"context"
	"errors"
	"fmt"

	"github.com/yydtours/YYD-BookingService/internal/domain"
	toursRepo "github.com/yydtours/YYD-BookingService/internal/infra/storage/tours"
)

// UseCase use case для управления блокировками дат (blackout)
type UseCase struct {
	tourRepo  TourRepository
	ledger    AvailabilityLedger
	txManager TransactionManager
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(tourRepo TourRepository, ledger AvailabilityLedger, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		tourRepo:  tourRepo,
		ledger:    ledger,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute выполняет use case блокировки. Блокировка - sticky: занятость
// слота её не снимает, только явный unblock.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BlockDates: tour=%d, date=%s, unblock=%t",
		req.TourID, req.Date.Format(domain.DateFormat), req.Unblock)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BlockDates: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем тур
	tour, err := uc.tourRepo.GetByID(ctx, req.TourID)
	if err != nil {
		if errors.Is(err, toursRepo.ErrTourNotFound) {
			uc.logger.Warn("BlockDates: tour id=%d not found", req.TourID)
			return nil, ErrTourNotFound
		}
		uc.logger.Error("BlockDates: failed to get tour id=%d: %v", req.TourID, err)
		return nil, fmt.Errorf("%w: failed to get tour: %v", ErrInternal, err)
	}

	var activeBookings int

	// 3. Мутация слотов в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		switch {
		case req.Unblock:
			return uc.ledger.UnblockDate(txCtx, tour, req.Date)
		case req.From != nil:
			n, err := uc.ledger.BlockTimeRange(txCtx, tour, req.Date, *req.From, *req.To)
			activeBookings = n
			return err
		default:
			n, err := uc.ledger.BlockDate(txCtx, tour, req.Date)
			activeBookings = n
			return err
		}
	})
	if err != nil {
		uc.logger.Error("BlockDates: failed to mutate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to mutate slots: %v", ErrInternal, err)
	}

	// 4. Сбрасываем кэш доступности дня после коммита
	uc.ledger.InvalidateDay(ctx, tour.ID, req.Date)

	if !req.Unblock && activeBookings > 0 {
		uc.logger.Warn("BlockDates: tour=%d date=%s has %d active bookings, manual follow-up needed",
			req.TourID, req.Date.Format(domain.DateFormat), activeBookings)
	}

	return &Response{
		TourID:         req.TourID,
		Date:           req.Date,
		Blocked:        !req.Unblock,
		ActiveBookings: activeBookings,
	}, nil
}
