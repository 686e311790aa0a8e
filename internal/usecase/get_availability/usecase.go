package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/yydtours/YYD-BookingService/internal/domain"
	toursRepo "github.com/yydtours/YYD-BookingService/internal/infra/storage/tours"
	"github.com/yydtours/YYD-BookingService/internal/pricing"
)

// UseCase use case получения доступности тура на день
type UseCase struct {
	tourRepo TourRepository
	tierRepo TierRepository
	ledger   AvailabilityLedger
	seasons  SeasonResolver
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	tourRepo TourRepository,
	tierRepo TierRepository,
	ledger AvailabilityLedger,
	seasons SeasonResolver,
	logger Logger,
) *UseCase {
	return &UseCase{
		tourRepo: tourRepo,
		tierRepo: tierRepo,
		ledger:   ledger,
		seasons:  seasons,
		logger:   logger,
	}
}

// Execute возвращает слоты дня и ценовой диапазон сезона для витрины.
// Чтение идёт через кэш (cache-aside), мутации его инвалидируют.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: tour=%d, date=%s", req.TourID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем тур
	tour, err := uc.tourRepo.GetByID(ctx, req.TourID)
	if err != nil {
		if errors.Is(err, toursRepo.ErrTourNotFound) {
			uc.logger.Warn("GetAvailability: tour id=%d not found", req.TourID)
			return nil, ErrTourNotFound
		}
		uc.logger.Error("GetAvailability: failed to get tour id=%d: %v", req.TourID, err)
		return nil, fmt.Errorf("%w: failed to get tour: %v", ErrInternal, err)
	}

	// 3. Слоты дня
	slots, err := uc.ledger.DayAvailability(ctx, tour, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to list slots: %v", err)
		return nil, fmt.Errorf("%w: failed to list slots: %v", ErrInternal, err)
	}

	// 4. Ценовой диапазон сезона для витрины
	season := uc.seasons.SeasonFor(req.Date)

	resp := &Response{
		TourID: req.TourID,
		Date:   req.Date,
		Season: string(season),
		Slots:  make([]Slot, 0, len(slots)),
	}

	tiers, err := uc.tierRepo.ListByTour(ctx, req.TourID)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to list tiers: %v", err)
		return nil, fmt.Errorf("%w: failed to list tiers: %v", ErrInternal, err)
	}

	if min, max, ok := pricing.PriceRange(tiers, season); ok {
		resp.PriceFrom = &min
		resp.PriceTo = &max
	}

	for _, slot := range slots {
		resp.Slots = append(resp.Slots, Slot{
			StartTime:      slot.StartTime,
			EndTime:        slot.EndTime,
			Status:         string(slot.StatusForOccupancy()),
			AvailableSpots: slot.AvailableSpots(),
			TotalSpots:     slot.MaxSlots,
		})
	}

	return resp, nil
}
