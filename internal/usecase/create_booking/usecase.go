package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/yydtours/YYD-BookingService/internal/domain"
	toursRepo "github.com/yydtours/YYD-BookingService/internal/infra/storage/tours"
	"github.com/yydtours/YYD-BookingService/internal/pricing"
	availability "github.com/yydtours/YYD-BookingService/internal/service/availability"
)

// UseCase use case для создания бронирования
type UseCase struct {
	tourRepo     TourRepository
	tierRepo     TierRepository
	addonRepo    AddonRepository
	bookingRepo  BookingRepository
	taskRepo     TaskRepository
	ledger       AvailabilityLedger
	resolver     PriceResolver
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	tourRepo TourRepository,
	tierRepo TierRepository,
	addonRepo AddonRepository,
	bookingRepo BookingRepository,
	taskRepo TaskRepository,
	ledger AvailabilityLedger,
	resolver PriceResolver,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		tourRepo:     tourRepo,
		tierRepo:     tierRepo,
		addonRepo:    addonRepo,
		bookingRepo:  bookingRepo,
		taskRepo:     taskRepo,
		ledger:       ledger,
		resolver:     resolver,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Цена пересчитывается сервером заново (клиентская котировка не
// принимается), резервация мест и запись брони выполняются в одной
// сериализуемой транзакции: при гонке за последние места выигрывает
// первый закоммитившийся.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: customer=%d, tour=%d, date=%s, time=%s, people=%d",
		req.CustomerID, req.TourID, req.Date.Format(domain.DateFormat), req.StartTime, req.NumberOfPeople)

	// 1. Валидация входных данных
	now := uc.timeProvider.Now()
	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем тур
	tour, err := uc.tourRepo.GetByID(ctx, req.TourID)
	if err != nil {
		if errors.Is(err, toursRepo.ErrTourNotFound) {
			uc.logger.Warn("CreateBooking: tour id=%d not found", req.TourID)
			return nil, ErrTourNotFound
		}
		uc.logger.Error("CreateBooking: failed to get tour id=%d: %v", req.TourID, err)
		return nil, fmt.Errorf("%w: failed to get tour: %v", ErrInternal, err)
	}

	if !tour.IsBookable() {
		uc.logger.Warn("CreateBooking: tour id=%d is not bookable", req.TourID)
		return nil, ErrTourInactive
	}

	// Лимит размера группы у каждого тура свой; глобальная валидация
	// его не знает, поэтому проверяем после загрузки тура
	if req.NumberOfPeople > tour.MaxGroupSize {
		uc.logger.Warn("CreateBooking: party of %d exceeds max group size %d for tour id=%d",
			req.NumberOfPeople, tour.MaxGroupSize, req.TourID)
		return nil, fmt.Errorf("%w: numberOfPeople %d exceeds tour max group size %d",
			ErrInvalidInput, req.NumberOfPeople, tour.MaxGroupSize)
	}

	// 3. Генерируем публичный номер бронирования. Токен резервации
	// детерминированно выводится из него, поэтому release переживает
	// рестарты процесса.
	bookingNumber := newBookingNumber()

	var result *domain.Booking

	// 4. Котировка, резервация мест и запись брони - в одной
	// сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Загружаем tier-таблицу и определяем tier
		tiers, err := uc.tierRepo.ListByTour(txCtx, req.TourID)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list tiers: %v", err)
			return fmt.Errorf("%w: failed to list tiers: %v", ErrInternal, err)
		}

		tier, season, err := uc.resolver.ResolveTier(tiers, req.Date, req.NumberOfPeople)
		if err != nil {
			if errors.Is(err, pricing.ErrTierNotFound) {
				uc.logger.Warn("CreateBooking: no tier for tour=%d season=%s people=%d",
					req.TourID, season, req.NumberOfPeople)
				return fmt.Errorf("%w: season %s, %d people", ErrNoMatchingTier, season, req.NumberOfPeople)
			}
			return fmt.Errorf("%w: failed to resolve tier: %v", ErrInternal, err)
		}

		// 4.2. Считаем авторитетную стоимость
		var catalog []*domain.Addon
		if len(req.AddonCodes) > 0 {
			catalog, err = uc.addonRepo.GetByCodes(txCtx, req.AddonCodes)
			if err != nil {
				uc.logger.Error("CreateBooking: failed to get addons: %v", err)
				return fmt.Errorf("%w: failed to get addons: %v", ErrInternal, err)
			}
		}

		quote, _, err := uc.resolver.ComputeTotal(tier, req.NumberOfPeople, req.AddonCodes, catalog)
		if err != nil {
			return mapComputeError(err)
		}

		// 4.3. Занимаем места в слоте (условный UPDATE, без овербукинга)
		reservation, err := uc.ledger.Reserve(txCtx, tour, req.Date, req.StartTime, req.NumberOfPeople, bookingNumber)
		if err != nil {
			switch {
			case errors.Is(err, availability.ErrSlotBlocked):
				uc.logger.Warn("CreateBooking: slot tour=%d date=%s time=%s is blocked",
					req.TourID, req.Date.Format(domain.DateFormat), req.StartTime)
				return ErrDateBlocked
			case errors.Is(err, availability.ErrNoCapacity):
				uc.logger.Warn("CreateBooking: no capacity for tour=%d date=%s time=%s people=%d",
					req.TourID, req.Date.Format(domain.DateFormat), req.StartTime, req.NumberOfPeople)
				return ErrNoCapacity
			default:
				uc.logger.Error("CreateBooking: failed to reserve: %v", err)
				return fmt.Errorf("%w: failed to reserve: %v", ErrInternal, err)
			}
		}

		// 4.4. Записываем бронь со снапшотом котировки
		booking := &domain.Booking{
			BookingNumber:  bookingNumber,
			CustomerID:     req.CustomerID,
			TourID:         req.TourID,
			Date:           req.Date,
			StartTime:      req.StartTime,
			NumberOfPeople: req.NumberOfPeople,
			Status:         domain.StatusConfirmed,

			Season:      quote.Season,
			TierLabel:   quote.TierLabel,
			BasePrice:   quote.BasePrice,
			AddonsTotal: quote.AddonsTotal,
			TotalPrice:  quote.Total,
			AddonCodes:  req.AddonCodes,

			GuideID:       req.GuideID,
			GuideApproval: domain.ApprovalPending,

			PickupLocation:  req.PickupLocation,
			SpecialRequests: req.SpecialRequests,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		// 4.5. Если назначен гид - ставим задачу автоподтверждения (+1ч).
		// Задачу исполняет внешний poller, здесь только запись.
		if req.GuideID != nil {
			task := &domain.ScheduledTask{
				TaskType:     domain.TaskTypeTourAutoApproval,
				EntityID:     created.ID,
				ScheduledFor: now.Add(domain.AutoApprovalDelay),
			}
			if _, err := uc.taskRepo.Create(txCtx, task); err != nil {
				uc.logger.Error("CreateBooking: failed to schedule auto-approval: %v", err)
				return fmt.Errorf("%w: failed to schedule auto-approval: %v", ErrInternal, err)
			}
		}

		uc.logger.Info("CreateBooking: reserved %d spots, token=%s", reservation.Count, reservation.Token)
		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	// 5. Сбрасываем кэш доступности дня после коммита: DEL внутри
	// открытой транзакции конкурентный читатель успеет перезаписать
	// ещё не закоммиченными данными
	uc.ledger.InvalidateDay(ctx, tour.ID, req.Date)

	uc.logger.Info("CreateBooking: created booking id=%d number=%s total=%s",
		result.ID, result.BookingNumber, result.TotalPrice)

	return &Response{
		ID:             result.ID,
		BookingNumber:  result.BookingNumber,
		CustomerID:     result.CustomerID,
		TourID:         result.TourID,
		Date:           result.Date,
		StartTime:      result.StartTime,
		NumberOfPeople: result.NumberOfPeople,
		Status:         string(result.Status),

		Season:      string(result.Season),
		TierLabel:   result.TierLabel,
		BasePrice:   result.BasePrice,
		AddonsTotal: result.AddonsTotal,
		TotalPrice:  result.TotalPrice,
		AddonCodes:  result.AddonCodes,
		Currency:    "EUR",

		GuideID:       result.GuideID,
		GuideApproval: string(result.GuideApproval),

		PickupLocation:  result.PickupLocation,
		SpecialRequests: result.SpecialRequests,

		CreatedAt: result.CreatedAt,
	}, nil
}

// newBookingNumber генерирует публичный номер брони вида "YYD-3F2A0B1C"
func newBookingNumber() string {
	id := uuid.New()
	hex := strings.ToUpper(strings.ReplaceAll(id.String(), "-", ""))
	return "YYD-" + hex[:8]
}

// mapComputeError переводит ошибки движка расчёта в ошибки usecase
func mapComputeError(err error) error {
	switch {
	case errors.Is(err, pricing.ErrUnknownAddon):
		return fmt.Errorf("%w: %v", ErrUnknownAddon, err)
	case errors.Is(err, pricing.ErrInactiveAddon):
		return fmt.Errorf("%w: %v", ErrInactiveAddon, err)
	case errors.Is(err, pricing.ErrDuplicateAddon):
		return fmt.Errorf("%w: %v", ErrDuplicateAddon, err)
	case errors.Is(err, pricing.ErrInvalidPartySize):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
