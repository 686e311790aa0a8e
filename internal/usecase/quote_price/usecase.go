package quote_price

import (
	"context"
	"errors"
	"fmt"

	"github.com/yydtours/YYD-BookingService/internal/domain"
	toursRepo "github.com/yydtours/YYD-BookingService/internal/infra/storage/tours"
	"github.com/yydtours/YYD-BookingService/internal/pricing"
	"github.com/yydtours/YYD-BookingService/pkg/metrics"
)

// UseCase use case для расчёта стоимости тура
type UseCase struct {
	tourRepo     TourRepository
	tierRepo     TierRepository
	addonRepo    AddonRepository
	resolver     PriceResolver
	quotes       QuoteMetrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	tourRepo TourRepository,
	tierRepo TierRepository,
	addonRepo AddonRepository,
	resolver PriceResolver,
	quotes QuoteMetrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		tourRepo:     tourRepo,
		tierRepo:     tierRepo,
		addonRepo:    addonRepo,
		resolver:     resolver,
		quotes:       quotes,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case расчёта стоимости. Цена считается только
// на сервере: клиентские суммы никогда не принимаются на веру.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("QuotePrice: tour=%d, date=%s, people=%d, addons=%d",
		req.TourID, req.Date.Format(domain.DateFormat), req.NumberOfPeople, len(req.AddonCodes))

	// 1. Валидация входных данных
	now := uc.timeProvider.Now()
	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("QuotePrice: validation failed: %v", err)
		uc.quotes.ObserveQuote(metrics.ResultError)
		return nil, err
	}

	// 2. Получаем тур
	tour, err := uc.tourRepo.GetByID(ctx, req.TourID)
	if err != nil {
		if errors.Is(err, toursRepo.ErrTourNotFound) {
			uc.logger.Warn("QuotePrice: tour id=%d not found", req.TourID)
			uc.quotes.ObserveQuote(metrics.ResultError)
			return nil, ErrTourNotFound
		}
		uc.logger.Error("QuotePrice: failed to get tour id=%d: %v", req.TourID, err)
		uc.quotes.ObserveQuote(metrics.ResultError)
		return nil, fmt.Errorf("%w: failed to get tour: %v", ErrInternal, err)
	}

	if !tour.IsBookable() {
		uc.logger.Warn("QuotePrice: tour id=%d is not bookable", req.TourID)
		uc.quotes.ObserveQuote(metrics.ResultError)
		return nil, ErrTourInactive
	}

	// Лимит размера группы у каждого тура свой; глобальная валидация
	// его не знает, поэтому проверяем после загрузки тура
	if req.NumberOfPeople > tour.MaxGroupSize {
		uc.logger.Warn("QuotePrice: party of %d exceeds max group size %d for tour id=%d",
			req.NumberOfPeople, tour.MaxGroupSize, req.TourID)
		uc.quotes.ObserveQuote(metrics.ResultError)
		return nil, fmt.Errorf("%w: numberOfPeople %d exceeds tour max group size %d",
			ErrInvalidInput, req.NumberOfPeople, tour.MaxGroupSize)
	}

	// 3. Загружаем tier-таблицу тура
	tiers, err := uc.tierRepo.ListByTour(ctx, req.TourID)
	if err != nil {
		uc.logger.Error("QuotePrice: failed to list tiers for tour id=%d: %v", req.TourID, err)
		uc.quotes.ObserveQuote(metrics.ResultError)
		return nil, fmt.Errorf("%w: failed to list tiers: %v", ErrInternal, err)
	}

	// 4. Определяем сезон и tier
	tier, season, err := uc.resolver.ResolveTier(tiers, req.Date, req.NumberOfPeople)
	if err != nil {
		if errors.Is(err, pricing.ErrTierNotFound) {
			uc.logger.Warn("QuotePrice: no tier for tour=%d season=%s people=%d",
				req.TourID, season, req.NumberOfPeople)
			uc.quotes.ObserveQuote(metrics.ResultNoTier)
			return nil, fmt.Errorf("%w: season %s, %d people", ErrNoMatchingTier, season, req.NumberOfPeople)
		}
		uc.logger.Error("QuotePrice: failed to resolve tier: %v", err)
		uc.quotes.ObserveQuote(metrics.ResultError)
		return nil, fmt.Errorf("%w: failed to resolve tier: %v", ErrInternal, err)
	}

	// 5. Загружаем выбранные дополнения (включая деактивированные,
	// чтобы отличать "неизвестный код" от "снят с продажи")
	var catalog []*domain.Addon
	if len(req.AddonCodes) > 0 {
		catalog, err = uc.addonRepo.GetByCodes(ctx, req.AddonCodes)
		if err != nil {
			uc.logger.Error("QuotePrice: failed to get addons: %v", err)
			uc.quotes.ObserveQuote(metrics.ResultError)
			return nil, fmt.Errorf("%w: failed to get addons: %v", ErrInternal, err)
		}
	}

	// 6. Считаем итоговую стоимость
	quote, lines, err := uc.resolver.ComputeTotal(tier, req.NumberOfPeople, req.AddonCodes, catalog)
	if err != nil {
		uc.quotes.ObserveQuote(metrics.ResultError)
		return nil, mapComputeError(err)
	}

	uc.quotes.ObserveQuote(metrics.ResultOK)
	uc.logger.Info("QuotePrice: tour=%d season=%s tier=%s total=%s",
		req.TourID, quote.Season, quote.TierLabel, quote.Total)

	return buildResponse(req, quote, lines), nil
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

func buildResponse(req *Request, quote *domain.PriceQuote, lines []domain.QuotedAddon) *Response {
	addons := make([]AddonLine, 0, len(lines))
	for _, line := range lines {
		addons = append(addons, AddonLine{Code: line.Code, Total: line.Total})
	}

	return &Response{
		TourID:         req.TourID,
		Date:           req.Date,
		NumberOfPeople: req.NumberOfPeople,
		Season:         string(quote.Season),
		TierLabel:      quote.TierLabel,
		BasePrice:      quote.BasePrice,
		Addons:         addons,
		AddonsTotal:    quote.AddonsTotal,
		Total:          quote.Total,
		Currency:       "EUR",
	}
}
