package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/yydtours/YYD-BookingService/internal/domain"
	addonsRepo "github.com/yydtours/YYD-BookingService/internal/infra/storage/addons"
	toursRepo "github.com/yydtours/YYD-BookingService/internal/infra/storage/tours"
)

// Service управляет каталогом цен: tier-таблицами сезонов и дополнениями.
// Все мутации tier-таблиц проходят валидацию до записи в хранилище.
type Service struct {
	tiers  TierRepository
	addons AddonRepository
	tours  TourRepository
	txMgr  TransactionManager
	logger Logger
}

func New(tiers TierRepository, addons AddonRepository, tours TourRepository, txMgr TransactionManager, logger Logger) *Service {
	return &Service{
		tiers:  tiers,
		addons: addons,
		tours:  tours,
		txMgr:  txMgr,
		logger: logger,
	}
}

// ReplaceTierTable атомарно заменяет tier-таблицу сезона для тура.
// Новая таблица должна покрывать размеры групп 1..MaxGroupSize без
// перекрытий и разрывов, иначе замена отклоняется целиком.
func (s *Service) ReplaceTierTable(ctx context.Context, tourID int64, season domain.Season, tiers []*domain.SeasonPriceTier) error {
	if !season.IsValid() {
		return fmt.Errorf("%w: ReplaceTierTable - season %q", ErrInvalidSeason, season)
	}

	tour, err := s.tours.GetByID(ctx, tourID)
	if err != nil {
		if errors.Is(err, toursRepo.ErrTourNotFound) {
			return fmt.Errorf("%w: ReplaceTierTable - tour %d", ErrTourNotFound, tourID)
		}
		return fmt.Errorf("%w: ReplaceTierTable - get tour: %v", ErrInternal, err)
	}

	if err := ValidateTierTable(tiers, season, tour.MaxGroupSize); err != nil {
		return fmt.Errorf("ReplaceTierTable - validate: %w", err)
	}

	err = s.txMgr.DoSerializable(ctx, func(ctx context.Context) error {
		return s.tiers.ReplaceForSeason(ctx, tourID, season, tiers)
	})
	if err != nil {
		return fmt.Errorf("%w: ReplaceTierTable - replace: %v", ErrInternal, err)
	}

	s.logger.Info("[ReplaceTierTable] tour=%d season=%s tiers=%d", tourID, season, len(tiers))
	return nil
}

// TierTable возвращает все tier-ы тура, сгруппированные по сезонам.
func (s *Service) TierTable(ctx context.Context, tourID int64) (map[domain.Season][]*domain.SeasonPriceTier, error) {
	if _, err := s.tours.GetByID(ctx, tourID); err != nil {
		if errors.Is(err, toursRepo.ErrTourNotFound) {
			return nil, fmt.Errorf("%w: TierTable - tour %d", ErrTourNotFound, tourID)
		}
		return nil, fmt.Errorf("%w: TierTable - get tour: %v", ErrInternal, err)
	}

	all, err := s.tiers.ListByTour(ctx, tourID)
	if err != nil {
		return nil, fmt.Errorf("%w: TierTable - list: %v", ErrInternal, err)
	}

	table := make(map[domain.Season][]*domain.SeasonPriceTier)
	for _, t := range all {
		table[t.Season] = append(table[t.Season], t)
	}
	return table, nil
}

// CreateAddon регистрирует новое дополнение в каталоге.
func (s *Service) CreateAddon(ctx context.Context, addon *domain.Addon) (*domain.Addon, error) {
	if err := validateAddon(addon); err != nil {
		return nil, fmt.Errorf("CreateAddon - validate: %w", err)
	}

	created, err := s.addons.Create(ctx, addon)
	if err != nil {
		if errors.Is(err, addonsRepo.ErrCodeExists) {
			return nil, fmt.Errorf("%w: CreateAddon - code %q", ErrAddonExists, addon.Code)
		}
		return nil, fmt.Errorf("%w: CreateAddon - create: %v", ErrInternal, err)
	}

	s.logger.Info("[CreateAddon] code=%s type=%s price=%s", created.Code, created.PriceType, created.Price)
	return created, nil
}

// DeactivateAddon выводит дополнение из продажи. Исторические брони
// сохраняют снапшот цены, поэтому запись не удаляется.
func (s *Service) DeactivateAddon(ctx context.Context, code string) error {
	if code == "" {
		return fmt.Errorf("%w: DeactivateAddon - empty code", ErrInvalidAddon)
	}

	err := s.addons.SetActive(ctx, code, false)
	if err != nil {
		if errors.Is(err, addonsRepo.ErrAddonNotFound) {
			return fmt.Errorf("%w: DeactivateAddon - code %q", ErrAddonNotFound, code)
		}
		return fmt.Errorf("%w: DeactivateAddon - set active: %v", ErrInternal, err)
	}

	s.logger.Info("[DeactivateAddon] code=%s", code)
	return nil
}

// ListAddons возвращает активные дополнения каталога.
func (s *Service) ListAddons(ctx context.Context) ([]*domain.Addon, error) {
	addons, err := s.addons.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAddons - list: %v", ErrInternal, err)
	}

	sort.Slice(addons, func(i, j int) bool {
		if addons[i].SortOrder != addons[j].SortOrder {
			return addons[i].SortOrder < addons[j].SortOrder
		}
		return addons[i].Code < addons[j].Code
	})
	return addons, nil
}
