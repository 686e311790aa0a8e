package pricing

import (
	"fmt"
	"sort"
	"time"

	"github.com/yydtours/YYD-BookingService/internal/domain"
	"github.com/yydtours/YYD-BookingService/pkg/money"
)

// Logger интерфейс для логирования аномалий данных
type Logger interface {
	Warn(format string, v ...interface{})
}

// AnomalyCounter счётчик аномалий ценовых tier-ов (prometheus)
type AnomalyCounter interface {
	Inc()
}

// Resolver выбирает ценовой tier и считает итоговую стоимость.
// Не выполняет I/O: таблица tier-ов и каталог дополнений передаются
// загруженными. Результат детерминирован для одинаковых входов - это
// якорь серверного пересчёта, который не даёт подменить цену на клиенте.
type Resolver struct {
	calendar  *Calendar
	logger    Logger
	anomalies AnomalyCounter
}

// NewResolver создает resolver. anomalies может быть nil.
func NewResolver(calendar *Calendar, logger Logger, anomalies AnomalyCounter) *Resolver {
	return &Resolver{
		calendar:  calendar,
		logger:    logger,
		anomalies: anomalies,
	}
}

// SeasonFor возвращает сезон для даты по календарю resolver-а
func (r *Resolver) SeasonFor(date time.Time) domain.Season {
	return r.calendar.SeasonFor(date)
}

// ResolveTier выбирает ровно один tier для даты и размера группы.
//
// Если размеру группы соответствует несколько tier-ов одного сезона
// (нарушение целостности данных), выбирается tier с наименьшим MinPeople,
// а аномалия логируется - никогда не усредняем и не берём случайный.
// Если не подходит ни один tier, возвращается ErrTierNotFound: вызывающий
// код не имеет права подставить цену по умолчанию.
func (r *Resolver) ResolveTier(tiers []*domain.SeasonPriceTier, date time.Time, numberOfPeople int) (*domain.SeasonPriceTier, domain.Season, error) {
	if numberOfPeople < domain.MinPartySize {
		return nil, "", fmt.Errorf("%w: got %d", ErrInvalidPartySize, numberOfPeople)
	}

	season := r.calendar.SeasonFor(date)

	matched := make([]*domain.SeasonPriceTier, 0, 1)
	for _, tier := range tiers {
		if tier.Season == season && tier.Matches(numberOfPeople) {
			matched = append(matched, tier)
		}
	}

	switch len(matched) {
	case 0:
		return nil, season, fmt.Errorf("%w: season=%s, people=%d", ErrTierNotFound, season, numberOfPeople)
	case 1:
		return matched[0], season, nil
	default:
		sort.Slice(matched, func(i, j int) bool {
			return matched[i].MinPeople < matched[j].MinPeople
		})
		r.logger.Warn("pricing: %d overlapping tiers for season=%s, people=%d, picking tier %q (minPeople=%d)",
			len(matched), season, numberOfPeople, matched[0].Label, matched[0].MinPeople)
		if r.anomalies != nil {
			r.anomalies.Inc()
		}
		return matched[0], season, nil
	}
}

// ComputeTotal считает итоговую стоимость: база по tier-у плюс выбранные
// дополнения. Цены дополнений читаются из каталога (авторитетные записи),
// неизвестные и деактивированные коды отклоняются. Вся арифметика в
// целых центах.
func (r *Resolver) ComputeTotal(
	tier *domain.SeasonPriceTier,
	numberOfPeople int,
	selectedCodes []string,
	catalog []*domain.Addon,
) (*domain.PriceQuote, []domain.QuotedAddon, error) {
	if numberOfPeople < domain.MinPartySize {
		return nil, nil, fmt.Errorf("%w: got %d", ErrInvalidPartySize, numberOfPeople)
	}

	base := tier.Price
	if tier.PricePerPerson {
		base = tier.Price.MulInt(numberOfPeople)
	}

	byCode := make(map[string]*domain.Addon, len(catalog))
	for _, addon := range catalog {
		byCode[addon.Code] = addon
	}

	seen := make(map[string]bool, len(selectedCodes))
	lines := make([]domain.QuotedAddon, 0, len(selectedCodes))
	var addonsTotal money.Cents

	for _, code := range selectedCodes {
		if seen[code] {
			return nil, nil, fmt.Errorf("%w: %q", ErrDuplicateAddon, code)
		}
		seen[code] = true

		addon, ok := byCode[code]
		if !ok {
			return nil, nil, fmt.Errorf("%w: %q", ErrUnknownAddon, code)
		}
		if !addon.Active {
			return nil, nil, fmt.Errorf("%w: %q", ErrInactiveAddon, code)
		}

		lineTotal := addon.Total(numberOfPeople)
		addonsTotal += lineTotal
		lines = append(lines, domain.QuotedAddon{Code: code, Total: lineTotal})
	}

	quote := &domain.PriceQuote{
		Season:      tier.Season,
		TierLabel:   tier.Label,
		BasePrice:   base,
		AddonsTotal: addonsTotal,
		Total:       base + addonsTotal,
	}

	return quote, lines, nil
}

// PriceRange возвращает минимальную и максимальную цену tier-ов сезона.
// Используется витриной для диапазона "от ... до ...".
func PriceRange(tiers []*domain.SeasonPriceTier, season domain.Season) (min, max money.Cents, ok bool) {
	for _, tier := range tiers {
		if tier.Season != season {
			continue
		}
		if !ok {
			min, max, ok = tier.Price, tier.Price, true
			continue
		}
		if tier.Price < min {
			min = tier.Price
		}
		if tier.Price > max {
			max = tier.Price
		}
	}
	return min, max, ok
}
