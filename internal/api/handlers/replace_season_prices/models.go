package replace_season_prices

import (
	"github.com/yydtours/YYD-BookingService/internal/domain"
	"github.com/yydtours/YYD-BookingService/pkg/money"
)

// TierRequest один tier в таблице сезона. Цена в евро, maxPeople = 0
// означает "без верхней границы".
type TierRequest struct {
	Label          string  `json:"label"`
	MinPeople      int     `json:"minPeople"`
	MaxPeople      int     `json:"maxPeople"`
	Price          float64 `json:"price"`
	PricePerPerson bool    `json:"pricePerPerson"`
}

// ReplaceSeasonPricesRequest HTTP request model
type ReplaceSeasonPricesRequest struct {
	Season string        `json:"season"`
	Tiers  []TierRequest `json:"tiers"`
}

// ReplaceSeasonPricesResponse HTTP response model
type ReplaceSeasonPricesResponse struct {
	TourID int64  `json:"tourId"`
	Season string `json:"season"`
	Tiers  int    `json:"tiers"`
}

// ToDomain конвертирует HTTP запрос в доменные tier-ы
func (r *ReplaceSeasonPricesRequest) ToDomain(tourID int64) []*domain.SeasonPriceTier {
	season := domain.Season(r.Season)
	tiers := make([]*domain.SeasonPriceTier, 0, len(r.Tiers))
	for _, t := range r.Tiers {
		tiers = append(tiers, &domain.SeasonPriceTier{
			TourID:         tourID,
			Season:         season,
			Label:          t.Label,
			MinPeople:      t.MinPeople,
			MaxPeople:      t.MaxPeople,
			Price:          money.FromEur(t.Price),
			PricePerPerson: t.PricePerPerson,
		})
	}
	return tiers
}
