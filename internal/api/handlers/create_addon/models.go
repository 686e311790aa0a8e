package create_addon

import (
	"github.com/yydtours/YYD-BookingService/internal/domain"
	"github.com/yydtours/YYD-BookingService/pkg/money"
)

// CreateAddonRequest HTTP request model. Цена в евро.
type CreateAddonRequest struct {
	Code      string  `json:"code"`
	Price     float64 `json:"price"`
	PriceType string  `json:"priceType"`
	Category  string  `json:"category,omitempty"`
	SortOrder int     `json:"sortOrder,omitempty"`
}

// CreateAddonResponse HTTP response model
type CreateAddonResponse struct {
	ID        int64  `json:"id"`
	Code      string `json:"code"`
	Price     string `json:"price"`
	PriceType string `json:"priceType"`
	Category  string `json:"category,omitempty"`
	SortOrder int    `json:"sortOrder"`
	Active    bool   `json:"active"`
}

// ToDomain конвертирует HTTP запрос в доменную модель
func (r *CreateAddonRequest) ToDomain() *domain.Addon {
	return &domain.Addon{
		Code:      r.Code,
		Price:     money.FromEur(r.Price),
		PriceType: domain.AddonPriceType(r.PriceType),
		Category:  r.Category,
		SortOrder: r.SortOrder,
		Active:    true,
	}
}
