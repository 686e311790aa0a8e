package quote_price

import (
	"time"

	"github.com/yydtours/YYD-BookingService/internal/domain"
	quotePrice "github.com/yydtours/YYD-BookingService/internal/usecase/quote_price"
)

// QuoteRequest HTTP request model
type QuoteRequest struct {
	TourID         int64    `json:"tourId"`
	Date           string   `json:"date"` // "2026-07-14"
	NumberOfPeople int      `json:"numberOfPeople"`
	AddonCodes     []string `json:"addonCodes,omitempty"`
}

// AddonLineResponse одна строка дополнения в котировке
type AddonLineResponse struct {
	Code  string `json:"code"`
	Total string `json:"total"`
}

// QuoteResponse HTTP response model
type QuoteResponse struct {
	TourID         int64               `json:"tourId"`
	Date           string              `json:"date"`
	NumberOfPeople int                 `json:"numberOfPeople"`
	Season         string              `json:"season"`
	TierLabel      string              `json:"tierLabel"`
	BasePrice      string              `json:"basePrice"`
	Addons         []AddonLineResponse `json:"addons"`
	AddonsTotal    string              `json:"addonsTotal"`
	Total          string              `json:"total"`
	Currency       string              `json:"currency"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *QuoteRequest) ToUseCaseRequest() (*quotePrice.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &quotePrice.Request{
		TourID:         r.TourID,
		Date:           date,
		NumberOfPeople: r.NumberOfPeople,
		AddonCodes:     r.AddonCodes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *quotePrice.Response) *QuoteResponse {
	addons := make([]AddonLineResponse, 0, len(resp.Addons))
	for _, line := range resp.Addons {
		addons = append(addons, AddonLineResponse{Code: line.Code, Total: line.Total.String()})
	}

	return &QuoteResponse{
		TourID:         resp.TourID,
		Date:           resp.Date.Format(domain.DateFormat),
		NumberOfPeople: resp.NumberOfPeople,
		Season:         resp.Season,
		TierLabel:      resp.TierLabel,
		BasePrice:      resp.BasePrice.String(),
		Addons:         addons,
		AddonsTotal:    resp.AddonsTotal.String(),
		Total:          resp.Total.String(),
		Currency:       resp.Currency,
	}
}
