package get_availability

import (
	"github.com/yydtours/YYD-BookingService/internal/domain"
	getAvailability "github.com/yydtours/YYD-BookingService/internal/usecase/get_availability"
)

// SlotResponse один слот дня
type SlotResponse struct {
	StartTime      string `json:"startTime"`
	EndTime        string `json:"endTime"`
	Status         string `json:"status"`
	AvailableSpots int    `json:"availableSpots"`
	TotalSpots     int    `json:"totalSpots"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	TourID    int64          `json:"tourId"`
	Date      string         `json:"date"`
	Season    string         `json:"season"`
	PriceFrom *string        `json:"priceFrom,omitempty"`
	PriceTo   *string        `json:"priceTo,omitempty"`
	Slots     []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	out := &AvailabilityResponse{
		TourID: resp.TourID,
		Date:   resp.Date.Format(domain.DateFormat),
		Season: resp.Season,
		Slots:  make([]SlotResponse, 0, len(resp.Slots)),
	}

	if resp.PriceFrom != nil {
		from := resp.PriceFrom.String()
		to := resp.PriceTo.String()
		out.PriceFrom = &from
		out.PriceTo = &to
	}

	for _, slot := range resp.Slots {
		out.Slots = append(out.Slots, SlotResponse{
			StartTime:      slot.StartTime.String(),
			EndTime:        slot.EndTime.String(),
			Status:         slot.Status,
			AvailableSpots: slot.AvailableSpots,
			TotalSpots:     slot.TotalSpots,
		})
	}

	return out
}
