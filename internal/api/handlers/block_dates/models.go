package block_dates

import (
	"time"

	"github.com/yydtours/YYD-BookingService/internal/domain"
	blockDates "github.com/yydtours/YYD-BookingService/internal/usecase/block_dates"
	"github.com/yydtours/YYD-BookingService/pkg/types"
)

// BlackoutRequest HTTP request model. Без from/to блокируется весь день.
type BlackoutRequest struct {
	Date    string  `json:"date"` // "2026-07-14"
	From    *string `json:"from,omitempty"`
	To      *string `json:"to,omitempty"`
	Unblock bool    `json:"unblock,omitempty"`
}

// BlackoutResponse HTTP response model
type BlackoutResponse struct {
	TourID         int64  `json:"tourId"`
	Date           string `json:"date"`
	Blocked        bool   `json:"blocked"`
	ActiveBookings int    `json:"activeBookings"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BlackoutRequest) ToUseCaseRequest(tourID int64) (*blockDates.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	req := &blockDates.Request{
		TourID:  tourID,
		Date:    date,
		Unblock: r.Unblock,
	}

	if r.From != nil {
		from, err := types.NewTimeStringFromString(*r.From)
		if err != nil {
			return nil, err
		}
		req.From = &from
	}
	if r.To != nil {
		to, err := types.NewTimeStringFromString(*r.To)
		if err != nil {
			return nil, err
		}
		req.To = &to
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *blockDates.Response) *BlackoutResponse {
	return &BlackoutResponse{
		TourID:         resp.TourID,
		Date:           resp.Date.Format(domain.DateFormat),
		Blocked:        resp.Blocked,
		ActiveBookings: resp.ActiveBookings,
	}
}
