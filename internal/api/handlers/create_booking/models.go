package create_booking

import (
	"time"

	"github.com/yydtours/YYD-BookingService/internal/domain"
	createBooking "github.com/yydtours/YYD-BookingService/internal/usecase/create_booking"
	"github.com/yydtours/YYD-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model. Цены в запросе отсутствуют:
// стоимость всегда считает сервер.
type CreateBookingRequest struct {
	TourID          int64    `json:"tourId"`
	Date            string   `json:"date"`      // "2026-07-14"
	StartTime       string   `json:"startTime"` // "09:30"
	NumberOfPeople  int      `json:"numberOfPeople"`
	AddonCodes      []string `json:"addonCodes,omitempty"`
	GuideID         *int64   `json:"guideId,omitempty"`
	PickupLocation  *string  `json:"pickupLocation,omitempty"`
	SpecialRequests *string  `json:"specialRequests,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID             int64  `json:"id"`
	BookingNumber  string `json:"bookingNumber"`
	CustomerID     int64  `json:"customerId"`
	TourID         int64  `json:"tourId"`
	Date           string `json:"date"`
	StartTime      string `json:"startTime"`
	NumberOfPeople int    `json:"numberOfPeople"`
	Status         string `json:"status"`

	Season      string   `json:"season"`
	TierLabel   string   `json:"tierLabel"`
	BasePrice   string   `json:"basePrice"`
	AddonsTotal string   `json:"addonsTotal"`
	TotalPrice  string   `json:"totalPrice"`
	AddonCodes  []string `json:"addonCodes,omitempty"`
	Currency    string   `json:"currency"`

	GuideID       *int64 `json:"guideId,omitempty"`
	GuideApproval string `json:"guideApproval"`

	PickupLocation  *string `json:"pickupLocation,omitempty"`
	SpecialRequests *string `json:"specialRequests,omitempty"`

	CreatedAt string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// CustomerID приходит из Auth middleware, не из тела.
func (r *CreateBookingRequest) ToUseCaseRequest(customerID int64) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		CustomerID:      customerID,
		TourID:          r.TourID,
		Date:            date,
		StartTime:       startTime,
		NumberOfPeople:  r.NumberOfPeople,
		AddonCodes:      r.AddonCodes,
		GuideID:         r.GuideID,
		PickupLocation:  r.PickupLocation,
		SpecialRequests: r.SpecialRequests,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:             resp.ID,
		BookingNumber:  resp.BookingNumber,
		CustomerID:     resp.CustomerID,
		TourID:         resp.TourID,
		Date:           resp.Date.Format(domain.DateFormat),
		StartTime:      resp.StartTime.String(),
		NumberOfPeople: resp.NumberOfPeople,
		Status:         resp.Status,

		Season:      resp.Season,
		TierLabel:   resp.TierLabel,
		BasePrice:   resp.BasePrice.String(),
		AddonsTotal: resp.AddonsTotal.String(),
		TotalPrice:  resp.TotalPrice.String(),
		AddonCodes:  resp.AddonCodes,
		Currency:    resp.Currency,

		GuideID:       resp.GuideID,
		GuideApproval: resp.GuideApproval,

		PickupLocation:  resp.PickupLocation,
		SpecialRequests: resp.SpecialRequests,

		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
