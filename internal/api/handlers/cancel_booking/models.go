package cancel_booking

import (
	"time"

	cancelBooking "github.com/yydtours/YYD-BookingService/internal/usecase/cancel_booking"
)

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	Reason  *string `json:"reason,omitempty"`
	ByStaff bool    `json:"byStaff,omitempty"`
}

// CancelBookingResponse HTTP response model
type CancelBookingResponse struct {
	ID            int64  `json:"id"`
	BookingNumber string `json:"bookingNumber"`
	Status        string `json:"status"`
	CancelledAt   string `json:"cancelledAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *cancelBooking.Response) *CancelBookingResponse {
	return &CancelBookingResponse{
		ID:            resp.ID,
		BookingNumber: resp.BookingNumber,
		Status:        resp.Status,
		CancelledAt:   resp.CancelledAt.Format(time.RFC3339),
	}
}
