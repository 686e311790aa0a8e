package guide_approval

import (
	guideApproval "github.com/yydtours/YYD-BookingService/internal/usecase/guide_approval"
)

// GuideApprovalRequest HTTP request model
type GuideApprovalRequest struct {
	Approve      bool    `json:"approve"`
	Observations *string `json:"observations,omitempty"`
}

// GuideApprovalResponse HTTP response model
type GuideApprovalResponse struct {
	BookingID     int64   `json:"bookingId"`
	BookingNumber string  `json:"bookingNumber"`
	GuideApproval string  `json:"guideApproval"`
	HoursUntil    float64 `json:"hoursUntilTour"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *guideApproval.Response) *GuideApprovalResponse {
	return &GuideApprovalResponse{
		BookingID:     resp.BookingID,
		BookingNumber: resp.BookingNumber,
		GuideApproval: resp.GuideApproval,
		HoursUntil:    resp.HoursUntil,
	}
}
