package guide_approval

import (
	"fmt"

	"github.com/yydtours/YYD-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if req.GuideID <= 0 {
		return fmt.Errorf("%w: guideID must be positive", ErrInvalidInput)
	}

	if req.Observations != nil && len(*req.Observations) > domain.MaxGuideObservationsLen {
		return fmt.Errorf("%w: observations too long", ErrInvalidInput)
	}

	return nil
}
