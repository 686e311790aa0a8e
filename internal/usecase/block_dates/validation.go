package block_dates

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.TourID <= 0 {
		return fmt.Errorf("%w: tourID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if (req.From == nil) != (req.To == nil) {
		return fmt.Errorf("%w: from and to must be set together", ErrInvalidInput)
	}

	if req.From != nil {
		if err := req.From.Validate(); err != nil {
			return fmt.Errorf("%w: invalid from: %v", ErrInvalidInput, err)
		}
		if err := req.To.Validate(); err != nil {
			return fmt.Errorf("%w: invalid to: %v", ErrInvalidInput, err)
		}
		if !req.From.IsBefore(*req.To) {
			return fmt.Errorf("%w: from must be before to", ErrInvalidInput)
		}
		if req.Unblock {
			return fmt.Errorf("%w: unblock applies to the whole day", ErrInvalidInput)
		}
	}

	return nil
}
