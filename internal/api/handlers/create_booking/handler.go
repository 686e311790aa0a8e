package create_booking

import (
	"errors"
	"net/http"

	"github.com/yydtours/YYD-BookingService/internal/api/handlers"
	"github.com/yydtours/YYD-BookingService/internal/api/middleware"
	createBooking "github.com/yydtours/YYD-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDateOrTime  = "invalid date or time format, expected YYYY-MM-DD and HH:MM"
	msgTourNotFound       = "tour not found"
	msgTourInactive       = "tour is not available for booking"
	msgNoMatchingTier     = "no price is configured for this season and group size"
	msgUnknownAddon       = "unknown addon code"
	msgInactiveAddon      = "addon is no longer offered"
	msgDuplicateAddon     = "duplicate addon code"
	msgDateBlocked        = "this date is not available for booking"
	msgNoCapacity         = "not enough spots available for this time"
	msgInvalidInput       = "invalid request data"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "missing authentication")
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(customerID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrNoCapacity):
			h.logger.Warn("POST /bookings - No capacity: customer_id=%d, tour_id=%d", customerID, req.TourID)
			handlers.RespondError(w, http.StatusConflict, msgNoCapacity)

		case errors.Is(err, createBooking.ErrDateBlocked):
			h.logger.Warn("POST /bookings - Date blocked: customer_id=%d, tour_id=%d", customerID, req.TourID)
			handlers.RespondError(w, http.StatusConflict, msgDateBlocked)

		case errors.Is(err, createBooking.ErrTourNotFound):
			h.logger.Warn("POST /bookings - Tour not found: tour_id=%d", req.TourID)
			handlers.RespondNotFound(w, msgTourNotFound)

		case errors.Is(err, createBooking.ErrTourInactive):
			h.logger.Warn("POST /bookings - Tour inactive: tour_id=%d", req.TourID)
			handlers.RespondError(w, http.StatusConflict, msgTourInactive)

		case errors.Is(err, createBooking.ErrNoMatchingTier):
			h.logger.Warn("POST /bookings - No matching tier: tour_id=%d, people=%d", req.TourID, req.NumberOfPeople)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgNoMatchingTier)

		case errors.Is(err, createBooking.ErrUnknownAddon):
			h.logger.Warn("POST /bookings - Unknown addon: tour_id=%d", req.TourID)
			handlers.RespondBadRequest(w, msgUnknownAddon)

		case errors.Is(err, createBooking.ErrInactiveAddon):
			h.logger.Warn("POST /bookings - Inactive addon: tour_id=%d", req.TourID)
			handlers.RespondError(w, http.StatusConflict, msgInactiveAddon)

		case errors.Is(err, createBooking.ErrDuplicateAddon):
			h.logger.Warn("POST /bookings - Duplicate addon: tour_id=%d", req.TourID)
			handlers.RespondBadRequest(w, msgDuplicateAddon)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: customer_id=%d, tour_id=%d, error=%v",
				customerID, req.TourID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, number=%s, customer_id=%d",
		result.ID, result.BookingNumber, customerID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
