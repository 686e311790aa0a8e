package block_dates

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/yydtours/YYD-BookingService/internal/api/handlers"
	blockDates "github.com/yydtours/YYD-BookingService/internal/usecase/block_dates"
)

const (
	msgInvalidTourID      = "invalid tour id"
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDateOrTime  = "invalid date or time format, expected YYYY-MM-DD and HH:MM"
	msgTourNotFound       = "tour not found"
	msgInvalidInput       = "invalid request data"
)

type Handler struct {
	useCase BlockDatesUseCase
	logger  Logger
}

func NewHandler(useCase BlockDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/tours/{tourId}/blackouts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tourID, err := strconv.ParseInt(mux.Vars(r)["tourId"], 10, 64)
	if err != nil || tourID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidTourID)
		return
	}

	var req BlackoutRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /tours/%d/blackouts - Invalid request body: %v", tourID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(tourID)
	if err != nil {
		h.logger.Warn("POST /tours/%d/blackouts - Failed to parse request: %v", tourID, err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, blockDates.ErrTourNotFound):
			h.logger.Warn("POST /tours/%d/blackouts - Tour not found", tourID)
			handlers.RespondNotFound(w, msgTourNotFound)

		case errors.Is(err, blockDates.ErrInvalidInput):
			h.logger.Warn("POST /tours/%d/blackouts - Invalid input: %v", tourID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /tours/%d/blackouts - Failed: error=%v", tourID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /tours/%d/blackouts - Applied: date=%s, blocked=%t, active_bookings=%d",
		tourID, result.Date, result.Blocked, result.ActiveBookings)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
