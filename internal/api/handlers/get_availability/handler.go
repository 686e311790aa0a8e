package get_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/yydtours/YYD-BookingService/internal/api/handlers"
	"github.com/yydtours/YYD-BookingService/internal/domain"
	getAvailability "github.com/yydtours/YYD-BookingService/internal/usecase/get_availability"
)

const (
	msgInvalidTourID = "invalid tour id"
	msgInvalidDate   = "invalid or missing date, expected ?date=YYYY-MM-DD"
	msgTourNotFound  = "tour not found"
	msgInvalidInput  = "invalid request data"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/tours/{tourId}/availability?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tourID, err := strconv.ParseInt(mux.Vars(r)["tourId"], 10, 64)
	if err != nil || tourID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidTourID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailability.Request{
		TourID: tourID,
		Date:   date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrTourNotFound):
			h.logger.Warn("GET /tours/%d/availability - Tour not found", tourID)
			handlers.RespondNotFound(w, msgTourNotFound)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /tours/%d/availability - Invalid input: %v", tourID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /tours/%d/availability - Failed: error=%v", tourID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
