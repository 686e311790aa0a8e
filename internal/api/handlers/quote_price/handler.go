package quote_price

import (
	"errors"
	"net/http"

	"github.com/yydtours/YYD-BookingService/internal/api/handlers"
	quotePrice "github.com/yydtours/YYD-BookingService/internal/usecase/quote_price"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgTourNotFound       = "tour not found"
	msgTourInactive       = "tour is not available for booking"
	msgNoMatchingTier     = "no price is configured for this season and group size"
	msgUnknownAddon       = "unknown addon code"
	msgInactiveAddon      = "addon is no longer offered"
	msgDuplicateAddon     = "duplicate addon code"
	msgInvalidInput       = "invalid request data"
)

type Handler struct {
	useCase QuotePriceUseCase
	logger  Logger
}

func NewHandler(useCase QuotePriceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/quotes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /quotes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /quotes - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, quotePrice.ErrTourNotFound):
			h.logger.Warn("POST /quotes - Tour not found: tour_id=%d", req.TourID)
			handlers.RespondNotFound(w, msgTourNotFound)

		case errors.Is(err, quotePrice.ErrTourInactive):
			h.logger.Warn("POST /quotes - Tour inactive: tour_id=%d", req.TourID)
			handlers.RespondError(w, http.StatusConflict, msgTourInactive)

		case errors.Is(err, quotePrice.ErrNoMatchingTier):
			h.logger.Warn("POST /quotes - No matching tier: tour_id=%d, people=%d", req.TourID, req.NumberOfPeople)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgNoMatchingTier)

		case errors.Is(err, quotePrice.ErrUnknownAddon):
			h.logger.Warn("POST /quotes - Unknown addon: tour_id=%d", req.TourID)
			handlers.RespondBadRequest(w, msgUnknownAddon)

		case errors.Is(err, quotePrice.ErrInactiveAddon):
			h.logger.Warn("POST /quotes - Inactive addon: tour_id=%d", req.TourID)
			handlers.RespondError(w, http.StatusConflict, msgInactiveAddon)

		case errors.Is(err, quotePrice.ErrDuplicateAddon):
			h.logger.Warn("POST /quotes - Duplicate addon: tour_id=%d", req.TourID)
			handlers.RespondBadRequest(w, msgDuplicateAddon)

		case errors.Is(err, quotePrice.ErrInvalidInput):
			h.logger.Warn("POST /quotes - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /quotes - Failed to compute quote: tour_id=%d, error=%v", req.TourID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /quotes - Quote computed: tour_id=%d, season=%s, total=%s",
		result.TourID, result.Season, result.Total)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
