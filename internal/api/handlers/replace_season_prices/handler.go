package replace_season_prices

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/yydtours/YYD-BookingService/internal/api/handlers"
	"github.com/yydtours/YYD-BookingService/internal/domain"
	"github.com/yydtours/YYD-BookingService/internal/service/catalog"
)

const (
	msgInvalidTourID      = "invalid tour id"
	msgInvalidRequestBody = "invalid request body"
	msgTourNotFound       = "tour not found"
	msgInvalidSeason      = "invalid season"
	msgEmptyTierTable     = "tier table must not be empty"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/tours/{tourId}/season-prices
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tourID, err := strconv.ParseInt(mux.Vars(r)["tourId"], 10, 64)
	if err != nil || tourID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidTourID)
		return
	}

	var req ReplaceSeasonPricesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /tours/%d/season-prices - Invalid request body: %v", tourID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err = h.service.ReplaceTierTable(r.Context(), tourID, domain.Season(req.Season), req.ToDomain(tourID))
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrTourNotFound):
			h.logger.Warn("PUT /tours/%d/season-prices - Tour not found", tourID)
			handlers.RespondNotFound(w, msgTourNotFound)

		case errors.Is(err, catalog.ErrInvalidSeason):
			h.logger.Warn("PUT /tours/%d/season-prices - Invalid season: %s", tourID, req.Season)
			handlers.RespondBadRequest(w, msgInvalidSeason)

		case errors.Is(err, catalog.ErrEmptyTierTable):
			h.logger.Warn("PUT /tours/%d/season-prices - Empty tier table", tourID)
			handlers.RespondBadRequest(w, msgEmptyTierTable)

		// Валидационные ошибки таблицы несут контекст (какой диапазон
		// пересекается или выпал), пробрасываем текст клиенту
		case errors.Is(err, catalog.ErrInvalidTier),
			errors.Is(err, catalog.ErrTierOverlap),
			errors.Is(err, catalog.ErrTierGap):
			h.logger.Warn("PUT /tours/%d/season-prices - Validation failed: %v", tourID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, err.Error())

		default:
			h.logger.Error("PUT /tours/%d/season-prices - Failed: error=%v", tourID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /tours/%d/season-prices - Replaced: season=%s, tiers=%d", tourID, req.Season, len(req.Tiers))
	handlers.RespondJSON(w, http.StatusOK, &ReplaceSeasonPricesResponse{
		TourID: tourID,
		Season: req.Season,
		Tiers:  len(req.Tiers),
	})
}
