package get_tier_table

import (
	"errors"
	"net/http"
	"sort"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/yydtours/YYD-BookingService/internal/api/handlers"
	"github.com/yydtours/YYD-BookingService/internal/domain"
	"github.com/yydtours/YYD-BookingService/internal/service/catalog"
)

const (
	msgInvalidTourID = "invalid tour id"
	msgTourNotFound  = "tour not found"
)

// TierResponse один tier сезона
type TierResponse struct {
	Label          string `json:"label"`
	MinPeople      int    `json:"minPeople"`
	MaxPeople      int    `json:"maxPeople"`
	Price          string `json:"price"`
	PricePerPerson bool   `json:"pricePerPerson"`
}

// TierTableResponse HTTP response model: tier-таблицы по сезонам
type TierTableResponse struct {
	TourID  int64                     `json:"tourId"`
	Seasons map[string][]TierResponse `json:"seasons"`
}

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

// Handle GET /api/v1/tours/{tourId}/season-prices
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tourID, err := strconv.ParseInt(mux.Vars(r)["tourId"], 10, 64)
	if err != nil || tourID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidTourID)
		return
	}

	table, err := h.service.TierTable(r.Context(), tourID)
	if err != nil {
		if errors.Is(err, catalog.ErrTourNotFound) {
			h.logger.Warn("GET /tours/%d/season-prices - Tour not found", tourID)
			handlers.RespondNotFound(w, msgTourNotFound)
			return
		}
		h.logger.Error("GET /tours/%d/season-prices - Failed: error=%v", tourID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, toResponse(tourID, table))
}

func toResponse(tourID int64, table map[domain.Season][]*domain.SeasonPriceTier) *TierTableResponse {
	seasons := make(map[string][]TierResponse, len(table))
	for season, tiers := range table {
		out := make([]TierResponse, 0, len(tiers))
		for _, t := range tiers {
			out = append(out, TierResponse{
				Label:          t.Label,
				MinPeople:      t.MinPeople,
				MaxPeople:      t.MaxPeople,
				Price:          t.Price.String(),
				PricePerPerson: t.PricePerPerson,
			})
		}
		sort.Slice(out, func(i, j int) bool { return out[i].MinPeople < out[j].MinPeople })
		seasons[string(season)] = out
	}
	return &TierTableResponse{TourID: tourID, Seasons: seasons}
}
