package list_addons

import (
	"net/http"

	"github.com/yydtours/YYD-BookingService/internal/api/handlers"
	"github.com/yydtours/YYD-BookingService/internal/domain"
)

// AddonResponse одно дополнение каталога
type AddonResponse struct {
	Code      string `json:"code"`
	Price     string `json:"price"`
	PriceType string `json:"priceType"`
	Category  string `json:"category,omitempty"`
	SortOrder int    `json:"sortOrder"`
}

// ListAddonsResponse HTTP response model
type ListAddonsResponse struct {
	Addons []AddonResponse `json:"addons"`
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

// Handle GET /api/v1/addons
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	addons, err := h.service.ListAddons(r.Context())
	if err != nil {
		h.logger.Error("GET /addons - Failed: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, toResponse(addons))
}

func toResponse(addons []*domain.Addon) *ListAddonsResponse {
	out := make([]AddonResponse, 0, len(addons))
	for _, a := range addons {
		out = append(out, AddonResponse{
			Code:      a.Code,
			Price:     a.Price.String(),
			PriceType: string(a.PriceType),
			Category:  a.Category,
			SortOrder: a.SortOrder,
		})
	}
	return &ListAddonsResponse{Addons: out}
}
