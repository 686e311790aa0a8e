package create_addon

import (
	"errors"
	"net/http"

	"github.com/yydtours/YYD-BookingService/internal/api/handlers"
	"github.com/yydtours/YYD-BookingService/internal/service/catalog"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgAddonExists        = "addon code already exists"
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

// Handle POST /api/v1/addons
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAddonRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /addons - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.service.CreateAddon(r.Context(), req.ToDomain())
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrAddonExists):
			h.logger.Warn("POST /addons - Code %q already exists", req.Code)
			handlers.RespondError(w, http.StatusConflict, msgAddonExists)

		// Валидационные ошибки несут контекст (какое поле не прошло),
		// пробрасываем текст клиенту
		case errors.Is(err, catalog.ErrInvalidAddon):
			h.logger.Warn("POST /addons - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /addons - Failed: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /addons - Created: code=%s type=%s", created.Code, created.PriceType)
	handlers.RespondJSON(w, http.StatusCreated, &CreateAddonResponse{
		ID:        created.ID,
		Code:      created.Code,
		Price:     created.Price.String(),
		PriceType: string(created.PriceType),
		Category:  created.Category,
		SortOrder: created.SortOrder,
		Active:    created.Active,
	})
}
