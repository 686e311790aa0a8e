package deactivate_addon

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/yydtours/YYD-BookingService/internal/api/handlers"
	"github.com/yydtours/YYD-BookingService/internal/service/catalog"
)

const (
	msgInvalidCode   = "invalid addon code"
	msgAddonNotFound = "addon not found"
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

// Handle DELETE /api/v1/addons/{code}
//
// Запись остаётся в каталоге (исторические брони хранят снапшот цены),
// дополнение лишь снимается с продажи.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	if code == "" {
		handlers.RespondBadRequest(w, msgInvalidCode)
		return
	}

	if err := h.service.DeactivateAddon(r.Context(), code); err != nil {
		switch {
		case errors.Is(err, catalog.ErrAddonNotFound):
			h.logger.Warn("DELETE /addons/%s - Not found", code)
			handlers.RespondNotFound(w, msgAddonNotFound)

		case errors.Is(err, catalog.ErrInvalidAddon):
			h.logger.Warn("DELETE /addons/%s - Invalid code: %v", code, err)
			handlers.RespondBadRequest(w, msgInvalidCode)

		default:
			h.logger.Error("DELETE /addons/%s - Failed: error=%v", code, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /addons/%s - Deactivated", code)
	w.WriteHeader(http.StatusNoContent)
}
