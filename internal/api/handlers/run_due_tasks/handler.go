package run_due_tasks

import (
	"net/http"
	"strconv"

	"github.com/yydtours/YYD-BookingService/internal/api/handlers"
	processTasks "github.com/yydtours/YYD-BookingService/internal/usecase/process_scheduled_tasks"
)

const msgInvalidLimit = "invalid limit parameter"

// RunDueTasksResponse HTTP response model
type RunDueTasksResponse struct {
	Processed int `json:"processed"`
	Approved  int `json:"approved"`
	Skipped   int `json:"skipped"`
}

type Handler struct {
	useCase ProcessScheduledTasksUseCase
	logger  Logger
}

func NewHandler(useCase ProcessScheduledTasksUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/internal/tasks/run-due?limit=N
// Эндпоинт дергает внешний cron; сервис сам таймеров не держит.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var limit uint64
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		limit = parsed
	}

	result, err := h.useCase.Execute(r.Context(), &processTasks.Request{Limit: limit})
	if err != nil {
		h.logger.Error("POST /internal/tasks/run-due - Failed: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /internal/tasks/run-due - Done: processed=%d, approved=%d, skipped=%d",
		result.Processed, result.Approved, result.Skipped)
	handlers.RespondJSON(w, http.StatusOK, &RunDueTasksResponse{
		Processed: result.Processed,
		Approved:  result.Approved,
		Skipped:   result.Skipped,
	})
}
