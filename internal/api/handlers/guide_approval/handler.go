package guide_approval

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/yydtours/YYD-BookingService/internal/api/handlers"
	"github.com/yydtours/YYD-BookingService/internal/api/middleware"
	guideApproval "github.com/yydtours/YYD-BookingService/internal/usecase/guide_approval"
)

const (
	msgInvalidBookingID   = "invalid booking id"
	msgInvalidRequestBody = "invalid request body"
	msgBookingNotFound    = "booking not found"
	msgNotAssignedGuide   = "you are not assigned to this tour"
	msgAlreadyDecided     = "this assignment has already been decided"
	msgTooLateToReject    = "rejection is only possible at least 48 hours before the tour"
	msgInvalidInput       = "invalid request data"
)

type Handler struct {
	useCase GuideApprovalUseCase
	logger  Logger
}

func NewHandler(useCase GuideApprovalUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/guide-approval
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	guideID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "missing authentication")
		return
	}

	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil || bookingID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req GuideApprovalRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/%d/guide-approval - Invalid request body: %v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &guideApproval.Request{
		BookingID:    bookingID,
		GuideID:      guideID,
		Approve:      req.Approve,
		Observations: req.Observations,
	})
	if err != nil {
		switch {
		case errors.Is(err, guideApproval.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/%d/guide-approval - Booking not found", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, guideApproval.ErrNotAssignedGuide):
			h.logger.Warn("POST /bookings/%d/guide-approval - Guide %d not assigned", bookingID, guideID)
			handlers.RespondError(w, http.StatusForbidden, msgNotAssignedGuide)

		case errors.Is(err, guideApproval.ErrAlreadyDecided):
			h.logger.Warn("POST /bookings/%d/guide-approval - Already decided", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyDecided)

		case errors.Is(err, guideApproval.ErrTooLateToReject):
			h.logger.Warn("POST /bookings/%d/guide-approval - Too late to reject: guide_id=%d", bookingID, guideID)
			handlers.RespondError(w, http.StatusConflict, msgTooLateToReject)

		case errors.Is(err, guideApproval.ErrInvalidInput):
			h.logger.Warn("POST /bookings/%d/guide-approval - Invalid input: %v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings/%d/guide-approval - Failed: guide_id=%d, error=%v", bookingID, guideID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/%d/guide-approval - Decision recorded: %s", bookingID, result.GuideApproval)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
