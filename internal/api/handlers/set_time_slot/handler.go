package set_time_slot

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BookingFlow/internal/api/handlers"
	"github.com/m04kA/SMC-BookingFlow/internal/api/middleware"
	"github.com/m04kA/SMC-BookingFlow/internal/service/flow"
	"github.com/m04kA/SMC-BookingFlow/internal/service/flow/models"
)

const (
	msgMissingSession     = "не указан идентификатор сессии"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректный формат времени, ожидается HH:MM"
)

type Handler struct {
	store  TimeSlotSetter
	logger Logger
}

func NewHandler(store TimeSlotSetter, logger Logger) *Handler {
	return &Handler{
		store:  store,
		logger: logger,
	}
}

// Handle PUT /api/v1/flow/time-slot
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	var req SetTimeSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /flow/time-slot - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	state, err := h.store.SetTimeSlot(r.Context(), sessionID, req.TimeSlot)
	if err != nil {
		switch {
		case errors.Is(err, flow.ErrInvalidTimeSlot):
			h.logger.Warn("PUT /flow/time-slot - Invalid time slot: session_id=%s, slot=%q", sessionID, req.TimeSlot)
			handlers.RespondBadRequest(w, msgInvalidTime)

		default:
			h.logger.Error("PUT /flow/time-slot - Failed to set time slot: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /flow/time-slot - Time slot set: session_id=%s, slot=%s", sessionID, req.TimeSlot)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainFlow(sessionID, state))
}
