package get_time_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BookingFlow/internal/api/handlers"
	"github.com/m04kA/SMC-BookingFlow/internal/api/middleware"
	getTimeSlots "github.com/m04kA/SMC-BookingFlow/internal/usecase/get_time_slots"
)

const (
	msgMissingSession     = "не указан идентификатор сессии"
	msgDateTooFarInFuture = "дата слишком далеко в будущем"
)

type Handler struct {
	useCase TimeSlotsUseCase
	logger  Logger
}

func NewHandler(useCase TimeSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/flow/time-slots
// Слоты считаются на выбранную дату сессии, без даты на сегодня
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), &getTimeSlots.Request{SessionID: sessionID})
	if err != nil {
		switch {
		case errors.Is(err, getTimeSlots.ErrDateTooFarInFuture):
			h.logger.Warn("GET /flow/time-slots - Date too far in future: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgDateTooFarInFuture)

		default:
			h.logger.Error("GET /flow/time-slots - Failed to get time slots: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp))
}
