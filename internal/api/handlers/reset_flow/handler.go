package reset_flow

import (
	"net/http"

	"github.com/m04kA/SMC-BookingFlow/internal/api/handlers"
	"github.com/m04kA/SMC-BookingFlow/internal/api/middleware"
)

const msgMissingSession = "не указан идентификатор сессии"

type Handler struct {
	store  FlowResetter
	logger Logger
}

func NewHandler(store FlowResetter, logger Logger) *Handler {
	return &Handler{
		store:  store,
		logger: logger,
	}
}

// Handle DELETE /api/v1/flow
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	if err := h.store.Reset(r.Context(), sessionID); err != nil {
		h.logger.Error("DELETE /flow - Failed to reset flow: session_id=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /flow - Flow reset: session_id=%s", sessionID)
	w.WriteHeader(http.StatusNoContent)
}
