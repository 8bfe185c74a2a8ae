package get_flow

import (
	"net/http"

	"github.com/m04kA/SMC-BookingFlow/internal/api/handlers"
	"github.com/m04kA/SMC-BookingFlow/internal/api/middleware"
	"github.com/m04kA/SMC-BookingFlow/internal/service/flow/models"
)

const msgMissingSession = "не указан идентификатор сессии"

type Handler struct {
	store  FlowLoader
	logger Logger
}

func NewHandler(store FlowLoader, logger Logger) *Handler {
	return &Handler{
		store:  store,
		logger: logger,
	}
}

// Handle GET /api/v1/flow
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	state, err := h.store.Load(r.Context(), sessionID)
	if err != nil {
		h.logger.Error("GET /flow - Failed to load flow: session_id=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, models.FromDomainFlow(sessionID, state))
}
