package create_flow

import (
	"net/http"

	"github.com/m04kA/SMC-BookingFlow/internal/api/handlers"
	"github.com/m04kA/SMC-BookingFlow/internal/service/flow/models"
)

type Handler struct {
	store  FlowCreator
	logger Logger
}

func NewHandler(store FlowCreator, logger Logger) *Handler {
	return &Handler{
		store:  store,
		logger: logger,
	}
}

// Handle POST /api/v1/flows
// Создает новую сессию, клиент передает её id в заголовке X-Session-ID
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, state, err := h.store.Create(r.Context())
	if err != nil {
		h.logger.Error("POST /flows - Failed to create session: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /flows - Session created: session_id=%s", sessionID)
	handlers.RespondJSON(w, http.StatusCreated, models.FromDomainFlow(sessionID, state))
}
