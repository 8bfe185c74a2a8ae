package add_service

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
	msgInvalidService     = "некорректная услуга: нужен _id, длительность и цена не могут быть отрицательными"
)

type Handler struct {
	store  ServiceAdder
	logger Logger
}

func NewHandler(store ServiceAdder, logger Logger) *Handler {
	return &Handler{
		store:  store,
		logger: logger,
	}
}

// Handle POST /api/v1/flow/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	var req AddServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /flow/services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	state, err := h.store.AddService(r.Context(), sessionID, req.ToDomain())
	if err != nil {
		switch {
		case errors.Is(err, flow.ErrInvalidService):
			h.logger.Warn("POST /flow/services - Invalid service: session_id=%s, error=%v", sessionID, err)
			handlers.RespondBadRequest(w, msgInvalidService)

		default:
			h.logger.Error("POST /flow/services - Failed to add service: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /flow/services - Service added: session_id=%s, service_id=%s", sessionID, req.ID)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainFlow(sessionID, state))
}
