package remove_service

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BookingFlow/internal/api/handlers"
	"github.com/m04kA/SMC-BookingFlow/internal/api/middleware"
	"github.com/m04kA/SMC-BookingFlow/internal/service/flow/models"
)

const (
	msgMissingSession   = "не указан идентификатор сессии"
	msgMissingServiceID = "ID услуги обязателен"
)

type Handler struct {
	store  ServiceRemover
	logger Logger
}

func NewHandler(store ServiceRemover, logger Logger) *Handler {
	return &Handler{
		store:  store,
		logger: logger,
	}
}

// Handle DELETE /api/v1/flow/services/{serviceId}
// Удаление невыбранной услуги не ошибка
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	serviceID := mux.Vars(r)["serviceId"]
	if serviceID == "" {
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}

	state, err := h.store.RemoveService(r.Context(), sessionID, serviceID)
	if err != nil {
		h.logger.Error("DELETE /flow/services/{id} - Failed to remove service: session_id=%s, service_id=%s, error=%v",
			sessionID, serviceID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /flow/services/{id} - Service removed: session_id=%s, service_id=%s", sessionID, serviceID)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainFlow(sessionID, state))
}
