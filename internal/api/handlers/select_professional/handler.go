package select_professional

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BookingFlow/internal/api/handlers"
	"github.com/m04kA/SMC-BookingFlow/internal/api/middleware"
	"github.com/m04kA/SMC-BookingFlow/internal/service/flow/models"
	selectProfessional "github.com/m04kA/SMC-BookingFlow/internal/usecase/select_professional"
)

const (
	msgMissingSession        = "не указан идентификатор сессии"
	msgMissingProfessionalID = "ID специалиста обязателен"
	msgNoServicesSelected    = "сначала выберите услуги"
	msgProfessionalNotFound  = "специалист не найден среди доступных"
	msgSuperseded            = "список специалистов устарел, обновите экран"
)

type Handler struct {
	useCase SelectProfessionalUseCase
	logger  Logger
}

func NewHandler(useCase SelectProfessionalUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/flow/professionals/{professionalId}/select
// Выбранный специалист назначается на все выбранные услуги, "any" - любой свободный
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	professionalID := mux.Vars(r)["professionalId"]
	if professionalID == "" {
		handlers.RespondBadRequest(w, msgMissingProfessionalID)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), &selectProfessional.Request{
		SessionID:      sessionID,
		ProfessionalID: professionalID,
	})
	if err != nil {
		switch {
		case errors.Is(err, selectProfessional.ErrNoServicesSelected):
			handlers.RespondBadRequest(w, msgNoServicesSelected)

		case errors.Is(err, selectProfessional.ErrProfessionalNotFound):
			h.logger.Warn("POST /flow/professionals/{id}/select - Professional not found: session_id=%s, professional_id=%s",
				sessionID, professionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, selectProfessional.ErrSuperseded):
			handlers.RespondConflict(w, msgSuperseded)

		default:
			h.logger.Error("POST /flow/professionals/{id}/select - Failed to select professional: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /flow/professionals/{id}/select - Professional selected: session_id=%s, professional_id=%s",
		sessionID, resp.Selected.ID)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainFlow(sessionID, resp.Flow))
}
