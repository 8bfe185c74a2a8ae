package continue_step

import (
	"net/http"

	"github.com/m04kA/SMC-BookingFlow/internal/api/handlers"
	"github.com/m04kA/SMC-BookingFlow/internal/api/middleware"
	navigateStep "github.com/m04kA/SMC-BookingFlow/internal/usecase/navigate_step"
)

const msgMissingSession = "не указан идентификатор сессии"

type Handler struct {
	useCase NavigationUseCase
	logger  Logger
}

func NewHandler(useCase NavigationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/flow/continue?path=/professionals
// Заблокированный переход отвечает 422 с уведомлением, информационное уведомление 200
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	resp, err := h.useCase.Continue(r.Context(), &navigateStep.Request{
		SessionID: sessionID,
		Path:      r.URL.Query().Get("path"),
	})
	if err != nil {
		h.logger.Error("POST /flow/continue - Failed to continue: session_id=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	status := http.StatusOK
	if resp.Blocked() {
		status = http.StatusUnprocessableEntity
	}

	handlers.RespondJSON(w, status, FromUseCaseResponse(resp))
}
