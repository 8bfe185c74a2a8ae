package get_summary

import (
	"net/http"

	"github.com/m04kA/SMC-BookingFlow/internal/api/handlers"
	"github.com/m04kA/SMC-BookingFlow/internal/api/middleware"
)

const msgMissingSession = "не указан идентификатор сессии"

type Handler struct {
	useCase SummaryUseCase
	logger  Logger
}

func NewHandler(useCase SummaryUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/flow/summary?path=/time
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	summary, err := h.useCase.Summary(r.Context(), sessionID, r.URL.Query().Get("path"))
	if err != nil {
		h.logger.Error("GET /flow/summary - Failed to build summary: session_id=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, summary)
}
