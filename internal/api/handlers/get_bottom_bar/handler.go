package get_bottom_bar

import (
	"net/http"

	"github.com/m04kA/SMC-BookingFlow/internal/api/handlers"
	"github.com/m04kA/SMC-BookingFlow/internal/api/middleware"
)

const msgMissingSession = "не указан идентификатор сессии"

type Handler struct {
	useCase BottomBarUseCase
	logger  Logger
}

func NewHandler(useCase BottomBarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/flow/bottom-bar
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	bar, err := h.useCase.BottomBar(r.Context(), sessionID)
	if err != nil {
		h.logger.Error("GET /flow/bottom-bar - Failed to build bottom bar: session_id=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, bar)
}
