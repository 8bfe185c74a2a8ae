package get_professionals

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-BookingFlow/internal/api/handlers"
	"github.com/m04kA/SMC-BookingFlow/internal/api/middleware"
	getProfessionals "github.com/m04kA/SMC-BookingFlow/internal/usecase/get_professionals"
)

const (
	msgMissingSession = "не указан идентификатор сессии"
	msgInvalidRefresh = "параметр refresh должен быть true или false"
	msgSuperseded     = "список специалистов устарел, услуги изменились во время запроса"
)

type Handler struct {
	useCase ProfessionalsUseCase
	logger  Logger
}

func NewHandler(useCase ProfessionalsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/flow/professionals?refresh=true
// Ошибка внешнего API не ошибка HTTP: экран деградирует до "Any professional"
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	refresh := false
	if raw := r.URL.Query().Get("refresh"); raw != "" {
		value, err := strconv.ParseBool(raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidRefresh)
			return
		}
		refresh = value
	}

	resp, err := h.useCase.Execute(r.Context(), &getProfessionals.Request{
		SessionID: sessionID,
		Refresh:   refresh,
	})
	if err != nil {
		switch {
		case errors.Is(err, getProfessionals.ErrSuperseded):
			h.logger.Info("GET /flow/professionals - Superseded: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgSuperseded)

		default:
			h.logger.Error("GET /flow/professionals - Failed to get professionals: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp))
}
