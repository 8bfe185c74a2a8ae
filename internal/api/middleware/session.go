package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BookingFlow/internal/api/handlers"
)

// SessionHeader заголовок с идентификатором сессии booking flow
const SessionHeader = "X-Session-ID"

const (
	msgMissingSession = "не указан заголовок X-Session-ID"
	msgInvalidSession = "некорректный идентификатор сессии"
)

type sessionKey struct{}

// Session извлекает X-Session-ID, проверяет формат UUID и кладет его в контекст
func Session(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get(SessionHeader)
			if raw == "" {
				// Браузерный WebSocket не умеет в заголовки, разрешаем query параметр
				raw = r.URL.Query().Get("sessionId")
			}
			if raw == "" {
				logger.Warn("%s %s - Missing session header", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingSession)
				return
			}

			id, err := uuid.Parse(raw)
			if err != nil {
				logger.Warn("%s %s - Invalid session id %q: %v", r.Method, r.URL.Path, raw, err)
				handlers.RespondBadRequest(w, msgInvalidSession)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSessionID(r.Context(), id.String())))
		})
	}
}

// WithSessionID возвращает контекст с идентификатором сессии
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionKey{}, sessionID)
}

// GetSessionID возвращает идентификатор сессии из контекста
func GetSessionID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(sessionKey{}).(string)
	return id, ok && id != ""
}
