package flow

import (
	"context"

	"github.com/m04kA/SMC-BookingFlow/internal/domain"
	"github.com/m04kA/SMC-BookingFlow/internal/infra/notifier"
)

// FlowRepository интерфейс репозитория состояния booking flow
// Save записывает состояние целиком, частичная запись не допускается
type FlowRepository interface {
	Get(ctx context.Context, sessionID string) (*domain.BookingFlowState, error)
	Save(ctx context.Context, sessionID string, state *domain.BookingFlowState) error
	Delete(ctx context.Context, sessionID string) error
}

// Notifier интерфейс публикации событий об изменении flow
type Notifier interface {
	Publish(e notifier.Event)
}

// MutationRecorder интерфейс учета мутаций в метриках
type MutationRecorder interface {
	RecordFlowMutation(operation string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
