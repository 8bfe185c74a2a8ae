package navigate_step

import (
	"context"

	"github.com/m04kA/SMC-BookingFlow/internal/domain"
)

// FlowStore интерфейс чтения состояния booking flow
type FlowStore interface {
	Load(ctx context.Context, sessionID string) (*domain.BookingFlowState, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
