package get_flow

import (
	"context"

	"github.com/m04kA/SMC-BookingFlow/internal/domain"
)

type FlowLoader interface {
	Load(ctx context.Context, sessionID string) (*domain.BookingFlowState, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
