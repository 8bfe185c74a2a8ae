package create_flow

import (
	"context"

	"github.com/m04kA/SMC-BookingFlow/internal/domain"
)

type FlowCreator interface {
	Create(ctx context.Context) (string, *domain.BookingFlowState, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
