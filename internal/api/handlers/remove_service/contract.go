package remove_service

import (
	"context"

	"github.com/m04kA/SMC-BookingFlow/internal/domain"
)

type ServiceRemover interface {
	RemoveService(ctx context.Context, sessionID, serviceID string) (*domain.BookingFlowState, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
