package add_service

import (
	"context"

	"github.com/m04kA/SMC-BookingFlow/internal/domain"
)

type ServiceAdder interface {
	AddService(ctx context.Context, sessionID string, svc domain.Service) (*domain.BookingFlowState, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
