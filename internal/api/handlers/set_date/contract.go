package set_date

import (
	"context"

	"github.com/m04kA/SMC-BookingFlow/internal/domain"
)

type DateSetter interface {
	SetDate(ctx context.Context, sessionID string, date domain.Date) (*domain.BookingFlowState, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
