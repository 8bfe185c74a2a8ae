package set_time_slot

import (
	"context"

	"github.com/m04kA/SMC-BookingFlow/internal/domain"
)

type TimeSlotSetter interface {
	SetTimeSlot(ctx context.Context, sessionID, slot string) (*domain.BookingFlowState, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
