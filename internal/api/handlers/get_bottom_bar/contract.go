package get_bottom_bar

import (
	"context"

	"github.com/m04kA/SMC-BookingFlow/internal/wizard"
)

type BottomBarUseCase interface {
	BottomBar(ctx context.Context, sessionID string) (*wizard.BottomBar, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
