package get_summary

import (
	"context"

	"github.com/m04kA/SMC-BookingFlow/internal/wizard"
)

type SummaryUseCase interface {
	Summary(ctx context.Context, sessionID, path string) (*wizard.Summary, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
