package continue_step

import (
	"context"

	navigateStep "github.com/m04kA/SMC-BookingFlow/internal/usecase/navigate_step"
)

type NavigationUseCase interface {
	Continue(ctx context.Context, req *navigateStep.Request) (*navigateStep.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
