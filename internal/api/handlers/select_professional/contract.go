package select_professional

import (
	"context"

	selectProfessional "github.com/m04kA/SMC-BookingFlow/internal/usecase/select_professional"
)

type SelectProfessionalUseCase interface {
	Execute(ctx context.Context, req *selectProfessional.Request) (*selectProfessional.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
