package get_professionals

import (
	"context"

	getProfessionals "github.com/m04kA/SMC-BookingFlow/internal/usecase/get_professionals"
)

type ProfessionalsUseCase interface {
	Execute(ctx context.Context, req *getProfessionals.Request) (*getProfessionals.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
