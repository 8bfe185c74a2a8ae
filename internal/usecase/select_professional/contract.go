package select_professional

import (
	"context"

	"github.com/m04kA/SMC-BookingFlow/internal/domain"
	getProfessionals "github.com/m04kA/SMC-BookingFlow/internal/usecase/get_professionals"
)

// FlowStore интерфейс хранилища booking flow
type FlowStore interface {
	Load(ctx context.Context, sessionID string) (*domain.BookingFlowState, error)
	AssignProfessionalToAll(ctx context.Context, sessionID string, p domain.Professional) (*domain.BookingFlowState, error)
}

// ProfessionalsProvider интерфейс получения списка специалистов сессии
type ProfessionalsProvider interface {
	Execute(ctx context.Context, req *getProfessionals.Request) (*getProfessionals.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
