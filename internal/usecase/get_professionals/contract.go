package get_professionals

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BookingFlow/internal/domain"
	"github.com/m04kA/SMC-BookingFlow/internal/infra/notifier"
	"github.com/m04kA/SMC-BookingFlow/internal/integrations/bookingapi"
)

// FlowStore интерфейс чтения состояния booking flow
type FlowStore interface {
	Load(ctx context.Context, sessionID string) (*domain.BookingFlowState, error)
}

// BookingAPIClient интерфейс клиента Booking API
type BookingAPIClient interface {
	GetAvailableProfessionals(ctx context.Context, serviceID, date string) (*bookingapi.ProfessionalsResponse, error)
}

// ChangeSubscriber интерфейс подписки на изменения flow
type ChangeSubscriber interface {
	Subscribe(sessionID string, l notifier.Listener) func()
}

// FetchRecorder интерфейс учета результатов запроса специалистов
type FetchRecorder interface {
	RecordProfessionalFetch(outcome string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
