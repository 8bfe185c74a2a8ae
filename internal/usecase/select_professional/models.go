package select_professional

import "github.com/m04kA/SMC-BookingFlow/internal/domain"

// Request модель запроса выбора специалиста
type Request struct {
	SessionID      string
	ProfessionalID string
}

// Response модель ответа с обновленным состоянием
type Response struct {
	Selected domain.Professional
	Flow     *domain.BookingFlowState
}
