package get_professionals

import (
	"github.com/m04kA/SMC-BookingFlow/internal/domain"
	getProfessionals "github.com/m04kA/SMC-BookingFlow/internal/usecase/get_professionals"
)

// ProfessionalsResponse HTTP response model
type ProfessionalsResponse struct {
	Professionals []domain.Professional `json:"professionals"`
	SelectedID    string                `json:"selectedId,omitempty"`
	ServiceID     string                `json:"serviceId,omitempty"`
	Date          string                `json:"date,omitempty"`
	NoServices    bool                  `json:"noServices"`
	Message       string                `json:"message,omitempty"`
	Error         string                `json:"error,omitempty"`
	Retry         bool                  `json:"retry"`
	FromCache     bool                  `json:"fromCache"`
}

// FromUseCaseResponse конвертирует ответ usecase в HTTP модель
func FromUseCaseResponse(resp *getProfessionals.Response) *ProfessionalsResponse {
	professionals := resp.Professionals
	if professionals == nil {
		professionals = []domain.Professional{}
	}

	return &ProfessionalsResponse{
		Professionals: professionals,
		SelectedID:    resp.SelectedID,
		ServiceID:     resp.ServiceID,
		Date:          resp.Date,
		NoServices:    resp.NoServices,
		Message:       resp.Message,
		Error:         resp.Error,
		Retry:         resp.Retry,
		FromCache:     resp.FromCache,
	}
}
