package models

import "github.com/m04kA/SMC-BookingFlow/internal/domain"

// FlowResponse состояние booking flow для API
type FlowResponse struct {
	SessionID             string                          `json:"sessionId"`
	SelectedServices      []ServiceResponse               `json:"selectedServices"`
	SelectedProfessionals map[string]ProfessionalResponse `json:"selectedProfessionals"`
	SelectedDate          *string                         `json:"selectedDate"`
	SelectedTimeSlot      *string                         `json:"selectedTimeSlot"`
	TotalDuration         int                             `json:"totalDuration"`
	TotalPrice            float64                         `json:"totalPrice"`
}

// ServiceResponse выбранная услуга
type ServiceResponse struct {
	ID       string          `json:"_id"`
	Name     string          `json:"name"`
	Duration int             `json:"duration"`
	Price    float64         `json:"price"`
	Category domain.Category `json:"category"`
}

// ProfessionalResponse назначенный специалист
type ProfessionalResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Position   string `json:"position,omitempty"`
	EmployeeID string `json:"employeeId,omitempty"`
}

// FromDomainFlow конвертирует состояние домена в ответ API
func FromDomainFlow(sessionID string, state *domain.BookingFlowState) *FlowResponse {
	resp := &FlowResponse{
		SessionID:             sessionID,
		SelectedServices:      make([]ServiceResponse, 0, len(state.SelectedServices)),
		SelectedProfessionals: make(map[string]ProfessionalResponse, len(state.SelectedProfessionals)),
		TotalDuration:         state.TotalDuration(),
		TotalPrice:            state.TotalPrice(),
	}

	for _, svc := range state.SelectedServices {
		resp.SelectedServices = append(resp.SelectedServices, ServiceResponse{
			ID:       svc.ID,
			Name:     svc.Name,
			Duration: svc.Duration,
			Price:    svc.Price,
			Category: svc.Category,
		})
	}

	for serviceID, p := range state.SelectedProfessionals {
		resp.SelectedProfessionals[serviceID] = ProfessionalResponse{
			ID:         p.ID,
			Name:       p.Name,
			Position:   p.Position,
			EmployeeID: p.EmployeeID,
		}
	}

	if state.SelectedDate != nil {
		date := state.SelectedDate.String()
		resp.SelectedDate = &date
	}
	if state.SelectedTimeSlot != "" {
		slot := state.SelectedTimeSlot
		resp.SelectedTimeSlot = &slot
	}

	return resp
}
