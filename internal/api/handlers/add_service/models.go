package add_service

import "github.com/m04kA/SMC-BookingFlow/internal/domain"

// AddServiceRequest HTTP request model
// Тело повторяет карточку услуги из каталога, лишние поля игнорируются
type AddServiceRequest struct {
	ID       string          `json:"_id"`
	Name     string          `json:"name"`
	Duration int             `json:"duration"` // минуты
	Price    float64         `json:"price"`
	Category domain.Category `json:"category"`
}

// ToDomain конвертирует HTTP запрос в доменную услугу
func (r *AddServiceRequest) ToDomain() domain.Service {
	return domain.Service{
		ID:       r.ID,
		Name:     r.Name,
		Duration: r.Duration,
		Price:    r.Price,
		Category: r.Category,
	}
}
