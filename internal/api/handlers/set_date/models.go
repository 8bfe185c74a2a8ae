package set_date

import "github.com/m04kA/SMC-BookingFlow/internal/domain"

// SetDateRequest HTTP request model
type SetDateRequest struct {
	Date string `json:"date"` // "2025-10-15", пустая строка сбрасывает дату
}

// ToDomain парсит дату, пустая строка дает нулевую дату
func (r *SetDateRequest) ToDomain() (domain.Date, error) {
	if r.Date == "" {
		return domain.Date{}, nil
	}
	return domain.ParseDate(r.Date)
}
