package get_professionals

import "github.com/m04kA/SMC-BookingFlow/internal/domain"

// User-facing texts
const (
	MsgNoServices   = "Please select services first to see available professionals."
	MsgFetchFailure = "Failed to load professionals. Please try again."
)

// Исходы запроса для метрик
const (
	OutcomeOK         = "ok"
	OutcomeEmpty      = "empty"
	OutcomeError      = "error"
	OutcomeSuperseded = "superseded"
	OutcomeCached     = "cached"
)

// Request модель запроса списка специалистов
type Request struct {
	SessionID string
	Refresh   bool // игнорировать закешированный список
}

// Response модель экрана выбора специалиста
type Response struct {
	Professionals []domain.Professional // первым всегда идет "Any professional", если есть услуги
	SelectedID    string                // специалист первой услуги, пусто если не выбран
	ServiceID     string                // услуга, по которой запрашивались специалисты
	Date          string                // дата запроса (YYYY-MM-DD)
	NoServices    bool
	Message       string
	Error         string
	Retry         bool
	FromCache     bool
}

// Find возвращает карточку специалиста по ID
func (r *Response) Find(id string) (domain.Professional, bool) {
	for _, p := range r.Professionals {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Professional{}, false
}

// view закешированный результат последнего принятого запроса
type view struct {
	services      []domain.Service
	serviceID     string
	date          string
	professionals []domain.Professional
	errorText     string
}

func (v *view) failed() bool {
	return v.errorText != ""
}
