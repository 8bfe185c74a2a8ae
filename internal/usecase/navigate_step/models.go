package navigate_step

import "github.com/m04kA/SMC-BookingFlow/internal/wizard"

// Request модель запроса перехода
type Request struct {
	SessionID string
	Path      string // текущий маршрут клиента
}

// Response результат перехода: либо NavigateTo, либо Notice
type Response struct {
	Step       wizard.Step
	NavigateTo string
	Notice     *wizard.Notice
}

// Blocked returns true when the transition was refused with a warning
func (r *Response) Blocked() bool {
	return r.Notice != nil && r.Notice.Severity == wizard.SeverityWarning
}
