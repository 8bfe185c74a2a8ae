package continue_step

import (
	"github.com/m04kA/SMC-BookingFlow/internal/wizard"
	navigateStep "github.com/m04kA/SMC-BookingFlow/internal/usecase/navigate_step"
)

// NavigationResponse HTTP response model
type NavigationResponse struct {
	Step       int            `json:"step"`
	NavigateTo string         `json:"navigateTo,omitempty"`
	Notice     *wizard.Notice `json:"notice,omitempty"`
}

// FromUseCaseResponse конвертирует ответ usecase в HTTP модель
func FromUseCaseResponse(resp *navigateStep.Response) *NavigationResponse {
	return &NavigationResponse{
		Step:       int(resp.Step),
		NavigateTo: resp.NavigateTo,
		Notice:     resp.Notice,
	}
}
