package wizard

import "github.com/m04kA/SMC-BookingFlow/internal/domain"

// Notice texts
const (
	titleServiceRequired      = "Service Required"
	titleProfessionalRequired = "Professional Required"
	titleTimeSlotRequired     = "Time Slot Required"
	titlePaymentStep          = "Payment Step"

	msgSelectAtLeastOneService = "Please select at least one service first."
	msgSelectServiceFirst      = "Please select a service first."
	msgSelectProfessional      = "Please select a professional for your service."
	msgSelectTimeSlot          = "Please select an available time slot."
	msgPaymentStep             = "Payment step - implement payment logic"
)

// CanAdvance проверяет, можно ли уйти с шага вперед
// Единственная реализация условий перехода: ею пользуются Continue, сводка и нижняя панель
// При отказе возвращает уведомление для пользователя
func CanAdvance(step Step, state *domain.BookingFlowState) (bool, *Notice) {
	switch step {
	case StepService:
		if len(state.SelectedServices) == 0 {
			return false, newNotice(SeverityWarning, titleServiceRequired, msgSelectAtLeastOneService)
		}
		return true, nil

	case StepProfessional:
		if len(state.SelectedServices) == 0 {
			return false, newNotice(SeverityWarning, titleServiceRequired, msgSelectServiceFirst)
		}
		// Достаточно специалиста для первой услуги
		if _, ok := state.FirstServiceProfessional(); !ok {
			return false, newNotice(SeverityWarning, titleProfessionalRequired, msgSelectProfessional)
		}
		return true, nil

	case StepTime:
		if state.SelectedTimeSlot == "" {
			return false, newNotice(SeverityWarning, titleTimeSlotRequired, msgSelectTimeSlot)
		}
		return true, nil

	case StepPayment:
		return true, nil

	default:
		return false, nil
	}
}
