package wizard

import (
	"time"

	"github.com/m04kA/SMC-BookingFlow/internal/domain"
)

// Navigation результат нажатия Continue или Back
// Ровно одно из полей заполнено
type Navigation struct {
	NavigateTo string
	Notice     *Notice
}

// Controller управляет переходами между шагами
type Controller struct {
	noticeDelay time.Duration
}

// NewController создает контроллер, noticeDelay <= 0 означает DefaultNoticeDelay
func NewController(noticeDelay time.Duration) *Controller {
	if noticeDelay <= 0 {
		noticeDelay = DefaultNoticeDelay
	}
	return &Controller{noticeDelay: noticeDelay}
}

// Continue переходит на следующий шаг, если условия текущего шага выполнены
// На последнем шаге вместо перехода возвращается информационное уведомление
func (c *Controller) Continue(step Step, state *domain.BookingFlowState) Navigation {
	ok, notice := CanAdvance(step, state)
	if !ok {
		return Navigation{Notice: notice.WithDelay(c.noticeDelay)}
	}

	switch step {
	case StepService:
		return Navigation{NavigateTo: PathProfessional}
	case StepProfessional:
		return Navigation{NavigateTo: PathTime}
	case StepTime:
		return Navigation{NavigateTo: PathPayment}
	default:
		return Navigation{Notice: newNotice(SeverityInfo, titlePaymentStep, msgPaymentStep).WithDelay(c.noticeDelay)}
	}
}

// Back возвращает на предыдущий шаг без проверок
func (c *Controller) Back(step Step) Navigation {
	switch step {
	case StepTime:
		return Navigation{NavigateTo: PathProfessional}
	case StepPayment:
		return Navigation{NavigateTo: PathTime}
	default:
		return Navigation{NavigateTo: PathService}
	}
}

// ContinueLabel текст основной кнопки
func ContinueLabel(step Step) string {
	if step == LastStep() {
		return "Complete Booking"
	}
	return "Continue"
}
