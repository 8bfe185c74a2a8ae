package select_professional

import "errors"

var (
	// ErrNoServicesSelected возвращается, когда в сессии нет выбранных услуг
	ErrNoServicesSelected = errors.New("no services selected")

	// ErrProfessionalNotFound возвращается, когда специалиста нет в списке доступных
	ErrProfessionalNotFound = errors.New("professional not found")

	// ErrSuperseded возвращается, когда список специалистов устарел во время выбора
	ErrSuperseded = errors.New("professionals list superseded")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
