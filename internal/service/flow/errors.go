package flow

import "errors"

var (
	// ErrInvalidService возвращается, когда услуга не проходит валидацию
	ErrInvalidService = errors.New("invalid service")

	// ErrServiceNotSelected возвращается, когда услуга не входит в выбранные
	ErrServiceNotSelected = errors.New("service is not selected")

	// ErrInvalidTimeSlot возвращается при некорректном формате времени слота
	ErrInvalidTimeSlot = errors.New("invalid time slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
