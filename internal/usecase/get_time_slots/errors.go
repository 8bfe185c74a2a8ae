package get_time_slots

import "errors"

var (
	// ErrDateTooFarInFuture возвращается, когда дата превышает ограничение advanceBookingDays
	ErrDateTooFarInFuture = errors.New("date is too far in the future")

	// ErrInvalidSchedule возвращается при некорректном расписании салона
	ErrInvalidSchedule = errors.New("invalid salon schedule")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
