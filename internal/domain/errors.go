package domain

import "errors"

var (
	// ErrInvalidService возвращается при некорректных данных услуги
	ErrInvalidService = errors.New("invalid service")

	// ErrInvalidDate возвращается при некорректной дате
	ErrInvalidDate = errors.New("invalid date")
)
