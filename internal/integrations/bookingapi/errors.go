package bookingapi

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("bookingapi client: internal error")

	// ErrRequest возвращается, когда запрос не выполнен (сеть, таймаут, отмена)
	ErrRequest = errors.New("bookingapi client: request failed")

	// ErrInvalidResponse возвращается при некорректном ответе от Booking API
	ErrInvalidResponse = errors.New("bookingapi client: invalid response")
)
