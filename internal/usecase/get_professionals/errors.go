package get_professionals

import "errors"

var (
	// ErrSuperseded возвращается, когда результат запроса устарел:
	// начат более новый запрос или набор выбранных услуг изменился
	ErrSuperseded = errors.New("professionals fetch superseded")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
