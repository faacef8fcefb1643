package cancel_booking

import "errors"

var (
	// ErrUnauthenticated возвращается, когда у запроса нет аутентифицированного пользователя
	ErrUnauthenticated = errors.New("cancel_booking: unauthenticated")

	// ErrAccessDenied возвращается, когда пользователь пытается удалить чужое бронирование
	ErrAccessDenied = errors.New("cancel_booking: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cancel_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_booking: internal error")
)
