package create_booking

import "errors"

var (
	// ErrUnauthenticated возвращается, когда у запроса нет аутентифицированного пользователя
	ErrUnauthenticated = errors.New("create_booking: unauthenticated")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrSlotNotInGrid возвращается, когда время не входит во временную сетку
	ErrSlotNotInGrid = errors.New("create_booking: time is not a grid slot")

	// ErrSlotTaken возвращается, когда слот уже занят другим бронированием
	ErrSlotTaken = errors.New("create_booking: slot already taken")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
