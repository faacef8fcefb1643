package create_booking

import (
	"fmt"

	"github.com/barberhub/booking-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Отсутствие пользователя - отдельная ошибка, а не ErrInvalidInput
func validateRequest(req *Request, grid domain.TimeGrid) error {
	if req.UserID <= 0 {
		return ErrUnauthenticated
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	// Бронирования создаются только в слоты сетки
	if !grid.Contains(req.StartTime) {
		return fmt.Errorf("%w: %s", ErrSlotNotInGrid, req.StartTime)
	}

	return nil
}

// slotTaken проверяет, занят ли запрошенный слот каким-либо бронированием из списка
// Сравнение по (час, минута) - выборка уже ограничена днём и услугой
func slotTaken(req *Request, bookings []*domain.Booking) bool {
	for _, booking := range bookings {
		if booking.OccupiesSlot(req.StartTime.Hour(), req.StartTime.Minute()) {
			return true
		}
	}
	return false
}
