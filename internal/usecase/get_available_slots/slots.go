package get_available_slots

import (
	"github.com/barberhub/booking-service/internal/domain"
	"github.com/barberhub/booking-service/pkg/types"
)

// availableSlots вычисляет свободные слоты: из сетки исключаются те, для которых
// существует бронирование с тем же временем суток
// Чистая функция: никакого состояния и побочных эффектов
//
// Сравнение только по (час, минута) - дата уже зафиксирована выборкой бронирований
// Бронирование со временем вне сетки не подавляет ни один слот
func availableSlots(grid domain.TimeGrid, bookings []*domain.Booking) []types.TimeString {
	result := make([]types.TimeString, 0, grid.Len())

	for _, slot := range grid.Slots() {
		if slotTaken(slot, bookings) {
			continue
		}
		result = append(result, slot)
	}

	return result
}

// slotTaken проверяет, занят ли слот каким-либо бронированием из списка
func slotTaken(slot types.TimeString, bookings []*domain.Booking) bool {
	for _, booking := range bookings {
		if booking.OccupiesSlot(slot.Hour(), slot.Minute()) {
			return true
		}
	}
	return false
}
