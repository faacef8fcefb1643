package domain

import (
	"fmt"

	"github.com/barberhub/booking-service/pkg/types"
)

// TimeGrid фиксированный упорядоченный каталог времён, доступных для бронирования в течение дня
// Сетка одинакова для всех услуг и барбершопов и не меняется в процессе работы сервиса
// Значение собирается один раз из конфигурации и инжектируется в use cases
type TimeGrid struct {
	slots []types.TimeString
}

// defaultSlots сетка по умолчанию: явный перечень, а не равномерный шаг
// (последний интервал 19:30 → 20:00 короче остальных)
var defaultSlots = []types.TimeString{
	"09:00",
	"09:45",
	"10:30",
	"11:15",
	"12:00",
	"12:45",
	"13:30",
	"14:15",
	"15:00",
	"15:45",
	"16:30",
	"17:15",
	"18:00",
	"18:45",
	"19:30",
	"20:00",
}

// NewTimeGrid создает сетку из перечня времён
// Каждое значение проходит валидацию формата; порядок сохраняется как есть
func NewTimeGrid(slots []types.TimeString) (TimeGrid, error) {
	if len(slots) == 0 {
		return TimeGrid{}, fmt.Errorf("time grid must not be empty")
	}

	copied := make([]types.TimeString, len(slots))
	for i, slot := range slots {
		if err := slot.Validate(); err != nil {
			return TimeGrid{}, fmt.Errorf("time grid entry %d: %w", i, err)
		}
		copied[i] = slot
	}

	return TimeGrid{slots: copied}, nil
}

// DefaultTimeGrid возвращает сетку по умолчанию (09:00 ... 20:00)
func DefaultTimeGrid() TimeGrid {
	grid, err := NewTimeGrid(defaultSlots)
	if err != nil {
		// Значения захардкожены и валидны
		panic(err)
	}
	return grid
}

// Slots возвращает копию перечня слотов в исходном порядке
func (g TimeGrid) Slots() []types.TimeString {
	copied := make([]types.TimeString, len(g.slots))
	copy(copied, g.slots)
	return copied
}

// Contains проверяет, входит ли время в сетку
func (g TimeGrid) Contains(t types.TimeString) bool {
	for _, slot := range g.slots {
		if slot == t {
			return true
		}
	}
	return false
}

// Len возвращает количество слотов в сетке
func (g TimeGrid) Len() int {
	return len(g.slots)
}
