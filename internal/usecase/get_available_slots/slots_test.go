package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barberhub/booking-service/internal/domain"
	"github.com/barberhub/booking-service/pkg/types"
)

func bookingAt(hour, minute int) *domain.Booking {
	return &domain.Booking{
		ScheduledAt: time.Date(2026, 9, 15, hour, minute, 0, 0, time.UTC),
	}
}

func TestAvailableSlots_NoBookings(t *testing.T) {
	grid := domain.DefaultTimeGrid()

	slots := availableSlots(grid, nil)

	// Без бронирований сетка возвращается целиком и в исходном порядке
	assert.Equal(t, grid.Slots(), slots)
}

func TestAvailableSlots_SingleBooking(t *testing.T) {
	grid := domain.DefaultTimeGrid()

	slots := availableSlots(grid, []*domain.Booking{bookingAt(9, 45)})

	require.Len(t, slots, grid.Len()-1)
	assert.NotContains(t, slots, types.TimeString("09:45"))
	assert.Contains(t, slots, types.TimeString("09:00"))
	assert.Contains(t, slots, types.TimeString("10:30"))
}

func TestAvailableSlots_FullyBookedDay(t *testing.T) {
	grid := domain.DefaultTimeGrid()

	bookings := make([]*domain.Booking, 0, grid.Len())
	for _, slot := range grid.Slots() {
		bookings = append(bookings, bookingAt(slot.Hour(), slot.Minute()))
	}

	slots := availableSlots(grid, bookings)

	// Пустой список, а не nil: день полностью занят
	assert.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestAvailableSlots_OffGridBookingIsIgnored(t *testing.T) {
	grid := domain.DefaultTimeGrid()

	// Бронирование на 10:00 не совпадает ни с одним слотом сетки
	slots := availableSlots(grid, []*domain.Booking{bookingAt(10, 0)})

	assert.Equal(t, grid.Slots(), slots)
}

func TestAvailableSlots_DuplicateTimes(t *testing.T) {
	grid := domain.DefaultTimeGrid()

	// Несколько бронирований на одно время подавляют слот ровно один раз
	slots := availableSlots(grid, []*domain.Booking{bookingAt(12, 0), bookingAt(12, 0)})

	assert.Len(t, slots, grid.Len()-1)
	assert.NotContains(t, slots, types.TimeString("12:00"))
}

func TestAvailableSlots_OrderPreserved(t *testing.T) {
	grid := domain.DefaultTimeGrid()

	slots := availableSlots(grid, []*domain.Booking{bookingAt(9, 0), bookingAt(20, 0)})

	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].IsBefore(slots[i]))
	}
}
