package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barberhub/booking-service/pkg/types"
)

func TestDefaultTimeGrid(t *testing.T) {
	grid := DefaultTimeGrid()

	require.Equal(t, 16, grid.Len())

	slots := grid.Slots()
	assert.Equal(t, types.TimeString("09:00"), slots[0])
	assert.Equal(t, types.TimeString("20:00"), slots[len(slots)-1])

	// Порядок возрастающий
	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].IsBefore(slots[i]),
			"slot %s must be before %s", slots[i-1], slots[i])
	}
}

func TestNewTimeGrid(t *testing.T) {
	grid, err := NewTimeGrid([]types.TimeString{"10:00", "11:00"})
	require.NoError(t, err)
	assert.Equal(t, 2, grid.Len())
	assert.True(t, grid.Contains("10:00"))
	assert.False(t, grid.Contains("12:00"))
}

func TestNewTimeGrid_Empty(t *testing.T) {
	_, err := NewTimeGrid(nil)
	require.Error(t, err)
}

func TestNewTimeGrid_InvalidEntry(t *testing.T) {
	_, err := NewTimeGrid([]types.TimeString{"10:00", "25:99"})
	require.Error(t, err)
}

func TestTimeGrid_SlotsReturnsCopy(t *testing.T) {
	grid := DefaultTimeGrid()

	slots := grid.Slots()
	slots[0] = "00:00"

	assert.Equal(t, types.TimeString("09:00"), grid.Slots()[0])
}
