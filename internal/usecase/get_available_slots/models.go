package get_available_slots

import (
	"time"

	"github.com/barberhub/booking-service/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	ServiceID int64     // ID услуги
	Date      time.Time // Календарная дата (без времени)
}

// Response модель ответа со списком свободных слотов
// Слоты идут в порядке временной сетки и являются её подмножеством
type Response struct {
	ServiceID int64              // ID услуги
	Date      time.Time          // Дата, на которую запрашивались слоты
	Slots     []types.TimeString // Свободные слоты
}
