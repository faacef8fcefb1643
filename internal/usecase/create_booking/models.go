package create_booking

import (
	"time"

	"github.com/barberhub/booking-service/pkg/types"
)

// Request модель запроса на создание бронирования
// UserID берётся из сессии, а не из тела запроса
type Request struct {
	UserID    int64            // ID аутентифицированного пользователя
	ServiceID int64            // ID услуги
	Date      time.Time        // Календарная дата (без времени)
	StartTime types.TimeString // Слот временной сетки (например, "09:45")
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64     // ID созданного бронирования
	UserID      int64     // ID пользователя
	ServiceID   int64     // ID услуги
	ScheduledAt time.Time // Собранная метка времени: дата + слот

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
