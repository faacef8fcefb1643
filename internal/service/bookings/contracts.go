package bookings

import (
	"context"
	"time"

	"github.com/barberhub/booking-service/internal/domain"
)

// CatalogRepository интерфейс репозитория каталога
// Путь отображения читает бронирования сразу с присоединёнными услугой и барбершопом
type CatalogRepository interface {
	GetBookingDetailsByID(ctx context.Context, bookingID int64) (*domain.BookingDetails, error)
	GetBookingDetailsByUserID(ctx context.Context, userID int64) ([]*domain.BookingDetails, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
