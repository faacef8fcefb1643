package domain

import "time"

// Booking бронирование одного слота временной сетки
// Статус не хранится: бронирование считается подтверждённым, пока его время в будущем
type Booking struct {
	ID          int64
	UserID      int64
	ServiceID   int64
	ScheduledAt time.Time // Абсолютная метка времени: дата + время слота

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsConfirmed возвращает true, если время бронирования ещё впереди
func (b *Booking) IsConfirmed(now time.Time) bool {
	return b.ScheduledAt.After(now)
}

// IsFinished возвращает true, если время бронирования уже прошло
func (b *Booking) IsFinished(now time.Time) bool {
	return !b.IsConfirmed(now)
}

// OccupiesSlot проверяет, занимает ли бронирование слот с указанным временем суток
// Сравнение только по часам и минутам: дата зафиксирована фильтром выборки
func (b *Booking) OccupiesSlot(slotHour, slotMinute int) bool {
	return b.ScheduledAt.Hour() == slotHour && b.ScheduledAt.Minute() == slotMinute
}

// BookingDetails бронирование с денормализованными данными услуги и барбершопа
// Используется на пути отображения (история и карточка бронирования)
type BookingDetails struct {
	Booking

	ServiceName  string
	ServicePrice float64
	ServiceImage string
	ShopID       int64
	ShopName     string
	ShopAddress  string
	ShopImageURL string
	ShopPhones   []string
}
