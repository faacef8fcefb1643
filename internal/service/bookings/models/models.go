package models

import (
	"time"

	"github.com/barberhub/booking-service/internal/domain"
)

// Статусы бронирования - производная классификация по времени, в БД не хранится
const (
	StatusConfirmed = "confirmed" // метка времени строго в будущем
	StatusFinished  = "finished"  // метка времени в прошлом
)

// BookingResponse бронирование с данными услуги и барбершопа для отображения
type BookingResponse struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"userId"`
	ServiceID   int64  `json:"serviceId"`
	ScheduledAt string `json:"scheduledAt"` // ISO 8601
	Status      string `json:"status"`      // "confirmed" | "finished"

	// Денормализованные данные услуги и барбершопа
	ServiceName  string   `json:"serviceName"`
	ServicePrice float64  `json:"servicePrice"`
	ServiceImage string   `json:"serviceImage,omitempty"`
	ShopID       int64    `json:"shopId"`
	ShopName     string   `json:"shopName"`
	ShopAddress  string   `json:"shopAddress"`
	ShopImageURL string   `json:"shopImageUrl,omitempty"`
	ShopPhones   []string `json:"shopPhones,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserBookingsResponse история бронирований пользователя
// Подтверждённые - ближайшее первым, завершённые - последнее первым
type UserBookingsResponse struct {
	Confirmed []BookingResponse `json:"confirmed"`
	Finished  []BookingResponse `json:"finished"`
}

// FromBookingDetails конвертирует доменную модель в DTO
// Статус вычисляется относительно переданного момента времени
func FromBookingDetails(d *domain.BookingDetails, now time.Time) *BookingResponse {
	if d == nil {
		return nil
	}

	status := StatusFinished
	if d.IsConfirmed(now) {
		status = StatusConfirmed
	}

	return &BookingResponse{
		ID:           d.ID,
		UserID:       d.UserID,
		ServiceID:    d.ServiceID,
		ScheduledAt:  d.ScheduledAt.Format(time.RFC3339),
		Status:       status,
		ServiceName:  d.ServiceName,
		ServicePrice: d.ServicePrice,
		ServiceImage: d.ServiceImage,
		ShopID:       d.ShopID,
		ShopName:     d.ShopName,
		ShopAddress:  d.ShopAddress,
		ShopImageURL: d.ShopImageURL,
		ShopPhones:   d.ShopPhones,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// SplitByStatus раскладывает бронирования на подтверждённые и завершённые
// Вход отсортирован по scheduled_at по возрастанию: подтверждённые остаются
// в этом порядке (ближайшее первым), завершённые разворачиваются (свежее первым)
func SplitByStatus(details []*domain.BookingDetails, now time.Time) *UserBookingsResponse {
	resp := &UserBookingsResponse{
		Confirmed: make([]BookingResponse, 0),
		Finished:  make([]BookingResponse, 0),
	}

	for _, d := range details {
		dto := FromBookingDetails(d, now)
		if dto.Status == StatusConfirmed {
			resp.Confirmed = append(resp.Confirmed, *dto)
		} else {
			resp.Finished = append(resp.Finished, *dto)
		}
	}

	// Разворачиваем завершённые: последние прошедшие - в начало
	for i, j := 0, len(resp.Finished)-1; i < j; i, j = i+1, j-1 {
		resp.Finished[i], resp.Finished[j] = resp.Finished[j], resp.Finished[i]
	}

	return resp
}
