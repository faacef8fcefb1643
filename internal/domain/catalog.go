package domain

import "time"

// Shop represents a barbershop
// Неизменяемая сущность с точки зрения движка бронирования
type Shop struct {
	ID       int64
	Name     string
	Address  string
	Phones   []string
	ImageURL string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Service represents a bookable barbershop service
// Принадлежит ровно одному барбершопу; движок бронирования её не изменяет
type Service struct {
	ID          int64
	ShopID      int64
	Name        string
	Description string
	Price       float64
	ImageURL    string

	CreatedAt time.Time
	UpdatedAt time.Time
}
