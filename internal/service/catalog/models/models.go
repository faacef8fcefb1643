package models

import "github.com/barberhub/booking-service/internal/domain"

// ShopResponse барбершоп для отображения
type ShopResponse struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Address  string   `json:"address"`
	Phones   []string `json:"phones"`
	ImageURL string   `json:"imageUrl,omitempty"`
}

// ServiceResponse услуга для отображения
type ServiceResponse struct {
	ID          int64   `json:"id"`
	ShopID      int64   `json:"shopId"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl,omitempty"`
}

// ShopWithServicesResponse барбершоп вместе с его услугами
type ShopWithServicesResponse struct {
	ShopResponse
	Services []ServiceResponse `json:"services"`
}

// ShopListResponse список барбершопов
type ShopListResponse struct {
	Shops []ShopResponse `json:"shops"`
}

// FromDomainShop конвертирует доменную модель в DTO
func FromDomainShop(shop *domain.Shop) ShopResponse {
	phones := shop.Phones
	if phones == nil {
		phones = []string{}
	}
	return ShopResponse{
		ID:       shop.ID,
		Name:     shop.Name,
		Address:  shop.Address,
		Phones:   phones,
		ImageURL: shop.ImageURL,
	}
}

// FromDomainService конвертирует доменную модель в DTO
func FromDomainService(service *domain.Service) ServiceResponse {
	return ServiceResponse{
		ID:          service.ID,
		ShopID:      service.ShopID,
		Name:        service.Name,
		Description: service.Description,
		Price:       service.Price,
		ImageURL:    service.ImageURL,
	}
}
