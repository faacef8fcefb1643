package catalog

import (
	"context"
	"errors"
	"fmt"

	catalogRepo "github.com/barberhub/booking-service/internal/infra/storage/catalog"
	"github.com/barberhub/booking-service/internal/service/catalog/models"
)

// Service сервис каталога барбершопов и услуг
// Чистое отображение данных: никаких инвариантов бронирования здесь нет
type Service struct {
	catalogRepo CatalogRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(catalogRepo CatalogRepository, logger Logger) *Service {
	return &Service{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// ListShops возвращает все барбершопы
func (s *Service) ListShops(ctx context.Context) (*models.ShopListResponse, error) {
	shops, err := s.catalogRepo.ListShops(ctx)
	if err != nil {
		s.logger.Error("ListShops: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListShops - repository error: %v", ErrInternal, err)
	}

	resp := &models.ShopListResponse{Shops: make([]models.ShopResponse, 0, len(shops))}
	for _, shop := range shops {
		resp.Shops = append(resp.Shops, models.FromDomainShop(shop))
	}

	s.logger.Info("ListShops: fetched %d shops", len(resp.Shops))
	return resp, nil
}

// GetShop возвращает барбершоп вместе с его услугами
func (s *Service) GetShop(ctx context.Context, shopID int64) (*models.ShopWithServicesResponse, error) {
	if shopID <= 0 {
		return nil, fmt.Errorf("%w: shopID must be positive", ErrInvalidInput)
	}

	shop, err := s.catalogRepo.GetShopByID(ctx, shopID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrShopNotFound) {
			s.logger.Warn("GetShop: shop id=%d not found", shopID)
			return nil, ErrShopNotFound
		}
		s.logger.Error("GetShop: repository error for shop id=%d: %v", shopID, err)
		return nil, fmt.Errorf("%w: GetShop - repository error: %v", ErrInternal, err)
	}

	services, err := s.catalogRepo.ListServicesByShop(ctx, shopID)
	if err != nil {
		s.logger.Error("GetShop: failed to list services for shop id=%d: %v", shopID, err)
		return nil, fmt.Errorf("%w: GetShop - failed to list services: %v", ErrInternal, err)
	}

	resp := &models.ShopWithServicesResponse{
		ShopResponse: models.FromDomainShop(shop),
		Services:     make([]models.ServiceResponse, 0, len(services)),
	}
	for _, service := range services {
		resp.Services = append(resp.Services, models.FromDomainService(service))
	}

	s.logger.Info("GetShop: fetched shop id=%d with %d services", shopID, len(resp.Services))
	return resp, nil
}
