package catalog

import (
	"context"

	"github.com/barberhub/booking-service/internal/domain"
)

// CatalogRepository интерфейс репозитория каталога
type CatalogRepository interface {
	ListShops(ctx context.Context) ([]*domain.Shop, error)
	GetShopByID(ctx context.Context, id int64) (*domain.Shop, error)
	ListServicesByShop(ctx context.Context, shopID int64) ([]*domain.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
