package get_shop

import (
	"context"

	"github.com/barberhub/booking-service/internal/service/catalog/models"
)

type CatalogService interface {
	GetShop(ctx context.Context, shopID int64) (*models.ShopWithServicesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
