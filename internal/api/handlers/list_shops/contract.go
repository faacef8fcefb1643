package list_shops

import (
	"context"

	"github.com/barberhub/booking-service/internal/service/catalog/models"
)

type CatalogService interface {
	ListShops(ctx context.Context) (*models.ShopListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
