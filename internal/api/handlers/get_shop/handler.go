package get_shop

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/barberhub/booking-service/internal/api/handlers"
	"github.com/barberhub/booking-service/internal/service/catalog"
)

const (
	msgInvalidShopID = "некорректный ID барбершопа"
	msgShopNotFound  = "барбершоп не найден"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/shops/{shopId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем shopId из URL
	vars := mux.Vars(r)
	shopIDStr := vars["shopId"]

	shopID, err := strconv.ParseInt(shopIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /shops/{id} - Invalid shop ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidShopID)
		return
	}

	result, err := h.service.GetShop(r.Context(), shopID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrShopNotFound):
			h.logger.Warn("GET /shops/{id} - Shop not found: shop_id=%d", shopID)
			handlers.RespondNotFound(w, msgShopNotFound)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("GET /shops/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidShopID)

		default:
			h.logger.Error("GET /shops/{id} - Failed to get shop: shop_id=%d, error=%v", shopID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /shops/{id} - Shop retrieved successfully: shop_id=%d, services=%d",
		shopID, len(result.Services))
	handlers.RespondJSON(w, http.StatusOK, result)
}
