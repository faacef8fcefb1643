package list_shops

import (
	"net/http"

	"github.com/barberhub/booking-service/internal/api/handlers"
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

// Handle GET /api/v1/shops
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListShops(r.Context())
	if err != nil {
		h.logger.Error("GET /shops - Failed to list shops: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /shops - Shops retrieved successfully: count=%d", len(result.Shops))
	handlers.RespondJSON(w, http.StatusOK, result)
}
