package get_user_bookings

import (
	"errors"
	"net/http"

	"github.com/barberhub/booking-service/internal/api/handlers"
	"github.com/barberhub/booking-service/internal/api/middleware"
	"github.com/barberhub/booking-service/internal/service/bookings"
)

const (
	msgUnauthorized = "требуется авторизация"
	msgInvalidUser  = "некорректный ID пользователя"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/me/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID := middleware.UserID(r.Context())
	if userID <= 0 {
		h.logger.Warn("GET /users/me/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	// Получаем бронирования пользователя
	result, err := h.service.GetUserBookings(r.Context(), userID)
	if err != nil {
		if errors.Is(err, bookings.ErrInvalidInput) {
			h.logger.Warn("GET /users/me/bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidUser)
			return
		}
		h.logger.Error("GET /users/me/bookings - Failed to get bookings: user_id=%d, error=%v",
			userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /users/me/bookings - Bookings retrieved successfully: user_id=%d, confirmed=%d, finished=%d",
		userID, len(result.Confirmed), len(result.Finished))
	handlers.RespondJSON(w, http.StatusOK, result)
}
