package bookings

import (
	"context"
	"errors"
	"fmt"

	catalogRepo "github.com/barberhub/booking-service/internal/infra/storage/catalog"
	"github.com/barberhub/booking-service/internal/service/bookings/models"
)

// Service сервис пути отображения бронирований
// Отдаёт бронирования с присоединёнными услугой и барбершопом;
// статус confirmed/finished вычисляется по текущему времени
type Service struct {
	catalogRepo  CatalogRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(catalogRepo CatalogRepository, logger Logger) *Service {
	return &Service{
		catalogRepo:  catalogRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
// Пользователь может видеть только своё бронирование
func (s *Service) GetByID(ctx context.Context, bookingID int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", bookingID, userID)

	if bookingID <= 0 || userID <= 0 {
		return nil, fmt.Errorf("%w: bookingID and userID must be positive", ErrInvalidInput)
	}

	details, err := s.catalogRepo.GetBookingDetailsByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if details.UserID != userID {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, bookingID)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", bookingID)
	return models.FromBookingDetails(details, s.timeProvider.Now()), nil
}

// GetUserBookings получает историю бронирований пользователя,
// разложенную на подтверждённые и завершённые
func (s *Service) GetUserBookings(ctx context.Context, userID int64) (*models.UserBookingsResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d", userID)

	if userID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	details, err := s.catalogRepo.GetBookingDetailsByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	resp := models.SplitByStatus(details, s.timeProvider.Now())

	s.logger.Info("GetUserBookings: user=%d has %d confirmed and %d finished bookings",
		userID, len(resp.Confirmed), len(resp.Finished))
	return resp, nil
}
