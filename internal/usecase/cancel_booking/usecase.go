package cancel_booking

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/barberhub/booking-service/internal/infra/storage/booking"
)

// Request модель запроса на отмену бронирования
type Request struct {
	UserID    int64 // ID аутентифицированного пользователя
	BookingID int64 // ID бронирования
}

// UseCase use case для отмены (удаления) бронирования
type UseCase struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute выполняет отмену бронирования
// Удалять бронирование может только его владелец. Несуществующий ID - no-op:
// повторная отмена и отмена уже удалённого завершаются успешно
func (uc *UseCase) Execute(ctx context.Context, req *Request) error {
	uc.logger.Info("CancelBooking: user=%d, booking=%d", req.UserID, req.BookingID)

	if req.UserID <= 0 {
		uc.logger.Warn("CancelBooking: no authenticated user")
		return ErrUnauthenticated
	}
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Info("CancelBooking: booking id=%d not found, nothing to do", req.BookingID)
			return nil
		}
		uc.logger.Error("CancelBooking: failed to get booking id=%d: %v", req.BookingID, err)
		return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	if booking.UserID != req.UserID {
		uc.logger.Warn("CancelBooking: user=%d is not the owner of booking id=%d", req.UserID, req.BookingID)
		return ErrAccessDenied
	}

	if err := uc.bookingRepo.Delete(ctx, req.BookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			// Кто-то удалил бронирование между чтением и удалением
			uc.logger.Info("CancelBooking: booking id=%d already deleted", req.BookingID)
			return nil
		}
		uc.logger.Error("CancelBooking: failed to delete booking id=%d: %v", req.BookingID, err)
		return fmt.Errorf("%w: failed to delete booking: %v", ErrInternal, err)
	}

	uc.logger.Info("CancelBooking: successfully deleted booking id=%d", req.BookingID)
	return nil
}
