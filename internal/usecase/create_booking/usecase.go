package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/barberhub/booking-service/internal/domain"
	bookingRepo "github.com/barberhub/booking-service/internal/infra/storage/booking"
	catalogRepo "github.com/barberhub/booking-service/internal/infra/storage/catalog"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo BookingRepository
	catalogRepo CatalogRepository
	txManager   TransactionManager
	grid        domain.TimeGrid
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	txManager TransactionManager,
	grid domain.TimeGrid,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		catalogRepo: catalogRepo,
		txManager:   txManager,
		grid:        grid,
		logger:      logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка доступности и вставка идут в сериализуемой транзакции по свежему
// состоянию БД, а ограничение уникальности (service_id, scheduled_at) закрывает
// оставшееся окно гонки между конкурентными запросами
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, service=%d, date=%s, time=%s",
		req.UserID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных (включая предусловие аутентификации)
	if err := validateRequest(req, uc.grid); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование услуги
	if _, err := uc.catalogRepo.GetServiceByID(ctx, req.ServiceID); err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 3. Собираем абсолютную метку времени из даты и слота
	scheduledAt, err := req.StartTime.CombineWithDate(req.Date)
	if err != nil {
		uc.logger.Warn("CreateBooking: failed to combine date and time: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var result *domain.Booking

	// 4. Проверка доступности и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Перечитываем бронирования дня с блокировкой (FOR UPDATE)
		bookings, err := uc.bookingRepo.GetByServiceAndDate(txCtx, req.ServiceID, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 4.2. Инвариант: не более одного бронирования на (услуга, момент времени)
		if slotTaken(req, bookings) {
			uc.logger.Warn("CreateBooking: slot %s already taken for service=%d on %s",
				req.StartTime, req.ServiceID, req.Date.Format(domain.DateFormat))
			return ErrSlotTaken
		}

		// 4.3. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
			UserID:      req.UserID,
			ServiceID:   req.ServiceID,
			ScheduledAt: scheduledAt,
		})
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				// Конкурентная транзакция успела первой
				return ErrSlotTaken
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return &Response{
		ID:          result.ID,
		UserID:      result.UserID,
		ServiceID:   result.ServiceID,
		ScheduledAt: result.ScheduledAt,
		CreatedAt:   result.CreatedAt,
		UpdatedAt:   result.UpdatedAt,
	}, nil
}
