package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/barberhub/booking-service/internal/domain"
	catalogRepo "github.com/barberhub/booking-service/internal/infra/storage/catalog"
)

// UseCase use case для получения свободных слотов услуги на дату
type UseCase struct {
	bookingRepo BookingRepository
	catalogRepo CatalogRepository
	grid        domain.TimeGrid
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
// Временная сетка передаётся как неизменяемое значение конфигурации
func NewUseCase(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	grid domain.TimeGrid,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		catalogRepo: catalogRepo,
		grid:        grid,
		logger:      logger,
	}
}

// Execute выполняет use case получения свободных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: service=%d, date=%s",
		req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование услуги
	if _, err := uc.catalogRepo.GetServiceByID(ctx, req.ServiceID); err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 3. Получаем бронирования услуги на указанный день
	bookings, err := uc.bookingRepo.GetByServiceAndDate(ctx, req.ServiceID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 4. Фильтруем сетку по занятым слотам
	slots := availableSlots(uc.grid, bookings)

	uc.logger.Info("GetAvailableSlots: %d of %d slots free for service=%d, date=%s",
		len(slots), uc.grid.Len(), req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		ServiceID: req.ServiceID,
		Date:      req.Date,
		Slots:     slots,
	}, nil
}
