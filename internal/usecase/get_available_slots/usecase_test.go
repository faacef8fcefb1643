package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barberhub/booking-service/internal/domain"
	catalogRepo "github.com/barberhub/booking-service/internal/infra/storage/catalog"
	"github.com/barberhub/booking-service/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) GetByServiceAndDate(_ context.Context, _ int64, _ time.Time) ([]*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.bookings, nil
}

type fakeCatalogRepo struct {
	err error
}

func (f *fakeCatalogRepo) GetServiceByID(_ context.Context, id int64) (*domain.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Service{ID: id, ShopID: 1, Name: "Стрижка", Price: 1500}, nil
}

func TestGetAvailableSlots_Execute(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	uc := NewUseCase(
		&fakeBookingRepo{bookings: []*domain.Booking{bookingAt(9, 45)}},
		&fakeCatalogRepo{},
		domain.DefaultTimeGrid(),
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: date})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ServiceID)
	assert.Equal(t, date, resp.Date)
	assert.Len(t, resp.Slots, 15)
	assert.NotContains(t, resp.Slots, types.TimeString("09:45"))
}

func TestGetAvailableSlots_Execute_ServiceNotFound(t *testing.T) {
	uc := NewUseCase(
		&fakeBookingRepo{},
		&fakeCatalogRepo{err: catalogRepo.ErrServiceNotFound},
		domain.DefaultTimeGrid(),
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{
		ServiceID: 42,
		Date:      time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestGetAvailableSlots_Execute_Validation(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeCatalogRepo{}, domain.DefaultTimeGrid(), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{ServiceID: 0, Date: time.Now()})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{ServiceID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetAvailableSlots_Execute_RepositoryError(t *testing.T) {
	uc := NewUseCase(
		&fakeBookingRepo{err: errors.New("connection refused")},
		&fakeCatalogRepo{},
		domain.DefaultTimeGrid(),
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{
		ServiceID: 1,
		Date:      time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrInternal)
}
