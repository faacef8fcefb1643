package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barberhub/booking-service/internal/domain"
	bookingRepo "github.com/barberhub/booking-service/internal/infra/storage/booking"
	catalogRepo "github.com/barberhub/booking-service/internal/infra/storage/catalog"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeBookingRepo struct {
	existing  []*domain.Booking
	createErr error
	created   []*domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	stored := *booking
	stored.ID = int64(len(f.created) + 1)
	stored.CreatedAt = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	stored.UpdatedAt = stored.CreatedAt
	f.created = append(f.created, &stored)
	return &stored, nil
}

func (f *fakeBookingRepo) GetByServiceAndDate(_ context.Context, _ int64, _ time.Time) ([]*domain.Booking, error) {
	return f.existing, nil
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

// fakeTxManager выполняет функцию без реальной транзакции
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func validRequest() *Request {
	return &Request{
		UserID:    7,
		ServiceID: 1,
		Date:      time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime: "09:45",
	}
}

func newUseCase(repo *fakeBookingRepo, catalog *fakeCatalogRepo) *UseCase {
	return NewUseCase(repo, catalog, fakeTxManager{}, domain.DefaultTimeGrid(), nopLogger{})
}

func TestCreateBooking_Execute(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newUseCase(repo, &fakeCatalogRepo{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, int64(7), resp.UserID)
	assert.Equal(t, int64(1), resp.ServiceID)
	assert.Equal(t, time.Date(2026, 9, 15, 9, 45, 0, 0, time.UTC), resp.ScheduledAt)
	require.Len(t, repo.created, 1)
}

func TestCreateBooking_Execute_Unauthenticated(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newUseCase(repo, &fakeCatalogRepo{})

	req := validRequest()
	req.UserID = 0

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrUnauthenticated)
	// Анонимный запрос не должен ничего записать
	assert.Empty(t, repo.created)
}

func TestCreateBooking_Execute_SlotNotInGrid(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newUseCase(repo, &fakeCatalogRepo{})

	req := validRequest()
	req.StartTime = "10:00"

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrSlotNotInGrid)
	assert.Empty(t, repo.created)
}

func TestCreateBooking_Execute_SlotTaken(t *testing.T) {
	repo := &fakeBookingRepo{
		existing: []*domain.Booking{
			{ScheduledAt: time.Date(2026, 9, 15, 9, 45, 0, 0, time.UTC)},
		},
	}
	uc := newUseCase(repo, &fakeCatalogRepo{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Empty(t, repo.created)
}

func TestCreateBooking_Execute_ConcurrentInsert(t *testing.T) {
	// Конкурентная транзакция успела первой: БД вернула нарушение уникальности
	repo := &fakeBookingRepo{createErr: bookingRepo.ErrSlotTaken}
	uc := newUseCase(repo, &fakeCatalogRepo{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestCreateBooking_Execute_ServiceNotFound(t *testing.T) {
	uc := newUseCase(&fakeBookingRepo{}, &fakeCatalogRepo{err: catalogRepo.ErrServiceNotFound})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestCreateBooking_Execute_InvalidInput(t *testing.T) {
	uc := newUseCase(&fakeBookingRepo{}, &fakeCatalogRepo{})

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{name: "missing service", mutate: func(r *Request) { r.ServiceID = 0 }},
		{name: "missing date", mutate: func(r *Request) { r.Date = time.Time{} }},
		{name: "missing time", mutate: func(r *Request) { r.StartTime = "" }},
		{name: "malformed time", mutate: func(r *Request) { r.StartTime = "9:45" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
