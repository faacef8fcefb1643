package cancel_booking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/barberhub/booking-service/internal/domain"
	bookingRepo "github.com/barberhub/booking-service/internal/infra/storage/booking"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeBookingRepo struct {
	booking   *domain.Booking
	getErr    error
	deleteErr error
	deleted   []int64
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.booking, nil
}

func (f *fakeBookingRepo) Delete(_ context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func TestCancelBooking_Execute(t *testing.T) {
	repo := &fakeBookingRepo{booking: &domain.Booking{ID: 5, UserID: 7}}
	uc := NewUseCase(repo, nopLogger{})

	err := uc.Execute(context.Background(), &Request{UserID: 7, BookingID: 5})

	assert.NoError(t, err)
	assert.Equal(t, []int64{5}, repo.deleted)
}

func TestCancelBooking_Execute_Unauthenticated(t *testing.T) {
	repo := &fakeBookingRepo{booking: &domain.Booking{ID: 5, UserID: 7}}
	uc := NewUseCase(repo, nopLogger{})

	err := uc.Execute(context.Background(), &Request{UserID: 0, BookingID: 5})

	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.Empty(t, repo.deleted)
}

func TestCancelBooking_Execute_NotOwner(t *testing.T) {
	repo := &fakeBookingRepo{booking: &domain.Booking{ID: 5, UserID: 7}}
	uc := NewUseCase(repo, nopLogger{})

	err := uc.Execute(context.Background(), &Request{UserID: 8, BookingID: 5})

	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Empty(t, repo.deleted)
}

func TestCancelBooking_Execute_MissingBookingIsNoop(t *testing.T) {
	repo := &fakeBookingRepo{getErr: bookingRepo.ErrBookingNotFound}
	uc := NewUseCase(repo, nopLogger{})

	// Отмена несуществующего бронирования завершается успешно
	err := uc.Execute(context.Background(), &Request{UserID: 7, BookingID: 99})

	assert.NoError(t, err)
	assert.Empty(t, repo.deleted)
}

func TestCancelBooking_Execute_DeletedConcurrently(t *testing.T) {
	repo := &fakeBookingRepo{
		booking:   &domain.Booking{ID: 5, UserID: 7},
		deleteErr: bookingRepo.ErrBookingNotFound,
	}
	uc := NewUseCase(repo, nopLogger{})

	err := uc.Execute(context.Background(), &Request{UserID: 7, BookingID: 5})

	assert.NoError(t, err)
}

func TestCancelBooking_Execute_RepositoryError(t *testing.T) {
	repo := &fakeBookingRepo{getErr: errors.New("connection refused")}
	uc := NewUseCase(repo, nopLogger{})

	err := uc.Execute(context.Background(), &Request{UserID: 7, BookingID: 5})

	assert.ErrorIs(t, err, ErrInternal)
}
