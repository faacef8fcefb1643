package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barberhub/booking-service/internal/domain"
	catalogRepo "github.com/barberhub/booking-service/internal/infra/storage/catalog"
	"github.com/barberhub/booking-service/internal/service/bookings/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTimeProvider struct {
	now time.Time
}

func (p fixedTimeProvider) Now() time.Time {
	return p.now
}

type fakeCatalogRepo struct {
	byID   *domain.BookingDetails
	byUser []*domain.BookingDetails
	err    error
}

func (f *fakeCatalogRepo) GetBookingDetailsByID(_ context.Context, _ int64) (*domain.BookingDetails, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byID, nil
}

func (f *fakeCatalogRepo) GetBookingDetailsByUserID(_ context.Context, _ int64) ([]*domain.BookingDetails, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byUser, nil
}

func detailsAt(id, userID int64, scheduledAt time.Time) *domain.BookingDetails {
	return &domain.BookingDetails{
		Booking: domain.Booking{
			ID:          id,
			UserID:      userID,
			ServiceID:   1,
			ScheduledAt: scheduledAt,
		},
		ServiceName:  "Стрижка",
		ServicePrice: 1500,
		ShopID:       1,
		ShopName:     "BarberHub Central",
		ShopAddress:  "ул. Пушкина, 10",
	}
}

func newTestService(repo *fakeCatalogRepo, now time.Time) *Service {
	svc := NewService(repo, nopLogger{})
	svc.timeProvider = fixedTimeProvider{now: now}
	return svc
}

func TestService_GetByID(t *testing.T) {
	now := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)
	repo := &fakeCatalogRepo{byID: detailsAt(5, 7, now.Add(2*time.Hour))}
	svc := newTestService(repo, now)

	resp, err := svc.GetByID(context.Background(), 5, 7)
	require.NoError(t, err)

	assert.Equal(t, int64(5), resp.ID)
	assert.Equal(t, models.StatusConfirmed, resp.Status)
	assert.Equal(t, "Стрижка", resp.ServiceName)
}

func TestService_GetByID_NotOwner(t *testing.T) {
	now := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)
	repo := &fakeCatalogRepo{byID: detailsAt(5, 7, now)}
	svc := newTestService(repo, now)

	_, err := svc.GetByID(context.Background(), 5, 8)

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_GetByID_NotFound(t *testing.T) {
	repo := &fakeCatalogRepo{err: catalogRepo.ErrBookingNotFound}
	svc := newTestService(repo, time.Now())

	_, err := svc.GetByID(context.Background(), 5, 7)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_GetUserBookings_SplitByStatus(t *testing.T) {
	now := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)

	// Репозиторий отдаёт бронирования по возрастанию scheduled_at
	repo := &fakeCatalogRepo{byUser: []*domain.BookingDetails{
		detailsAt(1, 7, now.Add(-48*time.Hour)),
		detailsAt(2, 7, now.Add(-2*time.Hour)),
		detailsAt(3, 7, now.Add(time.Hour)),
		detailsAt(4, 7, now.Add(24*time.Hour)),
	}}
	svc := newTestService(repo, now)

	resp, err := svc.GetUserBookings(context.Background(), 7)
	require.NoError(t, err)

	// Подтверждённые: ближайшее первым
	require.Len(t, resp.Confirmed, 2)
	assert.Equal(t, int64(3), resp.Confirmed[0].ID)
	assert.Equal(t, int64(4), resp.Confirmed[1].ID)

	// Завершённые: последнее прошедшее первым
	require.Len(t, resp.Finished, 2)
	assert.Equal(t, int64(2), resp.Finished[0].ID)
	assert.Equal(t, int64(1), resp.Finished[1].ID)
}

func TestService_GetUserBookings_Empty(t *testing.T) {
	svc := newTestService(&fakeCatalogRepo{}, time.Now())

	resp, err := svc.GetUserBookings(context.Background(), 7)
	require.NoError(t, err)

	// Пустые списки, а не nil
	assert.NotNil(t, resp.Confirmed)
	assert.NotNil(t, resp.Finished)
	assert.Empty(t, resp.Confirmed)
	assert.Empty(t, resp.Finished)
}

func TestService_GetUserBookings_InvalidUser(t *testing.T) {
	svc := newTestService(&fakeCatalogRepo{}, time.Now())

	_, err := svc.GetUserBookings(context.Background(), 0)

	assert.ErrorIs(t, err, ErrInvalidInput)
}
