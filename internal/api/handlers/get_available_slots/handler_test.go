package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailableSlots "github.com/barberhub/booking-service/internal/usecase/get_available_slots"
	"github.com/barberhub/booking-service/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	resp *getAvailableSlots.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func newRouter(uc *fakeUseCase) *mux.Router {
	r := mux.NewRouter()
	handler := NewHandler(uc, nopLogger{})
	r.HandleFunc("/api/v1/services/{serviceId}/available-slots", handler.Handle).Methods(http.MethodGet)
	return r
}

func TestHandler_Handle(t *testing.T) {
	uc := &fakeUseCase{resp: &getAvailableSlots.Response{
		ServiceID: 1,
		Date:      time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		Slots:     []types.TimeString{"09:00", "09:45"},
	}}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/services/1/available-slots?date=2026-09-15", nil)
	rec := httptest.NewRecorder()

	newRouter(uc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, int64(1), body.ServiceID)
	assert.Equal(t, "2026-09-15", body.Date)
	assert.Equal(t, []string{"09:00", "09:45"}, body.Slots)
}

func TestHandler_Handle_MissingDate(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/services/1/available-slots", nil)
	rec := httptest.NewRecorder()

	newRouter(&fakeUseCase{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Handle_BadDate(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/services/1/available-slots?date=15-09-2026", nil)
	rec := httptest.NewRecorder()

	newRouter(&fakeUseCase{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Handle_BadServiceID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/services/abc/available-slots?date=2026-09-15", nil)
	rec := httptest.NewRecorder()

	newRouter(&fakeUseCase{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Handle_ServiceNotFound(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/services/42/available-slots?date=2026-09-15", nil)
	rec := httptest.NewRecorder()

	newRouter(&fakeUseCase{err: getAvailableSlots.ErrServiceNotFound}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
