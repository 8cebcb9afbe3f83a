package join_waitlist

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DayCenterService/internal/api/middleware"
	waitlistService "github.com/m04kA/SMC-DayCenterService/internal/service/waitlist"
	"github.com/m04kA/SMC-DayCenterService/internal/service/waitlist/models"
	"github.com/m04kA/SMC-DayCenterService/pkg/orgtime"
)

// Понедельник 2025-10-13, полдень по Лос-Анджелесу
var testNow = time.Date(2025, 10, 13, 19, 0, 0, 0, time.UTC)

type fakeService struct {
	captured *models.JoinWaitlistRequest
	resp     *models.WaitlistEntryResponse
	err      error
}

func (f *fakeService) Join(_ context.Context, req *models.JoinWaitlistRequest) (*models.WaitlistEntryResponse, error) {
	f.captured = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func postWaitlist(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/waitlist", strings.NewReader(body))
	req.Header.Set("X-User-ID", "5")
	rec := httptest.NewRecorder()
	middleware.Auth(http.HandlerFunc(h.Handle)).ServeHTTP(rec, req)
	return rec
}

func newHandler(t *testing.T, svc *fakeService) *Handler {
	t.Helper()
	clock, err := orgtime.NewFixed("America/Los_Angeles", testNow)
	require.NoError(t, err)
	return NewHandler(svc, clock, nopLogger{})
}

func TestHandle_JoinsWaitlist(t *testing.T) {
	svc := &fakeService{resp: &models.WaitlistEntryResponse{
		ID: 3, GuestID: 42, Date: "2025-10-13", ServiceType: "laundry",
	}}
	h := newHandler(t, svc)

	rec := postWaitlist(t, h, `{"guestId":42,"date":"2025-10-13","serviceType":"laundry"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, svc.captured)
	assert.Equal(t, int64(42), svc.captured.GuestID)
	// Дата - календарный день организации, не полночь UTC
	assert.Equal(t, "2025-10-13", svc.captured.Date.Format(orgtime.DateFormat))
}

func TestHandle_FreeSlotsConflict(t *testing.T) {
	svc := &fakeService{err: waitlistService.ErrSlotsAvailable}
	h := newHandler(t, svc)

	rec := postWaitlist(t, h, `{"guestId":42,"date":"2025-10-13","serviceType":"shower"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandle_ClosedDay(t *testing.T) {
	svc := &fakeService{err: waitlistService.ErrClosedDay}
	h := newHandler(t, svc)

	rec := postWaitlist(t, h, `{"guestId":42,"date":"2025-10-12","serviceType":"shower"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InvalidDate(t *testing.T) {
	svc := &fakeService{}
	h := newHandler(t, svc)

	rec := postWaitlist(t, h, `{"guestId":42,"date":"13.10.2025","serviceType":"shower"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, svc.captured)
}
