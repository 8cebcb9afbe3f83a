package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DayCenterService/internal/domain"
	"github.com/m04kA/SMC-DayCenterService/pkg/orgtime"
	"github.com/m04kA/SMC-DayCenterService/pkg/ptr"
	"github.com/m04kA/SMC-DayCenterService/pkg/types"
)

const testTimezone = "America/Los_Angeles"

// 2025-10-13 12:00 в Лос-Анджелесе (понедельник)
var testNow = time.Date(2025, 10, 13, 19, 0, 0, 0, time.UTC)

type fakeBookingRepo struct {
	dayBookings []*domain.Booking
}

func (f *fakeBookingRepo) GetByDate(_ context.Context, _ domain.DayBookingsFilter) ([]*domain.Booking, error) {
	return f.dayBookings, nil
}

type fakeBlockRegistry struct {
	blocked map[types.TimeString]struct{}
}

func (f *fakeBlockRegistry) GetBlockedStartTimes(_ context.Context, _ time.Time, _ domain.ServiceType) (map[types.TimeString]struct{}, error) {
	if f.blocked == nil {
		return map[types.TimeString]struct{}{}, nil
	}
	return f.blocked, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newUseCase(t *testing.T, bookings *fakeBookingRepo, blocks *fakeBlockRegistry) *UseCase {
	t.Helper()

	clock, err := orgtime.NewFixed(testTimezone, testNow)
	require.NoError(t, err)

	return NewUseCase(bookings, blocks, clock, nopLogger{})
}

func showerBooking(startTime types.TimeString, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ServiceType: domain.ServiceShower,
		Modality:    domain.ModalityOnsite,
		StartTime:   ptr.Ptr(startTime),
		Status:      status,
	}
}

func TestExecute_AnnotatesSlots(t *testing.T) {
	bookings := &fakeBookingRepo{dayBookings: []*domain.Booking{
		showerBooking("07:30", domain.StatusBooked),
		showerBooking("07:30", domain.StatusWaiting),
		showerBooking("08:00", domain.StatusBooked),
	}}
	blocks := &fakeBlockRegistry{blocked: map[types.TimeString]struct{}{"09:00": {}}}
	uc := newUseCase(t, bookings, blocks)

	resp, err := uc.Execute(context.Background(), &Request{
		Date:        testNow,
		ServiceType: domain.ServiceShower,
		Modality:    domain.ModalityOnsite,
	})
	require.NoError(t, err)

	// Будний день: 8 слотов душа 07:30..11:00
	require.Len(t, resp.Slots, 8)

	first := resp.Slots[0]
	assert.Equal(t, types.TimeString("07:30"), first.StartTime)
	assert.Equal(t, 30, first.DurationMinutes)
	assert.Equal(t, 2, first.Occupancy)
	assert.Equal(t, 2, first.Capacity)
	assert.False(t, first.Blocked)

	assert.Equal(t, 1, resp.Slots[1].Occupancy)
	assert.Equal(t, 0, resp.Slots[2].Occupancy)

	// 09:00 - четвертый слот каталога
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[3].StartTime)
	assert.True(t, resp.Slots[3].Blocked)
}

func TestExecute_OffsiteHasNoSlots(t *testing.T) {
	uc := newUseCase(t, &fakeBookingRepo{}, &fakeBlockRegistry{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date:        testNow,
		ServiceType: domain.ServiceLaundry,
		Modality:    domain.ModalityOffsite,
	})
	require.NoError(t, err)

	assert.Empty(t, resp.Slots)
	assert.NotNil(t, resp.Slots)
}

func TestExecute_ClosedSundayEmpty(t *testing.T) {
	uc := newUseCase(t, &fakeBookingRepo{}, &fakeBlockRegistry{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date:        time.Date(2025, 10, 19, 19, 0, 0, 0, time.UTC), // воскресенье
		ServiceType: domain.ServiceShower,
		Modality:    domain.ModalityOnsite,
	})
	require.NoError(t, err)

	assert.Empty(t, resp.Slots)
}

func TestExecute_LaundryCapacityOne(t *testing.T) {
	uc := newUseCase(t, &fakeBookingRepo{}, &fakeBlockRegistry{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date:        testNow,
		ServiceType: domain.ServiceLaundry,
		Modality:    domain.ModalityOnsite,
	})
	require.NoError(t, err)

	// Будний день: 6 слотов стирки по 60 минут
	require.Len(t, resp.Slots, 6)
	assert.Equal(t, types.TimeString("08:00"), resp.Slots[0].StartTime)
	assert.Equal(t, 60, resp.Slots[0].DurationMinutes)
	assert.Equal(t, 1, resp.Slots[0].Capacity)
}

func TestExecute_Validation(t *testing.T) {
	uc := newUseCase(t, &fakeBookingRepo{}, &fakeBlockRegistry{})

	tests := []struct {
		name string
		req  *Request
	}{
		{name: "zero date", req: &Request{ServiceType: domain.ServiceShower, Modality: domain.ModalityOnsite}},
		{name: "unknown service", req: &Request{Date: testNow, ServiceType: "meals", Modality: domain.ModalityOnsite}},
		{name: "unknown modality", req: &Request{Date: testNow, ServiceType: domain.ServiceShower, Modality: "remote"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
