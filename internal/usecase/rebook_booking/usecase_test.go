package rebook_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DayCenterService/internal/domain"
	storage "github.com/m04kA/SMC-DayCenterService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-DayCenterService/pkg/orgtime"
	"github.com/m04kA/SMC-DayCenterService/pkg/ptr"
	"github.com/m04kA/SMC-DayCenterService/pkg/txmanager"
	"github.com/m04kA/SMC-DayCenterService/pkg/types"
)

const testTimezone = "America/Los_Angeles"

// 2025-10-13 12:00 в Лос-Анджелесе (понедельник)
var testNow = time.Date(2025, 10, 13, 19, 0, 0, 0, time.UTC)

// Дата из БД приходит как полночь UTC
var today = time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)

type slotUpdate struct {
	id        int64
	startTime *types.TimeString
	status    domain.BookingStatus
	updatedBy int64
}

type fakeBookingRepo struct {
	booking     *domain.Booking
	dayBookings []*domain.Booking
	updates     []slotUpdate
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if f.booking == nil || f.booking.ID != id {
		return nil, storage.ErrBookingNotFound
	}
	return f.booking, nil
}

func (f *fakeBookingRepo) GetByDate(_ context.Context, _ domain.DayBookingsFilter) ([]*domain.Booking, error) {
	return f.dayBookings, nil
}

func (f *fakeBookingRepo) UpdateSlotAndStatus(_ context.Context, id int64, startTime *types.TimeString, status domain.BookingStatus, updatedBy int64) error {
	f.updates = append(f.updates, slotUpdate{id: id, startTime: startTime, status: status, updatedBy: updatedBy})
	return nil
}

type fakeWaitlistRepo struct {
	created []*domain.WaitlistEntry
}

func (f *fakeWaitlistRepo) Create(_ context.Context, entry *domain.WaitlistEntry) (*domain.WaitlistEntry, error) {
	entry.ID = int64(len(f.created) + 1)
	entry.CreatedAt = testNow
	f.created = append(f.created, entry)
	return entry, nil
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

type fakeTxManager struct {
	failures int
	calls    int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	if f.calls <= f.failures {
		return txmanager.ErrSerializationFailure
	}
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	uc       *UseCase
	bookings *fakeBookingRepo
	waitlist *fakeWaitlistRepo
	blocks   *fakeBlockRegistry
	tx       *fakeTxManager
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	clock, err := orgtime.NewFixed(testTimezone, testNow)
	require.NoError(t, err)

	f := &fixture{
		bookings: &fakeBookingRepo{},
		waitlist: &fakeWaitlistRepo{},
		blocks:   &fakeBlockRegistry{},
		tx:       &fakeTxManager{},
	}
	f.uc = NewUseCase(f.bookings, f.waitlist, f.blocks, f.tx, clock, nopLogger{})
	return f
}

func cancelledShower(startTime types.TimeString) *domain.Booking {
	return &domain.Booking{
		ID:          42,
		GuestID:     7,
		Date:        today,
		ServiceType: domain.ServiceShower,
		Modality:    domain.ModalityOnsite,
		StartTime:   ptr.Ptr(startTime),
		Status:      domain.StatusCancelled,
	}
}

func showerBooking(startTime types.TimeString) *domain.Booking {
	return &domain.Booking{
		ServiceType: domain.ServiceShower,
		Modality:    domain.ModalityOnsite,
		StartTime:   ptr.Ptr(startTime),
		Status:      domain.StatusBooked,
	}
}

func validRequest() *Request {
	return &Request{BookingID: 42, ActorID: 1, ActorRole: domain.RoleOperator}
}

func TestExecute_KeepsOriginalSlot(t *testing.T) {
	f := newFixture(t)
	f.bookings.booking = cancelledShower("08:30")

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.Equal(t, OutcomeRebooked, resp.Outcome)
	assert.Equal(t, int64(42), resp.Booking.ID)
	assert.Equal(t, types.TimeString("08:30"), *resp.Booking.StartTime)
	assert.Equal(t, types.TimeString("08:30"), *resp.Booking.PrevSlot)
	assert.Equal(t, domain.StatusBooked, resp.Booking.Status)

	require.Len(t, f.bookings.updates, 1)
	assert.Equal(t, domain.StatusBooked, f.bookings.updates[0].status)
}

func TestExecute_OriginalSlotFull_MovesToFirstFit(t *testing.T) {
	f := newFixture(t)
	f.bookings.booking = cancelledShower("08:30")
	// 08:30 заполнен другими гостями (вместимость душа 2)
	f.bookings.dayBookings = []*domain.Booking{
		showerBooking("08:30"),
		showerBooking("08:30"),
	}

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.Equal(t, OutcomeRebooked, resp.Outcome)
	assert.Equal(t, types.TimeString("07:30"), *resp.Booking.StartTime)
	assert.Equal(t, types.TimeString("08:30"), *resp.Booking.PrevSlot)
}

func TestExecute_OriginalSlotBlocked_MovesToFirstFit(t *testing.T) {
	f := newFixture(t)
	f.bookings.booking = cancelledShower("07:30")
	f.blocks.blocked = map[types.TimeString]struct{}{"07:30": {}}

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.Equal(t, OutcomeRebooked, resp.Outcome)
	assert.Equal(t, types.TimeString("08:00"), *resp.Booking.StartTime)
}

func TestExecute_NoSlots_Waitlists(t *testing.T) {
	f := newFixture(t)
	f.bookings.booking = cancelledShower("08:30")

	// Все 8 слотов дня заполнены
	var bookings []*domain.Booking
	for _, slot := range domain.GenerateSlots(domain.ServiceShower, today) {
		bookings = append(bookings, showerBooking(slot.StartTime), showerBooking(slot.StartTime))
	}
	f.bookings.dayBookings = bookings

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.Equal(t, OutcomeWaitlisted, resp.Outcome)
	assert.Equal(t, int64(7), resp.Waitlist.GuestID)
	assert.Len(t, f.waitlist.created, 1)

	// Бронирование осталось в прежнем статусе
	assert.Empty(t, f.bookings.updates)
}

func TestExecute_NotRebookable(t *testing.T) {
	tests := []struct {
		name   string
		status domain.BookingStatus
	}{
		{name: "booked", status: domain.StatusBooked},
		{name: "done", status: domain.StatusDone},
		{name: "waiting", status: domain.StatusWaiting},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			booking := cancelledShower("08:30")
			booking.Status = tt.status
			f.bookings.booking = booking

			_, err := f.uc.Execute(context.Background(), validRequest())
			require.ErrorIs(t, err, ErrNotRebookable)
			assert.Empty(t, f.bookings.updates)
		})
	}
}

func TestExecute_BookingNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_PastDateOperator_Rejected(t *testing.T) {
	f := newFixture(t)
	booking := cancelledShower("08:30")
	booking.Date = today.AddDate(0, 0, -3) // пятница 2025-10-10
	f.bookings.booking = booking

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrPastDateWrite)
}

func TestExecute_PastDateAdmin_BackfillKeepsSlot(t *testing.T) {
	f := newFixture(t)
	booking := cancelledShower("08:30")
	booking.Date = today.AddDate(0, 0, -3)
	f.bookings.booking = booking

	// Backfill игнорирует блокировки и вместимость
	f.blocks.blocked = map[types.TimeString]struct{}{"08:30": {}}
	f.bookings.dayBookings = []*domain.Booking{
		showerBooking("08:30"),
		showerBooking("08:30"),
	}

	req := validRequest()
	req.ActorRole = domain.RoleAdmin

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.Equal(t, OutcomeRebooked, resp.Outcome)
	assert.Equal(t, types.TimeString("08:30"), *resp.Booking.StartTime)
}

func TestExecute_OffsiteRebook(t *testing.T) {
	f := newFixture(t)
	f.bookings.booking = &domain.Booking{
		ID:          42,
		GuestID:     7,
		Date:        today,
		ServiceType: domain.ServiceLaundry,
		Modality:    domain.ModalityOffsite,
		Status:      domain.StatusNoShow,
	}

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.Equal(t, OutcomeRebooked, resp.Outcome)
	assert.Nil(t, resp.Booking.StartTime)

	require.Len(t, f.bookings.updates, 1)
	assert.Nil(t, f.bookings.updates[0].startTime)
	assert.Equal(t, domain.StatusBooked, f.bookings.updates[0].status)
}

func TestExecute_RetriesSerializationConflict(t *testing.T) {
	f := newFixture(t)
	f.bookings.booking = cancelledShower("08:30")
	f.tx.failures = 2

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, OutcomeRebooked, resp.Outcome)
	assert.Equal(t, 3, f.tx.calls)
}

func TestExecute_ConflictAfterMaxAttempts(t *testing.T) {
	f := newFixture(t)
	f.bookings.booking = cancelledShower("08:30")
	f.tx.failures = rebookMaxAttempts

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrConflict)
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{name: "zero booking", mutate: func(r *Request) { r.BookingID = 0 }},
		{name: "zero actor", mutate: func(r *Request) { r.ActorID = 0 }},
		{name: "unknown role", mutate: func(r *Request) { r.ActorRole = "manager" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			require.ErrorIs(t, validateRequest(req), ErrInvalidInput)
		})
	}
}
