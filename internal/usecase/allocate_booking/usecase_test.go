package allocate_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DayCenterService/internal/domain"
	"github.com/m04kA/SMC-DayCenterService/internal/integrations/guestdirectory"
	"github.com/m04kA/SMC-DayCenterService/pkg/orgtime"
	"github.com/m04kA/SMC-DayCenterService/pkg/ptr"
	"github.com/m04kA/SMC-DayCenterService/pkg/txmanager"
	"github.com/m04kA/SMC-DayCenterService/pkg/types"
)

const testTimezone = "America/Los_Angeles"

// 2025-10-13 12:00 в Лос-Анджелесе (понедельник)
var testNow = time.Date(2025, 10, 13, 19, 0, 0, 0, time.UTC)

// Фейки зависимостей

type fakeBookingRepo struct {
	dayBookings []*domain.Booking
	created     []*domain.Booking
	nextID      int64
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	f.nextID++
	booking.ID = f.nextID
	booking.CreatedAt = testNow
	booking.UpdatedAt = testNow
	f.created = append(f.created, booking)
	return booking, nil
}

func (f *fakeBookingRepo) GetByDate(_ context.Context, _ domain.DayBookingsFilter) ([]*domain.Booking, error) {
	return f.dayBookings, nil
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

type fakeGuestClient struct {
	guest *guestdirectory.Guest
	err   error
}

func (f *fakeGuestClient) GetGuest(_ context.Context, _ int64) (*guestdirectory.Guest, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.guest, nil
}

type fakeTxManager struct {
	failures int // число конфликтов сериализации перед успехом
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
	guest := &fakeGuestClient{guest: &guestdirectory.Guest{ID: 7, Active: true}}

	f.uc = NewUseCase(f.bookings, f.waitlist, f.blocks, guest, f.tx, clock, nopLogger{})
	return f
}

func validRequest() *Request {
	return &Request{
		GuestID:     7,
		Date:        testNow,
		ServiceType: domain.ServiceShower,
		Modality:    domain.ModalityOnsite,
		ActorID:     1,
		ActorRole:   domain.RoleOperator,
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

func TestExecute_AutoAllocatesFirstSlot(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.Equal(t, OutcomeConfirmed, resp.Outcome)
	require.NotNil(t, resp.Booking)
	assert.Equal(t, types.TimeString("07:30"), *resp.Booking.StartTime)
	assert.Equal(t, domain.StatusBooked, resp.Booking.Status)
	assert.Len(t, f.bookings.created, 1)
}

func TestExecute_SkipsFullSlot(t *testing.T) {
	f := newFixture(t)
	// 07:30 заполнен (вместимость душа 2)
	f.bookings.dayBookings = []*domain.Booking{
		showerBooking("07:30"),
		showerBooking("07:30"),
	}

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.Equal(t, OutcomeConfirmed, resp.Outcome)
	assert.Equal(t, types.TimeString("08:00"), *resp.Booking.StartTime)
}

func TestExecute_SkipsBlockedSlot(t *testing.T) {
	f := newFixture(t)
	f.blocks.blocked = map[types.TimeString]struct{}{"07:30": {}}

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.Equal(t, OutcomeConfirmed, resp.Outcome)
	assert.Equal(t, types.TimeString("08:00"), *resp.Booking.StartTime)
}

func TestExecute_AllSlotsExhausted_Waitlists(t *testing.T) {
	f := newFixture(t)

	// Все 8 слотов дня заполнены
	var bookings []*domain.Booking
	for _, slot := range domain.GenerateSlots(domain.ServiceShower, testNow) {
		bookings = append(bookings, showerBooking(slot.StartTime), showerBooking(slot.StartTime))
	}
	f.bookings.dayBookings = bookings

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.Equal(t, OutcomeWaitlisted, resp.Outcome)
	require.NotNil(t, resp.Waitlist)
	assert.Equal(t, int64(7), resp.Waitlist.GuestID)

	// Запись листа ожидания создана, бронирование - нет
	assert.Len(t, f.waitlist.created, 1)
	assert.Empty(t, f.bookings.created)
}

func TestExecute_ExplicitSlotFull_Rejected(t *testing.T) {
	f := newFixture(t)
	f.bookings.dayBookings = []*domain.Booking{
		showerBooking("08:00"),
		showerBooking("08:00"),
	}

	req := validRequest()
	req.ExplicitSlot = ptr.Ptr(types.TimeString("08:00"))

	_, err := f.uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrSlotFull)

	// Явный запрос не падает на лист ожидания
	assert.Empty(t, f.waitlist.created)
	assert.Empty(t, f.bookings.created)
}

func TestExecute_ExplicitSlotNotInCatalog(t *testing.T) {
	f := newFixture(t)

	req := validRequest()
	req.ExplicitSlot = ptr.Ptr(types.TimeString("07:45"))

	_, err := f.uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrInvalidSlot)
}

func TestExecute_ExplicitBlockedSlot(t *testing.T) {
	f := newFixture(t)
	f.blocks.blocked = map[types.TimeString]struct{}{"08:00": {}}

	req := validRequest()
	req.ExplicitSlot = ptr.Ptr(types.TimeString("08:00"))

	_, err := f.uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrSlotBlocked)
}

func TestExecute_PastDateOperator_Rejected(t *testing.T) {
	f := newFixture(t)

	req := validRequest()
	req.Date = testNow.AddDate(0, 0, -1)

	_, err := f.uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrPastDateWrite)
}

func TestExecute_AdminBackfill_BypassesCapacity(t *testing.T) {
	f := newFixture(t)

	// Все слоты прошедшего дня заполнены - backfill игнорирует вместимость
	var bookings []*domain.Booking
	for _, slot := range domain.GenerateSlots(domain.ServiceShower, testNow.AddDate(0, 0, -3)) {
		bookings = append(bookings, showerBooking(slot.StartTime), showerBooking(slot.StartTime))
	}
	f.bookings.dayBookings = bookings

	req := validRequest()
	req.Date = testNow.AddDate(0, 0, -3) // пятница 2025-10-10
	req.ActorRole = domain.RoleAdmin
	req.RequestedStatus = ptr.Ptr(domain.StatusDone)

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.Equal(t, OutcomeConfirmed, resp.Outcome)
	assert.Equal(t, domain.StatusDone, resp.Booking.Status)
	assert.True(t, resp.Booking.Backfill)
}

func TestExecute_InitialStatusRequiresBackfill(t *testing.T) {
	f := newFixture(t)

	req := validRequest()
	req.RequestedStatus = ptr.Ptr(domain.StatusDone)

	_, err := f.uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrInvalidStatus)
}

func TestExecute_OffsiteLaundry(t *testing.T) {
	f := newFixture(t)

	req := validRequest()
	req.ServiceType = domain.ServiceLaundry
	req.Modality = domain.ModalityOffsite
	req.BagNumber = ptr.Ptr("B-104")

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.Equal(t, OutcomeConfirmed, resp.Outcome)
	assert.Nil(t, resp.Booking.StartTime)
	require.NotNil(t, resp.Booking.BagNumber)
	assert.Equal(t, "B-104", *resp.Booking.BagNumber)

	// Offsite не проходит через сериализуемую транзакцию
	assert.Zero(t, f.tx.calls)
}

func TestExecute_OffsiteShower_Rejected(t *testing.T) {
	f := newFixture(t)

	req := validRequest()
	req.Modality = domain.ModalityOffsite

	_, err := f.uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrInvalidModality)
}

func TestExecute_ClosedSunday(t *testing.T) {
	f := newFixture(t)

	req := validRequest()
	req.Date = time.Date(2025, 10, 19, 19, 0, 0, 0, time.UTC) // воскресенье
	req.ActorRole = domain.RoleAdmin                          // иначе отказ по дате

	_, err := f.uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrClosedDay)
}

func TestExecute_InactiveGuest(t *testing.T) {
	f := newFixture(t)
	clock, err := orgtime.NewFixed(testTimezone, testNow)
	require.NoError(t, err)

	guest := &fakeGuestClient{guest: &guestdirectory.Guest{ID: 7, Active: false}}
	f.uc = NewUseCase(f.bookings, f.waitlist, f.blocks, guest, f.tx, clock, nopLogger{})

	_, err = f.uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrGuestNotFound)
}

func TestExecute_GuestNotFound(t *testing.T) {
	f := newFixture(t)
	clock, err := orgtime.NewFixed(testTimezone, testNow)
	require.NoError(t, err)

	guest := &fakeGuestClient{err: guestdirectory.ErrGuestNotFound}
	f.uc = NewUseCase(f.bookings, f.waitlist, f.blocks, guest, f.tx, clock, nopLogger{})

	_, err = f.uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrGuestNotFound)
}

func TestExecute_RetriesSerializationConflict(t *testing.T) {
	f := newFixture(t)
	f.tx.failures = 2 // первые две попытки конфликтуют

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, OutcomeConfirmed, resp.Outcome)
	assert.Equal(t, 3, f.tx.calls)
}

func TestExecute_ConflictAfterMaxAttempts(t *testing.T) {
	f := newFixture(t)
	f.tx.failures = allocationMaxAttempts

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, allocationMaxAttempts, f.tx.calls)
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr error
	}{
		{name: "zero guest", mutate: func(r *Request) { r.GuestID = 0 }, wantErr: ErrInvalidInput},
		{name: "zero actor", mutate: func(r *Request) { r.ActorID = 0 }, wantErr: ErrInvalidInput},
		{name: "unknown role", mutate: func(r *Request) { r.ActorRole = "manager" }, wantErr: ErrInvalidInput},
		{name: "unknown service", mutate: func(r *Request) { r.ServiceType = "meals" }, wantErr: ErrInvalidInput},
		{name: "unknown modality", mutate: func(r *Request) { r.Modality = "remote" }, wantErr: ErrInvalidInput},
		{
			name: "offsite with slot",
			mutate: func(r *Request) {
				r.ServiceType = domain.ServiceLaundry
				r.Modality = domain.ModalityOffsite
				r.ExplicitSlot = ptr.Ptr(types.TimeString("08:00"))
			},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "bag number for onsite",
			mutate:  func(r *Request) { r.BagNumber = ptr.Ptr("B-1") },
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			require.ErrorIs(t, validateRequest(req), tt.wantErr)
		})
	}
}
