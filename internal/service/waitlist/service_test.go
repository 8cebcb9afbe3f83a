package waitlist

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DayCenterService/internal/domain"
	storage "github.com/m04kA/SMC-DayCenterService/internal/infra/storage/waitlist"
	"github.com/m04kA/SMC-DayCenterService/internal/service/waitlist/models"
	"github.com/m04kA/SMC-DayCenterService/pkg/ptr"
	"github.com/m04kA/SMC-DayCenterService/pkg/types"
)

// Понедельник и воскресенье
var (
	monday = time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)
	sunday = time.Date(2025, 10, 12, 0, 0, 0, 0, time.UTC)
)

type fakeWaitlistRepo struct {
	entries   []*domain.WaitlistEntry
	deleteErr error
	deleted   []int64
	created   []*domain.WaitlistEntry
}

func (f *fakeWaitlistRepo) Create(_ context.Context, entry *domain.WaitlistEntry) (*domain.WaitlistEntry, error) {
	created := *entry
	created.ID = int64(len(f.created) + 1)
	f.created = append(f.created, &created)
	return &created, nil
}

func (f *fakeWaitlistRepo) GetByDate(_ context.Context, _ time.Time, _ *domain.ServiceType) ([]*domain.WaitlistEntry, error) {
	return f.entries, nil
}

func (f *fakeWaitlistRepo) Delete(_ context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) GetByDate(_ context.Context, _ domain.DayBookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
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

func newTestService(wl *fakeWaitlistRepo, bk *fakeBookingRepo, bl *fakeBlockRegistry) *Service {
	if wl == nil {
		wl = &fakeWaitlistRepo{}
	}
	if bk == nil {
		bk = &fakeBookingRepo{}
	}
	if bl == nil {
		bl = &fakeBlockRegistry{}
	}
	return NewService(wl, bk, bl, nopLogger{})
}

// fullDay занимает каждый слот услуги до отказа
func fullDay(serviceType domain.ServiceType, date time.Time) []*domain.Booking {
	capacity := domain.CapacityFor(serviceType, domain.ModalityOnsite)
	var bookings []*domain.Booking
	for _, slot := range domain.GenerateSlots(serviceType, date) {
		for i := 0; i < capacity; i++ {
			start := slot.StartTime
			bookings = append(bookings, &domain.Booking{
				GuestID:     int64(100 + len(bookings)),
				Date:        date,
				ServiceType: serviceType,
				Modality:    domain.ModalityOnsite,
				StartTime:   &start,
				Status:      domain.StatusBooked,
			})
		}
	}
	return bookings
}

func TestJoin_AllSlotsFull(t *testing.T) {
	wl := &fakeWaitlistRepo{}
	bk := &fakeBookingRepo{bookings: fullDay(domain.ServiceLaundry, monday)}
	svc := newTestService(wl, bk, nil)

	resp, err := svc.Join(context.Background(), &models.JoinWaitlistRequest{
		GuestID:     42,
		Date:        monday,
		ServiceType: "laundry",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.GuestID)
	assert.Equal(t, "2025-10-13", resp.Date)
	assert.Equal(t, "laundry", resp.ServiceType)
	require.Len(t, wl.created, 1)
}

func TestJoin_FreeSlotAvailable_Rejected(t *testing.T) {
	// Все слоты заняты, кроме последнего
	bookings := fullDay(domain.ServiceLaundry, monday)
	wl := &fakeWaitlistRepo{}
	svc := newTestService(wl, &fakeBookingRepo{bookings: bookings[:len(bookings)-1]}, nil)

	_, err := svc.Join(context.Background(), &models.JoinWaitlistRequest{
		GuestID:     42,
		Date:        monday,
		ServiceType: "laundry",
	})
	require.ErrorIs(t, err, ErrSlotsAvailable)
	assert.Empty(t, wl.created)
}

func TestJoin_BlockedSlotNotAvailable(t *testing.T) {
	// Единственный незанятый слот заблокирован - очередь допустима
	bookings := fullDay(domain.ServiceLaundry, monday)
	lastStart := *bookings[len(bookings)-1].StartTime
	wl := &fakeWaitlistRepo{}
	bl := &fakeBlockRegistry{blocked: map[types.TimeString]struct{}{lastStart: {}}}
	svc := newTestService(wl, &fakeBookingRepo{bookings: bookings[:len(bookings)-1]}, bl)

	_, err := svc.Join(context.Background(), &models.JoinWaitlistRequest{
		GuestID:     42,
		Date:        monday,
		ServiceType: "laundry",
	})
	require.NoError(t, err)
	require.Len(t, wl.created, 1)
}

func TestJoin_ClosedDay(t *testing.T) {
	svc := newTestService(nil, nil, nil)

	_, err := svc.Join(context.Background(), &models.JoinWaitlistRequest{
		GuestID:     42,
		Date:        sunday,
		ServiceType: "shower",
	})
	require.ErrorIs(t, err, ErrClosedDay)
}

func TestJoin_Validation(t *testing.T) {
	svc := newTestService(nil, nil, nil)

	tests := []struct {
		name string
		req  *models.JoinWaitlistRequest
	}{
		{
			name: "zero guest id",
			req:  &models.JoinWaitlistRequest{GuestID: 0, Date: monday, ServiceType: "shower"},
		},
		{
			name: "unknown service type",
			req:  &models.JoinWaitlistRequest{GuestID: 42, Date: monday, ServiceType: "meals"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Join(context.Background(), tt.req)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestGetWaitlist(t *testing.T) {
	repo := &fakeWaitlistRepo{entries: []*domain.WaitlistEntry{
		{ID: 1, GuestID: 7, Date: monday, ServiceType: domain.ServiceShower},
		{ID: 2, GuestID: 9, Date: monday, ServiceType: domain.ServiceShower},
	}}
	svc := newTestService(repo, nil, nil)

	resp, err := svc.GetWaitlist(context.Background(), &models.GetWaitlistRequest{Date: monday})
	require.NoError(t, err)

	// Порядок поступления сохранен
	require.Len(t, resp.Entries, 2)
	assert.Equal(t, int64(7), resp.Entries[0].GuestID)
	assert.Equal(t, int64(9), resp.Entries[1].GuestID)
	assert.Equal(t, "2025-10-13", resp.Entries[0].Date)
}

func TestGetWaitlist_InvalidServiceFilter(t *testing.T) {
	svc := newTestService(nil, nil, nil)

	_, err := svc.GetWaitlist(context.Background(), &models.GetWaitlistRequest{
		Date:        monday,
		ServiceType: ptr.Ptr("meals"),
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetWaitlist_EmptyDay(t *testing.T) {
	svc := newTestService(nil, nil, nil)

	resp, err := svc.GetWaitlist(context.Background(), &models.GetWaitlistRequest{Date: monday})
	require.NoError(t, err)
	assert.Empty(t, resp.Entries)
	assert.NotNil(t, resp.Entries)
}

func TestRemove(t *testing.T) {
	repo := &fakeWaitlistRepo{}
	svc := newTestService(repo, nil, nil)

	require.NoError(t, svc.Remove(context.Background(), 3))
	assert.Equal(t, []int64{3}, repo.deleted)
}

func TestRemove_NotFound(t *testing.T) {
	repo := &fakeWaitlistRepo{deleteErr: storage.ErrEntryNotFound}
	svc := newTestService(repo, nil, nil)

	require.ErrorIs(t, svc.Remove(context.Background(), 3), ErrEntryNotFound)
}

func TestRemove_InvalidID(t *testing.T) {
	svc := newTestService(nil, nil, nil)

	require.ErrorIs(t, svc.Remove(context.Background(), 0), ErrInvalidInput)
}
