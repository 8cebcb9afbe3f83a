package blockedslots

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DayCenterService/internal/domain"
	storage "github.com/m04kA/SMC-DayCenterService/internal/infra/storage/blockedslot"
	"github.com/m04kA/SMC-DayCenterService/internal/service/blockedslots/models"
	"github.com/m04kA/SMC-DayCenterService/pkg/ptr"
)

// Понедельник
var monday = time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)

type fakeBlockRepo struct {
	createErr error
	deleteErr error
	blocks    []*domain.BlockedSlot
	created   []*domain.BlockedSlot
	deleted   []int64
}

func (f *fakeBlockRepo) Create(_ context.Context, block *domain.BlockedSlot) (*domain.BlockedSlot, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	block.ID = int64(len(f.created) + 1)
	f.created = append(f.created, block)
	return block, nil
}

func (f *fakeBlockRepo) Delete(_ context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeBlockRepo) GetByDate(_ context.Context, _ time.Time, _ *domain.ServiceType) ([]*domain.BlockedSlot, error) {
	return f.blocks, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validBlockRequest() *models.BlockSlotRequest {
	return &models.BlockSlotRequest{
		Date:        monday,
		ServiceType: "shower",
		StartTime:   "08:30",
		Reason:      "плановая уборка",
		ActorID:     1,
	}
}

func TestBlock(t *testing.T) {
	repo := &fakeBlockRepo{}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Block(context.Background(), validBlockRequest())
	require.NoError(t, err)

	assert.Equal(t, "2025-10-13", resp.Date)
	assert.Equal(t, "shower", resp.ServiceType)
	assert.Equal(t, "08:30", resp.StartTime)
	require.Len(t, repo.created, 1)
	assert.Equal(t, int64(1), repo.created[0].CreatedBy)
}

func TestBlock_SlotNotInCatalog(t *testing.T) {
	svc := NewService(&fakeBlockRepo{}, nopLogger{})

	req := validBlockRequest()
	req.StartTime = "07:45"

	_, err := svc.Block(context.Background(), req)
	require.ErrorIs(t, err, ErrInvalidSlot)
}

func TestBlock_ClosedSunday(t *testing.T) {
	svc := NewService(&fakeBlockRepo{}, nopLogger{})

	req := validBlockRequest()
	req.Date = time.Date(2025, 10, 19, 0, 0, 0, 0, time.UTC)

	_, err := svc.Block(context.Background(), req)
	require.ErrorIs(t, err, ErrClosedDay)
}

func TestBlock_AlreadyBlocked(t *testing.T) {
	repo := &fakeBlockRepo{createErr: storage.ErrAlreadyBlocked}
	svc := NewService(repo, nopLogger{})

	_, err := svc.Block(context.Background(), validBlockRequest())
	require.ErrorIs(t, err, ErrAlreadyBlocked)
}

func TestBlock_Validation(t *testing.T) {
	svc := NewService(&fakeBlockRepo{}, nopLogger{})

	tests := []struct {
		name   string
		mutate func(*models.BlockSlotRequest)
	}{
		{name: "zero actor", mutate: func(r *models.BlockSlotRequest) { r.ActorID = 0 }},
		{name: "unknown service", mutate: func(r *models.BlockSlotRequest) { r.ServiceType = "meals" }},
		{name: "bad time format", mutate: func(r *models.BlockSlotRequest) { r.StartTime = "8:30" }},
		{name: "reason too long", mutate: func(r *models.BlockSlotRequest) {
			r.Reason = strings.Repeat("x", domain.MaxBlockReasonLength+1)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validBlockRequest()
			tt.mutate(req)

			_, err := svc.Block(context.Background(), req)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUnblock(t *testing.T) {
	repo := &fakeBlockRepo{}
	svc := NewService(repo, nopLogger{})

	require.NoError(t, svc.Unblock(context.Background(), 5))
	assert.Equal(t, []int64{5}, repo.deleted)
}

func TestUnblock_NotFound(t *testing.T) {
	repo := &fakeBlockRepo{deleteErr: storage.ErrBlockNotFound}
	svc := NewService(repo, nopLogger{})

	require.ErrorIs(t, svc.Unblock(context.Background(), 5), ErrBlockNotFound)
}

func TestGetBlockedSlots(t *testing.T) {
	repo := &fakeBlockRepo{blocks: []*domain.BlockedSlot{
		{ID: 1, Date: monday, ServiceType: domain.ServiceShower, StartTime: "08:30", Reason: "уборка"},
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetBlockedSlots(context.Background(), &models.GetBlockedSlotsRequest{Date: monday})
	require.NoError(t, err)
	require.Len(t, resp.BlockedSlots, 1)
	assert.Equal(t, "08:30", resp.BlockedSlots[0].StartTime)
}

func TestGetBlockedSlots_InvalidServiceFilter(t *testing.T) {
	svc := NewService(&fakeBlockRepo{}, nopLogger{})

	_, err := svc.GetBlockedSlots(context.Background(), &models.GetBlockedSlotsRequest{
		Date:        monday,
		ServiceType: ptr.Ptr("meals"),
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}
