package get_blocked_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DayCenterService/internal/service/blockedslots/models"
)

type BlockedSlotService interface {
	GetBlockedSlots(ctx context.Context, req *models.GetBlockedSlotsRequest) (*models.BlockedSlotListResponse, error)
}

// DateParser парсит календарные даты запроса в таймзоне организации
type DateParser interface {
	ParseDate(s string) (time.Time, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
