package join_waitlist

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DayCenterService/internal/service/waitlist/models"
)

type WaitlistService interface {
	Join(ctx context.Context, req *models.JoinWaitlistRequest) (*models.WaitlistEntryResponse, error)
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
