package get_waitlist

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DayCenterService/internal/service/waitlist/models"
)

type WaitlistService interface {
	GetWaitlist(ctx context.Context, req *models.GetWaitlistRequest) (*models.WaitlistResponse, error)
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
