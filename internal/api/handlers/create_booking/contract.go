package create_booking

import (
	"context"
	"time"

	allocateBooking "github.com/m04kA/SMC-DayCenterService/internal/usecase/allocate_booking"
)

type AllocateBookingUseCase interface {
	Execute(ctx context.Context, req *allocateBooking.Request) (*allocateBooking.Response, error)
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
