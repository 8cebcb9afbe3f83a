package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DayCenterService/internal/domain"
	"github.com/m04kA/SMC-DayCenterService/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetByDate получает все активные бронирования на дату и услугу
	GetByDate(ctx context.Context, filter domain.DayBookingsFilter) ([]*domain.Booking, error)
}

// BlockRegistry интерфейс реестра блокировок слотов
type BlockRegistry interface {
	GetBlockedStartTimes(ctx context.Context, date time.Time, serviceType domain.ServiceType) (map[types.TimeString]struct{}, error)
}

// Clock интерфейс календаря организации (для тестирования)
type Clock interface {
	CalendarDateOf(t time.Time) time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
