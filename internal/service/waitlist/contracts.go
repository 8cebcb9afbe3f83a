package waitlist

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DayCenterService/internal/domain"
	"github.com/m04kA/SMC-DayCenterService/pkg/types"
)

// WaitlistRepository интерфейс репозитория листа ожидания
type WaitlistRepository interface {
	Create(ctx context.Context, entry *domain.WaitlistEntry) (*domain.WaitlistEntry, error)
	GetByDate(ctx context.Context, date time.Time, serviceType *domain.ServiceType) ([]*domain.WaitlistEntry, error)
	Delete(ctx context.Context, id int64) error
}

// BookingRepository интерфейс репозитория бронирований
// Используется для проверки занятости слотов перед прямой постановкой
// в лист ожидания
type BookingRepository interface {
	GetByDate(ctx context.Context, filter domain.DayBookingsFilter) ([]*domain.Booking, error)
}

// BlockRegistry интерфейс реестра блокировок слотов
type BlockRegistry interface {
	GetBlockedStartTimes(ctx context.Context, date time.Time, serviceType domain.ServiceType) (map[types.TimeString]struct{}, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
