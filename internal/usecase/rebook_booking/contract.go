package rebook_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DayCenterService/internal/domain"
	"github.com/m04kA/SMC-DayCenterService/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetByID получает бронирование (с блокировкой FOR UPDATE внутри транзакции)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByDate(ctx context.Context, filter domain.DayBookingsFilter) ([]*domain.Booking, error)
	UpdateSlotAndStatus(ctx context.Context, id int64, startTime *types.TimeString, status domain.BookingStatus, updatedBy int64) error
}

// WaitlistRepository интерфейс репозитория листа ожидания
type WaitlistRepository interface {
	Create(ctx context.Context, entry *domain.WaitlistEntry) (*domain.WaitlistEntry, error)
}

// BlockRegistry интерфейс реестра блокировок слотов
type BlockRegistry interface {
	GetBlockedStartTimes(ctx context.Context, date time.Time, serviceType domain.ServiceType) (map[types.TimeString]struct{}, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Clock интерфейс календаря организации (для тестирования)
type Clock interface {
	Today() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
