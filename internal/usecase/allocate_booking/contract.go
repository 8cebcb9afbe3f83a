package allocate_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DayCenterService/internal/domain"
	"github.com/m04kA/SMC-DayCenterService/internal/integrations/guestdirectory"
	"github.com/m04kA/SMC-DayCenterService/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	// GetByDate получает все активные бронирования на дату и услугу
	// (с блокировкой FOR UPDATE внутри транзакции)
	GetByDate(ctx context.Context, filter domain.DayBookingsFilter) ([]*domain.Booking, error)
}

// WaitlistRepository интерфейс репозитория листа ожидания
type WaitlistRepository interface {
	Create(ctx context.Context, entry *domain.WaitlistEntry) (*domain.WaitlistEntry, error)
}

// BlockRegistry интерфейс реестра блокировок слотов
type BlockRegistry interface {
	GetBlockedStartTimes(ctx context.Context, date time.Time, serviceType domain.ServiceType) (map[types.TimeString]struct{}, error)
}

// GuestDirectoryClient интерфейс клиента для GuestDirectory
type GuestDirectoryClient interface {
	GetGuest(ctx context.Context, guestID int64) (*guestdirectory.Guest, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Clock интерфейс календаря организации (для тестирования)
// Все даты резолвятся в фиксированной локальной таймзоне центра
type Clock interface {
	Today() time.Time
	CalendarDateOf(t time.Time) time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
