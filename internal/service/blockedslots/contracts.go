package blockedslots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DayCenterService/internal/domain"
)

// BlockedSlotRepository интерфейс репозитория блокировок слотов
type BlockedSlotRepository interface {
	Create(ctx context.Context, block *domain.BlockedSlot) (*domain.BlockedSlot, error)
	Delete(ctx context.Context, id int64) error
	GetByDate(ctx context.Context, date time.Time, serviceType *domain.ServiceType) ([]*domain.BlockedSlot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
