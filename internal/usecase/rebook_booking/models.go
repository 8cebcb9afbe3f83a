package rebook_booking

import (
	"time"

	"github.com/m04kA/SMC-DayCenterService/internal/domain"
	"github.com/m04kA/SMC-DayCenterService/pkg/types"
)

// Request модель запроса на повторное размещение бронирования
type Request struct {
	BookingID int64            // ID прошедшего через cancel/no_show бронирования
	ActorID   int64            // ID сотрудника, оформляющего запрос
	ActorRole domain.ActorRole // Роль сотрудника: operator | admin
}

// Outcome вариант результата rebook
type Outcome string

const (
	// OutcomeRebooked бронирование возвращено в booked (тот же ID записи)
	OutcomeRebooked Outcome = "rebooked"

	// OutcomeWaitlisted свободных слотов нет, гость добавлен в лист
	// ожидания; бронирование осталось в прежнем статусе
	OutcomeWaitlisted Outcome = "waitlisted"
)

// Response модель результата rebook
type Response struct {
	Outcome  Outcome
	Booking  *BookingResult
	Waitlist *WaitlistResult
}

// BookingResult бронирование после повторного размещения
type BookingResult struct {
	ID          int64
	GuestID     int64
	Date        time.Time
	ServiceType domain.ServiceType
	Modality    domain.Modality
	StartTime   *types.TimeString
	Status      domain.BookingStatus
	PrevSlot    *types.TimeString // Слот до rebook (для журнала оператора)
}

// WaitlistResult созданная запись листа ожидания
type WaitlistResult struct {
	ID          int64
	GuestID     int64
	Date        time.Time
	ServiceType domain.ServiceType
	CreatedAt   time.Time
}
