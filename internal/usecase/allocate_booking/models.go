package allocate_booking

import (
	"time"

	"github.com/m04kA/SMC-DayCenterService/internal/domain"
	"github.com/m04kA/SMC-DayCenterService/pkg/types"
)

// Outcome вариант успешного результата аллокации
type Outcome string

const (
	// OutcomeConfirmed бронирование создано (или обновлено при rebook)
	OutcomeConfirmed Outcome = "confirmed"

	// OutcomeWaitlisted свободных слотов нет, гость добавлен в лист ожидания
	// Это ожидаемый исход live запроса без явного слота, а не ошибка
	OutcomeWaitlisted Outcome = "waitlisted"
)

// Request модель запроса на аллокацию бронирования
type Request struct {
	GuestID     int64              // ID гостя (из GuestDirectory)
	Date        time.Time          // Календарный день (локальная таймзона центра)
	ServiceType domain.ServiceType // Услуга: shower | laundry
	Modality    domain.Modality    // Модальность: onsite | offsite

	// ExplicitSlot время начала выбранного слота; nil - автоматический выбор
	ExplicitSlot *types.TimeString

	// RequestedStatus начальный статус, допускается только для backfill
	// (услуга уже состоялась, например done)
	RequestedStatus *domain.BookingStatus

	BagNumber *string // Номер мешка (только offsite laundry)
	Notes     *string // Дополнительные заметки (опционально)

	ActorID   int64            // ID сотрудника, оформляющего запрос
	ActorRole domain.ActorRole // Роль сотрудника: operator | admin
}

// Response модель результата аллокации
// Ровно одно из полей Booking/Waitlist заполнено в зависимости от Outcome
type Response struct {
	Outcome  Outcome
	Booking  *BookingResult
	Waitlist *WaitlistResult
}

// BookingResult созданное бронирование
type BookingResult struct {
	ID          int64
	GuestID     int64
	Date        time.Time
	ServiceType domain.ServiceType
	Modality    domain.Modality
	StartTime   *types.TimeString // nil для offsite
	Status      domain.BookingStatus
	BagNumber   *string
	Notes       *string
	Backfill    bool // создано административным backfill потоком
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// WaitlistResult созданная запись листа ожидания
type WaitlistResult struct {
	ID          int64
	GuestID     int64
	Date        time.Time
	ServiceType domain.ServiceType
	CreatedAt   time.Time
}

// fromDomainBooking конвертирует бронирование в результат аллокации
func fromDomainBooking(b *domain.Booking, backfill bool) *Response {
	return &Response{
		Outcome: OutcomeConfirmed,
		Booking: &BookingResult{
			ID:          b.ID,
			GuestID:     b.GuestID,
			Date:        b.Date,
			ServiceType: b.ServiceType,
			Modality:    b.Modality,
			StartTime:   b.StartTime,
			Status:      b.Status,
			BagNumber:   b.BagNumber,
			Notes:       b.Notes,
			Backfill:    backfill,
			CreatedAt:   b.CreatedAt,
			UpdatedAt:   b.UpdatedAt,
		},
	}
}

// fromDomainWaitlistEntry конвертирует запись листа ожидания в результат
func fromDomainWaitlistEntry(e *domain.WaitlistEntry) *Response {
	return &Response{
		Outcome: OutcomeWaitlisted,
		Waitlist: &WaitlistResult{
			ID:          e.ID,
			GuestID:     e.GuestID,
			Date:        e.Date,
			ServiceType: e.ServiceType,
			CreatedAt:   e.CreatedAt,
		},
	}
}
