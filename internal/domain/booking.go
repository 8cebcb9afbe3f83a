package domain

import (
	"time"

	"github.com/m04kA/SMC-DayCenterService/pkg/types"
)

// ServiceType identifies one of the center's guest services.
type ServiceType string

const (
	ServiceShower  ServiceType = "shower"
	ServiceLaundry ServiceType = "laundry"
)

// Modality distinguishes slot-constrained onsite delivery from the
// uncapacitated offsite laundry program.
type Modality string

const (
	ModalityOnsite  Modality = "onsite"
	ModalityOffsite Modality = "offsite"
)

// BookingStatus represents the lifecycle status of a booking.
type BookingStatus string

const (
	StatusWaiting   BookingStatus = "waiting"
	StatusBooked    BookingStatus = "booked"
	StatusDone      BookingStatus = "done"
	StatusCancelled BookingStatus = "cancelled"
	StatusNoShow    BookingStatus = "no_show"
)

// ActorRole is the privilege level of the staff member issuing a request.
type ActorRole string

const (
	RoleOperator ActorRole = "operator"
	RoleAdmin    ActorRole = "admin"
)

// Booking represents a guest's booking for one service on one calendar day.
type Booking struct {
	ID          int64
	GuestID     int64
	Date        time.Time // organization-local calendar day, midnight
	ServiceType ServiceType
	Modality    Modality
	StartTime   *types.TimeString // nil for offsite bookings
	Status      BookingStatus

	// Offsite laundry tracking
	BagNumber *string

	Notes *string

	CreatedBy int64
	UpdatedBy int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking currently occupies slot capacity.
func (b *Booking) IsActive() bool {
	return b.Status == StatusBooked || b.Status == StatusWaiting
}

// IsRebookable returns true if the booking lapsed and can be booked again.
func (b *Booking) IsRebookable() bool {
	return b.Status == StatusCancelled || b.Status == StatusNoShow
}

// OccupiesSlot returns true if the booking counts against the capacity of
// a specific onsite slot.
func (b *Booking) OccupiesSlot() bool {
	return b.Modality == ModalityOnsite && b.StartTime != nil && b.IsActive()
}

// DayBookingsFilter фильтр для получения бронирований на календарный день
type DayBookingsFilter struct {
	Date            time.Time      // Обязательный параметр
	ServiceType     *ServiceType   // Фильтр по услуге (опционально, если nil - все услуги)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли неактивные бронирования (отмененные, no-show)
}
