package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-DayCenterService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidServiceType возвращается при некорректной услуге
	ErrInvalidServiceType = errors.New("invalid service type")

	// ErrInvalidRole возвращается при некорректной роли сотрудника
	ErrInvalidRole = errors.New("invalid actor role")
)

// Request модели

// TransitionRequest запрос на смену статуса бронирования
type TransitionRequest struct {
	ActorID   int64  `json:"actorId"`
	ActorRole string `json:"actorRole"`
	Status    string `json:"status"`
}

// GetGuestBookingsRequest запрос на получение истории бронирований гостя
type GetGuestBookingsRequest struct {
	GuestID int64   `json:"guestId"`
	Status  *string `json:"status,omitempty"`
}

// GetDayBookingsRequest запрос на получение бронирований на календарный день
type GetDayBookingsRequest struct {
	Date            time.Time `json:"date"`
	ServiceType     *string   `json:"serviceType,omitempty"`     // Фильтр по услуге (опционально)
	Status          *string   `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	IncludeInactive bool      `json:"includeInactive,omitempty"` // Включить отмененные и no_show
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetDayBookingsRequest) ToDomainFilter() (domain.DayBookingsFilter, error) {
	filter := domain.DayBookingsFilter{
		Date:            r.Date,
		IncludeInactive: r.IncludeInactive,
	}

	if r.ServiceType != nil {
		serviceType, err := ToDomainServiceType(*r.ServiceType)
		if err != nil {
			return filter, err
		}
		filter.ServiceType = &serviceType
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID          int64   `json:"id"`
	GuestID     int64   `json:"guestId"`
	Date        string  `json:"date"`      // "2025-10-15"
	ServiceType string  `json:"serviceType"`
	Modality    string  `json:"modality"`
	StartTime   *string `json:"startTime,omitempty"` // "10:00", отсутствует для offsite
	Status      string  `json:"status"`

	// Offsite-прачечная: номер мешка
	BagNumber *string `json:"bagNumber,omitempty"`

	Notes *string `json:"notes,omitempty"`

	CreatedBy int64     `json:"createdBy"`
	UpdatedBy int64     `json:"updatedBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:          b.ID,
		GuestID:     b.GuestID,
		Date:        b.Date.Format(domain.DateFormat),
		ServiceType: string(b.ServiceType),
		Modality:    string(b.Modality),
		Status:      string(b.Status),
		BagNumber:   b.BagNumber,
		Notes:       b.Notes,
		CreatedBy:   b.CreatedBy,
		UpdatedBy:   b.UpdatedBy,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}

	if b.StartTime != nil {
		startStr := b.StartTime.String()
		resp.StartTime = &startStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	if !domain.IsValidStatus(s) {
		return "", ErrInvalidStatus
	}

	return s, nil
}

// ToDomainServiceType конвертирует строку в domain.ServiceType с валидацией
func ToDomainServiceType(serviceType string) (domain.ServiceType, error) {
	s := domain.ServiceType(serviceType)

	switch s {
	case domain.ServiceShower, domain.ServiceLaundry:
		return s, nil
	default:
		return "", ErrInvalidServiceType
	}
}

// ToDomainActorRole конвертирует строку в domain.ActorRole с валидацией
func ToDomainActorRole(role string) (domain.ActorRole, error) {
	r := domain.ActorRole(role)

	switch r {
	case domain.RoleOperator, domain.RoleAdmin:
		return r, nil
	default:
		return "", ErrInvalidRole
	}
}
