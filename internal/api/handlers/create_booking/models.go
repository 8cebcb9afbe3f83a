package create_booking

import (
	"time"

	"github.com/m04kA/SMC-DayCenterService/internal/domain"
	allocateBooking "github.com/m04kA/SMC-DayCenterService/internal/usecase/allocate_booking"
	"github.com/m04kA/SMC-DayCenterService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	GuestID     int64   `json:"guestId"`
	Date        string  `json:"date"`        // "2025-10-15"
	ServiceType string  `json:"serviceType"` // shower | laundry
	Modality    string  `json:"modality"`    // onsite | offsite
	StartTime   *string `json:"startTime,omitempty"` // "07:30", опционально - автоматический выбор
	Status      *string `json:"status,omitempty"`    // начальный статус, только backfill
	BagNumber   *string `json:"bagNumber,omitempty"` // только offsite laundry
	Notes       *string `json:"notes,omitempty"`
}

// AllocationResponse HTTP response model
// Ровно одно из полей booking/waitlistEntry заполнено
type AllocationResponse struct {
	Outcome       string                 `json:"outcome"` // confirmed | waitlisted
	Booking       *BookingResponse       `json:"booking,omitempty"`
	WaitlistEntry *WaitlistEntryResponse `json:"waitlistEntry,omitempty"`
}

// BookingResponse созданное бронирование
type BookingResponse struct {
	ID          int64   `json:"id"`
	GuestID     int64   `json:"guestId"`
	Date        string  `json:"date"`
	ServiceType string  `json:"serviceType"`
	Modality    string  `json:"modality"`
	StartTime   *string `json:"startTime,omitempty"`
	Status      string  `json:"status"`
	BagNumber   *string `json:"bagNumber,omitempty"`
	Notes       *string `json:"notes,omitempty"`
	Backfill    bool    `json:"backfill,omitempty"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// WaitlistEntryResponse созданная запись листа ожидания
type WaitlistEntryResponse struct {
	ID          int64  `json:"id"`
	GuestID     int64  `json:"guestId"`
	Date        string `json:"date"`
	ServiceType string `json:"serviceType"`
	CreatedAt   string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Дата уже распарсена в таймзоне организации
func (r *CreateBookingRequest) ToUseCaseRequest(actorID int64, actorRole domain.ActorRole, date time.Time) (*allocateBooking.Request, error) {
	req := &allocateBooking.Request{
		GuestID:     r.GuestID,
		Date:        date,
		ServiceType: domain.ServiceType(r.ServiceType),
		Modality:    domain.Modality(r.Modality),
		BagNumber:   r.BagNumber,
		Notes:       r.Notes,
		ActorID:     actorID,
		ActorRole:   actorRole,
	}

	// Парсим время начала, если слот выбран явно
	if r.StartTime != nil {
		startTime, err := types.NewTimeStringFromString(*r.StartTime)
		if err != nil {
			return nil, err
		}
		req.ExplicitSlot = &startTime
	}

	if r.Status != nil {
		status := domain.BookingStatus(*r.Status)
		req.RequestedStatus = &status
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *allocateBooking.Response) *AllocationResponse {
	out := &AllocationResponse{
		Outcome: string(resp.Outcome),
	}

	if resp.Booking != nil {
		b := resp.Booking
		booking := &BookingResponse{
			ID:          b.ID,
			GuestID:     b.GuestID,
			Date:        b.Date.Format(domain.DateFormat),
			ServiceType: string(b.ServiceType),
			Modality:    string(b.Modality),
			Status:      string(b.Status),
			BagNumber:   b.BagNumber,
			Notes:       b.Notes,
			Backfill:    b.Backfill,
			CreatedAt:   b.CreatedAt.Format(time.RFC3339),
			UpdatedAt:   b.UpdatedAt.Format(time.RFC3339),
		}
		if b.StartTime != nil {
			startStr := b.StartTime.String()
			booking.StartTime = &startStr
		}
		out.Booking = booking
	}

	if resp.Waitlist != nil {
		e := resp.Waitlist
		out.WaitlistEntry = &WaitlistEntryResponse{
			ID:          e.ID,
			GuestID:     e.GuestID,
			Date:        e.Date.Format(domain.DateFormat),
			ServiceType: string(e.ServiceType),
			CreatedAt:   e.CreatedAt.Format(time.RFC3339),
		}
	}

	return out
}
