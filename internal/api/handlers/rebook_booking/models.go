package rebook_booking

import (
	"time"

	"github.com/m04kA/SMC-DayCenterService/internal/domain"
	rebookBooking "github.com/m04kA/SMC-DayCenterService/internal/usecase/rebook_booking"
)

// RebookResponse HTTP response model
// Ровно одно из полей booking/waitlistEntry заполнено
type RebookResponse struct {
	Outcome       string                 `json:"outcome"` // rebooked | waitlisted
	Booking       *BookingResponse       `json:"booking,omitempty"`
	WaitlistEntry *WaitlistEntryResponse `json:"waitlistEntry,omitempty"`
}

// BookingResponse бронирование после повторного размещения
type BookingResponse struct {
	ID          int64   `json:"id"`
	GuestID     int64   `json:"guestId"`
	Date        string  `json:"date"`
	ServiceType string  `json:"serviceType"`
	Modality    string  `json:"modality"`
	StartTime   *string `json:"startTime,omitempty"`
	Status      string  `json:"status"`
	PrevSlot    *string `json:"prevSlot,omitempty"` // слот до повторного размещения
}

// WaitlistEntryResponse созданная запись листа ожидания
type WaitlistEntryResponse struct {
	ID          int64  `json:"id"`
	GuestID     int64  `json:"guestId"`
	Date        string `json:"date"`
	ServiceType string `json:"serviceType"`
	CreatedAt   string `json:"createdAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *rebookBooking.Response) *RebookResponse {
	out := &RebookResponse{
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
		}
		if b.StartTime != nil {
			startStr := b.StartTime.String()
			booking.StartTime = &startStr
		}
		if b.PrevSlot != nil {
			prevStr := b.PrevSlot.String()
			booking.PrevSlot = &prevStr
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
