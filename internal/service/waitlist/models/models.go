package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-DayCenterService/internal/domain"
)

var (
	// ErrInvalidServiceType возвращается при некорректной услуге
	ErrInvalidServiceType = errors.New("invalid service type")
)

// JoinWaitlistRequest запрос на прямую постановку гостя в лист ожидания
type JoinWaitlistRequest struct {
	GuestID     int64     `json:"guestId"`
	Date        time.Time `json:"date"`
	ServiceType string    `json:"serviceType"`
}

// ToDomain конвертирует request в domain модель
func (r *JoinWaitlistRequest) ToDomain() (*domain.WaitlistEntry, error) {
	serviceType, err := ToDomainServiceType(r.ServiceType)
	if err != nil {
		return nil, err
	}

	return &domain.WaitlistEntry{
		GuestID:     r.GuestID,
		Date:        r.Date,
		ServiceType: serviceType,
	}, nil
}

// GetWaitlistRequest запрос на получение листа ожидания дня
type GetWaitlistRequest struct {
	Date        time.Time `json:"date"`
	ServiceType *string   `json:"serviceType,omitempty"` // Фильтр по услуге (опционально)
}

// WaitlistEntryResponse ответ с записью листа ожидания
type WaitlistEntryResponse struct {
	ID          int64     `json:"id"`
	GuestID     int64     `json:"guestId"`
	Date        string    `json:"date"` // "2025-10-15"
	ServiceType string    `json:"serviceType"`
	CreatedAt   time.Time `json:"createdAt"`
}

// WaitlistResponse ответ со списком записей в порядке поступления
type WaitlistResponse struct {
	Entries []WaitlistEntryResponse `json:"entries"`
}

// FromDomainEntry конвертирует domain модель в DTO
func FromDomainEntry(e *domain.WaitlistEntry) *WaitlistEntryResponse {
	if e == nil {
		return nil
	}

	return &WaitlistEntryResponse{
		ID:          e.ID,
		GuestID:     e.GuestID,
		Date:        e.Date.Format(domain.DateFormat),
		ServiceType: string(e.ServiceType),
		CreatedAt:   e.CreatedAt,
	}
}

// FromDomainEntryList конвертирует список domain моделей в DTO
func FromDomainEntryList(entries []*domain.WaitlistEntry) *WaitlistResponse {
	if entries == nil {
		return &WaitlistResponse{
			Entries: []WaitlistEntryResponse{},
		}
	}

	resp := &WaitlistResponse{
		Entries: make([]WaitlistEntryResponse, len(entries)),
	}

	for i, entry := range entries {
		if entryResp := FromDomainEntry(entry); entryResp != nil {
			resp.Entries[i] = *entryResp
		}
	}

	return resp
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
