package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-DayCenterService/internal/domain"
	"github.com/m04kA/SMC-DayCenterService/pkg/types"
)

var (
	// ErrInvalidServiceType возвращается при некорректной услуге
	ErrInvalidServiceType = errors.New("invalid service type")
)

// Request модели

// BlockSlotRequest запрос на блокировку слота
type BlockSlotRequest struct {
	Date        time.Time `json:"date"`
	ServiceType string    `json:"serviceType"`
	StartTime   string    `json:"startTime"` // "10:00"
	Reason      string    `json:"reason"`
	ActorID     int64     `json:"actorId"`
}

// GetBlockedSlotsRequest запрос на получение блокировок дня
type GetBlockedSlotsRequest struct {
	Date        time.Time `json:"date"`
	ServiceType *string   `json:"serviceType,omitempty"` // Фильтр по услуге (опционально)
}

// ToDomain конвертирует request в domain модель
func (r *BlockSlotRequest) ToDomain() (*domain.BlockedSlot, error) {
	serviceType, err := ToDomainServiceType(r.ServiceType)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &domain.BlockedSlot{
		Date:        r.Date,
		ServiceType: serviceType,
		StartTime:   startTime,
		Reason:      r.Reason,
		CreatedBy:   r.ActorID,
	}, nil
}

// Response модели

// BlockedSlotResponse ответ с данными блокировки
type BlockedSlotResponse struct {
	ID          int64     `json:"id"`
	Date        string    `json:"date"` // "2025-10-15"
	ServiceType string    `json:"serviceType"`
	StartTime   string    `json:"startTime"` // "10:00"
	Reason      string    `json:"reason"`
	CreatedBy   int64     `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

// BlockedSlotListResponse ответ со списком блокировок
type BlockedSlotListResponse struct {
	BlockedSlots []BlockedSlotResponse `json:"blockedSlots"`
}

// Методы конвертации

// FromDomainBlockedSlot конвертирует domain модель в DTO
func FromDomainBlockedSlot(b *domain.BlockedSlot) *BlockedSlotResponse {
	if b == nil {
		return nil
	}

	return &BlockedSlotResponse{
		ID:          b.ID,
		Date:        b.Date.Format(domain.DateFormat),
		ServiceType: string(b.ServiceType),
		StartTime:   b.StartTime.String(),
		Reason:      b.Reason,
		CreatedBy:   b.CreatedBy,
		CreatedAt:   b.CreatedAt,
	}
}

// FromDomainBlockedSlotList конвертирует список domain моделей в DTO
func FromDomainBlockedSlotList(blocks []*domain.BlockedSlot) *BlockedSlotListResponse {
	if blocks == nil {
		return &BlockedSlotListResponse{
			BlockedSlots: []BlockedSlotResponse{},
		}
	}

	resp := &BlockedSlotListResponse{
		BlockedSlots: make([]BlockedSlotResponse, len(blocks)),
	}

	for i, block := range blocks {
		if blockResp := FromDomainBlockedSlot(block); blockResp != nil {
			resp.BlockedSlots[i] = *blockResp
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
