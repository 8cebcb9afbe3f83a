package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-DayCenterService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-DayCenterService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date        string          `json:"date"`
	ServiceType string          `json:"serviceType"`
	Slots       []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота с занятостью
type AvailableSlot struct {
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
	Occupancy       int    `json:"occupancy"`
	Capacity        int    `json:"capacity"`
	Blocked         bool   `json:"blocked"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			StartTime:       slot.StartTime.String(),
			DurationMinutes: slot.DurationMinutes,
			Occupancy:       slot.Occupancy,
			Capacity:        slot.Capacity,
			Blocked:         slot.Blocked,
		}
	}

	return &AvailableSlotsResponse{
		Date:        resp.Date.Format(domain.DateFormat),
		ServiceType: string(resp.ServiceType),
		Slots:       slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
// Дата уже распарсена в таймзоне организации
func ToUseCaseRequest(date time.Time, serviceType, modality string) *getAvailableSlots.Request {
	return &getAvailableSlots.Request{
		Date:        date,
		ServiceType: domain.ServiceType(serviceType),
		Modality:    domain.Modality(modality),
	}
}
