package block_slot

import (
	"time"

	"github.com/m04kA/SMC-DayCenterService/internal/service/blockedslots/models"
)

// BlockSlotRequest HTTP request model
type BlockSlotRequest struct {
	Date        string `json:"date"`        // "2025-10-15"
	ServiceType string `json:"serviceType"` // shower | laundry
	StartTime   string `json:"startTime"`   // "07:30"
	Reason      string `json:"reason"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
// Дата уже распарсена в таймзоне организации
func (r *BlockSlotRequest) ToServiceRequest(actorID int64, date time.Time) *models.BlockSlotRequest {
	return &models.BlockSlotRequest{
		Date:        date,
		ServiceType: r.ServiceType,
		StartTime:   r.StartTime,
		Reason:      r.Reason,
		ActorID:     actorID,
	}
}
