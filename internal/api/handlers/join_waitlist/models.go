package join_waitlist

import (
	"time"

	"github.com/m04kA/SMC-DayCenterService/internal/service/waitlist/models"
)

// JoinWaitlistRequest HTTP request model
type JoinWaitlistRequest struct {
	GuestID     int64  `json:"guestId"`
	Date        string `json:"date"`        // "2025-10-15"
	ServiceType string `json:"serviceType"` // shower | laundry
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
// Дата уже распарсена в таймзоне организации
func (r *JoinWaitlistRequest) ToServiceRequest(date time.Time) *models.JoinWaitlistRequest {
	return &models.JoinWaitlistRequest{
		GuestID:     r.GuestID,
		Date:        date,
		ServiceType: r.ServiceType,
	}
}
