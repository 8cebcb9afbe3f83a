package update_booking_status

import (
	"github.com/m04kA/SMC-DayCenterService/internal/domain"
	"github.com/m04kA/SMC-DayCenterService/internal/service/bookings/models"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status"` // booked | done | cancelled | no_show
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateStatusRequest) ToServiceRequest(actorID int64, actorRole domain.ActorRole) *models.TransitionRequest {
	return &models.TransitionRequest{
		ActorID:   actorID,
		ActorRole: string(actorRole),
		Status:    r.Status,
	}
}
