package allocate_booking

import (
	"fmt"

	"github.com/m04kA/SMC-DayCenterService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.GuestID <= 0 {
		return fmt.Errorf("%w: guestID must be positive", ErrInvalidInput)
	}

	if req.ActorID <= 0 {
		return fmt.Errorf("%w: actorID must be positive", ErrInvalidInput)
	}

	if req.ActorRole != domain.RoleOperator && req.ActorRole != domain.RoleAdmin {
		return fmt.Errorf("%w: unknown actor role %q", ErrInvalidInput, req.ActorRole)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.ServiceType != domain.ServiceShower && req.ServiceType != domain.ServiceLaundry {
		return fmt.Errorf("%w: unknown service type %q", ErrInvalidInput, req.ServiceType)
	}

	if req.Modality != domain.ModalityOnsite && req.Modality != domain.ModalityOffsite {
		return fmt.Errorf("%w: unknown modality %q", ErrInvalidInput, req.Modality)
	}

	// Offsite поддерживается только для laundry
	if req.Modality == domain.ModalityOffsite && req.ServiceType != domain.ServiceLaundry {
		return fmt.Errorf("%w: offsite is only available for laundry", ErrInvalidModality)
	}

	// Offsite не привязан к слоту
	if req.Modality == domain.ModalityOffsite && req.ExplicitSlot != nil {
		return fmt.Errorf("%w: offsite bookings have no slot", ErrInvalidInput)
	}

	// Валидируем формат времени слота
	if req.ExplicitSlot != nil {
		if err := req.ExplicitSlot.Validate(); err != nil {
			return fmt.Errorf("%w: invalid slot time format: %v", ErrInvalidInput, err)
		}
	}

	// Номер мешка используется только для offsite laundry
	if req.BagNumber != nil {
		if req.Modality != domain.ModalityOffsite {
			return fmt.Errorf("%w: bagNumber is only used for offsite laundry", ErrInvalidInput)
		}
		if len(*req.BagNumber) == 0 || len(*req.BagNumber) > domain.MaxBagNumberLength {
			return fmt.Errorf("%w: bagNumber must be 1..%d characters", ErrInvalidInput, domain.MaxBagNumberLength)
		}
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}
