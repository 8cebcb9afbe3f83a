package allocate_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-DayCenterService/internal/domain"
)

// classifyFlow определяет поток запроса: live (операторский, на текущий
// день) или backfill (административный, на прошедшую дату).
//
// Правила:
// - дата == сегодня: live для любой роли
// - дата != сегодня + роль admin: backfill (проверки вместимости и
//   блокировок пропускаются, но слот обязан быть членом каталога)
// - дата != сегодня + любая другая роль: ErrPastDateWrite
func classifyFlow(role domain.ActorRole, requestDate, today time.Time) (bool, error) {
	if requestDate.Equal(today) {
		return false, nil
	}

	if role == domain.RoleAdmin {
		return true, nil
	}

	return false, fmt.Errorf("%w: role=%s, date=%s", ErrPastDateWrite, role, requestDate.Format(domain.DateFormat))
}

// validateRequestedStatus проверяет начальный статус бронирования
// Live поток всегда создает booked; backfill может сразу записать
// терминальный статус (услуга уже состоялась)
func validateRequestedStatus(status *domain.BookingStatus, isBackfill bool) (domain.BookingStatus, error) {
	if status == nil {
		return domain.StatusBooked, nil
	}

	if !isBackfill {
		return "", fmt.Errorf("%w: initial status can only be set by backfill", ErrInvalidStatus)
	}

	switch *status {
	case domain.StatusBooked, domain.StatusDone, domain.StatusNoShow, domain.StatusCancelled:
		return *status, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidStatus, *status)
	}
}
