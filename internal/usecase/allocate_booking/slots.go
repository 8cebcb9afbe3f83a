package allocate_booking

import (
	"github.com/m04kA/SMC-DayCenterService/internal/domain"
	"github.com/m04kA/SMC-DayCenterService/pkg/types"
)

// checkExplicitSlot проверяет явно выбранный слот
// Слот обязан быть членом каталога всегда; проверки блокировки и
// заполненности пропускаются для backfill (административный override)
func checkExplicitSlot(
	catalog []domain.ServiceSlot,
	startTime types.TimeString,
	bookings []*domain.Booking,
	blocked map[types.TimeString]struct{},
	serviceType domain.ServiceType,
	isBackfill bool,
) (domain.ServiceSlot, error) {
	slot, ok := domain.FindSlot(catalog, startTime)
	if !ok {
		return domain.ServiceSlot{}, ErrInvalidSlot
	}

	if isBackfill {
		return slot, nil
	}

	if _, isBlocked := blocked[startTime]; isBlocked {
		return domain.ServiceSlot{}, ErrSlotBlocked
	}

	if domain.IsSlotFull(bookings, startTime, serviceType, domain.ModalityOnsite) {
		return domain.ServiceSlot{}, ErrSlotFull
	}

	return slot, nil
}

// firstFit выбирает первый подходящий слот при автоматическом выборе
//
// Детерминированный first-fit по хронологически упорядоченному каталогу -
// это политика справедливости системы: первым всегда предлагается самое
// раннее свободное окно, независимо от порядка поступления запросов.
// Для backfill проверки блокировки и заполненности пропускаются - берется
// первый слот каталога.
func firstFit(
	catalog []domain.ServiceSlot,
	bookings []*domain.Booking,
	blocked map[types.TimeString]struct{},
	serviceType domain.ServiceType,
	isBackfill bool,
) (domain.ServiceSlot, bool) {
	for _, slot := range catalog {
		if isBackfill {
			return slot, true
		}

		if _, isBlocked := blocked[slot.StartTime]; isBlocked {
			continue
		}

		if domain.IsSlotFull(bookings, slot.StartTime, serviceType, domain.ModalityOnsite) {
			continue
		}

		return slot, true
	}

	return domain.ServiceSlot{}, false
}
