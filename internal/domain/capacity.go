package domain

import "github.com/m04kA/SMC-DayCenterService/pkg/types"

// CapacityFor returns the maximum number of simultaneous active bookings a
// single slot may hold, or CapacityUnlimited for uncapacitated modalities.
func CapacityFor(serviceType ServiceType, modality Modality) int {
	if modality == ModalityOffsite {
		return CapacityUnlimited
	}

	switch serviceType {
	case ServiceShower:
		return ShowerSlotCapacity
	case ServiceLaundry:
		return LaundrySlotCapacity
	default:
		return CapacityUnlimited
	}
}

// Occupancy counts the active bookings occupying the given slot within a
// caller-supplied snapshot of one day's bookings for one service type.
// Side-effect-free; the snapshot is owned by the caller.
func Occupancy(bookings []*Booking, startTime types.TimeString) int {
	count := 0
	for _, booking := range bookings {
		if !booking.OccupiesSlot() {
			continue
		}
		if *booking.StartTime == startTime {
			count++
		}
	}
	return count
}

// IsSlotFull reports whether the slot has no remaining capacity.
// Uncapacitated modalities are never full.
func IsSlotFull(bookings []*Booking, startTime types.TimeString, serviceType ServiceType, modality Modality) bool {
	capacity := CapacityFor(serviceType, modality)
	if capacity == CapacityUnlimited {
		return false
	}
	return Occupancy(bookings, startTime) >= capacity
}
