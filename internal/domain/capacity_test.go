package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-DayCenterService/pkg/ptr"
	"github.com/m04kA/SMC-DayCenterService/pkg/types"
)

func onsiteBooking(startTime types.TimeString, status BookingStatus) *Booking {
	return &Booking{
		ServiceType: ServiceShower,
		Modality:    ModalityOnsite,
		StartTime:   ptr.Ptr(startTime),
		Status:      status,
	}
}

func TestCapacityFor(t *testing.T) {
	assert.Equal(t, 2, CapacityFor(ServiceShower, ModalityOnsite))
	assert.Equal(t, 1, CapacityFor(ServiceLaundry, ModalityOnsite))
	assert.Equal(t, CapacityUnlimited, CapacityFor(ServiceLaundry, ModalityOffsite))
}

func TestOccupancy_CountsOnlyActiveInSlot(t *testing.T) {
	bookings := []*Booking{
		onsiteBooking("07:30", StatusBooked),
		onsiteBooking("07:30", StatusWaiting),
		onsiteBooking("07:30", StatusCancelled), // не занимает вместимость
		onsiteBooking("07:30", StatusDone),      // не занимает вместимость
		onsiteBooking("08:00", StatusBooked),    // другой слот
		{ServiceType: ServiceLaundry, Modality: ModalityOffsite, Status: StatusBooked}, // offsite без слота
	}

	assert.Equal(t, 2, Occupancy(bookings, "07:30"))
	assert.Equal(t, 1, Occupancy(bookings, "08:00"))
	assert.Equal(t, 0, Occupancy(bookings, "08:30"))
}

func TestIsSlotFull(t *testing.T) {
	bookings := []*Booking{
		onsiteBooking("07:30", StatusBooked),
		onsiteBooking("07:30", StatusBooked),
		onsiteBooking("08:00", StatusBooked),
	}

	assert.True(t, IsSlotFull(bookings, "07:30", ServiceShower, ModalityOnsite))
	assert.False(t, IsSlotFull(bookings, "08:00", ServiceShower, ModalityOnsite))

	// Прачечная onsite: одна стиральная машина
	assert.True(t, IsSlotFull(bookings, "08:00", ServiceLaundry, ModalityOnsite))

	// Offsite никогда не заполняется
	assert.False(t, IsSlotFull(bookings, "07:30", ServiceLaundry, ModalityOffsite))
}

func TestBooking_OccupiesSlot(t *testing.T) {
	assert.True(t, onsiteBooking("07:30", StatusBooked).OccupiesSlot())
	assert.True(t, onsiteBooking("07:30", StatusWaiting).OccupiesSlot())
	assert.False(t, onsiteBooking("07:30", StatusCancelled).OccupiesSlot())

	offsite := &Booking{Modality: ModalityOffsite, Status: StatusBooked}
	assert.False(t, offsite.OccupiesSlot())
}
