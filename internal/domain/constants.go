package domain

// Per-slot capacity constants
const (
	// ShowerSlotCapacity guests per onsite shower slot
	ShowerSlotCapacity = 2

	// LaundrySlotCapacity guests per onsite laundry slot (single occupancy)
	LaundrySlotCapacity = 1

	// CapacityUnlimited marks an uncapacitated modality (offsite laundry)
	CapacityUnlimited = 0
)

// Business validation constants
const (
	MaxNotesLength       = 500
	MaxBagNumberLength   = 32
	MaxBlockReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses список статусов, занимающих вместимость слота
// Используется для фильтрации при подсчёте занятости слотов
var ActiveStatuses = []BookingStatus{
	StatusWaiting,
	StatusBooked,
}

// InactiveStatuses список статусов, освобождающих вместимость слота
var InactiveStatuses = []BookingStatus{
	StatusDone,
	StatusCancelled,
	StatusNoShow,
}

// ValidStatuses все допустимые статусы бронирования
var ValidStatuses = []BookingStatus{
	StatusWaiting,
	StatusBooked,
	StatusDone,
	StatusCancelled,
	StatusNoShow,
}
