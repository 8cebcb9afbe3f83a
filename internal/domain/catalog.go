package domain

import (
	"time"

	"github.com/m04kA/SMC-DayCenterService/pkg/types"
)

// DayClass is the slot-generation variant for a calendar day.
// Saturday runs a reduced schedule; Sunday the center is closed.
type DayClass string

const (
	DayClassWeekday  DayClass = "weekday"
	DayClassSaturday DayClass = "saturday"
)

// ServiceSlot is one fixed time window in the catalog for a service type
// and day class. Slots are derived, never persisted: a booking references
// its slot by (serviceType, date, startTime).
type ServiceSlot struct {
	ServiceType     ServiceType
	DayClass        DayClass
	StartTime       types.TimeString
	DurationMinutes int
	Ordinal         int // 0-based chronological index
}

// slotSchedule defines the catalog shape for one (serviceType, dayClass).
type slotSchedule struct {
	firstStart      types.TimeString
	slotCount       int
	durationMinutes int
}

// Fixed operating schedule. Weekday shower slots start earlier and are more
// numerous than Saturday's; the two catalogs are never equal.
var slotSchedules = map[ServiceType]map[DayClass]slotSchedule{
	ServiceShower: {
		DayClassWeekday:  {firstStart: "07:30", slotCount: 8, durationMinutes: 30},
		DayClassSaturday: {firstStart: "08:30", slotCount: 5, durationMinutes: 30},
	},
	ServiceLaundry: {
		DayClassWeekday:  {firstStart: "08:00", slotCount: 6, durationMinutes: 60},
		DayClassSaturday: {firstStart: "09:00", slotCount: 3, durationMinutes: 60},
	},
}

// DayClassOf classifies a calendar day. Returns false for Sunday, when the
// center is closed and no catalog exists.
func DayClassOf(date time.Time) (DayClass, bool) {
	switch date.Weekday() {
	case time.Sunday:
		return "", false
	case time.Saturday:
		return DayClassSaturday, true
	default:
		return DayClassWeekday, true
	}
}

// GenerateSlots returns the ordered slot catalog for a service type and
// calendar day. Deterministic and finite: the same inputs always yield the
// same sequence. Returns an empty catalog on closed days.
func GenerateSlots(serviceType ServiceType, date time.Time) []ServiceSlot {
	dayClass, open := DayClassOf(date)
	if !open {
		return []ServiceSlot{}
	}

	schedule, ok := slotSchedules[serviceType][dayClass]
	if !ok {
		return []ServiceSlot{}
	}

	slots := make([]ServiceSlot, 0, schedule.slotCount)
	start := schedule.firstStart

	for i := 0; i < schedule.slotCount; i++ {
		slots = append(slots, ServiceSlot{
			ServiceType:     serviceType,
			DayClass:        dayClass,
			StartTime:       start,
			DurationMinutes: schedule.durationMinutes,
			Ordinal:         i,
		})

		next, err := start.AddMinutes(schedule.durationMinutes)
		if err != nil {
			// schedule constants never cross midnight
			break
		}
		start = next
	}

	return slots
}

// FindSlot looks up a catalog member by start time.
func FindSlot(catalog []ServiceSlot, startTime types.TimeString) (ServiceSlot, bool) {
	for _, slot := range catalog {
		if slot.StartTime == startTime {
			return slot, true
		}
	}
	return ServiceSlot{}, false
}
