package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DayCenterService/pkg/types"
)

// 2025-10-13 is a Monday, 2025-10-18 a Saturday, 2025-10-19 a Sunday.
var (
	monday   = time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)
	saturday = time.Date(2025, 10, 18, 0, 0, 0, 0, time.UTC)
	sunday   = time.Date(2025, 10, 19, 0, 0, 0, 0, time.UTC)
)

func TestDayClassOf(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		want     DayClass
		wantOpen bool
	}{
		{name: "weekday", date: monday, want: DayClassWeekday, wantOpen: true},
		{name: "saturday", date: saturday, want: DayClassSaturday, wantOpen: true},
		{name: "sunday closed", date: sunday, wantOpen: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, open := DayClassOf(tt.date)
			assert.Equal(t, tt.wantOpen, open)
			if tt.wantOpen {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestGenerateSlots_WeekdayShower(t *testing.T) {
	slots := GenerateSlots(ServiceShower, monday)

	require.Len(t, slots, 8)
	assert.Equal(t, types.TimeString("07:30"), slots[0].StartTime)
	assert.Equal(t, types.TimeString("08:00"), slots[1].StartTime)
	assert.Equal(t, types.TimeString("11:00"), slots[7].StartTime)

	for i, slot := range slots {
		assert.Equal(t, 30, slot.DurationMinutes)
		assert.Equal(t, i, slot.Ordinal)
		assert.Equal(t, DayClassWeekday, slot.DayClass)
	}
}

func TestGenerateSlots_SaturdayShower(t *testing.T) {
	slots := GenerateSlots(ServiceShower, saturday)

	require.Len(t, slots, 5)
	assert.Equal(t, types.TimeString("08:30"), slots[0].StartTime)
	assert.Equal(t, types.TimeString("10:30"), slots[4].StartTime)
}

func TestGenerateSlots_WeekdayLaundry(t *testing.T) {
	slots := GenerateSlots(ServiceLaundry, monday)

	require.Len(t, slots, 6)
	assert.Equal(t, types.TimeString("08:00"), slots[0].StartTime)
	assert.Equal(t, types.TimeString("13:00"), slots[5].StartTime)

	for _, slot := range slots {
		assert.Equal(t, 60, slot.DurationMinutes)
	}
}

func TestGenerateSlots_SaturdayLaundry(t *testing.T) {
	slots := GenerateSlots(ServiceLaundry, saturday)

	require.Len(t, slots, 3)
	assert.Equal(t, types.TimeString("09:00"), slots[0].StartTime)
	assert.Equal(t, types.TimeString("11:00"), slots[2].StartTime)
}

func TestGenerateSlots_SundayEmpty(t *testing.T) {
	assert.Empty(t, GenerateSlots(ServiceShower, sunday))
	assert.Empty(t, GenerateSlots(ServiceLaundry, sunday))
}

func TestGenerateSlots_Deterministic(t *testing.T) {
	first := GenerateSlots(ServiceShower, monday)
	second := GenerateSlots(ServiceShower, monday)

	assert.Equal(t, first, second)
}

func TestFindSlot(t *testing.T) {
	catalog := GenerateSlots(ServiceShower, monday)

	slot, ok := FindSlot(catalog, "08:30")
	require.True(t, ok)
	assert.Equal(t, 2, slot.Ordinal)

	_, ok = FindSlot(catalog, "07:45")
	assert.False(t, ok)
}
