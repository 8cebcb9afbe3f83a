package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "valid time", input: "07:30", want: "07:30"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "end of day", input: "23:59", want: "23:59"},
		{name: "missing zero padding", input: "7:30", wantErr: true},
		{name: "with seconds", input: "07:30:00", wantErr: true},
		{name: "out of range hour", input: "24:00", wantErr: true},
		{name: "out of range minute", input: "10:60", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Compare(t *testing.T) {
	assert.True(t, TimeString("07:30").IsBefore("08:00"))
	assert.True(t, TimeString("08:00").IsAfter("07:30"))
	assert.False(t, TimeString("07:30").IsBefore("07:30"))

	// Лексикографическое сравнение корректно благодаря нулям слева
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("07:30").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("08:00"), got)

	got, err = TimeString("08:00").AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:00"), got)

	// Переход через полночь запрещен
	_, err = TimeString("23:45").AddMinutes(30)
	require.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	// Postgres TIME приходит как "HH:MM:SS"
	require.NoError(t, ts.Scan("07:30:00"))
	assert.Equal(t, TimeString("07:30"), ts)

	require.NoError(t, ts.Scan([]byte("08:00:00")))
	assert.Equal(t, TimeString("08:00"), ts)

	require.NoError(t, ts.Scan(time.Date(2025, 10, 13, 9, 30, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("09:30"), ts)

	// NULL колонка
	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("07:30").Value()
	require.NoError(t, err)
	assert.Equal(t, "07:30", v)

	_, err = TimeString("not-a-time").Value()
	require.ErrorIs(t, err, ErrInvalidTimeString)
}
