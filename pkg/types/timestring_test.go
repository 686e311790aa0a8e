package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())

	_, err = NewTimeStringFromString("9:30")
	assert.Error(t, err)

	_, err = NewTimeStringFromString("25:00")
	assert.Error(t, err)

	_, err = NewTimeStringFromString("")
	assert.Error(t, err)
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("09:30")

	end, err := ts.AddMinutes(240)
	require.NoError(t, err)
	assert.Equal(t, TimeString("13:30"), end)

	// Выход за пределы суток - ошибка, не перенос на следующий день
	_, err = TimeString("23:00").AddMinutes(120)
	assert.Error(t, err)
}

func TestTimeString_Ordering(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.True(t, TimeString("10:00").IsAfter("09:59"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
}

func TestTimeString_OnDate(t *testing.T) {
	day := time.Date(2026, time.July, 14, 0, 0, 0, 0, time.UTC)

	at, err := TimeString("09:30").OnDate(day)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.July, 14, 9, 30, 0, 0, time.UTC), at)
}

func TestTimeString_ScanTruncatesSeconds(t *testing.T) {
	var ts TimeString
	require.NoError(t, ts.Scan("09:30:00"))
	assert.Equal(t, TimeString("09:30"), ts)

	require.NoError(t, ts.Scan([]byte("14:15")))
	assert.Equal(t, TimeString("14:15"), ts)
}
