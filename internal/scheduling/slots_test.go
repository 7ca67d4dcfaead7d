package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDaySlots_Monday(t *testing.T) {
	monday := time.Date(2025, 8, 18, 0, 0, 0, 0, time.UTC)

	slots, err := GenerateDaySlots(monday, allWeekHours())
	require.NoError(t, err)

	require.Len(t, slots, 18)
	assert.Equal(t, "08:00", slots[0])
	assert.Equal(t, "08:30", slots[1])
	assert.Equal(t, "16:30", slots[17])
}

func TestGenerateDaySlots_Grid(t *testing.T) {
	wh := allWeekHours()
	day := time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC)

	for _, step := range []int{5, 20, 30, 45, 60, 90, 120} {
		wh.SlotMinutes = step
		slots, err := GenerateDaySlots(day, wh)
		require.NoError(t, err)
		require.NotEmpty(t, slots)

		start := MustParseClockToMinutes(wh.Start)
		end := MustParseClockToMinutes(wh.End)
		for i, s := range slots {
			m := MustParseClockToMinutes(s)
			assert.Equal(t, start+i*step, m, "step=%d", step)
			assert.LessOrEqual(t, m+step, end, "step=%d", step)
		}
	}
}

func TestGenerateDaySlots_NonWorkingDate(t *testing.T) {
	wh := allWeekHours()
	wh.WorkingDays = []int{1, 2, 3, 4, 5}
	wh.Holidays = []string{"2025-08-15"}

	saturday := time.Date(2025, 8, 16, 0, 0, 0, 0, time.UTC)
	holiday := time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC)

	for _, d := range []time.Time{saturday, holiday} {
		slots, err := GenerateDaySlots(d, wh)
		require.NoError(t, err)
		assert.Empty(t, slots)
	}
}

func TestGenerateDaySlots_InvalidConfig(t *testing.T) {
	day := time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC)

	wh := allWeekHours()
	wh.SlotMinutes = 0
	_, err := GenerateDaySlots(day, wh)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	wh = allWeekHours()
	wh.End = "5pm"
	_, err = GenerateDaySlots(day, wh)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
