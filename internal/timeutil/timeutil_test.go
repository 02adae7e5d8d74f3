package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name string
		ms   int64
		want string
	}{
		{"zero", 0, "00:00:00"},
		{"negative clamps to zero", -5, "00:00:00"},
		{"sub-second floors to zero", 999, "00:00:00"},
		{"one hour one minute one second", 3661000, "01:01:01"},
		{"ninety seconds", 90000, "00:01:30"},
		{"just under a day", 86399999, "23:59:59"},
		{"hours are not capped at 24", 90000000, "25:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDuration(tt.ms))
		})
	}
}

func TestFormatDurationText(t *testing.T) {
	tests := []struct {
		name string
		ms   int64
		want string
	}{
		{"zero renders plural hours", 0, "0 hours"},
		{"negative clamps to zero", -1, "0 hours"},
		{"under a minute floors to zero min", 59999, "0 min"},
		{"ninety seconds floors to one minute", 90000, "1 min"},
		{"thirty minutes", 1800000, "30 min"},
		{"exactly one hour", 3600000, "1 hr"},
		{"hour and a half", 5400000, "1 hr 30 min"},
		{"two hours", 7200000, "2 hr"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDurationText(tt.ms))
		})
	}
}

func TestDayRange(t *testing.T) {
	ref := time.Date(2024, 5, 15, 14, 30, 12, 0, time.Local)
	start, end := DayRange(ref)

	assert.Equal(t, time.Date(2024, 5, 15, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, time.Date(2024, 5, 15, 23, 59, 59, int(999*time.Millisecond), time.Local), end)
}

func TestWeekRange_AnchorsToMonday(t *testing.T) {
	// 2024-05-15 was a Wednesday; its week is Mon May 13 - Sun May 19.
	monday := time.Date(2024, 5, 13, 0, 0, 0, 0, time.Local)
	sundayEnd := time.Date(2024, 5, 19, 23, 59, 59, int(999*time.Millisecond), time.Local)

	tests := []struct {
		name string
		ref  time.Time
	}{
		{"wednesday", time.Date(2024, 5, 15, 10, 0, 0, 0, time.Local)},
		{"monday itself", time.Date(2024, 5, 13, 0, 0, 0, 0, time.Local)},
		{"sunday belongs to the preceding monday", time.Date(2024, 5, 19, 23, 0, 0, 0, time.Local)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := WeekRange(tt.ref)
			assert.Equal(t, monday, start)
			assert.Equal(t, sundayEnd, end)
		})
	}
}

func TestWeekRange_Boundaries(t *testing.T) {
	ref := time.Date(2024, 5, 15, 12, 0, 0, 0, time.Local) // Wednesday
	start, end := WeekRange(ref)

	mondayMidnight := time.Date(2024, 5, 13, 0, 0, 0, 0, time.Local)
	precedingSunday := time.Date(2024, 5, 12, 23, 59, 59, int(999*time.Millisecond), time.Local)
	weekSundayEnd := time.Date(2024, 5, 19, 23, 59, 59, int(999*time.Millisecond), time.Local)
	nextMonday := time.Date(2024, 5, 20, 0, 0, 0, 0, time.Local)

	// Monday 00:00:00.000 is inside the window.
	assert.False(t, mondayMidnight.Before(start))
	// The preceding Sunday 23:59:59.999 is not.
	assert.True(t, precedingSunday.Before(start))
	// Sunday 23:59:59.999 is the inclusive upper bound.
	assert.False(t, weekSundayEnd.After(end))
	// The next Monday is excluded.
	assert.True(t, nextMonday.After(end))
}
