package timeutil

import (
	"fmt"
	"time"
)

// FormatDuration renders a millisecond duration as zero-padded HH:MM:SS,
// floor-truncated to whole seconds. Zero or negative input renders 00:00:00.
func FormatDuration(ms int64) string {
	if ms <= 0 {
		return "00:00:00"
	}

	totalSeconds := ms / 1000
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60

	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// FormatDurationText renders a millisecond duration as a short human string
// using whole minutes: "1 hr 30 min", "1 hr", "30 min". Zero or negative
// input renders "0 hours" — the original ward app used the plural form only
// for the zero value, and the wording is kept as-is.
func FormatDurationText(ms int64) string {
	if ms <= 0 {
		return "0 hours"
	}

	totalMinutes := ms / 60000
	hours := totalMinutes / 60
	minutes := totalMinutes % 60

	if hours == 0 {
		return fmt.Sprintf("%d min", minutes)
	}
	if minutes == 0 {
		return fmt.Sprintf("%d hr", hours)
	}
	return fmt.Sprintf("%d hr %d min", hours, minutes)
}

// FormatDate renders a timestamp for history listings.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02 Jan 2006")
}

// FormatTime renders a clock time for history listings.
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("15:04")
}

// DayRange returns the inclusive bounds of the calendar day containing ref,
// in ref's location: [00:00:00.000, 23:59:59.999].
func DayRange(ref time.Time) (time.Time, time.Time) {
	start := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	end := time.Date(ref.Year(), ref.Month(), ref.Day(), 23, 59, 59, int(999*time.Millisecond), ref.Location())
	return start, end
}

// WeekRange returns the inclusive bounds of the Monday-first week containing
// ref: [Monday 00:00:00.000, Sunday 23:59:59.999]. Sunday belongs to the
// week that started the previous Monday (offset -6), every other weekday
// anchors back by 1-weekday days.
func WeekRange(ref time.Time) (time.Time, time.Time) {
	weekday := int(ref.Weekday()) // Sunday == 0
	offset := 1 - weekday
	if weekday == 0 {
		offset = -6
	}

	monday := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location()).AddDate(0, 0, offset)
	sunday := monday.AddDate(0, 0, 6)
	end := time.Date(sunday.Year(), sunday.Month(), sunday.Day(), 23, 59, 59, int(999*time.Millisecond), sunday.Location())
	return monday, end
}
