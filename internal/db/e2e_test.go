package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karthikas/kmcward/internal/timeutil"
)

// TestKMCFlow walks the whole happy path: an admin registers a baby and a
// parent, the parent signs in with the issued PIN, times a 90-second
// session, and the daily total reflects exactly that session.
func TestKMCFlow(t *testing.T) {
	newTestDB(t)

	baby, err := AddBaby("Test Baby", "U1", "")
	require.NoError(t, err)

	registered, err := AddParent("Lakshmi", "9876543210", &baby.ID)
	require.NoError(t, err)

	parent, err := LoginParent("9876543210", registered.PIN)
	require.NoError(t, err)

	start := time.Date(2024, 5, 15, 10, 0, 0, 0, time.Local)
	clock := setClock(t, start)

	session, err := StartSession(parent.ID)
	require.NoError(t, err)

	*clock = start.Add(90 * time.Second)
	stopped, err := StopSession(session.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 90000, stopped.DurationMS)

	dayStart, dayEnd := timeutil.DayRange(*clock)
	todaySessions, err := CompletedByParentInRange(parent.ID, dayStart, dayEnd)
	require.NoError(t, err)

	var todayMS int64
	for _, s := range todaySessions {
		todayMS += s.DurationMS
	}
	assert.EqualValues(t, 90000, todayMS)

	// 1.5 minutes floors to a whole minute in the display string.
	assert.Equal(t, "1 min", timeutil.FormatDurationText(todayMS))

	// The baby's totals see the same session through the snapshot link.
	todayByBaby, err := CompletedByBabyInRange(baby.ID, dayStart, dayEnd)
	require.NoError(t, err)
	require.Len(t, todayByBaby, 1)
	assert.EqualValues(t, 90000, todayByBaby[0].DurationMS)
}
