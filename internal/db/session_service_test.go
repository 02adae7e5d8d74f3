package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionLifecycle(t *testing.T) {
	newTestDB(t)

	baby := newTestBaby(t, "Test Baby", "U1")
	parent := newTestParent(t, "Lakshmi", "9876543210", &baby.ID)

	start := time.Date(2024, 5, 15, 10, 0, 0, 0, time.Local)
	clock := setClock(t, start)

	// No session before start
	active, err := ActiveSession(parent.ID)
	require.NoError(t, err)
	assert.Nil(t, active)

	session, err := StartSession(parent.ID)
	require.NoError(t, err)
	assert.True(t, session.Active())
	assert.True(t, session.StartedAt.Equal(start))
	assert.EqualValues(t, 0, session.DurationMS)
	require.NotNil(t, session.BabyID)
	assert.Equal(t, baby.ID, *session.BabyID) // baby link snapshotted at start

	// The started session is the active one
	active, err = ActiveSession(parent.ID)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, session.ID, active.ID)

	// Stop 90 seconds later; duration comes from the wall clock, not from
	// anything the caller supplies.
	*clock = start.Add(90 * time.Second)
	stopped, err := StopSession(session.ID)
	require.NoError(t, err)
	assert.False(t, stopped.Active())
	assert.EqualValues(t, 90000, stopped.DurationMS)

	// No active session after stop
	active, err = ActiveSession(parent.ID)
	require.NoError(t, err)
	assert.Nil(t, active)
}

func TestStartSession_RejectsSecondActive(t *testing.T) {
	newTestDB(t)

	parent := newTestParent(t, "Lakshmi", "9876543210", nil)

	_, err := StartSession(parent.ID)
	require.NoError(t, err)

	_, err = StartSession(parent.ID)
	assert.ErrorIs(t, err, ErrSessionActive)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestStartSession_PerParent(t *testing.T) {
	newTestDB(t)

	first := newTestParent(t, "Lakshmi", "9876543210", nil)
	second := newTestParent(t, "Sita", "9876543211", nil)

	_, err := StartSession(first.ID)
	require.NoError(t, err)

	// A different parent can still start their own session
	_, err = StartSession(second.ID)
	require.NoError(t, err)
}

func TestStartSession_UnknownParent(t *testing.T) {
	newTestDB(t)

	_, err := StartSession(42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStopSession_NotFound(t *testing.T) {
	newTestDB(t)

	_, err := StopSession(42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStopSession_AlreadyStopped(t *testing.T) {
	newTestDB(t)

	parent := newTestParent(t, "Lakshmi", "9876543210", nil)

	session, err := StartSession(parent.ID)
	require.NoError(t, err)
	_, err = StopSession(session.ID)
	require.NoError(t, err)

	// Sessions are never reopened; a second stop is an explicit error.
	_, err = StopSession(session.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStopActiveSession_NoneRunning(t *testing.T) {
	newTestDB(t)

	parent := newTestParent(t, "Lakshmi", "9876543210", nil)

	_, err := StopActiveSession(parent.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestActiveSession_SurvivesRestart(t *testing.T) {
	newTestDB(t)

	parent := newTestParent(t, "Lakshmi", "9876543210", nil)

	start := time.Date(2024, 5, 15, 10, 0, 0, 0, time.Local)
	setClock(t, start)

	session, err := StartSession(parent.ID)
	require.NoError(t, err)

	// A relaunch only has the stored record; elapsed time is recomputed
	// from the stored start instant.
	recovered, err := ActiveSession(parent.ID)
	require.NoError(t, err)
	require.NotNil(t, recovered)
	assert.True(t, recovered.StartedAt.Equal(session.StartedAt))
	assert.True(t, recovered.Active())
}

func TestCompletedByParent_ExcludesActive(t *testing.T) {
	newTestDB(t)

	parent := newTestParent(t, "Lakshmi", "9876543210", nil)

	start := time.Date(2024, 5, 15, 10, 0, 0, 0, time.Local)
	clock := setClock(t, start)

	session, err := StartSession(parent.ID)
	require.NoError(t, err)
	*clock = start.Add(10 * time.Minute)
	_, err = StopSession(session.ID)
	require.NoError(t, err)

	// Second session left running
	*clock = start.Add(20 * time.Minute)
	_, err = StartSession(parent.ID)
	require.NoError(t, err)

	completed, err := CompletedByParent(parent.ID)
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, session.ID, completed[0].ID)
}

func TestCompletedByParentInRange_Boundaries(t *testing.T) {
	newTestDB(t)

	parent := newTestParent(t, "Lakshmi", "9876543210", nil)
	clock := setClock(t, time.Now())

	startAt := func(at time.Time) {
		*clock = at
		session, err := StartSession(parent.ID)
		require.NoError(t, err)
		*clock = at.Add(time.Minute)
		_, err = StopSession(session.ID)
		require.NoError(t, err)
	}

	monday := time.Date(2024, 5, 13, 0, 0, 0, 0, time.Local)
	precedingSunday := time.Date(2024, 5, 12, 23, 59, 59, int(999*time.Millisecond), time.Local)
	sundayEnd := time.Date(2024, 5, 19, 23, 59, 59, int(999*time.Millisecond), time.Local)

	startAt(precedingSunday)
	startAt(monday)
	startAt(sundayEnd)

	sessions, err := CompletedByParentInRange(parent.ID, monday, sundayEnd)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.True(t, sessions[0].StartedAt.Equal(monday))
	assert.True(t, sessions[1].StartedAt.Equal(sundayEnd))
}
