package db

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/karthikas/kmcward/internal/models"
)

// timeNow is swapped out in tests to pin session durations.
var timeNow = time.Now

// StartSession opens a new KMC session for a parent. At most one session
// may be open per parent; a second start is rejected rather than
// auto-closing the first. The parent's baby link is snapshotted onto the
// session at this point and not re-derived later.
func StartSession(parentID uint) (*models.Session, error) {
	parent, err := GetParentByID(parentID)
	if err != nil {
		return nil, err
	}

	var active models.Session
	err = DB.Where("parent_id = ? AND finished_at IS NULL", parentID).First(&active).Error
	if err == nil {
		return nil, fmt.Errorf("%w for this parent, stop it first", ErrSessionActive)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	session := models.Session{
		ParentID:  parentID,
		BabyID:    parent.BabyID,
		StartedAt: timeNow(),
	}
	if err := DB.Create(&session).Error; err != nil {
		return nil, err
	}

	// Load the relationships for display
	DB.Preload("Parent").Preload("Baby").First(&session, session.ID)

	return &session, nil
}

// StopSession closes an open session. The duration is recomputed here from
// the stored start instant and the current wall clock; a caller-supplied
// elapsed value is never trusted. Stopping a session that does not exist or
// is already closed returns ErrNotFound.
func StopSession(sessionID uint) (*models.Session, error) {
	var session models.Session
	err := DB.Where("id = ? AND finished_at IS NULL", sessionID).Preload("Parent").Preload("Baby").First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: no open session #%d", ErrNotFound, sessionID)
	}
	if err != nil {
		return nil, err
	}

	now := timeNow()
	session.FinishedAt = &now
	session.DurationMS = now.Sub(session.StartedAt).Milliseconds()

	if err := DB.Save(&session).Error; err != nil {
		return nil, err
	}

	return &session, nil
}

// StopActiveSession closes the parent's open session, if any.
func StopActiveSession(parentID uint) (*models.Session, error) {
	session, err := ActiveSession(parentID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, fmt.Errorf("%w: no active session", ErrNotFound)
	}
	return StopSession(session.ID)
}

// ActiveSession returns the parent's open session, or nil when there is
// none. After an app relaunch the elapsed time is reconstructed from
// now - StartedAt, so a backgrounded timer loses nothing.
func ActiveSession(parentID uint) (*models.Session, error) {
	var session models.Session
	err := DB.Where("parent_id = ? AND finished_at IS NULL", parentID).Preload("Parent").Preload("Baby").First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// CompletedByParent lists a parent's finished sessions, newest first.
func CompletedByParent(parentID uint) ([]models.Session, error) {
	var sessions []models.Session
	err := DB.Where("parent_id = ? AND finished_at IS NOT NULL", parentID).
		Order("started_at DESC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

// CompletedByBaby lists a baby's finished sessions, newest first.
func CompletedByBaby(babyID uint) ([]models.Session, error) {
	var sessions []models.Session
	err := DB.Where("baby_id = ? AND finished_at IS NOT NULL", babyID).
		Order("started_at DESC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

// CompletedByParentInRange lists a parent's finished sessions whose start
// falls inside [start, end], bounds inclusive.
func CompletedByParentInRange(parentID uint, start, end time.Time) ([]models.Session, error) {
	var sessions []models.Session
	err := DB.Where("parent_id = ? AND started_at >= ? AND started_at <= ? AND finished_at IS NOT NULL",
		parentID, start, end).
		Order("started_at ASC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

// CompletedByBabyInRange lists a baby's finished sessions whose start falls
// inside [start, end], bounds inclusive.
func CompletedByBabyInRange(babyID uint, start, end time.Time) ([]models.Session, error) {
	var sessions []models.Session
	err := DB.Where("baby_id = ? AND started_at >= ? AND started_at <= ? AND finished_at IS NOT NULL",
		babyID, start, end).
		Order("started_at ASC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}
