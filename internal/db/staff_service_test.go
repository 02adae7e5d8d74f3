package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karthikas/kmcward/internal/models"
)

func TestSeededAdminExists(t *testing.T) {
	newTestDB(t)

	admin, err := LoginStaff("admin", "admin123")
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin)
	assert.Equal(t, "Administrator", admin.Name)
}

func TestSeedAdmin_Idempotent(t *testing.T) {
	newTestDB(t)

	// Initialize already ran once via newTestDB; running the seed again
	// must not create a second admin row.
	require.NoError(t, seedAdmin())

	var count int64
	require.NoError(t, DB.Model(&models.Staff{}).Where("username = ?", "admin").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestAddStaff_FoldsUsername(t *testing.T) {
	newTestDB(t)

	staff, err := AddStaff("Nurse Rao", "  Nurse.Rao  ", "secret", false)
	require.NoError(t, err)
	assert.Equal(t, "nurse.rao", staff.Username)

	// Login folds the same way
	found, err := LoginStaff("NURSE.RAO", "secret")
	require.NoError(t, err)
	assert.Equal(t, staff.ID, found.ID)
}

func TestAddStaff_DuplicateUsernameCaseInsensitive(t *testing.T) {
	newTestDB(t)

	_, err := AddStaff("Nurse Rao", "nurse.rao", "secret", false)
	require.NoError(t, err)

	_, err = AddStaff("Another Rao", "Nurse.Rao", "secret", false)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestAddStaff_Validation(t *testing.T) {
	newTestDB(t)

	_, err := AddStaff("", "nurse", "secret", false)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = AddStaff("Nurse Rao", "", "secret", false)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = AddStaff("Nurse Rao", "nurse", "abc", false)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestLoginStaff_BadCredentials(t *testing.T) {
	newTestDB(t)

	_, err := LoginStaff("admin", "wrong")
	assert.ErrorIs(t, err, ErrBadCredentials)

	_, err = LoginStaff("nobody", "admin123")
	assert.ErrorIs(t, err, ErrBadCredentials)
}
