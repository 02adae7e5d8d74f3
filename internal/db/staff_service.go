package db

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/karthikas/kmcward/internal/models"
	"github.com/karthikas/kmcward/internal/validate"
)

// AddStaff registers a staff account. Usernames are folded to lowercase
// before the uniqueness check and before storage.
func AddStaff(name, username, password string, isAdmin bool) (*models.Staff, error) {
	name = strings.TrimSpace(name)
	username = validate.NormalizeUsername(username)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", ErrValidation)
	}
	if len(password) < 4 {
		return nil, fmt.Errorf("%w: password must be at least 4 characters", ErrValidation)
	}

	var existing models.Staff
	err := DB.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil, fmt.Errorf("%w: username %s", ErrConflict, username)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	staff := models.Staff{
		Name:     name,
		Username: username,
		Password: password,
		IsAdmin:  isAdmin,
	}
	if err := DB.Create(&staff).Error; err != nil {
		return nil, err
	}

	return &staff, nil
}

// LoginStaff authenticates by exact (username, password) match, folding the
// username the same way AddStaff stores it.
func LoginStaff(username, password string) (*models.Staff, error) {
	username = validate.NormalizeUsername(username)

	var staff models.Staff
	err := DB.Where("username = ? AND password = ?", username, password).First(&staff).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBadCredentials
	}
	if err != nil {
		return nil, err
	}
	return &staff, nil
}
