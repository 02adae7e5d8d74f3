package db

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/karthikas/kmcward/internal/models"
	"github.com/karthikas/kmcward/internal/validate"
)

// AddParent registers a parent account and issues a fresh 4-digit PIN.
// The PIN is only shown once, at registration; the returned record carries
// it so the caller can display it.
func AddParent(motherName, mobile string, babyID *uint) (*models.Parent, error) {
	motherName = strings.TrimSpace(motherName)
	if motherName == "" {
		return nil, fmt.Errorf("%w: mother name is required", ErrValidation)
	}
	if mobile == "" {
		return nil, fmt.Errorf("%w: mobile number is required", ErrValidation)
	}
	if !validate.ValidMobile(mobile) {
		return nil, fmt.Errorf("%w: invalid mobile number", ErrValidation)
	}

	if babyID != nil {
		if _, err := GetBabyByID(*babyID); err != nil {
			return nil, err
		}
	}

	var existing models.Parent
	err := DB.Where("mobile = ?", mobile).First(&existing).Error
	if err == nil {
		return nil, fmt.Errorf("%w: mobile number %s", ErrConflict, mobile)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	parent := models.Parent{
		MotherName: motherName,
		Mobile:     mobile,
		PIN:        validate.GeneratePIN(),
		BabyID:     babyID,
	}
	if err := DB.Create(&parent).Error; err != nil {
		return nil, err
	}

	return &parent, nil
}

// LoginParent authenticates by exact (mobile, PIN) match. The error never
// says which half of the pair was wrong.
func LoginParent(mobile, pin string) (*models.Parent, error) {
	var parent models.Parent
	err := DB.Where("mobile = ? AND pin = ?", mobile, pin).First(&parent).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBadCredentials
	}
	if err != nil {
		return nil, err
	}
	return &parent, nil
}

// GetParentByID retrieves a parent by ID.
func GetParentByID(id uint) (*models.Parent, error) {
	var parent models.Parent
	err := DB.Preload("Baby").First(&parent, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: parent #%d", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &parent, nil
}

// GetParentsByBaby lists the parents linked to a baby. A baby may have more
// than one linked parent (mother and father).
func GetParentsByBaby(babyID uint) ([]models.Parent, error) {
	var parents []models.Parent
	if err := DB.Where("baby_id = ?", babyID).Find(&parents).Error; err != nil {
		return nil, err
	}
	return parents, nil
}
