package db

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/karthikas/kmcward/internal/models"
)

// AddBaby registers a new baby on the ward. The UHID must be unique.
func AddBaby(name, uhid, bedNo string) (*models.Baby, error) {
	name = strings.TrimSpace(name)
	uhid = strings.TrimSpace(uhid)
	if name == "" {
		return nil, fmt.Errorf("%w: baby name is required", ErrValidation)
	}
	if uhid == "" {
		return nil, fmt.Errorf("%w: UHID is required", ErrValidation)
	}

	var existing models.Baby
	err := DB.Where("uhid = ?", uhid).First(&existing).Error
	if err == nil {
		return nil, fmt.Errorf("%w: baby with UHID %s", ErrConflict, uhid)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	baby := models.Baby{
		Name:  name,
		UHID:  uhid,
		BedNo: strings.TrimSpace(bedNo),
	}
	if err := DB.Create(&baby).Error; err != nil {
		return nil, err
	}

	return &baby, nil
}

// GetBabies lists every baby on the ward, ordered by name.
func GetBabies() ([]models.Baby, error) {
	var babies []models.Baby
	if err := DB.Order("name").Find(&babies).Error; err != nil {
		return nil, err
	}
	return babies, nil
}

// GetBabyByID retrieves a baby by ID.
func GetBabyByID(id uint) (*models.Baby, error) {
	var baby models.Baby
	err := DB.First(&baby, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: baby #%d", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &baby, nil
}

// UpdateBabyBed reassigns a baby's bed. This is the only field that may
// change after registration.
func UpdateBabyBed(id uint, bedNo string) (*models.Baby, error) {
	baby, err := GetBabyByID(id)
	if err != nil {
		return nil, err
	}

	baby.BedNo = strings.TrimSpace(bedNo)
	if err := DB.Save(baby).Error; err != nil {
		return nil, err
	}
	return baby, nil
}
