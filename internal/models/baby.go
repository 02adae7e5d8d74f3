package models

import (
	"time"
)

// Baby represents an admitted baby on the ward
type Baby struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name  string `gorm:"not null" json:"name"`
	UHID  string `gorm:"column:uhid;uniqueIndex;not null" json:"uhid"` // unique hospital identifier
	BedNo string `json:"bed_no"`

	// Relationships
	Parents  []Parent  `gorm:"foreignKey:BabyID" json:"parents,omitempty"`
	Sessions []Session `gorm:"foreignKey:BabyID" json:"sessions,omitempty"`
}
