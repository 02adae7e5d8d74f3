package models

import (
	"time"
)

// Parent represents a parent account that can log KMC sessions.
// Login is by (mobile, PIN) exact match. The PIN is stored as issued;
// hashing credentials is out of scope for the ward deployment.
type Parent struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	MotherName string `gorm:"not null" json:"mother_name"`
	Mobile     string `gorm:"uniqueIndex;not null" json:"mobile"`
	PIN        string `gorm:"not null" json:"-"`
	BabyID     *uint  `json:"baby_id"`

	// Relationships
	Baby *Baby `gorm:"constraint:OnUpdate:CASCADE;" json:"baby,omitempty"`
}
