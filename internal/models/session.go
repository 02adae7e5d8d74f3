package models

import (
	"time"
)

// Session represents a single timed KMC (skin-to-skin) session.
// A session is active while FinishedAt is NULL; the recorded duration is
// computed from wall-clock start/stop instants when the session is stopped,
// never from client-side tick counts.
type Session struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ParentID   uint       `gorm:"not null;index" json:"parent_id"`
	BabyID     *uint      `gorm:"index" json:"baby_id"` // snapshot of the parent's baby at start
	StartedAt  time.Time  `gorm:"not null" json:"started_at"`
	FinishedAt *time.Time `json:"finished_at"`
	DurationMS int64      `json:"duration_ms"`

	// Relationships
	Parent Parent `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"parent"`
	Baby   *Baby  `json:"baby,omitempty"`
}

// Active reports whether the session is still open.
func (s *Session) Active() bool {
	return s.FinishedAt == nil
}
