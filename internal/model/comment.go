package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Comment adalah komentar anonim dari form pendaftaran. Sengaja tidak punya
// relasi apa pun ke Participant; anonimitas dijaga di level skema.
type Comment struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	// No ParticipantID, no UpdatedAt
}

func (c *Comment) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID, err = uuid.NewV7()
	}
	return
}
