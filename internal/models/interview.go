package models

import (
	"time"

	"github.com/google/uuid"
)

type Interview struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Role      string    `gorm:"type:text" json:"role"`
	Level     string    `gorm:"type:text" json:"level"`
	Type      string    `gorm:"type:text" json:"type"`
	Finalized bool      `gorm:"not null;default:false" json:"finalized"`
	Questions []string  `gorm:"type:jsonb;serializer:json" json:"questions,omitempty"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Interview) TableName() string {
	return "interviews"
}
