package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	GenerationStatusSuccess = "success"
	GenerationStatusFailed  = "failed"
)

// GenerationLog records one call to the generative API.
type GenerationLog struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	InputID        *uuid.UUID `gorm:"type:uuid;index" json:"input_id,omitempty"`
	Input          *UserInput `gorm:"foreignKey:InputID;constraint:OnDelete:SET NULL" json:"-"`
	Prompt         string     `gorm:"type:text;not null" json:"prompt"`
	Status         string     `gorm:"not null;index" json:"status"`
	ErrorMessage   *string    `json:"error_message,omitempty"`
	ResponseTimeMs int64      `json:"response_time_ms"`
	Provider       string     `json:"provider"`
	Model          string     `json:"model"`
	CreatedAt      time.Time  `json:"created_at"`
}

func (GenerationLog) TableName() string {
	return "generation_logs"
}

func (l *GenerationLog) BeforeCreate(tx *gorm.DB) error {
	assignID(&l.ID)
	return nil
}
