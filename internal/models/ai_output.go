package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VariationsPerBatch is the number of variations generated per request.
const VariationsPerBatch = 4

// AIOutput is one generated variation. VariationNumber runs 1..4 and
// defines display order within a batch.
type AIOutput struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	InputID         uuid.UUID `gorm:"type:uuid;not null;index" json:"input_id"`
	VariationNumber int       `gorm:"not null" json:"variation_number"`
	Content         string    `gorm:"type:text;not null" json:"content"`
	CreatedAt       time.Time `json:"created_at"`
}

func (AIOutput) TableName() string {
	return "ai_outputs"
}

func (o *AIOutput) BeforeCreate(tx *gorm.DB) error {
	assignID(&o.ID)
	return nil
}
