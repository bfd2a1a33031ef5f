package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Selection is the set of choices a marketer submits to request copy.
type Selection struct {
	CardSlug     string `json:"cardSlug,omitempty"`
	CardName     string `json:"cardName"`
	BankName     string `json:"bankName"`
	Platform     string `json:"platform"`
	Audience     string `json:"audience"`
	Language     string `json:"language"`
	Tone         string `json:"tone"`
	CustomPrompt string `json:"customPrompt,omitempty"`
}

// UserInput is one recorded generation request. Rows are never updated.
type UserInput struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	CardSlug     string     `gorm:"index" json:"card_slug,omitempty"`
	CardName     string     `gorm:"not null" json:"card_name"`
	BankName     string     `json:"bank_name"`
	Platform     string     `gorm:"not null" json:"platform"`
	Audience     string     `gorm:"not null" json:"audience"`
	Language     string     `gorm:"not null" json:"language"`
	Tone         string     `gorm:"not null" json:"tone"`
	CustomPrompt *string    `json:"custom_prompt,omitempty"`
	CreatedAt    time.Time  `gorm:"index" json:"created_at"`
	Outputs      []AIOutput `gorm:"foreignKey:InputID;constraint:OnDelete:CASCADE" json:"outputs,omitempty"`
}

func (UserInput) TableName() string {
	return "user_inputs"
}

func (u *UserInput) BeforeCreate(tx *gorm.DB) error {
	assignID(&u.ID)
	return nil
}

// NewUserInput captures a selection as a new, unsaved input row.
func NewUserInput(sel Selection) *UserInput {
	input := &UserInput{
		CardSlug: sel.CardSlug,
		CardName: sel.CardName,
		BankName: sel.BankName,
		Platform: sel.Platform,
		Audience: sel.Audience,
		Language: sel.Language,
		Tone:     sel.Tone,
	}
	if sel.CustomPrompt != "" {
		custom := sel.CustomPrompt
		input.CustomPrompt = &custom
	}
	return input
}

// Selection returns the captured field values of the input.
func (u *UserInput) Selection() Selection {
	sel := Selection{
		CardSlug: u.CardSlug,
		CardName: u.CardName,
		BankName: u.BankName,
		Platform: u.Platform,
		Audience: u.Audience,
		Language: u.Language,
		Tone:     u.Tone,
	}
	if u.CustomPrompt != nil {
		sel.CustomPrompt = *u.CustomPrompt
	}
	return sel
}
