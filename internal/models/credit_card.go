package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreditCard is a local copy of a catalog card. The upstream catalog stays
// the source of truth; rows are refreshed whenever a search returns them.
type CreditCard struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	BankName    string    `gorm:"not null" json:"bank_name"`
	Slug        string    `gorm:"uniqueIndex;not null" json:"slug"`
	Description *string   `json:"description,omitempty"`
	Rewards     *string   `json:"rewards,omitempty"`
	JoiningFee  string    `json:"joining_fee,omitempty"`
	AnnualFee   string    `json:"annual_fee,omitempty"`
	CardNetwork string    `json:"card_network,omitempty"`
	Metadata    JSON      `gorm:"type:jsonb" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (CreditCard) TableName() string {
	return "cards_cache"
}

func (c *CreditCard) BeforeCreate(tx *gorm.DB) error {
	assignID(&c.ID)
	return nil
}

// CatalogCard is one record of the external card catalog as consumed here.
type CatalogCard struct {
	ExternalID  string         `json:"id"`
	Name        string         `json:"card_name"`
	Bank        string         `json:"issuing_bank"`
	Alias       string         `json:"seo_card_alias,omitempty"`
	CardType    string         `json:"card_type,omitempty"`
	JoiningFee  string         `json:"joining_fee_text,omitempty"`
	AnnualFee   string         `json:"annual_fee_text,omitempty"`
	Rewards     string         `json:"rewards,omitempty"`
	CardNetwork string         `json:"card_network,omitempty"`
	Extra       map[string]any `json:"extra,omitempty"`
}

// Matches reports whether the lowercased query occurs in the card name or bank.
func (c CatalogCard) Matches(lowerQuery string) bool {
	return strings.Contains(strings.ToLower(c.Name), lowerQuery) ||
		strings.Contains(strings.ToLower(c.Bank), lowerQuery)
}

// Slug returns the catalog alias or, when missing, one derived from the name.
func (c CatalogCard) Slug() string {
	if c.Alias != "" {
		return c.Alias
	}
	return Slugify(c.Name)
}

// ToCreditCard converts a catalog record into its cached representation.
func (c CatalogCard) ToCreditCard() CreditCard {
	card := CreditCard{
		Name:        c.Name,
		BankName:    c.Bank,
		Slug:        c.Slug(),
		JoiningFee:  c.JoiningFee,
		AnnualFee:   c.AnnualFee,
		CardNetwork: c.CardNetwork,
		Metadata:    JSON(c.Extra),
	}
	if c.CardType != "" {
		desc := c.CardType
		card.Description = &desc
	}
	if c.Rewards != "" {
		rewards := c.Rewards
		card.Rewards = &rewards
	}
	return card
}

// Slugify lowercases s and joins its alphanumeric runs with dashes.
func Slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case b.Len() > 0 && !dash:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
