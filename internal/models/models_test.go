package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "hdfc-regalia-gold", Slugify("HDFC Regalia  Gold"))
	assert.Equal(t, "sbi-simplyclick", Slugify("  SBI SimplyCLICK!! "))
	assert.Equal(t, "", Slugify("***"))
}

func TestCatalogCardMatches(t *testing.T) {
	card := CatalogCard{Name: "Millennia Credit Card", Bank: "HDFC Bank"}
	assert.True(t, card.Matches("millennia"))
	assert.True(t, card.Matches("hdfc"))
	assert.False(t, card.Matches("axis"))
}

func TestCatalogCardToCreditCard(t *testing.T) {
	card := CatalogCard{
		Name:     "Ace Credit Card",
		Bank:     "Axis Bank",
		CardType: "Cashback",
		Rewards:  "5% cashback on bill payments",
	}
	cc := card.ToCreditCard()
	assert.Equal(t, "ace-credit-card", cc.Slug)
	require.NotNil(t, cc.Description)
	assert.Equal(t, "Cashback", *cc.Description)
	require.NotNil(t, cc.Rewards)
	assert.Equal(t, "5% cashback on bill payments", *cc.Rewards)

	card.Alias = "axis-ace"
	assert.Equal(t, "axis-ace", card.ToCreditCard().Slug)
}

func TestUserInputSelectionRoundTrip(t *testing.T) {
	sel := Selection{
		CardSlug:     "axis-ace",
		CardName:     "Ace",
		BankName:     "Axis Bank",
		Platform:     "Instagram",
		Audience:     "Students",
		Language:     "English",
		Tone:         "Friendly",
		CustomPrompt: "mention lounge access",
	}
	input := NewUserInput(sel)
	assert.Equal(t, uuid.Nil, input.ID)
	assert.Equal(t, sel, input.Selection())

	sel.CustomPrompt = ""
	assert.Nil(t, NewUserInput(sel).CustomPrompt)
}

func TestAssignID(t *testing.T) {
	input := &UserInput{}
	require.NoError(t, input.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, input.ID)

	fixed := uuid.New()
	output := &AIOutput{ID: fixed}
	require.NoError(t, output.BeforeCreate(nil))
	assert.Equal(t, fixed, output.ID)
}

func TestJSONScan(t *testing.T) {
	var j JSON
	require.NoError(t, j.Scan(`{"network":"Visa"}`))
	assert.Equal(t, "Visa", j["network"])

	require.NoError(t, j.Scan([]byte(`{"fee":499}`)))
	assert.Equal(t, float64(499), j["fee"])

	require.NoError(t, j.Scan(nil))
	assert.Nil(t, j)

	v, err := JSON(nil).Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}
