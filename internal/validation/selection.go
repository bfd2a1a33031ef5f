package validation

import "cardcopy/internal/models"

// Selection requires a card plus every generation option. The custom
// prompt is optional.
func (v *Validator) Selection(sel models.Selection) {
	v.Required("cardName", sel.CardName)
	v.Required("platform", sel.Platform)
	v.Required("audience", sel.Audience)
	v.Required("language", sel.Language)
	v.Required("tone", sel.Tone)

	v.MaxLength("platform", sel.Platform, MaxOptionLength)
	v.MaxLength("audience", sel.Audience, MaxOptionLength)
	v.MaxLength("language", sel.Language, MaxOptionLength)
	v.MaxLength("tone", sel.Tone, MaxOptionLength)
	v.MaxLength("customPrompt", sel.CustomPrompt, MaxCustomPromptLength)
}

// ValidateSelection returns a validation error when sel is incomplete.
func ValidateSelection(sel models.Selection) error {
	v := New()
	v.Selection(sel)
	return v.Err()
}
