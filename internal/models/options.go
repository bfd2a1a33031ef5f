package models

// Choices offered by the form. Validation only requires a value to be
// present, so clients may send values outside these lists.
var (
	Platforms = []string{"Instagram", "Facebook", "Twitter", "LinkedIn", "WhatsApp", "Email", "SMS"}
	Audiences = []string{"Students", "Young Professionals", "Families", "Frequent Travelers", "Business Owners", "Senior Citizens"}
	Languages = []string{"English", "Hindi", "Hinglish", "Tamil", "Telugu", "Marathi", "Bengali"}
	Tones     = []string{"Professional", "Friendly", "Exciting", "Informative", "Persuasive", "Casual"}
)
