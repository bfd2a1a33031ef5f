package validation

const (
	// String lengths
	MaxNameLength         = 100
	MaxEmailLength        = 254
	MaxMessageLength      = 2000
	MaxCustomPromptLength = 1000
	MaxOptionLength       = 100
)
