package errors

var (
	ErrValidation = &DomainError{
		Code:    "VALIDATION_FAILED",
		Message: "please select a card and fill in all options",
	}
	ErrGenerationFailed = &DomainError{
		Code:    "GENERATION_FAILED",
		Message: "failed to generate content",
	}
	ErrInputNotFound = &DomainError{
		Code:    "INPUT_NOT_FOUND",
		Message: "generation input not found",
	}
)
