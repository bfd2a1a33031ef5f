package errors

var (
	ErrMissingCredential = &DomainError{
		Code:    "MISSING_CREDENTIAL",
		Message: "generative API credential is not configured",
	}
	ErrUpstream = &DomainError{
		Code:    "UPSTREAM_ERROR",
		Message: "generative API request failed",
	}
	ErrUnknownProvider = &DomainError{
		Code:    "UNKNOWN_PROVIDER",
		Message: "unsupported text generation provider",
	}
)
