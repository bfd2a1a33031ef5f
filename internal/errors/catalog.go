package errors

var (
	ErrCatalogUnavailable = &DomainError{
		Code:    "CATALOG_UNAVAILABLE",
		Message: "card catalog is unavailable",
	}
	ErrCardNotFound = &DomainError{
		Code:    "CARD_NOT_FOUND",
		Message: "card not found",
	}
)
