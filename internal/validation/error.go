package validation

import (
	"fmt"
	"sort"
	"strings"

	apperrors "cardcopy/internal/errors"
)

// Error reports invalid fields. It matches apperrors.ErrValidation under
// errors.Is.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s %s", name, e.Fields[name]))
	}
	return fmt.Sprintf("%s: %s", apperrors.ErrValidation.Message, strings.Join(parts, "; "))
}

func (e *Error) Unwrap() error {
	return apperrors.ErrValidation
}
