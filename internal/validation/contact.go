package validation

import "strings"

// Contact validates a contact form submission.
func (v *Validator) Contact(name, email, message string) {
	v.Required("name", name)
	v.MaxLength("name", name, MaxNameLength)

	v.Required("email", email)
	if strings.TrimSpace(email) != "" {
		v.Email("email", strings.TrimSpace(email))
	}
	v.MaxLength("email", email, MaxEmailLength)

	v.Required("message", message)
	v.MaxLength("message", message, MaxMessageLength)
}

func ValidateContact(name, email, message string) error {
	v := New()
	v.Contact(name, email, message)
	return v.Err()
}
