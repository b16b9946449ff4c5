package admin

import (
	"regexp"
	"strings"
)

// emailPattern accepts local@domain.tld shapes without trying to be a full
// RFC 5322 parser.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FieldErrors maps a form field name to its validation message.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for field, msg := range e {
		parts = append(parts, field+": "+msg)
	}
	return strings.Join(parts, "; ")
}

// ValidateProfile checks the editable profile fields before a create or edit
// submission. A non-empty result means the submission must be rejected and no
// store mutation may happen.
func ValidateProfile(name, email, phone string) FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(name) == "" {
		errs["name"] = "Name is required"
	}
	switch {
	case strings.TrimSpace(email) == "":
		errs["email"] = "Email is required"
	case !emailPattern.MatchString(email):
		errs["email"] = "Invalid email format"
	}
	if strings.TrimSpace(phone) == "" {
		errs["phone"] = "Phone is required"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
