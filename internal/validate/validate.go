// Package validate implements per-field validation of request payloads.
// Failures are reported as a list of field errors, one message per rule,
// so clients can attach messages to form fields.
package validate

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// FieldError describes one failed validation rule.
type FieldError struct {
	// Field is the name of the offending request field.
	Field string `json:"field"`
	// Message is the human-readable rule description.
	Message string `json:"message"`
}

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)+$`)

// IsEmail reports whether s is a syntactically valid email address.
func IsEmail(s string) bool {
	return emailRe.MatchString(strings.TrimSpace(s))
}

// NormalizeEmail lowercases and trims an email address so lookups and
// the unique index see one canonical form.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// passwordErrors applies the password rules: 8 characters minimum with
// one uppercase letter, one lowercase letter, and one digit. The maximum
// is 72 bytes, the most bcrypt will hash.
func passwordErrors(password string) []FieldError {
	var errs []FieldError
	if utf8.RuneCountInString(password) < 8 {
		errs = append(errs, FieldError{"password", "Password must be at least 8 characters long"})
	}
	if len(password) > 72 {
		errs = append(errs, FieldError{"password", "Password must be at most 72 characters long"})
	}
	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		errs = append(errs, FieldError{"password", "Password must contain at least one uppercase letter, one lowercase letter, and one number"})
	}
	return errs
}

// Signup validates a signup payload.
func Signup(name, email, address, password string) []FieldError {
	var errs []FieldError

	name = strings.TrimSpace(name)
	if name == "" {
		errs = append(errs, FieldError{"name", "Name is required"})
	} else if len(name) < 2 || len(name) > 50 {
		errs = append(errs, FieldError{"name", "Name must be between 2 and 50 characters"})
	}

	if !IsEmail(email) {
		errs = append(errs, FieldError{"email", "Please provide a valid email"})
	}

	address = strings.TrimSpace(address)
	if address == "" {
		errs = append(errs, FieldError{"address", "Address is required"})
	} else if len(address) < 5 || len(address) > 200 {
		errs = append(errs, FieldError{"address", "Address must be between 5 and 200 characters"})
	}

	return append(errs, passwordErrors(password)...)
}

// Login validates a login payload.
func Login(email, password string) []FieldError {
	var errs []FieldError
	if !IsEmail(email) {
		errs = append(errs, FieldError{"email", "Please provide a valid email"})
	}
	if password == "" {
		errs = append(errs, FieldError{"password", "Password is required"})
	}
	return errs
}

// ForgotPassword validates a forgot-password payload.
func ForgotPassword(email string) []FieldError {
	if !IsEmail(email) {
		return []FieldError{{"email", "Please provide a valid email"}}
	}
	return nil
}

// ResetPassword validates a reset-password payload.
func ResetPassword(token, password string) []FieldError {
	var errs []FieldError
	if strings.TrimSpace(token) == "" {
		errs = append(errs, FieldError{"token", "Reset token is required"})
	}
	return append(errs, passwordErrors(password)...)
}
