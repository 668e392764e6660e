package service

import "errors"

var (
	// ErrInvalidCredentials is returned on a failed login. The message is
	// deliberately generic so it does not reveal whether the email or the
	// password was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidResetToken is returned when a password-reset token is
	// unknown or past its expiry.
	ErrInvalidResetToken = errors.New("password reset token is invalid or has expired")

	// ErrInvalidOrderPayload is returned when an order submission has no
	// items, a non-positive quantity, or an unusable email.
	ErrInvalidOrderPayload = errors.New("order must contain a valid email and at least one item")

	// ErrNoSecret is returned when token issuance is attempted without a
	// configured signing secret.
	ErrNoSecret = errors.New("signing secret is not configured")

	// ErrInvalidToken is returned when a session token fails verification.
	ErrInvalidToken = errors.New("invalid session token")
)
