package service

import (
	"strings"

	apperrors "cropadvisor/internal/errors"
)

// allowedSymbols is the fixed set of symbols the password policy accepts.
const allowedSymbols = "!@#$%^&*()-_=+[]{};:,.<>?/"

// minPasswordLength is the minimum accepted password length.
const minPasswordLength = 8

// PasswordValidator enforces the registration password policy.
type PasswordValidator struct{}

// NewPasswordValidator creates a new password validator.
func NewPasswordValidator() *PasswordValidator {
	return &PasswordValidator{}
}

// Validate checks a password against the policy: it must not equal the
// username, must be at least 8 characters, and must contain a lowercase
// letter, an uppercase letter, a digit and a symbol from the allowed set.
func (v *PasswordValidator) Validate(username, password string) error {
	if strings.EqualFold(password, username) {
		return apperrors.ErrInvalidPassword
	}
	if len(password) < minPasswordLength {
		return apperrors.ErrInvalidPassword
	}

	var lower, upper, digit, symbol bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(allowedSymbols, r):
			symbol = true
		}
	}
	if !lower || !upper || !digit || !symbol {
		return apperrors.ErrInvalidPassword
	}
	return nil
}
