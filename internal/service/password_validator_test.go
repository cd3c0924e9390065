package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "cropadvisor/internal/errors"
)

func TestPasswordValidator_Validate(t *testing.T) {
	tests := []struct {
		name          string
		username      string
		password      string
		expectedError error
	}{
		{
			name:          "valid password",
			username:      "farmer",
			password:      "Passw0rd!",
			expectedError: nil,
		},
		{
			name:          "too short",
			username:      "farmer",
			password:      "abc",
			expectedError: apperrors.ErrInvalidPassword,
		},
		{
			name:          "no uppercase",
			username:      "farmer",
			password:      "alllowercase1!",
			expectedError: apperrors.ErrInvalidPassword,
		},
		{
			name:          "no lowercase",
			username:      "farmer",
			password:      "ALLUPPERCASE1!",
			expectedError: apperrors.ErrInvalidPassword,
		},
		{
			name:          "no digit",
			username:      "farmer",
			password:      "NoDigits!!",
			expectedError: apperrors.ErrInvalidPassword,
		},
		{
			name:          "no symbol",
			username:      "farmer",
			password:      "NoSymbol12",
			expectedError: apperrors.ErrInvalidPassword,
		},
		{
			name:          "password equals username",
			username:      "Passw0rd!",
			password:      "Passw0rd!",
			expectedError: apperrors.ErrInvalidPassword,
		},
		{
			name:          "password equals username ignoring case",
			username:      "PASSW0RD!",
			password:      "passw0rd!",
			expectedError: apperrors.ErrInvalidPassword,
		},
	}

	v := NewPasswordValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.username, tt.password)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
