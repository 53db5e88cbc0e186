package service

import (
	"errors"

	"github.com/avolkov/reverso/internal/validators"
)

var (
	ErrValidationNoWord           = errors.New("no word provided")
	ErrValidationNoCredentials    = errors.New("email and password are required")
	ErrValidationPasswordTooShort = errors.New("password is shorter than 6 characters")
	ErrValidationNoToken          = errors.New("no token provided")

	ErrInvalidToken    = errors.New("token is invalid or expired")
	ErrEmailTaken      = errors.New("email is already registered")
	ErrProfileNotFound = errors.New("user profile not found")
)

// mapValidationError translates validator errors into the sentinel errors
// this package exposes to its callers. Unknown errors pass through as is.
func mapValidationError(err error) error {
	switch {
	case errors.Is(err, validators.ErrEmptyEmail), errors.Is(err, validators.ErrEmptyPassword):
		return ErrValidationNoCredentials
	case errors.Is(err, validators.ErrPasswordTooShort):
		return ErrValidationPasswordTooShort
	case errors.Is(err, validators.ErrEmptyToken):
		return ErrValidationNoToken
	case errors.Is(err, validators.ErrEmptyWord):
		return ErrValidationNoWord
	default:
		return err
	}
}
