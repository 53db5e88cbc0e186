package validators

import (
	"context"
	"unicode/utf8"

	"github.com/avolkov/reverso/models"
)

const (
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldIDToken  = "id_token"
	FieldWord     = "word"
)

// MinPasswordLength is the minimum accepted password length in code points.
const MinPasswordLength = 6

// AccountValidator validates the inbound request shapes of the HTTP API:
// registration, token verification and word reversal payloads.
type AccountValidator struct {
}

func NewAccountValidator() Validator {
	return &AccountValidator{}
}

func (v *AccountValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(ctx, *value, fields...)

	case models.VerifyTokenRequest:
		return v.validateVerifyTokenRequest(ctx, value, fields...)
	case *models.VerifyTokenRequest:
		return v.validateVerifyTokenRequest(ctx, *value, fields...)

	case models.PalindromeRequest:
		return v.validatePalindromeRequest(ctx, value, fields...)
	case *models.PalindromeRequest:
		return v.validatePalindromeRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *AccountValidator) validateRegisterRequest(_ context.Context, request models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if request.Email == "" {
				return ErrEmptyEmail
			}
		case FieldPassword:
			if request.Password == "" {
				return ErrEmptyPassword
			}
			if utf8.RuneCountInString(request.Password) < MinPasswordLength {
				return ErrPasswordTooShort
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AccountValidator) validateVerifyTokenRequest(_ context.Context, request models.VerifyTokenRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldIDToken}
	}

	for _, f := range fields {
		switch f {
		case FieldIDToken:
			if request.IDToken == "" {
				return ErrEmptyToken
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AccountValidator) validatePalindromeRequest(_ context.Context, request models.PalindromeRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldWord}
	}

	for _, f := range fields {
		switch f {
		case FieldWord:
			if request.Word == "" {
				return ErrEmptyWord
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
