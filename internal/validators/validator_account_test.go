// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Volkov

package validators

import (
	"context"
	"testing"

	"github.com/avolkov/reverso/models"
	"github.com/stretchr/testify/require"
)

func validRegisterRequest() models.RegisterRequest {
	return models.RegisterRequest{
		Email:       "user@example.com",
		Password:    "secret-pass",
		DisplayName: "User",
	}
}

// ---------------------------------------------------------------------------
// TestNewAccountValidator
// ---------------------------------------------------------------------------

func TestNewAccountValidator(t *testing.T) {
	v := NewAccountValidator()
	require.NotNil(t, v)
}

// ---------------------------------------------------------------------------
// TestAccountValidator_Dispatch
// ---------------------------------------------------------------------------

func TestAccountValidator_Dispatch(t *testing.T) {
	v := NewAccountValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		err := v.Validate(ctx, 42)
		require.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("RegisterRequest value", func(t *testing.T) {
		err := v.Validate(ctx, validRegisterRequest())
		require.NoError(t, err)
	})

	t.Run("RegisterRequest pointer", func(t *testing.T) {
		r := validRegisterRequest()
		err := v.Validate(ctx, &r)
		require.NoError(t, err)
	})

	t.Run("VerifyTokenRequest pointer", func(t *testing.T) {
		err := v.Validate(ctx, &models.VerifyTokenRequest{IDToken: "tok"})
		require.NoError(t, err)
	})

	t.Run("PalindromeRequest value", func(t *testing.T) {
		err := v.Validate(ctx, models.PalindromeRequest{Word: "kayak"})
		require.NoError(t, err)
	})
}

// ---------------------------------------------------------------------------
// TestAccountValidator_RegisterRequest
// ---------------------------------------------------------------------------

func TestAccountValidator_RegisterRequest(t *testing.T) {
	v := NewAccountValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(r *models.RegisterRequest)
		fields  []string
		wantErr error
	}{
		{
			name:   "valid request",
			mutate: func(r *models.RegisterRequest) {},
		},
		{
			name:    "empty email",
			mutate:  func(r *models.RegisterRequest) { r.Email = "" },
			wantErr: ErrEmptyEmail,
		},
		{
			name:    "empty password",
			mutate:  func(r *models.RegisterRequest) { r.Password = "" },
			wantErr: ErrEmptyPassword,
		},
		{
			name:    "short password",
			mutate:  func(r *models.RegisterRequest) { r.Password = "abc12" },
			wantErr: ErrPasswordTooShort,
		},
		{
			name:   "multibyte password of six runes",
			mutate: func(r *models.RegisterRequest) { r.Password = "пароль" },
		},
		{
			name:   "empty email skipped when scoped to password",
			mutate: func(r *models.RegisterRequest) { r.Email = "" },
			fields: []string{FieldPassword},
		},
		{
			name:    "unknown field",
			mutate:  func(r *models.RegisterRequest) {},
			fields:  []string{"nickname"},
			wantErr: ErrUnknownField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRegisterRequest()
			tt.mutate(&r)

			err := v.Validate(ctx, r, tt.fields...)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

// ---------------------------------------------------------------------------
// TestAccountValidator_VerifyTokenRequest
// ---------------------------------------------------------------------------

func TestAccountValidator_VerifyTokenRequest(t *testing.T) {
	v := NewAccountValidator()
	ctx := context.Background()

	err := v.Validate(ctx, models.VerifyTokenRequest{})
	require.ErrorIs(t, err, ErrEmptyToken)

	err = v.Validate(ctx, models.VerifyTokenRequest{IDToken: "tok"})
	require.NoError(t, err)
}

// ---------------------------------------------------------------------------
// TestAccountValidator_PalindromeRequest
// ---------------------------------------------------------------------------

func TestAccountValidator_PalindromeRequest(t *testing.T) {
	v := NewAccountValidator()
	ctx := context.Background()

	err := v.Validate(ctx, models.PalindromeRequest{})
	require.ErrorIs(t, err, ErrEmptyWord)

	err = v.Validate(ctx, models.PalindromeRequest{Word: "hello"})
	require.NoError(t, err)
}
