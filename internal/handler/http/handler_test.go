// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Volkov

package http

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/avolkov/reverso/internal/logger"
	"github.com/avolkov/reverso/internal/service"
	"github.com/avolkov/reverso/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: service.AccountService
// ─────────────────────────────────────────────

type mockAccountService struct {
	registerFn      func(ctx context.Context, req models.RegisterRequest) (models.UserProfile, error)
	verifyTokenFn   func(ctx context.Context, token string) (models.Identity, error)
	profileFn       func(ctx context.Context, identity models.Identity) (models.UserProfile, error)
	updateProfileFn func(ctx context.Context, identity models.Identity, req models.UpdateProfileRequest) (models.UserProfile, error)
	deleteAccountFn func(ctx context.Context, identity models.Identity) error
}

func (m *mockAccountService) Register(ctx context.Context, req models.RegisterRequest) (models.UserProfile, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, req)
	}
	return models.UserProfile{}, nil
}

func (m *mockAccountService) VerifyToken(ctx context.Context, token string) (models.Identity, error) {
	if m.verifyTokenFn != nil {
		return m.verifyTokenFn(ctx, token)
	}
	return models.Identity{}, service.ErrInvalidToken
}

func (m *mockAccountService) Profile(ctx context.Context, identity models.Identity) (models.UserProfile, error) {
	if m.profileFn != nil {
		return m.profileFn(ctx, identity)
	}
	return models.UserProfile{}, nil
}

func (m *mockAccountService) UpdateProfile(ctx context.Context, identity models.Identity, req models.UpdateProfileRequest) (models.UserProfile, error) {
	if m.updateProfileFn != nil {
		return m.updateProfileFn(ctx, identity, req)
	}
	return models.UserProfile{}, nil
}

func (m *mockAccountService) DeleteAccount(ctx context.Context, identity models.Identity) error {
	if m.deleteAccountFn != nil {
		return m.deleteAccountFn(ctx, identity)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: service.WordsService
// ─────────────────────────────────────────────

type mockWordsService struct {
	reverseFn func(ctx context.Context, word string) (models.ReversedWord, error)
}

func (m *mockWordsService) Reverse(ctx context.Context, word string) (models.ReversedWord, error) {
	if m.reverseFn != nil {
		return m.reverseFn(ctx, word)
	}
	if word == "" {
		return models.ReversedWord{}, service.ErrValidationNoWord
	}
	runes := []rune(word)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return models.ReversedWord{Original: word, Palindrome: string(runes)}, nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestRouter builds a fully wired router on top of the given stubs.
// Nil stubs are replaced with permissive defaults.
func newTestRouter(account *mockAccountService, words *mockWordsService) *chi.Mux {
	if account == nil {
		account = &mockAccountService{}
	}
	if words == nil {
		words = &mockWordsService{}
	}
	h := NewHandler(&service.Services{
		AccountService: account,
		WordsService:   words,
	}, logger.Nop())
	return h.Init()
}

// decodeBody decodes the JSON recorded by rec into out.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func validIdentity() models.Identity {
	return models.Identity{
		Subject: "uid-1",
		Email:   "user@example.com",
		Name:    "User",
	}
}

// verifyAs returns a verifyTokenFn accepting exactly one token.
func verifyAs(identity models.Identity, token string) func(context.Context, string) (models.Identity, error) {
	return func(_ context.Context, got string) (models.Identity, error) {
		if got != token {
			return models.Identity{}, service.ErrInvalidToken
		}
		return identity, nil
	}
}
