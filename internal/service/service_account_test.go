// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Volkov

package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/avolkov/reverso/internal/directory"
	"github.com/avolkov/reverso/internal/logger"
	"github.com/avolkov/reverso/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: directory.Provider
// ─────────────────────────────────────────────

type mockProvider struct {
	verifyTokenFn     func(ctx context.Context, token string) (models.Identity, error)
	createPrincipalFn func(ctx context.Context, params directory.PrincipalParams) (models.Principal, error)
	updatePrincipalFn func(ctx context.Context, uid string, upd directory.PrincipalUpdate) error
	deletePrincipalFn func(ctx context.Context, uid string) error
	getDocumentFn     func(ctx context.Context, collection, id string, out any) error
	setDocumentFn     func(ctx context.Context, collection, id string, data any) error
	updateDocumentFn  func(ctx context.Context, collection, id string, fields map[string]any) error
	deleteDocumentFn  func(ctx context.Context, collection, id string) error
}

func (m *mockProvider) VerifyToken(ctx context.Context, token string) (models.Identity, error) {
	if m.verifyTokenFn != nil {
		return m.verifyTokenFn(ctx, token)
	}
	return models.Identity{}, nil
}

func (m *mockProvider) CreatePrincipal(ctx context.Context, params directory.PrincipalParams) (models.Principal, error) {
	if m.createPrincipalFn != nil {
		return m.createPrincipalFn(ctx, params)
	}
	return models.Principal{}, nil
}

func (m *mockProvider) UpdatePrincipal(ctx context.Context, uid string, upd directory.PrincipalUpdate) error {
	if m.updatePrincipalFn != nil {
		return m.updatePrincipalFn(ctx, uid, upd)
	}
	return nil
}

func (m *mockProvider) DeletePrincipal(ctx context.Context, uid string) error {
	if m.deletePrincipalFn != nil {
		return m.deletePrincipalFn(ctx, uid)
	}
	return nil
}

func (m *mockProvider) GetDocument(ctx context.Context, collection, id string, out any) error {
	if m.getDocumentFn != nil {
		return m.getDocumentFn(ctx, collection, id, out)
	}
	return nil
}

func (m *mockProvider) SetDocument(ctx context.Context, collection, id string, data any) error {
	if m.setDocumentFn != nil {
		return m.setDocumentFn(ctx, collection, id, data)
	}
	return nil
}

func (m *mockProvider) UpdateDocument(ctx context.Context, collection, id string, fields map[string]any) error {
	if m.updateDocumentFn != nil {
		return m.updateDocumentFn(ctx, collection, id, fields)
	}
	return nil
}

func (m *mockProvider) DeleteDocument(ctx context.Context, collection, id string) error {
	if m.deleteDocumentFn != nil {
		return m.deleteDocumentFn(ctx, collection, id)
	}
	return nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

var errProvider = errors.New("provider is down")

func newTestAccountService(provider *mockProvider) AccountService {
	return NewAccountService(provider, logger.Nop())
}

// decodeInto mimics the provider decoding a stored document into out.
func decodeInto(t *testing.T, doc any, out any) {
	t.Helper()
	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}

func testIdentity() models.Identity {
	return models.Identity{
		Subject: "uid-1",
		Email:   "user@example.com",
		Name:    "User",
	}
}

func testProfile() models.UserProfile {
	return models.UserProfile{
		UID:         "uid-1",
		Email:       "user@example.com",
		DisplayName: "User",
		CreatedAt:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		LastLoginAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Profile: models.ProfileDetails{
			Bio:         "hi",
			Preferences: map[string]any{"theme": "dark"},
		},
	}
}

// ─────────────────────────────────────────────
// Register
// ─────────────────────────────────────────────

func TestAccountService_Register_Success(t *testing.T) {
	var storedDoc any
	provider := &mockProvider{
		createPrincipalFn: func(_ context.Context, params directory.PrincipalParams) (models.Principal, error) {
			assert.Equal(t, "user@example.com", params.Email)
			assert.Equal(t, "secret-pass", params.Password)
			assert.Equal(t, "User", params.DisplayName)
			return models.Principal{
				UID:         "uid-1",
				Email:       params.Email,
				DisplayName: params.DisplayName,
				PhotoURL:    params.PhotoURL,
			}, nil
		},
		setDocumentFn: func(_ context.Context, collection, id string, data any) error {
			assert.Equal(t, models.UsersCollection, collection)
			assert.Equal(t, "uid-1", id)
			storedDoc = data
			return nil
		},
	}
	svc := newTestAccountService(provider)

	profile, err := svc.Register(context.Background(), models.RegisterRequest{
		Email:       "user@example.com",
		Password:    "secret-pass",
		DisplayName: "User",
	})

	require.NoError(t, err)
	assert.Equal(t, "uid-1", profile.UID)
	assert.Equal(t, "user@example.com", profile.Email)
	assert.False(t, profile.EmailVerified)
	assert.False(t, profile.CreatedAt.IsZero())
	assert.Equal(t, profile.CreatedAt, profile.LastLoginAt)
	assert.Empty(t, profile.Profile.Bio)
	assert.NotNil(t, profile.Profile.Preferences)
	assert.Equal(t, profile, storedDoc)
}

func TestAccountService_Register_Validation(t *testing.T) {
	svc := newTestAccountService(&mockProvider{})
	ctx := context.Background()

	tests := []struct {
		name    string
		req     models.RegisterRequest
		wantErr error
	}{
		{
			name:    "missing email",
			req:     models.RegisterRequest{Password: "secret-pass"},
			wantErr: ErrValidationNoCredentials,
		},
		{
			name:    "missing password",
			req:     models.RegisterRequest{Email: "user@example.com"},
			wantErr: ErrValidationNoCredentials,
		},
		{
			name:    "short password",
			req:     models.RegisterRequest{Email: "user@example.com", Password: "12345"},
			wantErr: ErrValidationPasswordTooShort,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.req)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAccountService_Register_EmailTaken(t *testing.T) {
	provider := &mockProvider{
		createPrincipalFn: func(_ context.Context, _ directory.PrincipalParams) (models.Principal, error) {
			return models.Principal{}, directory.ErrEmailExists
		},
	}
	svc := newTestAccountService(provider)

	_, err := svc.Register(context.Background(), models.RegisterRequest{
		Email:    "user@example.com",
		Password: "secret-pass",
	})

	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestAccountService_Register_DocumentWriteFails(t *testing.T) {
	provider := &mockProvider{
		createPrincipalFn: func(_ context.Context, params directory.PrincipalParams) (models.Principal, error) {
			return models.Principal{UID: "uid-1", Email: params.Email}, nil
		},
		setDocumentFn: func(_ context.Context, _, _ string, _ any) error {
			return errProvider
		},
	}
	svc := newTestAccountService(provider)

	_, err := svc.Register(context.Background(), models.RegisterRequest{
		Email:    "user@example.com",
		Password: "secret-pass",
	})

	require.ErrorIs(t, err, errProvider)
	assert.NotErrorIs(t, err, ErrEmailTaken)
}

// ─────────────────────────────────────────────
// VerifyToken
// ─────────────────────────────────────────────

func TestAccountService_VerifyToken_Success(t *testing.T) {
	provider := &mockProvider{
		verifyTokenFn: func(_ context.Context, token string) (models.Identity, error) {
			assert.Equal(t, "good-token", token)
			return testIdentity(), nil
		},
	}
	svc := newTestAccountService(provider)

	identity, err := svc.VerifyToken(context.Background(), "good-token")

	require.NoError(t, err)
	assert.Equal(t, testIdentity(), identity)
}

func TestAccountService_VerifyToken_Empty(t *testing.T) {
	svc := newTestAccountService(&mockProvider{})

	_, err := svc.VerifyToken(context.Background(), "")

	require.ErrorIs(t, err, ErrValidationNoToken)
}

func TestAccountService_VerifyToken_Rejected(t *testing.T) {
	provider := &mockProvider{
		verifyTokenFn: func(_ context.Context, _ string) (models.Identity, error) {
			return models.Identity{}, directory.ErrInvalidToken
		},
	}
	svc := newTestAccountService(provider)

	_, err := svc.VerifyToken(context.Background(), "bad-token")

	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestAccountService_VerifyToken_ProviderFault(t *testing.T) {
	provider := &mockProvider{
		verifyTokenFn: func(_ context.Context, _ string) (models.Identity, error) {
			return models.Identity{}, errProvider
		},
	}
	svc := newTestAccountService(provider)

	_, err := svc.VerifyToken(context.Background(), "any-token")

	require.ErrorIs(t, err, errProvider)
	assert.NotErrorIs(t, err, ErrInvalidToken)
}

// ─────────────────────────────────────────────
// Profile
// ─────────────────────────────────────────────

func TestAccountService_Profile_Success(t *testing.T) {
	want := testProfile()
	provider := &mockProvider{
		getDocumentFn: func(_ context.Context, collection, id string, out any) error {
			assert.Equal(t, models.UsersCollection, collection)
			assert.Equal(t, "uid-1", id)
			decodeInto(t, want, out)
			return nil
		},
	}
	svc := newTestAccountService(provider)

	got, err := svc.Profile(context.Background(), testIdentity())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestAccountService_Profile_NotFound(t *testing.T) {
	provider := &mockProvider{
		getDocumentFn: func(_ context.Context, _, _ string, _ any) error {
			return directory.ErrNotFound
		},
	}
	svc := newTestAccountService(provider)

	_, err := svc.Profile(context.Background(), testIdentity())

	require.ErrorIs(t, err, ErrProfileNotFound)
}

// ─────────────────────────────────────────────
// UpdateProfile
// ─────────────────────────────────────────────

func TestAccountService_UpdateProfile_FullUpdate(t *testing.T) {
	name := "New Name"
	photo := "https://example.com/p.png"
	bio := "new bio"
	prefs := map[string]any{"lang": "de"}

	var principalTouched bool
	var gotFields map[string]any

	provider := &mockProvider{
		updatePrincipalFn: func(_ context.Context, uid string, upd directory.PrincipalUpdate) error {
			principalTouched = true
			assert.Equal(t, "uid-1", uid)
			require.NotNil(t, upd.DisplayName)
			assert.Equal(t, name, *upd.DisplayName)
			require.NotNil(t, upd.PhotoURL)
			assert.Equal(t, photo, *upd.PhotoURL)
			return nil
		},
		updateDocumentFn: func(_ context.Context, collection, id string, fields map[string]any) error {
			assert.Equal(t, models.UsersCollection, collection)
			assert.Equal(t, "uid-1", id)
			gotFields = fields
			return nil
		},
		getDocumentFn: func(_ context.Context, _, _ string, out any) error {
			decodeInto(t, testProfile(), out)
			return nil
		},
	}
	svc := newTestAccountService(provider)

	_, err := svc.UpdateProfile(context.Background(), testIdentity(), models.UpdateProfileRequest{
		DisplayName: &name,
		PhotoURL:    &photo,
		Bio:         &bio,
		Preferences: prefs,
	})

	require.NoError(t, err)
	assert.True(t, principalTouched)
	assert.Equal(t, name, gotFields["displayName"])
	assert.Equal(t, photo, gotFields["photoURL"])
	assert.Equal(t, bio, gotFields["profile.bio"])
	assert.Equal(t, prefs, gotFields["profile.preferences"])
	assert.Contains(t, gotFields, "updatedAt")
}

func TestAccountService_UpdateProfile_BioOnlySkipsPrincipal(t *testing.T) {
	bio := "just a bio"
	provider := &mockProvider{
		updatePrincipalFn: func(_ context.Context, _ string, _ directory.PrincipalUpdate) error {
			t.Fatal("principal must not be touched for a document-only update")
			return nil
		},
		updateDocumentFn: func(_ context.Context, _, _ string, fields map[string]any) error {
			assert.Equal(t, bio, fields["profile.bio"])
			assert.NotContains(t, fields, "displayName")
			assert.NotContains(t, fields, "photoURL")
			return nil
		},
		getDocumentFn: func(_ context.Context, _, _ string, out any) error {
			decodeInto(t, testProfile(), out)
			return nil
		},
	}
	svc := newTestAccountService(provider)

	_, err := svc.UpdateProfile(context.Background(), testIdentity(), models.UpdateProfileRequest{Bio: &bio})

	require.NoError(t, err)
}

func TestAccountService_UpdateProfile_EmptyRequestStillStamps(t *testing.T) {
	provider := &mockProvider{
		updateDocumentFn: func(_ context.Context, _, _ string, fields map[string]any) error {
			assert.Len(t, fields, 1)
			assert.Contains(t, fields, "updatedAt")
			return nil
		},
		getDocumentFn: func(_ context.Context, _, _ string, out any) error {
			decodeInto(t, testProfile(), out)
			return nil
		},
	}
	svc := newTestAccountService(provider)

	_, err := svc.UpdateProfile(context.Background(), testIdentity(), models.UpdateProfileRequest{})

	require.NoError(t, err)
}

func TestAccountService_UpdateProfile_DocumentUpdateFails(t *testing.T) {
	provider := &mockProvider{
		updateDocumentFn: func(_ context.Context, _, _ string, _ map[string]any) error {
			return errProvider
		},
	}
	svc := newTestAccountService(provider)

	_, err := svc.UpdateProfile(context.Background(), testIdentity(), models.UpdateProfileRequest{})

	require.ErrorIs(t, err, errProvider)
}

// ─────────────────────────────────────────────
// DeleteAccount
// ─────────────────────────────────────────────

func TestAccountService_DeleteAccount_Success(t *testing.T) {
	var order []string
	provider := &mockProvider{
		deleteDocumentFn: func(_ context.Context, collection, id string) error {
			order = append(order, "document")
			assert.Equal(t, models.UsersCollection, collection)
			assert.Equal(t, "uid-1", id)
			return nil
		},
		deletePrincipalFn: func(_ context.Context, uid string) error {
			order = append(order, "principal")
			assert.Equal(t, "uid-1", uid)
			return nil
		},
	}
	svc := newTestAccountService(provider)

	err := svc.DeleteAccount(context.Background(), testIdentity())

	require.NoError(t, err)
	assert.Equal(t, []string{"document", "principal"}, order)
}

func TestAccountService_DeleteAccount_PrincipalDeletionFails(t *testing.T) {
	provider := &mockProvider{
		deletePrincipalFn: func(_ context.Context, _ string) error {
			return errProvider
		},
	}
	svc := newTestAccountService(provider)

	err := svc.DeleteAccount(context.Background(), testIdentity())

	require.ErrorIs(t, err, errProvider)
}
