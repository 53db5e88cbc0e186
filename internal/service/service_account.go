// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Volkov

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avolkov/reverso/internal/directory"
	"github.com/avolkov/reverso/internal/logger"
	"github.com/avolkov/reverso/internal/validators"
	"github.com/avolkov/reverso/models"
)

// accountService is the concrete implementation of AccountService.
// It validates inbound requests and delegates every durable state change to
// the directory provider.
type accountService struct {
	// provider is the external identity/document collaborator.
	provider directory.Provider

	// validator checks inbound request shapes before any directory call.
	validator validators.Validator

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAccountService constructs an AccountService wired to the given
// directory provider.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAccountService(provider directory.Provider, logger *logger.Logger) AccountService {
	return &accountService{
		provider:  provider,
		validator: validators.NewAccountValidator(),
		logger:    logger,
	}
}

// Register creates a new account.
//
// It validates that email and password are present and that the password is
// at least 6 code points long, then asks the directory to create the
// authentication principal (email unverified) and, separately, writes the
// denormalized profile document with a fresh creation/login timestamp.
//
// The two directory writes are not transactional: if the document write
// fails after the principal was created, the principal is left orphaned.
// The orphan is logged and the error surfaced; no rollback is attempted.
//
// Returns the freshly written profile or:
//   - ErrValidationNoCredentials if email or password is empty.
//   - ErrValidationPasswordTooShort if the password is shorter than 6.
//   - ErrEmailTaken if the email is already registered.
//   - A wrapped directory fault for any other failure.
func (a *accountService) Register(ctx context.Context, req models.RegisterRequest) (models.UserProfile, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("registration request rejected")
		return models.UserProfile{}, mapValidationError(err)
	}

	principal, err := a.provider.CreatePrincipal(ctx, directory.PrincipalParams{
		Email:       req.Email,
		Password:    req.Password,
		DisplayName: req.DisplayName,
		PhotoURL:    req.PhotoURL,
	})
	if err != nil {
		if errors.Is(err, directory.ErrEmailExists) {
			log.Err(err).Str("email", req.Email).Msg("email already registered")
			return models.UserProfile{}, ErrEmailTaken
		}
		log.Err(err).Str("email", req.Email).Msg("principal creation failed")
		return models.UserProfile{}, fmt.Errorf("creating principal: %w", err)
	}

	now := time.Now().UTC()
	profile := models.UserProfile{
		UID:           principal.UID,
		Email:         principal.Email,
		DisplayName:   principal.DisplayName,
		PhotoURL:      principal.PhotoURL,
		EmailVerified: principal.EmailVerified,
		CreatedAt:     now,
		LastLoginAt:   now,
		Profile: models.ProfileDetails{
			Bio:         "",
			Preferences: map[string]any{},
		},
	}

	if err = a.provider.SetDocument(ctx, models.UsersCollection, principal.UID, profile); err != nil {
		// The principal exists but its profile document does not.
		log.Err(err).Str("uid", principal.UID).Msg("profile document write failed, principal is orphaned")
		return models.UserProfile{}, fmt.Errorf("writing profile document: %w", err)
	}

	log.Info().Str("uid", principal.UID).Msg("account registered")

	return profile, nil
}

// VerifyToken resolves the identity behind an opaque bearer token.
//
// Returns:
//   - ErrValidationNoToken if token is empty.
//   - ErrInvalidToken if the directory rejects the token.
//   - A wrapped directory fault if verification could not be performed at
//     all (transport failure and the like).
func (a *accountService) VerifyToken(ctx context.Context, token string) (models.Identity, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, models.VerifyTokenRequest{IDToken: token}); err != nil {
		return models.Identity{}, mapValidationError(err)
	}

	identity, err := a.provider.VerifyToken(ctx, token)
	if err != nil {
		if errors.Is(err, directory.ErrInvalidToken) {
			log.Debug().Msg("token rejected by directory")
			return models.Identity{}, ErrInvalidToken
		}
		log.Err(err).Msg("token verification fault")
		return models.Identity{}, fmt.Errorf("verifying token: %w", err)
	}

	return identity, nil
}

// Profile fetches the caller's profile document by subject id.
//
// Returns ErrProfileNotFound if no document exists for the identity, or a
// wrapped directory fault on any other failure.
func (a *accountService) Profile(ctx context.Context, identity models.Identity) (models.UserProfile, error) {
	log := logger.FromContext(ctx)

	var profile models.UserProfile
	if err := a.provider.GetDocument(ctx, models.UsersCollection, identity.Subject, &profile); err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			log.Err(err).Str("uid", identity.Subject).Msg("profile document missing")
			return models.UserProfile{}, ErrProfileNotFound
		}
		log.Err(err).Str("uid", identity.Subject).Msg("profile fetch fault")
		return models.UserProfile{}, fmt.Errorf("fetching profile document: %w", err)
	}

	return profile, nil
}

// UpdateProfile applies any subset of {display name, photo URL, bio,
// preferences} to the caller's account.
//
// The principal is touched only when display name or photo URL were
// supplied; the document update always runs and refreshes the updatedAt
// stamp, so an empty request is a valid no-op update. The resulting
// document is re-fetched and returned.
func (a *accountService) UpdateProfile(ctx context.Context, identity models.Identity, req models.UpdateProfileRequest) (models.UserProfile, error) {
	log := logger.FromContext(ctx)

	if req.DisplayName != nil || req.PhotoURL != nil {
		upd := directory.PrincipalUpdate{
			DisplayName: req.DisplayName,
			PhotoURL:    req.PhotoURL,
		}
		if err := a.provider.UpdatePrincipal(ctx, identity.Subject, upd); err != nil {
			log.Err(err).Str("uid", identity.Subject).Msg("principal update failed")
			return models.UserProfile{}, fmt.Errorf("updating principal: %w", err)
		}
	}

	fields := map[string]any{
		"updatedAt": time.Now().UTC(),
	}
	if req.DisplayName != nil {
		fields["displayName"] = *req.DisplayName
	}
	if req.PhotoURL != nil {
		fields["photoURL"] = *req.PhotoURL
	}
	if req.Bio != nil {
		fields["profile.bio"] = *req.Bio
	}
	if req.Preferences != nil {
		fields["profile.preferences"] = req.Preferences
	}

	if err := a.provider.UpdateDocument(ctx, models.UsersCollection, identity.Subject, fields); err != nil {
		log.Err(err).Str("uid", identity.Subject).Msg("profile document update failed")
		return models.UserProfile{}, fmt.Errorf("updating profile document: %w", err)
	}

	var profile models.UserProfile
	if err := a.provider.GetDocument(ctx, models.UsersCollection, identity.Subject, &profile); err != nil {
		log.Err(err).Str("uid", identity.Subject).Msg("profile re-fetch failed after update")
		return models.UserProfile{}, fmt.Errorf("fetching updated profile document: %w", err)
	}

	log.Info().Str("uid", identity.Subject).Msg("profile updated")

	return profile, nil
}

// DeleteAccount removes the caller's profile document first and the
// principal second. The sequence is not transactional: if the principal
// deletion fails after the document was removed, the document is gone for
// good. The partial state is logged and the error surfaced.
func (a *accountService) DeleteAccount(ctx context.Context, identity models.Identity) error {
	log := logger.FromContext(ctx)

	if err := a.provider.DeleteDocument(ctx, models.UsersCollection, identity.Subject); err != nil {
		log.Err(err).Str("uid", identity.Subject).Msg("profile document deletion failed")
		return fmt.Errorf("deleting profile document: %w", err)
	}

	if err := a.provider.DeletePrincipal(ctx, identity.Subject); err != nil {
		log.Err(err).Str("uid", identity.Subject).Msg("principal deletion failed, profile document already removed")
		return fmt.Errorf("deleting principal: %w", err)
	}

	log.Info().Str("uid", identity.Subject).Msg("account deleted")

	return nil
}
