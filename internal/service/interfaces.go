package service

import (
	"context"

	"github.com/avolkov/reverso/models"
)

// AccountService implements every account operation of the API. All durable
// state changes are delegated to the directory provider; the service owns
// request validation and the shaping of directory results.
type AccountService interface {
	// Register creates an authentication principal and its profile
	// document, returning the freshly written profile.
	Register(ctx context.Context, req models.RegisterRequest) (models.UserProfile, error)

	// VerifyToken resolves the identity encoded in an opaque bearer token.
	VerifyToken(ctx context.Context, token string) (models.Identity, error)

	// Profile fetches the caller's profile document.
	Profile(ctx context.Context, identity models.Identity) (models.UserProfile, error)

	// UpdateProfile applies a partial profile update and returns the
	// resulting document.
	UpdateProfile(ctx context.Context, identity models.Identity, req models.UpdateProfileRequest) (models.UserProfile, error)

	// DeleteAccount removes the caller's profile document and principal.
	DeleteAccount(ctx context.Context, identity models.Identity) error
}

// WordsService implements the word utilities of the API.
type WordsService interface {
	// Reverse returns word with its Unicode code points in reverse order.
	Reverse(ctx context.Context, word string) (models.ReversedWord, error)
}
