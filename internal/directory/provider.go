package directory

import (
	"context"

	"github.com/avolkov/reverso/models"
)

// Provider is the capability interface this service requires from the
// external identity/document collaborator. Implementations are responsible
// for credential cryptography, principal storage, and document persistence;
// callers never interpret tokens or touch durable state themselves.
type Provider interface {
	// VerifyToken validates an opaque bearer token and resolves the caller
	// identity encoded in it. Returns [ErrInvalidToken] (wrapped) if the
	// token is malformed, expired, revoked, or otherwise unverifiable; any
	// other error is a provider fault.
	VerifyToken(ctx context.Context, token string) (models.Identity, error)

	// CreatePrincipal registers a new authentication principal with the
	// given credentials and optional profile fields. The principal is
	// created with an unverified email. Returns [ErrEmailExists] (wrapped)
	// if the email is already registered.
	CreatePrincipal(ctx context.Context, params PrincipalParams) (models.Principal, error)

	// UpdatePrincipal applies the non-nil fields of upd to the principal
	// identified by uid.
	UpdatePrincipal(ctx context.Context, uid string, upd PrincipalUpdate) error

	// DeletePrincipal permanently removes the principal identified by uid
	// and revokes all tokens issued for it.
	DeletePrincipal(ctx context.Context, uid string) error

	// GetDocument fetches the document identified by collection/id and
	// decodes it into out. Returns [ErrNotFound] (wrapped) if the document
	// does not exist.
	GetDocument(ctx context.Context, collection, id string, out any) error

	// SetDocument stores data as the document identified by collection/id,
	// replacing any existing content.
	SetDocument(ctx context.Context, collection, id string, data any) error

	// UpdateDocument applies a partial update to the document identified by
	// collection/id. Keys of fields may use dotted paths ("profile.bio") to
	// address nested values. Returns [ErrNotFound] (wrapped) if the
	// document does not exist.
	UpdateDocument(ctx context.Context, collection, id string, fields map[string]any) error

	// DeleteDocument removes the document identified by collection/id.
	// Deleting a missing document is not an error.
	DeleteDocument(ctx context.Context, collection, id string) error
}

// PrincipalParams carries the fields needed to create a new principal.
type PrincipalParams struct {
	// Email is the login identifier of the new principal. Required.
	Email string `json:"email"`

	// Password is the plaintext credential. The provider hashes it; this
	// service never stores it. Required.
	Password string `json:"password"`

	// DisplayName is optional and stored verbatim.
	DisplayName string `json:"displayName,omitempty"`

	// PhotoURL is optional and stored verbatim.
	PhotoURL string `json:"photoURL,omitempty"`
}

// PrincipalUpdate describes a partial principal update.
// Only non-nil fields are applied.
type PrincipalUpdate struct {
	DisplayName *string `json:"displayName,omitempty"`
	PhotoURL    *string `json:"photoURL,omitempty"`
}
