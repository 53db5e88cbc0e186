// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Volkov

package models

// Identity is the request-scoped representation of an authenticated caller,
// resolved from a verified bearer token by the directory provider.
//
// An Identity is constructed fresh for every request and is never persisted
// by this service; it lives only in the request context between the auth
// middleware and the handler.
type Identity struct {
	// Subject is the stable unique identifier of the account ("sub" claim).
	Subject string `json:"uid"`

	// Email is the address the account was registered with, if known.
	Email string `json:"email,omitempty"`

	// EmailVerified reports whether the directory has confirmed Email.
	EmailVerified bool `json:"emailVerified"`

	// Name is the display name received from the directory, if any.
	Name string `json:"displayName,omitempty"`

	// Picture is the avatar URL received from the directory, if any.
	Picture string `json:"photoURL,omitempty"`
}

// Principal is an account record held by the directory's authentication
// subsystem. It is distinct from the profile document: the principal carries
// credentials and verification state, the document carries denormalized
// profile data.
type Principal struct {
	UID           string `json:"uid"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"emailVerified"`
	DisplayName   string `json:"displayName,omitempty"`
	PhotoURL      string `json:"photoURL,omitempty"`
}
