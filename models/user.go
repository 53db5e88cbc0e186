// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Volkov

package models

import "time"

// UsersCollection is the directory document-store collection holding one
// [UserProfile] document per registered account, keyed by principal UID.
const UsersCollection = "users"

// UserProfile is the persisted, denormalized user record held by the
// directory's document store. It is owned entirely by the directory: this
// service reads and writes it through directory calls and never caches it.
type UserProfile struct {
	// UID is the primary key and matches the Subject of the owning Identity.
	UID string `json:"uid"`

	// Email is a denormalized copy of the principal's email address.
	Email string `json:"email"`

	// DisplayName is the user-chosen display name. Empty when never set.
	DisplayName string `json:"displayName"`

	// PhotoURL is the avatar URL. Empty when never set.
	PhotoURL string `json:"photoURL"`

	// EmailVerified mirrors the principal's verification flag at the time
	// the document was last written.
	EmailVerified bool `json:"emailVerified"`

	// CreatedAt is set once, when the account is registered.
	CreatedAt time.Time `json:"createdAt"`

	// LastLoginAt is set at registration and refreshed by the directory.
	LastLoginAt time.Time `json:"lastLoginAt"`

	// UpdatedAt is refreshed on every profile update, including no-op ones.
	UpdatedAt time.Time `json:"updatedAt,omitzero"`

	// Profile holds the free-form sub-object of the document.
	Profile ProfileDetails `json:"profile"`
}

// ProfileDetails is the free-form portion of a [UserProfile] document.
type ProfileDetails struct {
	// Bio is a free-text self description. Registered as an empty string.
	Bio string `json:"bio"`

	// Preferences is an arbitrary user-owned settings mapping.
	Preferences map[string]any `json:"preferences"`
}
