// Package utils provides small helpers shared across the application:
// type-safe context keys, JSON response writing, and HTTP client
// construction.
package utils

import (
	"context"

	"github.com/avolkov/reverso/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// IdentityCtxKey is the key under which the auth middleware stores the
// resolved [models.Identity] of the caller.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.IdentityCtxKey, identity)
var IdentityCtxKey = contextKey("identity")

// GetIdentityFromContext retrieves the resolved caller identity from the
// context.
//
// Returns the identity and an ok flag:
//   - ok == true: an identity was attached by the auth middleware
//   - ok == false: the request was not authenticated (or the optional
//     gate let it through without a credential)
func GetIdentityFromContext(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(IdentityCtxKey).(models.Identity)
	return identity, ok
}
