package directory

import "errors"

// Sentinel errors shared by all [Provider] implementations. Callers match
// against them with [errors.Is]; any provider error that does not wrap one
// of these values is a transport or provider fault.
var (
	// ErrInvalidToken is returned by VerifyToken when the presented token
	// is malformed, expired, revoked, or fails verification.
	ErrInvalidToken = errors.New("invalid token")

	// ErrEmailExists is returned by CreatePrincipal when the email address
	// is already registered.
	ErrEmailExists = errors.New("email already exists")

	// ErrNotFound is returned when a requested principal or document does
	// not exist.
	ErrNotFound = errors.New("not found")
)
