package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid inbound server settings
	// (for example, an empty listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidDirectoryConfigs indicates invalid directory provider
	// settings (for example, an unknown mode, or "http" mode without a
	// base URL or request timeout).
	ErrInvalidDirectoryConfigs = errors.New("invalid directory configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, "memory" mode without token signing parameters).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
