// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Volkov

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the reverso
// application. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string and
	// the token parameters used by the in-process directory.
	App App `envPrefix:"APP_"`

	// Directory holds connection settings for the external identity and
	// document provider.
	Directory Directory `envPrefix:"DIRECTORY_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the secret key used by the in-process ("memory")
	// directory to sign and verify access tokens. Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in tokens minted by the
	// in-process directory and validated on every verification call.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long an in-process directory token remains
	// valid after issuance (e.g. "1h", "30m").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Directory holds settings for the identity/document provider backend.
type Directory struct {
	// Mode selects the provider implementation: "memory" for the in-process
	// development directory, "http" for a remote directory service.
	// Env: DIRECTORY_MODE
	Mode string `env:"MODE"`

	// BaseURL is the root URL of the remote directory REST API
	// (e.g. "https://directory.example.com"). Required in "http" mode.
	// Env: DIRECTORY_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// APIKey authenticates this service against the remote directory.
	// Sent with every request in "http" mode.
	// Env: DIRECTORY_API_KEY
	APIKey string `env:"API_KEY"`

	// RequestTimeout bounds every outbound directory call (e.g. "15s").
	// Env: DIRECTORY_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
