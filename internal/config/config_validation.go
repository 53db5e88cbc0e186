// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Volkov

package config

// Directory provider modes accepted by [StructuredConfig.validate].
const (
	DirectoryModeMemory = "memory"
	DirectoryModeHTTP   = "http"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	switch cfg.Directory.Mode {
	case DirectoryModeMemory:
		if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration == 0 {
			return ErrInvalidAppConfigs
		}
	case DirectoryModeHTTP:
		if cfg.Directory.BaseURL == "" || cfg.Directory.RequestTimeout == 0 {
			return ErrInvalidDirectoryConfigs
		}
	default:
		return ErrInvalidDirectoryConfigs
	}

	return nil
}
