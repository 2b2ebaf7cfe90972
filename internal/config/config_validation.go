// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is empty", ErrInvalidStorageConfigs)
	}
	if cfg.Storage.Redis.Address == "" {
		return fmt.Errorf("%w: redis address is empty", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}
	if cfg.Server.AuthRateLimit <= 0 || cfg.Server.AuthRateBurst <= 0 {
		return fmt.Errorf("%w: auth rate limit must be positive", ErrInvalidServerConfigs)
	}
	if _, err := cfg.Server.TrustedProxyPrefixes(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidServerConfigs, err)
	}

	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is empty", ErrInvalidAppConfigs)
	}
	if cfg.App.HashKey == "" {
		return fmt.Errorf("%w: hash key is empty", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 || cfg.App.PasswordResetTTL <= 0 {
		return fmt.Errorf("%w: token issuer and lifetimes must be set", ErrInvalidAppConfigs)
	}
	if cfg.App.BootstrapAdminEmail != "" && cfg.App.BootstrapAdminPassword == "" {
		return fmt.Errorf("%w: bootstrap admin requires a password", ErrInvalidAppConfigs)
	}

	if cfg.Mail.Host != "" && (cfg.Mail.From == "" || cfg.Mail.Port <= 0) {
		return ErrInvalidMailConfigs
	}

	if cfg.Workers.MailWorkers <= 0 || cfg.Workers.MailQueueSize <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
