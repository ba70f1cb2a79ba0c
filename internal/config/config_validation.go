// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the server configuration can be used at startup.
func (cfg *ServerConfig) validate() error {
	if cfg.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}
	if cfg.DB.Driver != DriverPostgres && cfg.DB.Driver != DriverSQLite {
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.DB.Driver)
	}

	if cfg.App.TokenSignKey == "" || cfg.App.VerifierHashKey == "" {
		return fmt.Errorf("%w: token sign key and verifier hash key are required", ErrInvalidAppConfigs)
	}
	if cfg.App.MaxVaultsPerProfile < 0 {
		return fmt.Errorf("%w: negative vault limit", ErrInvalidAppConfigs)
	}

	if cfg.Timeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidServerConfigs)
	}

	return nil
}

// validate checks that the client configuration can reach the vault
// service and open a key store. The identity token is checked when it is
// used, so commands that need none can run without it.
func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	switch cfg.KeyStore.Backend {
	case KeyStoreKeyring:
	case KeyStoreBolt:
		if cfg.KeyStore.Path == "" {
			return fmt.Errorf("%w: bolt backend needs a path", ErrInvalidKeyStoreConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidKeyStoreConfigs, cfg.KeyStore.Backend)
	}

	if cfg.Workers.AutoLockAfter <= 0 {
		return fmt.Errorf("%w: auto-lock interval must be positive", ErrInvalidAppConfigs)
	}

	return nil
}
