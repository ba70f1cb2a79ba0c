package config

import (
	"fmt"
	"time"
)

// Key store backends accepted in [KeyStore.Backend].
const (
	KeyStoreKeyring = "keyring"
	KeyStoreBolt    = "bolt"
)

// Client defaults applied when no source sets a value.
const (
	DefaultAdapterAddress = "http://localhost:8080"
	DefaultAutoLockAfter  = 5 * time.Minute
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// HashKey is the HMAC key used by the client for payload integrity
	// checks. Empty disables the HashSHA256 header.
	HashKey string
	// IdentityToken is the signed identity token of the user.
	IdentityToken string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the vault service address used by the client.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientKeyStore holds the key store backend settings.
type ClientKeyStore struct {
	Backend string
	Path    string
}

// ClientWorkers contains client background job settings.
type ClientWorkers struct {
	// AutoLockAfter is the idle time after which the shell locks.
	AutoLockAfter time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains the vault service address and timeout.
	Adapter ClientAdapter
	// KeyStore selects where keys are kept.
	KeyStore ClientKeyStore
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view.
//
// Environment variables win over overrides, which hold values given on the
// client command line; the config file named by either fills the rest.
func GetClientConfig(overrides *StructuredConfig) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withConfig(overrides).
		withFile().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := cfg.clientView()
	return clientCfg, clientCfg.validate()
}

func (cfg *StructuredConfig) clientView() *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			HashKey:       cfg.App.HashKey,
			IdentityToken: cfg.App.IdentityToken,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    orDefault(cfg.Adapter.HTTPAddress, DefaultAdapterAddress),
			RequestTimeout: orDefault(cfg.Adapter.RequestTimeout, DefaultRequestTimeout),
		},
		KeyStore: ClientKeyStore{
			Backend: orDefault(cfg.KeyStore.Backend, KeyStoreKeyring),
			Path:    cfg.KeyStore.Path,
		},
		Workers: ClientWorkers{
			AutoLockAfter: orDefault(cfg.Workers.AutoLockAfter, DefaultAutoLockAfter),
		},
	}
}
