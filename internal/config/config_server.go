package config

import (
	"fmt"
	"strings"
	"time"
)

// Database drivers accepted in [DB.Driver].
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Server defaults applied when no source sets a value.
const (
	DefaultServerAddress       = "localhost:8080"
	DefaultRequestTimeout      = 30 * time.Second
	DefaultProofDuration       = 5 * time.Minute
	DefaultTokenDuration       = 24 * time.Hour
	DefaultMaxVaultsPerProfile = 1
	DefaultTokenIssuer         = "go-pass-vault"
)

// ServerApp holds the security and quota settings of the vault service.
type ServerApp struct {
	VerifierHashKey     string
	TokenSignKey        string
	TokenIssuer         string
	TokenDuration       time.Duration
	ProofDuration       time.Duration
	HashKey             string
	MaxVaultsPerProfile int
	Version             string
}

// ServerDB holds the resolved database settings.
type ServerDB struct {
	DSN    string
	Driver string
}

// ServerConfig is the vault service configuration assembled from
// [StructuredConfig].
type ServerConfig struct {
	App     ServerApp
	DB      ServerDB
	Address string
	Timeout time.Duration
}

// GetServerConfig builds and validates the server configuration from the
// environment, the flags in args and the config file.
func GetServerConfig(args []string) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := cfg.serverView()
	return serverCfg, serverCfg.validate()
}

func (cfg *StructuredConfig) serverView() *ServerConfig {
	return &ServerConfig{
		App: ServerApp{
			VerifierHashKey:     cfg.App.VerifierHashKey,
			TokenSignKey:        cfg.App.TokenSignKey,
			TokenIssuer:         orDefault(cfg.App.TokenIssuer, DefaultTokenIssuer),
			TokenDuration:       orDefault(cfg.App.TokenDuration, DefaultTokenDuration),
			ProofDuration:       orDefault(cfg.App.ProofDuration, DefaultProofDuration),
			HashKey:             cfg.App.HashKey,
			MaxVaultsPerProfile: orDefault(cfg.App.MaxVaultsPerProfile, DefaultMaxVaultsPerProfile),
			Version:             cfg.App.Version,
		},
		DB: ServerDB{
			DSN:    cfg.Storage.DB.DSN,
			Driver: resolveDriver(cfg.Storage.DB.Driver, cfg.Storage.DB.DSN),
		},
		Address: orDefault(cfg.Server.HTTPAddress, DefaultServerAddress),
		Timeout: orDefault(cfg.Server.RequestTimeout, DefaultRequestTimeout),
	}
}

// resolveDriver returns driver, or infers it from the DSN scheme.
func resolveDriver(driver, dsn string) string {
	if driver != "" {
		return strings.ToLower(driver)
	}
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return DriverPostgres
	}
	return DriverSQLite
}

func orDefault[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}

// GetTokenConfig builds the token signing settings used by tokenctl from
// the environment, overrides and the config file. Only the sign key is
// required.
func GetTokenConfig(overrides *StructuredConfig) (*ServerApp, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withConfig(overrides).
		withFile().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	app := cfg.serverView().App
	if app.TokenSignKey == "" {
		return nil, fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}
	return &app, nil
}
