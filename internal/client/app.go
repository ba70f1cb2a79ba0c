package client

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
)

// runtime is what the commands work with once the configuration is known.
type runtime struct {
	manager       service.PasswordManager
	autoLock      service.AutoLockJob
	profiles      service.ProfilesClient
	server        service.ServerInfoClient
	autoLockAfter time.Duration
	close         func() error
}

// runtimeFactory builds the runtime for cfg.
type runtimeFactory func(cfg *config.ClientConfig, log *logger.Logger) (*runtime, error)

type App struct {
	buildInfo models.AppBuildInfo

	prompter  Prompter
	clipboard Clipboard
	in        io.Reader
	out       io.Writer
	errOut    io.Writer

	newRuntime runtimeFactory
	rt         *runtime
	loadConfig func(overrides *config.StructuredConfig) (*config.ClientConfig, error)

	logger *logger.Logger
}

func NewApp(buildInfo models.AppBuildInfo, log *logger.Logger) *App {
	return &App{
		buildInfo:  buildInfo,
		prompter:   newTerminalPrompter(os.Stdin, os.Stderr),
		clipboard:  systemClipboard{},
		in:         os.Stdin,
		out:        os.Stdout,
		errOut:     os.Stderr,
		newRuntime: newRuntime,
		loadConfig: config.GetClientConfig,
		logger:     log,
	}
}

// Run implements [Client].
func (a *App) Run(args []string) error {
	defer a.close()

	root := a.newRootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(context.Background())
}

// ensureRuntime builds the runtime on first use.
func (a *App) ensureRuntime(overrides *config.StructuredConfig) error {
	if a.rt != nil {
		return nil
	}

	cfg, err := a.loadConfig(overrides)
	if err != nil {
		return err
	}

	rt, err := a.newRuntime(cfg, a.logger)
	if err != nil {
		return err
	}
	a.rt = rt
	return nil
}

func (a *App) close() {
	if a.rt == nil {
		return
	}
	a.rt.manager.Lock()
	if a.rt.close != nil {
		if err := a.rt.close(); err != nil {
			a.logger.Warn().Err(err).Str("func", "*App.close").Msg("failed to close key store")
		}
	}
	a.rt = nil
}

// newRuntime wires the password manager to the vault service and the key
// store selected by cfg.
func newRuntime(cfg *config.ClientConfig, log *logger.Logger) (*runtime, error) {
	identity, err := adapter.NewTokenIdentity(cfg.App.IdentityToken)
	if err != nil {
		return nil, err
	}
	username, err := identity.GetUserName()
	if err != nil {
		return nil, err
	}

	keyStore, closeKeyStore, err := openKeyStore(cfg.KeyStore, username)
	if err != nil {
		return nil, err
	}

	vaults, err := adapter.NewVaultClient(cfg.Adapter, cfg.App, identity, crypto.NewCredentialDeriver(), log)
	if err != nil {
		closeKeyStore()
		return nil, err
	}
	platform, err := adapter.NewPlatformClient(cfg.Adapter, cfg.App, identity, log)
	if err != nil {
		closeKeyStore()
		return nil, err
	}

	services := service.NewClientServices(service.PasswordManagerClients{
		Vaults:       vaults,
		Proofs:       platform,
		Entitlements: platform,
		Profiles:     platform,
		User:         identity,
	}, crypto.NewKeyManager(keyStore, identity), log)

	return &runtime{
		manager:       services.PasswordManager,
		autoLock:      services.AutoLockJob,
		profiles:      platform,
		server:        platform,
		autoLockAfter: cfg.Workers.AutoLockAfter,
		close:         closeKeyStore,
	}, nil
}

func openKeyStore(cfg config.ClientKeyStore, identity string) (crypto.KeyStore, func() error, error) {
	switch cfg.Backend {
	case config.KeyStoreKeyring:
		return crypto.NewKeyringKeyStore(identity), func() error { return nil }, nil
	case config.KeyStoreBolt:
		store, err := crypto.OpenBoltKeyStore(cfg.Path, identity)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownKeyStore, cfg.Backend)
	}
}
