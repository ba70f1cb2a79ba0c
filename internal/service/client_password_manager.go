// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/schema"
	"github.com/MKhiriev/go-pass-vault/internal/secretcode"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

// PasswordManagerClients groups the remote collaborators of the password
// manager.
type PasswordManagerClients struct {
	Vaults       SecureVaultClient
	Proofs       OwnershipProofIssuer
	Entitlements EntitlementsClient
	Profiles     ProfilesClient
	User         UserClient
}

type passwordManager struct {
	clients PasswordManagerClients
	keys    crypto.KeyManager
	codec   VaultCodec
	cache   VaultCache
	factory *vaultItemFactory
	ids     IDGenerator
	logger  *logger.Logger

	// opMu serializes operations. sessMu guards session only, so reveals
	// and IsLocked never wait for a remote call.
	opMu    sync.Mutex
	sessMu  sync.RWMutex
	session *unlockedVaultSession
}

// NewPasswordManager constructs a locked [PasswordManager] using the latest
// vault schema and an in-memory vault cache.
func NewPasswordManager(clients PasswordManagerClients, keys crypto.KeyManager, log *logger.Logger) PasswordManager {
	codec := schema.NewCodec()
	return &passwordManager{
		clients: clients,
		keys:    keys,
		codec:   codec,
		cache:   store.NewClientVaultStore(codec, log),
		factory: newVaultItemFactory(keys),
		ids:     utils.NewUUIDGenerator(),
		logger:  log,
	}
}

// GetRegistrationStatus implements [PasswordManager].
func (m *passwordManager) GetRegistrationStatus(ctx context.Context) (models.RegistrationStatus, error) {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	registered, err := m.clients.Vaults.IsRegistered(ctx)
	if err != nil {
		return models.NotRegistered, mapRemoteError(err)
	}
	if !registered {
		return models.NotRegistered, nil
	}

	kdk, err := m.keys.GetKeyDerivingKey()
	if err != nil {
		return models.NotRegistered, mapKeyStoreError(err)
	}
	if kdk == nil {
		return models.MissingSecretCode, nil
	}
	return models.Registered, nil
}

// Register implements [PasswordManager]. A KDK already on the device is
// reused; otherwise a new one is generated and stored before the remote
// registration so it cannot be lost once the remote store knows the user.
func (m *passwordManager) Register(ctx context.Context, masterPassword string) error {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	password, err := standardizeMasterPassword(masterPassword)
	if err != nil {
		return newError(InvalidFormat, err)
	}

	kdk, err := m.keys.GetKeyDerivingKey()
	if err != nil {
		return mapKeyStoreError(err)
	}
	if kdk == nil {
		if kdk, err = m.keys.GenerateKeyDerivingKey(); err != nil {
			return mapKeyStoreError(err)
		}
		if err = m.keys.SetKeyDerivingKey(kdk); err != nil {
			return mapKeyStoreError(err)
		}
	}

	userID, err := m.clients.Vaults.Register(ctx, kdk, password)
	if err != nil {
		return mapRemoteError(err)
	}

	m.logger.Info().Str("func", "*passwordManager.Register").Str("user_id", userID).Msg("registered with vault service")
	return nil
}

// Unlock implements [PasswordManager]. The manager is locked first, so a
// failed unlock always leaves it locked.
func (m *passwordManager) Unlock(ctx context.Context, masterPassword, secretCode string) error {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	m.lock()

	password, err := standardizeMasterPassword(masterPassword)
	if err != nil {
		return newError(InvalidFormat, err)
	}

	cached, err := m.keys.GetKeyDerivingKey()
	if err != nil {
		return newError(InvalidPasswordOrMissingSecretCode, err)
	}

	kdk := cached
	if kdk == nil {
		kdk = m.parseSecretCode(secretCode)
	}
	if kdk == nil {
		return ErrInvalidPasswordOrMissingSecretCode
	}

	vaults, err := m.clients.Vaults.ListVaults(ctx, kdk, password)
	if err != nil {
		return newError(RemoteServiceError, err)
	}

	imported := m.cache.Import(vaults)

	if err = m.keys.SetKeyDerivingKey(kdk); err != nil && !errors.Is(err, crypto.ErrKeyAlreadyExists) {
		m.cache.RemoveAll()
		return mapKeyStoreError(err)
	}

	session, err := newUnlockedVaultSession(password, m.keys)
	if err != nil {
		m.cache.RemoveAll()
		return mapKeyStoreError(err)
	}
	m.setSession(session)

	m.logger.Debug().
		Str("func", "*passwordManager.Unlock").
		Int("vaults", len(vaults)).
		Int("imported", imported).
		Msg("unlocked")
	return nil
}

// parseSecretCode returns the KDK encoded in code, or nil when code is
// absent or unusable. An unusable code is treated like an absent one.
func (m *passwordManager) parseSecretCode(code string) []byte {
	if code == "" {
		return nil
	}
	kdk, err := secretcode.Parse(code)
	if err != nil {
		m.logger.Debug().Err(err).Str("func", "*passwordManager.parseSecretCode").Msg("ignoring secret code")
		return nil
	}
	if len(kdk) != crypto.KeyDerivingKeySize {
		m.logger.Debug().Str("func", "*passwordManager.parseSecretCode").Int("len", len(kdk)).Msg("ignoring short secret code")
		return nil
	}
	return kdk
}

// Lock implements [PasswordManager].
func (m *passwordManager) Lock() {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	m.lock()
}

func (m *passwordManager) lock() {
	m.setSession(nil)
	m.cache.RemoveAll()
}

func (m *passwordManager) setSession(s *unlockedVaultSession) {
	m.sessMu.Lock()
	m.session = s
	m.sessMu.Unlock()
}

func (m *passwordManager) currentSession() *unlockedVaultSession {
	m.sessMu.RLock()
	defer m.sessMu.RUnlock()
	return m.session
}

// IsLocked implements [PasswordManager]. The manager also counts as locked
// when the KDK has been removed from the key store behind its back.
func (m *passwordManager) IsLocked() bool {
	s := m.currentSession()
	if s == nil {
		return true
	}
	creds, err := s.Credentials()
	return err != nil || creds == nil
}

// unlocked returns the live session and its credentials, or ErrVaultLocked.
func (m *passwordManager) unlocked() (*unlockedVaultSession, *credentials, error) {
	s := m.currentSession()
	if s == nil {
		return nil, nil, ErrVaultLocked
	}
	creds, err := s.Credentials()
	if err != nil {
		return nil, nil, newError(VaultLocked, err)
	}
	if creds == nil {
		return nil, nil, ErrVaultLocked
	}
	return s, creds, nil
}

// guardFor returns the liveness check bound to s. Items handed out under s
// stop revealing once s is no longer the current session, that is after
// the next lock, reset or deregister.
func (m *passwordManager) guardFor(s *unlockedVaultSession) revealGuard {
	return func() error {
		if m.currentSession() != s {
			return ErrVaultLocked
		}
		creds, err := s.Credentials()
		if err != nil {
			return newError(VaultLocked, err)
		}
		if creds == nil {
			return ErrVaultLocked
		}
		return nil
	}
}

// Reset implements [PasswordManager].
func (m *passwordManager) Reset(ctx context.Context) error {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	m.lock()

	if err := m.clients.Vaults.Reset(ctx); err != nil {
		return mapRemoteError(err)
	}
	if err := m.keys.RemoveAllKeys(); err != nil {
		return mapKeyStoreError(err)
	}
	return nil
}

// Deregister implements [PasswordManager]. Local keys are removed only when
// the remote store confirms; the manager ends up locked either way.
func (m *passwordManager) Deregister(ctx context.Context) (string, error) {
	m.opMu.Lock()
	defer m.opMu.Unlock()
	defer m.lock()

	userID, err := m.clients.Vaults.Deregister(ctx)
	if err != nil {
		return "", mapRemoteError(err)
	}

	if err = m.keys.RemoveAllKeys(); err != nil {
		m.logger.Warn().Err(err).Str("func", "*passwordManager.Deregister").Msg("failed to remove local keys")
	}
	return userID, nil
}

// GetSecretCode implements [PasswordManager]. The second result is false when
// no KDK is stored on this device.
func (m *passwordManager) GetSecretCode() (string, bool) {
	kdk, err := m.keys.GetKeyDerivingKey()
	if err != nil || kdk == nil {
		m.logger.Debug().Err(err).Str("func", "*passwordManager.GetSecretCode").Msg("missing key deriving key")
		return "", false
	}

	subject, err := m.clients.User.GetSubject()
	if err != nil {
		m.logger.Debug().Err(err).Str("func", "*passwordManager.GetSecretCode").Msg("failed to get user subject")
		subject = ""
	}

	code, err := secretcode.Build(kdk, subject)
	if err != nil {
		m.logger.Error().Err(err).Str("func", "*passwordManager.GetSecretCode").Msg("failed to build secret code")
		return "", false
	}
	return code, true
}

// ChangeMasterPassword implements [PasswordManager].
func (m *passwordManager) ChangeMasterPassword(ctx context.Context, currentPassword, newPassword string) error {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	session, creds, err := m.unlocked()
	if err != nil {
		return err
	}

	current, err := standardizeMasterPassword(currentPassword)
	if err != nil {
		return newError(InvalidPasswordOrMissingSecretCode, err)
	}
	next, err := standardizeMasterPassword(newPassword)
	if err != nil {
		return newError(InvalidPasswordOrMissingSecretCode, err)
	}

	if err = m.clients.Vaults.ChangeVaultPassword(ctx, creds.kdk, current, next); err != nil {
		return mapPasswordChangeError(err)
	}

	if err = session.reseal(next); err != nil {
		m.lock()
		return mapKeyStoreError(err)
	}
	return nil
}
