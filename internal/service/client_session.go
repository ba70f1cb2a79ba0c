package service

import (
	"fmt"
	"sync"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
)

// sessionKeyName names the non-exportable key the master password is
// encrypted with while the manager is unlocked.
const sessionKeyName = "sessionKey"

// credentials is what an unlocked session hands to remote calls.
type credentials struct {
	kdk      []byte
	password []byte
}

// unlockedVaultSession holds the standardized master password encrypted
// under the session key. It never keeps the password in plaintext.
type unlockedVaultSession struct {
	keys crypto.KeyManager

	mu                sync.RWMutex
	encryptedPassword []byte
}

func newUnlockedVaultSession(password []byte, keys crypto.KeyManager) (*unlockedVaultSession, error) {
	key, err := keys.GetSymmetricKey(sessionKeyName)
	if err != nil {
		return nil, fmt.Errorf("get session key: %w", err)
	}
	if key == nil {
		if err = keys.GenerateSymmetricKey(sessionKeyName, false); err != nil {
			return nil, fmt.Errorf("generate session key: %w", err)
		}
	}

	s := &unlockedVaultSession{keys: keys}
	if err = s.reseal(password); err != nil {
		return nil, err
	}
	return s, nil
}

// reseal replaces the held master password. The session stays the same
// object, so items handed out under it keep revealing.
func (s *unlockedVaultSession) reseal(password []byte) error {
	encrypted, err := s.keys.EncryptWithSymmetricKey(sessionKeyName, password)
	if err != nil {
		return fmt.Errorf("encrypt master password: %w", err)
	}

	s.mu.Lock()
	s.encryptedPassword = encrypted
	s.mu.Unlock()
	return nil
}

// Credentials returns the KDK and the master password, or nil if the KDK
// is no longer on the device.
func (s *unlockedVaultSession) Credentials() (*credentials, error) {
	kdk, err := s.keys.GetKeyDerivingKey()
	if err != nil {
		return nil, fmt.Errorf("get key deriving key: %w", err)
	}
	if kdk == nil {
		return nil, nil
	}

	s.mu.RLock()
	encrypted := s.encryptedPassword
	s.mu.RUnlock()

	password, err := s.keys.DecryptWithSymmetricKey(sessionKeyName, encrypted)
	if err != nil {
		return nil, fmt.Errorf("decrypt master password: %w", err)
	}

	return &credentials{kdk: kdk, password: password}, nil
}
