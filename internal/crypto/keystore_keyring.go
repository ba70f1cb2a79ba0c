package crypto

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

// keyringServicePrefix namespaces keyring entries of this application.
const keyringServicePrefix = "go-pass-vault"

// KeyringKeyStore is a [KeyStore] backed by the OS keyring (Keychain,
// Secret Service or Windows Credential Manager). Every identity gets its own
// keyring service so RemoveAllKeys never touches other users' keys.
type KeyringKeyStore struct {
	service string
}

// NewKeyringKeyStore returns a key store for the given identity.
func NewKeyringKeyStore(identity string) *KeyringKeyStore {
	return &KeyringKeyStore{service: keyringServicePrefix + ":" + identity}
}

func (k *KeyringKeyStore) get(name string) (keyEntry, bool, error) {
	raw, err := keyring.Get(k.service, name)
	if errors.Is(err, keyring.ErrNotFound) {
		return keyEntry{}, false, nil
	}
	if err != nil {
		return keyEntry{}, false, fmt.Errorf("keyring get %q: %w", name, err)
	}

	entry, err := decodeKeyEntry(raw)
	if err != nil {
		return keyEntry{}, false, fmt.Errorf("keyring get %q: %w", name, err)
	}
	return entry, true, nil
}

func (k *KeyringKeyStore) put(name string, entry keyEntry) error {
	if err := keyring.Set(k.service, name, entry.encode()); err != nil {
		return fmt.Errorf("keyring set %q: %w", name, err)
	}
	return nil
}

// GetSymmetricKey implements [KeyStore].
func (k *KeyringKeyStore) GetSymmetricKey(name string) ([]byte, error) {
	entry, ok, err := k.get(name)
	if err != nil || !ok {
		return nil, err
	}
	return entry.exported(), nil
}

// AddSymmetricKey implements [KeyStore].
func (k *KeyringKeyStore) AddSymmetricKey(name string, key []byte) error {
	_, ok, err := k.get(name)
	if err != nil {
		return err
	}
	if ok {
		return ErrKeyAlreadyExists
	}
	return k.put(name, keyEntry{key: key, exportable: true})
}

// GenerateSymmetricKey implements [KeyStore].
func (k *KeyringKeyStore) GenerateSymmetricKey(name string, exportable bool) error {
	key, err := randomBytes(symmetricKeySize)
	if err != nil {
		return fmt.Errorf("generate key: %w", err)
	}
	return k.put(name, keyEntry{key: key, exportable: exportable})
}

// EncryptWithSymmetricKey implements [KeyStore].
func (k *KeyringKeyStore) EncryptWithSymmetricKey(name string, data []byte) ([]byte, error) {
	entry, ok, err := k.get(name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, name)
	}
	return sealGCM(entry.key, data)
}

// DecryptWithSymmetricKey implements [KeyStore].
func (k *KeyringKeyStore) DecryptWithSymmetricKey(name string, data []byte) ([]byte, error) {
	entry, ok, err := k.get(name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, name)
	}
	return openGCM(entry.key, data)
}

// CreateRandomBytes implements [KeyStore].
func (k *KeyringKeyStore) CreateRandomBytes(n int) ([]byte, error) {
	return randomBytes(n)
}

// RemoveAllKeys implements [KeyStore].
func (k *KeyringKeyStore) RemoveAllKeys() error {
	if err := keyring.DeleteAll(k.service); err != nil {
		return fmt.Errorf("keyring delete all: %w", err)
	}
	return nil
}
