// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"
)

const (
	// keyDerivingKeyName is suffixed to the user name to build the key store
	// name of the KDK: "<user>.keyDerivingKey".
	keyDerivingKeyName = "keyDerivingKey"

	// KeyDerivingKeySize is the size of a KDK in bytes.
	KeyDerivingKeySize = 16
)

// keyManager is the private implementation of [KeyManager].
type keyManager struct {
	store    KeyStore
	identity IdentityProvider
}

// NewKeyManager constructs a [KeyManager] over store. The user name is
// resolved through identity on every KDK access.
func NewKeyManager(store KeyStore, identity IdentityProvider) KeyManager {
	return &keyManager{store: store, identity: identity}
}

func (k *keyManager) kdkName() (string, error) {
	user, err := k.identity.GetUserName()
	if err != nil {
		return "", errors.Join(ErrNoIdentity, err)
	}
	if user == "" {
		return "", ErrNoIdentity
	}
	return user + "." + keyDerivingKeyName, nil
}

// GetKeyDerivingKey implements [KeyManager].
func (k *keyManager) GetKeyDerivingKey() ([]byte, error) {
	name, err := k.kdkName()
	if err != nil {
		return nil, err
	}
	return k.store.GetSymmetricKey(name)
}

// SetKeyDerivingKey implements [KeyManager].
func (k *keyManager) SetKeyDerivingKey(key []byte) error {
	name, err := k.kdkName()
	if err != nil {
		return err
	}
	return k.store.AddSymmetricKey(name, key)
}

// GenerateKeyDerivingKey implements [KeyManager].
func (k *keyManager) GenerateKeyDerivingKey() ([]byte, error) {
	key, err := k.store.CreateRandomBytes(KeyDerivingKeySize)
	if err != nil {
		return nil, fmt.Errorf("generate key deriving key: %w", err)
	}
	return key, nil
}

func (k *keyManager) GetSymmetricKey(name string) ([]byte, error) {
	return k.store.GetSymmetricKey(name)
}

func (k *keyManager) GenerateSymmetricKey(name string, exportable bool) error {
	return k.store.GenerateSymmetricKey(name, exportable)
}

func (k *keyManager) EncryptWithSymmetricKey(name string, data []byte) ([]byte, error) {
	return k.store.EncryptWithSymmetricKey(name, data)
}

func (k *keyManager) DecryptWithSymmetricKey(name string, data []byte) ([]byte, error) {
	return k.store.DecryptWithSymmetricKey(name, data)
}

// EncryptSecureField implements [KeyManager].
func (k *keyManager) EncryptSecureField(data, key []byte) ([]byte, error) {
	return EncryptSecureField(data, key)
}

// DecryptSecureField implements [KeyManager].
func (k *keyManager) DecryptSecureField(envelope, key []byte) ([]byte, error) {
	return DecryptSecureField(envelope, key)
}

func (k *keyManager) RemoveAllKeys() error {
	return k.store.RemoveAllKeys()
}
