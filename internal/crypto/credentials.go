// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/hkdf"
)

// vaultBlobKeyInfo domain-separates the blob key from other HKDF outputs of
// the same KDK.
const vaultBlobKeyInfo = "go-pass-vault/vault-blob/v1"

// CredentialDeriver turns the master password and the KDK into what the
// remote vault store sees. The store never receives either secret: it is
// given an Argon2id auth key, and vault blobs are sealed with a key derived
// from the KDK alone so that a password change does not re-encrypt vaults.
type CredentialDeriver struct {
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewCredentialDeriver constructs a [CredentialDeriver] with the Argon2id
// parameters recommended by OWASP:
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes
func NewCredentialDeriver() *CredentialDeriver {
	return NewCredentialDeriverWithParams(1, 64*1024, 4)
}

// NewCredentialDeriverWithParams constructs a [CredentialDeriver] with custom
// Argon2id cost. memoryKiB is in kibibytes.
func NewCredentialDeriverWithParams(time, memoryKiB uint32, threads uint8) *CredentialDeriver {
	return &CredentialDeriver{
		argonTime:    time,
		argonMemory:  memoryKiB,
		argonThreads: threads,
		argonKeyLen:  32,
	}
}

// AuthKey derives the key presented to the vault service from the master
// password, salted with the KDK. A wrong password or a wrong KDK both yield
// a different auth key, which the service rejects.
func (d *CredentialDeriver) AuthKey(kdk, password []byte) []byte {
	return argon2.IDKey(password, kdk, d.argonTime, d.argonMemory, d.argonThreads, d.argonKeyLen)
}

// BlobKey derives the AES-256 key vault blobs are sealed with.
func BlobKey(kdk []byte) ([]byte, error) {
	key := make([]byte, 32)
	if _, err := io.ReadFull(hkdf.New(sha256.New, kdk, nil, []byte(vaultBlobKeyInfo)), key); err != nil {
		return nil, fmt.Errorf("derive blob key: %w", err)
	}
	return key, nil
}

// SealVaultBlob encrypts an encoded vault for upload.
func SealVaultBlob(kdk, blob []byte) ([]byte, error) {
	key, err := BlobKey(kdk)
	if err != nil {
		return nil, err
	}
	return sealGCM(key, blob)
}

// OpenVaultBlob decrypts a vault blob downloaded from the store.
func OpenVaultBlob(kdk, sealed []byte) ([]byte, error) {
	key, err := BlobKey(kdk)
	if err != nil {
		return nil, err
	}
	return openGCM(key, sealed)
}
