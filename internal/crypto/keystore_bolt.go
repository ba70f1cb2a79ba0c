package crypto

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

// BoltKeyStore is a [KeyStore] backed by a bbolt file, for hosts without an
// OS keyring. Each identity owns one bucket.
//
// Keys are stored as-is: protect the file with file-system permissions.
type BoltKeyStore struct {
	db     *bolt.DB
	bucket []byte
}

// OpenBoltKeyStore opens (or creates) the key file at path for identity.
func OpenBoltKeyStore(path, identity string) (*BoltKeyStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create key store dir: %w", err)
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open key store: %w", err)
	}

	return &BoltKeyStore{db: db, bucket: []byte(identity)}, nil
}

// Close closes the key file.
func (b *BoltKeyStore) Close() error {
	return b.db.Close()
}

func (b *BoltKeyStore) get(name string) (keyEntry, bool, error) {
	var raw []byte
	err := b.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(b.bucket)
		if bucket == nil {
			return nil
		}
		// the slice is only valid during the transaction
		if v := bucket.Get([]byte(name)); v != nil {
			raw = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil || raw == nil {
		return keyEntry{}, false, err
	}

	entry, err := decodeKeyEntry(string(raw))
	if err != nil {
		return keyEntry{}, false, fmt.Errorf("key store get %q: %w", name, err)
	}
	return entry, true, nil
}

func (b *BoltKeyStore) put(name string, entry keyEntry, replace bool) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(b.bucket)
		if err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", b.bucket, err)
		}
		if !replace && bucket.Get([]byte(name)) != nil {
			return ErrKeyAlreadyExists
		}
		return bucket.Put([]byte(name), []byte(entry.encode()))
	})
}

// GetSymmetricKey implements [KeyStore].
func (b *BoltKeyStore) GetSymmetricKey(name string) ([]byte, error) {
	entry, ok, err := b.get(name)
	if err != nil || !ok {
		return nil, err
	}
	return entry.exported(), nil
}

// AddSymmetricKey implements [KeyStore].
func (b *BoltKeyStore) AddSymmetricKey(name string, key []byte) error {
	return b.put(name, keyEntry{key: key, exportable: true}, false)
}

// GenerateSymmetricKey implements [KeyStore].
func (b *BoltKeyStore) GenerateSymmetricKey(name string, exportable bool) error {
	key, err := randomBytes(symmetricKeySize)
	if err != nil {
		return fmt.Errorf("generate key: %w", err)
	}
	return b.put(name, keyEntry{key: key, exportable: exportable}, true)
}

// EncryptWithSymmetricKey implements [KeyStore].
func (b *BoltKeyStore) EncryptWithSymmetricKey(name string, data []byte) ([]byte, error) {
	entry, ok, err := b.get(name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, name)
	}
	return sealGCM(entry.key, data)
}

// DecryptWithSymmetricKey implements [KeyStore].
func (b *BoltKeyStore) DecryptWithSymmetricKey(name string, data []byte) ([]byte, error) {
	entry, ok, err := b.get(name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, name)
	}
	return openGCM(entry.key, data)
}

// CreateRandomBytes implements [KeyStore].
func (b *BoltKeyStore) CreateRandomBytes(n int) ([]byte, error) {
	return randomBytes(n)
}

// RemoveAllKeys implements [KeyStore].
func (b *BoltKeyStore) RemoveAllKeys() error {
	return b.db.Update(func(tx *bolt.Tx) error {
		if tx.Bucket(b.bucket) == nil {
			return nil
		}
		return tx.DeleteBucket(b.bucket)
	})
}
