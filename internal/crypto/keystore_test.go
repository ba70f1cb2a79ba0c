package crypto

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

// keyStoreContract runs the behaviour every KeyStore backend must share.
func keyStoreContract(t *testing.T, newStore func(t *testing.T, identity string) KeyStore) {
	t.Run("get missing returns nil", func(t *testing.T) {
		s := newStore(t, "alice")
		key, err := s.GetSymmetricKey("nope")
		require.NoError(t, err)
		assert.Nil(t, key)
	})

	t.Run("add then get", func(t *testing.T) {
		s := newStore(t, "alice")
		want := []byte{1, 2, 3, 4}
		require.NoError(t, s.AddSymmetricKey("k", want))

		got, err := s.GetSymmetricKey("k")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("add twice fails", func(t *testing.T) {
		s := newStore(t, "alice")
		require.NoError(t, s.AddSymmetricKey("k", []byte{1}))
		assert.ErrorIs(t, s.AddSymmetricKey("k", []byte{2}), ErrKeyAlreadyExists)

		got, err := s.GetSymmetricKey("k")
		require.NoError(t, err)
		assert.Equal(t, []byte{1}, got)
	})

	t.Run("non-exportable key is usable but hidden", func(t *testing.T) {
		s := newStore(t, "alice")
		require.NoError(t, s.GenerateSymmetricKey("session", false))

		got, err := s.GetSymmetricKey("session")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Empty(t, got)

		sealed, err := s.EncryptWithSymmetricKey("session", []byte("pw"))
		require.NoError(t, err)
		assert.False(t, bytes.Contains(sealed, []byte("pw")))

		opened, err := s.DecryptWithSymmetricKey("session", sealed)
		require.NoError(t, err)
		assert.Equal(t, []byte("pw"), opened)
	})

	t.Run("exportable generated key", func(t *testing.T) {
		s := newStore(t, "alice")
		require.NoError(t, s.GenerateSymmetricKey("k", true))

		got, err := s.GetSymmetricKey("k")
		require.NoError(t, err)
		assert.Len(t, got, symmetricKeySize)
	})

	t.Run("regenerate replaces key", func(t *testing.T) {
		s := newStore(t, "alice")
		require.NoError(t, s.GenerateSymmetricKey("k", false))
		sealed, err := s.EncryptWithSymmetricKey("k", []byte("pw"))
		require.NoError(t, err)

		require.NoError(t, s.GenerateSymmetricKey("k", false))
		_, err = s.DecryptWithSymmetricKey("k", sealed)
		assert.Error(t, err)
	})

	t.Run("encrypt with missing key", func(t *testing.T) {
		s := newStore(t, "alice")
		_, err := s.EncryptWithSymmetricKey("missing", []byte("x"))
		assert.ErrorIs(t, err, ErrKeyNotFound)
		_, err = s.DecryptWithSymmetricKey("missing", []byte("x"))
		assert.ErrorIs(t, err, ErrKeyNotFound)
	})

	t.Run("random bytes", func(t *testing.T) {
		s := newStore(t, "alice")
		b1, err := s.CreateRandomBytes(16)
		require.NoError(t, err)
		b2, err := s.CreateRandomBytes(16)
		require.NoError(t, err)
		assert.Len(t, b1, 16)
		assert.NotEqual(t, b1, b2)
	})

	t.Run("remove all keys only affects identity", func(t *testing.T) {
		alice := newStore(t, "alice")
		bob := newStore(t, "bob")
		require.NoError(t, alice.AddSymmetricKey("k", []byte{1}))
		require.NoError(t, bob.AddSymmetricKey("k", []byte{2}))

		require.NoError(t, alice.RemoveAllKeys())
		require.NoError(t, alice.RemoveAllKeys())

		got, err := alice.GetSymmetricKey("k")
		require.NoError(t, err)
		assert.Nil(t, got)

		got, err = bob.GetSymmetricKey("k")
		require.NoError(t, err)
		assert.Equal(t, []byte{2}, got)
	})
}

func TestKeyringKeyStore(t *testing.T) {
	keyStoreContract(t, func(t *testing.T, identity string) KeyStore {
		keyring.MockInit()
		return NewKeyringKeyStore(identity)
	})
}

func TestBoltKeyStore(t *testing.T) {
	keyStoreContract(t, func(t *testing.T, identity string) KeyStore {
		path := filepath.Join(t.TempDir(), "keys", "keys.db")
		s, err := OpenBoltKeyStore(path, identity)
		require.NoError(t, err)
		t.Cleanup(func() { _ = s.Close() })
		return s
	})
}

func TestDecodeKeyEntry_Malformed(t *testing.T) {
	for _, raw := range []string{"", "plain", "x:!!!"} {
		_, err := decodeKeyEntry(raw)
		assert.ErrorIs(t, err, errMalformedEntry, raw)
	}
}
