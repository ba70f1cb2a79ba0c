package crypto

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

type staticIdentity struct {
	name string
	err  error
}

func (s staticIdentity) GetUserName() (string, error) { return s.name, s.err }

func TestKeyManager_KeyDerivingKey(t *testing.T) {
	keyring.MockInit()
	store := NewKeyringKeyStore("alice")
	km := NewKeyManager(store, staticIdentity{name: "alice"})

	got, err := km.GetKeyDerivingKey()
	require.NoError(t, err)
	assert.Nil(t, got)

	kdk, err := km.GenerateKeyDerivingKey()
	require.NoError(t, err)
	assert.Len(t, kdk, KeyDerivingKeySize)

	require.NoError(t, km.SetKeyDerivingKey(kdk))
	assert.ErrorIs(t, km.SetKeyDerivingKey(kdk), ErrKeyAlreadyExists)

	got, err = km.GetKeyDerivingKey()
	require.NoError(t, err)
	assert.Equal(t, kdk, got)

	// stored under the user-scoped name
	raw, err := store.GetSymmetricKey("alice.keyDerivingKey")
	require.NoError(t, err)
	assert.Equal(t, kdk, raw)

	require.NoError(t, km.RemoveAllKeys())
	got, err = km.GetKeyDerivingKey()
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestKeyManager_NoIdentity(t *testing.T) {
	keyring.MockInit()
	store := NewKeyringKeyStore("x")

	_, err := NewKeyManager(store, staticIdentity{}).GetKeyDerivingKey()
	assert.ErrorIs(t, err, ErrNoIdentity)

	boom := errors.New("token expired")
	err = NewKeyManager(store, staticIdentity{err: boom}).SetKeyDerivingKey([]byte{1})
	assert.ErrorIs(t, err, ErrNoIdentity)
	assert.ErrorIs(t, err, boom)
}

func TestKeyManager_SecureField(t *testing.T) {
	keyring.MockInit()
	km := NewKeyManager(NewKeyringKeyStore("alice"), staticIdentity{name: "alice"})
	key := testKey(0x66)

	envelope, err := km.EncryptSecureField([]byte("secret"), key)
	require.NoError(t, err)

	plain, err := km.DecryptSecureField(envelope, key)
	require.NoError(t, err)
	assert.Equal(t, "secret", string(plain))
}

func TestKeyManager_SymmetricKeys(t *testing.T) {
	keyring.MockInit()
	km := NewKeyManager(NewKeyringKeyStore("alice"), staticIdentity{name: "alice"})

	require.NoError(t, km.GenerateSymmetricKey("sessionKey", false))
	key, err := km.GetSymmetricKey("sessionKey")
	require.NoError(t, err)
	assert.Equal(t, []byte{}, key)

	sealed, err := km.EncryptWithSymmetricKey("sessionKey", []byte("pw"))
	require.NoError(t, err)
	plain, err := km.DecryptWithSymmetricKey("sessionKey", sealed)
	require.NoError(t, err)
	assert.Equal(t, []byte("pw"), plain)
}
