package crypto

import (
	"bytes"
	"testing"
)

func lightDeriver() *CredentialDeriver {
	return NewCredentialDeriverWithParams(1, 1024, 1)
}

func TestCredentialDeriver_AuthKey(t *testing.T) {
	d := lightDeriver()
	kdk := bytes.Repeat([]byte{0x01}, KeyDerivingKeySize)

	k1 := d.AuthKey(kdk, []byte("password"))
	k2 := d.AuthKey(kdk, []byte("password"))
	if len(k1) != 32 {
		t.Fatalf("auth key length = %d, want 32", len(k1))
	}
	if !bytes.Equal(k1, k2) {
		t.Fatalf("expected the same auth key for the same inputs")
	}

	if bytes.Equal(k1, d.AuthKey(kdk, []byte("Password"))) {
		t.Fatalf("expected a different auth key for a different password")
	}
	otherKDK := bytes.Repeat([]byte{0x02}, KeyDerivingKeySize)
	if bytes.Equal(k1, d.AuthKey(otherKDK, []byte("password"))) {
		t.Fatalf("expected a different auth key for a different KDK")
	}
}

func TestVaultBlob_SealOpen(t *testing.T) {
	kdk := bytes.Repeat([]byte{0x07}, KeyDerivingKeySize)
	blob := []byte(`{"schemaVersion":1}`)

	sealed, err := SealVaultBlob(kdk, blob)
	if err != nil {
		t.Fatalf("SealVaultBlob error: %v", err)
	}
	if bytes.Contains(sealed, blob) {
		t.Fatalf("sealed blob contains the plaintext")
	}

	got, err := OpenVaultBlob(kdk, sealed)
	if err != nil {
		t.Fatalf("OpenVaultBlob error: %v", err)
	}
	if !bytes.Equal(got, blob) {
		t.Fatalf("opened = %q, want %q", got, blob)
	}

	if _, err := OpenVaultBlob(bytes.Repeat([]byte{0x08}, KeyDerivingKeySize), sealed); err == nil {
		t.Fatalf("expected an error opening with another KDK")
	}
	if _, err := OpenVaultBlob(kdk, sealed[:4]); err != ErrCiphertextTooShort {
		t.Fatalf("error = %v, want ErrCiphertextTooShort", err)
	}
}

func TestBlobKey_DiffersFromKDK(t *testing.T) {
	kdk := bytes.Repeat([]byte{0x09}, 32)

	key, err := BlobKey(kdk)
	if err != nil {
		t.Fatalf("BlobKey error: %v", err)
	}
	if len(key) != 32 || bytes.Equal(key, kdk) {
		t.Fatalf("unexpected blob key %x", key)
	}
}
