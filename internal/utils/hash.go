package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// Hasher computes keyed HMAC-SHA256 digests of request bodies for the
// HashSHA256 integrity header. HMAC instances are pooled, so one Hasher may
// be shared by concurrent requests.
//
// A nil *Hasher means integrity checking is disabled.
type Hasher struct {
	pool sync.Pool
}

// NewHasher returns a Hasher keyed with hashKey, or nil when hashKey is
// empty.
//
// Example usage:
//
//	hasher := utils.NewHasher(cfg.App.HashKey)
//	if hasher != nil {
//	    req.Header.Set(models.HeaderBodyHash, hasher.HexSum(body))
//	}
func NewHasher(hashKey string) *Hasher {
	if hashKey == "" {
		return nil
	}

	key := []byte(hashKey)
	return &Hasher{
		pool: sync.Pool{
			New: func() any { return hmac.New(sha256.New, key) },
		},
	}
}

// Sum returns the HMAC-SHA256 digest of data.
func (h *Hasher) Sum(data []byte) []byte {
	mac := h.pool.Get().(hash.Hash)
	defer h.pool.Put(mac)

	mac.Reset()
	mac.Write(data)
	return mac.Sum(nil)
}

// HexSum returns the hex-encoded digest of data, the HashSHA256 header form.
func (h *Hasher) HexSum(data []byte) string {
	return hex.EncodeToString(h.Sum(data))
}

// Verify reports in constant time whether hexDigest is the HexSum of data.
func (h *Hasher) Verify(data []byte, hexDigest string) bool {
	digest, err := hex.DecodeString(hexDigest)
	if err != nil {
		return false
	}
	return hmac.Equal(h.Sum(data), digest)
}

// HashString returns the hex HMAC-SHA256 of data keyed with hashKey. It is
// meant for one-off digests such as the stored verifier of a client auth
// key; it does not use a pool.
//
// Example usage:
//
//	verifier := utils.HashString(hex.EncodeToString(authKey), cfg.VerifierHashKey)
func HashString(data string, hashKey string) string {
	mac := hmac.New(sha256.New, []byte(hashKey))
	mac.Write([]byte(data))
	return hex.EncodeToString(mac.Sum(nil))
}
