// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
)

// EncryptSecureField encrypts plaintext with key using AES-CBC with PKCS#7
// padding. The envelope is a fresh random IV (one AES block) followed by the
// ciphertext: envelope = IV ‖ ciphertext.
//
// The envelope carries no authentication tag. Existing vaults are stored in
// this format, so integrity protection would be a format change.
func EncryptSecureField(plaintext, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	iv := make([]byte, aes.BlockSize)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return nil, fmt.Errorf("generate iv: %w", err)
	}

	padded := pkcs7Pad(plaintext, aes.BlockSize)
	envelope := make([]byte, aes.BlockSize+len(padded))
	copy(envelope, iv)
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(envelope[aes.BlockSize:], padded)

	return envelope, nil
}

// DecryptSecureField reverses EncryptSecureField. It returns
// [ErrInvalidEnvelope] if the envelope is shorter than one block, the
// ciphertext is not block aligned, or the padding is malformed.
func DecryptSecureField(envelope, key []byte) ([]byte, error) {
	if len(envelope) < aes.BlockSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidEnvelope, len(envelope))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	iv, ciphertext := envelope[:aes.BlockSize], envelope[aes.BlockSize:]
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: ciphertext is not block aligned", ErrInvalidEnvelope)
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext)

	return pkcs7Unpad(plaintext, aes.BlockSize)
}

// EncodeSecureField returns the at-rest (base64) form of an envelope.
func EncodeSecureField(envelope []byte) string {
	return base64.StdEncoding.EncodeToString(envelope)
}

// DecodeSecureField parses the at-rest form of an envelope.
func DecodeSecureField(encoded string) ([]byte, error) {
	envelope, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEnvelope, err)
	}
	return envelope, nil
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	return append(bytes.Clone(data), bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty plaintext", ErrInvalidEnvelope)
	}
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize || n > len(data) {
		return nil, fmt.Errorf("%w: bad padding", ErrInvalidEnvelope)
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, fmt.Errorf("%w: bad padding", ErrInvalidEnvelope)
		}
	}
	return data[:len(data)-n], nil
}
