// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/store"
)

// mapRemoteError translates an error of a remote collaborator into a password
// manager error. A stale vault version becomes VersionMismatch; everything
// else is reported as a RemoteServiceError failure with the transport error
// kept as the cause.
func mapRemoteError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrVersionConflict):
		return newError(VersionMismatch, err)
	default:
		return newError(RemoteServiceError, err)
	}
}

// mapPasswordChangeError is mapRemoteError for a password change, where a
// rejected current password is the caller's mistake rather than a service
// failure.
func mapPasswordChangeError(err error) error {
	if errors.Is(err, adapter.ErrUnauthorized) {
		return newError(NotAuthorized, err)
	}
	return mapRemoteError(err)
}

// mapCacheError translates a vault cache error.
func mapCacheError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, store.ErrVaultNotFound),
		errors.Is(err, store.ErrItemNotFound),
		errors.Is(err, store.ErrItemAlreadyExists),
		errors.Is(err, store.ErrUnsupportedItem):
		return newError(InvalidVault, err)
	default:
		return newError(Internal, err)
	}
}

// mapKeyStoreError translates a key store error.
func mapKeyStoreError(err error) error {
	if err == nil {
		return nil
	}
	return newError(Security, err)
}
