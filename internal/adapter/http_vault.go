// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

// VaultClient is the HTTP client of the secure vault store.
//
// The master password and the key deriving key never leave the device:
// requests that must prove knowledge of them carry the auth key derived by
// [crypto.CredentialDeriver], and vault blobs are sealed with a key derived
// from the KDK before upload.
type VaultClient struct {
	*restClient
	deriver *crypto.CredentialDeriver
}

// NewVaultClient constructs a [VaultClient] for the service at
// adapterCfg.HTTPAddress.
func NewVaultClient(adapterCfg config.ClientAdapter, appCfg config.ClientApp, tokens TokenSource, deriver *crypto.CredentialDeriver, log *logger.Logger) (*VaultClient, error) {
	rc, err := newRestClient(adapterCfg, appCfg, tokens, log)
	if err != nil {
		return nil, err
	}
	return &VaultClient{restClient: rc, deriver: deriver}, nil
}

func (v *VaultClient) authKey(kdk, password []byte) string {
	return base64.StdEncoding.EncodeToString(v.deriver.AuthKey(kdk, password))
}

// IsRegistered reports whether the signed-in user has a vault service
// account. GET /api/vault/registration.
func (v *VaultClient) IsRegistered(ctx context.Context) (bool, error) {
	var status models.RegistrationResponse

	resp, err := v.request(ctx).
		SetResult(&status).
		Get("/api/vault/registration")
	if err != nil {
		return false, fmt.Errorf("registration status request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}
	return status.Registered, nil
}

// Register creates the vault service account and returns the user id.
// POST /api/vault/register.
func (v *VaultClient) Register(ctx context.Context, kdk, password []byte) (string, error) {
	var registered models.RegisterResponse

	resp, err := v.request(ctx).
		SetHeader(models.HeaderVaultAuth, v.authKey(kdk, password)).
		SetResult(&registered).
		Post("/api/vault/register")
	if err != nil {
		return "", fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return registered.UserID, nil
}

// ListVaults downloads and opens every vault of the user. A vault whose
// blob cannot be opened with kdk is logged and left out.
// GET /api/vault/vaults.
func (v *VaultClient) ListVaults(ctx context.Context, kdk, password []byte) ([]models.RemoteVault, error) {
	var sealed []models.RemoteVault

	resp, err := v.request(ctx).
		SetHeader(models.HeaderVaultAuth, v.authKey(kdk, password)).
		SetResult(&sealed).
		Get("/api/vault/vaults")
	if err != nil {
		return nil, fmt.Errorf("list vaults request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	vaults := make([]models.RemoteVault, 0, len(sealed))
	for _, vault := range sealed {
		blob, err := crypto.OpenVaultBlob(kdk, vault.Blob)
		if err != nil {
			v.logger.Warn().Err(err).
				Str("func", "*VaultClient.ListVaults").
				Str("vault_id", vault.ID).
				Msg("skipping vault that cannot be opened")
			continue
		}
		vault.Blob = blob
		vaults = append(vaults, vault)
	}
	return vaults, nil
}

// CreateVault uploads a new vault. POST /api/vault/vaults.
func (v *VaultClient) CreateVault(ctx context.Context, kdk, password, blob []byte, blobFormat, ownershipProof string) (models.VaultMetadata, error) {
	sealed, err := crypto.SealVaultBlob(kdk, blob)
	if err != nil {
		return models.VaultMetadata{}, fmt.Errorf("seal vault blob: %w", err)
	}

	req, err := v.jsonRequest(ctx, models.CreateVaultRequest{
		Blob:           sealed,
		BlobFormat:     blobFormat,
		OwnershipProof: ownershipProof,
	})
	if err != nil {
		return models.VaultMetadata{}, err
	}

	var metadata models.VaultMetadata
	resp, err := req.
		SetHeader(models.HeaderVaultAuth, v.authKey(kdk, password)).
		SetResult(&metadata).
		Post("/api/vault/vaults")
	if err != nil {
		return models.VaultMetadata{}, fmt.Errorf("create vault request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VaultMetadata{}, err
	}
	return metadata, nil
}

// UpdateVault replaces the blob of vault id. version must be the version the
// client last saw; a stale version fails with [ErrVersionConflict].
// PUT /api/vault/vaults/{id}.
func (v *VaultClient) UpdateVault(ctx context.Context, kdk, password []byte, id string, version int, blob []byte, blobFormat string) (models.VaultMetadata, error) {
	sealed, err := crypto.SealVaultBlob(kdk, blob)
	if err != nil {
		return models.VaultMetadata{}, fmt.Errorf("seal vault blob: %w", err)
	}

	req, err := v.jsonRequest(ctx, models.UpdateVaultRequest{
		Version:    version,
		Blob:       sealed,
		BlobFormat: blobFormat,
	})
	if err != nil {
		return models.VaultMetadata{}, err
	}

	var metadata models.VaultMetadata
	resp, err := req.
		SetHeader(models.HeaderVaultAuth, v.authKey(kdk, password)).
		SetPathParam("id", id).
		SetResult(&metadata).
		Put("/api/vault/vaults/{id}")
	if err != nil {
		return models.VaultMetadata{}, fmt.Errorf("update vault request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VaultMetadata{}, err
	}
	return metadata, nil
}

// DeleteVault deletes vault id. The identity token alone authorizes it.
// DELETE /api/vault/vaults/{id}.
func (v *VaultClient) DeleteVault(ctx context.Context, id string) error {
	resp, err := v.request(ctx).
		SetPathParam("id", id).
		Delete("/api/vault/vaults/{id}")
	if err != nil {
		return fmt.Errorf("delete vault request: %w", err)
	}
	return mapHTTPError(resp)
}

// ListVaultsMetadataOnly lists the vaults of the user without their blobs.
// GET /api/vault/vaults/metadata.
func (v *VaultClient) ListVaultsMetadataOnly(ctx context.Context) ([]models.VaultMetadata, error) {
	var metadata []models.VaultMetadata

	resp, err := v.request(ctx).
		SetResult(&metadata).
		Get("/api/vault/vaults/metadata")
	if err != nil {
		return nil, fmt.Errorf("list vault metadata request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	return metadata, nil
}

// ChangeVaultPassword replaces the auth key of the account. The request is
// authorized with the auth key of oldPassword. PUT /api/vault/password.
func (v *VaultClient) ChangeVaultPassword(ctx context.Context, kdk, oldPassword, newPassword []byte) error {
	req, err := v.jsonRequest(ctx, models.ChangePasswordRequest{
		NewAuthKey: v.deriver.AuthKey(kdk, newPassword),
	})
	if err != nil {
		return err
	}

	resp, err := req.
		SetHeader(models.HeaderVaultAuth, v.authKey(kdk, oldPassword)).
		Put("/api/vault/password")
	if err != nil {
		return fmt.Errorf("change password request: %w", err)
	}
	return mapHTTPError(resp)
}

// Deregister deletes the account and every vault of the user and returns the
// user id. POST /api/vault/deregister.
func (v *VaultClient) Deregister(ctx context.Context) (string, error) {
	var deregistered models.DeregisterResponse

	resp, err := v.request(ctx).
		SetResult(&deregistered).
		Post("/api/vault/deregister")
	if err != nil {
		return "", fmt.Errorf("deregister request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return deregistered.UserID, nil
}

// Reset deletes the user together with all of their vaults. Resetting an
// unregistered user succeeds.
// POST /api/vault/reset.
func (v *VaultClient) Reset(ctx context.Context) error {
	resp, err := v.request(ctx).
		Post("/api/vault/reset")
	if err != nil {
		return fmt.Errorf("reset request: %w", err)
	}
	return mapHTTPError(resp)
}
