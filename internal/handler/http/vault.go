// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

func (h *Handler) isRegistered(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := requestIdentity(w, r, "*Handler.isRegistered", false)
	if !ok {
		return
	}

	registered, err := h.services.SecureVaultService.IsRegistered(r.Context(), userID)
	if err != nil {
		writeError(w, r, "*Handler.isRegistered", err)
		return
	}

	writeJSON(w, r, http.StatusOK, models.RegistrationResponse{Registered: registered})
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	userID, authKey, ok := requestIdentity(w, r, "*Handler.register", true)
	if !ok {
		return
	}

	user, err := h.services.SecureVaultService.Register(r.Context(), userID, authKey)
	if err != nil {
		writeError(w, r, "*Handler.register", err)
		return
	}

	logger.FromRequest(r).Info().Str("user_id", user.UserID).Msg("user registered")
	writeJSON(w, r, http.StatusCreated, models.RegisterResponse{UserID: user.UserID})
}

func (h *Handler) listVaults(w http.ResponseWriter, r *http.Request) {
	userID, authKey, ok := requestIdentity(w, r, "*Handler.listVaults", true)
	if !ok {
		return
	}

	vaults, err := h.services.SecureVaultService.ListVaults(r.Context(), userID, authKey)
	if err != nil {
		writeError(w, r, "*Handler.listVaults", err)
		return
	}
	if vaults == nil {
		vaults = []models.RemoteVault{}
	}

	writeJSON(w, r, http.StatusOK, vaults)
}

func (h *Handler) listVaultsMetadata(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := requestIdentity(w, r, "*Handler.listVaultsMetadata", false)
	if !ok {
		return
	}

	metadata, err := h.services.SecureVaultService.ListVaultsMetadata(r.Context(), userID)
	if err != nil {
		writeError(w, r, "*Handler.listVaultsMetadata", err)
		return
	}
	if metadata == nil {
		metadata = []models.VaultMetadata{}
	}

	writeJSON(w, r, http.StatusOK, metadata)
}

func (h *Handler) createVault(w http.ResponseWriter, r *http.Request) {
	userID, authKey, ok := requestIdentity(w, r, "*Handler.createVault", true)
	if !ok {
		return
	}

	var request models.CreateVaultRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.createVault").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	metadata, err := h.services.SecureVaultService.CreateVault(r.Context(), userID, authKey, request)
	if err != nil {
		writeError(w, r, "*Handler.createVault", err)
		return
	}

	writeJSON(w, r, http.StatusCreated, metadata)
}

func (h *Handler) updateVault(w http.ResponseWriter, r *http.Request) {
	userID, authKey, ok := requestIdentity(w, r, "*Handler.updateVault", true)
	if !ok {
		return
	}

	var request models.UpdateVaultRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.updateVault").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	metadata, err := h.services.SecureVaultService.UpdateVault(r.Context(), userID, authKey, chi.URLParam(r, "id"), request)
	if err != nil {
		writeError(w, r, "*Handler.updateVault", err)
		return
	}

	writeJSON(w, r, http.StatusOK, metadata)
}

func (h *Handler) deleteVault(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := requestIdentity(w, r, "*Handler.deleteVault", false)
	if !ok {
		return
	}

	if err := h.services.SecureVaultService.DeleteVault(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		writeError(w, r, "*Handler.deleteVault", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	userID, authKey, ok := requestIdentity(w, r, "*Handler.changePassword", true)
	if !ok {
		return
	}

	var request models.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.changePassword").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err := h.services.SecureVaultService.ChangePassword(r.Context(), userID, authKey, request); err != nil {
		writeError(w, r, "*Handler.changePassword", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deregister(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := requestIdentity(w, r, "*Handler.deregister", false)
	if !ok {
		return
	}

	deregistered, err := h.services.SecureVaultService.Deregister(r.Context(), userID)
	if err != nil {
		writeError(w, r, "*Handler.deregister", err)
		return
	}

	logger.FromRequest(r).Info().Str("user_id", deregistered).Msg("user deregistered")
	writeJSON(w, r, http.StatusOK, models.DeregisterResponse{UserID: deregistered})
}

func (h *Handler) reset(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := requestIdentity(w, r, "*Handler.reset", false)
	if !ok {
		return
	}

	if err := h.services.SecureVaultService.Reset(r.Context(), userID); err != nil {
		writeError(w, r, "*Handler.reset", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
