package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-pass-vault/models"
)

func (h *Handler) listProfiles(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := requestIdentity(w, r, "*Handler.listProfiles", false)
	if !ok {
		return
	}

	profiles, err := h.services.PlatformService.ListProfiles(r.Context(), userID)
	if err != nil {
		writeError(w, r, "*Handler.listProfiles", err)
		return
	}
	if profiles == nil {
		profiles = []models.Profile{}
	}

	writeJSON(w, r, http.StatusOK, profiles)
}

func (h *Handler) createProfile(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := requestIdentity(w, r, "*Handler.createProfile", false)
	if !ok {
		return
	}

	profile, err := h.services.PlatformService.CreateProfile(r.Context(), userID)
	if err != nil {
		writeError(w, r, "*Handler.createProfile", err)
		return
	}

	writeJSON(w, r, http.StatusCreated, profile)
}

func (h *Handler) issueOwnershipProof(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := requestIdentity(w, r, "*Handler.issueOwnershipProof", false)
	if !ok {
		return
	}

	proof, err := h.services.PlatformService.IssueOwnershipProof(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "*Handler.issueOwnershipProof", err)
		return
	}

	writeJSON(w, r, http.StatusOK, models.OwnershipProofResponse{Token: proof})
}

func (h *Handler) getEntitlements(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := requestIdentity(w, r, "*Handler.getEntitlements", false)
	if !ok {
		return
	}

	entitlements, err := h.services.PlatformService.GetEntitlements(r.Context(), userID)
	if err != nil {
		writeError(w, r, "*Handler.getEntitlements", err)
		return
	}

	writeJSON(w, r, http.StatusOK, entitlements)
}
