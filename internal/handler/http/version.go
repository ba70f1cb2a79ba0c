package http

import (
	"net/http"
)

// getServerInfo answers GET /api/version without authentication.
func (h *Handler) getServerInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, h.services.AppInfoService.GetServerInfo(r.Context()))
}
