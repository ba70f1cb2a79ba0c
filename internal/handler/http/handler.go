package http

import (
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
)

// Handler serves the vault service REST API.
type Handler struct {
	services *service.Services

	// hasher checks the HashSHA256 header; nil disables the check.
	hasher *utils.Hasher

	logger *logger.Logger
}

func NewHandler(services *service.Services, hashKey string, logger *logger.Logger) *Handler {
	hasher := utils.NewHasher(hashKey)

	logger.Info().Bool("integrity_check", hasher != nil).Msg("http handler created")
	return &Handler{
		services: services,
		hasher:   hasher,
		logger:   logger,
	}
}

// writeJSON writes a JSON response and logs when it could not be sent.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	if err := utils.WriteJSON(w, status, data); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "writeJSON").Int("status", status).Send()
	}
}
