package handler

import (
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/handler/http"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
)

// Handlers holds one handler per transport.
type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transport handlers. Bodies are integrity-checked
// when cfg carries a hash key.
func NewHandlers(services *service.Services, cfg config.ServerApp, logger *logger.Logger) (*Handlers, error) {
	if services == nil {
		return nil, ErrNoServices
	}

	logger.Debug().Bool("integrity_check", cfg.HashKey != "").Msg("creating handlers")
	return &Handlers{
		HTTP: http.NewHandler(services, cfg.HashKey, logger),
	}, nil
}
