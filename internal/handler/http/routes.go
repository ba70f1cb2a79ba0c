package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	router.Get("/api/version", h.getServerInfo)

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/vault", func(r chi.Router) {
			r.Get("/registration", h.isRegistered)
			r.Post("/register", h.register)
			r.Post("/deregister", h.deregister)
			r.Post("/reset", h.reset)

			r.Get("/vaults", h.listVaults)
			r.Get("/vaults/metadata", h.listVaultsMetadata)
			r.Delete("/vaults/{id}", h.deleteVault)

			// routes carrying a body
			r.Group(func(r chi.Router) {
				r.Use(h.bodyHashing)

				r.Post("/vaults", h.createVault)
				r.Put("/vaults/{id}", h.updateVault)
				r.Put("/password", h.changePassword)
			})
		})

		r.Get("/api/profiles", h.listProfiles)
		r.Post("/api/profiles", h.createProfile)
		r.Post("/api/profiles/{id}/ownership-proof", h.issueOwnershipProof)
		r.Get("/api/entitlements", h.getEntitlements)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
