package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)

		if h.settings.BlobDir != "" {
			r.Handle("/blobs/*", http.StripPrefix("/blobs/", http.FileServer(http.Dir(h.settings.BlobDir))))
		}
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		// the change stream is long-lived: no timeout and no compression
		r.Get("/api/changes", h.streamChanges)

		r.Group(func(r chi.Router) {
			r.Use(withGZip)
			if h.settings.RequestTimeout > 0 {
				r.Use(middleware.Timeout(h.settings.RequestTimeout))
			}

			r.Route("/api/profile", func(r chi.Router) {
				r.Get("/", h.getProfile)
				r.Put("/", h.updateProfile)
			})
			r.Get("/api/profiles", h.listProfiles)
			r.Put("/api/profiles/{userID}/role", h.updateRole)

			r.Route("/api/policies", func(r chi.Router) {
				r.Get("/", h.listPolicies)
				r.Post("/", h.createPolicy)
				r.Get("/counts", h.countPolicies)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.getPolicy)
					r.Put("/", h.updatePolicy)
					r.Delete("/", h.deletePolicy)

					r.Get("/shares", h.listGrants)
					r.Post("/shares", h.grantAccess)
					r.Delete("/shares/{email}", h.revokeAccess)
				})
			})

			r.Route("/api/notifications", func(r chi.Router) {
				r.Get("/", h.listNotifications)
				r.Get("/unread", h.unreadNotifications)
				r.Post("/{id}/read", h.markNotificationRead)
			})

			r.Put("/api/blobs", h.uploadBlob)
		})
	})

	router.MethodNotAllowed(hideMethodNotAllowed)

	return router
}
