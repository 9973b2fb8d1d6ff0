package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withMetrics)
	router.Use(middleware.Compress(5, "application/json"))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/health", h.health)
		r.Get("/api/version", h.getServerVersion)
		if h.metrics != nil {
			r.Method("GET", "/metrics", h.metrics.Handler())
		}
	})

	// face routes, the account is the subject of the bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		if h.requestTimeout > 0 {
			r.Use(middleware.Timeout(h.requestTimeout))
		}
		r.Use(withGZipRequest)

		r.Post("/api/face/enroll", h.enroll)
		r.Post("/api/face/verify", h.verify)
		r.Get("/api/face/status", h.status)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
