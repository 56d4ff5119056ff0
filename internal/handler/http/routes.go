package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/auth/signup", h.signup)
		r.Post("/auth/login", h.login)
		r.Post("/auth/logout", h.logout)
	})

	// routes behind a live session
	router.Group(func(r chi.Router) {
		r.Use(h.sessionGate)

		r.Get("/profile", h.profile)

		r.Group(func(r chi.Router) {
			r.Use(h.roleGate("admin"))
			r.Get("/admin", h.admin)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
