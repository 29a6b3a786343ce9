package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
		r.Get("/api/version", h.getServerVersion)
	})

	// routes requiring a valid session token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/credential", h.saveCredential)
		r.Get("/api/credential", h.getUserCredentials)
		r.Post("/api/credential/verify", h.verifyCredential)
		r.Post("/api/kcv", h.saveKCV)

		r.Post("/api/records", h.saveRecord)
		r.Get("/api/records", h.getRecords)
		r.Get("/api/records/{id}", h.getRecord)
		r.Put("/api/records", h.updateRecord)
		r.Delete("/api/records/{id}", h.deleteRecord)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
