package handler

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/avstanoeva/movienotes/internal/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.TraceID(h.logger))
	router.Use(middleware.Logging())

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
	})

	router.Group(func(r chi.Router) {
		r.Use(middleware.Auth(h.tokens))

		r.Post("/api/user/change-password", h.changePassword)
		r.Put("/api/user/update-details", h.updateUserDetails)
		r.Delete("/api/user/delete/{id}", h.deleteUser)

		r.Get("/api/note", h.getAllNotes)
		r.Get("/api/note/{id}", h.getNote)
		r.Post("/api/note", h.addNote)
		r.Put("/api/note", h.updateNote)
		r.Delete("/api/note/{id}", h.deleteNote)
	})

	return router
}
