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

		r.Get("/api/movie", h.getAllMovies)
		// filter before {id} so chi does not treat "filter" as an ID
		r.Get("/api/movie/filter", h.filterMovies)
		r.Get("/api/movie/{id}", h.getMovie)
		r.Post("/api/movie", h.addMovie)
		r.Put("/api/movie", h.updateMovie)
		r.Delete("/api/movie/{id}", h.deleteMovie)
	})

	return router
}
