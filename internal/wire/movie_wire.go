package wire

import (
	"lotr-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovies(r chi.Router, handler *adaptor.MovieHandler) {
	r.Route("/api/v1/movies", func(r chi.Router) {
		r.Get("/", handler.GetMovies)
		r.Get("/{id}", handler.GetMovieByID)
	})
}
