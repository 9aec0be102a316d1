package wire

import (
	"lotr-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCharacters(r chi.Router, handler *adaptor.CharacterHandler) {
	r.Route("/api/v1/characters", func(r chi.Router) {
		r.Get("/", handler.GetCharacters)
		r.Get("/{id}", handler.GetCharacterByID)
	})
}
