package wire

import (
	"lotr-api/internal/adaptor"
	"lotr-api/pkg/middleware"

	"github.com/go-chi/chi/v5"
)

func wireReviews(r chi.Router, handler *adaptor.ReviewHandler, strict *middleware.RateLimiter) {
	r.Route("/api/v1/reviews", func(r chi.Router) {
		// Reads share the general limiter only
		r.Get("/", handler.GetReviews)
		r.Get("/{id}", handler.GetReviewByID)

		// Mutations get the stricter limit
		r.Group(func(r chi.Router) {
			r.Use(strict.Handler)

			r.Post("/", handler.CreateReview)
			r.Patch("/{id}", handler.UpdateReview)
			r.Delete("/{id}", handler.DeleteReview)
		})
	})
}
