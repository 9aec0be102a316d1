package response

import (
	"time"

	"lotr-api/internal/data/entity"
)

// ReviewResponse is the external shape of a review. Timestamps are
// RFC3339 strings in UTC; comment is null when absent.
type ReviewResponse struct {
	ID        int64   `json:"id"`
	MovieID   string  `json:"movieId"`
	UserName  string  `json:"userName"`
	Rating    int     `json:"rating"`
	Comment   *string `json:"comment"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

// Helper converter
func ReviewToResponse(review *entity.Review) ReviewResponse {
	return ReviewResponse{
		ID:        review.ID,
		MovieID:   review.MovieID,
		UserName:  review.UserName,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: review.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
