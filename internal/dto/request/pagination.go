package request

import (
	"lotr-api/pkg/utils"
)

type PaginatedRequest struct {
	Page  int `json:"page" validate:"min=1"`
	Limit int `json:"limit" validate:"min=1,max=100"`
}

func (p PaginatedRequest) Offset() int {
	return utils.CalculateOffset(p.Page, p.Limit)
}

// ListReviewsRequest filters the review listing by movie id when set.
type ListReviewsRequest struct {
	PaginatedRequest
	MovieID string `json:"movieId,omitempty"`
}
