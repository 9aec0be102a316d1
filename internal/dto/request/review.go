package request

type CreateReviewRequest struct {
	MovieID  string  `json:"movieId" validate:"required"`
	UserName string  `json:"userName" validate:"required,min=2,max=100"`
	Rating   int     `json:"rating" validate:"required,min=1,max=5"`
	Comment  *string `json:"comment,omitempty" validate:"omitempty,max=1000"`
}

type UpdateReviewRequest struct {
	Rating  *int    `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Comment *string `json:"comment,omitempty" validate:"omitempty,max=1000"`
}

// HasUpdates reports whether at least one field was supplied.
func (r UpdateReviewRequest) HasUpdates() bool {
	return r.Rating != nil || r.Comment != nil
}
