package response

import (
	"lotr-api/pkg/utils"
)

// PaginatedResponse is the list envelope, success flag included so it
// can be written as the whole response body.
type PaginatedResponse[T any] struct {
	Success    bool           `json:"success"`
	Data       []T            `json:"data"`
	Pagination PaginationMeta `json:"pagination"`
}

type PaginationMeta struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int   `json:"pages"`
}

func NewPaginatedResponse[T any](data []T, page, limit int, total int64) *PaginatedResponse[T] {
	if data == nil {
		data = []T{} // empty page serializes as [], not null
	}

	return &PaginatedResponse[T]{
		Success: true,
		Data:    data,
		Pagination: PaginationMeta{
			Total: total,
			Page:  page,
			Limit: limit,
			Pages: utils.CalculateTotalPages(total, limit),
		},
	}
}
