package usecase

import (
	"lotr-api/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Review ReviewService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		Review: NewReviewService(repo.Review, log),
	}
}
