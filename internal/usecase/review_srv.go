package usecase

import (
	"context"
	"strings"

	"lotr-api/internal/data/repository"
	"lotr-api/internal/dto/request"
	"lotr-api/internal/dto/response"
	"lotr-api/pkg/apperr"
	"lotr-api/pkg/utils"

	"go.uber.org/zap"
)

// ReviewService is the only path for persisting and emitting reviews,
// so sanitization and response mapping happen exactly once.
type ReviewService interface {
	CreateReview(ctx context.Context, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	GetReviews(ctx context.Context, req *request.ListReviewsRequest) (*response.PaginatedResponse[response.ReviewResponse], error)
	GetReviewByID(ctx context.Context, id int64) (*response.ReviewResponse, error)
	UpdateReview(ctx context.Context, id int64, req *request.UpdateReviewRequest) (*response.ReviewResponse, error)
	DeleteReview(ctx context.Context, id int64) (bool, error)
}

type reviewService struct {
	repo repository.ReviewRepository
	log  *zap.Logger
}

func NewReviewService(repo repository.ReviewRepository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) CreateReview(ctx context.Context, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	userName := strings.TrimSpace(req.UserName)
	comment := utils.SanitizeInput(req.Comment)

	review, err := s.repo.Create(ctx, req.MovieID, userName, req.Rating, comment)
	if err != nil {
		s.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("movie_id", req.MovieID),
		)
		return nil, apperr.Database("Failed to create review", err)
	}

	s.log.Info("Review created",
		zap.Int64("review_id", review.ID),
		zap.String("movie_id", review.MovieID),
		zap.Int("rating", review.Rating),
	)

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) GetReviews(ctx context.Context, req *request.ListReviewsRequest) (*response.PaginatedResponse[response.ReviewResponse], error) {
	reviews, err := s.repo.Find(ctx, req.MovieID, req.Limit, req.Offset())
	if err != nil {
		s.log.Error("Failed to fetch reviews",
			zap.Error(err),
			zap.String("movie_id", req.MovieID),
			zap.Int("page", req.Page),
			zap.Int("limit", req.Limit),
		)
		return nil, apperr.Database("Failed to fetch reviews", err)
	}

	// total counts all matching rows, not just this page
	total, err := s.repo.Count(ctx, req.MovieID)
	if err != nil {
		s.log.Error("Failed to count reviews", zap.Error(err))
		return nil, apperr.Database("Failed to fetch reviews", err)
	}

	items := make([]response.ReviewResponse, len(reviews))
	for i, review := range reviews {
		items[i] = response.ReviewToResponse(review)
	}

	return response.NewPaginatedResponse(items, req.Page, req.Limit, total), nil
}

func (s *reviewService) GetReviewByID(ctx context.Context, id int64) (*response.ReviewResponse, error) {
	review, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to fetch review",
			zap.Error(err),
			zap.Int64("review_id", id),
		)
		return nil, apperr.Database("Failed to fetch review", err)
	}
	if review == nil {
		return nil, apperr.NotFound("Review not found")
	}

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) UpdateReview(ctx context.Context, id int64, req *request.UpdateReviewRequest) (*response.ReviewResponse, error) {
	if !req.HasUpdates() {
		return nil, apperr.Validation("No fields to update", nil)
	}

	fields := repository.UpdateFields{Rating: req.Rating}
	if req.Comment != nil {
		fields.Comment = utils.SanitizeInput(req.Comment)
		fields.HasComment = true
	}

	review, err := s.repo.UpdatePartial(ctx, id, fields)
	if err != nil {
		s.log.Error("Failed to update review",
			zap.Error(err),
			zap.Int64("review_id", id),
		)
		return nil, apperr.Database("Failed to update review", err)
	}
	if review == nil {
		return nil, apperr.NotFound("Review not found")
	}

	s.log.Info("Review updated", zap.Int64("review_id", id))

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.log.Error("Failed to delete review",
			zap.Error(err),
			zap.Int64("review_id", id),
		)
		return false, apperr.Database("Failed to delete review", err)
	}

	return deleted, nil
}
