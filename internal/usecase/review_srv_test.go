package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"lotr-api/internal/data/entity"
	"lotr-api/internal/data/repository"
	"lotr-api/internal/dto/request"
	"lotr-api/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }

// stubReviewRepo satisfies repository.ReviewRepository with canned
// results and records the arguments it was called with.
type stubReviewRepo struct {
	created       *entity.Review
	createErr     error
	gotMovieID    string
	gotUserName   string
	gotRating     int
	gotComment    *string
	found         []*entity.Review
	total         int64
	findErr       error
	byID          *entity.Review
	byIDErr       error
	updated       *entity.Review
	updateErr     error
	gotFields     repository.UpdateFields
	updateCalled  bool
	deleted       bool
	deleteErr     error
	gotLimit      int
	gotOffset     int
	gotFindFilter string
}

func (s *stubReviewRepo) Create(_ context.Context, movieID, userName string, rating int, comment *string) (*entity.Review, error) {
	s.gotMovieID = movieID
	s.gotUserName = userName
	s.gotRating = rating
	s.gotComment = comment
	return s.created, s.createErr
}

func (s *stubReviewRepo) Find(_ context.Context, movieID string, limit, offset int) ([]*entity.Review, error) {
	s.gotFindFilter = movieID
	s.gotLimit = limit
	s.gotOffset = offset
	return s.found, s.findErr
}

func (s *stubReviewRepo) Count(_ context.Context, movieID string) (int64, error) {
	return s.total, s.findErr
}

func (s *stubReviewRepo) FindByID(_ context.Context, id int64) (*entity.Review, error) {
	return s.byID, s.byIDErr
}

func (s *stubReviewRepo) UpdatePartial(_ context.Context, id int64, fields repository.UpdateFields) (*entity.Review, error) {
	s.updateCalled = true
	s.gotFields = fields
	return s.updated, s.updateErr
}

func (s *stubReviewRepo) Delete(_ context.Context, id int64) (bool, error) {
	return s.deleted, s.deleteErr
}

func newService(repo *stubReviewRepo) ReviewService {
	return NewReviewService(repo, zap.NewNop())
}

func TestCreateReviewSanitizesComment(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := &stubReviewRepo{
		created: &entity.Review{
			ID:        1,
			MovieID:   "5cd95395de30eff6ebccde56",
			UserName:  "Sam",
			Rating:    5,
			Comment:   strPtr("Great film"),
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	resp, err := newService(repo).CreateReview(context.Background(), &request.CreateReviewRequest{
		MovieID:  "5cd95395de30eff6ebccde56",
		UserName: "  Sam  ",
		Rating:   5,
		Comment:  strPtr("<b>Great</b> film"),
	})
	require.NoError(t, err)

	// markup stripped before the store sees it
	require.NotNil(t, repo.gotComment)
	assert.Equal(t, "Great film", *repo.gotComment)
	assert.Equal(t, "Sam", repo.gotUserName)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Great film", *resp.Comment)
	assert.Equal(t, resp.CreatedAt, resp.UpdatedAt)
	assert.Equal(t, "2024-03-01T12:00:00Z", resp.CreatedAt)
}

func TestCreateReviewStoreFailure(t *testing.T) {
	repo := &stubReviewRepo{createErr: errors.New("connection refused")}

	_, err := newService(repo).CreateReview(context.Background(), &request.CreateReviewRequest{
		MovieID: "x", UserName: "Sam", Rating: 3,
	})
	require.Error(t, err)
	assert.Equal(t, apperr.CodeDatabase, apperr.From(err).Code)
}

func TestGetReviewsPastLastPage(t *testing.T) {
	// 5 matching reviews, page 2 with limit 10 is past the end
	repo := &stubReviewRepo{found: nil, total: 5}

	resp, err := newService(repo).GetReviews(context.Background(), &request.ListReviewsRequest{
		PaginatedRequest: request.PaginatedRequest{Page: 2, Limit: 10},
		MovieID:          "X",
	})
	require.NoError(t, err)

	assert.Equal(t, "X", repo.gotFindFilter)
	assert.Equal(t, 10, repo.gotOffset)
	assert.NotNil(t, resp.Data)
	assert.Empty(t, resp.Data)
	assert.Equal(t, int64(5), resp.Pagination.Total)
	assert.Equal(t, 1, resp.Pagination.Pages)
}

func TestGetReviewsPagesRoundUp(t *testing.T) {
	repo := &stubReviewRepo{
		found: []*entity.Review{{ID: 1, UserName: "Sam", Rating: 4}},
		total: 11,
	}

	resp, err := newService(repo).GetReviews(context.Background(), &request.ListReviewsRequest{
		PaginatedRequest: request.PaginatedRequest{Page: 1, Limit: 10},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Pagination.Pages)
}

func TestGetReviewByIDNotFound(t *testing.T) {
	repo := &stubReviewRepo{byID: nil}

	_, err := newService(repo).GetReviewByID(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestUpdateReviewRequiresAField(t *testing.T) {
	repo := &stubReviewRepo{}

	_, err := newService(repo).UpdateReview(context.Background(), 1, &request.UpdateReviewRequest{})
	require.Error(t, err)

	appErr := apperr.From(err)
	assert.Equal(t, apperr.CodeValidation, appErr.Code)
	assert.False(t, apperr.IsNotFound(err))
	assert.False(t, repo.updateCalled, "store must not be touched")
}

func TestUpdateReviewRatingOnly(t *testing.T) {
	now := time.Now()
	repo := &stubReviewRepo{
		updated: &entity.Review{
			ID: 1, Rating: 2, Comment: strPtr("unchanged"),
			CreatedAt: now.Add(-time.Hour), UpdatedAt: now,
		},
	}

	resp, err := newService(repo).UpdateReview(context.Background(), 1, &request.UpdateReviewRequest{
		Rating: intPtr(2),
	})
	require.NoError(t, err)

	assert.Equal(t, 2, *repo.gotFields.Rating)
	assert.False(t, repo.gotFields.HasComment, "absent comment must stay untouched")
	assert.Equal(t, "unchanged", *resp.Comment)
	assert.Greater(t, resp.UpdatedAt, resp.CreatedAt)
}

func TestUpdateReviewSanitizesComment(t *testing.T) {
	repo := &stubReviewRepo{updated: &entity.Review{ID: 1, Rating: 3}}

	_, err := newService(repo).UpdateReview(context.Background(), 1, &request.UpdateReviewRequest{
		Comment: strPtr(`<img src=x onerror=alert(1)>still here`),
	})
	require.NoError(t, err)

	require.True(t, repo.gotFields.HasComment)
	require.NotNil(t, repo.gotFields.Comment)
	assert.Equal(t, "still here", *repo.gotFields.Comment)
}

func TestUpdateReviewNotFound(t *testing.T) {
	repo := &stubReviewRepo{updated: nil}

	_, err := newService(repo).UpdateReview(context.Background(), 99, &request.UpdateReviewRequest{
		Rating: intPtr(4),
	})
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestDeleteReviewMissingRowIsNotAnError(t *testing.T) {
	repo := &stubReviewRepo{deleted: false}

	deleted, err := newService(repo).DeleteReview(context.Background(), 404)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestDeleteReviewStoreFailure(t *testing.T) {
	repo := &stubReviewRepo{deleteErr: errors.New("boom")}

	_, err := newService(repo).DeleteReview(context.Background(), 1)
	require.Error(t, err)
	assert.Equal(t, apperr.CodeDatabase, apperr.From(err).Code)
}
