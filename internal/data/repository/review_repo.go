package repository

import (
	"context"
	"fmt"
	"strings"

	"lotr-api/internal/data/entity"
	"lotr-api/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// UpdateFields carries the partial-update payload. HasComment tells an
// absent comment apart from one being cleared to NULL.
type UpdateFields struct {
	Rating     *int
	Comment    *string
	HasComment bool
}

func (f UpdateFields) Empty() bool {
	return f.Rating == nil && !f.HasComment
}

type ReviewRepository interface {
	Create(ctx context.Context, movieID, userName string, rating int, comment *string) (*entity.Review, error)
	Find(ctx context.Context, movieID string, limit, offset int) ([]*entity.Review, error)
	Count(ctx context.Context, movieID string) (int64, error)
	FindByID(ctx context.Context, id int64) (*entity.Review, error)
	UpdatePartial(ctx context.Context, id int64, fields UpdateFields) (*entity.Review, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

const reviewColumns = "id, movie_id, user_name, rating, comment, created_at, updated_at"

func scanReview(row pgx.Row) (*entity.Review, error) {
	var review entity.Review
	err := row.Scan(
		&review.ID,
		&review.MovieID,
		&review.UserName,
		&review.Rating,
		&review.Comment,
		&review.CreatedAt,
		&review.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// Create inserts a review. The store assigns id and both timestamps.
func (r *reviewRepository) Create(ctx context.Context, movieID, userName string, rating int, comment *string) (*entity.Review, error) {
	query := `
		INSERT INTO reviews (movie_id, user_name, rating, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + reviewColumns

	review, err := scanReview(r.db.QueryRow(ctx, query, movieID, userName, rating, comment))
	if err != nil {
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("movie_id", movieID),
		)
		return nil, fmt.Errorf("create review for movie %s: %w", movieID, err)
	}

	return review, nil
}

// Find returns one page of reviews, newest first. Empty movieID matches
// all rows.
func (r *reviewRepository) Find(ctx context.Context, movieID string, limit, offset int) ([]*entity.Review, error) {
	query := "SELECT " + reviewColumns + " FROM reviews"
	args := []any{}

	if movieID != "" {
		query += " WHERE movie_id = $1"
		args = append(args, movieID)
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find reviews",
			zap.Error(err),
			zap.String("movie_id", movieID),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find reviews: %w", err)
	}
	defer rows.Close()

	var reviews []*entity.Review
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, review)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate review rows: %w", err)
	}

	return reviews, nil
}

// Count returns the number of rows matching the filter, ignoring
// pagination.
func (r *reviewRepository) Count(ctx context.Context, movieID string) (int64, error) {
	query := "SELECT COUNT(*) FROM reviews"
	args := []any{}

	if movieID != "" {
		query += " WHERE movie_id = $1"
		args = append(args, movieID)
	}

	var count int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		r.log.Error("Failed to count reviews",
			zap.Error(err),
			zap.String("movie_id", movieID),
		)
		return 0, fmt.Errorf("count reviews: %w", err)
	}

	return count, nil
}

// FindByID returns nil, nil when no row matches.
func (r *reviewRepository) FindByID(ctx context.Context, id int64) (*entity.Review, error) {
	query := "SELECT " + reviewColumns + " FROM reviews WHERE id = $1"

	review, err := scanReview(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by ID",
			zap.Error(err),
			zap.Int64("review_id", id),
		)
		return nil, fmt.Errorf("find review by ID %d: %w", id, err)
	}

	return review, nil
}

// buildUpdateQuery assembles the SET clause from the supplied fields.
// updated_at always refreshes. The row id is the last argument.
func buildUpdateQuery(id int64, fields UpdateFields) (string, []any) {
	var updates []string
	var args []any

	if fields.Rating != nil {
		args = append(args, *fields.Rating)
		updates = append(updates, fmt.Sprintf("rating = $%d", len(args)))
	}
	if fields.HasComment {
		args = append(args, fields.Comment)
		updates = append(updates, fmt.Sprintf("comment = $%d", len(args)))
	}

	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE reviews SET %s, updated_at = NOW() WHERE id = $%d RETURNING %s",
		strings.Join(updates, ", "), len(args), reviewColumns,
	)

	return query, args
}

// UpdatePartial updates only the supplied fields and refreshes
// updated_at. Returns nil, nil when no row matches. At least one field
// must be present, the service checks that before calling.
func (r *reviewRepository) UpdatePartial(ctx context.Context, id int64, fields UpdateFields) (*entity.Review, error) {
	if fields.Empty() {
		return nil, fmt.Errorf("update review %d: no fields to update", id)
	}

	query, args := buildUpdateQuery(id, fields)

	review, err := scanReview(r.db.QueryRow(ctx, query, args...))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to update review",
			zap.Error(err),
			zap.Int64("review_id", id),
		)
		return nil, fmt.Errorf("update review %d: %w", id, err)
	}

	return review, nil
}

// Delete reports whether a row was removed. A missing row is not an
// error.
func (r *reviewRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query := "DELETE FROM reviews WHERE id = $1"

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete review",
			zap.Error(err),
			zap.Int64("review_id", id),
		)
		return false, fmt.Errorf("delete review %d: %w", id, err)
	}

	deleted := result.RowsAffected() > 0
	if deleted {
		r.log.Info("Review deleted", zap.Int64("review_id", id))
	}

	return deleted, nil
}
