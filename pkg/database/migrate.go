package database

import (
	"context"
	"fmt"
)

// reviews holds user-submitted reviews keyed by an external movie id.
// movie_id has no foreign key, movies live in The One API only.
const reviewsSchema = `
CREATE TABLE IF NOT EXISTS reviews (
	id         SERIAL PRIMARY KEY,
	movie_id   TEXT NOT NULL,
	user_name  TEXT NOT NULL,
	rating     INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
	comment    TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_reviews_movie_id ON reviews (movie_id);
CREATE INDEX IF NOT EXISTS idx_reviews_created_at ON reviews (created_at DESC);
`

// Migrate applies the reviews schema. Safe to run repeatedly.
func Migrate(ctx context.Context, db PgxIface) error {
	if _, err := db.Exec(ctx, reviewsSchema); err != nil {
		return fmt.Errorf("apply reviews schema: %w", err)
	}
	return nil
}
