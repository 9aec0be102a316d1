package entity

import (
	"time"
)

// Review is a user-submitted rating tied to an external movie id.
// MovieID references The One API and is not enforced locally.
type Review struct {
	ID        int64     `db:"id"`
	MovieID   string    `db:"movie_id"`
	UserName  string    `db:"user_name"`
	Rating    int       `db:"rating"` // 1-5
	Comment   *string   `db:"comment"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
