package review

import (
	"errors"
	"time"
)

var (
	ErrNotFound      = errors.New("review not found")
	ErrAlreadyExists = errors.New("review already exists")
)

// Review is a public rating and write-up for a catalog game. A user writes
// at most one review per game.
type Review struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	GameID    string    `json:"game_id"`
	Rating    int       `json:"rating"`
	Content   *string   `json:"content,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WithAuthor carries the reviewer's public identity for game listings.
type WithAuthor struct {
	Review
	Username string `json:"username"`
}
