package collection

import (
	"errors"
	"time"

	"gamehub/internal/game"
)

// Play statuses a collection entry can be in.
const (
	StatusNotStarted = "NOT_STARTED"
	StatusPlaying    = "PLAYING"
	StatusCompleted  = "COMPLETED"
	StatusAbandoned  = "ABANDONED"
)

// Entry is one game in a user's collection.
type Entry struct {
	UserID        string    `json:"user_id"`
	GameID        string    `json:"game_id"`
	PlayStatus    string    `json:"play_status"`
	Rating        *int      `json:"rating"` // personal rating 1..5
	PersonalNotes *string   `json:"personal_notes"`
	AddedAt       time.Time `json:"added_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// EntryWithGame joins an entry with its catalog record for listing.
type EntryWithGame struct {
	Entry
	Game game.Game `json:"game"`
}

var (
	ErrNotFound      = errors.New("collection entry not found")
	ErrAlreadyExists = errors.New("game already in collection")
	ErrInvalidStatus = errors.New("invalid play status")
)

func ValidStatus(status string) bool {
	switch status {
	case StatusNotStarted, StatusPlaying, StatusCompleted, StatusAbandoned:
		return true
	}
	return false
}
