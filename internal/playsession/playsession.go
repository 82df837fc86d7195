package playsession

import (
	"errors"
	"time"
)

var (
	ErrNotFound      = errors.New("play session not found")
	ErrAlreadyActive = errors.New("a play session is already active for this game")
	ErrAlreadyEnded  = errors.New("play session already ended")
)

// Session is a timed play record for a game in the user's collection. A
// session with a nil EndedAt is still running.
type Session struct {
	ID              string     `json:"id"`
	UserID          string     `json:"user_id"`
	GameID          string     `json:"game_id"`
	StartedAt       time.Time  `json:"started_at"`
	EndedAt         *time.Time `json:"ended_at,omitempty"`
	DurationMinutes *int       `json:"duration_minutes,omitempty"`
	Notes           *string    `json:"notes,omitempty"`
}
