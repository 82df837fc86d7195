package achievement

import (
	"errors"
	"time"
)

const (
	RarityCommon    = "COMMON"
	RarityRare      = "RARE"
	RarityEpic      = "EPIC"
	RarityLegendary = "LEGENDARY"
)

var (
	ErrNotFound         = errors.New("achievement not found")
	ErrAlreadyCompleted = errors.New("achievement already completed")
)

// Achievement is a definition attached to a catalog game. Completions are
// tracked per user in Earned.
type Achievement struct {
	ID          string    `json:"id"`
	GameID      string    `json:"game_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Rarity      string    `json:"rarity"`
	Points      int       `json:"points"`
	CreatedAt   time.Time `json:"created_at"`
}

// Earned is an achievement a user has completed.
type Earned struct {
	Achievement
	EarnedAt time.Time `json:"earned_at"`
}

func ValidRarity(r string) bool {
	switch r {
	case RarityCommon, RarityRare, RarityEpic, RarityLegendary:
		return true
	}
	return false
}
