package collection

import (
	"context"

	"gamehub/internal/game"
)

type Repository interface {
	Add(ctx context.Context, e *Entry) error
	List(ctx context.Context, userID string) ([]EntryWithGame, error)
	Get(ctx context.Context, userID, gameID string) (Entry, error)
	UpdateStatus(ctx context.Context, userID, gameID, status string) error
	UpdateRating(ctx context.Context, userID, gameID string, rating int) error
	UpdateNotes(ctx context.Context, userID, gameID string, notes *string) error
	Remove(ctx context.Context, userID, gameID string) error
}

// Catalog resolves an external game id to a locally stored game,
// importing its metadata on first use.
type Catalog interface {
	ImportByExternalID(ctx context.Context, externalID string) (game.Game, error)
}
