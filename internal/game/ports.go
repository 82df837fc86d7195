package game

import (
	"context"

	"gamehub/internal/platform/igdb"
)

type Repository interface {
	Upsert(ctx context.Context, g *Game) error
	GetByID(ctx context.Context, id string) (Game, error)
	GetByExternalAPIID(ctx context.Context, externalID string) (Game, error)
}

// MetadataClient is the IGDB-facing surface the service depends on.
type MetadataClient interface {
	Search(ctx context.Context, term string, limit int) ([]igdb.Game, error)
	GetByID(ctx context.Context, id int64) (igdb.Game, error)
	Popular(ctx context.Context, limit int) ([]igdb.Game, error)
}
