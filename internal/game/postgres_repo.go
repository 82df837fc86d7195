package game

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *PostgresRepo) Upsert(ctx context.Context, g *Game) error {
	const query = `
	INSERT INTO games (id, external_api_id, title, developer, release_date, cover_image_url, genres, platforms, summary, rating)
	VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, $9)
	ON CONFLICT (external_api_id) DO UPDATE SET
		title = EXCLUDED.title,
		developer = EXCLUDED.developer,
		release_date = EXCLUDED.release_date,
		cover_image_url = EXCLUDED.cover_image_url,
		genres = EXCLUDED.genres,
		platforms = EXCLUDED.platforms,
		summary = EXCLUDED.summary,
		rating = EXCLUDED.rating,
		updated_at = now()
	RETURNING id, created_at, updated_at
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.db.QueryRow(timeoutCtx, query,
		g.ExternalAPIID, g.Title, g.Developer, g.ReleaseDate, g.CoverImageURL,
		g.Genres, g.Platforms, g.Summary, g.Rating,
	).Scan(&g.ID, &g.CreatedAt, &g.UpdatedAt)
}

const selectGame = `
	SELECT id, external_api_id, title, developer, release_date, cover_image_url, genres, platforms, summary, rating, created_at, updated_at
	FROM games
`

func (r *PostgresRepo) scanGame(row pgx.Row) (Game, error) {
	var g Game
	err := row.Scan(
		&g.ID, &g.ExternalAPIID, &g.Title, &g.Developer, &g.ReleaseDate,
		&g.CoverImageURL, &g.Genres, &g.Platforms, &g.Summary, &g.Rating,
		&g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Game{}, ErrNotFound
		}
		return Game{}, err
	}
	return g, nil
}

func (r *PostgresRepo) GetByID(ctx context.Context, id string) (Game, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.scanGame(r.db.QueryRow(timeoutCtx, selectGame+` WHERE id = $1 LIMIT 1`, id))
}

func (r *PostgresRepo) GetByExternalAPIID(ctx context.Context, externalID string) (Game, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.scanGame(r.db.QueryRow(timeoutCtx, selectGame+` WHERE external_api_id = $1 LIMIT 1`, externalID))
}
