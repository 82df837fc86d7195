package collection

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

func (r *PostgresRepo) Add(ctx context.Context, e *Entry) error {
	const query = `
	INSERT INTO user_games (user_id, game_id, play_status)
	VALUES ($1, $2, $3)
	RETURNING added_at, updated_at
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.db.QueryRow(timeoutCtx, query, e.UserID, e.GameID, e.PlayStatus).Scan(&e.AddedAt, &e.UpdatedAt)
}

func (r *PostgresRepo) List(ctx context.Context, userID string) ([]EntryWithGame, error) {
	const query = `
	SELECT ug.user_id, ug.game_id, ug.play_status, ug.rating, ug.personal_notes, ug.added_at, ug.updated_at,
	       g.id, g.external_api_id, g.title, g.developer, g.release_date, g.cover_image_url,
	       g.genres, g.platforms, g.summary, g.rating, g.created_at, g.updated_at
	FROM user_games ug
	JOIN games g ON g.id = ug.game_id
	WHERE ug.user_id = $1
	ORDER BY ug.added_at DESC
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []EntryWithGame
	for rows.Next() {
		var e EntryWithGame
		if err := rows.Scan(
			&e.UserID, &e.GameID, &e.PlayStatus, &e.Rating, &e.PersonalNotes, &e.AddedAt, &e.UpdatedAt,
			&e.Game.ID, &e.Game.ExternalAPIID, &e.Game.Title, &e.Game.Developer, &e.Game.ReleaseDate,
			&e.Game.CoverImageURL, &e.Game.Genres, &e.Game.Platforms, &e.Game.Summary, &e.Game.Rating,
			&e.Game.CreatedAt, &e.Game.UpdatedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *PostgresRepo) Get(ctx context.Context, userID, gameID string) (Entry, error) {
	const query = `
	SELECT user_id, game_id, play_status, rating, personal_notes, added_at, updated_at
	FROM user_games
	WHERE user_id = $1 AND game_id = $2
	LIMIT 1
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	var e Entry
	err := r.db.QueryRow(timeoutCtx, query, userID, gameID).Scan(
		&e.UserID, &e.GameID, &e.PlayStatus, &e.Rating, &e.PersonalNotes, &e.AddedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Entry{}, ErrNotFound
		}
		return Entry{}, err
	}
	return e, nil
}

func (r *PostgresRepo) exec(ctx context.Context, query string, args ...any) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) UpdateStatus(ctx context.Context, userID, gameID, status string) error {
	return r.exec(ctx, `UPDATE user_games SET play_status = $3, updated_at = now() WHERE user_id = $1 AND game_id = $2`, userID, gameID, status)
}

func (r *PostgresRepo) UpdateRating(ctx context.Context, userID, gameID string, rating int) error {
	return r.exec(ctx, `UPDATE user_games SET rating = $3, updated_at = now() WHERE user_id = $1 AND game_id = $2`, userID, gameID, rating)
}

func (r *PostgresRepo) UpdateNotes(ctx context.Context, userID, gameID string, notes *string) error {
	return r.exec(ctx, `UPDATE user_games SET personal_notes = $3, updated_at = now() WHERE user_id = $1 AND game_id = $2`, userID, gameID, notes)
}

func (r *PostgresRepo) Remove(ctx context.Context, userID, gameID string) error {
	return r.exec(ctx, `DELETE FROM user_games WHERE user_id = $1 AND game_id = $2`, userID, gameID)
}
