package review

import (
	"context"
	"time"

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

func (r *PostgresRepo) Create(ctx context.Context, rv *Review) error {
	const query = `
	INSERT INTO reviews (user_id, game_id, rating, content)
	VALUES ($1, $2, $3, $4)
	RETURNING id, created_at, updated_at
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.db.QueryRow(timeoutCtx, query, rv.UserID, rv.GameID, rv.Rating, rv.Content).
		Scan(&rv.ID, &rv.CreatedAt, &rv.UpdatedAt)
}

func (r *PostgresRepo) ExistsByUserAndGame(ctx context.Context, userID, gameID string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM reviews WHERE user_id = $1 AND game_id = $2)`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	var exists bool
	err := r.db.QueryRow(timeoutCtx, query, userID, gameID).Scan(&exists)
	return exists, err
}

func (r *PostgresRepo) ListByGame(ctx context.Context, gameID string) ([]WithAuthor, error) {
	const query = `
	SELECT rv.id, rv.user_id, rv.game_id, rv.rating, rv.content, rv.created_at, rv.updated_at, u.username
	FROM reviews rv
	JOIN users u ON u.id = rv.user_id
	WHERE rv.game_id = $1
	ORDER BY rv.created_at DESC
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, gameID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []WithAuthor
	for rows.Next() {
		var rv WithAuthor
		if err := rows.Scan(&rv.ID, &rv.UserID, &rv.GameID, &rv.Rating, &rv.Content,
			&rv.CreatedAt, &rv.UpdatedAt, &rv.Username); err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}

func (r *PostgresRepo) Delete(ctx context.Context, userID, reviewID string) error {
	const query = `DELETE FROM reviews WHERE id = $1 AND user_id = $2`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	tag, err := r.db.Exec(timeoutCtx, query, reviewID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
