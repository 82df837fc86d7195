package achievement

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

func (r *PostgresRepo) ListByGame(ctx context.Context, gameID string) ([]Achievement, error) {
	const query = `
	SELECT id, game_id, name, description, rarity, points, created_at
	FROM achievements
	WHERE game_id = $1
	ORDER BY points ASC, name ASC
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, gameID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var achievements []Achievement
	for rows.Next() {
		var a Achievement
		if err := rows.Scan(&a.ID, &a.GameID, &a.Name, &a.Description, &a.Rarity, &a.Points, &a.CreatedAt); err != nil {
			return nil, err
		}
		achievements = append(achievements, a)
	}
	return achievements, rows.Err()
}

func (r *PostgresRepo) GetByID(ctx context.Context, id string) (Achievement, error) {
	const query = `
	SELECT id, game_id, name, description, rarity, points, created_at
	FROM achievements
	WHERE id = $1
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	var a Achievement
	err := r.db.QueryRow(timeoutCtx, query, id).
		Scan(&a.ID, &a.GameID, &a.Name, &a.Description, &a.Rarity, &a.Points, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Achievement{}, ErrNotFound
	}
	if err != nil {
		return Achievement{}, err
	}
	return a, nil
}

func (r *PostgresRepo) Complete(ctx context.Context, userID, achievementID string) (Earned, error) {
	const query = `
	INSERT INTO user_achievements (user_id, achievement_id)
	VALUES ($1, $2)
	ON CONFLICT (user_id, achievement_id) DO NOTHING
	RETURNING earned_at
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	var earnedAt time.Time
	err := r.db.QueryRow(timeoutCtx, query, userID, achievementID).Scan(&earnedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Earned{}, ErrAlreadyCompleted
	}
	if err != nil {
		return Earned{}, err
	}

	a, err := r.GetByID(ctx, achievementID)
	if err != nil {
		return Earned{}, err
	}
	return Earned{Achievement: a, EarnedAt: earnedAt}, nil
}

func (r *PostgresRepo) ListEarned(ctx context.Context, userID, gameID string) ([]Earned, error) {
	const query = `
	SELECT a.id, a.game_id, a.name, a.description, a.rarity, a.points, a.created_at, ua.earned_at
	FROM user_achievements ua
	JOIN achievements a ON a.id = ua.achievement_id
	WHERE ua.user_id = $1 AND a.game_id = $2
	ORDER BY ua.earned_at DESC
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, userID, gameID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var earned []Earned
	for rows.Next() {
		var e Earned
		if err := rows.Scan(&e.ID, &e.GameID, &e.Name, &e.Description, &e.Rarity, &e.Points, &e.CreatedAt, &e.EarnedAt); err != nil {
			return nil, err
		}
		earned = append(earned, e)
	}
	return earned, rows.Err()
}
