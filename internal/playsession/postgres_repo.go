package playsession

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

const selectSession = `
SELECT id, user_id, game_id, started_at, ended_at, duration_minutes, notes
FROM play_sessions
`

func (r *PostgresRepo) Create(ctx context.Context, s *Session) error {
	const query = `
	INSERT INTO play_sessions (user_id, game_id, started_at)
	VALUES ($1, $2, $3)
	RETURNING id
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.db.QueryRow(timeoutCtx, query, s.UserID, s.GameID, s.StartedAt).Scan(&s.ID)
}

func (r *PostgresRepo) GetByID(ctx context.Context, id string) (Session, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.scanOne(r.db.QueryRow(timeoutCtx, selectSession+`WHERE id = $1`, id))
}

func (r *PostgresRepo) ActiveByUserAndGame(ctx context.Context, userID, gameID string) (Session, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.scanOne(r.db.QueryRow(timeoutCtx,
		selectSession+`WHERE user_id = $1 AND game_id = $2 AND ended_at IS NULL`, userID, gameID))
}

func (r *PostgresRepo) End(ctx context.Context, id string, durationMinutes int, notes *string) (Session, error) {
	const query = `
	UPDATE play_sessions
	SET ended_at = now(), duration_minutes = $2, notes = $3
	WHERE id = $1
	RETURNING id, user_id, game_id, started_at, ended_at, duration_minutes, notes
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.scanOne(r.db.QueryRow(timeoutCtx, query, id, durationMinutes, notes))
}

func (r *PostgresRepo) ListByUser(ctx context.Context, userID string) ([]Session, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx,
		selectSession+`WHERE user_id = $1 ORDER BY started_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var s Session
		if err := rows.Scan(&s.ID, &s.UserID, &s.GameID, &s.StartedAt, &s.EndedAt,
			&s.DurationMinutes, &s.Notes); err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

func (r *PostgresRepo) scanOne(row pgx.Row) (Session, error) {
	var s Session
	err := row.Scan(&s.ID, &s.UserID, &s.GameID, &s.StartedAt, &s.EndedAt, &s.DurationMinutes, &s.Notes)
	if errors.Is(err, pgx.ErrNoRows) {
		return Session{}, ErrNotFound
	}
	if err != nil {
		return Session{}, err
	}
	return s, nil
}
