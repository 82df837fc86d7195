package friendship

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

func (r *PostgresRepo) Create(ctx context.Context, f *Friendship) error {
	const query = `
	INSERT INTO friendships (requester_id, addressee_id, status)
	VALUES ($1, $2, $3)
	RETURNING id, created_at
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.db.QueryRow(timeoutCtx, query, f.RequesterID, f.AddresseeID, f.Status).
		Scan(&f.ID, &f.CreatedAt)
}

func (r *PostgresRepo) GetBetween(ctx context.Context, userA, userB string) (Friendship, error) {
	const query = `
	SELECT id, requester_id, addressee_id, status, created_at, accepted_at
	FROM friendships
	WHERE (requester_id = $1 AND addressee_id = $2)
	   OR (requester_id = $2 AND addressee_id = $1)
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.scanOne(r.db.QueryRow(timeoutCtx, query, userA, userB))
}

func (r *PostgresRepo) GetByID(ctx context.Context, id string) (Friendship, error) {
	const query = `
	SELECT id, requester_id, addressee_id, status, created_at, accepted_at
	FROM friendships
	WHERE id = $1
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.scanOne(r.db.QueryRow(timeoutCtx, query, id))
}

func (r *PostgresRepo) Accept(ctx context.Context, id string) (Friendship, error) {
	const query = `
	UPDATE friendships
	SET status = 'ACCEPTED', accepted_at = now()
	WHERE id = $1
	RETURNING id, requester_id, addressee_id, status, created_at, accepted_at
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.scanOne(r.db.QueryRow(timeoutCtx, query, id))
}

func (r *PostgresRepo) ListFriends(ctx context.Context, userID string) ([]Friend, error) {
	const query = `
	SELECT u.id, u.username, u.display_name, f.accepted_at
	FROM friendships f
	JOIN users u ON u.id = CASE WHEN f.requester_id = $1 THEN f.addressee_id ELSE f.requester_id END
	WHERE (f.requester_id = $1 OR f.addressee_id = $1) AND f.status = 'ACCEPTED'
	ORDER BY f.accepted_at DESC
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var friends []Friend
	for rows.Next() {
		var f Friend
		if err := rows.Scan(&f.UserID, &f.Username, &f.DisplayName, &f.Since); err != nil {
			return nil, err
		}
		friends = append(friends, f)
	}
	return friends, rows.Err()
}

func (r *PostgresRepo) ListPending(ctx context.Context, userID string) ([]Request, error) {
	const query = `
	SELECT f.id, f.requester_id, f.addressee_id, f.status, f.created_at, f.accepted_at, u.username
	FROM friendships f
	JOIN users u ON u.id = f.requester_id
	WHERE f.addressee_id = $1 AND f.status = 'PENDING'
	ORDER BY f.created_at DESC
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []Request
	for rows.Next() {
		var req Request
		if err := rows.Scan(&req.ID, &req.RequesterID, &req.AddresseeID, &req.Status,
			&req.CreatedAt, &req.AcceptedAt, &req.RequesterUsername); err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

func (r *PostgresRepo) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM friendships WHERE id = $1`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	tag, err := r.db.Exec(timeoutCtx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) scanOne(row pgx.Row) (Friendship, error) {
	var f Friendship
	err := row.Scan(&f.ID, &f.RequesterID, &f.AddresseeID, &f.Status, &f.CreatedAt, &f.AcceptedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Friendship{}, ErrNotFound
	}
	if err != nil {
		return Friendship{}, err
	}
	return f, nil
}
