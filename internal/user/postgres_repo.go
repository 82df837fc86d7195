package user

import (
	"context"
	"errors"
	"strconv"
	"strings"
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

func (r *PostgresRepo) Create(ctx context.Context, u *User) error {
	const query = `
	INSERT INTO users (id, username, email, password_hash, display_name, role)
	VALUES (gen_random_uuid(), $1, $2, $3, $4, COALESCE($5, 'USER'))
	RETURNING id, role, join_date, updated_at
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.db.QueryRow(timeoutCtx, query, u.Username, u.Email, u.Password, u.DisplayName, u.Role).
		Scan(&u.ID, &u.Role, &u.JoinDate, &u.UpdatedAt)
}

func (r *PostgresRepo) GetByID(ctx context.Context, id string) (User, error) {
	const query = `
	SELECT id, username, email, password_hash, display_name, role, join_date, updated_at
	FROM users WHERE id = $1 LIMIT 1
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	var u User
	err := r.db.QueryRow(timeoutCtx, query, id).Scan(
		&u.ID, &u.Username, &u.Email, &u.Password, &u.DisplayName, &u.Role, &u.JoinDate, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return u, nil
}

func (r *PostgresRepo) GetByUsername(ctx context.Context, username string) (User, error) {
	const query = `
	SELECT id, username, email, password_hash, display_name, role, join_date, updated_at
	FROM users WHERE username = $1 LIMIT 1
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	var u User
	err := r.db.QueryRow(timeoutCtx, query, username).Scan(
		&u.ID, &u.Username, &u.Email, &u.Password, &u.DisplayName, &u.Role, &u.JoinDate, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return u, nil
}

func (r *PostgresRepo) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1 OR email = $2)`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	var exists bool
	err := r.db.QueryRow(timeoutCtx, query, username, email).Scan(&exists)
	return exists, err
}

func (r *PostgresRepo) EmailTakenByOther(ctx context.Context, email, userID string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1 AND id <> $2)`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	var exists bool
	err := r.db.QueryRow(timeoutCtx, query, email, userID).Scan(&exists)
	return exists, err
}

func (r *PostgresRepo) UpdateProfile(ctx context.Context, userID string, updates map[string]any) error {
	fields := []string{}
	args := []any{}
	argn := 1

	for key, value := range updates {
		switch key {
		case "email", "display_name":
			fields = append(fields, key+" = $"+strconv.Itoa(argn))
			args = append(args, value)
			argn++
		}
	}

	if len(fields) == 0 {
		return nil
	}

	fields = append(fields, "updated_at = now()")
	args = append(args, userID)

	query := "UPDATE users SET " + strings.Join(fields, ", ") + " WHERE id = $" + strconv.Itoa(argn)
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	_, err := r.db.Exec(timeoutCtx, query, args...)
	return err
}
