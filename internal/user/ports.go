package user

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id string) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	EmailTakenByOther(ctx context.Context, email, userID string) (bool, error)
	UpdateProfile(ctx context.Context, userID string, updates map[string]any) error
}
