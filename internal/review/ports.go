package review

import "context"

type Repository interface {
	Create(ctx context.Context, rv *Review) error
	ExistsByUserAndGame(ctx context.Context, userID, gameID string) (bool, error)
	ListByGame(ctx context.Context, gameID string) ([]WithAuthor, error)
	Delete(ctx context.Context, userID, reviewID string) error
}
