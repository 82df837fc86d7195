package achievement

import "context"

type Repository interface {
	ListByGame(ctx context.Context, gameID string) ([]Achievement, error)
	GetByID(ctx context.Context, id string) (Achievement, error)
	Complete(ctx context.Context, userID, achievementID string) (Earned, error)
	ListEarned(ctx context.Context, userID, gameID string) ([]Earned, error)
}
