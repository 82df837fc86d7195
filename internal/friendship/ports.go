package friendship

import "context"

type Repository interface {
	Create(ctx context.Context, f *Friendship) error
	GetBetween(ctx context.Context, userA, userB string) (Friendship, error)
	GetByID(ctx context.Context, id string) (Friendship, error)
	Accept(ctx context.Context, id string) (Friendship, error)
	ListFriends(ctx context.Context, userID string) ([]Friend, error)
	ListPending(ctx context.Context, userID string) ([]Request, error)
	Delete(ctx context.Context, id string) error
}

// UserDirectory resolves usernames to user ids when sending requests.
type UserDirectory interface {
	IDByUsername(ctx context.Context, username string) (string, error)
}
