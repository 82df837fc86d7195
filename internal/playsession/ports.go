package playsession

import "context"

type Repository interface {
	Create(ctx context.Context, s *Session) error
	GetByID(ctx context.Context, id string) (Session, error)
	ActiveByUserAndGame(ctx context.Context, userID, gameID string) (Session, error)
	End(ctx context.Context, id string, durationMinutes int, notes *string) (Session, error)
	ListByUser(ctx context.Context, userID string) ([]Session, error)
}
