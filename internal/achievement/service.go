package achievement

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListByGame(ctx context.Context, gameID string) ([]Achievement, error) {
	return s.repo.ListByGame(ctx, gameID)
}

// Complete marks an achievement as earned by the user. Completing one that
// is already earned returns ErrAlreadyCompleted.
func (s *Service) Complete(ctx context.Context, userID, achievementID string) (Earned, error) {
	if _, err := s.repo.GetByID(ctx, achievementID); err != nil {
		return Earned{}, err
	}
	return s.repo.Complete(ctx, userID, achievementID)
}

func (s *Service) ListEarned(ctx context.Context, userID, gameID string) ([]Earned, error) {
	return s.repo.ListEarned(ctx, userID, gameID)
}
