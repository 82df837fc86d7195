package review

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create stores a new review. A second review for the same game by the same
// user returns ErrAlreadyExists.
func (s *Service) Create(ctx context.Context, userID, gameID string, rating int, content *string) (Review, error) {
	exists, err := s.repo.ExistsByUserAndGame(ctx, userID, gameID)
	if err != nil {
		return Review{}, err
	}
	if exists {
		return Review{}, ErrAlreadyExists
	}

	rv := Review{
		UserID:  userID,
		GameID:  gameID,
		Rating:  rating,
		Content: content,
	}
	if err := s.repo.Create(ctx, &rv); err != nil {
		return Review{}, err
	}
	return rv, nil
}

func (s *Service) ListByGame(ctx context.Context, gameID string) ([]WithAuthor, error) {
	return s.repo.ListByGame(ctx, gameID)
}

// Delete removes the user's own review. Deleting someone else's review, or
// one that does not exist, returns ErrNotFound.
func (s *Service) Delete(ctx context.Context, userID, reviewID string) error {
	return s.repo.Delete(ctx, userID, reviewID)
}
