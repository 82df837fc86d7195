package collection

import (
	"context"
	"errors"
)

type Service struct {
	repo    Repository
	catalog Catalog
}

func NewService(repo Repository, catalog Catalog) *Service {
	return &Service{repo: repo, catalog: catalog}
}

// Add puts a game into the user's collection, importing the catalog
// metadata first when the game has never been seen.
func (s *Service) Add(ctx context.Context, userID, externalID, playStatus string) (Entry, error) {
	if playStatus == "" {
		playStatus = StatusNotStarted
	}
	if !ValidStatus(playStatus) {
		return Entry{}, ErrInvalidStatus
	}

	imported, err := s.catalog.ImportByExternalID(ctx, externalID)
	if err != nil {
		return Entry{}, err
	}

	if _, err := s.repo.Get(ctx, userID, imported.ID); err == nil {
		return Entry{}, ErrAlreadyExists
	} else if !errors.Is(err, ErrNotFound) {
		return Entry{}, err
	}

	entry := &Entry{
		UserID:     userID,
		GameID:     imported.ID,
		PlayStatus: playStatus,
	}
	if err := s.repo.Add(ctx, entry); err != nil {
		return Entry{}, err
	}
	return *entry, nil
}

func (s *Service) List(ctx context.Context, userID string) ([]EntryWithGame, error) {
	return s.repo.List(ctx, userID)
}

func (s *Service) UpdateStatus(ctx context.Context, userID, gameID, status string) error {
	return s.repo.UpdateStatus(ctx, userID, gameID, status)
}

func (s *Service) UpdateRating(ctx context.Context, userID, gameID string, rating int) error {
	return s.repo.UpdateRating(ctx, userID, gameID, rating)
}

func (s *Service) UpdateNotes(ctx context.Context, userID, gameID string, notes *string) error {
	return s.repo.UpdateNotes(ctx, userID, gameID, notes)
}

func (s *Service) Remove(ctx context.Context, userID, gameID string) error {
	return s.repo.Remove(ctx, userID, gameID)
}
