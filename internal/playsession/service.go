package playsession

import (
	"context"
	"errors"
	"time"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Start opens a new session for the game. Only one session per user and
// game may be running at a time.
func (s *Service) Start(ctx context.Context, userID, gameID string) (Session, error) {
	if _, err := s.repo.ActiveByUserAndGame(ctx, userID, gameID); err == nil {
		return Session{}, ErrAlreadyActive
	} else if !errors.Is(err, ErrNotFound) {
		return Session{}, err
	}

	sess := Session{
		UserID:    userID,
		GameID:    gameID,
		StartedAt: s.now().UTC(),
	}
	if err := s.repo.Create(ctx, &sess); err != nil {
		return Session{}, err
	}
	return sess, nil
}

// End closes the user's session, recording the played duration in whole
// minutes. Sessions shorter than a minute are recorded as one minute.
func (s *Service) End(ctx context.Context, userID, sessionID string, notes *string) (Session, error) {
	sess, err := s.repo.GetByID(ctx, sessionID)
	if err != nil {
		return Session{}, err
	}
	if sess.UserID != userID {
		return Session{}, ErrNotFound
	}
	if sess.EndedAt != nil {
		return Session{}, ErrAlreadyEnded
	}

	minutes := int(s.now().UTC().Sub(sess.StartedAt) / time.Minute)
	if minutes < 1 {
		minutes = 1
	}
	return s.repo.End(ctx, sessionID, minutes, notes)
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]Session, error) {
	return s.repo.ListByUser(ctx, userID)
}
