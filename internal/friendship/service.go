package friendship

import (
	"context"
	"errors"
)

type Service struct {
	repo  Repository
	users UserDirectory
}

func NewService(repo Repository, users UserDirectory) *Service {
	return &Service{repo: repo, users: users}
}

// Request sends a friend request to the named user. Requests to yourself
// return ErrSelfRequest; any existing relationship in either direction
// returns ErrAlreadyExists.
func (s *Service) Request(ctx context.Context, requesterID, username string) (Friendship, error) {
	addresseeID, err := s.users.IDByUsername(ctx, username)
	if err != nil {
		return Friendship{}, err
	}
	if addresseeID == requesterID {
		return Friendship{}, ErrSelfRequest
	}

	if _, err := s.repo.GetBetween(ctx, requesterID, addresseeID); err == nil {
		return Friendship{}, ErrAlreadyExists
	} else if !errors.Is(err, ErrNotFound) {
		return Friendship{}, err
	}

	f := Friendship{
		RequesterID: requesterID,
		AddresseeID: addresseeID,
		Status:      StatusPending,
	}
	if err := s.repo.Create(ctx, &f); err != nil {
		return Friendship{}, err
	}
	return f, nil
}

// Accept confirms a pending request. Only the addressee may accept, and
// only while the request is still pending.
func (s *Service) Accept(ctx context.Context, userID, friendshipID string) (Friendship, error) {
	f, err := s.repo.GetByID(ctx, friendshipID)
	if err != nil {
		return Friendship{}, err
	}
	if f.AddresseeID != userID {
		return Friendship{}, ErrNotFound
	}
	if f.Status != StatusPending {
		return Friendship{}, ErrNotPending
	}
	return s.repo.Accept(ctx, friendshipID)
}

func (s *Service) ListFriends(ctx context.Context, userID string) ([]Friend, error) {
	return s.repo.ListFriends(ctx, userID)
}

func (s *Service) ListPending(ctx context.Context, userID string) ([]Request, error) {
	return s.repo.ListPending(ctx, userID)
}

// Remove deletes a friendship the user is part of, whatever its status.
func (s *Service) Remove(ctx context.Context, userID, friendshipID string) error {
	f, err := s.repo.GetByID(ctx, friendshipID)
	if err != nil {
		return err
	}
	if f.RequesterID != userID && f.AddresseeID != userID {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, friendshipID)
}
