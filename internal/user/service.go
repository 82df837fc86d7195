package user

import (
	"context"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Register(ctx context.Context, username, email, hashedPassword string, displayName *string) (User, error) {
	taken, err := s.repo.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return User{}, err
	}
	if taken {
		return User{}, ErrAlreadyExists
	}

	newUser := &User{
		Username:    username,
		Email:       email,
		Password:    hashedPassword,
		DisplayName: displayName,
		Role:        "USER",
	}
	if err := s.repo.Create(ctx, newUser); err != nil {
		return User{}, err
	}
	return *newUser, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByUsername(ctx context.Context, username string) (User, error) {
	return s.repo.GetByUsername(ctx, username)
}

type UpdateCommand struct {
	Email       *string `json:"email" validate:"omitempty,email,max=100"`
	DisplayName *string `json:"display_name" validate:"omitempty,max=100"`
}

func (c *UpdateCommand) ToMap() map[string]any {
	updates := make(map[string]any)
	if c.Email != nil {
		updates["email"] = *c.Email
	}
	if c.DisplayName != nil {
		updates["display_name"] = *c.DisplayName
	}
	return updates
}

func (s *Service) UpdateProfile(ctx context.Context, userID string, cmd UpdateCommand) (User, error) {
	if cmd.Email != nil {
		taken, err := s.repo.EmailTakenByOther(ctx, *cmd.Email, userID)
		if err != nil {
			return User{}, err
		}
		if taken {
			return User{}, ErrEmailTaken
		}
	}

	updates := cmd.ToMap()
	if len(updates) > 0 {
		if err := s.repo.UpdateProfile(ctx, userID, updates); err != nil {
			return User{}, err
		}
	}
	return s.repo.GetByID(ctx, userID)
}
