package service

import (
	"context"

	"inkpost/internal/auth"
	"inkpost/internal/models"
	"inkpost/internal/repository"
)

// UserService implements profile and status operations.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Get returns the actor's user record with their posts.
func (s *UserService) Get(ctx context.Context, actor *auth.Identity) (*models.User, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByIDWithPosts(ctx, actor.UserID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if user == nil {
		return nil, models.NewNotFoundError("User not found")
	}
	return user, nil
}

// GetStatus returns the actor's status text.
func (s *UserService) GetStatus(ctx context.Context, actor *auth.Identity) (string, error) {
	if err := requireActor(actor); err != nil {
		return "", err
	}

	user, err := s.userRepo.GetByID(ctx, actor.UserID)
	if err != nil {
		return "", models.NewInternalError(err)
	}
	if user == nil {
		return "", models.NewNotFoundError("User not found")
	}
	return user.Status, nil
}

// UpdateStatus sets the actor's status. Setting the current value again is
// a no-op: no write is issued, but the call still succeeds.
func (s *UserService) UpdateStatus(ctx context.Context, actor *auth.Identity, status string) (*models.User, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, actor.UserID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if user == nil {
		return nil, models.NewNotFoundError("User not found")
	}

	if status == user.Status {
		return user, nil
	}

	if err := s.userRepo.UpdateStatus(ctx, user.ID, status); err != nil {
		return nil, models.NewInternalError(err)
	}
	user.Status = status
	return user, nil
}
