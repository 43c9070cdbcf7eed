package service

import (
	"context"
	"time"

	"inkpost/internal/auth"
	"inkpost/internal/models"
	"inkpost/internal/repository"
	"inkpost/internal/validation"
)

// AuthService implements signup and login.
type AuthService struct {
	userRepo   repository.UserRepository
	rules      validation.Rules
	secret     string
	tokenTTL   time.Duration
	bcryptCost int
}

// SignupInput carries the fields for account creation.
type SignupInput struct {
	Email    string
	Name     string
	Password string
}

// LoginResult is the issued session: token plus the user it belongs to.
type LoginResult struct {
	Token  string
	UserID uint
}

// NewAuthService creates an AuthService.
func NewAuthService(
	userRepo repository.UserRepository,
	rules validation.Rules,
	secret string,
	tokenTTL time.Duration,
	bcryptCost int,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		rules:      rules,
		secret:     secret,
		tokenTTL:   tokenTTL,
		bcryptCost: bcryptCost,
	}
}

// Signup validates the input, rejects duplicate emails, and persists a new
// user with a hashed password. Validation reports every violation at once.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*models.User, error) {
	if violations := s.rules.Credentials(in.Email, in.Password); len(violations) > 0 {
		return nil, models.NewValidationError("Validation failed", violations...)
	}

	existing, err := s.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if existing != nil {
		return nil, models.NewConflictError("Email is already registered")
	}

	hashed, err := auth.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Email:    in.Email,
		Name:     in.Name,
		Password: hashed,
		Status:   models.DefaultStatus,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, models.NewInternalError(err)
	}

	return user, nil
}

// Login verifies the credentials and issues a session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if violations := s.rules.Credentials(email, password); len(violations) > 0 {
		return nil, models.NewValidationError("Validation failed", violations...)
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if user == nil {
		return nil, models.NewNotFoundError("Email does not exist")
	}

	if !auth.VerifyPassword(password, user.Password) {
		return nil, models.NewUnauthenticatedError("Password is wrong")
	}

	token, err := auth.IssueToken(auth.Identity{UserID: user.ID, Email: user.Email}, s.secret, s.tokenTTL)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	return &LoginResult{Token: token, UserID: user.ID}, nil
}
