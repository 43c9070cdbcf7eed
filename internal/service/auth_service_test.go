package service

import (
	"context"
	"testing"
	"time"

	"inkpost/internal/auth"
	"inkpost/internal/models"
	"inkpost/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "auth-service-test-secret"

func newAuthService(userRepo *MockUserRepository) *AuthService {
	return NewAuthService(userRepo, validation.DefaultRules(), testSecret, time.Hour, 4)
}

func TestSignupReportsAllViolations(t *testing.T) {
	svc := newAuthService(new(MockUserRepository))

	_, err := svc.Signup(context.Background(), SignupInput{
		Email:    "not-an-email",
		Name:     "Someone",
		Password: "1234",
	})

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeValidation, appErr.Code)
	assert.Equal(t, "Validation failed", appErr.Message)
	assert.Equal(t, []string{"Email is invalid", "Password is too short"}, appErr.Data)
}

func TestSignupDuplicateEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("GetByEmail", mock.Anything, "taken@example.com").
		Return(&models.User{ID: 1, Email: "taken@example.com"}, nil)

	svc := newAuthService(userRepo)

	_, err := svc.Signup(context.Background(), SignupInput{
		Email:    "taken@example.com",
		Name:     "Someone",
		Password: "secret",
	})

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeConflict, appErr.Code)
	assert.Equal(t, "Email is already registered", appErr.Message)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSignupSuccess(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("GetByEmail", mock.Anything, "new@example.com").Return(nil, nil)
	userRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := newAuthService(userRepo)

	user, err := svc.Signup(context.Background(), SignupInput{
		Email:    "new@example.com",
		Name:     "Newcomer",
		Password: "secret",
	})
	require.NoError(t, err)

	assert.Equal(t, "new@example.com", user.Email)
	assert.Equal(t, models.DefaultStatus, user.Status)
	// the password is stored hashed, never in the clear
	assert.NotEqual(t, "secret", user.Password)
	assert.True(t, auth.VerifyPassword("secret", user.Password))
	userRepo.AssertExpectations(t)
}

func TestLoginValidation(t *testing.T) {
	svc := newAuthService(new(MockUserRepository))

	_, err := svc.Login(context.Background(), "bad", "123")

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeValidation, appErr.Code)
	assert.Len(t, appErr.Data, 2)
}

func TestLoginUnknownEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, nil)

	svc := newAuthService(userRepo)

	_, err := svc.Login(context.Background(), "ghost@example.com", "secret")

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
	assert.Equal(t, "Email does not exist", appErr.Message)
}

func TestLoginWrongPassword(t *testing.T) {
	hashed, err := auth.HashPassword("right", 4)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	userRepo.On("GetByEmail", mock.Anything, "user@example.com").
		Return(&models.User{ID: 1, Email: "user@example.com", Password: hashed}, nil)

	svc := newAuthService(userRepo)

	_, err = svc.Login(context.Background(), "user@example.com", "wrong")

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeUnauthenticated, appErr.Code)
	assert.Equal(t, "Password is wrong", appErr.Message)
}

func TestLoginSuccess(t *testing.T) {
	hashed, err := auth.HashPassword("secret", 4)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	userRepo.On("GetByEmail", mock.Anything, "user@example.com").
		Return(&models.User{ID: 5, Email: "user@example.com", Password: hashed}, nil)

	svc := newAuthService(userRepo)

	result, err := svc.Login(context.Background(), "user@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, uint(5), result.UserID)

	// the issued token decodes back to the same identity
	identity, err := auth.VerifyToken(result.Token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, uint(5), identity.UserID)
	assert.Equal(t, "user@example.com", identity.Email)
}
