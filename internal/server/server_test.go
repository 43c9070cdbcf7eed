package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"inkpost/internal/auth"
	"inkpost/internal/config"
	"inkpost/internal/graph"
	"inkpost/internal/middleware"
	"inkpost/internal/models"
	"inkpost/internal/notifications"
	"inkpost/internal/repository"
	"inkpost/internal/service"
	"inkpost/internal/storage"
	"inkpost/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "server-test-secret"

// newTestServer wires a Server over an in-memory sqlite database, no redis
// and no metrics, and returns it with an app serving its routes.
func newTestServer(t *testing.T) (*Server, *fiber.App) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Post{}); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}

	cfg := &config.Config{
		Port:           "0",
		JWTSecret:      testSecret,
		TokenTTLMins:   60,
		BcryptCost:     4,
		PasswordMinLen: 5,
		TitleMinLen:    5,
		ContentMinLen:  5,
		PostsPerPage:   2,
		ImageDir:       t.TempDir(),
		Env:            "test",
	}

	images, err := storage.NewImageStore(cfg.ImageDir)
	require.NoError(t, err)

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)

	hub := notifications.NewHub()
	notifier := notifications.NewPostNotifier(hub, nil)

	rules := validation.DefaultRules()
	authSvc := service.NewAuthService(userRepo, rules, cfg.JWTSecret, time.Hour, cfg.BcryptCost)
	postSvc := service.NewPostService(postRepo, userRepo, images, notifier, rules, cfg.PostsPerPage)
	userSvc := service.NewUserService(userRepo)

	schema, err := graph.NewSchema(graph.NewResolver(authSvc, postSvc, userSvc))
	require.NoError(t, err)

	s := &Server{
		config:   cfg,
		db:       db,
		userRepo: userRepo,
		postRepo: postRepo,
		authSvc:  authSvc,
		postSvc:  postSvc,
		userSvc:  userSvc,
		images:   images,
		hub:      hub,
		notifier: notifier,
		schema:   schema,
	}

	app := fiber.New()
	app.Use(middleware.OptionalAuth(cfg.JWTSecret))
	s.SetupRoutes(app)

	return s, app
}

// signupUser creates an account through the service layer and returns the
// user together with a valid bearer token.
func signupUser(t *testing.T, s *Server, email string) (*models.User, string) {
	t.Helper()
	user, err := s.authSvc.Signup(context.Background(), service.SignupInput{
		Email:    email,
		Name:     "Test Author",
		Password: "secret",
	})
	require.NoError(t, err)

	token, err := auth.IssueToken(auth.Identity{UserID: user.ID, Email: user.Email}, testSecret, time.Hour)
	require.NoError(t, err)
	return user, token
}

func jsonRequest(t *testing.T, method, target string, body interface{}, token string) *http.Request {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func doRequest(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, map[string]interface{}) {
	t.Helper()
	resp, err := app.Test(req, 5000)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()

	var body map[string]interface{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &body))
	}
	return resp, body
}
