// Package server contains the REST delivery adapter and wires both
// adapters, the notifier hub, and static image serving onto one fiber app.
package server

import (
	"context"
	"fmt"
	"time"

	"inkpost/internal/config"
	"inkpost/internal/database"
	"inkpost/internal/graph"
	"inkpost/internal/middleware"
	"inkpost/internal/notifications"
	"inkpost/internal/repository"
	"inkpost/internal/service"
	"inkpost/internal/storage"
	"inkpost/internal/validation"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/graphql-go/graphql"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers.
type Server struct {
	config      *config.Config
	db          *gorm.DB
	redis       *redis.Client
	prom        *fiberprometheus.FiberPrometheus
	userRepo    repository.UserRepository
	postRepo    repository.PostRepository
	authSvc     *service.AuthService
	postSvc     *service.PostService
	userSvc     *service.UserService
	images      *storage.ImageStore
	hub         *notifications.Hub
	notifier    *notifications.PostNotifier
	schema      graphql.Schema
	shutdownCtx context.Context
	shutdownFn  context.CancelFunc
}

// NewServer creates a server, establishing the database and optional redis
// connections itself.
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisURL})
	}

	return NewServerWithDeps(cfg, db, rdb)
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Tests use this with an in-memory database and no redis.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, rdb *redis.Client) (*Server, error) {
	images, err := storage.NewImageStore(cfg.ImageDir)
	if err != nil {
		return nil, fmt.Errorf("image store init failed: %w", err)
	}

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)

	hub := notifications.NewHub()
	notifier := notifications.NewPostNotifier(hub, rdb)

	rules := validation.Rules{
		PasswordMinLen: cfg.PasswordMinLen,
		TitleMinLen:    cfg.TitleMinLen,
		ContentMinLen:  cfg.ContentMinLen,
	}

	authSvc := service.NewAuthService(
		userRepo, rules, cfg.JWTSecret,
		time.Duration(cfg.TokenTTLMins)*time.Minute, cfg.BcryptCost,
	)
	postSvc := service.NewPostService(postRepo, userRepo, images, notifier, rules, cfg.PostsPerPage)
	userSvc := service.NewUserService(userRepo)

	schema, err := graph.NewSchema(graph.NewResolver(authSvc, postSvc, userSvc))
	if err != nil {
		return nil, fmt.Errorf("graphql schema init failed: %w", err)
	}

	shutdownCtx, shutdownFn := context.WithCancel(context.Background())

	s := &Server{
		config:      cfg,
		db:          db,
		redis:       rdb,
		prom:        fiberprometheus.New("inkpost-api"),
		userRepo:    userRepo,
		postRepo:    postRepo,
		authSvc:     authSvc,
		postSvc:     postSvc,
		userSvc:     userSvc,
		images:      images,
		hub:         hub,
		notifier:    notifier,
		schema:      schema,
		shutdownCtx: shutdownCtx,
		shutdownFn:  shutdownFn,
	}

	// With redis configured, post events flow through pub/sub so every
	// instance's hub broadcasts them.
	notifier.StartSubscriber(shutdownCtx)

	return s, nil
}

// SetupMiddleware configures middleware for the fiber app.
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(middleware.ContextMiddleware())

	if s.prom != nil {
		app.Use(s.prom.Middleware)
	}

	app.Use(middleware.StructuredLogger())

	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, Upgrade, Connection",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	// Token extraction runs on every request and never rejects; the
	// service layer decides whether authentication was required.
	app.Use(middleware.OptionalAuth(s.config.JWTSecret))
}

// SetupRoutes configures all routes for the application.
func (s *Server) SetupRoutes(app *fiber.App) {
	app.Get("/health", s.HealthCheck)

	if s.prom != nil {
		s.prom.RegisterAt(app, "/metrics")
	}

	// Uploaded images are served statically under the same prefix their
	// storage paths use.
	app.Static("/images", s.images.Dir())

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/signup", s.Signup)
	auth.Post("/login", s.Login)

	feed := api.Group("/feed")
	feed.Get("/posts", s.GetPosts)
	feed.Post("/posts", s.CreatePost)
	feed.Get("/posts/:postId", s.GetPost)
	feed.Put("/posts/:postId", s.UpdatePost)
	feed.Delete("/posts/:postId", s.DeletePost)

	api.Get("/status", s.GetStatus)
	api.Put("/status", s.UpdateStatus)

	api.Put("/post-image", s.UploadImage)

	app.Post("/graphql", s.GraphQL)

	s.registerWebsocket(app)
}

// Shutdown releases server resources.
func (s *Server) Shutdown(ctx context.Context) error {
	s.shutdownFn()
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			return err
		}
	}
	if sqlDB, err := s.db.DB(); err == nil {
		return sqlDB.Close()
	}
	return nil
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
