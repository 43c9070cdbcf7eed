package service

import (
	"context"

	"inkpost/internal/auth"
	"inkpost/internal/models"
	"inkpost/internal/repository"
	"inkpost/internal/validation"
)

// PostService implements the post CRUD operations.
type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
	images   ImageRemover
	notifier ChangeNotifier
	rules    validation.Rules
	perPage  int
}

// CreatePostInput carries the fields for post creation.
type CreatePostInput struct {
	Title    string
	Content  string
	ImageURL string
}

// UpdatePostInput carries the fields for a post update.
type UpdatePostInput struct {
	PostID   uint
	Title    string
	Content  string
	ImageURL string
}

// PostPage is one page of the feed plus the total post count.
type PostPage struct {
	Posts      []*models.Post
	TotalPosts int64
}

// NewPostService creates a PostService. perPage is the fixed page size.
func NewPostService(
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
	images ImageRemover,
	notifier ChangeNotifier,
	rules validation.Rules,
	perPage int,
) *PostService {
	if perPage <= 0 {
		perPage = 2
	}
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
		images:   images,
		notifier: notifier,
		rules:    rules,
		perPage:  perPage,
	}
}

// PerPage returns the fixed page size.
func (s *PostService) PerPage() int { return s.perPage }

// Create validates and persists a new post owned by the actor, then emits
// a "create" event.
func (s *PostService) Create(ctx context.Context, actor *auth.Identity, in CreatePostInput) (*models.Post, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if violations := s.rules.Post(in.Title, in.Content, in.ImageURL); len(violations) > 0 {
		return nil, models.NewValidationError("Invalid input data", violations...)
	}

	user, err := s.userRepo.GetByID(ctx, actor.UserID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if user == nil {
		return nil, models.NewNotFoundError("User not found")
	}

	post := &models.Post{
		Title:    in.Title,
		Content:  in.Content,
		ImageURL: in.ImageURL,
		UserID:   user.ID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, models.NewInternalError(err)
	}
	post.User = *user

	s.notifier.PostCreated(ctx, post)
	return post, nil
}

// List returns one page of posts, newest first, plus the total count.
// page is 1-based; values below 1 are clamped to 1.
func (s *PostService) List(ctx context.Context, actor *auth.Identity, page int) (*PostPage, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}

	total, err := s.postRepo.Count(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	posts, err := s.postRepo.List(ctx, s.perPage, (page-1)*s.perPage)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	return &PostPage{Posts: posts, TotalPosts: total}, nil
}

// Get returns a single post by id.
func (s *PostService) Get(ctx context.Context, actor *auth.Identity, postID uint) (*models.Post, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if post == nil {
		return nil, models.NewNotFoundError("Post not found")
	}
	return post, nil
}

// Update validates and persists changes to a post the actor owns. When the
// image URL changes the previous file is removed best-effort, then an
// "update" event is emitted.
func (s *PostService) Update(ctx context.Context, actor *auth.Identity, in UpdatePostInput) (*models.Post, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if violations := s.rules.Post(in.Title, in.Content, in.ImageURL); len(violations) > 0 {
		return nil, models.NewValidationError("Invalid input data", violations...)
	}

	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if post == nil {
		return nil, models.NewNotFoundError("Post not found")
	}
	if post.UserID != actor.UserID {
		return nil, models.NewForbiddenError("Not authorized")
	}

	if in.ImageURL != post.ImageURL {
		s.images.Remove(post.ImageURL)
	}

	post.Title = in.Title
	post.Content = in.Content
	post.ImageURL = in.ImageURL
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, models.NewInternalError(err)
	}

	s.notifier.PostUpdated(ctx, post)
	return post, nil
}

// Delete removes a post the actor owns along with its stored image, then
// emits a "delete" event carrying the deleted id.
func (s *PostService) Delete(ctx context.Context, actor *auth.Identity, postID uint) error {
	if err := requireActor(actor); err != nil {
		return err
	}

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return models.NewInternalError(err)
	}
	if post == nil {
		return models.NewNotFoundError("Post not found")
	}
	if post.UserID != actor.UserID {
		return models.NewForbiddenError("Not authorized")
	}

	s.images.Remove(post.ImageURL)

	if err := s.postRepo.Delete(ctx, postID); err != nil {
		return models.NewInternalError(err)
	}

	s.notifier.PostDeleted(ctx, postID)
	return nil
}
