package graph

import (
	"strconv"

	"inkpost/internal/auth"
	"inkpost/internal/models"
	"inkpost/internal/service"

	"github.com/graphql-go/graphql"
)

// Resolver holds the services behind the GraphQL fields. Resolvers are thin
// translators: they parse arguments, extract the actor from the request
// context, and delegate to the same domain operations the REST adapter
// calls.
type Resolver struct {
	authSvc *service.AuthService
	posts   *service.PostService
	users   *service.UserService
}

// NewResolver creates a Resolver over the given services.
func NewResolver(authSvc *service.AuthService, posts *service.PostService, users *service.UserService) *Resolver {
	return &Resolver{
		authSvc: authSvc,
		posts:   posts,
		users:   users,
	}
}

func actorFrom(p graphql.ResolveParams) *auth.Identity {
	actor, _ := auth.FromContext(p.Context)
	return actor
}

// parsePostID converts an ID argument into a post id.
func parsePostID(arg interface{}) (uint, error) {
	s, ok := arg.(string)
	if !ok {
		return 0, models.NewValidationError("Invalid post id")
	}
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil || id == 0 {
		return 0, models.NewValidationError("Invalid post id")
	}
	return uint(id), nil
}

func stringArg(m map[string]interface{}, key string) string {
	if m == nil {
		return ""
	}
	s, _ := m[key].(string)
	return s
}

func inputObject(p graphql.ResolveParams, key string) map[string]interface{} {
	obj, _ := p.Args[key].(map[string]interface{})
	return obj
}

// CreateUser resolves mutation createUser.
func (r *Resolver) CreateUser(p graphql.ResolveParams) (interface{}, error) {
	in := inputObject(p, "userInput")
	user, err := r.authSvc.Signup(p.Context, service.SignupInput{
		Email:    stringArg(in, "email"),
		Name:     stringArg(in, "name"),
		Password: stringArg(in, "password"),
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Login resolves query login.
func (r *Resolver) Login(p graphql.ResolveParams) (interface{}, error) {
	email, _ := p.Args["email"].(string)
	password, _ := p.Args["password"].(string)

	result, err := r.authSvc.Login(p.Context, email, password)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"token":  result.Token,
		"userId": strconv.FormatUint(uint64(result.UserID), 10),
	}, nil
}

// CreatePost resolves mutation createPost.
func (r *Resolver) CreatePost(p graphql.ResolveParams) (interface{}, error) {
	in := inputObject(p, "postData")
	post, err := r.posts.Create(p.Context, actorFrom(p), service.CreatePostInput{
		Title:    stringArg(in, "title"),
		Content:  stringArg(in, "content"),
		ImageURL: stringArg(in, "imageUrl"),
	})
	if err != nil {
		return nil, err
	}
	return post, nil
}

// GetPosts resolves query getPosts.
func (r *Resolver) GetPosts(p graphql.ResolveParams) (interface{}, error) {
	page, _ := p.Args["page"].(int)

	result, err := r.posts.List(p.Context, actorFrom(p), page)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"posts":      result.Posts,
		"totalPosts": int(result.TotalPosts),
	}, nil
}

// GetPost resolves query getPost.
func (r *Resolver) GetPost(p graphql.ResolveParams) (interface{}, error) {
	postID, err := parsePostID(p.Args["postId"])
	if err != nil {
		return nil, err
	}
	post, err := r.posts.Get(p.Context, actorFrom(p), postID)
	if err != nil {
		return nil, err
	}
	return post, nil
}

// EditPost resolves mutation editPost.
func (r *Resolver) EditPost(p graphql.ResolveParams) (interface{}, error) {
	postID, err := parsePostID(p.Args["postId"])
	if err != nil {
		return nil, err
	}
	in := inputObject(p, "postData")
	post, err := r.posts.Update(p.Context, actorFrom(p), service.UpdatePostInput{
		PostID:   postID,
		Title:    stringArg(in, "title"),
		Content:  stringArg(in, "content"),
		ImageURL: stringArg(in, "imageUrl"),
	})
	if err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost resolves mutation deletePost.
func (r *Resolver) DeletePost(p graphql.ResolveParams) (interface{}, error) {
	postID, err := parsePostID(p.Args["postId"])
	if err != nil {
		return nil, err
	}
	if err := r.posts.Delete(p.Context, actorFrom(p), postID); err != nil {
		return nil, err
	}
	return true, nil
}

// GetUser resolves query getUser.
func (r *Resolver) GetUser(p graphql.ResolveParams) (interface{}, error) {
	user, err := r.users.Get(p.Context, actorFrom(p))
	if err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateStatus resolves mutation updateStatus.
func (r *Resolver) UpdateStatus(p graphql.ResolveParams) (interface{}, error) {
	status, _ := p.Args["status"].(string)
	user, err := r.users.UpdateStatus(p.Context, actorFrom(p), status)
	if err != nil {
		return nil, err
	}
	return user, nil
}
