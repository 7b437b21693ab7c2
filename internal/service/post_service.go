package service

import (
	"github.com/kakigather/gather-backend/internal/common"
	"github.com/kakigather/gather-backend/internal/domain"
	"github.com/kakigather/gather-backend/internal/repository"
)

// PostService business logic for posts
type PostService interface {
	ListByUser(userID int) ([]*domain.Post, error)
	Create(req *domain.CreatePostRequest) (*domain.Post, error)
	Delete(id int) error
}

type postService struct {
	posts repository.PostRepository
	users repository.UserRepository
}

// NewPostService creates a new PostService
func NewPostService(posts repository.PostRepository, users repository.UserRepository) PostService {
	return &postService{posts: posts, users: users}
}

// ListByUser retrieves a user's posts. An empty result is reported as
// common.ErrNoPostsForUser; the legacy API treats it as a 404.
func (s *postService) ListByUser(userID int) ([]*domain.Post, error) {
	posts, err := s.posts.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, common.ErrNoPostsForUser
	}
	return posts, nil
}

// Create inserts a post after checking the author exists. The check and the
// insert are two separate statements, same as the legacy service.
func (s *postService) Create(req *domain.CreatePostRequest) (*domain.Post, error) {
	exists, err := s.users.Exists(req.UserID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, common.ErrUserNotFound
	}

	post := &domain.Post{
		Title:   req.Title,
		Content: req.Content,
		UserID:  req.UserID,
	}
	if err := s.posts.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

// Delete removes a post by id. Idempotent: a second delete of the same id
// succeeds and removes nothing.
func (s *postService) Delete(id int) error {
	return s.posts.DeleteByID(id)
}
