package service

import (
	"github.com/kakigather/gather-backend/internal/common"
	"github.com/kakigather/gather-backend/internal/domain"
	"github.com/kakigather/gather-backend/internal/repository"
)

// LikeService business logic for likes. There is deliberately no create or
// reactivate operation here: the API only lists likes and removes them.
type LikeService interface {
	ListByUser(userID int) ([]*domain.Like, error)
	ListPostLikers(postID int) ([]*domain.PostLiker, error)
	Remove(userID, postID int) error
}

type likeService struct {
	repo repository.LikeRepository
}

// NewLikeService creates a new LikeService
func NewLikeService(repo repository.LikeRepository) LikeService {
	return &likeService{repo: repo}
}

// ListByUser retrieves a user's like rows. An empty result is reported as
// common.ErrNoLikesForUser; the legacy API treats it as a 404.
func (s *likeService) ListByUser(userID int) ([]*domain.Like, error) {
	likes, err := s.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	if len(likes) == 0 {
		return nil, common.ErrNoLikesForUser
	}
	return likes, nil
}

// ListPostLikers returns who actively likes a post. Empty is fine here,
// unlike the per-user listing.
func (s *likeService) ListPostLikers(postID int) ([]*domain.PostLiker, error) {
	return s.repo.ListActiveByPost(postID)
}

// Remove deactivates the like for (userID, postID). No existence check, no
// error when nothing matches.
func (s *likeService) Remove(userID, postID int) error {
	return s.repo.Deactivate(userID, postID)
}
