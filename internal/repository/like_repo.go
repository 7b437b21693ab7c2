package repository

import (
	"github.com/kakigather/gather-backend/internal/domain"
	"gorm.io/gorm"
)

// LikeRepository data access for likes
type LikeRepository interface {
	ListByUser(userID int) ([]*domain.Like, error)
	ListActiveByPost(postID int) ([]*domain.PostLiker, error)
	Deactivate(userID, postID int) error
}

// likeRepository GORM implementation
type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository creates a new LikeRepository
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

// ListByUser fetches all like rows (active or not) for the given user.
func (r *likeRepository) ListByUser(userID int) ([]*domain.Like, error) {
	var likes []*domain.Like
	err := r.db.Where("user_id = ?", userID).Find(&likes).Error
	return likes, err
}

// ListActiveByPost joins likes with users and returns who liked the post.
// Only active likes count; the result may be empty.
func (r *likeRepository) ListActiveByPost(postID int) ([]*domain.PostLiker, error) {
	likers := make([]*domain.PostLiker, 0)
	err := r.db.Table("likes").
		Select("users.username, users.id AS user_id, likes.id AS likes_id").
		Joins("INNER JOIN users ON likes.user_id = users.id").
		Where("likes.post_id = ? AND likes.active = ?", postID, true).
		Scan(&likers).Error
	return likers, err
}

// Deactivate soft-removes the active like for (userID, postID). Matching
// zero rows is not an error; the operation is idempotent.
func (r *likeRepository) Deactivate(userID, postID int) error {
	return r.db.Model(&domain.Like{}).
		Where("user_id = ? AND post_id = ? AND active = ?", userID, postID, true).
		Update("active", false).Error
}
