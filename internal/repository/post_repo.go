package repository

import (
	"github.com/kakigather/gather-backend/internal/domain"
	"gorm.io/gorm"
)

// PostRepository data access for posts
type PostRepository interface {
	ListByUser(userID int) ([]*domain.Post, error)
	Create(post *domain.Post) error
	DeleteByID(id int) error
}

// postRepository GORM implementation
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// ListByUser fetches all posts authored by the given user.
func (r *postRepository) ListByUser(userID int) ([]*domain.Post, error) {
	var posts []*domain.Post
	err := r.db.Where("user_id = ?", userID).Find(&posts).Error
	return posts, err
}

// Create inserts a post. GORM fills ID and CreatedAt so the created row can
// be returned to the client verbatim.
func (r *postRepository) Create(post *domain.Post) error {
	return r.db.Create(post).Error
}

// DeleteByID removes a post row. Deleting a missing id is not an error.
func (r *postRepository) DeleteByID(id int) error {
	return r.db.Delete(&domain.Post{}, id).Error
}
