package repository

import (
	"github.com/kakigather/gather-backend/internal/domain"
	"gorm.io/gorm"
)

// UserRepository reads from the pre-existing users table
type UserRepository interface {
	Exists(id int) (bool, error)
}

// userRepository GORM implementation
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Exists reports whether a user row with the given id is present.
func (r *userRepository) Exists(id int) (bool, error) {
	var count int64
	err := r.db.Model(&domain.User{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
